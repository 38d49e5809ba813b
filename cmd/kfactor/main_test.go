package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/kfactor/common"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf
	app.ErrWriter = &buf
	err := app.Run(append([]string{"kfactor"}, args...))
	return strings.ToLower(buf.String()), err
}

func TestQuantileCommand(t *testing.T) {
	out, err := run(t, "quantile", "--r", "20", "0.975")
	require.NoError(t, err)
	assert.Contains(t, out, "1.4835")

	out, err = run(t, "--precision", "2", "qk", "--r", "0", "--time", "0.5")
	require.NoError(t, err)
	assert.Contains(t, out, "0.69")
}

func TestQuantileCommandErrors(t *testing.T) {
	_, err := run(t, "quantile", "--r", "3", "--time", "--failure", "0.5")
	assert.True(t, errors.Is(err, common.ErrorConflictingCensoring))

	_, err = run(t, "quantile", "--r", "3", "abc")
	assert.True(t, errors.Is(err, common.ErrorInvalidValue))

	_, err = run(t, "quantile", "--r", "3")
	assert.True(t, errors.Is(err, common.ErrorInvalidValue))

	_, err = run(t, "quantile", "--r", "3", "1.5")
	assert.True(t, errors.Is(err, common.ErrorInvalidProbability))
}

func TestRandomCommand(t *testing.T) {
	a, err := run(t, "random", "--n", "5", "--seed", "3", "--r", "4")
	require.NoError(t, err)
	b, err := run(t, "rk", "--n", "5", "--seed", "3", "--r", "4")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	_, err = run(t, "random", "--n", "0", "--r", "4")
	assert.True(t, errors.Is(err, common.ErrorInvalidSampleSize))
}

func TestCdfAndDensityCommands(t *testing.T) {
	out, err := run(t, "cdf", "--r", "10", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "0.5")

	out, err = run(t, "density", "--r", "10", "--bandwidth", "normal-reference", "1", "-1")
	require.NoError(t, err)
	assert.Contains(t, out, "density")

	_, err = run(t, "dk", "--r", "10", "--bandwidth", "silverman", "1")
	assert.True(t, errors.Is(err, common.ErrorInvalidValue))
}

func TestIntervalCommand(t *testing.T) {
	out, err := run(t, "interval", "--r", "10", "--exposure", "1000", "--level", "0.9")
	require.NoError(t, err)
	assert.Contains(t, out, "failure rate")
	assert.Contains(t, out, "0.0054")
	assert.Contains(t, out, "0.0157")
	// 0.0157052 - 0.0054254
	assert.Contains(t, out, "width")
	assert.Contains(t, out, "0.0103")

	_, err = run(t, "--verbose", "interval", "--r", "0", "--time", "--exposure", "100")
	require.NoError(t, err)
}

func TestSimulateCommand(t *testing.T) {
	out, err := run(t, "simulate", "--n", "500", "--seed", "7", "--r", "10", "--clip")
	require.NoError(t, err)
	assert.Contains(t, out, "skewness")
	assert.Contains(t, out, "q0.5")
}
