package approx

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/kfactor/common"
)

func TestExtrapolate(t *testing.T) {
	f, err := New([]float64{0, 1, 2}, []float64{0, 10, 30}, Extrapolate())
	require.NoError(t, err)

	tests := []struct {
		x, want float64
	}{
		{0, 0},
		{0.5, 5},
		{1, 10},
		{1.5, 20},
		{2, 30},
		{-1, -10},
		{3, 50},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, f.Eval(tt.x), 1e-12, "x=%v", tt.x)
	}
	assert.True(t, math.IsNaN(f.Eval(math.NaN())))
}

func TestFill(t *testing.T) {
	f, err := New([]float64{1, 2, 3}, []float64{1, 4, 9}, Fill(0))
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 1, 2.5, 9, 0}, f.EvalAll([]float64{0.5, 1, 1.5, 3, 3.5}))

	lo, hi := f.Domain()
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 3.0, hi)
}

func TestNewCleansPoints(t *testing.T) {
	xs := []float64{2, math.NaN(), 0, 1, 1, math.Inf(1)}
	ys := []float64{20, 5, 0, 10, 99, 7}
	f, err := New(xs, ys, Extrapolate())
	require.NoError(t, err)

	lo, hi := f.Domain()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 2.0, hi)
	assert.InDelta(t, 10, f.Eval(1), 1e-12)
	assert.InDelta(t, 15, f.Eval(1.5), 1e-12)
}

func TestNewErrors(t *testing.T) {
	_, err := New([]float64{1, 2}, []float64{1}, Extrapolate())
	assert.True(t, errors.Is(err, common.ErrorInvalidValue))

	_, err = New([]float64{1, 1, math.NaN()}, []float64{1, 2, 3}, Fill(0))
	assert.True(t, errors.Is(err, common.ErrorInvalidValue))

	_, err = New(nil, nil, Fill(0))
	assert.True(t, errors.Is(err, common.ErrorInvalidValue))
}
