package kde

import (
	"context"
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/kfactor/common"
	"github.com/uyouii/kfactor/model"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// normalSample returns n evenly spaced quantiles of N(mu, sigma), which
// behaves like a very well-mixed random sample.
func normalSample(n int, mu, sigma float64) []float64 {
	dist := distuv.Normal{Mu: mu, Sigma: sigma}
	res := make([]float64, n)
	for i := range res {
		res[i] = dist.Quantile((float64(i) + 0.5) / float64(n))
	}
	return res
}

func TestNewKDEUnivariateErrors(t *testing.T) {
	_, err := NewKDEUnivariate(nil, nil, 1, 3, nil)
	assert.True(t, errors.Is(err, common.ErrorInvalidValue))

	_, err = NewKDEUnivariate([]float64{1, 2}, []float64{1}, 1, 3, nil)
	assert.True(t, errors.Is(err, common.ErrorInvalidValue))

	_, err = NewKDEUnivariate([]float64{1, 2}, nil, 1, 3, &model.Clip{Lower: 5, Upper: 6})
	assert.True(t, errors.Is(err, common.ErrorInvalidValue))
}

func TestNewKDEUnivariateDoesNotTouchInput(t *testing.T) {
	in := []float64{3, 1, 2}
	k, err := NewKDEUnivariate(in, []float64{0.3, 0.1, 0.2}, 0, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, in)
	assert.Equal(t, []float64{1, 2, 3}, k.Endog)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, k.Weights)
}

func TestBandWidth(t *testing.T) {
	x := normalSample(500, 10, 1)

	scott := NewScottBandWidth().BandWidth(x)
	assert.InDelta(t, stat.StdDev(x, nil)*math.Pow(500, -0.2), scott, 1e-12)

	assert.InDelta(t, 1.059, NewGaussianKernel().NormalReferenceConstant(), 1e-3)

	nr := NewNormalReferenceBandWidth(nil).BandWidth(x)
	assert.InDelta(t, 1.059*scott, nr, 0.05*scott)
}

func TestEvaluate(t *testing.T) {
	k, err := NewKDEUnivariate(normalSample(500, 10, 1), nil, 1, 3, nil)
	require.NoError(t, err)

	bw, err := k.Bandwidth()
	require.NoError(t, err)

	dens, err := k.Evaluate([]float64{10, 11, 30})
	require.NoError(t, err)

	// smoothing a N(10, 1) with a Gaussian kernel widens it to sd sqrt(1+bw^2)
	sd := math.Sqrt(1 + bw*bw)
	assert.InDelta(t, distuv.Normal{Mu: 10, Sigma: sd}.Prob(10), dens[0], 0.01)
	assert.InDelta(t, distuv.Normal{Mu: 10, Sigma: sd}.Prob(11), dens[1], 0.01)
	assert.InDelta(t, 0, dens[2], 1e-12)
}

func TestEvaluateWeights(t *testing.T) {
	k, err := NewKDEUnivariate([]float64{1, 2, 3, 4, 5}, []float64{0, 0, 0, 0, 1}, 1, 3, nil)
	require.NoError(t, err)

	dens, err := k.Evaluate([]float64{1, 5})
	require.NoError(t, err)
	assert.Greater(t, dens[1], dens[0])
}

func TestEvaluateNoSpread(t *testing.T) {
	k, err := NewKDEUnivariate([]float64{2, 2, 2}, nil, 1, 3, nil)
	require.NoError(t, err)

	_, err = k.Evaluate([]float64{2})
	assert.True(t, errors.Is(err, common.ErrorInvalidValue))
}

func TestKdensity(t *testing.T) {
	k, err := NewKDEUnivariate(normalSample(50, 1, 1), nil, 1, 3, nil)
	require.NoError(t, err)

	dens, bw, err := k.Kdensity()
	require.NoError(t, err)
	assert.Len(t, dens, MinGridSize)
	assert.Greater(t, bw, 0.0)
	// the grid would start below zero, so it is cut there
	assert.Equal(t, 0.0, dens[0].X)
	for _, d := range dens {
		assert.GreaterOrEqual(t, d.Value, 0.0)
	}
}

func TestTidy(t *testing.T) {
	x := normalSample(200, 10, 1)
	k, err := NewKDEUnivariate(x, nil, 1, 3, nil)
	require.NoError(t, err)

	dens, err := k.Tidy(1000)
	require.NoError(t, err)
	require.Len(t, dens, 1000)
	assert.Equal(t, x[0], dens[0].X)
	assert.Equal(t, x[len(x)-1], dens[999].X)

	_, err = k.Tidy(0)
	assert.True(t, errors.Is(err, common.ErrorInvalidValue))
}

func TestCdfAndQuantile(t *testing.T) {
	k, err := NewKDEUnivariate(normalSample(500, 10, 1), nil, 1, 3, nil)
	require.NoError(t, err)

	cdf, err := k.Cdf()
	require.NoError(t, err)
	assert.InDelta(t, 1, cdf[len(cdf)-1].Value, 1e-3)
	for i := 1; i < len(cdf); i++ {
		assert.GreaterOrEqual(t, cdf[i].Value, cdf[i-1].Value)
	}

	q, err := k.Quantile(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 10, q.Value, 0.05)
	assert.Equal(t, 0.5, q.Quantile)

	q, err = k.Quantile(0.975)
	require.NoError(t, err)
	assert.InDelta(t, 10+1.96*math.Sqrt(1+k.bw*k.bw), q.Value, 0.1)

	_, err = k.Quantile(1.5)
	assert.True(t, errors.Is(err, common.ErrorInvalidProbability))
}

func TestSetBandWidth(t *testing.T) {
	k, err := NewKDEUnivariate(normalSample(500, 10, 1), nil, 1, 3, nil)
	require.NoError(t, err)

	scott, err := k.Bandwidth()
	require.NoError(t, err)

	k.SetBandWidth(NewNormalReferenceBandWidth(nil))
	nr, err := k.Bandwidth()
	require.NoError(t, err)
	assert.NotEqual(t, scott, nr)
}

func TestCalculateKdeConfidences(t *testing.T) {
	ctx := context.Background()

	_, err := CalculateKdeConfidences(ctx, []float64{1, 2, math.NaN()}, nil, false)
	assert.True(t, errors.Is(err, common.ErrorInvalidValue))

	res, err := CalculateKdeConfidences(ctx, normalSample(500, 10, 1), nil, false)
	require.NoError(t, err)
	assert.InDelta(t, 10, res.Mean, 1e-9)
	assert.Len(t, res.QuantileValues, len(AllCalculateQuantiles))
	median, ok := res.GetQuantileValue(0.5)
	require.True(t, ok)
	assert.InDelta(t, 10, median.Value, 0.05)

	withOutlier := append(normalSample(500, 10, 1), 1000)
	res, err = CalculateKdeConfidences(ctx, withOutlier, []float64{0.99}, true)
	require.NoError(t, err)
	q99, ok := res.GetQuantileValue(0.99)
	require.True(t, ok)
	assert.Less(t, q99.Value, 20.0)
}
