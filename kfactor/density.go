package kfactor

import (
	"math"

	"github.com/uyouii/kfactor/approx"
	"github.com/uyouii/kfactor/kde"
	"go.uber.org/zap"
)

func (d *Dist) Prob(x float64) float64 {
	return d.Probs([]float64{x})[0]
}

// Probs estimates the density at each x: a kde is fitted to the quantile
// function sampled on the probability grid, evaluated on DensityGridSize
// points across the sample and interpolated. Outside the sample range the
// density is zero.
func (d *Dist) Probs(xs []float64) []float64 {
	grid, err := probabilityGrid()
	if err != nil {
		d.log().Warn("build probability grid failed", zap.Error(err))
		return make([]float64, len(xs))
	}

	k := d.quantiles(grid)
	sample := make([]float64, 0, len(k))
	for _, v := range k {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			continue
		}
		sample = append(sample, v)
	}
	return d.densityAt(sample, xs)
}

// densityAt returns zeros when the sample is too small or flat to fit a kde.
func (d *Dist) densityAt(sample, xs []float64) []float64 {
	res := make([]float64, len(xs))
	if len(sample) < 2 {
		d.log().Warn("too few k-factors to estimate a density", zap.Int("cnt", len(sample)))
		return res
	}

	estimator, err := kde.NewKDEUnivariate(sample, nil, 1, 0, nil)
	if err != nil {
		d.log().Warn("NewKDEUnivariate failed", zap.Error(err))
		return res
	}
	estimator.SetBandWidth(d.bandWidth)

	tidy, err := estimator.Tidy(DensityGridSize)
	if err != nil {
		d.log().Warn("kde evaluate failed", zap.Error(err))
		return res
	}

	gx, gy := make([]float64, len(tidy)), make([]float64, len(tidy))
	for i, t := range tidy {
		gx[i], gy[i] = t.X, t.Value
	}
	f, err := approx.New(gx, gy, approx.Fill(0))
	if err != nil {
		d.log().Warn("density interpolation failed", zap.Error(err))
		return res
	}

	for i, x := range xs {
		v := f.Eval(x)
		if v < 0 {
			v = 0
		}
		res[i] = v
	}
	return res
}
