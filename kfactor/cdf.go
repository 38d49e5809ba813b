package kfactor

import (
	"github.com/uyouii/kfactor/approx"
	"go.uber.org/zap"
)

func (d *Dist) CDF(q float64) (float64, error) {
	p, err := d.CDFs([]float64{q})
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

// CDFs inverts the quantile function: it samples it on the probability
// grid and interpolates probability against k-factor, extrapolating
// linearly past the sampled range. Results outside [0, 1] are possible
// there and are returned as is.
func (d *Dist) CDFs(qs []float64) ([]float64, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	grid, err := probabilityGrid()
	if err != nil {
		return nil, err
	}
	k := d.quantiles(grid)

	// approx drops the undefined and infinite k-factors
	f, err := approx.New(k, grid, approx.Extrapolate())
	if err != nil {
		return nil, err
	}
	lo, hi := f.Domain()
	d.log().Debug("k-factor cdf fitted", zap.Float64("minK", lo), zap.Float64("maxK", hi))
	return f.EvalAll(qs), nil
}
