package kfactor

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/uyouii/kfactor/common"
	"go.uber.org/zap"
)

func (d *Dist) Quantile(p float64) (float64, error) {
	k, err := d.Quantiles([]float64{p})
	if err != nil {
		return 0, err
	}
	return k[0], nil
}

// Quantiles returns the k-factor for each probability, in order. Every p
// must lie in [0, 1]. Elements with no k-factor are NaN, and a single
// warning is logged when there are any.
func (d *Dist) Quantiles(ps []float64) ([]float64, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	for i, p := range ps {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return nil, errors.Wrapf(common.ErrorInvalidProbability, "p[%d] = %v", i, p)
		}
	}
	return d.quantiles(ps), nil
}

// quantiles skips validation; callers pass probabilities in [0, 1].
func (d *Dist) quantiles(ps []float64) []float64 {
	k := make([]float64, len(ps))
	undefined := 0
	for i, p := range ps {
		k[i] = d.regime.kFactor(p, d.r)
		if math.IsNaN(k[i]) {
			undefined++
		}
	}
	if undefined > 0 {
		d.log().Warn(undefinedWarning,
			zap.Int("undefined", undefined), zap.Int("total", len(ps)),
			zap.Int("r", d.r), zap.Stringer("regime", d.regime),
			zap.String("rules", regimeRules))
	}
	return k
}
