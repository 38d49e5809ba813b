package kfactor

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/uyouii/kfactor/common"
	"github.com/uyouii/kfactor/model"
)

// Interval returns the two-sided confidence interval at the given level
// for a failure rate estimated from d.R() failures over the total exposure
// (unit-hours, cycles, ...). Each bound is k(p) * max(r, 1) / exposure,
// so with zero failures the bounds are -ln(1-p) / exposure.
func (d *Dist) Interval(exposure, level float64) (*model.ConfidenceInterval, error) {
	if !(exposure > 0) || math.IsInf(exposure, 0) {
		return nil, errors.Wrapf(common.ErrorInvalidValue, "exposure must be positive, got %v", exposure)
	}
	if !(level > 0 && level < 1) {
		return nil, errors.Wrapf(common.ErrorInvalidProbability, "level = %v", level)
	}

	lowerP, upperP := (1-level)/2, (1+level)/2
	k, err := d.Quantiles([]float64{lowerP, upperP})
	if err != nil {
		return nil, err
	}

	scale := float64(max(d.r, 1)) / exposure
	return &model.ConfidenceInterval{
		Lower: &model.QuantileValue{Quantile: lowerP, Value: k[0] * scale},
		Upper: &model.QuantileValue{Quantile: upperP, Value: k[1] * scale},
	}, nil
}
