package kfactor

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/uyouii/kfactor/common"
	"gonum.org/v1/gonum/stat/distuv"
)

// Regime is the sampling scheme the failures were observed under.
type Regime int

const (
	// Complete data: every unit was run to failure.
	Complete Regime = iota
	// TimeCensored data: the test stopped at a fixed time.
	TimeCensored
	// FailureCensored data: the test stopped at the r-th failure.
	FailureCensored
	// ZeroFailure is time-censored data with no failures.
	ZeroFailure
)

func (g Regime) String() string {
	switch g {
	case Complete:
		return "complete"
	case TimeCensored:
		return "time-censored"
	case FailureCensored:
		return "failure-censored"
	case ZeroFailure:
		return "zero-failure"
	}
	return "unknown"
}

// NewRegime validates the failure count and censoring flags and returns
// the single regime they describe.
func NewRegime(r int, time, failure bool) (Regime, error) {
	if r < 0 {
		return 0, errors.Wrapf(common.ErrorInvalidFailureCount, "r = %d", r)
	}
	if time && failure {
		return 0, errors.WithStack(common.ErrorConflictingCensoring)
	}
	if r == 0 {
		if !time {
			return 0, errors.Wrap(common.ErrorZeroFailureRegime, "r == 0 without time censoring")
		}
		return ZeroFailure, nil
	}
	switch {
	case time:
		return TimeCensored, nil
	case failure:
		return FailureCensored, nil
	default:
		return Complete, nil
	}
}

// kFactor returns the k-factor for probability p and r failures, or NaN
// when the regime has none.
func (g Regime) kFactor(p float64, r int) float64 {
	if r < 0 || (r == 0) != (g == ZeroFailure) {
		return math.NaN()
	}
	upper := p > UpperTailThreshold
	n := float64(r)

	switch g {
	case Complete:
		return chiSquaredQuantile(p, 2*n) / (2 * n)
	case TimeCensored:
		if upper {
			// one more failure could have happened just after the test stopped
			return chiSquaredQuantile(p, 2*(n+1)) / (2 * n)
		}
		return chiSquaredQuantile(p, 2*n) / (2 * n)
	case FailureCensored:
		if upper {
			// NaN for r == 1: 0/0 after the (r-1) scaling
			return chiSquaredQuantile(p, 2*n) / (2 * (n - 1)) * (n - 1) / n
		}
		return chiSquaredQuantile(p, 2*n) / (2 * n)
	case ZeroFailure:
		return -math.Log1p(-p)
	}
	return math.NaN()
}

func chiSquaredQuantile(p, df float64) float64 {
	switch p {
	case 0:
		return 0
	case 1:
		return math.Inf(1)
	}
	return distuv.ChiSquared{K: df}.Quantile(p)
}
