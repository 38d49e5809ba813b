// Package kfactor computes k-factors: the multipliers that turn an
// exponential failure-rate estimate from r observed failures into
// confidence bounds. It offers the quantile function, random deviates, an
// approximate CDF and an approximate density for complete, time-censored,
// failure-censored and zero-failure data.
package kfactor

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/uyouii/kfactor/common"
	"github.com/uyouii/kfactor/kde"
	"github.com/uyouii/kfactor/utils"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

// Dist is the k-factor distribution for a fixed failure count and regime.
// A Dist without a random source is safe for concurrent use.
type Dist struct {
	r      int
	regime Regime

	src       rand.Source
	logger    *zap.Logger
	bandWidth kde.BandWidth
}

type Option func(*Dist)

// WithLogger sets where undefined-result warnings go.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Dist) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithSource sets the random source for Rand and Sample. Without it the
// global source is used.
func WithSource(src rand.Source) Option {
	return func(d *Dist) {
		d.src = src
	}
}

// WithBandWidth sets the kde bandwidth rule used by Prob.
func WithBandWidth(bw kde.BandWidth) Option {
	return func(d *Dist) {
		if bw != nil {
			d.bandWidth = bw
		}
	}
}

// New validates r and the censoring flags. The logger defaults to the one
// carried by ctx.
func New(ctx context.Context, r int, time, failure bool, opts ...Option) (*Dist, error) {
	regime, err := NewRegime(r, time, failure)
	if err != nil {
		return nil, err
	}

	d := &Dist{
		r:         r,
		regime:    regime,
		logger:    utils.GetLogger(ctx),
		bandWidth: kde.NewScottBandWidth(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// R is the number of failures.
func (d *Dist) R() int {
	return d.r
}

func (d *Dist) Regime() Regime {
	return d.regime
}

// check rejects a Dist that did not come from New.
func (d *Dist) check() error {
	if d.r < 0 {
		return errors.Wrapf(common.ErrorInvalidFailureCount, "r = %d", d.r)
	}
	if (d.regime == ZeroFailure) != (d.r == 0) {
		return errors.Wrapf(common.ErrorZeroFailureRegime, "r = %d with %v data", d.r, d.regime)
	}
	return nil
}

func (d *Dist) log() *zap.Logger {
	if d.logger == nil {
		return zap.L()
	}
	return d.logger
}

// Qk returns the k-factor quantile for each probability in p.
func Qk(ctx context.Context, p []float64, r int, time, failure bool) ([]float64, error) {
	d, err := New(ctx, r, time, failure)
	if err != nil {
		return nil, err
	}
	return d.Quantiles(p)
}

// Rk draws n random k-factors.
func Rk(ctx context.Context, n int, r int, time, failure bool) ([]float64, error) {
	if err := checkSampleSize(n); err != nil {
		return nil, err
	}
	d, err := New(ctx, r, time, failure)
	if err != nil {
		return nil, err
	}
	return d.Sample(n)
}

// Pk returns the approximate cumulative probability of each k-factor in q.
func Pk(ctx context.Context, q []float64, r int, time, failure bool) ([]float64, error) {
	d, err := New(ctx, r, time, failure)
	if err != nil {
		return nil, err
	}
	return d.CDFs(q)
}

// Dk returns the approximate density at each k-factor in x.
func Dk(ctx context.Context, x []float64, r int, time, failure bool) ([]float64, error) {
	d, err := New(ctx, r, time, failure)
	if err != nil {
		return nil, err
	}
	return d.Probs(x), nil
}
