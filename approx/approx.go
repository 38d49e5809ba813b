// Package approx builds piecewise-linear functions through (x, y) points,
// in the manner of R's approxfun.
package approx

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/uyouii/kfactor/common"
	"gonum.org/v1/gonum/interp"
)

// Rule decides what the function returns outside the range of x.
type Rule struct {
	extrapolate bool
	fill        float64
}

// Extrapolate continues the first and last segments linearly.
func Extrapolate() Rule {
	return Rule{extrapolate: true}
}

// Fill returns v outside the range of x.
func Fill(v float64) Rule {
	return Rule{fill: v}
}

type Func struct {
	xs   []float64
	ys   []float64
	pl   interp.PiecewiseLinear
	rule Rule
}

// New fits a piecewise-linear function through the points. Pairs with a
// non-finite coordinate are dropped, and for a repeated x the first pair
// in sorted order is kept. At least two distinct points must remain.
func New(xs, ys []float64, rule Rule) (*Func, error) {
	if len(xs) != len(ys) {
		return nil, errors.Wrapf(common.ErrorInvalidValue, "x and y lengths differ: %d != %d", len(xs), len(ys))
	}

	idx := make([]int, 0, len(xs))
	for i := range xs {
		if isFinite(xs[i]) && isFinite(ys[i]) {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return xs[idx[a]] < xs[idx[b]]
	})

	fx, fy := make([]float64, 0, len(idx)), make([]float64, 0, len(idx))
	for _, i := range idx {
		if len(fx) > 0 && xs[i] <= fx[len(fx)-1] {
			continue
		}
		fx = append(fx, xs[i])
		fy = append(fy, ys[i])
	}
	if len(fx) < 2 {
		return nil, errors.Wrapf(common.ErrorInvalidValue, "need at least 2 distinct finite points, got %d", len(fx))
	}

	f := &Func{xs: fx, ys: fy, rule: rule}
	if err := f.pl.Fit(fx, fy); err != nil {
		return nil, errors.Wrap(err, "fit piecewise linear")
	}
	return f, nil
}

func (f *Func) Eval(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	n := len(f.xs)
	lo, hi := f.xs[0], f.xs[n-1]
	if x >= lo && x <= hi {
		return f.pl.Predict(x)
	}
	if !f.rule.extrapolate {
		return f.rule.fill
	}
	if x < lo {
		return line(f.xs[0], f.ys[0], f.xs[1], f.ys[1], x)
	}
	return line(f.xs[n-2], f.ys[n-2], f.xs[n-1], f.ys[n-1], x)
}

func (f *Func) EvalAll(xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = f.Eval(x)
	}
	return res
}

// Domain returns the smallest and largest fitted x.
func (f *Func) Domain() (float64, float64) {
	return f.xs[0], f.xs[len(f.xs)-1]
}

func line(x0, y0, x1, y1, x float64) float64 {
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
