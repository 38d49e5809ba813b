// Package summary holds the descriptive helpers used in the course
// material: R-style sequences and moment-based shape statistics.
package summary

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/uyouii/kfactor/common"
	"gonum.org/v1/gonum/stat"
)

// seqTolerance absorbs representation error when counting steps, so that
// Seq(0, 1, 0.001) has 1001 elements.
const seqTolerance = 1e-10

// Seq returns from, from+by, ... up to and including to.
func Seq(from, to, by float64) ([]float64, error) {
	if by == 0 || math.IsNaN(by) || math.IsInf(by, 0) {
		return nil, errors.Wrapf(common.ErrorInvalidValue, "by must be finite and non-zero, got %v", by)
	}
	steps := (to - from) / by
	if steps < -seqTolerance || math.IsNaN(steps) || math.IsInf(steps, 0) {
		return nil, errors.Wrapf(common.ErrorInvalidValue, "wrong sign in by (%v) for %v to %v", by, from, to)
	}
	n := int(math.Floor(steps+seqTolerance)) + 1
	res := make([]float64, n)
	for i := range res {
		res[i] = from + float64(i)*by
	}
	return res, nil
}

// SeqLength returns n evenly spaced values from from to to.
func SeqLength(from, to float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, errors.Wrapf(common.ErrorInvalidValue, "length must be at least 1, got %d", n)
	}
	if n == 1 {
		return []float64{from}, nil
	}
	step := (to - from) / float64(n-1)
	res := make([]float64, n)
	for i := range res {
		res[i] = from + float64(i)*step
	}
	res[n-1] = to
	return res, nil
}

// Skewness is sum((x-mean)^3) / ((n-1) * sd^3) with the sample standard deviation.
func Skewness(x []float64) float64 {
	return centralMoment(x, 3)
}

// Kurtosis is sum((x-mean)^4) / ((n-1) * sd^4). It is not excess kurtosis.
func Kurtosis(x []float64) float64 {
	return centralMoment(x, 4)
}

func centralMoment(x []float64, order float64) float64 {
	if len(x) < 2 {
		return math.NaN()
	}
	mean, sd := stat.MeanStdDev(x, nil)
	sum := 0.0
	for _, v := range x {
		sum += math.Pow(v-mean, order)
	}
	return sum / (float64(len(x)-1) * math.Pow(sd, order))
}
