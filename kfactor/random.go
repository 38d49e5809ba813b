package kfactor

import (
	"github.com/cockroachdb/errors"
	"github.com/uyouii/kfactor/common"
	"gonum.org/v1/gonum/stat/distuv"
)

// Rand draws one k-factor by inverse-transform sampling.
func (d *Dist) Rand() float64 {
	return d.quantiles([]float64{d.uniform().Rand()})[0]
}

// Sample draws n k-factors.
func (d *Dist) Sample(n int) ([]float64, error) {
	if err := checkSampleSize(n); err != nil {
		return nil, err
	}
	if err := d.check(); err != nil {
		return nil, err
	}
	u := d.uniform()
	ps := make([]float64, n)
	for i := range ps {
		ps[i] = u.Rand()
	}
	return d.quantiles(ps), nil
}

func (d *Dist) uniform() distuv.Uniform {
	return distuv.Uniform{Min: 0, Max: 1, Src: d.src}
}

func checkSampleSize(n int) error {
	if n <= 0 {
		return errors.Wrapf(common.ErrorInvalidSampleSize, "n = %d", n)
	}
	return nil
}
