package kde

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/uyouii/kfactor/common"
	"github.com/uyouii/kfactor/model"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"
)

// KDEUnivariate is a Gaussian kernel density estimate of a one-dimensional
// sample. The support is taken to be [0, inf): the evaluation grid never
// starts below zero and Cdf integrates from zero.
type KDEUnivariate struct {
	Weights []float64

	//If gridsize is 0, max(len(x), MinGridSize) is used.
	gridSize int

	// An adjustment factor for the bw. Bandwidth becomes bw * adjust.
	bwAdjust float64

	// Defines the length of the grid past the lowest and highest values
	// of x so that the kernel goes to zero. The end points are
	// ``max(min(x) - cut * 1.5 * bw, 0)`` and ``max(x) + cut * bw``.
	cut float64

	// endogenous variable, sorted
	Endog []float64

	bandWidth BandWidth

	density []model.Density
	cdf     []model.Cdf
	grid    []float64
	bw      float64
	fited   bool
	kernel  *GaussianKernel
}

// NewKDEUnivariate copies endog and weights. Empty weights mean equal
// weights; a zero bwAdjust means 1 and a zero cut means DefaultCut.
func NewKDEUnivariate(endog []float64, weights []float64,
	bwAdjust float64, cut float64, clip *model.Clip) (*KDEUnivariate, error) {
	if len(endog) == 0 {
		return nil, errors.Wrap(common.ErrorInvalidValue, "empty sample")
	}

	if len(weights) == 0 {
		weights = InitOnes(len(endog))
	} else if len(weights) != len(endog) {
		return nil, errors.Wrapf(common.ErrorInvalidValue,
			"weights length %d != sample length %d", len(weights), len(endog))
	}

	x, w := sortPairs(endog, weights)

	if bwAdjust == 0 {
		bwAdjust = 1
	}
	if cut == 0 {
		cut = DefaultCut
	}

	if clip != nil {
		x, w = Clip(x, w, clip)
		if len(x) == 0 {
			return nil, errors.Wrapf(common.ErrorInvalidValue,
				"no value left inside [%v, %v]", clip.Lower, clip.Upper)
		}
	}

	gridSize := max(len(x), MinGridSize)

	kde := &KDEUnivariate{
		Weights:   w,
		gridSize:  gridSize,
		bwAdjust:  bwAdjust,
		cut:       cut,
		Endog:     x,
		bandWidth: NewScottBandWidth(),
	}

	return kde, nil
}

// SetBandWidth replaces the bandwidth rule and discards any fitted state.
func (kde *KDEUnivariate) SetBandWidth(bandWidth BandWidth) {
	if bandWidth == nil {
		return
	}
	kde.bandWidth = bandWidth
	kde.fited = false
	kde.density = nil
	kde.cdf = nil
	kde.grid = nil
}

func (kde *KDEUnivariate) fit() error {
	if kde.fited {
		return nil
	}

	bw := kde.bandWidth.BandWidth(kde.Endog) * kde.bwAdjust
	if !(bw > 0) || math.IsInf(bw, 0) {
		return errors.Wrapf(common.ErrorInvalidValue, "bandwidth %v, sample has no spread", bw)
	}

	kernel := NewGaussianKernel()
	kernel.SetH(bw)
	kernel.SetWeights(kde.Weights)

	kde.bw = bw
	kde.kernel = kernel
	kde.fited = true
	return nil
}

// Bandwidth fits the estimate if needed and returns the bandwidth.
func (kde *KDEUnivariate) Bandwidth() (float64, error) {
	if err := kde.fit(); err != nil {
		return 0, err
	}
	return kde.bw, nil
}

// Evaluate returns the estimated density at each of xs.
func (kde *KDEUnivariate) Evaluate(xs []float64) ([]float64, error) {
	if err := kde.fit(); err != nil {
		return nil, err
	}
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = kde.kernel.Density(kde.Endog, x)
	}
	return res, nil
}

// Kdensity evaluates the estimate on its own grid, which runs from just
// below the smallest sample value (but not below zero) to cut bandwidths
// past the largest one.
func (kde *KDEUnivariate) Kdensity() ([]model.Density, float64, error) {
	if kde.density != nil {
		return kde.density, kde.bw, nil
	}
	if err := kde.fit(); err != nil {
		return nil, 0, err
	}

	bw := kde.bw
	a := max(floats.Min(kde.Endog)-kde.cut*1.5*bw, 0)
	b := floats.Max(kde.Endog) + kde.cut*bw
	grid := linspace(a, b, kde.gridSize)

	dens, err := kde.Evaluate(grid)
	if err != nil {
		return nil, 0, err
	}

	kde.density = toDensity(grid, dens)
	kde.grid = grid
	return kde.density, bw, nil
}

// Tidy evaluates the estimate at n evenly spaced points from the smallest
// to the largest sample value.
func (kde *KDEUnivariate) Tidy(n int) ([]model.Density, error) {
	if n < 1 {
		return nil, errors.Wrapf(common.ErrorInvalidValue, "n must be positive, got %d", n)
	}
	grid := linspace(kde.Endog[0], kde.Endog[len(kde.Endog)-1], n)
	dens, err := kde.Evaluate(grid)
	if err != nil {
		return nil, err
	}
	return toDensity(grid, dens), nil
}

func (kde *KDEUnivariate) Cdf() ([]model.Cdf, error) {
	if len(kde.cdf) > 0 {
		return kde.cdf, nil
	}
	if _, _, err := kde.Kdensity(); err != nil {
		return nil, err
	}

	a := 0.0
	newGrid := []float64{a}
	newGrid = append(newGrid, kde.grid...)
	gridsize := len(newGrid)

	f := func(x float64) float64 {
		return kde.kernel.Density(kde.Endog, x)
	}

	res := []model.Cdf{}

	var cumSum float64

	for i := 1; i < gridsize; i++ {
		integral := quad.Fixed(f, newGrid[i-1], newGrid[i], CdfQuadratureNodes, nil, 0)
		cumSum += integral
		res = append(res, model.Cdf{
			X:     newGrid[i],
			Value: cumSum,
		})
	}

	kde.cdf = res
	return res, nil
}

func (kde *KDEUnivariate) Quantile(p float64) (*model.QuantileValue, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, errors.Wrapf(common.ErrorInvalidProbability, "quantile %v", p)
	}

	cdf, err := kde.Cdf()
	if err != nil {
		return nil, err
	}

	if p <= cdf[0].Value {
		return &model.QuantileValue{
			Quantile: p,
			Value:    cdf[0].X,
		}, nil
	}

	if p >= cdf[len(cdf)-1].Value {
		return &model.QuantileValue{
			Quantile: p,
			Value:    cdf[len(cdf)-1].X,
		}, nil
	}

	for i := 1; i < len(cdf); i++ {
		if cdf[i].Value > p {
			lowerX, lowerP := cdf[i-1].X, cdf[i-1].Value
			upperX, upperP := cdf[i].X, cdf[i].Value
			value := lowerX + (upperX-lowerX)*(p-lowerP)/(upperP-lowerP)
			return &model.QuantileValue{
				Quantile: p,
				Value:    value,
			}, nil
		}
	}
	return &model.QuantileValue{
		Quantile: p,
		Value:    cdf[len(cdf)-1].X,
	}, nil
}

func toDensity(grid, dens []float64) []model.Density {
	res := make([]model.Density, 0, len(grid))
	for i := range grid {
		res = append(res, model.Density{
			X:     grid[i],
			Value: dens[i],
		})
	}
	return res
}

func sortPairs(x, w []float64) ([]float64, []float64) {
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return x[idx[a]] < x[idx[b]]
	})
	sx, sw := make([]float64, len(x)), make([]float64, len(w))
	for i, j := range idx {
		sx[i] = x[j]
		sw[i] = w[j]
	}
	return sx, sw
}
