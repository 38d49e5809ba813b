package kde

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

type BandWidth interface {
	BandWidth([]float64) float64
}

// ScottBandWidth is Scott's factor times the sample standard deviation,
// sd * n^(-1/5). This is what scipy's gaussian_kde uses by default.
type ScottBandWidth struct{}

func NewScottBandWidth() *ScottBandWidth {
	return &ScottBandWidth{}
}

func (bw *ScottBandWidth) BandWidth(x []float64) float64 {
	return stat.StdDev(x, nil) * math.Pow(float64(len(x)), ScottFactorExponent)
}

// NormalReferenceBandWidth is C * min(sd, IQR/1.349) * n^(-1/5), where C
// is the normal reference constant of the kernel.
type NormalReferenceBandWidth struct {
	kernel Kernel
}

func NewNormalReferenceBandWidth(kernel Kernel) *NormalReferenceBandWidth {
	if kernel == nil {
		kernel = NewGaussianKernel()
	}
	return &NormalReferenceBandWidth{
		kernel: kernel,
	}
}

// BandWidth expects x sorted in increasing order.
func (bw *NormalReferenceBandWidth) BandWidth(x []float64) float64 {
	C := bw.kernel.NormalReferenceConstant()
	A := selectSigma(x)
	n := len(x)
	return C * A * math.Pow(float64(n), ScottFactorExponent)
}

func selectSigma(x []float64) float64 {
	normalize := 1.349

	q75 := stat.Quantile(0.75, stat.Empirical, x, nil)
	q25 := stat.Quantile(0.25, stat.Empirical, x, nil)
	iqr := (q75 - q25) / normalize

	stdDev := stat.StdDev(x, nil)

	if iqr > 0 {
		if stdDev < iqr {
			return stdDev
		}
		return iqr
	}
	return stdDev
}
