package kde

const (
	ClipUpperZScore = 3.0
	ClipLowerZScore = 3.0

	KdeMinCalculatePointCnt = 5

	// DefaultCut is how many bandwidths the evaluation grid extends past the sample.
	DefaultCut = 3.0
	// MinGridSize is the smallest evaluation grid Kdensity uses.
	MinGridSize = 100
	// CdfQuadratureNodes is the Gauss-Legendre order per grid cell in Cdf.
	CdfQuadratureNodes = 50

	// ScottFactorExponent is the sample size exponent in the normal reference rules.
	ScottFactorExponent = -0.2
)

var (
	AllCalculateQuantiles = []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 0.75, 0.9, 0.95, 0.975, 0.99}
)
