package kfactor

const (
	// UpperTailThreshold splits probabilities into the lower tail (p <= 0.5)
	// and the upper tail (p > 0.5).
	UpperTailThreshold = 0.5

	// GridStep is the uniform spacing of the probability grid behind CDF and Prob.
	GridStep = 0.001

	// DensityGridSize is the number of points the kde is evaluated on before
	// interpolating densities.
	DensityGridSize = 1000

	undefinedWarning = "At least 1 k-factor could not be calculated, due to improper inputs. " +
		"Review the rules for time-censored, failure-censored, and zero-failure data."
	regimeRules = "r >= 1 allows complete, time-censored or failure-censored data; " +
		"r == 0 requires time-censored data; time and failure cannot both be true; " +
		"failure-censored data with r == 1 has no upper-tail k-factor"
)

// gridTailDivisors place extra grid points at GridStep/d and 1-GridStep/d.
func gridTailDivisors() []float64 {
	return []float64{10, 100, 1000, 10000}
}
