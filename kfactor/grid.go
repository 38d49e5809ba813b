package kfactor

import (
	"math"
	"sort"

	"github.com/uyouii/kfactor/summary"
)

// probabilityGrid returns 0, GridStep, ..., 1 plus the tail points from
// gridTailDivisors, sorted.
func probabilityGrid() ([]float64, error) {
	body, err := summary.Seq(0, 1, GridStep)
	if err != nil {
		return nil, err
	}
	divisors := gridTailDivisors()
	grid := make([]float64, 0, len(body)+2*len(divisors))
	for _, div := range divisors {
		grid = append(grid, GridStep/div, 1-GridStep/div)
	}
	for _, p := range body {
		grid = append(grid, math.Min(p, 1))
	}
	sort.Float64s(grid)
	return grid, nil
}
