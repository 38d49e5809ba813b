package model

import "fmt"

// ConfidenceInterval is a two-sided interval. Quantile holds the
// probability each bound was taken at.
type ConfidenceInterval struct {
	Lower *QuantileValue `json:"l,omitempty"`
	Upper *QuantileValue `json:"u,omitempty"`
}

func (c *ConfidenceInterval) Width() float64 {
	if c == nil || c.Lower == nil || c.Upper == nil {
		return 0
	}
	return c.Upper.Value - c.Lower.Value
}

func (c *ConfidenceInterval) Contains(value float64) bool {
	if c == nil || c.Lower == nil || c.Upper == nil {
		return false
	}
	return value >= c.Lower.Value && value <= c.Upper.Value
}

func (c *ConfidenceInterval) DebugString() string {
	if c == nil || c.Lower == nil || c.Upper == nil {
		return "<nil>"
	}
	return fmt.Sprintf("[%v (p=%v), %v (p=%v)]", c.Lower.Value, c.Lower.Quantile, c.Upper.Value, c.Upper.Quantile)
}
