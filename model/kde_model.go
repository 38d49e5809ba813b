package model

import "fmt"

// Clip bounds the sample values a kernel density estimate is fitted to.
type Clip struct {
	Lower float64
	Upper float64
}

type Density struct {
	X     float64
	Value float64
}

type Cdf struct {
	X     float64
	Value float64
}

type QuantileValue struct {
	Value    float64 `json:"v,omitempty"`
	Quantile float64 `json:"q,omitempty"`
}

type KdeConfidence struct {
	Mean           float64                   `json:"mean,omitempty"`
	StdDev         float64                   `json:"stddev,omitempty"`
	Bandwidth      float64                   `json:"bw,omitempty"`
	QuantileValues map[string]*QuantileValue `json:"quantiles,omitempty"`
}

func (c *KdeConfidence) GetQuantileValue(value float64) (*QuantileValue, bool) {
	if c == nil || c.QuantileValues == nil {
		return nil, false
	}
	valueStr := fmt.Sprintf("%v", value)
	quantile, ok := c.QuantileValues[valueStr]
	return quantile, ok
}
