package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds aggregate statistics over a series of costs
type Summary struct {
	Count int     `json:"count"`
	Sum   float64 `json:"sum"`
	Min   float64 `json:"min"`
	Mean  float64 `json:"mean"`
	Max   float64 `json:"max"`
}

// Summarize computes count, sum, min, mean and max of values using gonum.
// An empty series yields the zero Summary.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	return Summary{
		Count: len(values),
		Sum:   floats.Sum(values),
		Min:   floats.Min(values),
		Mean:  stat.Mean(values, nil),
		Max:   floats.Max(values),
	}
}
