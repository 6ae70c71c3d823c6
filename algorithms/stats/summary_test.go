package stats

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Summary
	}{
		{"empty", nil, Summary{}},
		{"single", []float64{2.5}, Summary{Count: 1, Sum: 2.5, Min: 2.5, Mean: 2.5, Max: 2.5}},
		{"several", []float64{3, 1, 2}, Summary{Count: 3, Sum: 6, Min: 1, Mean: 2, Max: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.values)
			if got.Count != tt.want.Count ||
				math.Abs(got.Sum-tt.want.Sum) > 1e-12 ||
				math.Abs(got.Min-tt.want.Min) > 1e-12 ||
				math.Abs(got.Mean-tt.want.Mean) > 1e-12 ||
				math.Abs(got.Max-tt.want.Max) > 1e-12 {
				t.Errorf("Summarize(%v) = %+v, want %+v", tt.values, got, tt.want)
			}
		})
	}
}
