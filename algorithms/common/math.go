package common

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// SemitonesPerOctave is the number of equal-tempered steps in an octave
const SemitonesPerOctave = 12

// SemitoneRatio returns the frequency ratio of one equal-tempered semitone (2^(1/12))
func SemitoneRatio() float64 {
	return math.Pow(2, 1.0/SemitonesPerOctave)
}

// RatioToSemitones converts a frequency (or tempo) ratio to semitones.
// Non-positive ratios have no pitch interpretation and yield 0.
func RatioToSemitones(ratio float64) float64 {
	if ratio <= 0 || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return 0.0
	}
	return math.Log(ratio) / math.Log(SemitoneRatio())
}

// TempoSemitones returns the pitch change, in semitones, caused by playing
// material recorded at fromBPM at toBPM without time-stretching.
func TempoSemitones(fromBPM, toBPM float64) float64 {
	if fromBPM <= 0 {
		return 0.0
	}
	return RatioToSemitones(toBPM / fromBPM)
}

// Sign returns -1, 0 or 1 according to the sign of v
func Sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// AbsInt returns the absolute value of an integer
func AbsInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Mod returns the non-negative remainder of a divided by m (m > 0)
func Mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// Midpoint returns the arithmetic midpoint of two values
func Midpoint(a, b float64) float64 {
	return a + (b-a)/2
}

// CumulativeSum returns the running sums of weights using gonum.
// The input is not modified.
func CumulativeSum(weights []float64) []float64 {
	if len(weights) == 0 {
		return []float64{}
	}
	dst := make([]float64, len(weights))
	return floats.CumSum(dst, weights)
}

// SelectCumulative returns the first index whose cumulative weight is >= draw.
// Draws beyond the last bucket (rounding) select the last index.
func SelectCumulative(cumulative []float64, draw float64) int {
	for i, c := range cumulative {
		if c >= draw {
			return i
		}
	}
	return len(cumulative) - 1
}
