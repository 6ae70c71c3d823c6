package common

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestRatioToSemitones(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  float64
	}{
		{"unison", 1, 0},
		{"octave up", 2, 12},
		{"octave down", 0.5, -12},
		{"one semitone", SemitoneRatio(), 1},
		{"invalid", 0, 0},
		{"negative", -2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RatioToSemitones(tt.ratio); math.Abs(got-tt.want) > eps {
				t.Errorf("RatioToSemitones(%v) = %v, want %v", tt.ratio, got, tt.want)
			}
		})
	}
}

func TestTempoSemitones(t *testing.T) {
	if got := TempoSemitones(120, 240); math.Abs(got-12) > eps {
		t.Errorf("TempoSemitones(120, 240) = %v, want 12", got)
	}
	if got := TempoSemitones(0, 120); got != 0 {
		t.Errorf("TempoSemitones(0, 120) = %v, want 0", got)
	}
}

func TestSignAbsMod(t *testing.T) {
	if Sign(-4) != -1 || Sign(0) != 0 || Sign(9) != 1 {
		t.Errorf("Sign returned unexpected values")
	}
	if AbsInt(-3) != 3 || AbsInt(3) != 3 {
		t.Errorf("AbsInt returned unexpected values")
	}
	tests := []struct{ a, m, want int }{
		{5, 24, 5},
		{25, 24, 1},
		{-1, 24, 23},
		{-24, 24, 0},
	}
	for _, tt := range tests {
		if got := Mod(tt.a, tt.m); got != tt.want {
			t.Errorf("Mod(%d, %d) = %d, want %d", tt.a, tt.m, got, tt.want)
		}
	}
}

func TestCumulativeSumAndSelect(t *testing.T) {
	weights := []float64{1, 0, 2, 1}
	cum := CumulativeSum(weights)
	want := []float64{1, 1, 3, 4}
	for i := range want {
		if cum[i] != want[i] {
			t.Fatalf("CumulativeSum = %v, want %v", cum, want)
		}
	}
	if weights[2] != 2 {
		t.Errorf("CumulativeSum modified its input: %v", weights)
	}

	tests := []struct {
		draw float64
		want int
	}{
		{0, 0},
		{1, 0}, // first index wins ties
		{1.0001, 2},
		{3, 2},
		{4, 3},
		{99, 3},
	}
	for _, tt := range tests {
		if got := SelectCumulative(cum, tt.draw); got != tt.want {
			t.Errorf("SelectCumulative(%v) = %d, want %d", tt.draw, got, tt.want)
		}
	}

	if got := CumulativeSum(nil); len(got) != 0 {
		t.Errorf("CumulativeSum(nil) = %v, want empty", got)
	}
}

func TestMidpoint(t *testing.T) {
	if Midpoint(120, 124) != 122 {
		t.Errorf("Midpoint(120, 124) = %v", Midpoint(120, 124))
	}
}
