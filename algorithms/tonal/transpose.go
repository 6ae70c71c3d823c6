package tonal

import (
	"fmt"

	"github.com/RyanBlaney/sonido-mix/algorithms/common"
)

// Wheel positions in ascending pitch order, starting from C minor and C major.
// Neighbours in these lists are one semitone apart.
var (
	minorPitchOrder = [12]int{5, 12, 7, 2, 9, 4, 11, 6, 1, 8, 3, 10}
	majorPitchOrder = [12]int{8, 3, 10, 5, 12, 7, 2, 9, 4, 11, 6, 1}
)

// pitchIndex returns the index of k within its mode's pitch ordering
func pitchIndex(k Key) int {
	var order *[12]int
	switch k.Mode {
	case Minor:
		order = &minorPitchOrder
	case Major:
		order = &majorPitchOrder
	default:
		panic(fmt.Sprintf("tonal: unrepresented mode %d", k.Mode))
	}
	for i, pos := range order {
		if pos == k.Position {
			return i
		}
	}
	panic(fmt.Sprintf("tonal: position %d missing from %s ordering", k.Position, k.Mode))
}

// TransposeDistance returns the signed number of semitones that moves a onto
// b, always in [-6, 6]. Both keys must share a mode.
func TransposeDistance(a, b Key) (int, error) {
	if a.Mode != b.Mode {
		return 0, &ModeMismatchError{From: a, To: b}
	}

	diff := pitchIndex(b) - pitchIndex(a)
	if common.AbsInt(diff) > 6 {
		diff -= common.Sign(diff) * common.SemitonesPerOctave
	}
	return diff, nil
}

// MustTransposeDistance is TransposeDistance for callers that already
// guarantee matching modes; a mismatch panics.
func MustTransposeDistance(a, b Key) int {
	d, err := TransposeDistance(a, b)
	if err != nil {
		panic(err)
	}
	return d
}
