package tonal

import (
	"math"

	"github.com/RyanBlaney/sonido-mix/algorithms/common"
)

// Shift moves a key by a number of semitones around the ring.
// Negative counts are normalized to their positive equivalent first.
func Shift(k Key, semitones int) Key {
	semitones = common.Mod(semitones, common.SemitonesPerOctave)

	shifted := (k.ringIndex() + 2*semitones) % NumKeys
	return keyTable[shifted]
}

// CamelotDistance is the unsigned wheel distance between two keys: the
// shorter arc between positions plus one when the modes differ.
// 0 is the same key, 1 is a safe mix.
func CamelotDistance(a, b Key) int {
	diff := common.AbsInt(b.Position - a.Position)
	if diff > 6 {
		diff = 12 - diff
	}
	if a.Mode != b.Mode {
		diff++
	}
	return diff
}

// CompatibleKeys returns the four keys that mix safely with k: k itself, its
// relative major/minor, and k shifted one semitone up and down.
func CompatibleKeys(k Key) [4]Key {
	return [4]Key{
		k,
		KeyAt(k.Position, k.Mode.Opposite()),
		Shift(k, 1),
		Shift(k, -1),
	}
}

// AreCompatible reports whether two keys are at most one step apart on the wheel
func AreCompatible(a, b Key) bool {
	return CamelotDistance(a, b) <= 1
}

// ShiftedKey returns the key heard when a track in original is played at
// newBPM instead of oldBPM without pitch correction.
func ShiftedKey(original Key, oldBPM, newBPM float64) Key {
	st := common.TempoSemitones(oldBPM, newBPM)
	return Shift(original, int(math.RoundToEven(st)))
}

// TransitionKind classifies the move between two keys on the wheel
type TransitionKind int

const (
	TransitionSame TransitionKind = iota
	TransitionRelative
	TransitionUp
	TransitionDown
	TransitionDistant
)

func (t TransitionKind) String() string {
	switch t {
	case TransitionSame:
		return "same"
	case TransitionRelative:
		return "relative"
	case TransitionUp:
		return "up"
	case TransitionDown:
		return "down"
	default:
		return "distant"
	}
}

// ClassifyTransition describes how the wheel moves from one key to the next
func ClassifyTransition(from, to Key) TransitionKind {
	switch {
	case from.Equal(to):
		return TransitionSame
	case from.Position == to.Position:
		return TransitionRelative
	case to.Equal(Shift(from, 1)):
		return TransitionUp
	case to.Equal(Shift(from, -1)):
		return TransitionDown
	default:
		return TransitionDistant
	}
}
