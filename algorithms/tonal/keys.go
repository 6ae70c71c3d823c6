package tonal

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode represents the minor or major quality of a key
type Mode int

const (
	Minor Mode = iota
	Major
)

func (m Mode) String() string {
	switch m {
	case Minor:
		return "minor"
	case Major:
		return "major"
	default:
		return "unknown"
	}
}

// Opposite returns the other mode (relative major/minor)
func (m Mode) Opposite() Mode {
	if m == Minor {
		return Major
	}
	return Minor
}

// camelotLetter returns the wheel letter used for a mode (A = minor, B = major)
func (m Mode) camelotLetter() string {
	if m == Major {
		return "B"
	}
	return "A"
}

// Key is one of the 24 keys of the Camelot wheel.
//
// Position runs 1..12 around the wheel. Two keys are the same key when Position
// and Mode match; the display strings are for humans only.
type Key struct {
	Position  int    `json:"position"`
	Mode      Mode   `json:"mode"`
	Name      string `json:"name"`                // e.g. "A-Flat Minor"
	Symbol    string `json:"symbol"`              // e.g. "Abm"
	Alternate string `json:"alternate,omitempty"` // enharmonic spelling, e.g. "G#m"
}

// Equal reports whether k and other denote the same key
func (k Key) Equal(other Key) bool {
	return k.Position == other.Position && k.Mode == other.Mode
}

func (k Key) String() string {
	return k.Symbol
}

// Camelot returns the wheel code of the key, e.g. "8B" for C major
func (k Key) Camelot() string {
	return strconv.Itoa(k.Position) + k.Mode.camelotLetter()
}

// IsZero reports whether k is the zero value rather than a table key
func (k Key) IsZero() bool {
	return k.Position == 0
}

// IsValid reports whether k names a position and mode present in the table
func (k Key) IsValid() bool {
	return k.Position >= 1 && k.Position <= 12 && (k.Mode == Minor || k.Mode == Major)
}

// ringIndex is the slot of the key on the 24-slot ring: minor and major of a
// position sit next to each other, and one position is two slots.
func (k Key) ringIndex() int {
	return 2*(k.Position-1) + int(k.Mode)
}

// NumKeys is the number of distinct keys
const NumKeys = 24

// keyTable is ordered by ring index
var keyTable = [NumKeys]Key{
	{1, Minor, "A-Flat Minor", "Abm", "G#m"},
	{1, Major, "B Major", "B", ""},
	{2, Minor, "E-Flat Minor", "Ebm", "D#m"},
	{2, Major, "F-Sharp Major", "F#", "Gb"},
	{3, Minor, "B-Flat Minor", "Bbm", "A#m"},
	{3, Major, "D-Flat Major", "Db", "C#"},
	{4, Minor, "F Minor", "Fm", ""},
	{4, Major, "A-Flat Major", "Ab", "G#"},
	{5, Minor, "C Minor", "Cm", ""},
	{5, Major, "E-Flat Major", "Eb", "D#"},
	{6, Minor, "G Minor", "Gm", ""},
	{6, Major, "B-Flat Major", "Bb", "A#"},
	{7, Minor, "D Minor", "Dm", ""},
	{7, Major, "F Major", "F", ""},
	{8, Minor, "A Minor", "Am", ""},
	{8, Major, "C Major", "C", ""},
	{9, Minor, "E Minor", "Em", ""},
	{9, Major, "G Major", "G", ""},
	{10, Minor, "B Minor", "Bm", ""},
	{10, Major, "D Major", "D", ""},
	{11, Minor, "F-Sharp Minor", "F#m", "Gbm"},
	{11, Major, "A Major", "A", ""},
	{12, Minor, "D-Flat Minor", "Dbm", "C#m"},
	{12, Major, "E Major", "E", ""},
}

// Keys returns a copy of the key table in ring order
func Keys() []Key {
	keys := make([]Key, NumKeys)
	copy(keys, keyTable[:])
	return keys
}

// KeysInMode returns the 12 keys of one mode in ring order
func KeysInMode(mode Mode) []Key {
	keys := make([]Key, 0, NumKeys/2)
	for _, k := range keyTable {
		if k.Mode == mode {
			keys = append(keys, k)
		}
	}
	return keys
}

// KeyAt returns the table key at a wheel position and mode.
// Values outside the table are programming errors and panic.
func KeyAt(position int, mode Mode) Key {
	if position < 1 || position > 12 || (mode != Minor && mode != Major) {
		panic(fmt.Sprintf("tonal: no key at position %d mode %d", position, mode))
	}
	return keyTable[2*(position-1)+int(mode)]
}

// ResolveKey finds the key whose full name, symbol or alternate spelling
// exactly matches s.
func ResolveKey(s string) (Key, error) {
	if s == "" {
		return Key{}, &UnknownKeyError{Input: s}
	}
	for _, k := range keyTable {
		if s == k.Name || s == k.Symbol || (k.Alternate != "" && s == k.Alternate) {
			return k, nil
		}
	}
	return Key{}, &UnknownKeyError{Input: s}
}

// ParseCamelot parses a wheel code such as "8B" or "12a"
func ParseCamelot(code string) (Key, error) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if len(c) < 2 {
		return Key{}, &UnknownKeyError{Input: code}
	}

	var mode Mode
	switch c[len(c)-1] {
	case 'A':
		mode = Minor
	case 'B':
		mode = Major
	default:
		return Key{}, &UnknownKeyError{Input: code}
	}

	position, err := strconv.Atoi(c[:len(c)-1])
	if err != nil || position < 1 || position > 12 {
		return Key{}, &UnknownKeyError{Input: code}
	}
	return KeyAt(position, mode), nil
}
