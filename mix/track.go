package mix

import (
	"errors"
	"fmt"
	"math"

	"github.com/RyanBlaney/sonido-mix/algorithms/tonal"
)

// Track is one input to a mix: an identifier, its tempo and its natural key
type Track struct {
	ID  string    `json:"id"`
	BPM float64   `json:"bpm"`
	Key tonal.Key `json:"key"`
}

// InvalidTrackError reports a track that cannot take part in a search
type InvalidTrackError struct {
	Index  int
	ID     string
	Reason string
}

func (e *InvalidTrackError) Error() string {
	return fmt.Sprintf("track %d (%q): %s", e.Index, e.ID, e.Reason)
}

// Validate checks the track has an ID, a usable tempo and a table key.
// The returned error does not know the track's position in its list.
func (t Track) Validate() error {
	switch {
	case t.ID == "":
		return &InvalidTrackError{ID: t.ID, Reason: "missing identifier"}
	case t.BPM <= 0 || math.IsNaN(t.BPM) || math.IsInf(t.BPM, 0):
		return &InvalidTrackError{ID: t.ID, Reason: fmt.Sprintf("tempo must be positive, got %v", t.BPM)}
	case t.Key.IsZero():
		return &InvalidTrackError{ID: t.ID, Reason: "missing key"}
	case !t.Key.IsValid():
		return &InvalidTrackError{ID: t.ID, Reason: fmt.Sprintf("key %d/%s is not on the wheel", t.Key.Position, t.Key.Mode)}
	}
	return nil
}

func validateTracks(tracks []Track) error {
	for i, t := range tracks {
		if err := t.Validate(); err != nil {
			var invalid *InvalidTrackError
			if errors.As(err, &invalid) {
				invalid.Index = i
			}
			return err
		}
	}
	return nil
}
