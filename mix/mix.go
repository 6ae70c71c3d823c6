package mix

import (
	"github.com/RyanBlaney/sonido-mix/algorithms/stats"
	"github.com/RyanBlaney/sonido-mix/algorithms/tonal"
)

// MixStep is one track as it is played within a mix
type MixStep struct {
	Track   Track     `json:"track"`
	PlayKey tonal.Key `json:"play_key"`

	// Tuning is the signed transpose from the track's natural key to PlayKey,
	// in semitones. It is zero exactly when the track plays in its own key.
	Tuning int `json:"tuning"`

	// Tempo window of the step within the mix
	BPMBegin float64 `json:"bpm_begin"`
	BPMEnd   float64 `json:"bpm_end"`
}

// Transition classifies the key move from the previous step into this one
func (s MixStep) Transition(prev MixStep) tonal.TransitionKind {
	return tonal.ClassifyTransition(prev.PlayKey, s.PlayKey)
}

// Mix is an ordered sequence of steps and the cost of getting through it
type Mix struct {
	Steps []MixStep `json:"steps"`

	// Costs[i] is the cost of the transition from Steps[i] to Steps[i+1]
	Costs []float64     `json:"costs"`
	Stats stats.Summary `json:"stats"`

	// Unused lists input tracks the search could not place
	Unused []Track `json:"unused,omitempty"`
}

// Len returns the number of steps
func (m *Mix) Len() int {
	return len(m.Steps)
}

// InputCount returns the number of tracks the mix was built from
func (m *Mix) InputCount() int {
	return len(m.Steps) + len(m.Unused)
}

// Order returns the track IDs in play order
func (m *Mix) Order() []string {
	ids := make([]string, len(m.Steps))
	for i, s := range m.Steps {
		ids[i] = s.Track.ID
	}
	return ids
}
