package mix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/RyanBlaney/sonido-mix/algorithms/common"
	"github.com/RyanBlaney/sonido-mix/algorithms/stats"
	"github.com/RyanBlaney/sonido-mix/algorithms/tonal"
)

// Assemble turns a visiting order over tracks into a playable mix: it picks
// the key each track is played in, the tempo ramp of each step, and collects
// the transition costs from dist. Tracks not in order are reported as unused.
func Assemble(tracks []Track, order []int, dist *mat.SymDense) *Mix {
	m := &Mix{
		Steps: make([]MixStep, 0, len(order)),
		Costs: make([]float64, 0, max(len(order)-1, 0)),
	}

	placed := make([]bool, len(tracks))
	for i, idx := range order {
		placed[idx] = true
		t := tracks[idx]

		var next *Track
		if i+1 < len(order) {
			next = &tracks[order[i+1]]
		}

		step := MixStep{
			Track:    t,
			PlayKey:  t.Key,
			BPMBegin: t.BPM,
			BPMEnd:   t.BPM,
		}
		if next != nil {
			step.BPMEnd = common.Midpoint(t.BPM, next.BPM)
		}

		if i > 0 {
			prev := m.Steps[i-1]
			step.BPMBegin = prev.BPMEnd
			step.PlayKey = choosePlayKey(t.Key, prev.PlayKey, next)
			step.Tuning = tonal.MustTransposeDistance(t.Key, step.PlayKey)
			m.Costs = append(m.Costs, dist.At(order[i-1], idx))
		}

		m.Steps = append(m.Steps, step)
	}

	for i, t := range tracks {
		if !placed[i] {
			m.Unused = append(m.Unused, t)
		}
	}

	m.Stats = stats.Summarize(m.Costs)
	return m
}

// choosePlayKey keeps natural when it mixes with prevPlay. Otherwise it picks
// the key of the same mode closest to prevPlay plus the next track's natural
// key, preferring the key nearest prevPlay on ties.
func choosePlayKey(natural, prevPlay tonal.Key, next *Track) tonal.Key {
	if tonal.AreCompatible(natural, prevPlay) {
		return natural
	}

	var (
		best      tonal.Key
		bestScore int
		bestPrev  int
	)
	for i, cand := range tonal.KeysInMode(natural.Mode) {
		toPrev := tonal.CamelotDistance(prevPlay, cand)
		score := toPrev
		if next != nil {
			score += tonal.CamelotDistance(cand, next.Key)
		}

		if i == 0 || score < bestScore || (score == bestScore && toPrev < bestPrev) {
			best, bestScore, bestPrev = cand, score, toPrev
		}
	}
	return best
}
