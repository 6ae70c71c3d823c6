package mix

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/RyanBlaney/sonido-mix/logging"
	"github.com/RyanBlaney/sonido-mix/mix/config"
)

// Exhaustive is an exact order searcher. It tries every start track and every
// acceptable continuation, so its cost grows factorially with the number of
// tracks; it refuses inputs larger than MaxExhaustiveTracks.
//
// The result follows the same preference as the colony: the longest
// reachable path, and among those the cheapest.
type Exhaustive struct {
	params config.SearchConfig
	logger logging.Logger
}

// NewExhaustive creates an exhaustive searcher
func NewExhaustive(params config.SearchConfig) *Exhaustive {
	return &Exhaustive{
		params: params,
		logger: logging.WithFields(logging.Fields{
			"component": "exhaustive",
		}),
	}
}

// Search enumerates orders depth-first. src is unused: the result is exact.
func (e *Exhaustive) Search(dist *mat.SymDense, _ rand.Source) (Path, error) {
	n := matrixSize(dist)
	if n > e.params.MaxExhaustiveTracks {
		return Path{}, fmt.Errorf("%w: %d tracks, limit %d", ErrSearchTooLarge, n, e.params.MaxExhaustiveTracks)
	}
	if n == 0 {
		return Path{}, nil
	}

	maxLen := n
	if e.params.MaxMixLength > 0 && e.params.MaxMixLength < n {
		maxLen = e.params.MaxMixLength
	}

	b := &backtracker{
		dist:      dist,
		bounded:   e.params.Bounded(),
		threshold: e.params.AcceptanceThreshold,
		maxLen:    maxLen,
		visited:   make([]bool, n),
		order:     make([]int, 0, maxLen),
	}
	for start := 0; start < n; start++ {
		b.visit(start, 0)
	}

	e.logger.Debug("Exhaustive search finished", logging.Fields{
		"tracks":   n,
		"explored": b.explored,
		"length":   b.best.Len(),
		"cost":     b.best.Cost,
	})
	return b.best, nil
}

type backtracker struct {
	dist      *mat.SymDense
	bounded   bool
	threshold float64
	maxLen    int

	visited  []bool
	order    []int
	best     Path
	explored int
}

// visit appends track to the current order, records it if it beats the best
// path so far, then tries every acceptable continuation
func (b *backtracker) visit(track int, cost float64) {
	b.explored++
	b.visited[track] = true
	b.order = append(b.order, track)
	defer func() {
		b.order = b.order[:len(b.order)-1]
		b.visited[track] = false
	}()

	current := Path{Order: b.order, Cost: cost}
	if current.Better(b.best) {
		b.best = Path{Order: slices.Clone(b.order), Cost: cost}
	}

	if len(b.order) >= b.maxLen || b.cannotImprove(cost) {
		return
	}

	for next := range b.visited {
		if b.visited[next] {
			continue
		}
		d := b.dist.At(track, next)
		if b.bounded && d > b.threshold {
			continue
		}
		b.visit(next, cost+d)
	}
}

// cannotImprove reports whether no extension of the current order can beat
// the best path. Costs are non-negative, so a path can only grow dearer.
func (b *backtracker) cannotImprove(cost float64) bool {
	remaining := 0
	for _, v := range b.visited {
		if !v {
			remaining++
		}
	}
	reachable := min(len(b.order)+remaining, b.maxLen)

	if reachable < b.best.Len() {
		return true
	}
	return reachable == b.best.Len() && cost >= b.best.Cost
}
