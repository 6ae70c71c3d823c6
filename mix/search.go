package mix

import (
	"errors"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// ErrSearchTooLarge is returned by exact strategies asked to order more
// tracks than they are configured to handle
var ErrSearchTooLarge = errors.New("too many tracks for exhaustive search")

// Path is a visiting order over track indices and its accumulated cost
type Path struct {
	Order []int   `json:"order"`
	Cost  float64 `json:"cost"`
}

// Len returns the number of tracks on the path
func (p Path) Len() int {
	return len(p.Order)
}

// Better reports whether p should replace other as the best path: a longer
// path always wins, and among equal lengths the strictly cheaper one wins.
func (p Path) Better(other Path) bool {
	if p.Len() != other.Len() {
		return p.Len() > other.Len()
	}
	return p.Cost < other.Cost
}

// clone returns a path that does not share its order slice with p
func (p Path) clone() Path {
	return Path{Order: slices.Clone(p.Order), Cost: p.Cost}
}

// OrderSearcher finds a low-cost visiting order over the tracks described by
// a distance matrix. All randomness must come from src.
type OrderSearcher interface {
	Search(dist *mat.SymDense, src rand.Source) (Path, error)
}

// GenerationStats summarizes one generation of an iterative search
type GenerationStats struct {
	Generation   int     `json:"generation"`
	BestLength   int     `json:"best_length"`
	BestCost     float64 `json:"best_cost"`
	GlobalLength int     `json:"global_length"`
	GlobalCost   float64 `json:"global_cost"`
}

// Observer is notified of search progress. Implementations must not retain
// or modify the Mix after ObserveMix returns.
type Observer interface {
	ObserveGeneration(stats GenerationStats)
	ObserveMix(m *Mix)
}

type noopObserver struct{}

func (noopObserver) ObserveGeneration(GenerationStats) {}
func (noopObserver) ObserveMix(*Mix)                   {}
