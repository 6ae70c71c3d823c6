package mix

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/RyanBlaney/sonido-mix/algorithms/common"
	"github.com/RyanBlaney/sonido-mix/logging"
	"github.com/RyanBlaney/sonido-mix/mix/config"
)

// Colony is an ant-colony order searcher.
//
// Each generation sends out a number of agents that build paths by
// roulette-wheel selection over the pheromone matrix. The cheapest of the
// longest paths found in a generation is reinforced, then every weight
// evaporates. The best path over all generations is returned.
type Colony struct {
	params   config.SearchConfig
	observer Observer
	logger   logging.Logger

	// afterGeneration, when set, sees the pheromone matrix after evaporation
	afterGeneration func(generation int, phe mat.Matrix)
}

// NewColony creates a colony searcher. A nil observer is allowed.
func NewColony(params config.SearchConfig, observer Observer) *Colony {
	if observer == nil {
		observer = noopObserver{}
	}
	return &Colony{
		params:   params,
		observer: observer,
		logger: logging.WithFields(logging.Fields{
			"component": "colony",
		}),
	}
}

// Search runs the configured number of generations and returns the best path
func (c *Colony) Search(dist *mat.SymDense, src rand.Source) (Path, error) {
	n := matrixSize(dist)
	switch n {
	case 0:
		return Path{}, nil
	case 1:
		return Path{Order: []int{0}, Cost: 0}, nil
	}

	phe := newPheromone(n, c.params.InitialPheromone)
	w := &walker{
		dist:      dist,
		phe:       phe,
		src:       src,
		bounded:   c.params.Bounded(),
		threshold: c.params.AcceptanceThreshold,
		visited:   make([]bool, n),
		weights:   make([]float64, 0, n),
		pool:      make([]int, 0, n),
	}

	var global Path
	for gen := 0; gen < c.params.Generations; gen++ {
		var best Path
		for a := 0; a < c.params.Agents; a++ {
			p := w.walk()
			if a == 0 || p.Better(best) {
				best = p
			}
		}

		// all agents of this generation are done; only now touch the weights
		phe.reinforce(best, c.params.Deposit)
		phe.evaporate(c.params.Evaporation)

		if best.Better(global) {
			global = best.clone()
		}

		stats := GenerationStats{
			Generation:   gen,
			BestLength:   best.Len(),
			BestCost:     best.Cost,
			GlobalLength: global.Len(),
			GlobalCost:   global.Cost,
		}
		c.observer.ObserveGeneration(stats)
		if c.afterGeneration != nil {
			c.afterGeneration(gen, phe.m)
		}
	}

	c.logger.Debug("Colony search finished", logging.Fields{
		"tracks":      n,
		"generations": c.params.Generations,
		"agents":      c.params.Agents,
		"length":      global.Len(),
		"cost":        global.Cost,
	})

	return global, nil
}

// walker builds agent paths. Its scratch buffers are reused between agents.
type walker struct {
	dist      *mat.SymDense
	phe       *pheromone
	src       rand.Source
	bounded   bool
	threshold float64

	visited []bool
	weights []float64
	pool    []int
}

// draw returns a uniform value in [0, total]
func (w *walker) draw(total float64) float64 {
	u := distuv.Uniform{Min: 0, Max: total, Src: w.src}
	return u.Rand()
}

// roulette picks an index into weights with probability proportional to its
// weight, returning the first index whose cumulative weight reaches the draw
func (w *walker) roulette(weights []float64) int {
	cum := common.CumulativeSum(weights)
	return common.SelectCumulative(cum, w.draw(cum[len(cum)-1]))
}

// walk builds one agent's path
func (w *walker) walk() Path {
	n := len(w.visited)
	for i := range w.visited {
		w.visited[i] = false
	}

	w.weights = w.weights[:0]
	for i := 0; i < n; i++ {
		w.weights = append(w.weights, w.phe.start(i))
	}
	current := w.roulette(w.weights)

	order := make([]int, 1, n)
	order[0] = current
	w.visited[current] = true
	cost := 0.0

	for len(order) < n {
		w.pool = w.pool[:0]
		w.weights = w.weights[:0]
		for cand := 0; cand < n; cand++ {
			if w.visited[cand] {
				continue
			}
			if w.bounded && w.dist.At(current, cand) > w.threshold {
				continue
			}
			w.pool = append(w.pool, cand)
			w.weights = append(w.weights, w.phe.edge(current, cand))
		}
		if len(w.pool) == 0 {
			// every remaining track is too far away
			break
		}

		next := w.pool[w.roulette(w.weights)]
		cost += w.dist.At(current, next)
		w.visited[next] = true
		order = append(order, next)
		current = next
	}

	return Path{Order: order, Cost: cost}
}
