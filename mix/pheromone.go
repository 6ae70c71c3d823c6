package mix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// pheromone holds the learned weights of one colony search. Off-diagonal cell
// (i, j) weighs moving from track i to track j; diagonal cell (i, i) weighs
// starting at track i.
type pheromone struct {
	m *mat.Dense
}

func newPheromone(n int, initial float64) *pheromone {
	data := make([]float64, n*n)
	for i := range data {
		data[i] = initial
	}
	return &pheromone{m: mat.NewDense(n, n, data)}
}

func (p *pheromone) start(i int) float64 {
	return p.m.At(i, i)
}

func (p *pheromone) edge(from, to int) float64 {
	return p.m.At(from, to)
}

// reinforce deposits amount on the start cell and every edge of path
func (p *pheromone) reinforce(path Path, amount float64) {
	if path.Len() == 0 {
		return
	}
	first := path.Order[0]
	p.m.Set(first, first, p.m.At(first, first)+amount)
	for k := 1; k < path.Len(); k++ {
		from, to := path.Order[k-1], path.Order[k]
		p.m.Set(from, to, p.m.At(from, to)+amount)
	}
}

// evaporate subtracts amount from every cell, never going below zero
func (p *pheromone) evaporate(amount float64) {
	p.m.Apply(func(_, _ int, v float64) float64 {
		return math.Max(0, v-amount)
	}, p.m)
}
