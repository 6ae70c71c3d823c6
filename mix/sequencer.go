package mix

import (
	"fmt"
	"math/rand/v2"

	"github.com/RyanBlaney/sonido-mix/logging"
	"github.com/RyanBlaney/sonido-mix/mix/config"
)

// seedStream decorrelates the second PCG word from the seed
const seedStream = 0x9E3779B97F4A7C15

// Sequencer orders tracks into a mix
type Sequencer struct {
	params   config.SearchConfig
	observer Observer
	logger   logging.Logger
}

// Option configures a Sequencer
type Option func(*Sequencer)

// WithObserver reports search progress and the final mix to o
func WithObserver(o Observer) Option {
	return func(s *Sequencer) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithLogger replaces the component logger
func WithLogger(l logging.Logger) Option {
	return func(s *Sequencer) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSequencer creates a sequencer for the given search parameters
func NewSequencer(params config.SearchConfig, opts ...Option) *Sequencer {
	s := &Sequencer{
		params:   params,
		observer: noopObserver{},
		logger: logging.WithFields(logging.Fields{
			"component": "sequencer",
		}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RunSearch orders tracks with the given parameters and seed using a default
// sequencer
func RunSearch(tracks []Track, params config.SearchConfig, seed uint64) (*Mix, error) {
	return NewSequencer(params).Run(tracks, seed)
}

// Run searches for the best order of tracks and assembles it into a mix.
// Each call owns its distance and pheromone matrices and its random source,
// so identical inputs and seed give identical mixes.
func (s *Sequencer) Run(tracks []Track, seed uint64) (*Mix, error) {
	if err := s.params.Validate(); err != nil {
		return nil, err
	}
	if err := validateTracks(tracks); err != nil {
		return nil, err
	}

	logger := s.logger.WithFields(logging.Fields{
		"tracks":   len(tracks),
		"strategy": string(s.params.Strategy),
		"seed":     seed,
	})
	logger.Debug("Starting mix search")

	dist := NewDistanceMatrix(tracks)
	src := rand.NewPCG(seed, seed^seedStream)

	path, err := s.searcher().Search(dist, src)
	if err != nil {
		logger.Error(err, "Mix search failed")
		return nil, fmt.Errorf("mix search: %w", err)
	}

	m := Assemble(tracks, path.Order, dist)
	s.observer.ObserveMix(m)

	logger.Info("Mix search completed", logging.Fields{
		"length": m.Len(),
		"unused": len(m.Unused),
		"total":  m.Stats.Sum,
		"max":    m.Stats.Max,
	})
	return m, nil
}

func (s *Sequencer) searcher() OrderSearcher {
	switch s.params.Strategy {
	case config.StrategyExhaustive:
		e := NewExhaustive(s.params)
		e.logger = s.logger.WithFields(logging.Fields{"component": "exhaustive"})
		return e
	default:
		c := NewColony(s.params, s.observer)
		c.logger = s.logger.WithFields(logging.Fields{"component": "colony"})
		return c
	}
}
