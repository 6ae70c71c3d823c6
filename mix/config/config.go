package config

import (
	"errors"
	"fmt"
)

// Strategy names the order-search algorithm
type Strategy string

const (
	StrategyColony     Strategy = "colony"
	StrategyExhaustive Strategy = "exhaustive"
)

// Preset names a canned search configuration
type Preset string

const (
	PresetQuick    Preset = "quick"
	PresetBalanced Preset = "balanced"
	PresetThorough Preset = "thorough"
)

// SearchConfig holds the parameters of one mix search
type SearchConfig struct {
	Strategy Strategy `json:"strategy" yaml:"strategy" mapstructure:"strategy"`

	// Ant colony
	Generations      int     `json:"generations" yaml:"generations" mapstructure:"generations"`                   // G
	Agents           int     `json:"agents" yaml:"agents" mapstructure:"agents"`                                  // A, per generation
	Deposit          float64 `json:"deposit" yaml:"deposit" mapstructure:"deposit"`                               // pheromone added along the generation's best path
	Evaporation      float64 `json:"evaporation" yaml:"evaporation" mapstructure:"evaporation"`                   // subtracted from every cell per generation
	InitialPheromone float64 `json:"initial_pheromone" yaml:"initial_pheromone" mapstructure:"initial_pheromone"` // uniform starting weight

	// AcceptanceThreshold bounds the cost of a single transition. Zero means
	// every track must be visited; a positive value lets a path end early once
	// no remaining track is within the threshold.
	AcceptanceThreshold float64 `json:"acceptance_threshold" yaml:"acceptance_threshold" mapstructure:"acceptance_threshold"`

	// Exhaustive search
	MaxExhaustiveTracks int `json:"max_exhaustive_tracks" yaml:"max_exhaustive_tracks" mapstructure:"max_exhaustive_tracks"`
	MaxMixLength        int `json:"max_mix_length,omitempty" yaml:"max_mix_length,omitempty" mapstructure:"max_mix_length"` // 0 = unlimited
}

// DefaultSearchConfig returns sensible defaults for a set of a few dozen tracks
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		Strategy:            StrategyColony,
		Generations:         200,
		Agents:              30,
		Deposit:             1.0,
		Evaporation:         0.01,
		InitialPheromone:    1.0,
		AcceptanceThreshold: 0, // full permutation
		MaxExhaustiveTracks: 10,
		MaxMixLength:        0,
	}
}

// PresetSearchConfig returns the configuration for a named preset.
// Unknown presets fall back to the defaults.
func PresetSearchConfig(preset Preset) SearchConfig {
	cfg := DefaultSearchConfig()

	switch preset {
	case PresetQuick:
		cfg.Generations = 50
		cfg.Agents = 10
		cfg.Evaporation = 0.04

	case PresetThorough:
		cfg.Generations = 1000
		cfg.Agents = 60
		cfg.Deposit = 0.5
		cfg.Evaporation = 0.002

	case PresetBalanced:
		// defaults
	}

	return cfg
}

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid search config")

// Validate checks that the parameters describe a runnable search
func (c SearchConfig) Validate() error {
	switch c.Strategy {
	case StrategyColony:
		if c.Generations < 1 {
			return fmt.Errorf("%w: generations must be at least 1, got %d", ErrInvalidConfig, c.Generations)
		}
		if c.Agents < 1 {
			return fmt.Errorf("%w: agents must be at least 1, got %d", ErrInvalidConfig, c.Agents)
		}
		if c.Deposit < 0 || c.Evaporation < 0 {
			return fmt.Errorf("%w: deposit and evaporation must be non-negative", ErrInvalidConfig)
		}
		if c.InitialPheromone <= 0 {
			return fmt.Errorf("%w: initial pheromone must be positive, got %g", ErrInvalidConfig, c.InitialPheromone)
		}
	case StrategyExhaustive:
		if c.MaxExhaustiveTracks < 1 {
			return fmt.Errorf("%w: max exhaustive tracks must be at least 1, got %d", ErrInvalidConfig, c.MaxExhaustiveTracks)
		}
		if c.MaxMixLength < 0 {
			return fmt.Errorf("%w: max mix length must be non-negative, got %d", ErrInvalidConfig, c.MaxMixLength)
		}
	default:
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfig, c.Strategy)
	}

	if c.AcceptanceThreshold < 0 {
		return fmt.Errorf("%w: acceptance threshold must be non-negative, got %g", ErrInvalidConfig, c.AcceptanceThreshold)
	}
	return nil
}

// Bounded reports whether paths may end before every track is visited
func (c SearchConfig) Bounded() bool {
	return c.AcceptanceThreshold > 0
}

// LogConfig configures the logging package
type LogConfig struct {
	Level  string `json:"level" yaml:"level" mapstructure:"level"`
	Colors bool   `json:"colors" yaml:"colors" mapstructure:"colors"`
}

// Config is the complete runtime configuration of the sequencer
type Config struct {
	Search SearchConfig `json:"search" yaml:"search" mapstructure:"search"`
	Log    LogConfig    `json:"log" yaml:"log" mapstructure:"log"`
}

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() *Config {
	return &Config{
		Search: DefaultSearchConfig(),
		Log: LogConfig{
			Level:  "info",
			Colors: true,
		},
	}
}
