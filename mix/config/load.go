package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. MIX_SEARCH_AGENTS
const EnvPrefix = "MIX"

// Load reads the configuration from path (YAML or JSON, chosen by extension)
// and applies MIX_* environment overrides on top of the defaults. An empty
// path loads defaults and environment only.
func Load(path string) (*Config, error) {
	return load(viper.New(), path)
}

func load(v *viper.Viper, path string) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault("search.strategy", string(def.Search.Strategy))
	v.SetDefault("search.generations", def.Search.Generations)
	v.SetDefault("search.agents", def.Search.Agents)
	v.SetDefault("search.deposit", def.Search.Deposit)
	v.SetDefault("search.evaporation", def.Search.Evaporation)
	v.SetDefault("search.initial_pheromone", def.Search.InitialPheromone)
	v.SetDefault("search.acceptance_threshold", def.Search.AcceptanceThreshold)
	v.SetDefault("search.max_exhaustive_tracks", def.Search.MaxExhaustiveTracks)
	v.SetDefault("search.max_mix_length", def.Search.MaxMixLength)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.colors", def.Log.Colors)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				return nil, fmt.Errorf("config file %s not found: %w", path, err)
			}
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Search.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
