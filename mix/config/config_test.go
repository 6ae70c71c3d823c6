package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSearchConfigIsValid(t *testing.T) {
	cfg := DefaultSearchConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Strategy != StrategyColony {
		t.Errorf("default strategy = %q, want colony", cfg.Strategy)
	}
	if cfg.Bounded() {
		t.Errorf("default config should visit every track")
	}
}

func TestPresetSearchConfig(t *testing.T) {
	quick := PresetSearchConfig(PresetQuick)
	thorough := PresetSearchConfig(PresetThorough)
	balanced := PresetSearchConfig(PresetBalanced)

	if quick.Generations >= balanced.Generations || balanced.Generations >= thorough.Generations {
		t.Errorf("presets should scale generations: quick=%d balanced=%d thorough=%d",
			quick.Generations, balanced.Generations, thorough.Generations)
	}
	if PresetSearchConfig("unknown") != DefaultSearchConfig() {
		t.Errorf("unknown preset should fall back to defaults")
	}
	for _, p := range []Preset{PresetQuick, PresetBalanced, PresetThorough} {
		if err := PresetSearchConfig(p).Validate(); err != nil {
			t.Errorf("preset %q invalid: %v", p, err)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SearchConfig)
		ok     bool
	}{
		{"defaults", func(c *SearchConfig) {}, true},
		{"zero generations", func(c *SearchConfig) { c.Generations = 0 }, false},
		{"zero agents", func(c *SearchConfig) { c.Agents = 0 }, false},
		{"negative deposit", func(c *SearchConfig) { c.Deposit = -1 }, false},
		{"zero initial pheromone", func(c *SearchConfig) { c.InitialPheromone = 0 }, false},
		{"negative threshold", func(c *SearchConfig) { c.AcceptanceThreshold = -0.5 }, false},
		{"unknown strategy", func(c *SearchConfig) { c.Strategy = "greedy" }, false},
		{"exhaustive", func(c *SearchConfig) { c.Strategy = StrategyExhaustive }, true},
		{"exhaustive without cap", func(c *SearchConfig) {
			c.Strategy = StrategyExhaustive
			c.MaxExhaustiveTracks = 0
		}, false},
		{"exhaustive ignores colony params", func(c *SearchConfig) {
			c.Strategy = StrategyExhaustive
			c.Agents = 0
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSearchConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Search != DefaultSearchConfig() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg.Search)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Log.Level)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mix.yaml")
	data := []byte(`search:
  generations: 42
  agents: 7
  acceptance_threshold: 3.5
log:
  level: debug
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Search.Generations != 42 || cfg.Search.Agents != 7 {
		t.Errorf("file values not applied: %+v", cfg.Search)
	}
	if cfg.Search.AcceptanceThreshold != 3.5 || !cfg.Search.Bounded() {
		t.Errorf("acceptance threshold = %g, want 3.5", cfg.Search.AcceptanceThreshold)
	}
	if cfg.Search.Deposit != DefaultSearchConfig().Deposit {
		t.Errorf("unset values should keep defaults, deposit = %g", cfg.Search.Deposit)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("MIX_SEARCH_AGENTS", "12")
	t.Setenv("MIX_SEARCH_STRATEGY", "exhaustive")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Search.Agents != 12 {
		t.Errorf("agents = %d, want 12 from environment", cfg.Search.Agents)
	}
	if cfg.Search.Strategy != StrategyExhaustive {
		t.Errorf("strategy = %q, want exhaustive", cfg.Search.Strategy)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("MIX_SEARCH_GENERATIONS", "0")
	if _, err := Load(""); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load with zero generations = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected error for missing config file")
	}
}
