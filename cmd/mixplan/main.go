package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/RyanBlaney/sonido-mix/logging"
	"github.com/RyanBlaney/sonido-mix/metrics"
	"github.com/RyanBlaney/sonido-mix/mix"
	"github.com/RyanBlaney/sonido-mix/mix/config"
	"github.com/RyanBlaney/sonido-mix/report"
	"github.com/RyanBlaney/sonido-mix/tracklist"
)

type options struct {
	tracks      string
	format      string
	configPath  string
	seed        uint64
	strategy    string
	preset      string
	json        bool
	skipInvalid bool
	keyCounts   bool
	metricsOut  string
	logLevel    string
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("mixplan", flag.ContinueOnError)
	o := &options{}

	fs.StringVar(&o.tracks, "tracks", "", "track list file or directory of tagged audio files (required)")
	fs.StringVar(&o.format, "format", "", "track list format: tsv, lines, yaml, tags (default: from the path)")
	fs.StringVar(&o.configPath, "config", "", "YAML or JSON configuration file")
	fs.Uint64Var(&o.seed, "seed", 1, "random seed; equal seeds give equal mixes")
	fs.StringVar(&o.strategy, "strategy", "", "search strategy: colony or exhaustive")
	fs.StringVar(&o.preset, "preset", "", "colony preset: quick, balanced or thorough (replaces search parameters from -config)")
	fs.BoolVar(&o.json, "json", false, "write the mix as JSON")
	fs.BoolVar(&o.skipInvalid, "skip-invalid", false, "skip unreadable tracks instead of failing")
	fs.BoolVar(&o.keyCounts, "key-counts", false, "print how many tracks sit in each key before the mix")
	fs.StringVar(&o.metricsOut, "metrics-out", "", "write search metrics to this file in Prometheus text format")
	fs.StringVar(&o.logLevel, "log-level", "", "debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if o.tracks == "" {
		return nil, errors.New("-tracks is required")
	}
	return o, nil
}

// searchConfig applies command line overrides on top of the loaded config
func (o *options) searchConfig(cfg *config.Config) (config.SearchConfig, error) {
	search := cfg.Search

	if o.preset != "" {
		p := config.Preset(o.preset)
		switch p {
		case config.PresetQuick, config.PresetBalanced, config.PresetThorough:
		default:
			return search, fmt.Errorf("unknown preset %q", o.preset)
		}
		strategy := search.Strategy
		search = config.PresetSearchConfig(p)
		search.Strategy = strategy
	}
	if o.strategy != "" {
		search.Strategy = config.Strategy(o.strategy)
	}
	return search, search.Validate()
}

func setupLogging(cfg config.LogConfig, override string) error {
	name := cfg.Level
	if override != "" {
		name = override
	}
	level, err := logging.ParseLevel(name)
	if err != nil {
		return err
	}
	if !cfg.Colors {
		logging.DisableColors()
	}
	logging.SetLevel(level)
	return nil
}

func run(args []string, stdout io.Writer) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if err := setupLogging(cfg.Log, o.logLevel); err != nil {
		return err
	}
	search, err := o.searchConfig(cfg)
	if err != nil {
		return err
	}

	format, err := tracklist.ParseFormat(o.format)
	if err != nil {
		return err
	}
	decCfg := tracklist.DefaultDecoderConfig()
	decCfg.Format = format
	decCfg.SkipInvalid = o.skipInvalid

	list, err := tracklist.NewDecoder(decCfg).DecodeFile(o.tracks)
	if err != nil {
		return err
	}

	logger := logging.WithFields(logging.Fields{
		"component": "mixplan",
		"tracks":    len(list.Tracks),
	})
	if len(list.Skipped) > 0 {
		logger.Warn("Some tracks were skipped", logging.Fields{"skipped": len(list.Skipped)})
	}

	if o.keyCounts {
		if err := report.WriteKeyCounts(stdout, list.Tracks); err != nil {
			return err
		}
		fmt.Fprintln(stdout)
	}

	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg)
	if err != nil {
		return err
	}

	seq := mix.NewSequencer(search,
		mix.WithObserver(collector),
		mix.WithLogger(logger),
	)
	timer := collector.StartSearch()
	m, err := seq.Run(list.Tracks, o.seed)
	timer.ObserveDuration()
	if err != nil {
		return err
	}

	if o.metricsOut != "" {
		if err := prometheus.WriteToTextfile(o.metricsOut, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	if o.json {
		return report.WriteJSON(stdout, m)
	}
	return report.WriteText(stdout, m)
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logging.Fatal(err, "mixplan failed")
	}
}
