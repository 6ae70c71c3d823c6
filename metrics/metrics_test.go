package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/RyanBlaney/sonido-mix/algorithms/tonal"
	"github.com/RyanBlaney/sonido-mix/logging"
	"github.com/RyanBlaney/sonido-mix/mix"
	"github.com/RyanBlaney/sonido-mix/mix/config"
)

func init() {
	logging.SetGlobalLogger(nil)
}

func TestCollectorObservesSearch(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	c, err := NewCollector(reg)
	if err != nil {
		t.Fatal(err)
	}

	tracks := []mix.Track{
		{ID: "a", BPM: 120, Key: tonal.KeyAt(8, tonal.Major)},
		{ID: "b", BPM: 121, Key: tonal.KeyAt(9, tonal.Major)},
		{ID: "c", BPM: 119, Key: tonal.KeyAt(8, tonal.Minor)},
	}
	cfg := config.DefaultSearchConfig()
	cfg.Generations = 15
	cfg.Agents = 4

	timer := c.StartSearch()
	m, err := mix.NewSequencer(cfg, mix.WithObserver(c)).Run(tracks, 1)
	timer.ObserveDuration()
	if err != nil {
		t.Fatal(err)
	}

	if got := testutil.ToFloat64(c.generations); got != 15 {
		t.Errorf("generations_total = %v, want 15", got)
	}
	if got := testutil.ToFloat64(c.mixes.WithLabelValues("complete")); got != 1 {
		t.Errorf("mixes_total{outcome=complete} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.bestCost); got != m.Stats.Sum {
		t.Errorf("best_cost = %v, want %v", got, m.Stats.Sum)
	}
	if got := testutil.ToFloat64(c.bestLength); got != 3 {
		t.Errorf("best_length = %v, want 3", got)
	}
	if got := testutil.CollectAndCount(c.mixCost); got != 1 {
		t.Errorf("mix_total_cost series = %d, want 1", got)
	}

	n, err := testutil.GatherAndCount(reg)
	if err != nil {
		t.Fatal(err)
	}
	if n != 7 {
		t.Errorf("gathered %d series, want 7", n)
	}
}

func TestCollectorPartialMix(t *testing.T) {
	c, err := NewCollector(prometheus.NewRegistry())
	if err != nil {
		t.Fatal(err)
	}

	c.ObserveMix(&mix.Mix{
		Steps:  []mix.MixStep{{Track: mix.Track{ID: "a"}}},
		Unused: []mix.Track{{ID: "b"}, {ID: "c"}},
	})

	if got := testutil.ToFloat64(c.mixes.WithLabelValues("partial")); got != 1 {
		t.Errorf("mixes_total{outcome=partial} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.unused); got != 2 {
		t.Errorf("unused_tracks = %v, want 2", got)
	}
}

func TestCollectorDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewCollector(reg); err != nil {
		t.Fatal(err)
	}
	if _, err := NewCollector(reg); err == nil {
		t.Error("registering twice on one registry should fail")
	}
}
