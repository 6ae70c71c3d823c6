package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/RyanBlaney/sonido-mix/mix"
)

const namespace = "mixplan"

// Collector exposes search progress as Prometheus metrics. It implements
// mix.Observer so it can be handed straight to a sequencer.
type Collector struct {
	generations    prometheus.Counter
	mixes          *prometheus.CounterVec
	bestCost       prometheus.Gauge
	bestLength     prometheus.Gauge
	unused         prometheus.Gauge
	mixCost        prometheus.Histogram
	searchDuration prometheus.Histogram
}

var _ mix.Observer = (*Collector)(nil)

// NewCollector creates the search metrics and registers them on reg
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		generations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Colony generations completed",
		}),
		mixes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "mixes_total",
				Help:      "Mixes assembled, by whether every input track was placed",
			},
			[]string{"outcome"},
		),
		bestCost: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "best_cost",
			Help:      "Cost of the best path found so far",
		}),
		bestLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "best_length",
			Help:      "Number of tracks on the best path found so far",
		}),
		unused: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "unused_tracks",
			Help:      "Input tracks left out of the last mix",
		}),
		mixCost: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "mix_total_cost",
			Help:      "Total transition cost of assembled mixes",
			Buckets:   prometheus.ExponentialBuckets(0.25, 2, 10),
		}),
		searchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Time spent searching for and assembling a mix",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	for _, col := range []prometheus.Collector{
		c.generations, c.mixes, c.bestCost, c.bestLength, c.unused, c.mixCost, c.searchDuration,
	} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ObserveGeneration records one finished colony generation
func (c *Collector) ObserveGeneration(s mix.GenerationStats) {
	c.generations.Inc()
	c.bestCost.Set(s.GlobalCost)
	c.bestLength.Set(float64(s.GlobalLength))
}

// ObserveMix records the final mix of a search
func (c *Collector) ObserveMix(m *mix.Mix) {
	outcome := "complete"
	if len(m.Unused) > 0 {
		outcome = "partial"
	}
	c.mixes.WithLabelValues(outcome).Inc()
	c.bestCost.Set(m.Stats.Sum)
	c.bestLength.Set(float64(m.Len()))
	c.unused.Set(float64(len(m.Unused)))
	c.mixCost.Observe(m.Stats.Sum)
}

// StartSearch starts timing a search. Call ObserveDuration on the result
// when the search returns.
func (c *Collector) StartSearch() *prometheus.Timer {
	return prometheus.NewTimer(c.searchDuration)
}
