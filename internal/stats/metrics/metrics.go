package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the stats client.
type Metrics struct {
	FetchLatency *prometheus.HistogramVec
	FetchErrors  *prometheus.CounterVec
	Cache        *prometheus.CounterVec
}

// New creates the stats metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FetchLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cerb_stats_fetch_duration_seconds",
			Help:    "Duration of stats API queries, cache hits included",
			Buckets: []float64{0.005, 0.025, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"query"}),

		FetchErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cerb_stats_fetch_errors_total",
			Help: "Failed stats API queries by error category",
		}, []string{"query", "category"}),

		Cache: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cerb_stats_cache_total",
			Help: "Stats cache lookups by result",
		}, []string{"result"}), // result: "hit", "miss", "error"
	}
}

func (m *Metrics) ObserveFetch(query string, d time.Duration) {
	if m != nil {
		m.FetchLatency.WithLabelValues(query).Observe(d.Seconds())
	}
}

func (m *Metrics) IncrementError(query, category string) {
	if m != nil {
		m.FetchErrors.WithLabelValues(query, category).Inc()
	}
}

func (m *Metrics) IncrementCache(result string) {
	if m != nil {
		m.Cache.WithLabelValues(result).Inc()
	}
}
