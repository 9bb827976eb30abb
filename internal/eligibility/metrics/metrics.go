package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the eligibility module.
type Metrics struct {
	// Verdicts by track and outcome
	Outcomes *prometheus.CounterVec

	// Overall evaluation latency, including the province question
	EvaluateLatency prometheus.Histogram
}

// New creates the eligibility metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Outcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cerb_eligibility_outcomes_total",
			Help: "Total eligibility verdicts by track and outcome",
		}, []string{"track", "outcome"}), // track: "primary", "secondary"

		EvaluateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "cerb_eligibility_evaluate_duration_seconds",
			Help:    "Duration of eligibility evaluation including the province question",
			Buckets: []float64{0.001, 0.01, 0.1, 1, 5, 15, 30, 60, 120},
		}),
	}
}

// IncrementOutcome records a verdict.
func (m *Metrics) IncrementOutcome(track, outcome string) {
	if m != nil {
		m.Outcomes.WithLabelValues(track, outcome).Inc()
	}
}

// ObserveEvaluateLatency records the total evaluation duration.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}
