package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for browser launches.
type Metrics struct {
	Links *prometheus.CounterVec
}

// New creates the notifier metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Links: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cerb_notify_links_total",
			Help: "Link open attempts by result",
		}, []string{"result"}), // result: "opened", "failed", "skipped", "cancelled"
	}
}

func (m *Metrics) IncrementLink(result string) {
	if m != nil {
		m.Links.WithLabelValues(result).Inc()
	}
}
