package bot

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the dispatcher's Prometheus collectors.
type Metrics struct {
	MessagesProcessed *prometheus.CounterVec
	CommandDuration   *prometheus.HistogramVec
	WizardsCompleted  *prometheus.CounterVec
	ErrorsTotal       prometheus.Counter
}

// NewMetrics registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		MessagesProcessed: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "healthbot",
			Name:      "messages_processed_total",
			Help:      "Total number of processed messages by route.",
		}, []string{"route"}),

		CommandDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "healthbot",
			Name:      "command_duration_seconds",
			Help:      "Duration of message handling by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),

		WizardsCompleted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "healthbot",
			Name:      "wizards_completed_total",
			Help:      "Completed input wizards by name.",
		}, []string{"wizard"}),

		ErrorsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: "healthbot",
			Name:      "errors_total",
			Help:      "Total number of failed message handlings.",
		}),
	}
}

func (m *Metrics) observe(route string, seconds float64) {
	if m == nil {
		return
	}
	m.MessagesProcessed.WithLabelValues(route).Inc()
	m.CommandDuration.WithLabelValues(route).Observe(seconds)
}

func (m *Metrics) wizardDone(name string) {
	if m == nil {
		return
	}
	m.WizardsCompleted.WithLabelValues(name).Inc()
}

func (m *Metrics) failed() {
	if m == nil {
		return
	}
	m.ErrorsTotal.Inc()
}
