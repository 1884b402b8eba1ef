package observe

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes tick counts and durations as a prometheus.Collector.
type Metrics struct {
	ticks    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates unregistered collectors; register them on the registry
// of your choice (or prometheus.MustRegister for the default one).
func NewMetrics() *Metrics {
	return &Metrics{
		ticks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tinybt_ticks_total",
				Help: "Total observed ticks, by node and resulting status.",
			},
			[]string{"node", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "tinybt_tick_duration_seconds",
				Help: "Duration of observed ticks.",
			},
			[]string{"node"},
		),
	}
}

// Describe implements prometheus.Collector.
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.ticks.Describe(ch)
	m.duration.Describe(ch)
}

// Collect implements prometheus.Collector.
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.ticks.Collect(ch)
	m.duration.Collect(ch)
}

// Hooks adapts the metrics into tick hooks for Wrap.
func (m *Metrics) Hooks() Hooks {
	return Hooks{
		OnTickEnd: func(ev Event) {
			m.ticks.WithLabelValues(ev.Node, ev.Status.String()).Inc()
			m.duration.WithLabelValues(ev.Node).Observe(ev.Elapsed.Seconds())
		},
	}
}
