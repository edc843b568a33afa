package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Conversion outcomes used as the "outcome" label.
const (
	OutcomeConverted = "converted"
	OutcomeCached    = "cached"
	OutcomeFailed    = "failed"
)

// Metrics groups the conversion collectors.
type Metrics struct {
	registry    *prometheus.Registry
	conversions *prometheus.CounterVec
	dfaStates   prometheus.Histogram
	duration    prometheus.Histogram
}

// NewMetrics creates and registers the collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		conversions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automata_conversions_total",
				Help: "Total number of NFA to DFA conversions by outcome",
			},
			[]string{"outcome"},
		),
		dfaStates: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "automata_dfa_states",
				Help:    "Number of states in produced DFAs",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "automata_conversion_duration_seconds",
				Help:    "Duration of subset constructions",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
	m.registry.MustRegister(m.conversions, m.dfaStates, m.duration)
	return m
}

// ObserveConversion records a fresh subset construction.
func (m *Metrics) ObserveConversion(states int, elapsed time.Duration) {
	m.conversions.WithLabelValues(OutcomeConverted).Inc()
	m.dfaStates.Observe(float64(states))
	m.duration.Observe(elapsed.Seconds())
}

// ObserveCacheHit records a conversion served from the store.
func (m *Metrics) ObserveCacheHit() {
	m.conversions.WithLabelValues(OutcomeCached).Inc()
}

// ObserveFailure records a rejected or failed conversion.
func (m *Metrics) ObserveFailure() {
	m.conversions.WithLabelValues(OutcomeFailed).Inc()
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
