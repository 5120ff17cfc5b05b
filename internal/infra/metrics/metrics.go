// Package metrics owns the Prometheus collectors of the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "newsguard"

// Metrics groups the collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	rateLimitRejections  *prometheus.CounterVec
	rateLimitStoreErrors *prometheus.CounterVec
	classifications      *prometheus.CounterVec
	scorerDuration       *prometheus.HistogramVec
}

// New registers every collector together with the Go and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rateLimitRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limit_rejections_total",
			Help:      "Requests rejected by a rate-limit policy.",
		}, []string{"policy"}),
		rateLimitStoreErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limit_store_errors_total",
			Help:      "Counter store failures; the request was let through.",
		}, []string{"policy"}),
		classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classifications_total",
			Help:      "Stored classifications by prediction.",
		}, []string{"prediction"}),
		scorerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scorer_request_duration_seconds",
			Help:      "Latency of calls to the scoring model.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.rateLimitRejections,
		m.rateLimitStoreErrors,
		m.classifications,
		m.scorerDuration,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) RateLimitRejected(policy string) {
	m.rateLimitRejections.WithLabelValues(policy).Inc()
}

func (m *Metrics) RateLimitStoreFailed(policy string) {
	m.rateLimitStoreErrors.WithLabelValues(policy).Inc()
}

func (m *Metrics) ClassificationStored(prediction string) {
	m.classifications.WithLabelValues(prediction).Inc()
}

// ObserveScorer records one scorer call; outcome is "ok", "error" or "saturated".
func (m *Metrics) ObserveScorer(outcome string, seconds float64) {
	m.scorerDuration.WithLabelValues(outcome).Observe(seconds)
}
