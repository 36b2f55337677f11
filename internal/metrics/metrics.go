// Package metrics provides Prometheus instrumentation for the generator.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Provider attempt outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeTimeout = "timeout"
)

var (
	// ProviderAttemptsTotal counts provider calls by outcome.
	ProviderAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codegen_provider_attempts_total",
			Help: "Total number of provider calls by outcome.",
		},
		[]string{"provider", "outcome"},
	)

	// ProviderLatency tracks provider call latency in seconds.
	ProviderLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "codegen_provider_latency_seconds",
			Help:    "Provider call latency in seconds.",
			Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 30, 60},
		},
		[]string{"provider"},
	)

	// GenerationsTotal counts completed generations by the model that answered.
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codegen_generations_total",
			Help: "Total number of generations by answering model.",
		},
		[]string{"model"},
	)

	// PersistenceFailuresTotal counts swallowed storage errors.
	PersistenceFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codegen_persistence_failures_total",
			Help: "Total number of failed conversation or preview writes.",
		},
		[]string{"operation"},
	)

	// ActiveRequests tracks the number of in-flight HTTP requests.
	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "codegen_active_requests",
			Help: "Number of currently in-flight requests.",
		},
	)
)

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
