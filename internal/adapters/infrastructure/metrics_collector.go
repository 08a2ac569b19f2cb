package infrastructure

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"guardianclima.app/pkg/errors"
)

// PrometheusMetricsCollector implements the MetricsCollector port
type PrometheusMetricsCollector struct {
	registry        *prometheus.Registry
	backendRequests *prometheus.CounterVec
	backendLatency  *prometheus.HistogramVec
	flowOutcomes    *prometheus.CounterVec
	forcedLogouts   *prometheus.CounterVec
}

// NewPrometheusMetricsCollector registers the session metrics on a private
// registry together with the Go and process collectors
func NewPrometheusMetricsCollector() *PrometheusMetricsCollector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &PrometheusMetricsCollector{
		registry: registry,
		backendRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "guardianclima_backend_requests_total",
				Help: "The total number of requests sent to the GuardiánClima API",
			},
			[]string{"endpoint", "result"},
		),
		backendLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "guardianclima_backend_request_duration_seconds",
				Help:    "GuardiánClima API request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		flowOutcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "guardianclima_session_flow_outcomes_total",
				Help: "Outcomes of session flows (success, failure, refused, discarded)",
			},
			[]string{"flow", "outcome"},
		),
		forcedLogouts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "guardianclima_session_forced_logouts_total",
				Help: "Sessions ended because the credential was rejected",
			},
			[]string{"reason"},
		),
	}
}

// RecordBackendCall counts a call and observes its latency. The result label
// is the error type, or "ok".
func (m *PrometheusMetricsCollector) RecordBackendCall(ctx context.Context, endpoint string, duration time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = errors.TypeOf(err).String()
	}
	m.backendRequests.WithLabelValues(endpoint, result).Inc()
	m.backendLatency.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *PrometheusMetricsCollector) RecordFlowOutcome(ctx context.Context, flow string, outcome string) {
	m.flowOutcomes.WithLabelValues(flow, outcome).Inc()
}

func (m *PrometheusMetricsCollector) RecordForcedLogout(ctx context.Context, reason string) {
	m.forcedLogouts.WithLabelValues(reason).Inc()
}

// Handler exposes the registry in the Prometheus text format
func (m *PrometheusMetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry is exposed for tests and additional collectors
func (m *PrometheusMetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}
