// Package observability provides Prometheus metrics for the intake service.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	// HTTP request metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Matcher metrics
	MatchQueriesTotal  prometheus.Counter
	MatchResultsTotal  prometheus.Counter
	ContraindicatedTotal prometheus.Counter

	// Intake / provider metrics
	IntakesTotal         *prometheus.CounterVec
	ProviderCallsTotal   *prometheus.CounterVec
	ProviderCallDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers all metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	m := &Metrics{}

	m.HTTPRequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rootline_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	m.HTTPRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rootline_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	m.MatchQueriesTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "rootline_match_queries_total",
			Help: "Total number of matcher queries",
		},
	)

	m.MatchResultsTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "rootline_match_results_total",
			Help: "Total number of herb matches returned",
		},
	)

	m.ContraindicatedTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "rootline_contraindicated_matches_total",
			Help: "Total number of matches flagged as contraindicated",
		},
	)

	m.IntakesTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rootline_intakes_total",
			Help: "Total number of intake plan generations",
		},
		[]string{"status"},
	)

	m.ProviderCallsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rootline_provider_calls_total",
			Help: "Total number of model provider invocations",
		},
		[]string{"section", "status"},
	)

	m.ProviderCallDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rootline_provider_call_duration_seconds",
			Help:    "Duration of model provider invocations in seconds",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 20, 30, 60},
		},
		[]string{"section"},
	)

	return m
}

// RecordHTTPRequest records one HTTP request with its status.
func (m *Metrics) RecordHTTPRequest(method, route, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordMatch records one matcher query and its result counts.
func (m *Metrics) RecordMatch(results, contraindicated int) {
	m.MatchQueriesTotal.Inc()
	m.MatchResultsTotal.Add(float64(results))
	m.ContraindicatedTotal.Add(float64(contraindicated))
}

// RecordProviderCall records one model provider invocation.
func (m *Metrics) RecordProviderCall(section, status string, duration time.Duration) {
	m.ProviderCallsTotal.WithLabelValues(section, status).Inc()
	m.ProviderCallDuration.WithLabelValues(section).Observe(duration.Seconds())
}

// RecordIntake records one plan generation outcome.
func (m *Metrics) RecordIntake(status string) {
	m.IntakesTotal.WithLabelValues(status).Inc()
}
