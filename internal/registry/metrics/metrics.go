package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for registry aggregation.
type Metrics struct {
	// Upstream call latencies by endpoint and outcome
	UpstreamLatency *prometheus.HistogramVec

	// Calls whose failure was absorbed into an empty contribution
	DegradedCalls *prometheus.CounterVec

	// Full aggregation latency by operation ("summary", "page")
	AggregateLatency *prometheus.HistogramVec
}

// New creates the registry metrics on the default registerer.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the metrics on reg.
func NewWith(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		UpstreamLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "kontrola_registry_upstream_duration_seconds",
			Help:    "Duration of registry provider calls by endpoint and outcome",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25},
		}, []string{"provider", "endpoint", "outcome"}),

		DegradedCalls: f.NewCounterVec(prometheus.CounterOpts{
			Name: "kontrola_registry_degraded_calls_total",
			Help: "Registry calls that failed and contributed zero records",
		}, []string{"family", "category"}),

		AggregateLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "kontrola_registry_aggregate_duration_seconds",
			Help:    "Duration of registry aggregation including all provider calls",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"operation"}),
	}
}

// ObserveUpstreamCall records one provider call.
func (m *Metrics) ObserveUpstreamCall(provider, endpoint, outcome string, d time.Duration) {
	if m != nil {
		m.UpstreamLatency.WithLabelValues(provider, endpoint, outcome).Observe(d.Seconds())
	}
}

// IncrementDegraded records an absorbed failure.
func (m *Metrics) IncrementDegraded(family, category string) {
	if m != nil {
		m.DegradedCalls.WithLabelValues(family, category).Inc()
	}
}

// ObserveAggregate records the duration of a summary or page request.
func (m *Metrics) ObserveAggregate(operation string, d time.Duration) {
	if m != nil {
		m.AggregateLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}
