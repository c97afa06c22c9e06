package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the finance pipeline.
type Metrics struct {
	UpstreamLatency *prometheus.HistogramVec

	// Reports by outcome: "ok", "no_data", "degraded"
	Reports *prometheus.CounterVec

	// Stability classification of produced reports
	Stability *prometheus.CounterVec
}

// New creates the finance metrics on the default registerer.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the metrics on reg.
func NewWith(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		UpstreamLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "kontrola_finance_upstream_duration_seconds",
			Help:    "Duration of financial statement provider calls by outcome",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25},
		}, []string{"provider", "endpoint", "outcome"}),

		Reports: f.NewCounterVec(prometheus.CounterOpts{
			Name: "kontrola_finance_reports_total",
			Help: "Finance reports by outcome",
		}, []string{"outcome"}),

		Stability: f.NewCounterVec(prometheus.CounterOpts{
			Name: "kontrola_finance_stability_total",
			Help: "Computed stability classifications",
		}, []string{"classification"}),
	}
}

// ObserveUpstreamCall records one provider call.
func (m *Metrics) ObserveUpstreamCall(provider, endpoint, outcome string, d time.Duration) {
	if m != nil {
		m.UpstreamLatency.WithLabelValues(provider, endpoint, outcome).Observe(d.Seconds())
	}
}

// IncrementReport records the outcome of a finance request.
func (m *Metrics) IncrementReport(outcome string) {
	if m != nil {
		m.Reports.WithLabelValues(outcome).Inc()
	}
}

// IncrementStability records a classification.
func (m *Metrics) IncrementStability(classification string) {
	if m != nil {
		m.Stability.WithLabelValues(classification).Inc()
	}
}
