package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := NewWith(prometheus.NewRegistry())

	m.IncrementDegraded("contracts", "timeout")
	m.IncrementDegraded("contracts", "timeout")
	m.ObserveUpstreamCall("registry", "/contracts", "ok", 10*time.Millisecond)
	m.ObserveAggregate("summary", time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.DegradedCalls.WithLabelValues("contracts", "timeout")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.UpstreamLatency))
	assert.Equal(t, 1, testutil.CollectAndCount(m.AggregateLatency))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementDegraded("litigation", "internal")
		m.ObserveUpstreamCall("registry", "/legal-cases", "error", time.Millisecond)
		m.ObserveAggregate("page", time.Millisecond)
	})
}
