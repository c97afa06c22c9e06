package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"kontrola/internal/finance/metrics"
	"kontrola/internal/finance/provider"
	"kontrola/internal/finance/ratios"
	"kontrola/internal/finance/service/mocks"
	"kontrola/internal/platform/upstream"
	id "kontrola/pkg/domain"
	dErrors "kontrola/pkg/domain-errors"
	"kontrola/pkg/platform/sentinel"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Provider

const inn = id.TaxID("7700000000")

func newService(t *testing.T) (*Service, *mocks.MockProvider, *metrics.Metrics) {
	t.Helper()
	ctrl := gomock.NewController(t)
	p := mocks.NewMockProvider(ctrl)
	m := metrics.NewWith(prometheus.NewRegistry())
	return New(p, nil, m), p, m
}

func TestReport(t *testing.T) {
	svc, p, m := newService(t)
	p.EXPECT().Statement(gomock.Any(), inn).Return(&provider.Statement{
		Data: json.RawMessage(`{
			"1600": {"2021": 100, "2022": 200},
			"1300": {"2021": 50, "2022": 60},
			"1170": {"2021": 0, "2022": 0}
		}`),
		Company: map[string]any{"НаимСокр": "ООО \"РОМАШКА\"", "ИНН": "7700000000"},
	}, nil)

	report, err := svc.Report(context.Background(), inn)
	require.NoError(t, err)

	assert.Equal(t, []string{"2021", "2022"}, report.Periods)
	assert.Len(t, report.Rows, 2)
	assert.InDelta(t, 55.0/150.0, report.Ratios.Get(ratios.Autonomy), 1e-9)
	assert.Equal(t, "ООО \"РОМАШКА\"", report.Company.Name)
	assert.Equal(t, []float64{0.5, 0.3}, report.Charts.Autonomy)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Reports.WithLabelValues("ok")))
}

func TestReportNoData(t *testing.T) {
	svc, p, m := newService(t)
	p.EXPECT().Statement(gomock.Any(), inn).Return(nil, fmt.Errorf("empty: %w", sentinel.ErrNotFound))

	_, err := svc.Report(context.Background(), inn)

	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Reports.WithLabelValues("no_data")))
}

func TestReportDegradesOnProviderFailure(t *testing.T) {
	svc, p, m := newService(t)
	p.EXPECT().Statement(gomock.Any(), inn).
		Return(nil, upstream.NewProviderError(upstream.ErrorTimeout, provider.ProviderID, "request timed out", context.DeadlineExceeded))

	report, err := svc.Report(context.Background(), inn)
	require.NoError(t, err)

	assert.Empty(t, report.Periods)
	assert.Empty(t, report.Rows)
	assert.Equal(t, ratios.StabilityCrisis, report.Ratios.Stability())
	assert.Equal(t, id.CompanyIdentity{INN: "7700000000"}, report.Company)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Reports.WithLabelValues("degraded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Stability.WithLabelValues("Crisis")))
}

func TestReportRequiresIdentifier(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Report(context.Background(), "")

	assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func TestReportJSONShape(t *testing.T) {
	report := Build(json.RawMessage(`{"2022": {"2110": 10}}`), nil, inn)

	b, err := json.Marshal(report)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	for _, key := range []string{"periods", "rows", "company", "ratios", "charts"} {
		assert.Contains(t, out, key)
	}
	charts := out["charts"].(map[string]any)
	for _, key := range []string{"periods", "sales", "profit", "autonomy", "current_ratio"} {
		assert.Contains(t, charts, key)
	}
	assert.Equal(t, "Crisis", out["ratios"].(map[string]any)[ratios.StabilityKey])
}
