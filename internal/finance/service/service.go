// Package service runs the finance pipeline: fetch the statements, normalise
// them, and derive ratios, the stability classification and display data.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"

	"kontrola/internal/finance/metrics"
	"kontrola/internal/finance/provider"
	"kontrola/internal/finance/ratios"
	"kontrola/internal/finance/statement"
	"kontrola/internal/platform/upstream"
	id "kontrola/pkg/domain"
	dErrors "kontrola/pkg/domain-errors"
	"kontrola/pkg/platform/sentinel"
)

// Provider fetches raw financial statements.
type Provider interface {
	Statement(ctx context.Context, inn id.TaxID) (*provider.Statement, error)
}

// Report is the financial health report of one company.
type Report struct {
	Periods []string           `json:"periods"`
	Rows    []ratios.Row       `json:"rows"`
	Company id.CompanyIdentity `json:"company"`
	Ratios  ratios.RatioSet    `json:"ratios"`
	Charts  ratios.Charts      `json:"charts"`
}

// Service builds finance reports.
type Service struct {
	provider Provider
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// New creates the finance service. logger and m may be nil.
func New(p Provider, logger *slog.Logger, m *metrics.Metrics) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{provider: p, logger: logger, metrics: m}
}

// Report fetches and analyses the statements of inn.
//
// A provider answering without data yields a not_found error. A provider
// that cannot be reached yields an empty report rather than an error.
func (s *Service) Report(ctx context.Context, inn id.TaxID) (*Report, error) {
	if inn.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "inn is required")
	}

	raw, err := s.provider.Statement(ctx, inn)
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		s.metrics.IncrementReport("no_data")
		return nil, dErrors.Wrap(err, dErrors.CodeNotFound, "no financial data for this inn")
	case err != nil:
		s.metrics.IncrementReport("degraded")
		s.logger.WarnContext(ctx, "finance statement unavailable, returning empty report",
			"inn", inn,
			"category", upstream.GetCategory(err),
			"error", err,
		)
		raw = &provider.Statement{}
	default:
		s.metrics.IncrementReport("ok")
	}

	report := Build(raw.Data, raw.Company, inn)
	s.metrics.IncrementStability(string(report.Ratios.Stability()))
	return report, nil
}

// Build analyses a raw statement payload.
func Build(data json.RawMessage, company map[string]any, inn id.TaxID) *Report {
	st := statement.Normalize(data)
	return &Report{
		Periods: st.Periods,
		Rows:    ratios.Rows(st),
		Company: id.CompanyFromBlock(company, inn),
		Ratios:  ratios.Compute(st),
		Charts:  ratios.ChartSeries(st),
	}
}
