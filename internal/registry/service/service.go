// Package service aggregates registry records across families into
// summaries and drill-down pages.
package service

import (
	"context"
	"io"
	"log/slog"
	"math"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"

	"kontrola/internal/platform/upstream"
	"kontrola/internal/registry/dates"
	"kontrola/internal/registry/extract"
	"kontrola/internal/registry/metrics"
	"kontrola/internal/registry/models"
	id "kontrola/pkg/domain"
	dErrors "kontrola/pkg/domain-errors"
)

// Provider fetches raw registry documents.
type Provider interface {
	Fetch(ctx context.Context, family models.Family, params url.Values) (models.Document, error)
}

const (
	defaultConcurrency  = 3
	defaultDefaultLimit = 20
	defaultMaxLimit     = 100
)

// Service is the registry aggregator. It holds no per-request state.
type Service struct {
	provider     Provider
	logger       *slog.Logger
	metrics      *metrics.Metrics
	concurrency  int
	defaultLimit int
	maxLimit     int
}

// Option configures the Service.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithConcurrency bounds the number of contract calls in flight.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithPaging sets the default and maximum page size.
func WithPaging(defaultLimit, maxLimit int) Option {
	return func(s *Service) {
		if defaultLimit > 0 {
			s.defaultLimit = defaultLimit
		}
		if maxLimit > 0 {
			s.maxLimit = maxLimit
		}
	}
}

// New creates the aggregator.
func New(provider Provider, opts ...Option) *Service {
	s := &Service{
		provider:     provider,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		concurrency:  defaultConcurrency,
		defaultLimit: defaultDefaultLimit,
		maxLimit:     defaultMaxLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.maxLimit < s.defaultLimit {
		s.maxLimit = s.defaultLimit
	}
	return s
}

// result is the merged contribution of one or more provider calls.
type result struct {
	docs     []models.Document
	records  []models.Record
	total    int
	lastDate *string
}

func (r *result) merge(o result) {
	r.docs = append(r.docs, o.docs...)
	r.records = append(r.records, o.records...)
	r.total += o.total
	r.lastDate = dates.Max(r.lastDate, o.lastDate)
}

// Summary counts records and finds the latest event of every family.
func (s *Service) Summary(ctx context.Context, inn id.TaxID) (*models.Summary, error) {
	if inn.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "inn is required")
	}
	start := time.Now()
	defer func() { s.metrics.ObserveAggregate("summary", time.Since(start)) }()

	summary := &models.Summary{}
	var payloads []models.Document
	for _, f := range models.Families {
		params := models.Query{INN: inn, Family: f}.Params()

		var r result
		if f == models.FamilyContracts {
			r = s.contracts(ctx, params, models.Combinations(nil, ""))
		} else {
			r = s.single(ctx, f, params)
		}
		payloads = append(payloads, r.docs...)
		summary.Set(f, models.FamilySummary{Count: r.total, LastDate: r.lastDate})
	}

	summary.Company = id.CompanyFromBlock(extract.FirstCompany(payloads...), inn)
	return summary, nil
}

// Page returns one drill-down page of a family.
//
// Unpinned contract queries merge six provider calls. Each call asks for the
// first page*limit records so the merged list covers the requested window,
// which is then sliced in memory; totals are summed across the six. Pinned
// queries forward page and limit and return every merged record, so a query
// pinning only law or only role yields up to limit items per combination
// while Pages still counts pages of limit items over the summed total.
func (s *Service) Page(ctx context.Context, q models.Query) (*models.Page, error) {
	if q.INN.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "inn is required")
	}
	if q.Family.Path() == "" {
		return nil, dErrors.New(dErrors.CodeNotFound, "unknown registry family: "+string(q.Family))
	}
	start := time.Now()
	defer func() { s.metrics.ObserveAggregate("page", time.Since(start)) }()

	page, limit := s.normalizePaging(q.Page, q.Limit)
	base := q.Params()

	if q.Family != models.FamilyContracts {
		r := s.single(ctx, q.Family, models.WithPaging(base, page, limit))
		return &models.Page{
			Items:    nonNil(r.records),
			Total:    r.total,
			Page:     page,
			Pages:    models.PageCount(r.total, limit),
			LastDate: r.lastDate,
		}, nil
	}

	combos := models.Combinations(q.Law, q.Role)
	if q.Pinned() {
		r := s.contracts(ctx, models.WithPaging(base, page, limit), combos)
		return &models.Page{
			Items:    nonNil(r.records),
			Total:    r.total,
			Page:     page,
			Pages:    models.PageCount(r.total, limit),
			LastDate: r.lastDate,
		}, nil
	}

	r := s.contracts(ctx, models.WithPaging(base, 1, page*limit), combos)
	return &models.Page{
		Items:    window(r.records, page, limit),
		Total:    r.total,
		Page:     page,
		Pages:    models.PageCount(r.total, limit),
		LastDate: r.lastDate,
	}, nil
}

func (s *Service) normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}
	// page*limit is sent upstream and must not overflow.
	if maxPage := math.MaxInt / limit; page > maxPage {
		page = maxPage
	}
	return page, limit
}

// single performs one call for a non-contracts family.
func (s *Service) single(ctx context.Context, family models.Family, params url.Values) result {
	doc := s.fetch(ctx, family, params)
	records := extract.Records(doc)
	return result{
		docs:     []models.Document{doc},
		records:  records,
		total:    extract.Total(doc),
		lastDate: dates.Latest(records, family.DateFields()...),
	}
}

// contracts runs one call per combination on a bounded pool and merges the
// results in combination order, whatever order the calls finish in.
func (s *Service) contracts(ctx context.Context, params url.Values, combos []models.Combination) result {
	parts := make([]result, len(combos))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, c := range combos {
		g.Go(func() error {
			doc := s.fetch(ctx, models.FamilyContracts, models.WithCombination(params, c),
				"law", c.Law.String(), "role", string(c.Role))
			records := extract.Records(doc)
			tagged := make([]models.Record, len(records))
			for j, rec := range records {
				tagged[j] = rec.Tagged(c)
			}
			parts[i] = result{
				docs:     []models.Document{doc},
				records:  tagged,
				total:    extract.Total(doc),
				lastDate: dates.Latest(records, models.FamilyContracts.DateFields()...),
			}
			return nil
		})
	}
	_ = g.Wait()

	var merged result
	for _, p := range parts {
		merged.merge(p)
	}
	return merged
}

// fetch calls the provider and absorbs any failure into an empty document.
func (s *Service) fetch(ctx context.Context, family models.Family, params url.Values, attrs ...any) models.Document {
	doc, err := s.provider.Fetch(ctx, family, params)
	if err != nil {
		category := upstream.GetCategory(err)
		s.metrics.IncrementDegraded(string(family), string(category))
		s.logger.WarnContext(ctx, "registry call failed, contributing no records",
			append([]any{
				"family", family,
				"inn", params.Get("inn"),
				"category", category,
				"error", err,
			}, attrs...)...,
		)
		return models.Document{}
	}
	if doc == nil {
		return models.Document{}
	}
	return doc
}

func window(records []models.Record, page, limit int) []models.Record {
	if page < 1 || limit < 1 || page-1 > len(records)/limit {
		return []models.Record{}
	}
	start := (page - 1) * limit
	if start >= len(records) {
		return []models.Record{}
	}
	end := start + limit
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

func nonNil(records []models.Record) []models.Record {
	if records == nil {
		return []models.Record{}
	}
	return records
}
