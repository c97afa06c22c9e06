// Package upstream is the shared HTTP plumbing for third-party JSON providers:
// one best-effort GET per call with its own deadline, an OpenTelemetry span,
// a circuit breaker and a categorised ProviderError on failure.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"kontrola/pkg/platform/circuit"
	"kontrola/pkg/platform/sentinel"
	"kontrola/pkg/requestcontext"
)

const (
	tracerName   = "kontrola/upstream"
	maxBodyBytes = 16 << 20

	// OutcomeOK and friends label the observed result of a call.
	OutcomeOK      = "ok"
	OutcomeError   = "error"
	OutcomeSkipped = "skipped"
)

// Observer receives one observation per call. Both bounded contexts
// implement it with their Prometheus metrics.
type Observer interface {
	ObserveUpstreamCall(provider, endpoint, outcome string, duration time.Duration)
}

// Config configures a Client.
type Config struct {
	ProviderID string
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
	Breaker    *circuit.Breaker
	Observer   Observer
}

// Client performs keyed GET requests against one provider.
type Client struct {
	providerID string
	baseURL    string
	apiKey     string
	timeout    time.Duration
	http       *http.Client
	breaker    *circuit.Breaker
	observer   Observer
	tracer     trace.Tracer
}

// New creates a client. A nil HTTPClient uses a dedicated client without a
// global timeout; each call is bounded by Timeout through its context.
func New(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 25 * time.Second
	}
	return &Client{
		providerID: cfg.ProviderID,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		timeout:    timeout,
		http:       hc,
		breaker:    cfg.Breaker,
		observer:   cfg.Observer,
		tracer:     otel.Tracer(tracerName),
	}
}

// ProviderID identifies the provider in errors, logs and metrics.
func (c *Client) ProviderID() string {
	return c.providerID
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// GetJSON issues GET {base}{path}?key=...&params and decodes the body into out.
func (c *Client) GetJSON(ctx context.Context, path string, params url.Values, out any) error {
	start := time.Now()

	if c.breaker != nil && !c.breaker.Allow() {
		c.observe(path, OutcomeSkipped, start)
		return NewProviderError(ErrorCircuitOpen, c.providerID, "circuit open, call skipped", sentinel.ErrUnavailable)
	}

	ctx, span := c.tracer.Start(ctx, c.providerID+" GET "+path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("upstream.provider", c.providerID),
			attribute.String("upstream.path", path),
		))
	defer span.End()

	err := c.do(ctx, path, params, out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(GetCategory(err)))
		c.recordFailure(err)
		c.observe(path, OutcomeError, start)
		return err
	}
	if c.breaker != nil {
		c.breaker.RecordSuccess()
	}
	c.observe(path, OutcomeOK, start)
	return nil
}

func (c *Client) do(ctx context.Context, path string, params url.Values, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	q := url.Values{}
	for k, vs := range params {
		q[k] = append([]string(nil), vs...)
	}
	q.Set("key", c.apiKey)
	endpoint := c.baseURL + path + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return NewProviderError(ErrorInternal, c.providerID, "build request", err)
	}
	req.Header.Set("Accept", "application/json")
	if rid := requestcontext.RequestID(ctx); rid != "" {
		req.Header.Set("X-Request-ID", rid)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		pe := NewProviderError(categoryForStatus(resp.StatusCode), c.providerID,
			fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
		pe.StatusCode = resp.StatusCode
		return pe
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return NewProviderError(ErrorTimeout, c.providerID, "deadline exceeded reading body", err)
		}
		return NewProviderError(ErrorBadData, c.providerID, "decode response", err)
	}
	return nil
}

func (c *Client) transportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return NewProviderError(ErrorTimeout, c.providerID, "request timed out", err)
	}
	return NewProviderError(ErrorProviderOutage, c.providerID, "request failed", err)
}

// recordFailure counts outages against the breaker. A caller cancelling its
// own request or a provider answering 404 says nothing about provider health.
func (c *Client) recordFailure(err error) {
	if c.breaker == nil {
		return
	}
	switch GetCategory(err) {
	case ErrorNotFound, ErrorCircuitOpen:
		return
	}
	if errors.Is(err, context.Canceled) {
		return
	}
	c.breaker.RecordFailure()
}

func (c *Client) observe(endpoint, outcome string, start time.Time) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveUpstreamCall(c.providerID, endpoint, outcome, time.Since(start))
}
