// Package provider is the financial statement provider client.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"kontrola/internal/platform/upstream"
	id "kontrola/pkg/domain"
	"kontrola/pkg/platform/sentinel"
)

// ProviderID names the statement provider in logs, spans and metrics.
const ProviderID = "finances"

const statementPath = "/finances"

// Statement is the provider response: the statement matrix, whose nesting
// order is not fixed, and the optional company block.
type Statement struct {
	Data    json.RawMessage
	Company map[string]any
}

// statementBody is the wire shape. company is kept raw so that a malformed
// block never discards the statement data.
type statementBody struct {
	Data    json.RawMessage `json:"data"`
	Company json.RawMessage `json:"company"`
}

// Client fetches financial statements.
type Client struct {
	up *upstream.Client
}

// New wraps a configured upstream client.
func New(up *upstream.Client) *Client {
	return &Client{up: up}
}

// Statement fetches the statements of one company.
//
// A non-2xx answer or an empty data block is reported as sentinel.ErrNotFound.
// Transport and decoding failures are returned as *upstream.ProviderError.
func (c *Client) Statement(ctx context.Context, inn id.TaxID) (*Statement, error) {
	if !c.up.Enabled() {
		return nil, upstream.NewProviderError(upstream.ErrorAuthentication, c.up.ProviderID(), "no API key configured", sentinel.ErrUnavailable)
	}

	var body statementBody
	err := c.up.GetJSON(ctx, statementPath, url.Values{"inn": {inn.String()}}, &body)
	if err != nil {
		var pe *upstream.ProviderError
		if errors.As(err, &pe) && pe.StatusCode != 0 {
			return nil, fmt.Errorf("%w: %w", sentinel.ErrNotFound, err)
		}
		return nil, err
	}
	if isEmpty(body.Data) {
		return nil, fmt.Errorf("no statement data for %s: %w", inn, sentinel.ErrNotFound)
	}
	return &Statement{Data: body.Data, Company: companyBlock(body.Company)}, nil
}

// companyBlock returns the company object, or nil for anything else.
func companyBlock(raw json.RawMessage) map[string]any {
	var block map[string]any
	if err := json.Unmarshal(raw, &block); err != nil || len(block) == 0 {
		return nil
	}
	return block
}

// isEmpty reports whether a JSON value is absent or falsy.
func isEmpty(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", "{}", "[]", `""`, "0", "false":
		return true
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return true
	}
	switch x := v.(type) {
	case map[string]any:
		return len(x) == 0
	case []any:
		return len(x) == 0
	}
	return false
}
