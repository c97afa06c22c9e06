// Package providers is the registry provider client. It maps each record
// family to its endpoint and returns the raw document untouched.
package providers

import (
	"context"
	"net/url"

	"kontrola/internal/platform/upstream"
	"kontrola/internal/registry/models"
)

// ProviderID names the registry provider in logs, spans and metrics.
const ProviderID = "registry"

// Client fetches registry documents.
type Client struct {
	up *upstream.Client
}

// New wraps a configured upstream client.
func New(up *upstream.Client) *Client {
	return &Client{up: up}
}

// Fetch queries one family with the given filters. Without an API key no
// call is made and an empty document is returned.
func (c *Client) Fetch(ctx context.Context, family models.Family, params url.Values) (models.Document, error) {
	if !c.up.Enabled() {
		return models.Document{}, nil
	}
	path := family.Path()
	if path == "" {
		return nil, upstream.NewProviderError(upstream.ErrorInternal, c.up.ProviderID(), "unknown family "+string(family), nil)
	}

	var doc models.Document
	if err := c.up.GetJSON(ctx, path, params, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = models.Document{}
	}
	return doc, nil
}
