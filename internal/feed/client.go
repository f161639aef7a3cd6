// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tgwang98/tgwang98.github.io/internal/httputil"
)

// Client fetches and parses a feed in one call.
type Client struct {
	HTTP      *http.Client
	UserAgent string
}

// Fetch retrieves feedURL and parses the body into Records.
func (c *Client) Fetch(ctx context.Context, feedURL string) ([]Record, error) {
	body, err := httputil.Get(ctx, c.HTTP, feedURL, c.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("fetching feed: %w", err)
	}
	return Parse(body)
}
