package opendota

import (
	"net/http"
	"time"

	"github.com/pfrederiksen/dotafeed/internal/ratelimit"
)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used by tests and self-hosted
// deployments.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithAPIKey sets the API key sent as the api_key query parameter.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithMinInterval spaces requests by at least the given interval.
func WithMinInterval(d time.Duration) Option {
	return func(c *Client) { c.limiter = ratelimit.New(d) }
}
