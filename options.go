package mailbreeze

import (
	"net/http"
	"time"

	"github.com/MailBreeze/mailbreeze-go/internal/api"
)

// clientConfig holds configuration accumulated from options.
type clientConfig struct {
	config     api.Config
	httpClient *http.Client
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets a custom API base URL. Useful for testing against a
// mock server or a regional endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *clientConfig) {
		c.config = c.config.WithBaseURL(baseURL)
	}
}

// WithTimeout sets the per-request timeout. The default is 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.config = c.config.WithTimeout(timeout)
	}
}

// WithMaxAttempts sets the total number of attempts per request,
// including the first. Values below 1 are treated as 1. The default is 3.
func WithMaxAttempts(attempts int) Option {
	return func(c *clientConfig) {
		c.config = c.config.WithMaxAttempts(attempts)
	}
}

// WithHTTPClient sets a custom HTTP client. The configured timeout is
// not applied to it; the caller controls the client completely.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = httpClient
	}
}
