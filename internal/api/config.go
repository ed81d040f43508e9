package api

import (
	"fmt"
	"time"
)

// Defaults applied by NewConfig.
const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.mailbreeze.com/v1"
	// DefaultTimeout is the per-request HTTP timeout.
	DefaultTimeout = 30 * time.Second
	// DefaultMaxAttempts is the total number of attempts per call,
	// including the first one.
	DefaultMaxAttempts = 3
)

// redactedPlaceholder replaces the API key in every textual rendering
// of a Config. The key itself must never reach logs or error messages.
const redactedPlaceholder = "[REDACTED]"

// Config holds the immutable client configuration. It is a value type:
// the With* methods return modified copies, so a Config shared across
// concurrent calls is never mutated.
type Config struct {
	apiKey      string
	baseURL     string
	timeout     time.Duration
	maxAttempts int
}

// NewConfig returns a Config for the given API key with default base URL,
// timeout and attempt budget.
func NewConfig(apiKey string) Config {
	return Config{
		apiKey:      apiKey,
		baseURL:     DefaultBaseURL,
		timeout:     DefaultTimeout,
		maxAttempts: DefaultMaxAttempts,
	}
}

// WithBaseURL returns a copy of the Config pointing at the given base URL.
func (c Config) WithBaseURL(url string) Config {
	c.baseURL = url
	return c
}

// WithTimeout returns a copy of the Config with the given request timeout.
func (c Config) WithTimeout(timeout time.Duration) Config {
	c.timeout = timeout
	return c
}

// WithMaxAttempts returns a copy of the Config with the given total attempt
// budget. Values below 1 are clamped to 1.
func (c Config) WithMaxAttempts(attempts int) Config {
	if attempts < 1 {
		attempts = 1
	}
	c.maxAttempts = attempts
	return c
}

// APIKey returns the configured credential.
func (c Config) APIKey() string { return c.apiKey }

// BaseURL returns the configured API endpoint.
func (c Config) BaseURL() string { return c.baseURL }

// Timeout returns the per-request timeout.
func (c Config) Timeout() time.Duration { return c.timeout }

// MaxAttempts returns the total attempt budget per call.
func (c Config) MaxAttempts() int { return c.maxAttempts }

// String renders the Config with the API key redacted.
func (c Config) String() string {
	return fmt.Sprintf("api.Config{APIKey:%s, BaseURL:%s, Timeout:%s, MaxAttempts:%d}",
		redactedPlaceholder, c.baseURL, c.timeout, c.maxAttempts)
}

// GoString renders the Config for %#v with the API key redacted.
func (c Config) GoString() string {
	return c.String()
}
