package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"syscall"

	"github.com/hashicorp/go-cleanhttp"
)

// userAgent identifies this client on every request.
const userAgent = "mailbreeze-go/" + Version

// Version is the client library version.
const Version = "0.1.0"

// Query holds flat query parameters for a request. String values are
// appended verbatim, nil values are omitted, and any other scalar is
// appended via its textual representation.
type Query map[string]any

// Client executes HTTP calls against the MailBreeze API. It owns the
// retry loop, backoff and response interpretation. A Client is safe for
// concurrent use: the configuration is read-only and every call carries
// its own attempt counter.
type Client struct {
	config     Config
	httpClient *http.Client
}

// New creates an API client from the given configuration.
func New(config Config) (*Client, error) {
	if config.APIKey() == "" {
		return nil, ErrMissingAPIKey
	}

	httpClient := cleanhttp.DefaultPooledClient()
	httpClient.Timeout = config.Timeout()

	return &Client{
		config:     config,
		httpClient: httpClient,
	}, nil
}

// Config returns the client configuration.
func (c *Client) Config() Config {
	return c.config
}

// SetHTTPClient replaces the underlying HTTP client. Intended for tests
// and callers that need custom transport behavior.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// Do executes a call that expects a typed JSON response and decodes the
// success body into result. An empty success body is a decode failure.
func (c *Client) Do(ctx context.Context, method, path string, body any, query Query, result any) error {
	if result == nil {
		return decodeError(errors.New("result must not be nil; use DoNoContent"))
	}
	return c.do(ctx, method, path, body, query, result)
}

// DoNoContent executes a call that expects an empty success body. Both 204
// and any other 2xx succeed without attempting a JSON decode.
func (c *Client) DoNoContent(ctx context.Context, method, path string, body any, query Query) error {
	return c.do(ctx, method, path, body, query, nil)
}

// do runs the attempt loop. The request is rebuilt from scratch on every
// attempt; the descriptor (method, path, body, query) is reused as-is,
// which is safe because the retry set excludes validation, auth and
// not-found errors.
func (c *Client) do(ctx context.Context, method, path string, body any, query Query, result any) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return decodeError(fmt.Errorf("marshal request body: %w", err))
		}
		payload = data
	}

	maxAttempts := c.config.MaxAttempts()

	for attempt := 1; ; attempt++ {
		if err := waitBeforeAttempt(ctx, attempt); err != nil {
			return transportError(err, false)
		}

		resp, err := c.send(ctx, method, path, payload, query)
		if err != nil {
			transient := isTransientNetErr(ctx, err)
			if transient && attempt < maxAttempts {
				continue
			}
			return transportError(err, transient)
		}

		apiErr, done := c.handleResponse(resp, result)
		if done {
			return nil
		}
		if apiErr.IsRetryable() && attempt < maxAttempts {
			continue
		}
		return apiErr
	}
}

// send builds and performs a single HTTP request.
func (c *Client) send(ctx context.Context, method, path string, payload []byte, query Query) (*http.Response, error) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL()+path, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.config.APIKey())
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	if len(query) > 0 {
		req.URL.RawQuery = encodeQuery(query)
	}

	return c.httpClient.Do(req)
}

// handleResponse interprets one HTTP exchange. done is true on success,
// otherwise apiErr carries the classified failure.
func (c *Client) handleResponse(resp *http.Response, result any) (apiErr *Error, done bool) {
	defer resp.Body.Close()

	success := resp.StatusCode >= 200 && resp.StatusCode < 300

	if success && result == nil {
		// No-content call: drain so the connection can be reused.
		io.Copy(io.Discard, resp.Body)
		return nil, true
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(fmt.Errorf("read response body: %w", err), false), false
	}

	if !success {
		return classifyResponse(resp.StatusCode, resp.Header, data), false
	}

	if len(data) == 0 {
		return decodeError(errors.New("empty response body")), false
	}
	if err := json.Unmarshal(data, result); err != nil {
		return decodeError(err), false
	}
	return nil, true
}

// encodeQuery renders a Query as a URL query string. Keys are emitted in
// sorted order so the output is deterministic.
func encodeQuery(query Query) string {
	keys := make([]string, 0, len(query))
	for key, value := range query {
		if value == nil {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	values := url.Values{}
	for _, key := range keys {
		switch v := query[key].(type) {
		case string:
			values.Set(key, v)
		default:
			values.Set(key, fmt.Sprint(v))
		}
	}
	return values.Encode()
}

// isTransientNetErr reports whether a round-trip failure is a connect or
// timeout failure worth retrying. Context cancellation is never transient:
// the caller asked to stop.
func isTransientNetErr(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}

	return false
}
