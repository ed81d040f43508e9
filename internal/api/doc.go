// Package api provides HTTP client functionality for communicating with the
// MailBreeze API. It handles authentication, request/response serialization,
// and automatic retry logic with exponential backoff for transient failures.
//
// # Configuration
//
// A [Config] is built once from an API key and shared read-only by every
// request the client issues:
//
//	cfg := api.NewConfig("your-api-key").
//	    WithTimeout(60 * time.Second).
//	    WithMaxAttempts(5)
//	client, err := api.New(cfg)
//
// Textual renderings of a Config always redact the API key.
//
// # Retry Behavior
//
// The client retries failed requests with exponential backoff (100ms,
// 200ms, 400ms, ...) up to the configured attempt budget. Only two classes
// of failure are retried:
//
//   - Server errors with status 500, 502, 503 or 504.
//   - Transport failures establishing the connection (connect refused,
//     timeout).
//
// Rate limits (429) are never retried automatically; the returned [Error]
// carries the server's Retry-After hint for callers that want to honor it.
//
// # Error Handling
//
// Every failure surfaces as an [Error] whose [Kind] selects exactly one
// variant of the taxonomy. Sentinel errors support errors.Is:
//
//	if errors.Is(err, api.ErrNotFound) {
//	    // Handle missing resource
//	}
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may
// call methods on a single Client simultaneously; each call runs its own
// attempt loop with independent backoff.
package api
