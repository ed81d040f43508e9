package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrBadRequest is returned for malformed requests (400).
	ErrBadRequest = errors.New("bad request")

	// ErrAuthentication is returned when the API key is invalid or expired (401).
	ErrAuthentication = errors.New("authentication failed")

	// ErrNotFound is returned when the requested resource does not exist (404).
	ErrNotFound = errors.New("resource not found")

	// ErrValidation is returned when the request fails server-side validation (422).
	ErrValidation = errors.New("validation failed")

	// ErrRateLimited is returned when the API rate limit is exceeded (429).
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrServer is returned for server-side failures (5xx and unmapped statuses).
	ErrServer = errors.New("server error")

	// ErrTransport is returned when the request never produced an HTTP response.
	ErrTransport = errors.New("transport failure")

	// ErrDecode is returned when a success response body cannot be decoded.
	ErrDecode = errors.New("response decode failed")
)

// Kind identifies which variant of the error taxonomy an Error carries.
// Exactly one Kind is active per Error.
type Kind int

const (
	// KindBadRequest maps HTTP 400.
	KindBadRequest Kind = iota
	// KindAuthentication maps HTTP 401.
	KindAuthentication
	// KindNotFound maps HTTP 404.
	KindNotFound
	// KindValidation maps HTTP 422.
	KindValidation
	// KindRateLimit maps HTTP 429.
	KindRateLimit
	// KindServer maps HTTP 5xx and any other unsuccessful status.
	KindServer
	// KindTransport marks failures where no HTTP response was received.
	KindTransport
	// KindDecode marks failures decoding a success response body.
	KindDecode
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindAuthentication:
		return "authentication"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindRateLimit:
		return "rate_limit"
	case KindServer:
		return "server"
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error represents a failed MailBreeze API call. The Kind selects the
// active variant; fields that do not apply to the variant hold their
// zero value.
type Error struct {
	Kind    Kind
	Message string

	// Code is the provider-supplied error code, when present.
	Code string

	// Status is the HTTP status that produced the error. Zero for
	// transport and decode failures.
	Status int

	// Fields holds per-field validation messages for KindValidation.
	Fields map[string][]string

	// RetryAfter is the server's suggested wait for KindRateLimit.
	// Zero when the server sent no usable hint.
	RetryAfter time.Duration

	// Err is the underlying cause for transport and decode failures.
	Err error

	// transient marks a transport failure as connect/timeout, which the
	// engine's retry loop may replay.
	transient bool
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindBadRequest:
		return fmt.Sprintf("bad request: %s", e.Message)
	case KindAuthentication:
		return fmt.Sprintf("authentication failed: %s", e.Message)
	case KindNotFound:
		return fmt.Sprintf("not found: %s", e.Message)
	case KindValidation:
		return fmt.Sprintf("validation failed: %s", e.Message)
	case KindRateLimit:
		return fmt.Sprintf("rate limit exceeded: %s", e.Message)
	case KindServer:
		return fmt.Sprintf("server error %d: %s", e.Status, e.Message)
	case KindTransport:
		return fmt.Sprintf("transport failure: %v", e.Err)
	case KindDecode:
		return fmt.Sprintf("decode failure: %v", e.Err)
	default:
		return e.Message
	}
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindBadRequest:
		return target == ErrBadRequest
	case KindAuthentication:
		return target == ErrAuthentication
	case KindNotFound:
		return target == ErrNotFound
	case KindValidation:
		return target == ErrValidation
	case KindRateLimit:
		return target == ErrRateLimited
	case KindServer:
		return target == ErrServer
	case KindTransport:
		return target == ErrTransport
	case KindDecode:
		return target == ErrDecode
	}
	return false
}

// StatusCode returns the HTTP status behind the error. ok is false for
// transport and decode failures, which carry no status.
func (e *Error) StatusCode() (status int, ok bool) {
	switch e.Kind {
	case KindTransport, KindDecode:
		return 0, false
	}
	return e.Status, true
}

// RetryAfterSeconds returns the rate-limit hint in whole seconds. ok is
// false for every variant other than a KindRateLimit carrying a hint.
func (e *Error) RetryAfterSeconds() (seconds int, ok bool) {
	if e.Kind != KindRateLimit || e.RetryAfter <= 0 {
		return 0, false
	}
	return int(e.RetryAfter / time.Second), true
}

// IsRetryable reports whether the engine's generic retry loop may replay
// the request. Only Server errors on {500, 502, 503, 504} and
// connect/timeout transport failures qualify. Rate limits are deliberately
// excluded: callers that want to honor RetryAfter must do so themselves.
func (e *Error) IsRetryable() bool {
	switch e.Kind {
	case KindServer:
		switch e.Status {
		case http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
		return false
	case KindTransport:
		return e.transient
	}
	return false
}

// errorBody is the best-effort shape of an API error response.
type errorBody struct {
	Error  string              `json:"error"`
	Code   string              `json:"code"`
	Errors map[string][]string `json:"errors"`
}

// classifyResponse maps a failed HTTP exchange to the error taxonomy.
// The body is parsed best-effort: anything that is not valid JSON yields
// the generic message rather than failing classification.
func classifyResponse(status int, header http.Header, body []byte) *Error {
	parsed := errorBody{Error: "Unknown error"}
	if len(body) > 0 {
		var raw errorBody
		if err := json.Unmarshal(body, &raw); err == nil {
			if raw.Error != "" {
				parsed.Error = raw.Error
			}
			parsed.Code = raw.Code
			parsed.Errors = raw.Errors
		}
	}

	e := &Error{
		Message: parsed.Error,
		Code:    parsed.Code,
		Status:  status,
	}

	switch status {
	case http.StatusBadRequest:
		e.Kind = KindBadRequest
	case http.StatusUnauthorized:
		e.Kind = KindAuthentication
	case http.StatusNotFound:
		e.Kind = KindNotFound
	case http.StatusUnprocessableEntity:
		e.Kind = KindValidation
		e.Fields = parsed.Errors
		if e.Fields == nil {
			e.Fields = map[string][]string{}
		}
	case http.StatusTooManyRequests:
		e.Kind = KindRateLimit
		e.RetryAfter = parseRetryAfter(header.Get("Retry-After"), time.Now())
	default:
		// 5xx and anything else unsuccessful.
		e.Kind = KindServer
	}

	return e
}

// parseRetryAfter interprets a Retry-After header value as either unsigned
// integer seconds or an HTTP-date strictly in the future relative to now.
// Returns zero when the value carries no usable hint.
func parseRetryAfter(value string, now time.Time) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	if seconds, err := strconv.ParseUint(value, 10, 32); err == nil {
		return time.Duration(seconds) * time.Second
	}

	if date, err := http.ParseTime(value); err == nil {
		if delta := date.Sub(now); delta > 0 {
			return delta.Truncate(time.Second)
		}
	}

	return 0
}

// transportError wraps a round-trip failure. transient marks connect and
// timeout failures, which are eligible for retry.
func transportError(err error, transient bool) *Error {
	return &Error{
		Kind:      KindTransport,
		Message:   err.Error(),
		Err:       err,
		transient: transient,
	}
}

// decodeError wraps a failure to decode a success response body.
func decodeError(err error) *Error {
	return &Error{
		Kind:    KindDecode,
		Message: err.Error(),
		Err:     err,
	}
}
