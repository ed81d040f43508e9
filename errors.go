package mailbreeze

import (
	"github.com/MailBreeze/mailbreeze-go/internal/api"
)

// Error is the typed API error returned by every client method. Use
// errors.As to inspect it, or errors.Is against the sentinels below to
// branch on the error category.
type Error = api.Error

// Kind identifies the category of an Error.
type Kind = api.Kind

const (
	KindBadRequest     = api.KindBadRequest
	KindAuthentication = api.KindAuthentication
	KindNotFound       = api.KindNotFound
	KindValidation     = api.KindValidation
	KindRateLimit      = api.KindRateLimit
	KindServer         = api.KindServer
	KindTransport      = api.KindTransport
	KindDecode         = api.KindDecode
)

// Sentinel errors for errors.Is checks.
var (
	// ErrMissingAPIKey is returned by New when no API key is provided.
	ErrMissingAPIKey = api.ErrMissingAPIKey

	// ErrBadRequest matches errors from malformed requests (HTTP 400).
	ErrBadRequest = api.ErrBadRequest

	// ErrAuthentication matches errors from an invalid or expired
	// API key (HTTP 401).
	ErrAuthentication = api.ErrAuthentication

	// ErrNotFound matches errors for missing resources (HTTP 404).
	ErrNotFound = api.ErrNotFound

	// ErrValidation matches field validation failures (HTTP 422). The
	// Error's Fields map carries per-field messages.
	ErrValidation = api.ErrValidation

	// ErrRateLimited matches rate limit rejections (HTTP 429). The
	// Error's RetryAfterSeconds reports the server's retry hint, if any.
	ErrRateLimited = api.ErrRateLimited

	// ErrServer matches server-side failures (HTTP 5xx and any
	// unrecognized status).
	ErrServer = api.ErrServer

	// ErrTransport matches network-level failures where no HTTP
	// response was received.
	ErrTransport = api.ErrTransport

	// ErrDecode matches failures to decode a success response body.
	ErrDecode = api.ErrDecode
)
