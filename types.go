package mailbreeze

import (
	"github.com/MailBreeze/mailbreeze-go/internal/api"
)

// Config is the resolved client configuration. Its String and GoString
// forms redact the API key.
type Config = api.Config

// Pagination describes the page window of a list response.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// envelope is the canonical wrapper around every v1 response payload.
type envelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}
