package mailbreeze

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MailBreeze/mailbreeze-go/internal/api"
)

// EmailStatus is the delivery state of an email.
type EmailStatus string

const (
	EmailStatusPending    EmailStatus = "pending"
	EmailStatusQueued     EmailStatus = "queued"
	EmailStatusSent       EmailStatus = "sent"
	EmailStatusDelivered  EmailStatus = "delivered"
	EmailStatusBounced    EmailStatus = "bounced"
	EmailStatusComplained EmailStatus = "complained"
	EmailStatusFailed     EmailStatus = "failed"
)

// SendEmailParams describes an email to send. From and To are required;
// supply either Html/Text content or a TemplateID with Variables.
type SendEmailParams struct {
	From          string            `json:"from"`
	To            []string          `json:"to"`
	Subject       string            `json:"subject,omitempty"`
	HTML          string            `json:"html,omitempty"`
	Text          string            `json:"text,omitempty"`
	TemplateID    string            `json:"templateId,omitempty"`
	Variables     map[string]any    `json:"variables,omitempty"`
	AttachmentIDs []string          `json:"attachmentIds,omitempty"`
	ReplyTo       string            `json:"replyTo,omitempty"`
	CC            []string          `json:"cc,omitempty"`
	BCC           []string          `json:"bcc,omitempty"`
	Headers       map[string]string `json:"headers,omitempty"`
	Tags          []string          `json:"tags,omitempty"`
}

// SendEmailResult carries the message ID assigned to a sent email.
type SendEmailResult struct {
	MessageID string `json:"messageId"`
}

// Email is a sent or queued email as reported by the API.
type Email struct {
	ID          string      `json:"_id"`
	MessageID   string      `json:"messageId,omitempty"`
	From        string      `json:"from"`
	To          []string    `json:"to"`
	CC          []string    `json:"cc,omitempty"`
	BCC         []string    `json:"bcc,omitempty"`
	Subject     string      `json:"subject,omitempty"`
	Status      EmailStatus `json:"status"`
	EmailType   string      `json:"emailType,omitempty"`
	CreatedAt   string      `json:"createdAt"`
	SentAt      string      `json:"sentAt,omitempty"`
	DeliveredAt string      `json:"deliveredAt,omitempty"`
}

// ListEmailsParams filters the email list. Zero values are omitted from
// the query.
type ListEmailsParams struct {
	Status EmailStatus
	Page   int
	Limit  int
}

// EmailList is one page of emails.
type EmailList struct {
	Emails     []Email    `json:"emails"`
	Pagination Pagination `json:"pagination"`
}

// EmailStats summarizes sending activity for the account.
type EmailStats struct {
	Total         int64   `json:"total"`
	Sent          int64   `json:"sent"`
	Failed        int64   `json:"failed"`
	Transactional int64   `json:"transactional"`
	Marketing     int64   `json:"marketing"`
	SuccessRate   float64 `json:"successRate"`
}

// CancelEmailResult reports the outcome of cancelling a pending email.
type CancelEmailResult struct {
	ID        string `json:"id"`
	Cancelled bool   `json:"cancelled"`
}

// EmailsService sends transactional email and inspects delivery state.
type EmailsService struct {
	client *api.Client
}

// Send submits an email for delivery and returns its message ID.
func (s *EmailsService) Send(ctx context.Context, params *SendEmailParams) (*SendEmailResult, error) {
	var resp envelope[SendEmailResult]
	if err := s.client.Do(ctx, http.MethodPost, "/emails", params, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Get retrieves an email by ID.
func (s *EmailsService) Get(ctx context.Context, id string) (*Email, error) {
	path := fmt.Sprintf("/emails/%s", url.PathEscape(id))
	var resp envelope[Email]
	if err := s.client.Do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// List retrieves a page of emails. A nil params lists the first page
// with server defaults.
func (s *EmailsService) List(ctx context.Context, params *ListEmailsParams) (*EmailList, error) {
	query := api.Query{}
	if params != nil {
		if params.Status != "" {
			query["status"] = string(params.Status)
		}
		if params.Page > 0 {
			query["page"] = params.Page
		}
		if params.Limit > 0 {
			query["limit"] = params.Limit
		}
	}
	var resp envelope[EmailList]
	if err := s.client.Do(ctx, http.MethodGet, "/emails", nil, query, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Stats retrieves account-wide email statistics.
func (s *EmailsService) Stats(ctx context.Context) (*EmailStats, error) {
	// The stats payload carries an extra wrapper: {"data": {"stats": {...}}}.
	var resp envelope[struct {
		Stats EmailStats `json:"stats"`
	}]
	if err := s.client.Do(ctx, http.MethodGet, "/emails/stats", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data.Stats, nil
}

// Cancel cancels a pending email. Emails already handed off for
// delivery cannot be cancelled.
func (s *EmailsService) Cancel(ctx context.Context, id string) (*CancelEmailResult, error) {
	path := fmt.Sprintf("/emails/%s/cancel", url.PathEscape(id))
	var resp envelope[CancelEmailResult]
	if err := s.client.Do(ctx, http.MethodPost, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
