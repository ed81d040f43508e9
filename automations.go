package mailbreeze

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MailBreeze/mailbreeze-go/internal/api"
)

// EnrollmentStatus is the state of a contact's automation enrollment.
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentCancelled EnrollmentStatus = "cancelled"
	EnrollmentFailed    EnrollmentStatus = "failed"
)

// Enrollment tracks a contact's progress through an automation.
type Enrollment struct {
	ID           string           `json:"id"`
	AutomationID string           `json:"automationId"`
	ContactID    string           `json:"contactId"`
	Status       EnrollmentStatus `json:"status"`
	CurrentStep  int              `json:"currentStep"`
	Variables    map[string]any   `json:"variables,omitempty"`
	CreatedAt    string           `json:"createdAt"`
	CompletedAt  string           `json:"completedAt,omitempty"`
}

// EnrollParams enrolls a contact into an automation workflow.
type EnrollParams struct {
	AutomationID string         `json:"automationId"`
	ContactID    string         `json:"contactId"`
	Variables    map[string]any `json:"variables,omitempty"`
}

// ListEnrollmentsParams filters the enrollment list. Zero values are
// omitted from the query.
type ListEnrollmentsParams struct {
	AutomationID string
	Status       EnrollmentStatus
	Page         int
	Limit        int
}

// EnrollmentList is one page of enrollments.
type EnrollmentList struct {
	Enrollments []Enrollment `json:"enrollments"`
	Pagination  Pagination   `json:"pagination"`
}

// CancelEnrollmentResult reports the outcome of cancelling an enrollment.
type CancelEnrollmentResult struct {
	ID        string `json:"id"`
	Cancelled bool   `json:"cancelled"`
}

// AutomationsService enrolls contacts into automation workflows.
type AutomationsService struct {
	client *api.Client
}

// Enroll enrolls a contact into an automation.
func (s *AutomationsService) Enroll(ctx context.Context, params *EnrollParams) (*Enrollment, error) {
	var resp envelope[Enrollment]
	if err := s.client.Do(ctx, http.MethodPost, "/automations/enrollments", params, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// GetEnrollment retrieves an enrollment by ID.
func (s *AutomationsService) GetEnrollment(ctx context.Context, id string) (*Enrollment, error) {
	path := fmt.Sprintf("/automations/enrollments/%s", url.PathEscape(id))
	var resp envelope[Enrollment]
	if err := s.client.Do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// ListEnrollments retrieves a page of enrollments. A nil params lists
// the first page with server defaults.
func (s *AutomationsService) ListEnrollments(ctx context.Context, params *ListEnrollmentsParams) (*EnrollmentList, error) {
	query := api.Query{}
	if params != nil {
		if params.AutomationID != "" {
			query["automationId"] = params.AutomationID
		}
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
	var resp envelope[EnrollmentList]
	if err := s.client.Do(ctx, http.MethodGet, "/automations/enrollments", nil, query, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// CancelEnrollment stops an active enrollment. The contact receives no
// further automation emails.
func (s *AutomationsService) CancelEnrollment(ctx context.Context, id string) (*CancelEnrollmentResult, error) {
	path := fmt.Sprintf("/automations/enrollments/%s/cancel", url.PathEscape(id))
	var resp envelope[CancelEnrollmentResult]
	if err := s.client.Do(ctx, http.MethodPost, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
