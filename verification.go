package mailbreeze

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MailBreeze/mailbreeze-go/internal/api"
)

// VerificationStatus is the verdict on a verified address.
type VerificationStatus string

const (
	VerificationClean   VerificationStatus = "clean"
	VerificationDirty   VerificationStatus = "dirty"
	VerificationValid   VerificationStatus = "valid"
	VerificationInvalid VerificationStatus = "invalid"
	VerificationRisky   VerificationStatus = "risky"
	VerificationUnknown VerificationStatus = "unknown"
)

// VerificationResult is the outcome of verifying a single address.
type VerificationResult struct {
	Email          string             `json:"email"`
	Status         VerificationStatus `json:"status"`
	Remarks        string             `json:"remarks,omitempty"`
	IsValid        bool               `json:"isValid"`
	IsDisposable   bool               `json:"isDisposable"`
	IsRoleBased    bool               `json:"isRoleBased"`
	IsFreeProvider bool               `json:"isFreeProvider"`
	MxFound        bool               `json:"mxFound"`
	SMTPCheck      *bool              `json:"smtpCheck,omitempty"`
	Suggestion     string             `json:"suggestion,omitempty"`
}

// BatchResults buckets the addresses of a batch by verdict.
type BatchResults struct {
	Clean   []string `json:"clean"`
	Dirty   []string `json:"dirty"`
	Unknown []string `json:"unknown"`
}

// BatchAnalytics summarizes a batch verification.
type BatchAnalytics struct {
	CleanCount      int     `json:"cleanCount"`
	DirtyCount      int     `json:"dirtyCount"`
	UnknownCount    int     `json:"unknownCount"`
	CleanPercentage float64 `json:"cleanPercentage"`
}

// BatchVerificationResult describes a batch verification job. For
// asynchronous batches VerificationID identifies the job to poll;
// Results and Analytics are populated once the batch completes.
type BatchVerificationResult struct {
	VerificationID  string          `json:"verificationId"`
	Status          string          `json:"status"`
	Total           int             `json:"total"`
	TotalEmails     int             `json:"totalEmails"`
	Processed       int             `json:"processed"`
	CreditsDeducted int             `json:"creditsDeducted"`
	Results         *BatchResults   `json:"results,omitempty"`
	Analytics       *BatchAnalytics `json:"analytics,omitempty"`
	CreatedAt       string          `json:"createdAt"`
	CompletedAt     string          `json:"completedAt,omitempty"`
}

// VerificationListItem is one verification job in the account history.
type VerificationListItem struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Status      string          `json:"status"`
	TotalEmails int             `json:"totalEmails"`
	Progress    int             `json:"progress"`
	Analytics   *BatchAnalytics `json:"analytics,omitempty"`
	CreatedAt   string          `json:"createdAt"`
	CompletedAt string          `json:"completedAt,omitempty"`
}

// VerificationStats summarizes verification activity for the account.
type VerificationStats struct {
	TotalVerified      int64   `json:"totalVerified"`
	TotalValid         int64   `json:"totalValid"`
	TotalInvalid       int64   `json:"totalInvalid"`
	TotalUnknown       int64   `json:"totalUnknown"`
	TotalVerifications int64   `json:"totalVerifications"`
	ValidPercentage    float64 `json:"validPercentage"`
}

type verifyRequest struct {
	Email string `json:"email"`
}

type batchVerifyRequest struct {
	Emails []string `json:"emails"`
}

// VerificationService verifies email addresses, singly or in batch.
type VerificationService struct {
	client *api.Client
}

// Verify verifies a single email address synchronously.
func (s *VerificationService) Verify(ctx context.Context, email string) (*VerificationResult, error) {
	var resp envelope[VerificationResult]
	body := verifyRequest{Email: email}
	if err := s.client.Do(ctx, http.MethodPost, "/email-verification/single", body, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Batch submits addresses for batch verification. Small batches may
// complete synchronously; larger ones return a verification ID to poll
// with Get.
func (s *VerificationService) Batch(ctx context.Context, emails []string) (*BatchVerificationResult, error) {
	var resp envelope[BatchVerificationResult]
	body := batchVerifyRequest{Emails: emails}
	if err := s.client.Do(ctx, http.MethodPost, "/email-verification/batch", body, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Get retrieves the state of a batch verification job.
func (s *VerificationService) Get(ctx context.Context, verificationID string) (*BatchVerificationResult, error) {
	path := fmt.Sprintf("/email-verification/%s", url.PathEscape(verificationID))
	var resp envelope[BatchVerificationResult]
	if err := s.client.Do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// List retrieves the account's verification job history.
func (s *VerificationService) List(ctx context.Context) ([]VerificationListItem, error) {
	var resp envelope[struct {
		Items []VerificationListItem `json:"items"`
	}]
	if err := s.client.Do(ctx, http.MethodGet, "/email-verification", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Items, nil
}

// Stats retrieves account-wide verification statistics.
func (s *VerificationService) Stats(ctx context.Context) (*VerificationStats, error) {
	var resp envelope[VerificationStats]
	if err := s.client.Do(ctx, http.MethodGet, "/email-verification/stats", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
