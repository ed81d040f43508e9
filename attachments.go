package mailbreeze

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MailBreeze/mailbreeze-go/internal/api"
)

// CreateUploadParams describes a file to upload as an attachment.
type CreateUploadParams struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// UploadURL is a pre-signed URL for uploading attachment content. The
// caller PUTs the file bytes to URL before ExpiresAt, then references
// AttachmentID when sending email.
type UploadURL struct {
	AttachmentID string `json:"attachmentId"`
	URL          string `json:"uploadUrl"`
	ExpiresAt    string `json:"expiresAt"`
}

// Attachment is an uploaded file available for sending.
type Attachment struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

// AttachmentsService manages pre-uploaded email attachments.
type AttachmentsService struct {
	client *api.Client
}

// CreateUploadURL reserves an attachment slot and returns a pre-signed
// URL to upload the file content to.
func (s *AttachmentsService) CreateUploadURL(ctx context.Context, params *CreateUploadParams) (*UploadURL, error) {
	var resp envelope[UploadURL]
	if err := s.client.Do(ctx, http.MethodPost, "/attachments/upload", params, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Get retrieves an attachment by ID.
func (s *AttachmentsService) Get(ctx context.Context, id string) (*Attachment, error) {
	path := fmt.Sprintf("/attachments/%s", url.PathEscape(id))
	var resp envelope[Attachment]
	if err := s.client.Do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Delete removes an attachment.
func (s *AttachmentsService) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("/attachments/%s", url.PathEscape(id))
	return s.client.DoNoContent(ctx, http.MethodDelete, path, nil, nil)
}
