package mailbreeze

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MailBreeze/mailbreeze-go/internal/api"
)

// List is a named collection of contacts.
type List struct {
	ID                 string   `json:"_id"`
	Name               string   `json:"name"`
	Description        string   `json:"description,omitempty"`
	TotalContacts      int      `json:"totalContacts"`
	ActiveContacts     int      `json:"activeContacts"`
	SuppressedContacts int      `json:"suppressedContacts"`
	Tags               []string `json:"tags,omitempty"`
	CreatedAt          string   `json:"createdAt"`
	UpdatedAt          string   `json:"updatedAt,omitempty"`
}

// CreateListParams describes a new contact list. Name is required.
type CreateListParams struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UpdateListParams describes a partial update to a list. Empty fields
// are left unchanged.
type UpdateListParams struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// ListListsParams pages through contact lists. Zero values are omitted
// from the query.
type ListListsParams struct {
	Page  int
	Limit int
}

// ListsPage is one page of contact lists.
type ListsPage struct {
	Lists      []List     `json:"lists"`
	Pagination Pagination `json:"pagination"`
}

// ListStats summarizes the membership of a contact list.
type ListStats struct {
	TotalContacts      int64 `json:"totalContacts"`
	ActiveContacts     int64 `json:"activeContacts"`
	SuppressedContacts int64 `json:"suppressedContacts"`
}

// ListsService manages contact lists.
type ListsService struct {
	client *api.Client
}

// Create creates a contact list.
func (s *ListsService) Create(ctx context.Context, params *CreateListParams) (*List, error) {
	var resp envelope[List]
	if err := s.client.Do(ctx, http.MethodPost, "/contact-lists", params, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Get retrieves a list by ID.
func (s *ListsService) Get(ctx context.Context, id string) (*List, error) {
	path := fmt.Sprintf("/contact-lists/%s", url.PathEscape(id))
	var resp envelope[List]
	if err := s.client.Do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Update applies a partial update to a list.
func (s *ListsService) Update(ctx context.Context, id string, params *UpdateListParams) (*List, error) {
	path := fmt.Sprintf("/contact-lists/%s", url.PathEscape(id))
	var resp envelope[List]
	if err := s.client.Do(ctx, http.MethodPatch, path, params, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Delete removes a list and all of its contacts.
func (s *ListsService) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("/contact-lists/%s", url.PathEscape(id))
	return s.client.DoNoContent(ctx, http.MethodDelete, path, nil, nil)
}

// List retrieves a page of contact lists. A nil params lists the first
// page with server defaults.
func (s *ListsService) List(ctx context.Context, params *ListListsParams) (*ListsPage, error) {
	query := api.Query{}
	if params != nil {
		if params.Page > 0 {
			query["page"] = params.Page
		}
		if params.Limit > 0 {
			query["limit"] = params.Limit
		}
	}
	var resp envelope[ListsPage]
	if err := s.client.Do(ctx, http.MethodGet, "/contact-lists", nil, query, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Stats retrieves membership statistics for a list.
func (s *ListsService) Stats(ctx context.Context, id string) (*ListStats, error) {
	path := fmt.Sprintf("/contact-lists/%s/stats", url.PathEscape(id))
	var resp envelope[ListStats]
	if err := s.client.Do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
