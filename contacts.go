package mailbreeze

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MailBreeze/mailbreeze-go/internal/api"
)

// ContactStatus is the subscription state of a contact.
type ContactStatus string

const (
	ContactStatusActive       ContactStatus = "active"
	ContactStatusUnsubscribed ContactStatus = "unsubscribed"
	ContactStatusBounced      ContactStatus = "bounced"
	ContactStatusComplained   ContactStatus = "complained"
	ContactStatusSuppressed   ContactStatus = "suppressed"
)

// ConsentType records how a contact consented to receive email.
type ConsentType string

const (
	ConsentExplicit           ConsentType = "explicit"
	ConsentImplicit           ConsentType = "implicit"
	ConsentLegitimateInterest ConsentType = "legitimate_interest"
)

// SuppressReason is the reason a contact was suppressed from sending.
type SuppressReason string

const (
	SuppressManual       SuppressReason = "manual"
	SuppressUnsubscribed SuppressReason = "unsubscribed"
	SuppressBounced      SuppressReason = "bounced"
	SuppressComplained   SuppressReason = "complained"
	SuppressSpamTrap     SuppressReason = "spam_trap"
)

// Contact is a member of a contact list.
type Contact struct {
	ID               string         `json:"_id"`
	Email            string         `json:"email"`
	FirstName        string         `json:"firstName,omitempty"`
	LastName         string         `json:"lastName,omitempty"`
	PhoneNumber      string         `json:"phoneNumber,omitempty"`
	Status           ContactStatus  `json:"status"`
	CustomFields     map[string]any `json:"customFields,omitempty"`
	Source           string         `json:"source,omitempty"`
	CreatedAt        string         `json:"createdAt"`
	UpdatedAt        string         `json:"updatedAt,omitempty"`
	SubscribedAt     string         `json:"subscribedAt,omitempty"`
	UnsubscribedAt   string         `json:"unsubscribedAt,omitempty"`
	ConsentType      ConsentType    `json:"consentType,omitempty"`
	ConsentSource    string         `json:"consentSource,omitempty"`
	ConsentTimestamp string         `json:"consentTimestamp,omitempty"`
	ConsentIPAddress string         `json:"consentIpAddress,omitempty"`
}

// CreateContactParams describes a contact to add to a list. Email is
// required.
type CreateContactParams struct {
	Email            string         `json:"email"`
	FirstName        string         `json:"firstName,omitempty"`
	LastName         string         `json:"lastName,omitempty"`
	PhoneNumber      string         `json:"phoneNumber,omitempty"`
	CustomFields     map[string]any `json:"customFields,omitempty"`
	Source           string         `json:"source,omitempty"`
	ConsentType      ConsentType    `json:"consentType,omitempty"`
	ConsentSource    string         `json:"consentSource,omitempty"`
	ConsentTimestamp string         `json:"consentTimestamp,omitempty"`
	ConsentIPAddress string         `json:"consentIpAddress,omitempty"`
}

// UpdateContactParams describes a partial update to a contact. Empty
// fields are left unchanged.
type UpdateContactParams struct {
	FirstName        string         `json:"firstName,omitempty"`
	LastName         string         `json:"lastName,omitempty"`
	PhoneNumber      string         `json:"phoneNumber,omitempty"`
	CustomFields     map[string]any `json:"customFields,omitempty"`
	ConsentType      ConsentType    `json:"consentType,omitempty"`
	ConsentSource    string         `json:"consentSource,omitempty"`
	ConsentTimestamp string         `json:"consentTimestamp,omitempty"`
	ConsentIPAddress string         `json:"consentIpAddress,omitempty"`
}

// ListContactsParams filters the contact list. Zero values are omitted
// from the query.
type ListContactsParams struct {
	Status ContactStatus
	Page   int
	Limit  int
}

// ContactList is one page of contacts.
type ContactList struct {
	Contacts   []Contact  `json:"contacts"`
	Pagination Pagination `json:"pagination"`
}

// SubscriptionResult reports a contact's state after a subscription
// change.
type SubscriptionResult struct {
	ID     string        `json:"id"`
	Status ContactStatus `json:"status"`
}

type suppressParams struct {
	Reason SuppressReason `json:"reason"`
}

// ContactsService manages contacts within a single contact list. Obtain
// one from Client.Contacts.
type ContactsService struct {
	client *api.Client
	listID string
}

// ListID returns the ID of the contact list this facade operates on.
func (s *ContactsService) ListID() string {
	return s.listID
}

func (s *ContactsService) path(parts ...string) string {
	p := fmt.Sprintf("/contact-lists/%s/contacts", url.PathEscape(s.listID))
	for _, part := range parts {
		p += "/" + url.PathEscape(part)
	}
	return p
}

// Create adds a contact to the list.
func (s *ContactsService) Create(ctx context.Context, params *CreateContactParams) (*Contact, error) {
	var resp envelope[Contact]
	if err := s.client.Do(ctx, http.MethodPost, s.path(), params, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Get retrieves a contact by ID.
func (s *ContactsService) Get(ctx context.Context, id string) (*Contact, error) {
	var resp envelope[Contact]
	if err := s.client.Do(ctx, http.MethodGet, s.path(id), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Update applies a partial update to a contact.
func (s *ContactsService) Update(ctx context.Context, id string, params *UpdateContactParams) (*Contact, error) {
	var resp envelope[Contact]
	if err := s.client.Do(ctx, http.MethodPatch, s.path(id), params, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Delete removes a contact from the list.
func (s *ContactsService) Delete(ctx context.Context, id string) error {
	return s.client.DoNoContent(ctx, http.MethodDelete, s.path(id), nil, nil)
}

// List retrieves a page of contacts. A nil params lists the first page
// with server defaults.
func (s *ContactsService) List(ctx context.Context, params *ListContactsParams) (*ContactList, error) {
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
	var resp envelope[ContactList]
	if err := s.client.Do(ctx, http.MethodGet, s.path(), nil, query, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Unsubscribe marks a contact as unsubscribed. Unsubscribed contacts are
// skipped by marketing sends but remain on the list.
func (s *ContactsService) Unsubscribe(ctx context.Context, id string) (*SubscriptionResult, error) {
	var resp envelope[SubscriptionResult]
	if err := s.client.Do(ctx, http.MethodPost, s.path(id, "unsubscribe"), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Resubscribe restores a previously unsubscribed contact to active.
func (s *ContactsService) Resubscribe(ctx context.Context, id string) (*SubscriptionResult, error) {
	var resp envelope[SubscriptionResult]
	if err := s.client.Do(ctx, http.MethodPost, s.path(id, "resubscribe"), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Suppress excludes a contact from all future sends, recording why.
func (s *ContactsService) Suppress(ctx context.Context, id string, reason SuppressReason) (*SubscriptionResult, error) {
	var resp envelope[SubscriptionResult]
	body := suppressParams{Reason: reason}
	if err := s.client.Do(ctx, http.MethodPost, s.path(id, "suppress"), body, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
