package mailbreeze

import (
	"github.com/MailBreeze/mailbreeze-go/internal/api"
)

// Client is the main MailBreeze client. Each field is a resource facade:
// a thin set of methods translating domain calls into API requests. All
// facades share one request engine and configuration, so a Client is safe
// for concurrent use.
type Client struct {
	// Emails sends transactional email and inspects delivery state.
	Emails *EmailsService
	// Lists manages contact lists.
	Lists *ListsService
	// Verification verifies email addresses, singly or in batch.
	Verification *VerificationService
	// Attachments manages pre-uploaded email attachments.
	Attachments *AttachmentsService
	// Automations enrolls contacts into automation workflows.
	Automations *AutomationsService

	apiClient *api.Client
}

// New creates a MailBreeze client with the given API key.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		config: api.NewConfig(apiKey),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := api.New(cfg.config)
	if err != nil {
		return nil, err
	}
	if cfg.httpClient != nil {
		apiClient.SetHTTPClient(cfg.httpClient)
	}

	return &Client{
		Emails:       &EmailsService{client: apiClient},
		Lists:        &ListsService{client: apiClient},
		Verification: &VerificationService{client: apiClient},
		Attachments:  &AttachmentsService{client: apiClient},
		Automations:  &AutomationsService{client: apiClient},
		apiClient:    apiClient,
	}, nil
}

// Contacts returns a contacts facade scoped to a specific list. All
// contact operations are performed within the context of that list.
func (c *Client) Contacts(listID string) *ContactsService {
	return &ContactsService{
		client: c.apiClient,
		listID: listID,
	}
}

// Config returns the client configuration. The rendered form always
// redacts the API key.
func (c *Client) Config() Config {
	return c.apiClient.Config()
}
