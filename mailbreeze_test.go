package mailbreeze

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient returns a client pointed at a mock server running the
// given handler. The server is torn down with the test.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New("test_key", WithBaseURL(server.URL))
	require.NoError(t, err)
	return client
}

// respond writes the canonical response envelope around data.
func respond(t *testing.T, w http.ResponseWriter, status int, data any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"data":    data,
	})
	require.NoError(t, err)
}

func TestNew_RequiresAPIKey(t *testing.T) {
	client, err := New("")
	assert.Nil(t, client)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestNew_AllFacadesWired(t *testing.T) {
	client, err := New("test_key")
	require.NoError(t, err)

	assert.NotNil(t, client.Emails)
	assert.NotNil(t, client.Lists)
	assert.NotNil(t, client.Verification)
	assert.NotNil(t, client.Attachments)
	assert.NotNil(t, client.Automations)
}

func TestNew_Options(t *testing.T) {
	client, err := New("test_key",
		WithBaseURL("https://eu.mailbreeze.example/v1"),
		WithTimeout(5*time.Second),
		WithMaxAttempts(5),
	)
	require.NoError(t, err)

	cfg := client.Config()
	assert.Equal(t, "https://eu.mailbreeze.example/v1", cfg.BaseURL())
	assert.Equal(t, 5*time.Second, cfg.Timeout())
	assert.Equal(t, 5, cfg.MaxAttempts())
}

func TestNew_WithHTTPClient(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		respond(t, w, http.StatusOK, map[string]any{"messageId": "msg_1"})
	}))
	t.Cleanup(server.Close)

	custom := &http.Client{Timeout: 2 * time.Second}
	client, err := New("test_key", WithBaseURL(server.URL), WithHTTPClient(custom))
	require.NoError(t, err)

	_, err = client.Emails.Send(context.Background(), &SendEmailParams{
		From: "a@example.com",
		To:   []string{"b@example.com"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, gotUserAgent)
}

func TestClient_ConfigRedactsAPIKey(t *testing.T) {
	const secret = "super_secret_api_key_12345"
	client, err := New(secret)
	require.NoError(t, err)

	for _, rendered := range []string{
		client.Config().String(),
		client.Config().GoString(),
		fmt.Sprintf("%v", client.Config()),
		fmt.Sprintf("%+v", client.Config()),
		fmt.Sprintf("%#v", client.Config()),
	} {
		assert.NotContains(t, rendered, secret)
		assert.Contains(t, rendered, "[REDACTED]")
	}
}

func TestClient_ContactsScopedToList(t *testing.T) {
	contacts := mustNewClient(t).Contacts("list_123")
	assert.Equal(t, "list_123", contacts.ListID())
}

func mustNewClient(t *testing.T) *Client {
	t.Helper()
	client, err := New("test_key")
	require.NoError(t, err)
	return client
}

func TestClient_ErrorSentinelsSurfaceThroughFacades(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error": "Email not found", "code": "not_found"}`)
	})

	email, err := client.Emails.Get(context.Background(), "missing")
	assert.Nil(t, email)
	require.ErrorIs(t, err, ErrNotFound)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindNotFound, apiErr.Kind)
	assert.Equal(t, "Email not found", apiErr.Message)
	assert.Equal(t, "not_found", apiErr.Code)
}

func TestClient_ValidationErrorCarriesFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprint(w, `{
			"error": "Validation failed",
			"errors": {"from": ["is required"], "to": ["must not be empty"]}
		}`)
	})

	_, err := client.Emails.Send(context.Background(), &SendEmailParams{})
	require.ErrorIs(t, err, ErrValidation)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, []string{"is required"}, apiErr.Fields["from"])
	assert.Equal(t, []string{"must not be empty"}, apiErr.Fields["to"])
}
