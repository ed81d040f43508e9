package mailbreeze

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmails_Send(t *testing.T) {
	var gotBody SendEmailParams
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		respond(t, w, http.StatusCreated, map[string]any{"messageId": "msg_123abc"})
	})

	result, err := client.Emails.Send(context.Background(), &SendEmailParams{
		From:    "sender@example.com",
		To:      []string{"recipient@example.com"},
		Subject: "Hello",
		HTML:    "<p>Hello!</p>",
	})
	require.NoError(t, err)
	assert.Equal(t, "msg_123abc", result.MessageID)
	assert.Equal(t, "sender@example.com", gotBody.From)
	assert.Equal(t, []string{"recipient@example.com"}, gotBody.To)
}

func TestEmails_Send_OmitsEmptyOptionalFields(t *testing.T) {
	var raw map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		respond(t, w, http.StatusCreated, map[string]any{"messageId": "msg_1"})
	})

	_, err := client.Emails.Send(context.Background(), &SendEmailParams{
		From: "a@example.com",
		To:   []string{"b@example.com"},
	})
	require.NoError(t, err)
	assert.NotContains(t, raw, "templateId")
	assert.NotContains(t, raw, "cc")
	assert.NotContains(t, raw, "headers")
}

func TestEmails_Get(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/emails/email_123", r.URL.Path)
		respond(t, w, http.StatusOK, map[string]any{
			"_id":         "email_123",
			"messageId":   "email_123",
			"from":        "sender@example.com",
			"to":          []string{"recipient@example.com"},
			"status":      "delivered",
			"createdAt":   "2024-01-01T00:00:00Z",
			"deliveredAt": "2024-01-01T00:01:00Z",
		})
	})

	email, err := client.Emails.Get(context.Background(), "email_123")
	require.NoError(t, err)
	assert.Equal(t, "email_123", email.ID)
	assert.Equal(t, EmailStatusDelivered, email.Status)
	assert.Equal(t, "2024-01-01T00:01:00Z", email.DeliveredAt)
}

func TestEmails_List(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "delivered", r.URL.Query().Get("status"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		respond(t, w, http.StatusOK, map[string]any{
			"emails": []map[string]any{
				{"_id": "email_1", "from": "a@example.com", "to": []string{"b@example.com"}, "status": "sent", "createdAt": "2024-01-01T00:00:00Z"},
				{"_id": "email_2", "from": "a@example.com", "to": []string{"c@example.com"}, "status": "delivered", "createdAt": "2024-01-01T00:00:00Z"},
			},
			"pagination": map[string]any{
				"page": 2, "limit": 10, "total": 12, "totalPages": 2,
				"hasNext": false, "hasPrev": true,
			},
		})
	})

	result, err := client.Emails.List(context.Background(), &ListEmailsParams{
		Status: EmailStatusDelivered,
		Page:   2,
		Limit:  10,
	})
	require.NoError(t, err)
	require.Len(t, result.Emails, 2)
	assert.Equal(t, EmailStatusSent, result.Emails[0].Status)
	assert.Equal(t, 12, result.Pagination.Total)
	assert.True(t, result.Pagination.HasPrev)
}

func TestEmails_List_NilParamsSendsNoQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		respond(t, w, http.StatusOK, map[string]any{
			"emails":     []map[string]any{},
			"pagination": map[string]any{"page": 1, "limit": 10, "total": 0, "totalPages": 0},
		})
	})

	result, err := client.Emails.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, result.Emails)
}

func TestEmails_Stats(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails/stats", r.URL.Path)
		respond(t, w, http.StatusOK, map[string]any{
			"stats": map[string]any{
				"total": 1000, "sent": 950, "failed": 50,
				"transactional": 600, "marketing": 400, "successRate": 95.0,
			},
		})
	})

	stats, err := client.Emails.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1000), stats.Total)
	assert.Equal(t, int64(950), stats.Sent)
	assert.InDelta(t, 95.0, stats.SuccessRate, 0.001)
}

func TestEmails_Cancel(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails/email_123/cancel", r.URL.Path)
		respond(t, w, http.StatusOK, map[string]any{"id": "email_123", "cancelled": true})
	})

	result, err := client.Emails.Cancel(context.Background(), "email_123")
	require.NoError(t, err)
	assert.True(t, result.Cancelled)
}
