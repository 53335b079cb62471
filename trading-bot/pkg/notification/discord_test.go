package notification

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWebhook(t *testing.T, status int) (*httptest.Server, *[]DiscordWebhookPayload) {
	t.Helper()
	var received []DiscordWebhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload DiscordWebhookPayload
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		received = append(received, payload)
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, &received
}

func TestNotifyReady(t *testing.T) {
	srv, received := newWebhook(t, http.StatusNoContent)
	svc := NewDiscordNotificationService(srv.URL)

	err := svc.NotifyReady(context.Background(), "https://sandbox.tradier.com/v1/")
	require.NoError(t, err)

	require.Len(t, *received, 1)
	assert.Contains(t, (*received)[0].Content, "https://sandbox.tradier.com/v1/")
}

func TestNotifyConfigError(t *testing.T) {
	srv, received := newWebhook(t, http.StatusNoContent)
	svc := NewDiscordNotificationService(srv.URL)

	err := svc.NotifyConfigError(context.Background(), errors.New("TRADIER_API_ACCESS_TOKEN is not set"))
	require.NoError(t, err)

	require.Len(t, *received, 1)
	assert.Contains(t, (*received)[0].Content, "TRADIER_API_ACCESS_TOKEN is not set")
}

func TestNotifyUnexpectedStatus(t *testing.T) {
	srv, _ := newWebhook(t, http.StatusBadRequest)
	svc := NewDiscordNotificationService(srv.URL)

	err := svc.NotifyReady(context.Background(), "https://sandbox.tradier.com/v1/")
	assert.EqualError(t, err, "Discord webhook returned status 400")
}

func TestNotificationsDisabled(t *testing.T) {
	svc := NewDiscordNotificationService("")

	assert.NoError(t, svc.NotifyReady(context.Background(), "https://sandbox.tradier.com/v1/"))
	assert.NoError(t, svc.NotifyConfigError(context.Background(), errors.New("boom")))
}
