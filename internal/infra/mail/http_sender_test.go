package mail

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"enginex/config"
	"enginex/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHTTPSender_Send(t *testing.T) {
	var got Request
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender := New(&config.Config{Mail: &config.MailConfig{
		Endpoint: server.URL,
		APIKey:   "secret",
		From:     "EngineX <no-reply@enginex.ma>",
	}}, newDiscardLogger())

	err := sender.Send(context.Background(), "password_reset", "client@example.ma", map[string]string{"code": "123456"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret", auth)
	assert.Equal(t, "password_reset", got.Type)
	assert.Equal(t, "client@example.ma", got.To)
	assert.Equal(t, "EngineX <no-reply@enginex.ma>", got.From)
	assert.Equal(t, "123456", got.Data["code"])
}

func TestHTTPSender_StatusErrors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		retryable bool
	}{
		{"server error", http.StatusBadGateway, true},
		{"rate limited", http.StatusTooManyRequests, true},
		{"bad request", http.StatusBadRequest, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer server.Close()

			sender := New(&config.Config{Mail: &config.MailConfig{Endpoint: server.URL}}, newDiscardLogger())

			err := sender.Send(context.Background(), "registration", "a@b.ma", nil)
			require.Error(t, err)

			statusErr, ok := errors.AsType[*StatusError](err)
			require.True(t, ok)
			assert.Equal(t, tt.status, statusErr.StatusCode)
			assert.Equal(t, tt.retryable, statusErr.Retryable())
			assert.Equal(t, "nope", statusErr.Body)
		})
	}
}

func TestNew_WithoutEndpointSkips(t *testing.T) {
	sender := New(&config.Config{}, newDiscardLogger())

	assert.NoError(t, sender.Send(context.Background(), "registration", "a@b.ma", nil))
}
