package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"enginex/config"
	deliverycontext "enginex/internal/delivery/context"
	"enginex/internal/domain/constants"
	"enginex/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newWorkerStub records the envelopes the HTTP push transport delivers.
func newWorkerStub(t *testing.T, status int) (*httptest.Server, *[]PushEnvelope, *[]string) {
	t.Helper()

	var envelopes []PushEnvelope
	var requestIDs []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var envelope PushEnvelope
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&envelope))
		envelopes = append(envelopes, envelope)
		requestIDs = append(requestIDs, r.Header.Get("X-Request-Id"))
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)

	return server, &envelopes, &requestIDs
}

func TestEventPublisher_PublishEmailEvent(t *testing.T) {
	server, envelopes, requestIDs := newWorkerStub(t, http.StatusOK)
	transport := newHTTPPushTransport(server.URL)
	transport.now = func() time.Time { return time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC) }
	publisher := newEventPublisher(transport, newDiscardLogger())

	err := publisher.PublishEmailEvent(context.Background(), &service.EmailEvent{
		RequestID: "req-1",
		Template:  service.EmailTemplateNewListing,
		To:        "vendeur@example.ma",
		Data:      map[string]string{"title": "Tracteur John Deere"},
	})
	require.NoError(t, err)

	require.Len(t, *envelopes, 1)
	got := (*envelopes)[0]
	assert.Equal(t, "req-1", (*requestIDs)[0])
	assert.Equal(t, constants.EventTypeEmail, got.Message.Attributes[AttributeEventType])
	assert.Equal(t, "req-1", got.Message.Attributes[AttributeRequestID])
	assert.Equal(t, "2026-03-01T09:30:00Z", got.Message.PublishTime)
	assert.Equal(t, localSubscription, got.Subscription)
	assert.NotEmpty(t, got.Message.MessageID)

	raw, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)
	var event service.EmailEvent
	require.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, service.EmailTemplateNewListing, event.Template)
	assert.Equal(t, "vendeur@example.ma", event.To)
}

func TestEventPublisher_StampsRequestIDFromContext(t *testing.T) {
	server, envelopes, _ := newWorkerStub(t, http.StatusNoContent)
	publisher := newEventPublisher(newHTTPPushTransport(server.URL), newDiscardLogger())
	ctx := deliverycontext.WithRequestID(context.Background(), "req-from-ctx")

	err := publisher.PublishNotificationEvent(ctx, &service.NotificationEvent{
		UserID: "3f1c",
		Type:   "listing_approved",
		Title:  "Annonce approuvée",
	})

	require.NoError(t, err)
	assert.Equal(t, constants.EventTypeNotification, (*envelopes)[0].Message.Attributes[AttributeEventType])
	assert.Equal(t, "req-from-ctx", (*envelopes)[0].Message.Attributes[AttributeRequestID])
}

func TestEventPublisher_NoRequestID(t *testing.T) {
	server, envelopes, _ := newWorkerStub(t, http.StatusNoContent)
	publisher := newEventPublisher(newHTTPPushTransport(server.URL), newDiscardLogger())

	require.NoError(t, publisher.PublishNotificationEvent(context.Background(), &service.NotificationEvent{UserID: "3f1c"}))

	_, hasRequestID := (*envelopes)[0].Message.Attributes[AttributeRequestID]
	assert.False(t, hasRequestID)
}

func TestEventPublisher_WorkerRejects(t *testing.T) {
	server, _, _ := newWorkerStub(t, http.StatusServiceUnavailable)
	publisher := newEventPublisher(newHTTPPushTransport(server.URL), newDiscardLogger())

	err := publisher.PublishEmailEvent(context.Background(), &service.EmailEvent{Template: service.EmailTemplateRegistration})

	assert.ErrorContains(t, err, "worker answered 503")
}

func TestNewTransport(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.PubSubConfig
		wantName string
		wantErr  string
	}{
		{name: "unconfigured", cfg: nil, wantName: "discard"},
		{name: "empty provider", cfg: &config.PubSubConfig{}, wantName: "discard"},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/worker/push"}, wantName: "http_push"},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "localEndpoint is required"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "enginex"}, wantErr: "topicId are required"},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "nats"}, wantErr: `unknown pubsub provider "nats"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := newTransport(context.Background(), tt.cfg, newDiscardLogger())

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, tr.name())
		})
	}
}

func TestDiscardTransport(t *testing.T) {
	publisher := newEventPublisher(discardTransport{logger: newDiscardLogger()}, newDiscardLogger())

	assert.NoError(t, publisher.PublishEmailEvent(context.Background(), &service.EmailEvent{Template: service.EmailTemplateRegistration}))
	assert.NoError(t, publisher.Close())
}
