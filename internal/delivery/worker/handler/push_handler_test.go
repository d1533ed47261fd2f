package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"enginex/config"
	deliverycontext "enginex/internal/delivery/context"
	"enginex/internal/domain/constants"
	domainerrors "enginex/internal/domain/errors"
	"enginex/internal/domain/service"
	"enginex/internal/infra/pubsub"
	mockUc "enginex/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUc.MockDeliveryUsecase) {
	deliveryUC := mockUc.NewMockDeliveryUsecase(t)
	if cfg == nil {
		cfg = &config.Config{}
	}

	return NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     newDiscardLogger(),
		DeliveryUC: deliveryUC,
	}), deliveryUC
}

func pushBody(t *testing.T, eventType string, event any) string {
	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushEnvelope
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = map[string]string{
		constants.AttributeEventType: eventType,
		constants.AttributeRequestID: "req-42",
	}

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/worker/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_DispatchesByEventType(t *testing.T) {
	t.Run("notification", func(t *testing.T) {
		h, deliveryUC := newTestPushHandler(t, nil)
		deliveryUC.EXPECT().
			DeliverNotification(mock.Anything, mock.MatchedBy(func(e *service.NotificationEvent) bool {
				return e.UserID == "u-1" && e.Type == "listing_approved"
			})).
			Return(nil)

		rec := doPush(h, pushBody(t, constants.EventTypeNotification, service.NotificationEvent{UserID: "u-1", Type: "listing_approved"}), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("email", func(t *testing.T) {
		h, deliveryUC := newTestPushHandler(t, nil)
		deliveryUC.EXPECT().
			DeliverEmail(mock.Anything, mock.MatchedBy(func(e *service.EmailEvent) bool {
				return e.Template == service.EmailTemplateNewListing && e.To == "0612345678@temp.enginex.ma"
			})).
			Return(nil)

		rec := doPush(h, pushBody(t, constants.EventTypeEmail, service.EmailEvent{
			Template: service.EmailTemplateNewListing,
			To:       "0612345678@temp.enginex.ma",
		}), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestPushHandler_PropagatesRequestID(t *testing.T) {
	h, deliveryUC := newTestPushHandler(t, nil)
	deliveryUC.EXPECT().
		DeliverEmail(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *service.EmailEvent) error {
			assert.Equal(t, "req-42", deliverycontext.GetRequestIDFromContext(ctx))

			return nil
		})

	rec := doPush(h, pushBody(t, constants.EventTypeEmail, service.EmailEvent{Template: "registration", To: "a@b.ma"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_ResponseCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"transient failure is redelivered", domainerrors.ErrServiceUnavailable.WrapMessage("fcm down"), http.StatusServiceUnavailable},
		{"permanent failure is acknowledged", errors.New("mail endpoint returned 422"), http.StatusOK},
		{"invalid payload is acknowledged", domainerrors.ErrValidationFailed.WrapMessage("bad user id"), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deliveryUC := newTestPushHandler(t, nil)
			deliveryUC.EXPECT().DeliverNotification(mock.Anything, mock.Anything).Return(tt.err)

			rec := doPush(h, pushBody(t, constants.EventTypeNotification, service.NotificationEvent{UserID: "u-1"}), nil)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "{"},
		{"data not base64", `{"message":{"data":"***","attributes":{"event_type":"email"}}}`},
		{"data not an event", `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[]")) + `","attributes":{"event_type":"email"}}}`},
		{"unknown event type", `{"message":{"data":"e30=","attributes":{"event_type":"sms"}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t, nil)

			rec := doPush(h, tt.body, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesGooglePushToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction

	t.Run("missing token", func(t *testing.T) {
		h, _ := newTestPushHandler(t, cfg)

		rec := doPush(h, pushBody(t, constants.EventTypeEmail, service.EmailEvent{}), nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		h, _ := newTestPushHandler(t, cfg)
		h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		}

		rec := doPush(h, pushBody(t, constants.EventTypeEmail, service.EmailEvent{}), http.Header{"Authorization": {"Bearer t"}})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		h, deliveryUC := newTestPushHandler(t, cfg)
		h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "t", token)
			assert.Equal(t, "http://example.com/worker/push", audience)

			return &idtoken.Payload{Issuer: "https://accounts.google.com"}, nil
		}
		deliveryUC.EXPECT().DeliverEmail(mock.Anything, mock.Anything).Return(nil)

		rec := doPush(h, pushBody(t, constants.EventTypeEmail, service.EmailEvent{}), http.Header{"Authorization": {"Bearer t"}})

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
