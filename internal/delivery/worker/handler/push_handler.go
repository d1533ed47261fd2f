// Package handler holds the worker's Pub/Sub push endpoint.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"enginex/config"
	deliverycontext "enginex/internal/delivery/context"
	"enginex/internal/domain/constants"
	domainerrors "enginex/internal/domain/errors"
	"enginex/internal/domain/service"
	"enginex/internal/errors"
	"enginex/internal/infra/pubsub"
	"enginex/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// TokenValidator checks the OIDC token attached by Pub/Sub push subscriptions.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler decodes Pub/Sub push messages and hands them to the delivery use case.
// Transient failures answer 503 so Pub/Sub redelivers; everything else is acknowledged.
type PushHandler struct {
	verifyPushAuth bool
	validateToken  TokenValidator
	logger         *slog.Logger
	deliveryUC     usecase.DeliveryUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	DeliveryUC usecase.DeliveryUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google push subscriptions sign their requests; local development posts unsigned.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		deliveryUC:     params.DeliveryUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushEnvelope
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("message_id", pushMsg.Message.MessageID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	eventType := pushMsg.Message.Attributes[constants.AttributeEventType]

	err = h.dispatch(ctx, eventType, data)
	switch {
	case err == nil:
		reqLogger.Info("[Worker] Event processed", slog.String("event_type", eventType))

		return c.NoContent(http.StatusOK)
	case errors.Is(err, errMalformedEvent):
		reqLogger.Error("[Worker] Dropping malformed event", slog.String("event_type", eventType), slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	case errors.Is(err, domainerrors.ErrServiceUnavailable):
		reqLogger.Warn("[Worker] Event failed, requesting redelivery", slog.String("event_type", eventType), slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	default:
		// Redelivering a permanent failure would only repeat it.
		reqLogger.Error("[Worker] Event failed permanently", slog.String("event_type", eventType), slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}
}

var errMalformedEvent = errors.New("malformed event")

func (h *PushHandler) dispatch(ctx context.Context, eventType string, data []byte) error {
	switch eventType {
	case constants.EventTypeNotification:
		var event service.NotificationEvent
		if err := json.Unmarshal(data, &event); err != nil {
			return errors.Wrap(errMalformedEvent, err.Error())
		}

		return h.deliveryUC.DeliverNotification(ctx, &event)

	case constants.EventTypeEmail:
		var event service.EmailEvent
		if err := json.Unmarshal(data, &event); err != nil {
			return errors.Wrap(errMalformedEvent, err.Error())
		}

		return h.deliveryUC.DeliverEmail(ctx, &event)

	default:
		return errors.Wrapf(errMalformedEvent, "unknown event type %q", eventType)
	}
}

// extractRequestID prefers the message attribute, then the X-Request-Id of the push request.
func extractRequestID(ctx context.Context, pushMsg *pubsub.PushEnvelope) string {
	if requestID := pushMsg.Message.Attributes[constants.AttributeRequestID]; requestID != "" {
		return requestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	token, found := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !found || token == "" {
		return errors.New("missing bearer token")
	}

	// The audience is the URL of this endpoint.
	scheme := req.Header.Get(echo.HeaderXForwardedProto)
	if scheme == "" {
		scheme = "https"
		if req.TLS == nil {
			scheme = "http"
		}
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
