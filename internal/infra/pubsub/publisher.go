package pubsub

import (
	"context"
	"log/slog"

	deliverycontext "enginex/internal/delivery/context"
	"enginex/internal/domain/constants"
	"enginex/internal/domain/service"
)

// transport hands an encoded message to a broker.
type transport interface {
	send(ctx context.Context, msg *outgoingMessage) (id string, err error)
	close() error
	name() string
}

type eventPublisher struct {
	transport transport
	logger    *slog.Logger
}

func newEventPublisher(t transport, logger *slog.Logger) *eventPublisher {
	return &eventPublisher{transport: t, logger: logger}
}

// PublishNotificationEvent stamps the request id of ctx on the event when it has none.
func (p *eventPublisher) PublishNotificationEvent(ctx context.Context, event *service.NotificationEvent) error {
	if event.RequestID == "" {
		event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	msg, err := newMessage(constants.EventTypeNotification, event.RequestID, event.Type+":"+event.UserID, event)
	if err != nil {
		return err
	}

	return p.publish(ctx, msg)
}

func (p *eventPublisher) PublishEmailEvent(ctx context.Context, event *service.EmailEvent) error {
	if event.RequestID == "" {
		event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	msg, err := newMessage(constants.EventTypeEmail, event.RequestID, event.Template, event)
	if err != nil {
		return err
	}

	return p.publish(ctx, msg)
}

func (p *eventPublisher) publish(ctx context.Context, msg *outgoingMessage) error {
	id, err := p.transport.send(ctx, msg)
	if err != nil {
		return err
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("Event published",
		slog.String("transport", p.transport.name()),
		slog.String("event_type", msg.attributes[AttributeEventType]),
		slog.String("event", msg.logKey),
		slog.String("message_id", id),
	)

	return nil
}

func (p *eventPublisher) Close() error {
	return p.transport.close()
}

// discardTransport is used when no broker is configured; events are logged and dropped.
type discardTransport struct {
	logger *slog.Logger
}

func (t discardTransport) send(ctx context.Context, msg *outgoingMessage) (string, error) {
	t.logger.DebugContext(ctx, "Event publishing disabled, dropping",
		slog.String("event_type", msg.attributes[AttributeEventType]),
		slog.String("event", msg.logKey),
	)

	return "", nil
}

func (discardTransport) close() error { return nil }

func (discardTransport) name() string { return "discard" }
