// Package pubsub publishes domain events for the worker, over Google Cloud Pub/Sub or a local HTTP push.
package pubsub

import (
	"context"
	"log/slog"

	"enginex/config"
	"enginex/internal/domain/constants"
	"enginex/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the transport named by pubsub.provider. Without one, events are dropped.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	t, err := newTransport(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}
	params.Logger.Info("Event publisher ready", slog.String("transport", t.name()))

	publisher := newEventPublisher(t, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func newTransport(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (transport, error) {
	if cfg == nil || cfg.Provider == "" {
		return discardTransport{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}

		return newHTTPPushTransport(cfg.LocalEndpoint), nil
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		topic, err := newTopicTransport(ctx, cfg.ProjectID, cfg.TopicID)
		if err != nil {
			return nil, err
		}

		return topic, nil
	default:
		return nil, errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}
}
