package cache

import (
	"context"
	"log/slog"
	"time"

	"enginex/config"
	"enginex/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const viewKeyPrefix = "listing:view:"

// redisViewTracker remembers a viewer per listing for the configured TTL.
type redisViewTracker struct {
	client *redis.Client
	ttl    time.Duration
}

// allowAllViewTracker counts every view. It is used when redis is not configured.
type allowAllViewTracker struct{}

// NewViewTracker returns the redis tracker, or one that counts every view when client is nil.
func NewViewTracker(client *redis.Client, cfg *config.Config, logger *slog.Logger) service.ViewTracker {
	if client == nil {
		logger.Debug("Using allow-all view tracker")

		return allowAllViewTracker{}
	}

	return &redisViewTracker{client: client, ttl: cfg.Redis.ViewTTL}
}

// FirstView sets the viewer key only when absent; a successful set means the view is new.
func (t *redisViewTracker) FirstView(ctx context.Context, listingID uuid.UUID, viewerTag string) (bool, error) {
	key := viewKeyPrefix + listingID.String() + ":" + viewerTag

	created, err := t.client.SetNX(ctx, key, 1, t.ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "redis setnx")
	}

	return created, nil
}

func (allowAllViewTracker) FirstView(context.Context, uuid.UUID, string) (bool, error) {
	return true, nil
}
