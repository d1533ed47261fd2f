package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"enginex/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewViewTracker_WithoutRedisCountsEveryView(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracker := NewViewTracker(nil, &config.Config{}, logger)

	listingID := uuid.New()
	for range 3 {
		first, err := tracker.FirstView(context.Background(), listingID, "196.200.1.1")
		require.NoError(t, err)
		assert.True(t, first)
	}
}
