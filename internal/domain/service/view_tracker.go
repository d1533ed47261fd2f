package service

import (
	"context"

	"github.com/google/uuid"
)

// ViewTracker de-duplicates listing views per viewer tag.
type ViewTracker interface {
	// FirstView reports whether this viewer has not been counted for the listing recently.
	FirstView(ctx context.Context, listingID uuid.UUID, viewerTag string) (bool, error)
}
