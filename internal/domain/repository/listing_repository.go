package repository

import (
	"context"
	"time"

	"enginex/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrListingNotFound is returned when no listing matches.
var ErrListingNotFound = errors.New("listing not found")

// ListingFilter narrows public searches. Zero values mean "no constraint".
type ListingFilter struct {
	CategoryID      *uuid.UUID
	EquipmentTypeID *uuid.UUID
	Region          entity.Region
	Condition       entity.Condition
	MinPrice        *int64
	MaxPrice        *int64
	MinYear         *int
	MaxYear         *int
	Keyword         string
}

// AdminListingFilter narrows the moderation queue.
type AdminListingFilter struct {
	Status entity.ListingStatus
	UserID *uuid.UUID
}

// Page bounds a collection query.
type Page struct {
	Limit  int
	Offset int
}

// ListingRepository defines persistence operations on listings.
type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// SearchVisible returns listings passing the visibility predicate at now, in ranking order, with the total count.
	SearchVisible(ctx context.Context, filter ListingFilter, now time.Time, page Page) ([]*entity.Listing, int64, error)

	// ListByOwner returns every listing of a user regardless of status, newest first.
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Listing, error)

	// FindByImage returns the live listings whose images include imageURL.
	FindByImage(ctx context.Context, imageURL string) ([]*entity.Listing, error)

	// ListAll returns listings for moderators, newest first, with the total count.
	ListAll(ctx context.Context, filter AdminListingFilter, page Page) ([]*entity.Listing, int64, error)

	// The column updates stamp updated_at with at.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ListingStatus, at time.Time) error
	UpdateBadge(ctx context.Context, id uuid.UUID, badge entity.Badge, priorityScore int, at time.Time) error
	SetActive(ctx context.Context, id uuid.UUID, active bool, at time.Time) error
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// AcquireQuotaLock serializes submissions sharing a contact phone or email until the transaction ends.
	AcquireQuotaLock(ctx context.Context, contactPhone, contactEmail string) error

	// CountRecentByContact counts listings created since `since` whose phone matches,
	// or whose email matches when contactEmail is not empty.
	CountRecentByContact(ctx context.Context, contactPhone, contactEmail string, since time.Time) (int64, error)

	// RecordView appends a ListingView and increments the listing view counter.
	RecordView(ctx context.Context, view *entity.ListingView) error

	// Stats aggregates counters, for one owner when userID is set.
	Stats(ctx context.Context, userID *uuid.UUID) (*entity.ListingStats, error)

	// FindExpired returns active listings whose expiration is at or before now.
	FindExpired(ctx context.Context, now time.Time, limit int) ([]*entity.Listing, error)

	// FindExpiringUnwarned returns approved active listings expiring in (now, until] with no warning sent yet.
	FindExpiringUnwarned(ctx context.Context, now, until time.Time, limit int) ([]*entity.Listing, error)

	MarkExpiryWarned(ctx context.Context, id uuid.UUID, at time.Time) error
}
