package usecase

import (
	"context"

	"enginex/internal/domain/entity"
	"enginex/internal/domain/repository"

	"github.com/google/uuid"
)

// AdminCreateListingInput creates a listing on behalf of a user or anonymously.
type AdminCreateListingInput struct {
	PublishListingInput
	OwnerID *uuid.UUID
	Status  entity.ListingStatus
	Badge   entity.Badge
}

// ProfilePage is one page of profiles.
type ProfilePage struct {
	Profiles []*entity.Profile
	Total    int64
}

// AdminStats are the moderation dashboard counters.
type AdminStats struct {
	Listings entity.ListingStats `json:"listings"`
	Profiles int64               `json:"profiles"`
}

// AdminUsecase defines moderator operations. Every method refuses sessions without the admin role.
type AdminUsecase interface {
	ListListings(ctx context.Context, session *entity.Session, filter repository.AdminListingFilter, limit, offset int) (*ListingPage, error)
	ListProfiles(ctx context.Context, session *entity.Session, limit, offset int) (*ProfilePage, error)

	// ModerateListing overwrites the status and notifies the owner. Last write wins.
	ModerateListing(ctx context.Context, session *entity.Session, listingID uuid.UUID, status entity.ListingStatus) (*entity.Listing, error)

	// SetBadge changes the badge and recomputes the priority score.
	SetBadge(ctx context.Context, session *entity.Session, listingID uuid.UUID, badge entity.Badge) (*entity.Listing, error)

	DeleteListing(ctx context.Context, session *entity.Session, listingID uuid.UUID) error
	CreateListing(ctx context.Context, session *entity.Session, input *AdminCreateListingInput) (*entity.Listing, error)
	Stats(ctx context.Context, session *entity.Session) (*AdminStats, error)
}
