package usecase

import (
	"context"

	"enginex/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput holds the editable profile fields. Nil fields are left unchanged.
type UpdateProfileInput struct {
	FullName         *string
	Phone            *string
	AccountTypeLabel *entity.AccountTypeLabel
	ProfileImageURL  *string
}

// DashboardStats are the counters shown on a seller dashboard.
type DashboardStats struct {
	entity.ListingStats
	UnreadNotifications int64 `json:"unread_notifications"`
}

// ProfileUsecase defines the interface for profile management use cases.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.Profile, error)

	// ActivateSubscription moves the account to a paid plan for one subscription window.
	ActivateSubscription(ctx context.Context, userID uuid.UUID, plan entity.AccountType) (*entity.Profile, error)

	Dashboard(ctx context.Context, userID uuid.UUID) (*DashboardStats, error)
}
