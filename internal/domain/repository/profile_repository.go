// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"enginex/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when no profile matches.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines persistence operations on accounts.
type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)
	Update(ctx context.Context, profile *entity.Profile) error

	// UpdatePlan sets the account plan and the end of its subscription window.
	UpdatePlan(ctx context.Context, id uuid.UUID, plan entity.AccountType, expiresAt *time.Time) error

	// List returns profiles newest first, with the total count.
	List(ctx context.Context, limit, offset int) ([]*entity.Profile, int64, error)

	// FindLapsedSubscriptions returns paid profiles whose window ended before now.
	FindLapsedSubscriptions(ctx context.Context, now time.Time, limit int) ([]*entity.Profile, error)

	// AcquireSessionMutex row-locks the profile for session limit checks.
	AcquireSessionMutex(ctx context.Context, id uuid.UUID) error
}
