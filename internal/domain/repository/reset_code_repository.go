package repository

import (
	"context"
	"time"

	"enginex/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrResetCodeNotFound is returned when no usable code matches.
var ErrResetCodeNotFound = errors.New("reset code not found")

// ResetCodeRepository stores password reset codes.
type ResetCodeRepository interface {
	Create(ctx context.Context, code *entity.PasswordResetCode) error

	// FindUsable returns the newest unused, unexpired code matching email and code.
	FindUsable(ctx context.Context, email, code string, now time.Time) (*entity.PasswordResetCode, error)

	// MarkUsed flags a code as consumed. It fails with ErrResetCodeNotFound when the code was already used.
	MarkUsed(ctx context.Context, id uuid.UUID) error

	PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error)
}
