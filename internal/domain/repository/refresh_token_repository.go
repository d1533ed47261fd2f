package repository

import (
	"context"
	"time"

	"enginex/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRefreshTokenNotFound is returned when no stored session matches a token hash.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository stores login sessions. Only the SHA-256 hash of a refresh token is persisted.
type RefreshTokenRepository interface {
	Store(ctx context.Context, token *entity.RefreshToken) error
	FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// Revoke deletes one session. ErrRefreshTokenNotFound means it was already revoked,
	// which token rotation treats as a lost race.
	Revoke(ctx context.Context, tokenHash string) error

	// RevokeAllForUser signs a user out everywhere, e.g. after a password reset.
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error

	CountActive(ctx context.Context, userID uuid.UUID, now time.Time) (int, error)

	// PurgeExpired removes sessions that expired before cutoff and returns how many went.
	PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error)
}
