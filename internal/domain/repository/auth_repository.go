// Package repository declares the persistence ports the use cases depend on.
package repository

import (
	"context"
	"errors"

	"enginex/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAuthNotFound is returned when no credential matches.
var ErrAuthNotFound = errors.New("authentication method not found")

// AuthRepository stores email/password credentials. Emails compare case-insensitively.
type AuthRepository interface {
	Create(ctx context.Context, auth *entity.Authentication) error
	FindByEmail(ctx context.Context, email string) (*entity.Authentication, error)
	UpdatePasswordHash(ctx context.Context, userID uuid.UUID, passwordHash string) error
}
