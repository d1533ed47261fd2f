// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"enginex/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found for its owner.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for in-app notification persistence.
// Every read and mutation is scoped to the recipient.
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error

	// ListByUser returns the user's notifications newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
