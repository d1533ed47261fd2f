package usecase

import (
	"context"

	"enginex/internal/domain/entity"
	"enginex/internal/domain/service"

	"github.com/google/uuid"
)

// NotificationUsecase defines the inbox operations. Every call is scoped to the owner.
type NotificationUsecase interface {
	ListNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error
}

// DeliveryUsecase executes the asynchronous events consumed by the worker.
// Errors wrapping domainerrors.ErrServiceUnavailable are transient and should be redelivered.
type DeliveryUsecase interface {
	// DeliverNotification pushes the notification to the recipient's active devices.
	DeliverNotification(ctx context.Context, event *service.NotificationEvent) error
	// DeliverEmail forwards the event to the mail endpoint.
	DeliverEmail(ctx context.Context, event *service.EmailEvent) error
}
