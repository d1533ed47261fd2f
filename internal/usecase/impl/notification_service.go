package impl

import (
	"context"

	"enginex/internal/domain/entity"
	domainerrors "enginex/internal/domain/errors"
	"enginex/internal/domain/repository"
	"enginex/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultNotificationPageSize = 50
	maxNotificationPageSize     = 100
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new notification inbox service instance
func NewNotificationService(notificationRepo repository.NotificationRepository) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
	}
}

// ListNotifications returns the newest notifications first
func (s *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	page := pageBounds(limit, offset, defaultNotificationPageSize, maxNotificationPageSize)

	notifications, err := s.notificationRepo.ListByUser(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := s.notificationRepo.MarkRead(ctx, userID, notificationID); err != nil {
		return notificationNotFound(err)
	}

	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	updated, err := s.notificationRepo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark notifications read")
	}

	return updated, nil
}

func (s *notificationService) DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := s.notificationRepo.Delete(ctx, userID, notificationID); err != nil {
		return notificationNotFound(err)
	}

	return nil
}

// notificationNotFound hides notifications of other users behind the same not-found error.
func notificationNotFound(err error) error {
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return domainerrors.ErrNotFound.WrapMessage("notification not found")
	}

	return errors.Wrap(err, "failed to update notification")
}
