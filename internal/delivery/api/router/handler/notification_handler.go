package handler

import (
	"log/slog"
	"net/http"

	"enginex/internal/delivery/api/middleware"
	"enginex/internal/delivery/api/response"
	"enginex/internal/domain/entity"
	domainerrors "enginex/internal/domain/errors"
	"enginex/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves the caller's inbox.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// ListNotifications returns the caller's notifications, newest first.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}
	limit, offset, err := pageParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	notifications, err := h.notificationUC.ListNotifications(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if notifications == nil {
		notifications = []*entity.Notification{}
	}

	return response.Success(c, http.StatusOK, notifications)
}

// UnreadCount returns the badge counter.
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	count, err := h.notificationUC.UnreadCount(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"unread": count})
}

// MarkRead marks one notification as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}
	notificationID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), userID, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// MarkAllRead marks the whole inbox as read.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	updated, err := h.notificationUC.MarkAllRead(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"updated": updated})
}

// DeleteNotification removes one notification.
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}
	notificationID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.notificationUC.DeleteNotification(c.Request().Context(), userID, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
