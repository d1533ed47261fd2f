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

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler serves /api/v1/devices.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

type registerDeviceRequest struct {
	FCMToken string `json:"fcm_token" validate:"required,max=255"`
	DeviceID string `json:"device_id" validate:"required,max=128"`
	Platform string `json:"platform" validate:"required,max=16"`
}

type rotateTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required,max=255"`
}

// Register answers 200 either way; the same device registering twice keeps one row.
func (h *DeviceHandler) Register(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req registerDeviceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, &usecase.DeviceRegistration{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device)
}

func (h *DeviceHandler) List(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	devices, err := h.deviceUC.ListDevices(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if devices == nil {
		devices = []*entity.UserDevice{}
	}

	return response.Success(c, http.StatusOK, devices)
}

func (h *DeviceHandler) RotateToken(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}
	deviceID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req rotateTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.deviceUC.RotateToken(c.Request().Context(), userID, deviceID, req.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *DeviceHandler) Unregister(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}
	deviceID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.deviceUC.UnregisterDevice(c.Request().Context(), userID, deviceID); err != nil {
		h.logger.DebugContext(c.Request().Context(), "Device unregister refused", slog.String("device_id", deviceID.String()), slog.Any("error", err))

		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
