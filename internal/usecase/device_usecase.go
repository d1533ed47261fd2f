package usecase

import (
	"context"

	"enginex/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceRegistration is what a mobile or web client reports when it obtains a push token.
type DeviceRegistration struct {
	FCMToken string
	DeviceID string
	Platform string
}

// DeviceUsecase manages where a user's notifications are pushed.
type DeviceUsecase interface {
	// RegisterDevice is idempotent per (user, device id).
	RegisterDevice(ctx context.Context, userID uuid.UUID, registration *DeviceRegistration) (*entity.UserDevice, error)
	RotateToken(ctx context.Context, userID, deviceID uuid.UUID, fcmToken string) error
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	UnregisterDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
