package repository

import (
	"context"

	"enginex/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when no device row matches.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository stores the push targets notifications are delivered to.
type DeviceRepository interface {
	// Register inserts the device, or refreshes token, platform and last_seen_at of the same
	// (user_id, device_id) pair and reactivates it. Other rows holding the same token are deactivated.
	// The stored row is copied back into device.
	Register(ctx context.Context, device *entity.UserDevice) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// UpdateToken replaces the token and reactivates the device.
	UpdateToken(ctx context.Context, id uuid.UUID, fcmToken string) error
	Deactivate(ctx context.Context, id uuid.UUID) error

	// DeactivateByTokens stops delivery to tokens the push provider rejected.
	DeactivateByTokens(ctx context.Context, fcmTokens []string) (int64, error)
}
