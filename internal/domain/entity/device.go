package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice is a push target of a signed-in user. A device is identified by (UserID, DeviceID);
// its FCM token changes over time.
type UserDevice struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	FCMToken   string    `json:"fcm_token"`
	DeviceID   string    `json:"device_id"`
	Platform   string    `json:"platform"`
	IsActive   bool      `json:"is_active"`
	LastSeenAt time.Time `json:"last_seen_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
