package model

import (
	"time"

	"github.com/google/uuid"
)

// UserDeviceModel maps the 'user_devices' table. (user_id, device_id) is unique so registration can upsert.
type UserDeviceModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_devices_owner_device,priority:1"`
	DeviceID   string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_user_devices_owner_device,priority:2"`
	FCMToken   string    `gorm:"type:varchar(255);not null;index"`
	Platform   string    `gorm:"type:varchar(16);not null"`
	IsActive   bool      `gorm:"not null;default:true"`
	LastSeenAt time.Time `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserDeviceModel) TableName() string {
	return "user_devices"
}
