package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel mirrors the 'notifications' table. Rows belong to exactly one profile.
type NotificationModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_notifications_user_created,priority:1"`
	Title     string     `gorm:"type:varchar(200);not null"`
	Message   string     `gorm:"type:text;not null"`
	Type      string     `gorm:"type:varchar(40);not null;default:'system'"`
	IsRead    bool       `gorm:"not null;default:false"`
	ListingID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time  `gorm:"index:idx_notifications_user_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
