package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type ProfileModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName              string    `gorm:"type:varchar(150);not null"`
	Email                 string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone                 string    `gorm:"type:varchar(32)"`
	AccountType           string    `gorm:"type:varchar(20);not null;default:'individual';index"`
	AccountTypeLabel      string    `gorm:"type:varchar(20);not null;default:'Particulier'"`
	SubscriptionExpiresAt *time.Time
	IsAdmin               bool   `gorm:"not null;default:false"`
	ProfileImageURL       string `gorm:"type:text"`
	CreatedAt             time.Time
	UpdatedAt             time.Time

	Authentications []AuthenticationModel `gorm:"foreignKey:UserID"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
