package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ListingModel mirrors the 'listings' table.
// idx_listings_ranking backs the public ordering; idx_listings_contact backs the quota count.
type ListingModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID          *uuid.UUID `gorm:"type:uuid;index"`
	CategoryID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	EquipmentTypeID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title           string     `gorm:"type:varchar(200);not null"`
	Description     string     `gorm:"type:text;not null"`
	Price           int64      `gorm:"not null;check:chk_listings_price,price >= 0"`
	Year            *int
	Region          string         `gorm:"type:varchar(64);not null;index"`
	City            string         `gorm:"type:varchar(100);not null"`
	Brand           string         `gorm:"type:varchar(100)"`
	Model           string         `gorm:"type:varchar(100)"`
	Condition       string         `gorm:"type:varchar(10);not null;default:'used'"`
	Images          datatypes.JSON `gorm:"type:jsonb;not null;default:'[]';index:idx_listings_images,type:gin"`
	Status          string         `gorm:"type:varchar(20);not null;default:'pending';index:idx_listings_ranking,priority:1"`
	IsActive        bool           `gorm:"not null;default:true;index:idx_listings_ranking,priority:2"`
	PriorityScore   int            `gorm:"not null;default:0;index:idx_listings_ranking,priority:3,sort:desc"`
	Badge           string         `gorm:"type:varchar(20);not null;default:'none'"`
	Plan            string         `gorm:"type:varchar(20);not null;default:'individual'"`
	ViewsCount      int64          `gorm:"not null;default:0"`
	ExpiresAt       *time.Time     `gorm:"index"`
	ExpiryWarnedAt  *time.Time
	ContactPhone    string `gorm:"type:varchar(32);not null;index:idx_listings_contact,priority:1"`
	ContactEmail    string `gorm:"type:varchar(255);index"`
	CreatedAt       time.Time      `gorm:"index:idx_listings_ranking,priority:4,sort:desc;index:idx_listings_contact,priority:2"`
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`

	Category      *CategoryModel      `gorm:"foreignKey:CategoryID"`
	EquipmentType *EquipmentTypeModel `gorm:"foreignKey:EquipmentTypeID"`
	Owner         *ProfileModel       `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}

// ListingViewModel mirrors the append-only 'listing_views' table.
type ListingViewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ListingID uuid.UUID `gorm:"type:uuid;not null;index"`
	IPAddress string    `gorm:"type:varchar(64)"`
	ViewedAt  time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ListingViewModel) TableName() string {
	return "listing_views"
}
