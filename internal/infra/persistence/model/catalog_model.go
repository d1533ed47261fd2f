package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel mirrors the seeded 'categories' table.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Slug      string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Icon      string    `gorm:"type:varchar(50)"`
	CreatedAt time.Time

	EquipmentTypes []EquipmentTypeModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// EquipmentTypeModel mirrors the 'equipment_types' table. Slugs are unique per category.
type EquipmentTypeModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_equipment_type_category_slug"`
	Name       string    `gorm:"type:varchar(100);not null"`
	Slug       string    `gorm:"type:varchar(120);not null;uniqueIndex:idx_equipment_type_category_slug"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (EquipmentTypeModel) TableName() string {
	return "equipment_types"
}
