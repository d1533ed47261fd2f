package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is a top-level equipment domain (agricultural, construction). Seeded and immutable.
type Category struct {
	ID        uuid.UUID
	Name      string
	Slug      string
	Icon      string
	CreatedAt time.Time
}

// EquipmentType is a kind of equipment inside exactly one category.
type EquipmentType struct {
	ID         uuid.UUID
	CategoryID uuid.UUID
	Name       string
	Slug       string
	CreatedAt  time.Time
}
