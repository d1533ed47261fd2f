package repository

import (
	"context"

	"enginex/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for catalog persistence.
var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrEquipmentTypeNotFound = errors.New("equipment type not found")
)

// CatalogRepository reads categories and reads or extends equipment types.
type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// ListEquipmentTypes returns types ordered by name, restricted to a category when categoryID is set.
	ListEquipmentTypes(ctx context.Context, categoryID *uuid.UUID) ([]*entity.EquipmentType, error)
	FindEquipmentTypeByID(ctx context.Context, id uuid.UUID) (*entity.EquipmentType, error)

	// FindEquipmentTypeByName matches name case-insensitively within the category.
	FindEquipmentTypeByName(ctx context.Context, categoryID uuid.UUID, name string) (*entity.EquipmentType, error)

	// CreateEquipmentType inserts the type. When the slug already exists in the category,
	// equipmentType is overwritten with the existing row instead.
	CreateEquipmentType(ctx context.Context, equipmentType *entity.EquipmentType) error
}
