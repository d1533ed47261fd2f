package usecase

import (
	"context"

	"enginex/internal/domain/entity"

	"github.com/google/uuid"
)

// CatalogUsecase exposes the reference data used by the forms and filters.
type CatalogUsecase interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	ListEquipmentTypes(ctx context.Context, categoryID *uuid.UUID) ([]*entity.EquipmentType, error)
	ListRegions() []entity.Region
}
