package impl

import (
	"context"

	"enginex/internal/domain/entity"
	domainerrors "enginex/internal/domain/errors"
	"enginex/internal/domain/repository"
	"enginex/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type catalogService struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogService creates the read-only catalog service.
func NewCatalogService(catalogRepo repository.CatalogRepository) usecase.CatalogUsecase {
	return &catalogService{catalogRepo: catalogRepo}
}

func (s *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.catalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// ListEquipmentTypes lists every type, or the types of one category which must exist.
func (s *catalogService) ListEquipmentTypes(ctx context.Context, categoryID *uuid.UUID) ([]*entity.EquipmentType, error) {
	if categoryID != nil {
		if _, err := s.catalogRepo.FindCategoryByID(ctx, *categoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return nil, domainerrors.ErrCategoryNotFound.WrapMessage("unknown category")
			}

			return nil, errors.Wrap(err, "failed to find category")
		}
	}

	types, err := s.catalogRepo.ListEquipmentTypes(ctx, categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list equipment types")
	}

	return types, nil
}

func (s *catalogService) ListRegions() []entity.Region {
	return entity.Regions()
}
