package impl

import (
	"context"
	"time"

	"enginex/internal/domain/entity"
	domainerrors "enginex/internal/domain/errors"
	"enginex/internal/domain/policy"
	"enginex/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// resolveEquipmentType returns the equipment type a listing is filed under.
// A selected type must belong to the category. A custom name reuses a case-insensitive
// match inside the category, otherwise a new type is inserted with a slug derived from the name.
func resolveEquipmentType(
	ctx context.Context,
	catalogRepo repository.CatalogRepository,
	categoryID uuid.UUID,
	typeID *uuid.UUID,
	customName string,
	now time.Time,
) (*entity.EquipmentType, error) {
	if _, err := catalogRepo.FindCategoryByID(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound.WrapMessage("unknown category")
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	if typeID != nil {
		equipmentType, err := catalogRepo.FindEquipmentTypeByID(ctx, *typeID)
		if err != nil {
			if errors.Is(err, repository.ErrEquipmentTypeNotFound) {
				return nil, domainerrors.ErrEquipmentTypeNotFound.WrapMessage("unknown equipment type")
			}

			return nil, errors.Wrap(err, "failed to find equipment type")
		}
		if equipmentType.CategoryID != categoryID {
			return nil, domainerrors.ErrEquipmentTypeNotFound.WrapMessage("equipment type belongs to another category")
		}

		return equipmentType, nil
	}

	existing, err := catalogRepo.FindEquipmentTypeByName(ctx, categoryID, customName)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrEquipmentTypeNotFound) {
		return nil, errors.Wrap(err, "failed to look up equipment type by name")
	}

	created := &entity.EquipmentType{
		CategoryID: categoryID,
		Name:       customName,
		Slug:       policy.Slugify(customName),
		CreatedAt:  now,
	}
	if err := catalogRepo.CreateEquipmentType(ctx, created); err != nil {
		return nil, errors.Wrap(err, "failed to create custom equipment type")
	}

	return created, nil
}

// pageBounds clamps client paging to the configured limits.
func pageBounds(limit, offset, defaultSize, maxSize int) repository.Page {
	if limit <= 0 {
		limit = defaultSize
	}
	if limit > maxSize {
		limit = maxSize
	}
	if offset < 0 {
		offset = 0
	}

	return repository.Page{Limit: limit, Offset: offset}
}

// listingNotFound translates the repository miss into the user-facing error.
func listingNotFound(err error) error {
	if errors.Is(err, repository.ErrListingNotFound) {
		return domainerrors.ErrListingNotFound.WrapMessage("listing not found")
	}

	return errors.Wrap(err, "failed to load listing")
}
