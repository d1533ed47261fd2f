package postgres

import (
	"context"

	"enginex/internal/domain/entity"
	domainerrors "enginex/internal/domain/errors"
	"enginex/internal/domain/repository"
	"enginex/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

func (repo *catalogRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, m := range categoryModels {
		categories = append(categories, toCategoryDomain(m))
	}

	return categories, nil
}

func (repo *catalogRepository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return toCategoryDomain(&categoryM), nil
}

func (repo *catalogRepository) ListEquipmentTypes(ctx context.Context, categoryID *uuid.UUID) ([]*entity.EquipmentType, error) {
	query := repo.db.WithContext(ctx).Order("name ASC")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var typeModels []*model.EquipmentTypeModel
	if err := query.Find(&typeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list equipment types")
	}

	types := make([]*entity.EquipmentType, 0, len(typeModels))
	for _, m := range typeModels {
		types = append(types, toEquipmentTypeDomain(m))
	}

	return types, nil
}

func (repo *catalogRepository) FindEquipmentTypeByID(ctx context.Context, id uuid.UUID) (*entity.EquipmentType, error) {
	var typeM model.EquipmentTypeModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&typeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEquipmentTypeNotFound
		}

		return nil, errors.Wrap(err, "failed to find equipment type")
	}

	return toEquipmentTypeDomain(&typeM), nil
}

// FindEquipmentTypeByName compares with lower() on both sides inside the category.
func (repo *catalogRepository) FindEquipmentTypeByName(ctx context.Context, categoryID uuid.UUID, name string) (*entity.EquipmentType, error) {
	var typeM model.EquipmentTypeModel
	if err := repo.db.WithContext(ctx).
		Where("category_id = ? AND lower(name) = lower(?)", categoryID, name).
		Order("created_at ASC").
		First(&typeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEquipmentTypeNotFound
		}

		return nil, errors.Wrap(err, "failed to find equipment type by name")
	}

	return toEquipmentTypeDomain(&typeM), nil
}

func (repo *catalogRepository) CreateEquipmentType(ctx context.Context, equipmentType *entity.EquipmentType) error {
	if equipmentType.ID == uuid.Nil {
		equipmentType.ID = uuid.New()
	}

	typeM := &model.EquipmentTypeModel{
		ID:         equipmentType.ID,
		CategoryID: equipmentType.CategoryID,
		Name:       equipmentType.Name,
		Slug:       equipmentType.Slug,
		CreatedAt:  equipmentType.CreatedAt,
	}
	// Concurrent publishers of the same custom type converge on one row.
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "category_id"}, {Name: "slug"}},
			DoNothing: true,
		}).
		Create(typeM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to create equipment type")
	}

	if result.RowsAffected == 0 {
		var existing model.EquipmentTypeModel
		if err := repo.db.WithContext(ctx).
			Where("category_id = ? AND slug = ?", equipmentType.CategoryID, equipmentType.Slug).
			First(&existing).Error; err != nil {
			return errors.Wrap(err, "failed to reload equipment type")
		}
		*equipmentType = *toEquipmentTypeDomain(&existing)

		return nil
	}
	equipmentType.CreatedAt = typeM.CreatedAt

	return nil
}

// --- Mapper Functions ---

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	return &entity.Category{
		ID:        data.ID,
		Name:      data.Name,
		Slug:      data.Slug,
		Icon:      data.Icon,
		CreatedAt: data.CreatedAt,
	}
}

func toEquipmentTypeDomain(data *model.EquipmentTypeModel) *entity.EquipmentType {
	return &entity.EquipmentType{
		ID:         data.ID,
		CategoryID: data.CategoryID,
		Name:       data.Name,
		Slug:       data.Slug,
		CreatedAt:  data.CreatedAt,
	}
}
