package postgres

import (
	"context"
	"time"

	"enginex/internal/domain/entity"
	domainerrors "enginex/internal/domain/errors"
	"enginex/internal/domain/repository"
	"enginex/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by ID")
	}

	return toProfileDomain(&profileM), nil
}

func (repo *profileRepository) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	var profileM model.ProfileModel
	if err := repo.db.WithContext(ctx).Where("lower(email) = lower(?)", email).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by email")
	}

	return toProfileDomain(&profileM), nil
}

// Update writes the user-editable fields. Plan and admin flag change only through UpdatePlan or seeding.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", profile.ID).
		Updates(map[string]any{
			"full_name":          profile.FullName,
			"phone":              profile.Phone,
			"account_type_label": string(profile.AccountTypeLabel),
			"profile_image_url":  profile.ProfileImageURL,
			"updated_at":         profile.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

func (repo *profileRepository) UpdatePlan(ctx context.Context, id uuid.UUID, plan entity.AccountType, expiresAt *time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"account_type":            string(plan),
			"subscription_expires_at": expiresAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update plan")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

func (repo *profileRepository) List(ctx context.Context, limit, offset int) ([]*entity.Profile, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.ProfileModel{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count profiles")
	}

	var profileModels []*model.ProfileModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&profileModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list profiles")
	}

	return toProfileDomains(profileModels), total, nil
}

func (repo *profileRepository) FindLapsedSubscriptions(ctx context.Context, now time.Time, limit int) ([]*entity.Profile, error) {
	var profileModels []*model.ProfileModel
	if err := repo.db.WithContext(ctx).
		Where("account_type <> ?", string(entity.AccountTypeIndividual)).
		Where("subscription_expires_at IS NOT NULL AND subscription_expires_at <= ?", now).
		Order("subscription_expires_at ASC").
		Limit(limit).
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find lapsed subscriptions")
	}

	return toProfileDomains(profileModels), nil
}

// AcquireSessionMutex takes a row lock on the profile for the rest of the transaction.
func (repo *profileRepository) AcquireSessionMutex(ctx context.Context, id uuid.UUID) error {
	var profileM model.ProfileModel
	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Select("id").
		Where("id = ?", id).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrProfileNotFound
		}

		return errors.Wrap(err, "failed to lock profile")
	}

	return nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:                    data.ID,
		FullName:              data.FullName,
		Email:                 data.Email,
		Phone:                 data.Phone,
		AccountType:           entity.ParseAccountType(data.AccountType),
		AccountTypeLabel:      entity.AccountTypeLabel(data.AccountTypeLabel),
		SubscriptionExpiresAt: data.SubscriptionExpiresAt,
		IsAdmin:               data.IsAdmin,
		ProfileImageURL:       data.ProfileImageURL,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

func toProfileDomains(models []*model.ProfileModel) []*entity.Profile {
	profiles := make([]*entity.Profile, 0, len(models))
	for _, m := range models {
		profiles = append(profiles, toProfileDomain(m))
	}

	return profiles
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:                    data.ID,
		FullName:              data.FullName,
		Email:                 data.Email,
		Phone:                 data.Phone,
		AccountType:           string(data.AccountType),
		AccountTypeLabel:      string(data.AccountTypeLabel),
		SubscriptionExpiresAt: data.SubscriptionExpiresAt,
		IsAdmin:               data.IsAdmin,
		ProfileImageURL:       data.ProfileImageURL,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}
