package postgres

import (
	"context"
	"strings"

	"enginex/internal/domain/entity"
	domainerrors "enginex/internal/domain/errors"
	"enginex/internal/domain/repository"
	"enginex/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository is the constructor for authRepository.
func NewAuthRepository(db *gorm.DB) repository.AuthRepository {
	return &authRepository{db: db}
}

// Create stores an email credential. The login identifier is kept lower-cased.
func (repo *authRepository) Create(ctx context.Context, auth *entity.Authentication) error {
	if auth.ID == uuid.Nil {
		auth.ID = uuid.New()
	}
	row := &model.AuthenticationModel{
		ID:             auth.ID,
		UserID:         auth.UserID,
		Provider:       entity.ProviderTypeEmail,
		ProviderUserID: strings.ToLower(strings.TrimSpace(auth.ProviderUserID)),
		PasswordHash:   auth.PasswordHash,
	}

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		case isForeignKeyConstraintViolation(err), isNotNullConstraintViolation(err):
			return domainerrors.ErrUserCreationFailed.WrapMessage("credential does not reference a profile")
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to create credential")
		}
	}
	auth.Provider = row.Provider
	auth.ProviderUserID = row.ProviderUserID
	auth.CreatedAt = row.CreatedAt

	return nil
}

func (repo *authRepository) FindByEmail(ctx context.Context, email string) (*entity.Authentication, error) {
	var row model.AuthenticationModel
	err := repo.db.WithContext(ctx).
		Where("provider = ? AND provider_user_id = ?", entity.ProviderTypeEmail, strings.ToLower(strings.TrimSpace(email))).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrAuthNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find credential")
	}

	return &entity.Authentication{
		ID:             row.ID,
		UserID:         row.UserID,
		Provider:       row.Provider,
		ProviderUserID: row.ProviderUserID,
		PasswordHash:   row.PasswordHash,
		CreatedAt:      row.CreatedAt,
	}, nil
}

func (repo *authRepository) UpdatePasswordHash(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AuthenticationModel{}).
		Where("user_id = ? AND provider = ?", userID, entity.ProviderTypeEmail).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAuthNotFound
	}

	return nil
}
