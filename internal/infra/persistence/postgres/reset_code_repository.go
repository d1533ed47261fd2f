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
)

type resetCodeRepository struct {
	db *gorm.DB
}

// NewResetCodeRepository is the constructor for resetCodeRepository.
func NewResetCodeRepository(db *gorm.DB) repository.ResetCodeRepository {
	return &resetCodeRepository{db: db}
}

func (repo *resetCodeRepository) Create(ctx context.Context, code *entity.PasswordResetCode) error {
	if code.ID == uuid.Nil {
		code.ID = uuid.New()
	}

	codeM := &model.PasswordResetCodeModel{
		ID:        code.ID,
		Email:     code.Email,
		Code:      code.Code,
		ExpiresAt: code.ExpiresAt,
		Used:      code.Used,
		CreatedAt: code.CreatedAt,
	}
	if err := repo.db.WithContext(ctx).Create(codeM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create reset code")
	}
	code.CreatedAt = codeM.CreatedAt

	return nil
}

func (repo *resetCodeRepository) FindUsable(ctx context.Context, email, code string, now time.Time) (*entity.PasswordResetCode, error) {
	var codeM model.PasswordResetCodeModel
	if err := repo.db.WithContext(ctx).
		Where("lower(email) = lower(?) AND code = ? AND used = ? AND expires_at > ?", email, code, false, now).
		Order("created_at DESC").
		First(&codeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResetCodeNotFound
		}

		return nil, errors.WithStack(err)
	}

	return &entity.PasswordResetCode{
		ID:        codeM.ID,
		Email:     codeM.Email,
		Code:      codeM.Code,
		ExpiresAt: codeM.ExpiresAt,
		Used:      codeM.Used,
		CreatedAt: codeM.CreatedAt,
	}, nil
}

// MarkUsed flips used only while it is still false, so two concurrent resets cannot both consume a code.
func (repo *resetCodeRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PasswordResetCodeModel{}).
		Where("id = ? AND used = ?", id, false).
		Update("used", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark reset code used")
	}
	if result.RowsAffected == 0 {
		return repository.ErrResetCodeNotFound
	}

	return nil
}

// PurgeExpired drops codes that can no longer be used: expired ones and consumed ones older than cutoff.
func (repo *resetCodeRepository) PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at <= ? OR (used = ? AND created_at <= ?)", cutoff, true, cutoff).
		Delete(&model.PasswordResetCodeModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to purge reset codes")
	}

	return result.RowsAffected, nil
}
