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

type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

func (repo *deviceRepository) Register(ctx context.Context, device *entity.UserDevice) error {
	if device.ID == uuid.Nil {
		device.ID = uuid.New()
	}
	row := fromDeviceDomain(device)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "device_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"fcm_token", "platform", "is_active", "last_seen_at", "updated_at"}),
			},
			clause.Returning{},
		).Create(row).Error; err != nil {
			if isForeignKeyConstraintViolation(err) {
				return domainerrors.ErrUserNotFound.WrapMessage("invalid device owner")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to register device")
		}

		// A token follows the app install; a phone that switched account must stop receiving the old account's pushes.
		if err := tx.Model(&model.UserDeviceModel{}).
			Where("fcm_token = ? AND id <> ? AND is_active = ?", row.FCMToken, row.ID, true).
			Update("is_active", false).Error; err != nil {
			return errors.Wrap(err, "failed to release token from other devices")
		}

		return nil
	})
	if err != nil {
		return err
	}

	*device = *toDeviceDomain(row)

	return nil
}

func (repo *deviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	var row model.UserDeviceModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&row), nil
}

func (repo *deviceRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	var rows []*model.UserDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("last_seen_at DESC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	devices := make([]*entity.UserDevice, 0, len(rows))
	for _, row := range rows {
		devices = append(devices, toDeviceDomain(row))
	}

	return devices, nil
}

func (repo *deviceRepository) UpdateToken(ctx context.Context, id uuid.UUID, fcmToken string) error {
	return repo.update(ctx, id, map[string]any{"fcm_token": fcmToken, "is_active": true})
}

func (repo *deviceRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return repo.update(ctx, id, map[string]any{"is_active": false})
}

func (repo *deviceRepository) update(ctx context.Context, id uuid.UUID, columns map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func (repo *deviceRepository) DeactivateByTokens(ctx context.Context, fcmTokens []string) (int64, error) {
	if len(fcmTokens) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("fcm_token IN ? AND is_active = ?", fcmTokens, true).
		Update("is_active", false)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate devices")
	}

	return result.RowsAffected, nil
}

func toDeviceDomain(row *model.UserDeviceModel) *entity.UserDevice {
	return &entity.UserDevice{
		ID:         row.ID,
		UserID:     row.UserID,
		FCMToken:   row.FCMToken,
		DeviceID:   row.DeviceID,
		Platform:   row.Platform,
		IsActive:   row.IsActive,
		LastSeenAt: row.LastSeenAt,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func fromDeviceDomain(device *entity.UserDevice) *model.UserDeviceModel {
	return &model.UserDeviceModel{
		ID:         device.ID,
		UserID:     device.UserID,
		FCMToken:   device.FCMToken,
		DeviceID:   device.DeviceID,
		Platform:   device.Platform,
		IsActive:   device.IsActive,
		LastSeenAt: device.LastSeenAt,
		CreatedAt:  device.CreatedAt,
		UpdatedAt:  device.UpdatedAt,
	}
}
