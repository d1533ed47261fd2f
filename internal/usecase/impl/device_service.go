package impl

import (
	"context"
	"strings"

	"enginex/internal/domain/entity"
	domainerrors "enginex/internal/domain/errors"
	"enginex/internal/domain/repository"
	"enginex/internal/domain/service"
	"enginex/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var pushPlatforms = map[string]bool{"ios": true, "android": true, "web": true}

type deviceService struct {
	deviceRepo repository.DeviceRepository
	clock      service.Clock
}

// NewDeviceService creates the push target usecase.
func NewDeviceService(deviceRepo repository.DeviceRepository, clock service.Clock) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		clock:      clock,
	}
}

func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, registration *usecase.DeviceRegistration) (*entity.UserDevice, error) {
	token := strings.TrimSpace(registration.FCMToken)
	deviceID := strings.TrimSpace(registration.DeviceID)
	platform := strings.ToLower(strings.TrimSpace(registration.Platform))

	var fields domainerrors.FieldErrors
	if token == "" {
		fields.Add("fcm_token", "required", "push token is required")
	}
	if deviceID == "" {
		fields.Add("device_id", "required", "device id is required")
	}
	if !pushPlatforms[platform] {
		fields.Add("platform", "oneof", "platform must be ios, android or web")
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	device := &entity.UserDevice{
		UserID:     userID,
		FCMToken:   token,
		DeviceID:   deviceID,
		Platform:   platform,
		IsActive:   true,
		LastSeenAt: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.deviceRepo.Register(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	return device, nil
}

func (s *deviceService) RotateToken(ctx context.Context, userID, deviceID uuid.UUID, fcmToken string) error {
	fcmToken = strings.TrimSpace(fcmToken)
	if fcmToken == "" {
		return domainerrors.NewValidationError(domainerrors.FieldError{
			Field: "fcm_token", Rule: "required", Message: "push token is required",
		})
	}

	if err := s.checkOwnership(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateToken(ctx, deviceID, fcmToken); err != nil {
		return errors.Wrap(err, "failed to rotate push token")
	}

	return nil
}

func (s *deviceService) ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return devices, nil
}

func (s *deviceService) UnregisterDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if err := s.checkOwnership(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.Deactivate(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to unregister device")
	}

	return nil
}

// checkOwnership answers not-found for devices of other users.
func (s *deviceService) checkOwnership(ctx context.Context, userID, deviceID uuid.UUID) error {
	device, err := s.deviceRepo.FindByID(ctx, deviceID)
	if errors.Is(err, repository.ErrDeviceNotFound) || (err == nil && device.UserID != userID) {
		return domainerrors.ErrDeviceNotFound.WrapMessage("device not found")
	}
	if err != nil {
		return errors.Wrap(err, "failed to load device")
	}

	return nil
}
