package impl

import (
	"context"
	"testing"

	"enginex/internal/domain/entity"
	domainerrors "enginex/internal/domain/errors"
	"enginex/internal/domain/repository"
	mockRepo "enginex/internal/mocks/repository"
	"enginex/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeviceService_RegisterDevice(t *testing.T) {
	repo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(repo, fixedClock(t, testNow))
	ctx := context.Background()
	userID := uuid.New()
	storedID := uuid.New()

	repo.EXPECT().
		Register(ctx, mock.MatchedBy(func(d *entity.UserDevice) bool {
			return d.UserID == userID && d.DeviceID == "pixel-7" && d.Platform == "android" &&
				d.FCMToken == "fcm-token-1" && d.IsActive && d.LastSeenAt.Equal(testNow)
		})).
		RunAndReturn(func(_ context.Context, d *entity.UserDevice) error {
			d.ID = storedID

			return nil
		})

	device, err := svc.RegisterDevice(ctx, userID, &usecase.DeviceRegistration{
		FCMToken: " fcm-token-1 ",
		DeviceID: "pixel-7",
		Platform: " Android ",
	})

	require.NoError(t, err)
	assert.Equal(t, storedID, device.ID)
}

func TestDeviceService_RegisterDevice_Validation(t *testing.T) {
	repo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(repo, fixedClock(t, testNow))

	_, err := svc.RegisterDevice(context.Background(), uuid.New(), &usecase.DeviceRegistration{FCMToken: "  ", Platform: "blackberry"})

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Len(t, validationErr.Fields(), 3)
	repo.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestDeviceService_RegisterDevice_UnknownOwner(t *testing.T) {
	repo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(repo, fixedClock(t, testNow))
	ctx := context.Background()

	repo.EXPECT().Register(ctx, mock.Anything).Return(domainerrors.ErrUserNotFound.WrapMessage("invalid device owner"))

	_, err := svc.RegisterDevice(ctx, uuid.New(), &usecase.DeviceRegistration{FCMToken: "t", DeviceID: "d", Platform: "web"})

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestDeviceService_UnregisterDevice(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		device  *entity.UserDevice
		findErr error
		wantErr error
	}{
		{
			name:   "owner",
			device: &entity.UserDevice{ID: uuid.New(), UserID: userID},
		},
		{
			name:    "other user",
			device:  &entity.UserDevice{ID: uuid.New(), UserID: uuid.New()},
			wantErr: domainerrors.ErrDeviceNotFound,
		},
		{
			name:    "missing",
			device:  &entity.UserDevice{ID: uuid.New()},
			findErr: repository.ErrDeviceNotFound,
			wantErr: domainerrors.ErrDeviceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mockRepo.NewMockDeviceRepository(t)
			svc := NewDeviceService(repo, fixedClock(t, testNow))
			ctx := context.Background()

			if tt.findErr != nil {
				repo.EXPECT().FindByID(ctx, tt.device.ID).Return(nil, tt.findErr)
			} else {
				repo.EXPECT().FindByID(ctx, tt.device.ID).Return(tt.device, nil)
			}
			if tt.wantErr == nil {
				repo.EXPECT().Deactivate(ctx, tt.device.ID).Return(nil)
			}

			err := svc.UnregisterDevice(ctx, userID, tt.device.ID)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDeviceService_RotateToken(t *testing.T) {
	repo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(repo, fixedClock(t, testNow))
	ctx := context.Background()
	userID := uuid.New()
	device := &entity.UserDevice{ID: uuid.New(), UserID: userID}

	repo.EXPECT().FindByID(ctx, device.ID).Return(device, nil)
	repo.EXPECT().UpdateToken(ctx, device.ID, "rotated").Return(nil)

	require.NoError(t, svc.RotateToken(ctx, userID, device.ID, "rotated"))

	var validationErr *domainerrors.ValidationError
	assert.True(t, errors.As(svc.RotateToken(ctx, userID, device.ID, " "), &validationErr))
}

func TestDeviceService_ListDevices(t *testing.T) {
	repo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(repo, fixedClock(t, testNow))
	ctx := context.Background()
	userID := uuid.New()

	repo.EXPECT().FindActiveByUser(ctx, userID).Return(nil, errors.New("connection reset"))

	_, err := svc.ListDevices(ctx, userID)

	assert.ErrorContains(t, err, "failed to list devices")
}
