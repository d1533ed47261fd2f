package handler

import (
	"net/http"
	"testing"

	deliverycontext "enginex/internal/delivery/context"
	"enginex/internal/domain/entity"
	domainerrors "enginex/internal/domain/errors"
	mockUc "enginex/internal/mocks/usecase"
	"enginex/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDeviceHandler(t *testing.T) (*DeviceHandler, *mockUc.MockDeviceUsecase) {
	uc := mockUc.NewMockDeviceUsecase(t)

	return NewDeviceHandler(DeviceHandlerParams{DeviceUC: uc, Logger: newDiscardLogger()}), uc
}

func TestDeviceHandler_Register(t *testing.T) {
	h, uc := createTestDeviceHandler(t)
	userID := uuid.New()
	c, rec := newTestContext(http.MethodPost, "/api/v1/devices", `{"fcm_token":"tok-1","device_id":"pixel-7","platform":"android"}`)
	deliverycontext.SetSession(c, &entity.Session{UserID: userID})

	uc.EXPECT().
		RegisterDevice(mock.Anything, userID, &usecase.DeviceRegistration{FCMToken: "tok-1", DeviceID: "pixel-7", Platform: "android"}).
		Return(&entity.UserDevice{ID: uuid.New(), UserID: userID, DeviceID: "pixel-7", IsActive: true}, nil)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"device_id":"pixel-7"`)
}

func TestDeviceHandler_Register_MissingToken(t *testing.T) {
	h, _ := createTestDeviceHandler(t)
	c, rec := newTestContext(http.MethodPost, "/api/v1/devices", `{"device_id":"pixel-7","platform":"android"}`)
	deliverycontext.SetSession(c, &entity.Session{UserID: uuid.New()})

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
}

func TestDeviceHandler_List_Empty(t *testing.T) {
	h, uc := createTestDeviceHandler(t)
	userID := uuid.New()
	c, rec := newTestContext(http.MethodGet, "/api/v1/devices", "")
	deliverycontext.SetSession(c, &entity.Session{UserID: userID})

	uc.EXPECT().ListDevices(mock.Anything, userID).Return(nil, nil)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decodeEnvelope(t, rec).Data))
}

func TestDeviceHandler_Unregister(t *testing.T) {
	tests := []struct {
		name     string
		param    string
		ucErr    error
		wantCode int
	}{
		{name: "deactivated", param: uuid.NewString(), wantCode: http.StatusNoContent},
		{name: "foreign device", param: uuid.NewString(), ucErr: domainerrors.ErrDeviceNotFound, wantCode: http.StatusNotFound},
		{name: "bad id", param: "42", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := createTestDeviceHandler(t)
			userID := uuid.New()
			c, rec := newTestContext(http.MethodDelete, "/api/v1/devices/"+tt.param, "")
			c.SetParamNames("id")
			c.SetParamValues(tt.param)
			deliverycontext.SetSession(c, &entity.Session{UserID: userID})

			if id, err := uuid.Parse(tt.param); err == nil {
				uc.EXPECT().UnregisterDevice(mock.Anything, userID, id).Return(tt.ucErr)
			}

			require.NoError(t, h.Unregister(c))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestDeviceHandler_RotateToken_Unauthenticated(t *testing.T) {
	h, _ := createTestDeviceHandler(t)
	c, rec := newTestContext(http.MethodPut, "/api/v1/devices/x/token", `{"fcm_token":"t"}`)

	require.NoError(t, h.RotateToken(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
