package impl

import (
	"context"
	"testing"

	"enginex/internal/domain/entity"
	domainerrors "enginex/internal/domain/errors"
	"enginex/internal/domain/service"
	mockRepo "enginex/internal/mocks/repository"
	mockSvc "enginex/internal/mocks/service"
	"enginex/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deliveryServiceFixtures struct {
	service    usecase.DeliveryUsecase
	deviceRepo *mockRepo.MockDeviceRepository
	push       *mockSvc.MockPushSender
	mail       *mockSvc.MockMailSender
}

func createTestDeliveryService(t *testing.T) deliveryServiceFixtures {
	fx := deliveryServiceFixtures{
		deviceRepo: mockRepo.NewMockDeviceRepository(t),
		push:       mockSvc.NewMockPushSender(t),
		mail:       mockSvc.NewMockMailSender(t),
	}
	fx.service = NewDeliveryService(DeliveryServiceParams{
		DeviceRepo: fx.deviceRepo,
		Push:       fx.push,
		MailSender: fx.mail,
		Logger:     newDiscardLogger(),
	})

	return fx
}

// permanentMailError mimics a mail endpoint rejection that must not be retried.
type permanentMailError struct{}

func (permanentMailError) Error() string   { return "mail endpoint returned 422" }
func (permanentMailError) Retryable() bool { return false }

func TestDeliveryService_DeliverNotification(t *testing.T) {
	fx := createTestDeliveryService(t)
	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: userID, FCMToken: "token-a", IsActive: true},
		{ID: uuid.New(), UserID: userID, FCMToken: "token-b", IsActive: true},
	}

	fx.deviceRepo.EXPECT().FindActiveByUser(ctx, userID).Return(devices, nil)
	fx.push.EXPECT().
		Push(ctx, []string{"token-a", "token-b"}, &service.PushMessage{
			Title: "Annonce approuvée",
			Body:  "En ligne",
			Data:  map[string]string{"listing_id": "l-1", "type": "listing_approved", "notification_id": "n-1"},
		}).
		Return(&service.PushReport{Delivered: 1, Failed: 1, StaleTokens: []string{"token-b"}}, nil)
	fx.deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"token-b"}).Return(int64(1), nil)

	err := fx.service.DeliverNotification(ctx, &service.NotificationEvent{
		NotificationID: "n-1",
		UserID:         userID.String(),
		Type:           "listing_approved",
		Title:          "Annonce approuvée",
		Body:           "En ligne",
		Data:           map[string]string{"listing_id": "l-1"},
	})

	assert.NoError(t, err)
}

func TestDeliveryService_DeliverNotification_NoDevices(t *testing.T) {
	fx := createTestDeliveryService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().FindActiveByUser(ctx, userID).Return(nil, nil)

	err := fx.service.DeliverNotification(ctx, &service.NotificationEvent{UserID: userID.String(), Type: "system"})

	assert.NoError(t, err)
	fx.push.AssertNotCalled(t, "Push", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeliveryService_DeliverNotification_Errors(t *testing.T) {
	t.Run("malformed user id is permanent", func(t *testing.T) {
		fx := createTestDeliveryService(t)

		err := fx.service.DeliverNotification(context.Background(), &service.NotificationEvent{UserID: "nope"})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		assert.False(t, errors.Is(err, domainerrors.ErrServiceUnavailable))
	})

	t.Run("provider failure is transient", func(t *testing.T) {
		fx := createTestDeliveryService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.deviceRepo.EXPECT().FindActiveByUser(ctx, userID).
			Return([]*entity.UserDevice{{FCMToken: "token-a"}}, nil)
		fx.push.EXPECT().Push(ctx, mock.Anything, mock.Anything).
			Return(nil, errors.New("fcm unavailable"))

		err := fx.service.DeliverNotification(ctx, &service.NotificationEvent{UserID: userID.String()})

		assert.True(t, errors.Is(err, domainerrors.ErrServiceUnavailable))
	})
}

func TestDeliveryService_DeliverEmail(t *testing.T) {
	event := &service.EmailEvent{
		Template: service.EmailTemplatePasswordReset,
		To:       "karim@example.ma",
		Data:     map[string]string{"code": "482913"},
	}

	t.Run("sent", func(t *testing.T) {
		fx := createTestDeliveryService(t)
		ctx := context.Background()
		fx.mail.EXPECT().Send(ctx, event.Template, event.To, event.Data).Return(nil)

		require.NoError(t, fx.service.DeliverEmail(ctx, event))
	})

	t.Run("transient failure", func(t *testing.T) {
		fx := createTestDeliveryService(t)
		ctx := context.Background()
		fx.mail.EXPECT().Send(ctx, event.Template, event.To, event.Data).Return(errors.New("timeout"))

		err := fx.service.DeliverEmail(ctx, event)

		assert.True(t, errors.Is(err, domainerrors.ErrServiceUnavailable))
	})

	t.Run("permanent rejection", func(t *testing.T) {
		fx := createTestDeliveryService(t)
		ctx := context.Background()
		fx.mail.EXPECT().Send(ctx, event.Template, event.To, event.Data).Return(permanentMailError{})

		err := fx.service.DeliverEmail(ctx, event)

		require.Error(t, err)
		assert.False(t, errors.Is(err, domainerrors.ErrServiceUnavailable))
	})

	t.Run("unknown template", func(t *testing.T) {
		fx := createTestDeliveryService(t)

		err := fx.service.DeliverEmail(context.Background(), &service.EmailEvent{Template: "newsletter", To: "a@b.ma"})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}
