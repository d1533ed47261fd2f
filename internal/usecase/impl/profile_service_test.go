package impl

import (
	"context"
	"testing"
	"time"

	"enginex/internal/domain/entity"
	domainerrors "enginex/internal/domain/errors"
	"enginex/internal/domain/repository"
	mockRepo "enginex/internal/mocks/repository"
	mockSvc "enginex/internal/mocks/service"
	"enginex/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	profileRepo *mockRepo.MockProfileRepository
	listingRepo *mockRepo.MockListingRepository
	notifRepo   *mockRepo.MockNotificationRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	fx := profileServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		profileRepo: mockRepo.NewMockProfileRepository(t),
		listingRepo: mockRepo.NewMockListingRepository(t),
		notifRepo:   mockRepo.NewMockNotificationRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}

	fx.factory.EXPECT().ProfileRepo().Return(fx.profileRepo).Maybe()
	fx.factory.EXPECT().NotificationRepo().Return(fx.notifRepo).Maybe()

	fx.service = NewProfileService(ProfileServiceParams{
		TxManager:        fx.txManager,
		ProfileRepo:      fx.profileRepo,
		ListingRepo:      fx.listingRepo,
		NotificationRepo: fx.notifRepo,
		Publisher:        fx.publisher,
		Clock:            fixedClock(t, testNow),
		Logger:           newDiscardLogger(),
	})

	return fx
}

func TestProfileService_GetProfile(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		fx := createTestProfileService(t)
		ctx := context.Background()
		profile := &entity.Profile{ID: uuid.New(), FullName: "Youssef Alaoui"}

		fx.profileRepo.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)

		got, err := fx.service.GetProfile(ctx, profile.ID)

		require.NoError(t, err)
		assert.Equal(t, profile, got)
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestProfileService(t)
		ctx := context.Background()
		id := uuid.New()

		fx.profileRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProfileNotFound)

		_, err := fx.service.GetProfile(ctx, id)

		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})
}

func TestProfileService_UpdateProfile(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	profile := &entity.Profile{ID: uuid.New(), FullName: "Old", AccountTypeLabel: entity.LabelIndividual}
	name := "  Agri Services Doukkala "
	phone := "+212 6 61-22-33-44"
	label := entity.LabelProfessional

	expectTx(fx.txManager, fx.factory)
	fx.profileRepo.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
	fx.profileRepo.EXPECT().Update(ctx, profile).Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, profile.ID, &usecase.UpdateProfileInput{
		FullName:         &name,
		Phone:            &phone,
		AccountTypeLabel: &label,
	})

	require.NoError(t, err)
	assert.Equal(t, "Agri Services Doukkala", updated.FullName)
	assert.Equal(t, "+212661223344", updated.Phone)
	assert.Equal(t, entity.LabelProfessional, updated.AccountTypeLabel)
	assert.Equal(t, testNow, updated.UpdatedAt)
}

func TestProfileService_UpdateProfile_Validation(t *testing.T) {
	fx := createTestProfileService(t)
	empty := " "
	label := entity.AccountTypeLabel("Société")

	_, err := fx.service.UpdateProfile(context.Background(), uuid.New(), &usecase.UpdateProfileInput{
		FullName:         &empty,
		AccountTypeLabel: &label,
	})

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Len(t, validationErr.Fields(), 2)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestProfileService_ActivateSubscription(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	profile := &entity.Profile{ID: uuid.New(), AccountType: entity.AccountTypeIndividual}
	until := testNow.Add(30 * 24 * time.Hour)

	expectTx(fx.txManager, fx.factory)
	fx.profileRepo.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
	fx.profileRepo.EXPECT().UpdatePlan(ctx, profile.ID, entity.AccountTypePremium, &until).Return(nil)
	fx.notifRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.Type == entity.NotificationSubscriptionActivated
		})).
		Return(nil)
	fx.publisher.EXPECT().PublishNotificationEvent(ctx, mock.AnythingOfType("*service.NotificationEvent")).Return(nil)

	updated, err := fx.service.ActivateSubscription(ctx, profile.ID, entity.AccountTypePremium)

	require.NoError(t, err)
	assert.Equal(t, entity.AccountTypePremium, updated.AccountType)
	assert.True(t, updated.HasActiveSubscription(testNow))
}

func TestProfileService_ActivateSubscription_FreePlanRejected(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.ActivateSubscription(context.Background(), uuid.New(), entity.AccountTypeIndividual)

	var validationErr *domainerrors.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestProfileService_ActivateSubscription_PublishFailureIsSwallowed(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	profile := &entity.Profile{ID: uuid.New(), AccountType: entity.AccountTypePro}

	expectTx(fx.txManager, fx.factory)
	fx.profileRepo.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
	fx.profileRepo.EXPECT().UpdatePlan(ctx, profile.ID, entity.AccountTypePro, mock.Anything).Return(nil)
	fx.notifRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(errors.New("pubsub down"))

	_, err := fx.service.ActivateSubscription(ctx, profile.ID, entity.AccountTypePro)

	assert.NoError(t, err)
}

func TestProfileService_Dashboard(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.listingRepo.EXPECT().Stats(ctx, &userID).
		Return(&entity.ListingStats{Total: 3, Approved: 2, Pending: 1, TotalViews: 41}, nil)
	fx.notifRepo.EXPECT().CountUnread(ctx, userID).Return(int64(5), nil)

	stats, err := fx.service.Dashboard(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(41), stats.TotalViews)
	assert.Equal(t, int64(5), stats.UnreadNotifications)
}
