package impl

import (
	"context"
	"testing"
	"time"

	"enginex/internal/domain/entity"
	mockRepo "enginex/internal/mocks/repository"
	mockSvc "enginex/internal/mocks/service"
	"enginex/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type maintenanceServiceFixtures struct {
	service     usecase.MaintenanceUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	listingRepo *mockRepo.MockListingRepository
	profileRepo *mockRepo.MockProfileRepository
	notifRepo   *mockRepo.MockNotificationRepository
	sessionRepo *mockRepo.MockRefreshTokenRepository
	codeRepo    *mockRepo.MockResetCodeRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestMaintenanceService(t *testing.T) maintenanceServiceFixtures {
	fx := maintenanceServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		listingRepo: mockRepo.NewMockListingRepository(t),
		profileRepo: mockRepo.NewMockProfileRepository(t),
		notifRepo:   mockRepo.NewMockNotificationRepository(t),
		sessionRepo: mockRepo.NewMockRefreshTokenRepository(t),
		codeRepo:    mockRepo.NewMockResetCodeRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}

	fx.factory.EXPECT().ListingRepo().Return(fx.listingRepo).Maybe()
	fx.factory.EXPECT().ProfileRepo().Return(fx.profileRepo).Maybe()
	fx.factory.EXPECT().NotificationRepo().Return(fx.notifRepo).Maybe()

	fx.service = NewMaintenanceService(MaintenanceServiceParams{
		TxManager:   fx.txManager,
		ListingRepo: fx.listingRepo,
		ProfileRepo: fx.profileRepo,
		SessionRepo: fx.sessionRepo,
		CodeRepo:    fx.codeRepo,
		Publisher:   fx.publisher,
		Clock:       fixedClock(t, testNow),
		Config:      newTestConfig(0),
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestMaintenanceService_ExpireListings(t *testing.T) {
	fx := createTestMaintenanceService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	past := testNow.Add(-time.Hour)

	approved := &entity.Listing{ID: uuid.New(), UserID: &ownerID, Status: entity.ListingStatusApproved, IsActive: true, ExpiresAt: &past}
	pending := &entity.Listing{ID: uuid.New(), UserID: &ownerID, Status: entity.ListingStatusPending, IsActive: true, ExpiresAt: &past}
	anonymous := &entity.Listing{ID: uuid.New(), Status: entity.ListingStatusApproved, IsActive: true, ExpiresAt: &past}

	expectTx(fx.txManager, fx.factory)
	fx.listingRepo.EXPECT().FindExpired(ctx, testNow, 100).
		Return([]*entity.Listing{approved, pending, anonymous}, nil)
	fx.listingRepo.EXPECT().SetActive(ctx, mock.AnythingOfType("uuid.UUID"), false, testNow).Return(nil).Times(3)
	fx.notifRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.Type == entity.NotificationListingExpired && *n.ListingID == approved.ID
		})).
		Return(nil).Once()
	fx.publisher.EXPECT().PublishNotificationEvent(ctx, mock.AnythingOfType("*service.NotificationEvent")).Return(nil).Once()

	handled, err := fx.service.ExpireListings(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, handled)
}

func TestMaintenanceService_ExpireListings_PartialFailure(t *testing.T) {
	fx := createTestMaintenanceService(t)
	ctx := context.Background()
	past := testNow.Add(-time.Hour)
	first := &entity.Listing{ID: uuid.New(), IsActive: true, ExpiresAt: &past}
	second := &entity.Listing{ID: uuid.New(), IsActive: true, ExpiresAt: &past}

	expectTx(fx.txManager, fx.factory)
	fx.listingRepo.EXPECT().FindExpired(ctx, testNow, 100).Return([]*entity.Listing{first, second}, nil)
	fx.listingRepo.EXPECT().SetActive(ctx, first.ID, false, testNow).Return(errors.New("deadlock detected"))
	fx.listingRepo.EXPECT().SetActive(ctx, second.ID, false, testNow).Return(nil)

	handled, err := fx.service.ExpireListings(ctx)

	assert.Equal(t, 1, handled)
	require.Error(t, err)
	assert.ErrorContains(t, err, first.ID.String())
}

func TestMaintenanceService_WarnExpiringListings(t *testing.T) {
	fx := createTestMaintenanceService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	soon := testNow.Add(48 * time.Hour)
	owned := &entity.Listing{ID: uuid.New(), UserID: &ownerID, Title: "Bulldozer D6", ExpiresAt: &soon}
	anonymous := &entity.Listing{ID: uuid.New(), ExpiresAt: &soon}
	// Renewed after the query ran: outside the window now.
	renewedAt := testNow.Add(30 * 24 * time.Hour)
	renewed := &entity.Listing{ID: uuid.New(), UserID: &ownerID, ExpiresAt: &renewedAt}

	expectTx(fx.txManager, fx.factory)
	fx.listingRepo.EXPECT().FindExpiringUnwarned(ctx, testNow, testNow.Add(72*time.Hour), 100).
		Return([]*entity.Listing{owned, anonymous, renewed}, nil)
	fx.listingRepo.EXPECT().MarkExpiryWarned(ctx, owned.ID, testNow).Return(nil)
	fx.listingRepo.EXPECT().MarkExpiryWarned(ctx, anonymous.ID, testNow).Return(nil)
	fx.notifRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.Type == entity.NotificationListingExpiring && n.UserID == ownerID
		})).
		Return(nil).Once()
	fx.publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(nil).Once()

	handled, err := fx.service.WarnExpiringListings(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, handled)
	fx.listingRepo.AssertNotCalled(t, "MarkExpiryWarned", ctx, renewed.ID, testNow)
}

func TestMaintenanceService_DowngradeLapsedSubscriptions(t *testing.T) {
	fx := createTestMaintenanceService(t)
	ctx := context.Background()
	ended := testNow.Add(-24 * time.Hour)
	profile := &entity.Profile{ID: uuid.New(), AccountType: entity.AccountTypePro, SubscriptionExpiresAt: &ended}

	expectTx(fx.txManager, fx.factory)
	fx.profileRepo.EXPECT().FindLapsedSubscriptions(ctx, testNow, 100).Return([]*entity.Profile{profile}, nil)
	fx.profileRepo.EXPECT().UpdatePlan(ctx, profile.ID, entity.AccountTypeIndividual, (*time.Time)(nil)).Return(nil)
	fx.notifRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.Type == entity.NotificationSubscriptionExpired
		})).
		Return(nil)
	fx.publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(nil)

	handled, err := fx.service.DowngradeLapsedSubscriptions(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, handled)
}

func TestMaintenanceService_DowngradeLapsedSubscriptions_QueryFails(t *testing.T) {
	fx := createTestMaintenanceService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().FindLapsedSubscriptions(ctx, testNow, 100).Return(nil, errors.New("timeout"))

	handled, err := fx.service.DowngradeLapsedSubscriptions(ctx)

	assert.Zero(t, handled)
	assert.Error(t, err)
}

func TestMaintenanceService_PurgeExpiredCredentials(t *testing.T) {
	t.Run("both tables", func(t *testing.T) {
		fx := createTestMaintenanceService(t)
		ctx := context.Background()

		fx.sessionRepo.EXPECT().PurgeExpired(ctx, testNow).Return(int64(12), nil)
		fx.codeRepo.EXPECT().PurgeExpired(ctx, testNow).Return(int64(3), nil)

		handled, err := fx.service.PurgeExpiredCredentials(ctx)

		require.NoError(t, err)
		assert.Equal(t, 15, handled)
	})

	t.Run("one table fails", func(t *testing.T) {
		fx := createTestMaintenanceService(t)
		ctx := context.Background()

		fx.sessionRepo.EXPECT().PurgeExpired(ctx, testNow).Return(int64(0), errors.New("lock timeout"))
		fx.codeRepo.EXPECT().PurgeExpired(ctx, testNow).Return(int64(4), nil)

		handled, err := fx.service.PurgeExpiredCredentials(ctx)

		assert.Equal(t, 4, handled)
		assert.ErrorContains(t, err, "lock timeout")
	})
}
