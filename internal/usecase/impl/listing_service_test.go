package impl

import (
	"context"
	"testing"
	"time"

	"enginex/internal/domain/entity"
	domainerrors "enginex/internal/domain/errors"
	"enginex/internal/domain/policy"
	"enginex/internal/domain/repository"
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

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

// listingServiceFixtures holds all test dependencies for listing service tests.
type listingServiceFixtures struct {
	service       usecase.ListingUsecase
	txManager     *mockRepo.MockTransactionManager
	factory       *mockRepo.MockRepositoryFactory
	listingRepo   *mockRepo.MockListingRepository
	profileRepo   *mockRepo.MockProfileRepository
	catalogRepo   *mockRepo.MockCatalogRepository
	notifRepo     *mockRepo.MockNotificationRepository
	viewTracker   *mockSvc.MockViewTracker
	qrCodeService *mockSvc.MockQRCodeService
	publisher     *mockSvc.MockEventPublisher
}

func createTestListingService(t *testing.T) listingServiceFixtures {
	fx := listingServiceFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		factory:       mockRepo.NewMockRepositoryFactory(t),
		listingRepo:   mockRepo.NewMockListingRepository(t),
		profileRepo:   mockRepo.NewMockProfileRepository(t),
		catalogRepo:   mockRepo.NewMockCatalogRepository(t),
		notifRepo:     mockRepo.NewMockNotificationRepository(t),
		viewTracker:   mockSvc.NewMockViewTracker(t),
		qrCodeService: mockSvc.NewMockQRCodeService(t),
		publisher:     mockSvc.NewMockEventPublisher(t),
	}

	fx.factory.EXPECT().ListingRepo().Return(fx.listingRepo).Maybe()
	fx.factory.EXPECT().ProfileRepo().Return(fx.profileRepo).Maybe()
	fx.factory.EXPECT().CatalogRepo().Return(fx.catalogRepo).Maybe()
	fx.factory.EXPECT().NotificationRepo().Return(fx.notifRepo).Maybe()

	fx.service = NewListingService(ListingServiceParams{
		TxManager:     fx.txManager,
		ListingRepo:   fx.listingRepo,
		ProfileRepo:   fx.profileRepo,
		ViewTracker:   fx.viewTracker,
		QRCodeService: fx.qrCodeService,
		Publisher:     fx.publisher,
		Clock:         fixedClock(t, testNow),
		Config:        newTestConfig(0),
		Logger:        newDiscardLogger(),
	})

	return fx
}

func validPublishInput(categoryID uuid.UUID, typeID *uuid.UUID) *usecase.PublishListingInput {
	return &usecase.PublishListingInput{
		CategoryID:      categoryID,
		EquipmentTypeID: typeID,
		Title:           " Tracteur John Deere 6120M ",
		Description:     "Bon état, entretien à jour.",
		Price:           450000,
		Region:          entity.RegionFesMeknes,
		City:            "Meknès",
		Condition:       entity.ConditionGood,
		ContactPhone:    "06 12-34 56 78",
	}
}

func (fx listingServiceFixtures) expectCategoryAndType(categoryID, typeID uuid.UUID) {
	fx.catalogRepo.EXPECT().FindCategoryByID(mock.Anything, categoryID).
		Return(&entity.Category{ID: categoryID, Slug: "agricole"}, nil)
	fx.catalogRepo.EXPECT().FindEquipmentTypeByID(mock.Anything, typeID).
		Return(&entity.EquipmentType{ID: typeID, CategoryID: categoryID, Name: "Tracteur"}, nil)
}

func TestListingService_PublishListing_AnonymousIndividual(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	categoryID, typeID := uuid.New(), uuid.New()

	expectTx(fx.txManager, fx.factory)
	fx.listingRepo.EXPECT().AcquireQuotaLock(ctx, "0612345678", "").Return(nil)
	fx.listingRepo.EXPECT().CountRecentByContact(ctx, "0612345678", "", testNow.Add(-policy.QuotaWindow)).
		Return(int64(1), nil)
	fx.expectCategoryAndType(categoryID, typeID)
	fx.listingRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Listing")).Return(nil)
	fx.publisher.EXPECT().
		PublishEmailEvent(ctx, mock.MatchedBy(func(e *service.EmailEvent) bool {
			return e.Template == service.EmailTemplateNewListing && e.To == "0612345678@temp.enginex.ma"
		})).
		Return(nil)

	listing, err := fx.service.PublishListing(ctx, nil, validPublishInput(categoryID, &typeID))

	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusPending, listing.Status)
	assert.Equal(t, entity.AccountTypeIndividual, listing.Plan)
	assert.Equal(t, testNow.Add(15*24*time.Hour), *listing.ExpiresAt)
	assert.Nil(t, listing.UserID)
	assert.True(t, listing.IsActive)
	assert.Equal(t, "Tracteur John Deere 6120M", listing.Title)
	assert.Equal(t, "0612345678", listing.ContactPhone)
	assert.Equal(t, entity.BadgeNone, listing.Badge)
}

func TestListingService_PublishListing_QuotaExceeded(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	categoryID, typeID := uuid.New(), uuid.New()
	input := validPublishInput(categoryID, &typeID)
	input.ContactEmail = "Karim@Example.ma"

	expectTx(fx.txManager, fx.factory)
	fx.listingRepo.EXPECT().AcquireQuotaLock(ctx, "0612345678", "karim@example.ma").Return(nil)
	fx.listingRepo.EXPECT().CountRecentByContact(ctx, "0612345678", "karim@example.ma", mock.Anything).
		Return(int64(2), nil)

	listing, err := fx.service.PublishListing(ctx, nil, input)

	require.Error(t, err)
	assert.Nil(t, listing)
	assert.True(t, errors.Is(err, domainerrors.ErrQuotaExceeded))
	fx.listingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListingService_PublishListing_QuotaSharedAcrossPhoneSpellings(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	categoryID, typeID := uuid.New(), uuid.New()
	created := map[string]int64{}

	expectTx(fx.txManager, fx.factory)
	fx.listingRepo.EXPECT().AcquireQuotaLock(ctx, mock.Anything, "").Return(nil)
	fx.listingRepo.EXPECT().CountRecentByContact(ctx, mock.Anything, "", mock.Anything).
		RunAndReturn(func(_ context.Context, phone, _ string, _ time.Time) (int64, error) {
			return created[phone], nil
		})
	fx.expectCategoryAndType(categoryID, typeID)
	fx.listingRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Listing")).
		RunAndReturn(func(_ context.Context, listing *entity.Listing) error {
			created[listing.ContactPhone]++

			return nil
		})
	fx.publisher.EXPECT().PublishEmailEvent(ctx, mock.Anything).Return(nil)

	for _, phone := range []string{"0612345678", "+212 6 12 34 56 78"} {
		input := validPublishInput(categoryID, &typeID)
		input.ContactPhone = phone
		_, err := fx.service.PublishListing(ctx, nil, input)
		require.NoError(t, err, phone)
	}

	input := validPublishInput(categoryID, &typeID)
	input.ContactPhone = "00212612345678"
	_, err := fx.service.PublishListing(ctx, nil, input)

	assert.True(t, errors.Is(err, domainerrors.ErrQuotaExceeded))
	assert.Equal(t, map[string]int64{"0612345678": 2}, created)
}

func TestListingService_PublishListing_PaidPlanUpgradesAccount(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	userID, categoryID := uuid.New(), uuid.New()
	session := &entity.Session{UserID: userID, Roles: entity.Roles{entity.RoleUser}}
	input := validPublishInput(categoryID, nil)
	input.CustomTypeName = "  Semoir  Direct "
	input.Plan = "pro"

	owner := &entity.Profile{ID: userID, FullName: "Karim", AccountType: entity.AccountTypeIndividual}
	subscriptionEnd := testNow.Add(policy.SubscriptionWindow)

	expectTx(fx.txManager, fx.factory)
	fx.profileRepo.EXPECT().FindByID(ctx, userID).Return(owner, nil)
	fx.catalogRepo.EXPECT().FindCategoryByID(ctx, categoryID).Return(&entity.Category{ID: categoryID}, nil)
	fx.catalogRepo.EXPECT().FindEquipmentTypeByName(ctx, categoryID, "Semoir  Direct").
		Return(nil, repository.ErrEquipmentTypeNotFound)
	fx.catalogRepo.EXPECT().
		CreateEquipmentType(ctx, mock.MatchedBy(func(et *entity.EquipmentType) bool {
			return et.Slug == "semoir-direct" && et.CategoryID == categoryID
		})).
		RunAndReturn(func(_ context.Context, et *entity.EquipmentType) error {
			et.ID = uuid.New()

			return nil
		})
	fx.listingRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Listing")).Return(nil)
	fx.profileRepo.EXPECT().
		UpdatePlan(ctx, userID, entity.AccountTypePro, mock.MatchedBy(func(until *time.Time) bool {
			return until != nil && until.Equal(subscriptionEnd)
		})).
		Return(nil)
	fx.notifRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.Type == entity.NotificationSubscriptionActivated && n.UserID == userID
		})).
		Return(nil)
	fx.publisher.EXPECT().PublishNotificationEvent(ctx, mock.AnythingOfType("*service.NotificationEvent")).Return(nil)
	fx.publisher.EXPECT().PublishEmailEvent(ctx, mock.AnythingOfType("*service.EmailEvent")).Return(nil)

	listing, err := fx.service.PublishListing(ctx, session, input)

	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusPending, listing.Status)
	assert.Equal(t, testNow.Add(30*24*time.Hour), *listing.ExpiresAt)
	assert.Equal(t, userID, *listing.UserID)
	assert.Equal(t, policy.PriorityScore(entity.AccountTypePro, entity.BadgeNone), listing.PriorityScore)
	// Paid plans are not subject to the free quota.
	fx.listingRepo.AssertNotCalled(t, "AcquireQuotaLock", mock.Anything, mock.Anything, mock.Anything)
}

func TestListingService_PublishListing_ReusesCaseInsensitiveType(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	categoryID := uuid.New()
	existing := &entity.EquipmentType{ID: uuid.New(), CategoryID: categoryID, Name: "Tracteur", Slug: "tracteur"}
	input := validPublishInput(categoryID, nil)
	input.CustomTypeName = "TRACTEUR"
	input.Plan = entity.AccountTypePremium

	expectTx(fx.txManager, fx.factory)
	fx.catalogRepo.EXPECT().FindCategoryByID(ctx, categoryID).Return(&entity.Category{ID: categoryID}, nil)
	fx.catalogRepo.EXPECT().FindEquipmentTypeByName(ctx, categoryID, "TRACTEUR").Return(existing, nil)
	fx.listingRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Listing")).Return(nil)
	fx.publisher.EXPECT().PublishEmailEvent(ctx, mock.Anything).Return(nil)

	listing, err := fx.service.PublishListing(ctx, nil, input)

	require.NoError(t, err)
	assert.Equal(t, existing.ID, listing.EquipmentTypeID)
	assert.Equal(t, testNow.Add(90*24*time.Hour), *listing.ExpiresAt)
	fx.catalogRepo.AssertNotCalled(t, "CreateEquipmentType", mock.Anything, mock.Anything)
}

func TestListingService_PublishListing_ValidationErrors(t *testing.T) {
	fx := createTestListingService(t)

	input := &usecase.PublishListingInput{Price: -5, Region: "Atlantis", Plan: "gold"}

	_, err := fx.service.PublishListing(context.Background(), nil, input)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	fields := make([]string, 0)
	for _, f := range validationErr.Fields() {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{
		"category_id", "equipment_type_id", "title", "description", "price",
		"region", "city", "plan", "contact_phone",
	}, fields)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestListingService_PublishListing_TypeFromOtherCategory(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	categoryID, typeID := uuid.New(), uuid.New()

	expectTx(fx.txManager, fx.factory)
	fx.listingRepo.EXPECT().AcquireQuotaLock(ctx, mock.Anything, mock.Anything).Return(nil)
	fx.listingRepo.EXPECT().CountRecentByContact(ctx, mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)
	fx.catalogRepo.EXPECT().FindCategoryByID(ctx, categoryID).Return(&entity.Category{ID: categoryID}, nil)
	fx.catalogRepo.EXPECT().FindEquipmentTypeByID(ctx, typeID).
		Return(&entity.EquipmentType{ID: typeID, CategoryID: uuid.New()}, nil)

	_, err := fx.service.PublishListing(ctx, nil, validPublishInput(categoryID, &typeID))

	assert.True(t, errors.Is(err, domainerrors.ErrEquipmentTypeNotFound))
}

func visibleListing(ownerID *uuid.UUID) *entity.Listing {
	expires := testNow.Add(10 * 24 * time.Hour)

	return &entity.Listing{
		ID:        uuid.New(),
		UserID:    ownerID,
		Title:     "Pelle hydraulique CAT 320",
		Status:    entity.ListingStatusApproved,
		IsActive:  true,
		ExpiresAt: &expires,
		CreatedAt: testNow.Add(-time.Hour),
	}
}

func TestListingService_GetListing_CountsFirstView(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	listing := visibleListing(&ownerID)

	fx.listingRepo.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)
	fx.viewTracker.EXPECT().FirstView(ctx, listing.ID, "203.0.113.7").Return(true, nil)
	fx.listingRepo.EXPECT().
		RecordView(ctx, mock.MatchedBy(func(v *entity.ListingView) bool {
			return v.ListingID == listing.ID && v.IPAddress == "203.0.113.7"
		})).
		Return(nil)
	fx.profileRepo.EXPECT().FindByID(ctx, ownerID).
		Return(&entity.Profile{ID: ownerID, FullName: "Agri Souss", AccountType: entity.AccountTypePro}, nil)

	detail, err := fx.service.GetListing(ctx, nil, listing.ID, "203.0.113.7")

	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.Listing.ViewsCount)
	require.NotNil(t, detail.Seller)
	assert.Equal(t, "Agri Souss", detail.Seller.FullName)
}

func TestListingService_GetListing_RepeatViewNotCounted(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	listing := visibleListing(nil)

	fx.listingRepo.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)
	fx.viewTracker.EXPECT().FirstView(ctx, listing.ID, "tag").Return(false, nil)

	detail, err := fx.service.GetListing(ctx, nil, listing.ID, "tag")

	require.NoError(t, err)
	assert.Nil(t, detail.Seller)
	fx.listingRepo.AssertNotCalled(t, "RecordView", mock.Anything, mock.Anything)
}

func TestListingService_GetListing_HiddenListing(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name    string
		session *entity.Session
		wantErr bool
	}{
		{"anonymous visitor", nil, true},
		{"other user", &entity.Session{UserID: uuid.New(), Roles: entity.Roles{entity.RoleUser}}, true},
		{"owner", &entity.Session{UserID: ownerID, Roles: entity.Roles{entity.RoleUser}}, false},
		{"admin", &entity.Session{UserID: uuid.New(), Roles: entity.Roles{entity.RoleUser, entity.RoleAdmin}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestListingService(t)
			ctx := context.Background()
			listing := visibleListing(&ownerID)
			listing.Status = entity.ListingStatusPending

			fx.listingRepo.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)
			if !tt.wantErr {
				fx.profileRepo.EXPECT().FindByID(ctx, ownerID).Return(&entity.Profile{ID: ownerID}, nil)
			}

			detail, err := fx.service.GetListing(ctx, tt.session, listing.ID, "tag")

			if tt.wantErr {
				assert.True(t, errors.Is(err, domainerrors.ErrListingNotFound))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, listing, detail.Listing)
		})
	}
}

func TestListingService_GetListing_ExpiredIsHidden(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	listing := visibleListing(nil)
	past := testNow.Add(-time.Minute)
	listing.ExpiresAt = &past

	fx.listingRepo.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)

	_, err := fx.service.GetListing(ctx, nil, listing.ID, "tag")

	assert.True(t, errors.Is(err, domainerrors.ErrListingNotFound))
}

func TestListingService_SearchListings_ClampsPage(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	filter := repository.ListingFilter{Region: entity.RegionSoussMassa, Keyword: "tracteur"}
	listings := []*entity.Listing{visibleListing(nil)}

	fx.listingRepo.EXPECT().SearchVisible(ctx, filter, testNow, repository.Page{Limit: 50, Offset: 0}).
		Return(listings, int64(73), nil)

	page, err := fx.service.SearchListings(ctx, &usecase.SearchListingsInput{Filter: filter, Limit: 500, Offset: -3})

	require.NoError(t, err)
	assert.Equal(t, int64(73), page.Total)
	assert.Equal(t, 50, page.Limit)
	assert.Equal(t, 0, page.Offset)
	assert.Len(t, page.Listings, 1)
}

func TestListingService_FeaturedListings(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()

	fx.listingRepo.EXPECT().SearchVisible(ctx, repository.ListingFilter{}, testNow, repository.Page{Limit: 8}).
		Return([]*entity.Listing{}, int64(0), nil)

	listings, err := fx.service.FeaturedListings(ctx)

	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestListingService_SetMyListingActive(t *testing.T) {
	ownerID := uuid.New()

	t.Run("pause", func(t *testing.T) {
		fx := createTestListingService(t)
		ctx := context.Background()
		listing := visibleListing(&ownerID)

		fx.listingRepo.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)
		fx.listingRepo.EXPECT().SetActive(ctx, listing.ID, false, testNow).Return(nil)

		updated, err := fx.service.SetMyListingActive(ctx, ownerID, listing.ID, false)

		require.NoError(t, err)
		assert.False(t, updated.IsActive)
	})

	t.Run("expired cannot resume", func(t *testing.T) {
		fx := createTestListingService(t)
		ctx := context.Background()
		listing := visibleListing(&ownerID)
		listing.IsActive = false
		past := testNow.Add(-24 * time.Hour)
		listing.ExpiresAt = &past

		fx.listingRepo.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)

		_, err := fx.service.SetMyListingActive(ctx, ownerID, listing.ID, true)

		assert.True(t, errors.Is(err, domainerrors.ErrListingExpired))
	})

	t.Run("not owner", func(t *testing.T) {
		fx := createTestListingService(t)
		ctx := context.Background()
		listing := visibleListing(&ownerID)

		fx.listingRepo.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)

		_, err := fx.service.SetMyListingActive(ctx, uuid.New(), listing.ID, false)

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})
}

func TestListingService_DeleteMyListing(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	listing := visibleListing(&ownerID)

	fx.listingRepo.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)
	fx.listingRepo.EXPECT().SoftDelete(ctx, listing.ID).Return(nil)

	require.NoError(t, fx.service.DeleteMyListing(ctx, ownerID, listing.ID))
}

func TestListingService_DeleteMyListing_NotFound(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.listingRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrListingNotFound)

	err := fx.service.DeleteMyListing(ctx, uuid.New(), id)

	assert.True(t, errors.Is(err, domainerrors.ErrListingNotFound))
}

func TestListingService_ShareQRCode(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	listing := visibleListing(nil)

	fx.listingRepo.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)
	fx.qrCodeService.EXPECT().GenerateListingQR(listing.ID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.ShareQRCode(ctx, listing.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}

func TestListingService_ShareQRCode_RejectedListing(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	listing := visibleListing(nil)
	listing.Status = entity.ListingStatusRejected

	fx.listingRepo.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)

	_, err := fx.service.ShareQRCode(ctx, listing.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrListingNotFound))
}
