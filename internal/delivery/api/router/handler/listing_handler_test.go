package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

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

func createTestListingHandler(t *testing.T) (*ListingHandler, *mockUc.MockListingUsecase) {
	uc := mockUc.NewMockListingUsecase(t)

	return NewListingHandler(ListingHandlerParams{ListingUC: uc, Logger: newDiscardLogger()}), uc
}

func sampleListing() *entity.Listing {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	expires := now.AddDate(0, 0, 15)

	return &entity.Listing{
		ID:           uuid.New(),
		CategoryID:   uuid.New(),
		Title:        "Tracteur John Deere 6120M",
		Description:  "Bon état, 4200 heures",
		Price:        450000,
		Region:       entity.RegionCasablancaSettat,
		City:         "Berrechid",
		Condition:    entity.ConditionGood,
		Status:       entity.ListingStatusPending,
		IsActive:     true,
		Plan:         entity.AccountTypeIndividual,
		ExpiresAt:    &expires,
		ContactPhone: "0612345678",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

const publishBody = `{
	"category_id": "0b1c5a52-6a4e-4c9b-8f0d-2f7f3c1d9e01",
	"custom_type_name": "Broyeur de pierres",
	"title": "Tracteur John Deere 6120M",
	"description": "Bon état, 4200 heures",
	"price": 450000,
	"region": "Casablanca-Settat",
	"city": "Berrechid",
	"condition": "good",
	"contact_phone": "06 12 34 56 78"
}`

func TestListingHandler_PublishListing(t *testing.T) {
	h, uc := createTestListingHandler(t)
	c, rec := newTestContext(http.MethodPost, "/api/v1/listings", publishBody)
	session := &entity.Session{UserID: uuid.New(), Roles: entity.Roles{entity.RoleUser}}
	deliverycontext.SetSession(c, session)
	listing := sampleListing()

	uc.EXPECT().
		PublishListing(mock.Anything, session, mock.MatchedBy(func(in *usecase.PublishListingInput) bool {
			return in.CustomTypeName == "Broyeur de pierres" &&
				in.EquipmentTypeID == nil &&
				in.Region == entity.RegionCasablancaSettat &&
				in.Price == 450000
		})).
		Return(listing, nil)

	require.NoError(t, h.PublishListing(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var got ListingResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Equal(t, listing.ID, got.ID)
	assert.Equal(t, entity.ListingStatusPending, got.Status)
	assert.Equal(t, []string{}, got.Images)
}

func TestListingHandler_PublishListing_Anonymous(t *testing.T) {
	h, uc := createTestListingHandler(t)
	c, rec := newTestContext(http.MethodPost, "/api/v1/listings", publishBody)

	uc.EXPECT().PublishListing(mock.Anything, (*entity.Session)(nil), mock.Anything).Return(sampleListing(), nil)

	require.NoError(t, h.PublishListing(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestListingHandler_PublishListing_InvalidForm(t *testing.T) {
	h, uc := createTestListingHandler(t)
	c, rec := newTestContext(http.MethodPost, "/api/v1/listings", `{"title":"x","price":0,"region":"Paris","contact_phone":"12"}`)

	require.NoError(t, h.PublishListing(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	var fields []domainerrors.FieldError
	require.NoError(t, json.Unmarshal(env.Error.Details, &fields))
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Field)
	}
	assert.Subset(t, names, []string{"category_id", "price", "region", "contact_phone"})
	uc.AssertNotCalled(t, "PublishListing", mock.Anything, mock.Anything, mock.Anything)
}

func TestListingHandler_PublishListing_QuotaExceeded(t *testing.T) {
	h, uc := createTestListingHandler(t)
	c, rec := newTestContext(http.MethodPost, "/api/v1/listings", publishBody)

	uc.EXPECT().PublishListing(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrQuotaExceeded.WrapMessage("2 free listings in 30 days"))

	require.NoError(t, h.PublishListing(c))

	assert.Equal(t, domainerrors.ErrQuotaExceeded.HTTPCode(), rec.Code)
	assert.Equal(t, "QUOTA_EXCEEDED", decodeEnvelope(t, rec).Error.Code)
}

func TestListingHandler_SearchListings(t *testing.T) {
	h, uc := createTestListingHandler(t)
	categoryID := uuid.New()
	c, rec := newTestContext(http.MethodGet,
		"/api/v1/listings?category_id="+categoryID.String()+"&min_price=100000&region=Souss-Massa&q=tracteur&limit=10&offset=20", "")

	uc.EXPECT().
		SearchListings(mock.Anything, mock.MatchedBy(func(in *usecase.SearchListingsInput) bool {
			return in.Filter.CategoryID != nil && *in.Filter.CategoryID == categoryID &&
				in.Filter.MinPrice != nil && *in.Filter.MinPrice == 100000 &&
				in.Filter.Region == entity.Region("Souss-Massa") &&
				in.Filter.Keyword == "tracteur" &&
				in.Limit == 10 && in.Offset == 20
		})).
		Return(&usecase.ListingPage{Listings: []*entity.Listing{sampleListing()}, Total: 21, Limit: 10, Offset: 20}, nil)

	require.NoError(t, h.SearchListings(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Meta.Pagination)
	assert.Equal(t, int64(21), env.Meta.Pagination.Total)
	assert.Equal(t, 20, env.Meta.Pagination.Offset)
}

func TestListingHandler_SearchListings_BadQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"non numeric price", "?min_price=cheap"},
		{"unknown region", "?region=Paris"},
		{"unknown condition", "?condition=broken"},
		{"bad category id", "?category_id=42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := createTestListingHandler(t)
			c, rec := newTestContext(http.MethodGet, "/api/v1/listings"+tt.query, "")

			require.NoError(t, h.SearchListings(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			uc.AssertNotCalled(t, "SearchListings", mock.Anything, mock.Anything)
		})
	}
}

func TestListingHandler_GetListing(t *testing.T) {
	h, uc := createTestListingHandler(t)
	listing := sampleListing()
	c, rec := newTestContext(http.MethodGet, "/api/v1/listings/"+listing.ID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(listing.ID.String())
	c.Request().Header.Set("X-Real-Ip", "105.66.1.20")

	seller := &entity.SellerInfo{FullName: "Karim Agri"}
	uc.EXPECT().GetListing(mock.Anything, (*entity.Session)(nil), listing.ID, "105.66.1.20").
		Return(&usecase.ListingDetail{Listing: listing, Seller: seller}, nil)

	require.NoError(t, h.GetListing(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Karim Agri")
}

func TestListingHandler_GetListing_NotFound(t *testing.T) {
	h, uc := createTestListingHandler(t)
	id := uuid.New()
	c, rec := newTestContext(http.MethodGet, "/api/v1/listings/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	uc.EXPECT().GetListing(mock.Anything, mock.Anything, id, mock.Anything).Return(nil, domainerrors.ErrListingNotFound)

	require.NoError(t, h.GetListing(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListingHandler_OwnerRoutesRequireSession(t *testing.T) {
	h, _ := createTestListingHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/v1/me/listings", "")

	require.NoError(t, h.MyListings(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, decodeEnvelope(t, rec).Error.Details)
}

func TestListingHandler_SetMyListingActive(t *testing.T) {
	h, uc := createTestListingHandler(t)
	userID := uuid.New()
	listing := sampleListing()
	listing.IsActive = false

	c, rec := newTestContext(http.MethodPatch, "/api/v1/me/listings/"+listing.ID.String()+"/active", `{"is_active":false}`)
	c.SetParamNames("id")
	c.SetParamValues(listing.ID.String())
	deliverycontext.SetSession(c, &entity.Session{UserID: userID, Roles: entity.Roles{entity.RoleUser}})

	uc.EXPECT().SetMyListingActive(mock.Anything, userID, listing.ID, false).Return(listing, nil)

	require.NoError(t, h.SetMyListingActive(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"is_active":false`)
}

func TestListingHandler_SetMyListingActive_MissingFlag(t *testing.T) {
	h, _ := createTestListingHandler(t)
	id := uuid.New()
	c, rec := newTestContext(http.MethodPatch, "/api/v1/me/listings/"+id.String()+"/active", `{}`)
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	deliverycontext.SetSession(c, &entity.Session{UserID: uuid.New()})

	require.NoError(t, h.SetMyListingActive(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListingHandler_DeleteMyListing(t *testing.T) {
	h, uc := createTestListingHandler(t)
	userID, listingID := uuid.New(), uuid.New()
	c, rec := newTestContext(http.MethodDelete, "/api/v1/me/listings/"+listingID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(listingID.String())
	deliverycontext.SetSession(c, &entity.Session{UserID: userID})

	uc.EXPECT().DeleteMyListing(mock.Anything, userID, listingID).Return(nil)

	require.NoError(t, h.DeleteMyListing(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestListingHandler_ShareQRCode(t *testing.T) {
	h, uc := createTestListingHandler(t)
	id := uuid.New()
	c, rec := newTestContext(http.MethodGet, "/api/v1/listings/"+id.String()+"/qr", "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	png := []byte{0x89, 'P', 'N', 'G'}
	uc.EXPECT().ShareQRCode(mock.Anything, id).Return(png, nil)

	require.NoError(t, h.ShareQRCode(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}
