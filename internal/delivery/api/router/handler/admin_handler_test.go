package handler

import (
	"net/http"
	"strings"
	"testing"

	deliverycontext "enginex/internal/delivery/context"
	"enginex/internal/domain/entity"
	domainerrors "enginex/internal/domain/errors"
	"enginex/internal/domain/repository"
	mockUc "enginex/internal/mocks/usecase"
	"enginex/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var adminSession = &entity.Session{UserID: uuid.New(), Roles: entity.Roles{entity.RoleUser, entity.RoleAdmin}}

func createTestAdminHandler(t *testing.T) (*AdminHandler, *mockUc.MockAdminUsecase) {
	uc := mockUc.NewMockAdminUsecase(t)

	return NewAdminHandler(AdminHandlerParams{AdminUC: uc, Logger: newDiscardLogger()}), uc
}

func withListingID(c echo.Context, id uuid.UUID) {
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	deliverycontext.SetSession(c, adminSession)
}

func TestAdminHandler_ModerateListing(t *testing.T) {
	for _, status := range []entity.ListingStatus{entity.ListingStatusApproved, entity.ListingStatusRejected} {
		t.Run(string(status), func(t *testing.T) {
			h, uc := createTestAdminHandler(t)
			listing := sampleListing()
			listing.Status = status
			c, rec := newTestContext(http.MethodPatch, "/api/v1/admin/listings/"+listing.ID.String()+"/status", `{"status":"`+string(status)+`"}`)
			withListingID(c, listing.ID)

			uc.EXPECT().ModerateListing(mock.Anything, adminSession, listing.ID, status).Return(listing, nil)

			require.NoError(t, h.ModerateListing(c))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `"status":"`+string(status)+`"`)
		})
	}
}

func TestAdminHandler_ModerateListing_PendingIsNotAnOutcome(t *testing.T) {
	h, _ := createTestAdminHandler(t)
	id := uuid.New()
	c, rec := newTestContext(http.MethodPatch, "/api/v1/admin/listings/"+id.String()+"/status", `{"status":"pending"}`)
	withListingID(c, id)

	require.NoError(t, h.ModerateListing(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminHandler_SetBadge(t *testing.T) {
	h, uc := createTestAdminHandler(t)
	listing := sampleListing()
	listing.Badge = entity.BadgeUrgent
	c, rec := newTestContext(http.MethodPatch, "/api/v1/admin/listings/"+listing.ID.String()+"/badge", `{"badge":"urgent"}`)
	withListingID(c, listing.ID)

	uc.EXPECT().SetBadge(mock.Anything, adminSession, listing.ID, entity.BadgeUrgent).Return(listing, nil)

	require.NoError(t, h.SetBadge(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminHandler_ListListings(t *testing.T) {
	h, uc := createTestAdminHandler(t)
	ownerID := uuid.New()
	c, rec := newTestContext(http.MethodGet, "/api/v1/admin/listings?status=pending&user_id="+ownerID.String()+"&limit=5", "")
	deliverycontext.SetSession(c, adminSession)

	uc.EXPECT().
		ListListings(mock.Anything, adminSession, repository.AdminListingFilter{Status: entity.ListingStatusPending, UserID: &ownerID}, 5, 0).
		Return(&usecase.ListingPage{Listings: []*entity.Listing{sampleListing()}, Total: 1, Limit: 5}, nil)

	require.NoError(t, h.ListListings(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Meta.Pagination)
	assert.Equal(t, int64(1), env.Meta.Pagination.Total)
}

func TestAdminHandler_CreateListing(t *testing.T) {
	h, uc := createTestAdminHandler(t)
	ownerID := uuid.New()
	body := strings.TrimSuffix(strings.TrimSpace(publishBody), "}") +
		`, "owner_id": "` + ownerID.String() + `", "status": "approved", "badge": "exclusive"}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/admin/listings", body)
	deliverycontext.SetSession(c, adminSession)

	uc.EXPECT().
		CreateListing(mock.Anything, adminSession, mock.MatchedBy(func(in *usecase.AdminCreateListingInput) bool {
			return in.OwnerID != nil && *in.OwnerID == ownerID &&
				in.Status == entity.ListingStatusApproved &&
				in.Badge == entity.BadgeExclusive &&
				in.Title == "Tracteur John Deere 6120M"
		})).
		Return(sampleListing(), nil)

	require.NoError(t, h.CreateListing(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAdminHandler_Stats_Forbidden(t *testing.T) {
	h, uc := createTestAdminHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/v1/admin/stats", "")
	user := &entity.Session{UserID: uuid.New(), Roles: entity.Roles{entity.RoleUser}}
	deliverycontext.SetSession(c, user)

	uc.EXPECT().Stats(mock.Anything, user).Return(nil, domainerrors.ErrForbidden.WrapMessage("admin role required"))

	require.NoError(t, h.Stats(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminHandler_DeleteListing(t *testing.T) {
	h, uc := createTestAdminHandler(t)
	id := uuid.New()
	c, rec := newTestContext(http.MethodDelete, "/api/v1/admin/listings/"+id.String(), "")
	withListingID(c, id)

	uc.EXPECT().DeleteListing(mock.Anything, adminSession, id).Return(nil)

	require.NoError(t, h.DeleteListing(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
