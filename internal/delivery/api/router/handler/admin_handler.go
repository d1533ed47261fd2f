package handler

import (
	"log/slog"
	"net/http"

	"enginex/internal/delivery/api/response"
	deliverycontext "enginex/internal/delivery/context"
	"enginex/internal/domain/entity"
	"enginex/internal/domain/repository"
	"enginex/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves the moderation back office.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// ModerateRequest sets the moderation outcome.
type ModerateRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// SetBadgeRequest sets the promotional badge.
type SetBadgeRequest struct {
	Badge string `json:"badge" validate:"required,badge"`
}

// AdminCreateListingRequest publishes on behalf of a user, or anonymously when owner_id is omitted.
type AdminCreateListingRequest struct {
	PublishListingRequest
	OwnerID *uuid.UUID `json:"owner_id"`
	Status  string     `json:"status" validate:"omitempty,oneof=pending approved rejected"`
	Badge   string     `json:"badge" validate:"omitempty,badge"`
}

// ListListings returns every listing, optionally narrowed by ?status and ?user_id.
func (h *AdminHandler) ListListings(c echo.Context) error {
	userID, err := queryUUID(c, "user_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	limit, offset, err := pageParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	filter := repository.AdminListingFilter{
		Status: entity.ListingStatus(c.QueryParam("status")),
		UserID: userID,
	}

	page, err := h.adminUC.ListListings(c.Request().Context(), deliverycontext.GetSession(c), filter, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, toListingResponses(page.Listings), response.Pagination{
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}

// ListProfiles returns registered accounts, newest first.
func (h *AdminHandler) ListProfiles(c echo.Context) error {
	limit, offset, err := pageParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.adminUC.ListProfiles(c.Request().Context(), deliverycontext.GetSession(c), limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profiles := make([]*ProfileResponse, 0, len(page.Profiles))
	for _, p := range page.Profiles {
		profiles = append(profiles, toProfileResponse(p))
	}

	return response.Paginated(c, profiles, response.Pagination{
		Total:  page.Total,
		Limit:  limit,
		Offset: offset,
	})
}

// ModerateListing approves or rejects a listing. Repeating the call overwrites the previous decision.
func (h *AdminHandler) ModerateListing(c echo.Context) error {
	listingID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ModerateRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, bindError(err))
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	listing, err := h.adminUC.ModerateListing(c.Request().Context(), deliverycontext.GetSession(c), listingID, entity.ListingStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toListingResponse(listing))
}

// SetBadge changes the badge and ranking of a listing.
func (h *AdminHandler) SetBadge(c echo.Context) error {
	listingID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SetBadgeRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, bindError(err))
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	listing, err := h.adminUC.SetBadge(c.Request().Context(), deliverycontext.GetSession(c), listingID, entity.Badge(req.Badge))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toListingResponse(listing))
}

// DeleteListing removes any listing.
func (h *AdminHandler) DeleteListing(c echo.Context) error {
	listingID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.adminUC.DeleteListing(c.Request().Context(), deliverycontext.GetSession(c), listingID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateListing publishes a listing without quota, with a chosen status and badge.
func (h *AdminHandler) CreateListing(c echo.Context) error {
	var req AdminCreateListingRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, bindError(err))
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	listing, err := h.adminUC.CreateListing(c.Request().Context(), deliverycontext.GetSession(c), &usecase.AdminCreateListingInput{
		PublishListingInput: *req.toInput(),
		OwnerID:             req.OwnerID,
		Status:              entity.ListingStatus(req.Status),
		Badge:               entity.Badge(req.Badge),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toListingResponse(listing))
}

// Stats returns the moderation dashboard counters.
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.adminUC.Stats(c.Request().Context(), deliverycontext.GetSession(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}
