package handler

import (
	"log/slog"
	"net/http"

	"enginex/internal/delivery/api/middleware"
	"enginex/internal/delivery/api/response"
	deliverycontext "enginex/internal/delivery/context"
	"enginex/internal/domain/entity"
	domainerrors "enginex/internal/domain/errors"
	"enginex/internal/domain/repository"
	"enginex/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	ListingUC usecase.ListingUsecase
	Logger    *slog.Logger
}

// ListingHandler serves the public catalogue and the owner's listing operations.
type ListingHandler struct {
	listingUC usecase.ListingUsecase
	logger    *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler
func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	return &ListingHandler{
		listingUC: params.ListingUC,
		logger:    params.Logger,
	}
}

// PublishListingRequest is the publish form. Either equipment_type_id or custom_type_name is required.
type PublishListingRequest struct {
	CategoryID      uuid.UUID  `json:"category_id" validate:"required"`
	EquipmentTypeID *uuid.UUID `json:"equipment_type_id"`
	CustomTypeName  string     `json:"custom_type_name" validate:"required_without=EquipmentTypeID,max=80"`
	Title           string     `json:"title" validate:"required,max=120"`
	Description     string     `json:"description" validate:"required,max=5000"`
	Price           int64      `json:"price" validate:"gt=0"`
	Year            *int       `json:"year"`
	Region          string     `json:"region" validate:"required,region"`
	City            string     `json:"city" validate:"required,max=80"`
	Brand           string     `json:"brand" validate:"max=80"`
	Model           string     `json:"model" validate:"max=80"`
	Condition       string     `json:"condition" validate:"omitempty,condition"`
	Images          []string   `json:"images" validate:"max=6,dive,url"`
	Plan            string     `json:"plan" validate:"plan"`
	ContactPhone    string     `json:"contact_phone" validate:"required,phone_ma"`
	ContactEmail    string     `json:"contact_email" validate:"omitempty,email"`
}

func (r *PublishListingRequest) toInput() *usecase.PublishListingInput {
	return &usecase.PublishListingInput{
		CategoryID:      r.CategoryID,
		EquipmentTypeID: r.EquipmentTypeID,
		CustomTypeName:  r.CustomTypeName,
		Title:           r.Title,
		Description:     r.Description,
		Price:           r.Price,
		Year:            r.Year,
		Region:          entity.Region(r.Region),
		City:            r.City,
		Brand:           r.Brand,
		Model:           r.Model,
		Condition:       entity.Condition(r.Condition),
		Images:          r.Images,
		Plan:            entity.AccountType(r.Plan),
		ContactPhone:    r.ContactPhone,
		ContactEmail:    r.ContactEmail,
	}
}

// SetActiveRequest pauses or resumes a listing.
type SetActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// ListingDetailResponse is a listing with its seller's public profile.
type ListingDetailResponse struct {
	Listing *ListingResponse   `json:"listing"`
	Seller  *entity.SellerInfo `json:"seller,omitempty"`
}

// PublishListing creates a pending listing. Anonymous callers publish with contact details only.
func (h *ListingHandler) PublishListing(c echo.Context) error {
	var req PublishListingRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, bindError(err))
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	listing, err := h.listingUC.PublishListing(c.Request().Context(), deliverycontext.GetSession(c), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toListingResponse(listing))
}

// SearchListings returns visible listings matching the query filters, best ranked first.
func (h *ListingHandler) SearchListings(c echo.Context) error {
	filter, err := listingFilterFromQuery(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	limit, offset, err := pageParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.listingUC.SearchListings(c.Request().Context(), &usecase.SearchListingsInput{
		Filter: filter,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, toListingResponses(page.Listings), response.Pagination{
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}

func listingFilterFromQuery(c echo.Context) (repository.ListingFilter, error) {
	var (
		filter repository.ListingFilter
		err    error
	)

	if filter.CategoryID, err = queryUUID(c, "category_id"); err != nil {
		return filter, err
	}
	if filter.EquipmentTypeID, err = queryUUID(c, "equipment_type_id"); err != nil {
		return filter, err
	}
	if filter.MinPrice, err = queryInt64(c, "min_price"); err != nil {
		return filter, err
	}
	if filter.MaxPrice, err = queryInt64(c, "max_price"); err != nil {
		return filter, err
	}
	if filter.MinYear, err = queryInt(c, "min_year"); err != nil {
		return filter, err
	}
	if filter.MaxYear, err = queryInt(c, "max_year"); err != nil {
		return filter, err
	}

	var fields domainerrors.FieldErrors
	if region := entity.Region(c.QueryParam("region")); region != "" {
		if !region.IsValid() {
			fields.Add("region", "region", "must be one of the twelve regions")
		}
		filter.Region = region
	}
	if condition := entity.Condition(c.QueryParam("condition")); condition != "" {
		if !condition.IsValid() {
			fields.Add("condition", "condition", "must be new, good or used")
		}
		filter.Condition = condition
	}
	filter.Keyword = c.QueryParam("q")

	return filter, fields.Err()
}

// FeaturedListings returns the home page selection.
func (h *ListingHandler) FeaturedListings(c echo.Context) error {
	listings, err := h.listingUC.FeaturedListings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toListingResponses(listings))
}

// GetListing returns one listing and counts the visit.
func (h *ListingHandler) GetListing(c echo.Context) error {
	listingID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	detail, err := h.listingUC.GetListing(c.Request().Context(), deliverycontext.GetSession(c), listingID, c.RealIP())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &ListingDetailResponse{
		Listing: toListingResponse(detail.Listing),
		Seller:  detail.Seller,
	})
}

// MyListings returns every listing of the caller, whatever its status.
func (h *ListingHandler) MyListings(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	listings, err := h.listingUC.MyListings(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toListingResponses(listings))
}

// DeleteMyListing removes one of the caller's listings.
func (h *ListingHandler) DeleteMyListing(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}
	listingID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.listingUC.DeleteMyListing(c.Request().Context(), userID, listingID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SetMyListingActive pauses or resumes one of the caller's listings.
func (h *ListingHandler) SetMyListingActive(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}
	listingID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SetActiveRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, bindError(err))
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	listing, err := h.listingUC.SetMyListingActive(c.Request().Context(), userID, listingID, *req.IsActive)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toListingResponse(listing))
}

// ShareQRCode streams a PNG QR code of the listing URL.
func (h *ListingHandler) ShareQRCode(c echo.Context) error {
	listingID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.listingUC.ShareQRCode(c.Request().Context(), listingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}
