package handler

import (
	"log/slog"
	"net/http"

	"enginex/internal/delivery/api/middleware"
	"enginex/internal/delivery/api/response"
	"enginex/internal/domain/entity"
	domainerrors "enginex/internal/domain/errors"
	"enginex/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the caller's own account.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// UpdateProfileRequest holds the editable fields. Omitted fields are left unchanged.
type UpdateProfileRequest struct {
	FullName         *string `json:"full_name" validate:"omitempty,min=1,max=120"`
	Phone            *string `json:"phone" validate:"omitempty,phone_ma"`
	AccountTypeLabel *string `json:"account_type_label" validate:"omitempty,oneof=Particulier Professionnel"`
	ProfileImageURL  *string `json:"profile_image_url" validate:"omitempty,url"`
}

// SubscribeRequest selects a paid plan.
type SubscribeRequest struct {
	Plan string `json:"plan" validate:"required,oneof=pro premium"`
}

// GetProfile returns the caller's profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile))
}

// UpdateProfile edits the caller's profile.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, bindError(err))
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.UpdateProfileInput{
		FullName:        req.FullName,
		Phone:           req.Phone,
		ProfileImageURL: req.ProfileImageURL,
	}
	if req.AccountTypeLabel != nil {
		label := entity.AccountTypeLabel(*req.AccountTypeLabel)
		input.AccountTypeLabel = &label
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile))
}

// Subscribe activates a paid plan for one subscription window.
func (h *ProfileHandler) Subscribe(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, bindError(err))
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.profileUC.ActivateSubscription(c.Request().Context(), userID, entity.AccountType(req.Plan))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile))
}

// Dashboard returns the caller's listing and inbox counters.
func (h *ProfileHandler) Dashboard(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	stats, err := h.profileUC.Dashboard(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}
