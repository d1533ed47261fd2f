package handler

import (
	"strconv"
	"time"

	"enginex/internal/domain/entity"
	domainerrors "enginex/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ListingResponse is the public JSON shape of a listing. Contact details are included because buyers call sellers directly.
type ListingResponse struct {
	ID              uuid.UUID            `json:"id"`
	UserID          *uuid.UUID           `json:"user_id,omitempty"`
	CategoryID      uuid.UUID            `json:"category_id"`
	EquipmentTypeID uuid.UUID            `json:"equipment_type_id"`
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	Price           int64                `json:"price"`
	Year            *int                 `json:"year,omitempty"`
	Region          entity.Region        `json:"region"`
	City            string               `json:"city"`
	Brand           string               `json:"brand,omitempty"`
	Model           string               `json:"model,omitempty"`
	Condition       entity.Condition     `json:"condition"`
	Images          []string             `json:"images"`
	Status          entity.ListingStatus `json:"status"`
	IsActive        bool                 `json:"is_active"`
	PriorityScore   int                  `json:"priority_score"`
	Badge           entity.Badge         `json:"badge"`
	Plan            entity.AccountType   `json:"plan"`
	ViewsCount      int64                `json:"views_count"`
	ExpiresAt       *time.Time           `json:"expires_at,omitempty"`
	ContactPhone    string               `json:"contact_phone"`
	ContactEmail    string               `json:"contact_email,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

func toListingResponse(l *entity.Listing) *ListingResponse {
	images := l.Images
	if images == nil {
		images = []string{}
	}

	return &ListingResponse{
		ID:              l.ID,
		UserID:          l.UserID,
		CategoryID:      l.CategoryID,
		EquipmentTypeID: l.EquipmentTypeID,
		Title:           l.Title,
		Description:     l.Description,
		Price:           l.Price,
		Year:            l.Year,
		Region:          l.Region,
		City:            l.City,
		Brand:           l.Brand,
		Model:           l.Model,
		Condition:       l.Condition,
		Images:          images,
		Status:          l.Status,
		IsActive:        l.IsActive,
		PriorityScore:   l.PriorityScore,
		Badge:           l.Badge,
		Plan:            l.Plan,
		ViewsCount:      l.ViewsCount,
		ExpiresAt:       l.ExpiresAt,
		ContactPhone:    l.ContactPhone,
		ContactEmail:    l.ContactEmail,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}

func toListingResponses(listings []*entity.Listing) []*ListingResponse {
	out := make([]*ListingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, toListingResponse(l))
	}

	return out
}

// ProfileResponse is the JSON shape of the caller's own profile.
type ProfileResponse struct {
	ID                    uuid.UUID               `json:"id"`
	FullName              string                  `json:"full_name"`
	Email                 string                  `json:"email"`
	Phone                 string                  `json:"phone,omitempty"`
	AccountType           entity.AccountType      `json:"account_type"`
	AccountTypeLabel      entity.AccountTypeLabel `json:"account_type_label"`
	SubscriptionExpiresAt *time.Time              `json:"subscription_expires_at,omitempty"`
	IsAdmin               bool                    `json:"is_admin"`
	ProfileImageURL       string                  `json:"profile_image_url,omitempty"`
	CreatedAt             time.Time               `json:"created_at"`
}

func toProfileResponse(p *entity.Profile) *ProfileResponse {
	if p == nil {
		return nil
	}

	return &ProfileResponse{
		ID:                    p.ID,
		FullName:              p.FullName,
		Email:                 p.Email,
		Phone:                 p.Phone,
		AccountType:           p.AccountType,
		AccountTypeLabel:      p.AccountTypeLabel,
		SubscriptionExpiresAt: p.SubscriptionExpiresAt,
		IsAdmin:               p.IsAdmin,
		ProfileImageURL:       p.ProfileImageURL,
		CreatedAt:             p.CreatedAt,
	}
}

// CategoryResponse is the JSON shape of a category.
type CategoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
	Icon string    `json:"icon,omitempty"`
}

// EquipmentTypeResponse is the JSON shape of an equipment type.
type EquipmentTypeResponse struct {
	ID         uuid.UUID `json:"id"`
	CategoryID uuid.UUID `json:"category_id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
}

// queryInt parses an optional integer query parameter.
func queryInt(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: name, Rule: "int", Message: "must be an integer"})
	}

	return &v, nil
}

// queryInt64 parses an optional 64-bit integer query parameter.
func queryInt64(c echo.Context, name string) (*int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: name, Rule: "int", Message: "must be an integer"})
	}

	return &v, nil
}

// queryUUID parses an optional UUID query parameter.
func queryUUID(c echo.Context, name string) (*uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: name, Rule: "uuid", Message: "must be a UUID"})
	}

	return &id, nil
}

// pageParams reads limit and offset. Missing values are zero and the use case applies its defaults.
func pageParams(c echo.Context) (limit, offset int, err error) {
	limitPtr, err := queryInt(c, "limit")
	if err != nil {
		return 0, 0, err
	}
	offsetPtr, err := queryInt(c, "offset")
	if err != nil {
		return 0, 0, err
	}
	if limitPtr != nil {
		limit = *limitPtr
	}
	if offsetPtr != nil {
		offset = *offsetPtr
	}

	return limit, offset, nil
}

// pathID parses a UUID path parameter.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: name, Rule: "uuid", Message: "must be a UUID"})
	}

	return id, nil
}

// bindError is returned when the body cannot be decoded.
func bindError(err error) error {
	return domainerrors.ErrValidationFailed.WrapMessage("malformed request body: " + err.Error())
}

// bindAndValidate decodes the body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return bindError(err)
	}

	return c.Validate(req)
}
