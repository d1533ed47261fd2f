package usecase

import (
	"context"
	"strings"
	"time"

	"enginex/internal/domain/entity"
	domainerrors "enginex/internal/domain/errors"
	"enginex/internal/domain/policy"
	"enginex/internal/domain/repository"

	"github.com/google/uuid"
)

// PublishListingInput is the typed publish form.
// Either EquipmentTypeID or CustomTypeName identifies the equipment type.
type PublishListingInput struct {
	CategoryID      uuid.UUID
	EquipmentTypeID *uuid.UUID
	CustomTypeName  string
	Title           string
	Description     string
	Price           int64
	Year            *int
	Region          entity.Region
	City            string
	Brand           string
	Model           string
	Condition       entity.Condition
	Images          []string
	Plan            entity.AccountType
	ContactPhone    string
	ContactEmail    string
}

// Normalize trims free text and applies defaults. It is called before Validate.
func (in *PublishListingInput) Normalize() {
	in.CustomTypeName = strings.TrimSpace(in.CustomTypeName)
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.City = strings.TrimSpace(in.City)
	in.Brand = strings.TrimSpace(in.Brand)
	in.Model = strings.TrimSpace(in.Model)
	in.ContactPhone = strings.TrimSpace(in.ContactPhone)
	in.ContactEmail = strings.TrimSpace(in.ContactEmail)
	in.Plan = entity.ParseAccountType(string(in.Plan))
	if in.Condition == "" {
		in.Condition = entity.ConditionUsed
	}
}

// Validate returns a *domainerrors.ValidationError listing every invalid field, or nil.
func (in *PublishListingInput) Validate(now time.Time) error {
	var fields domainerrors.FieldErrors

	if in.CategoryID == uuid.Nil {
		fields.Add("category_id", "required", "category is required")
	}
	if in.EquipmentTypeID == nil && in.CustomTypeName == "" {
		fields.Add("equipment_type_id", "required", "equipment type or custom type name is required")
	}
	if in.Title == "" {
		fields.Add("title", "required", "title is required")
	}
	if in.Description == "" {
		fields.Add("description", "required", "description is required")
	}
	if in.Price <= 0 {
		fields.Add("price", "gt", "price must be a positive amount in MAD")
	}
	if in.Year != nil && !policy.IsValidYear(*in.Year, now) {
		fields.Add("year", "range", "year is out of range")
	}
	if !in.Region.IsValid() {
		fields.Add("region", "region", "region must be one of the twelve regions")
	}
	if in.City == "" {
		fields.Add("city", "required", "city is required")
	}
	if !in.Condition.IsValid() {
		fields.Add("condition", "condition", "condition must be new, good or used")
	}
	if len(in.Images) > policy.MaxImages {
		fields.Add("images", "max", "at most 6 images are allowed")
	}
	if !in.Plan.IsValid() {
		fields.Add("plan", "plan", "plan must be individual, pro or premium")
	}
	if in.ContactPhone == "" {
		fields.Add("contact_phone", "required", "contact phone is required")
	}

	return fields.Err()
}

// SearchListingsInput carries the public search filters and page.
type SearchListingsInput struct {
	Filter repository.ListingFilter
	Limit  int
	Offset int
}

// ListingPage is one page of a listing collection.
type ListingPage struct {
	Listings []*entity.Listing
	Total    int64
	Limit    int
	Offset   int
}

// ListingDetail is a listing with its seller's public profile, nil for anonymous listings.
type ListingDetail struct {
	Listing *entity.Listing
	Seller  *entity.SellerInfo
}

// ListingUsecase defines the public and owner-facing listing operations.
type ListingUsecase interface {
	// PublishListing creates a pending listing. A nil session publishes anonymously.
	PublishListing(ctx context.Context, session *entity.Session, input *PublishListingInput) (*entity.Listing, error)

	SearchListings(ctx context.Context, input *SearchListingsInput) (*ListingPage, error)
	FeaturedListings(ctx context.Context) ([]*entity.Listing, error)

	// GetListing returns a visible listing and records a view. Owners and admins also see hidden listings.
	GetListing(ctx context.Context, session *entity.Session, listingID uuid.UUID, viewerTag string) (*ListingDetail, error)

	MyListings(ctx context.Context, userID uuid.UUID) ([]*entity.Listing, error)
	DeleteMyListing(ctx context.Context, userID, listingID uuid.UUID) error
	SetMyListingActive(ctx context.Context, userID, listingID uuid.UUID, active bool) (*entity.Listing, error)

	// ShareQRCode renders a PNG QR code of the public listing URL.
	ShareQRCode(ctx context.Context, listingID uuid.UUID) ([]byte, error)
}
