package impl

import (
	"context"
	"log/slog"
	"time"

	"enginex/config"
	deliverycontext "enginex/internal/delivery/context"
	"enginex/internal/domain/entity"
	domainerrors "enginex/internal/domain/errors"
	"enginex/internal/domain/policy"
	"enginex/internal/domain/repository"
	"enginex/internal/domain/service"
	"enginex/internal/usecase"
	"enginex/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// listingService implements the ListingUsecase interface.
type listingService struct {
	txManager       repository.TransactionManager
	listingRepo     repository.ListingRepository
	profileRepo     repository.ProfileRepository
	viewTracker     service.ViewTracker
	qrCodeService   service.QRCodeService
	clock           service.Clock
	notifier        *notifier
	featuredLimit   int
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
}

// ListingServiceParams holds dependencies for ListingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	ListingRepo   repository.ListingRepository
	ProfileRepo   repository.ProfileRepository
	ViewTracker   service.ViewTracker
	QRCodeService service.QRCodeService
	Publisher     service.EventPublisher
	Clock         service.Clock
	Config        *config.Config
	Logger        *slog.Logger
}

// NewListingService is the constructor for listingService.
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	return &listingService{
		txManager:       params.TxManager,
		listingRepo:     params.ListingRepo,
		profileRepo:     params.ProfileRepo,
		viewTracker:     params.ViewTracker,
		qrCodeService:   params.QRCodeService,
		clock:           params.Clock,
		notifier:        newNotifier(params.Publisher, params.Logger),
		featuredLimit:   params.Config.Listing.FeaturedLimit,
		defaultPageSize: params.Config.Listing.DefaultPageSize,
		maxPageSize:     params.Config.Listing.MaxPageSize,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PublishListing runs the publish flow in one transaction: quota guard, equipment type resolution,
// pending insert with the plan expiry, then the account upgrade for paid plans.
func (srv *listingService) PublishListing(ctx context.Context, session *entity.Session, input *usecase.PublishListingInput) (*entity.Listing, error) {
	now := srv.clock.Now()

	input.Normalize()
	if err := input.Validate(now); err != nil {
		return nil, err
	}

	contactPhone := util.NormalizePhone(input.ContactPhone)
	if contactPhone == "" {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{
			Field: "contact_phone", Rule: "phone", Message: "contact phone must contain digits",
		})
	}
	contactEmail := util.NormalizeEmail(input.ContactEmail)
	ownerID := session.OwnerID()

	srv.log(ctx).Info("Publishing listing",
		slog.String("plan", input.Plan.String()),
		slog.Bool("anonymous", ownerID == nil),
	)

	var (
		listing      *entity.Listing
		activated    *entity.Notification
		expiresAt    = policy.ExpiresAt(input.Plan, now)
		listingOwner *entity.Profile
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listingRepo := repoFactory.ListingRepo()
		profileRepo := repoFactory.ProfileRepo()

		if ownerID != nil {
			owner, err := profileRepo.FindByID(ctx, *ownerID)
			if err != nil {
				if errors.Is(err, repository.ErrProfileNotFound) {
					return domainerrors.ErrUserNotFound.WrapMessage("publishing profile not found")
				}

				return errors.Wrap(err, "failed to load publishing profile")
			}
			listingOwner = owner
		}

		if policy.QuotaApplies(input.Plan) {
			if err := srv.checkQuota(ctx, listingRepo, contactPhone, contactEmail, now); err != nil {
				return err
			}
		}

		equipmentType, err := resolveEquipmentType(ctx, repoFactory.CatalogRepo(),
			input.CategoryID, input.EquipmentTypeID, input.CustomTypeName, now)
		if err != nil {
			return err
		}

		listing = newListing(input, equipmentType.ID, ownerID, contactPhone, contactEmail, now)
		listing.Status = policy.InitialStatus()
		listing.Badge = entity.BadgeNone
		listing.PriorityScore = policy.PriorityScore(input.Plan, entity.BadgeNone)
		listing.ExpiresAt = &expiresAt

		if err := listingRepo.Create(ctx, listing); err != nil {
			return errors.Wrap(err, "failed to create listing")
		}

		if listingOwner != nil && policy.ShouldUpgradeAccount(listingOwner.AccountType, input.Plan) {
			until := policy.SubscriptionExpiresAt(now)
			if err := profileRepo.UpdatePlan(ctx, listingOwner.ID, input.Plan, &until); err != nil {
				return errors.Wrap(err, "failed to upgrade account plan")
			}
			listingOwner.AccountType = input.Plan
			listingOwner.SubscriptionExpiresAt = &until

			activated = subscriptionActivatedNotification(listingOwner, until)
			if err := srv.notifier.record(ctx, repoFactory.NotificationRepo(), activated); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to publish listing", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute publish listing transaction")
	}

	srv.log(ctx).Info("Listing published",
		slog.Any("listing_id", listing.ID),
		slog.Time("expires_at", expiresAt),
	)

	if activated != nil {
		srv.notifier.push(ctx, activated)
	}
	srv.notifier.email(ctx, service.EmailTemplateNewListing, contactAddress(contactEmail, contactPhone), map[string]string{
		"listing_id": listing.ID.String(),
		"title":      listing.Title,
		"plan":       listing.Plan.String(),
		"expires_at": expiresAt.Format(time.RFC3339),
	})

	return listing, nil
}

// checkQuota counts free listings of the contact identity under a lock held until commit,
// so two concurrent submissions cannot both pass the check.
func (srv *listingService) checkQuota(ctx context.Context, listingRepo repository.ListingRepository, phone, email string, now time.Time) error {
	if err := listingRepo.AcquireQuotaLock(ctx, phone, email); err != nil {
		return errors.Wrap(err, "failed to lock quota")
	}

	count, err := listingRepo.CountRecentByContact(ctx, phone, email, policy.QuotaWindowStart(now))
	if err != nil {
		return errors.Wrap(err, "failed to count recent listings")
	}

	if policy.QuotaExceeded(count) {
		srv.log(ctx).Info("Free listing quota exceeded", slog.Int64("count", count))

		return domainerrors.ErrQuotaExceeded.WrapMessage("free listing quota exceeded")
	}

	return nil
}

func newListing(input *usecase.PublishListingInput, equipmentTypeID uuid.UUID, ownerID *uuid.UUID, phone, email string, now time.Time) *entity.Listing {
	images := append([]string{}, input.Images...)

	return &entity.Listing{
		UserID:          ownerID,
		CategoryID:      input.CategoryID,
		EquipmentTypeID: equipmentTypeID,
		Title:           input.Title,
		Description:     input.Description,
		Price:           input.Price,
		Year:            input.Year,
		Region:          input.Region,
		City:            input.City,
		Brand:           input.Brand,
		Model:           input.Model,
		Condition:       input.Condition,
		Images:          images,
		IsActive:        true,
		Plan:            input.Plan,
		ContactPhone:    phone,
		ContactEmail:    email,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// SearchListings returns visible listings in ranking order.
func (srv *listingService) SearchListings(ctx context.Context, input *usecase.SearchListingsInput) (*usecase.ListingPage, error) {
	page := pageBounds(input.Limit, input.Offset, srv.defaultPageSize, srv.maxPageSize)

	listings, total, err := srv.listingRepo.SearchVisible(ctx, input.Filter, srv.clock.Now(), page)
	if err != nil {
		srv.log(ctx).Error("Failed to search listings", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to search listings")
	}

	return &usecase.ListingPage{
		Listings: listings,
		Total:    total,
		Limit:    page.Limit,
		Offset:   page.Offset,
	}, nil
}

// FeaturedListings returns the head of the public ranking for the home page.
func (srv *listingService) FeaturedListings(ctx context.Context) ([]*entity.Listing, error) {
	listings, _, err := srv.listingRepo.SearchVisible(ctx, repository.ListingFilter{}, srv.clock.Now(),
		repository.Page{Limit: srv.featuredLimit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load featured listings")
	}

	return listings, nil
}

// GetListing returns the listing detail and counts the view once per viewer tag.
func (srv *listingService) GetListing(ctx context.Context, session *entity.Session, listingID uuid.UUID, viewerTag string) (*usecase.ListingDetail, error) {
	listing, err := srv.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		return nil, listingNotFound(err)
	}

	now := srv.clock.Now()
	isOwner := session.IsAuthenticated() && listing.IsOwnedBy(session.UserID)
	visible := policy.IsPubliclyVisible(listing, now)
	if !visible && !isOwner && !session.IsAdmin() {
		return nil, domainerrors.ErrListingNotFound.WrapMessage("listing is not public")
	}

	if visible && !isOwner {
		srv.recordView(ctx, listing, viewerTag, now)
	}

	detail := &usecase.ListingDetail{Listing: listing}
	if listing.UserID != nil {
		seller, err := srv.profileRepo.FindByID(ctx, *listing.UserID)
		switch {
		case err == nil:
			detail.Seller = seller.PublicInfo()
		case errors.Is(err, repository.ErrProfileNotFound):
		default:
			return nil, errors.Wrap(err, "failed to load seller profile")
		}
	}

	return detail, nil
}

// recordView is best effort: a failed counter update never hides the listing.
func (srv *listingService) recordView(ctx context.Context, listing *entity.Listing, viewerTag string, now time.Time) {
	first, err := srv.viewTracker.FirstView(ctx, listing.ID, viewerTag)
	if err != nil {
		srv.log(ctx).Warn("View de-duplication unavailable", slog.Any("error", err))
		first = true
	}
	if !first {
		return
	}

	view := &entity.ListingView{
		ListingID: listing.ID,
		IPAddress: viewerTag,
		ViewedAt:  now,
	}
	if err := srv.listingRepo.RecordView(ctx, view); err != nil {
		srv.log(ctx).Warn("Failed to record listing view", slog.Any("listing_id", listing.ID), slog.Any("error", err))

		return
	}
	listing.ViewsCount++
}

func (srv *listingService) MyListings(ctx context.Context, userID uuid.UUID) ([]*entity.Listing, error) {
	listings, err := srv.listingRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own listings")
	}

	return listings, nil
}

func (srv *listingService) DeleteMyListing(ctx context.Context, userID, listingID uuid.UUID) error {
	if _, err := srv.ownedListing(ctx, userID, listingID); err != nil {
		return err
	}

	if err := srv.listingRepo.SoftDelete(ctx, listingID); err != nil {
		return listingNotFound(err)
	}
	srv.log(ctx).Info("Listing deleted by owner", slog.Any("listing_id", listingID))

	return nil
}

// SetMyListingActive pauses or resumes a listing. An expired listing cannot be resumed.
func (srv *listingService) SetMyListingActive(ctx context.Context, userID, listingID uuid.UUID, active bool) (*entity.Listing, error) {
	listing, err := srv.ownedListing(ctx, userID, listingID)
	if err != nil {
		return nil, err
	}

	now := srv.clock.Now()
	if active && listing.IsExpired(now) {
		return nil, domainerrors.ErrListingExpired.WrapMessage("expired listings cannot be reactivated")
	}

	if err := srv.listingRepo.SetActive(ctx, listingID, active, now); err != nil {
		return nil, listingNotFound(err)
	}
	listing.IsActive = active
	listing.UpdatedAt = now

	return listing, nil
}

func (srv *listingService) ownedListing(ctx context.Context, userID, listingID uuid.UUID) (*entity.Listing, error) {
	listing, err := srv.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		return nil, listingNotFound(err)
	}
	if !listing.IsOwnedBy(userID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("listing belongs to another user")
	}

	return listing, nil
}

// ShareQRCode renders the QR code of a public listing.
func (srv *listingService) ShareQRCode(ctx context.Context, listingID uuid.UUID) ([]byte, error) {
	listing, err := srv.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		return nil, listingNotFound(err)
	}
	if !policy.IsPubliclyVisible(listing, srv.clock.Now()) {
		return nil, domainerrors.ErrListingNotFound.WrapMessage("listing is not public")
	}

	png, err := srv.qrCodeService.GenerateListingQR(listing.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate listing QR code")
	}
	srv.log(ctx).Debug("Generated listing QR code", slog.Any("listing_id", listing.ID), slog.Int("bytes", len(png)))

	return png, nil
}
