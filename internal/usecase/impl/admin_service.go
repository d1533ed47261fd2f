package impl

import (
	"context"
	"log/slog"

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

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager       repository.TransactionManager
	listingRepo     repository.ListingRepository
	profileRepo     repository.ProfileRepository
	clock           service.Clock
	notifier        *notifier
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ListingRepo repository.ListingRepository
	ProfileRepo repository.ProfileRepository
	Publisher   service.EventPublisher
	Clock       service.Clock
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:       params.TxManager,
		listingRepo:     params.ListingRepo,
		profileRepo:     params.ProfileRepo,
		clock:           params.Clock,
		notifier:        newNotifier(params.Publisher, params.Logger),
		defaultPageSize: params.Config.Listing.DefaultPageSize,
		maxPageSize:     params.Config.Listing.MaxPageSize,
		logger:          params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func requireAdmin(session *entity.Session) error {
	if !session.IsAuthenticated() {
		return domainerrors.ErrUnauthenticated.WrapMessage("admin session required")
	}
	if !session.IsAdmin() {
		return domainerrors.ErrForbidden.WrapMessage("admin role required")
	}

	return nil
}

func (srv *adminService) ListListings(ctx context.Context, session *entity.Session, filter repository.AdminListingFilter, limit, offset int) (*usecase.ListingPage, error) {
	if err := requireAdmin(session); err != nil {
		return nil, err
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown status filter")
	}

	page := pageBounds(limit, offset, srv.defaultPageSize, srv.maxPageSize)
	listings, total, err := srv.listingRepo.ListAll(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list listings for moderation")
	}

	return &usecase.ListingPage{Listings: listings, Total: total, Limit: page.Limit, Offset: page.Offset}, nil
}

func (srv *adminService) ListProfiles(ctx context.Context, session *entity.Session, limit, offset int) (*usecase.ProfilePage, error) {
	if err := requireAdmin(session); err != nil {
		return nil, err
	}

	page := pageBounds(limit, offset, srv.defaultPageSize, srv.maxPageSize)
	profiles, total, err := srv.profileRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	return &usecase.ProfilePage{Profiles: profiles, Total: total}, nil
}

// ModerateListing overwrites the status whatever it was before and notifies the owner.
func (srv *adminService) ModerateListing(ctx context.Context, session *entity.Session, listingID uuid.UUID, status entity.ListingStatus) (*entity.Listing, error) {
	if err := requireAdmin(session); err != nil {
		return nil, err
	}
	if !policy.CanModerateTo(status) {
		return nil, domainerrors.ErrInvalidTransition.WrapMessage("status must be approved or rejected")
	}

	var (
		listing      *entity.Listing
		notification *entity.Notification
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listingRepo := repoFactory.ListingRepo()

		found, err := listingRepo.FindByID(ctx, listingID)
		if err != nil {
			return listingNotFound(err)
		}

		previous := found.Status
		policy.Moderate(found, status, srv.clock.Now())
		if err := listingRepo.UpdateStatus(ctx, found.ID, found.Status, found.UpdatedAt); err != nil {
			return errors.Wrap(err, "failed to update listing status")
		}
		srv.log(ctx).Info("Listing moderated",
			slog.Any("listing_id", found.ID),
			slog.String("from", previous.String()),
			slog.String("to", found.Status.String()),
			slog.Any("moderator_id", session.UserID),
		)

		if found.UserID != nil {
			notification = moderationNotification(found)
			if err := srv.notifier.record(ctx, repoFactory.NotificationRepo(), notification); err != nil {
				return err
			}
		}
		listing = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute moderation transaction")
	}

	if notification != nil {
		srv.notifier.push(ctx, notification)
	}

	return listing, nil
}

// SetBadge stores the badge and the priority score recomputed from the listing plan.
func (srv *adminService) SetBadge(ctx context.Context, session *entity.Session, listingID uuid.UUID, badge entity.Badge) (*entity.Listing, error) {
	if err := requireAdmin(session); err != nil {
		return nil, err
	}
	if !badge.IsValid() {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{
			Field: "badge", Rule: "badge", Message: "badge must be none, urgent, top or exclusive",
		})
	}

	var listing *entity.Listing
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listingRepo := repoFactory.ListingRepo()

		found, err := listingRepo.FindByID(ctx, listingID)
		if err != nil {
			return listingNotFound(err)
		}

		now := srv.clock.Now()
		score := policy.PriorityScore(found.Plan, badge)
		if err := listingRepo.UpdateBadge(ctx, found.ID, badge, score, now); err != nil {
			return errors.Wrap(err, "failed to update listing badge")
		}
		found.Badge = badge
		found.PriorityScore = score
		found.UpdatedAt = now
		listing = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute badge transaction")
	}

	return listing, nil
}

func (srv *adminService) DeleteListing(ctx context.Context, session *entity.Session, listingID uuid.UUID) error {
	if err := requireAdmin(session); err != nil {
		return err
	}

	if err := srv.listingRepo.SoftDelete(ctx, listingID); err != nil {
		return listingNotFound(err)
	}
	srv.log(ctx).Info("Listing deleted by admin", slog.Any("listing_id", listingID), slog.Any("moderator_id", session.UserID))

	return nil
}

// CreateListing files a listing for a user or anonymously. No quota applies and the account plan is untouched.
func (srv *adminService) CreateListing(ctx context.Context, session *entity.Session, input *usecase.AdminCreateListingInput) (*entity.Listing, error) {
	if err := requireAdmin(session); err != nil {
		return nil, err
	}

	now := srv.clock.Now()
	input.Normalize()
	if input.Status == "" {
		input.Status = policy.InitialStatus()
	}
	if input.Badge == "" {
		input.Badge = entity.BadgeNone
	}

	fields := domainerrors.FieldErrors{}
	if err := input.Validate(now); err != nil {
		var validationErr *domainerrors.ValidationError
		if !errors.As(err, &validationErr) {
			return nil, err
		}
		fields = append(fields, validationErr.Fields()...)
	}
	if !input.Status.IsValid() {
		fields.Add("status", "status", "status must be pending, approved or rejected")
	}
	if !input.Badge.IsValid() {
		fields.Add("badge", "badge", "badge must be none, urgent, top or exclusive")
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}

	contactPhone := util.NormalizePhone(input.ContactPhone)
	contactEmail := util.NormalizeEmail(input.ContactEmail)
	expiresAt := now.Add(policy.AdminListingLifetime)

	var listing *entity.Listing
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if input.OwnerID != nil {
			if _, err := repoFactory.ProfileRepo().FindByID(ctx, *input.OwnerID); err != nil {
				if errors.Is(err, repository.ErrProfileNotFound) {
					return domainerrors.ErrUserNotFound.WrapMessage("listing owner not found")
				}

				return errors.Wrap(err, "failed to load listing owner")
			}
		}

		equipmentType, err := resolveEquipmentType(ctx, repoFactory.CatalogRepo(),
			input.CategoryID, input.EquipmentTypeID, input.CustomTypeName, now)
		if err != nil {
			return err
		}

		listing = newListing(&input.PublishListingInput, equipmentType.ID, input.OwnerID, contactPhone, contactEmail, now)
		listing.Status = input.Status
		listing.Badge = input.Badge
		listing.PriorityScore = policy.PriorityScore(input.Plan, input.Badge)
		listing.ExpiresAt = &expiresAt

		if err := repoFactory.ListingRepo().Create(ctx, listing); err != nil {
			return errors.Wrap(err, "failed to create listing")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute admin create listing transaction")
	}
	srv.log(ctx).Info("Listing created by admin",
		slog.Any("listing_id", listing.ID),
		slog.String("status", listing.Status.String()),
		slog.Any("moderator_id", session.UserID),
	)

	return listing, nil
}

func (srv *adminService) Stats(ctx context.Context, session *entity.Session) (*usecase.AdminStats, error) {
	if err := requireAdmin(session); err != nil {
		return nil, err
	}

	listingStats, err := srv.listingRepo.Stats(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate listing stats")
	}

	_, profileCount, err := srv.profileRepo.List(ctx, 1, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count profiles")
	}

	return &usecase.AdminStats{Listings: *listingStats, Profiles: profileCount}, nil
}
