// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager        repository.TransactionManager
	profileRepo      repository.ProfileRepository
	listingRepo      repository.ListingRepository
	notificationRepo repository.NotificationRepository
	clock            service.Clock
	notifier         *notifier
	logger           *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	ProfileRepo      repository.ProfileRepository
	ListingRepo      repository.ListingRepository
	NotificationRepo repository.NotificationRepository
	Publisher        service.EventPublisher
	Clock            service.Clock
	Logger           *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:        params.TxManager,
		profileRepo:      params.ProfileRepo,
		listingRepo:      params.ListingRepo,
		notificationRepo: params.NotificationRepo,
		clock:            params.Clock,
		notifier:         newNotifier(params.Publisher, params.Logger),
		logger:           params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func profileNotFound(err error) error {
	if errors.Is(err, repository.ErrProfileNotFound) {
		return domainerrors.ErrUserNotFound.WrapMessage("profile not found")
	}

	return errors.Wrap(err, "failed to find profile")
}

// GetProfile retrieves the profile of the signed-in user.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, profileNotFound(err)
	}

	return profile, nil
}

// UpdateProfile applies the provided fields.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	var fields domainerrors.FieldErrors
	if input.FullName != nil && strings.TrimSpace(*input.FullName) == "" {
		fields.Add("full_name", "required", "full name cannot be empty")
	}
	if input.AccountTypeLabel != nil && !input.AccountTypeLabel.IsValid() {
		fields.Add("account_type_label", "oneof", "label must be Particulier or Professionnel")
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}

	var updated *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		profile, err := profileRepo.FindByID(ctx, userID)
		if err != nil {
			return profileNotFound(err)
		}

		if input.FullName != nil {
			profile.FullName = strings.TrimSpace(*input.FullName)
		}
		if input.Phone != nil {
			profile.Phone = util.NormalizePhone(*input.Phone)
		}
		if input.AccountTypeLabel != nil {
			profile.AccountTypeLabel = *input.AccountTypeLabel
		}
		if input.ProfileImageURL != nil {
			profile.ProfileImageURL = strings.TrimSpace(*input.ProfileImageURL)
		}
		profile.UpdatedAt = srv.clock.Now()

		if err := profileRepo.Update(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}
		updated = profile

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update profile", slog.Any("user_id", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	return updated, nil
}

// ActivateSubscription opens a paid window starting now. Re-activating replaces the previous window.
func (srv *profileService) ActivateSubscription(ctx context.Context, userID uuid.UUID, plan entity.AccountType) (*entity.Profile, error) {
	if !plan.IsPaid() {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{
			Field: "plan", Rule: "plan", Message: "plan must be pro or premium",
		})
	}

	var (
		profile      *entity.Profile
		notification *entity.Notification
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		found, err := profileRepo.FindByID(ctx, userID)
		if err != nil {
			return profileNotFound(err)
		}

		until := policy.SubscriptionExpiresAt(srv.clock.Now())
		if err := profileRepo.UpdatePlan(ctx, found.ID, plan, &until); err != nil {
			return errors.Wrap(err, "failed to update plan")
		}
		found.AccountType = plan
		found.SubscriptionExpiresAt = &until

		notification = subscriptionActivatedNotification(found, until)
		if err := srv.notifier.record(ctx, repoFactory.NotificationRepo(), notification); err != nil {
			return err
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute subscription transaction")
	}

	srv.log(ctx).Info("Subscription activated", slog.Any("user_id", userID), slog.String("plan", plan.String()))
	srv.notifier.push(ctx, notification)

	return profile, nil
}

// Dashboard aggregates the owner's listing counters and unread notifications.
func (srv *profileService) Dashboard(ctx context.Context, userID uuid.UUID) (*usecase.DashboardStats, error) {
	stats, err := srv.listingRepo.Stats(ctx, &userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate listing stats")
	}

	unread, err := srv.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count unread notifications")
	}

	return &usecase.DashboardStats{ListingStats: *stats, UnreadNotifications: unread}, nil
}
