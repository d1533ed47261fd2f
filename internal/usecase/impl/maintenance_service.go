package impl

import (
	"context"
	"log/slog"
	"time"

	"enginex/config"
	deliverycontext "enginex/internal/delivery/context"
	"enginex/internal/domain/entity"
	"enginex/internal/domain/policy"
	"enginex/internal/domain/repository"
	"enginex/internal/domain/service"
	apperrors "enginex/internal/errors"
	"enginex/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultSweepBatchSize      = 200
	defaultExpiryWarningWindow = 72 * time.Hour
)

type maintenanceService struct {
	txManager     repository.TransactionManager
	listingRepo   repository.ListingRepository
	profileRepo   repository.ProfileRepository
	sessionRepo   repository.RefreshTokenRepository
	resetCodeRepo repository.ResetCodeRepository
	clock         service.Clock
	notifier      *notifier
	batchSize     int
	warningWindow time.Duration
	logger        *slog.Logger
}

// MaintenanceServiceParams holds dependencies for MaintenanceService, injected by Fx.
type MaintenanceServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ListingRepo repository.ListingRepository
	ProfileRepo repository.ProfileRepository
	SessionRepo repository.RefreshTokenRepository
	CodeRepo    repository.ResetCodeRepository
	Publisher   service.EventPublisher
	Clock       service.Clock
	Config      *config.Config
	Logger      *slog.Logger
}

// NewMaintenanceService is the constructor for maintenanceService.
func NewMaintenanceService(params MaintenanceServiceParams) usecase.MaintenanceUsecase {
	batchSize, warningWindow := defaultSweepBatchSize, defaultExpiryWarningWindow
	if params.Config != nil && params.Config.Listing != nil {
		if params.Config.Listing.SweepBatchSize > 0 {
			batchSize = params.Config.Listing.SweepBatchSize
		}
		if params.Config.Listing.ExpiryWarningWindow > 0 {
			warningWindow = params.Config.Listing.ExpiryWarningWindow
		}
	}

	return &maintenanceService{
		txManager:     params.TxManager,
		listingRepo:   params.ListingRepo,
		profileRepo:   params.ProfileRepo,
		sessionRepo:   params.SessionRepo,
		resetCodeRepo: params.CodeRepo,
		clock:         params.Clock,
		notifier:      newNotifier(params.Publisher, params.Logger),
		batchSize:     batchSize,
		warningWindow: warningWindow,
		logger:        params.Logger,
	}
}

func (srv *maintenanceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ExpireListings deactivates listings past their expiration. Each row commits on its own,
// so one failure does not roll back the rest of the batch.
func (srv *maintenanceService) ExpireListings(ctx context.Context) (int, error) {
	now := srv.clock.Now()

	listings, err := srv.listingRepo.FindExpired(ctx, now, srv.batchSize)
	if err != nil {
		return 0, errors.Wrap(err, "failed to find expired listings")
	}

	var (
		handled int
		errs    []error
		sent    []*entity.Notification
	)
	for _, listing := range listings {
		var notification *entity.Notification
		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			if err := repoFactory.ListingRepo().SetActive(ctx, listing.ID, false, now); err != nil {
				return errors.Wrap(err, "failed to deactivate listing")
			}

			// Owners only hear about listings that were actually online.
			if listing.UserID == nil || listing.Status != entity.ListingStatusApproved {
				return nil
			}
			notification = expiredNotification(listing)

			return srv.notifier.record(ctx, repoFactory.NotificationRepo(), notification)
		})
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "listing %s", listing.ID))

			continue
		}
		handled++
		if notification != nil {
			sent = append(sent, notification)
		}
	}

	srv.notifier.push(ctx, sent...)
	srv.log(ctx).Info("Expired listings swept", slog.Int("handled", handled), slog.Int("failed", len(errs)))

	return handled, apperrors.Combine("expire listings", errs...)
}

// WarnExpiringListings sends one warning per listing within the warning window.
func (srv *maintenanceService) WarnExpiringListings(ctx context.Context) (int, error) {
	now := srv.clock.Now()

	listings, err := srv.listingRepo.FindExpiringUnwarned(ctx, now, now.Add(srv.warningWindow), srv.batchSize)
	if err != nil {
		return 0, errors.Wrap(err, "failed to find expiring listings")
	}

	var (
		handled int
		errs    []error
		sent    []*entity.Notification
	)
	for _, listing := range listings {
		if !policy.ExpiringWithin(listing, now, srv.warningWindow) {
			continue
		}
		var notification *entity.Notification
		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			// Anonymous listings are marked too, otherwise every run would select them again.
			if err := repoFactory.ListingRepo().MarkExpiryWarned(ctx, listing.ID, now); err != nil {
				return errors.Wrap(err, "failed to mark listing warned")
			}
			if listing.UserID == nil {
				return nil
			}
			notification = expiringNotification(listing)

			return srv.notifier.record(ctx, repoFactory.NotificationRepo(), notification)
		})
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "listing %s", listing.ID))

			continue
		}
		handled++
		if notification != nil {
			sent = append(sent, notification)
		}
	}

	srv.notifier.push(ctx, sent...)
	srv.log(ctx).Info("Expiry warnings sent", slog.Int("handled", handled), slog.Int("failed", len(errs)))

	return handled, apperrors.Combine("warn expiring listings", errs...)
}

// DowngradeLapsedSubscriptions moves accounts whose paid window ended back to the free plan.
func (srv *maintenanceService) DowngradeLapsedSubscriptions(ctx context.Context) (int, error) {
	profiles, err := srv.profileRepo.FindLapsedSubscriptions(ctx, srv.clock.Now(), srv.batchSize)
	if err != nil {
		return 0, errors.Wrap(err, "failed to find lapsed subscriptions")
	}

	var (
		handled int
		errs    []error
		sent    []*entity.Notification
	)
	for _, profile := range profiles {
		notification := subscriptionExpiredNotification(profile)
		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			if err := repoFactory.ProfileRepo().UpdatePlan(ctx, profile.ID, entity.AccountTypeIndividual, nil); err != nil {
				return errors.Wrap(err, "failed to downgrade plan")
			}

			return srv.notifier.record(ctx, repoFactory.NotificationRepo(), notification)
		})
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "profile %s", profile.ID))

			continue
		}
		handled++
		sent = append(sent, notification)
	}

	srv.notifier.push(ctx, sent...)
	srv.log(ctx).Info("Lapsed subscriptions downgraded", slog.Int("handled", handled), slog.Int("failed", len(errs)))

	return handled, apperrors.Combine("downgrade subscriptions", errs...)
}

// PurgeExpiredCredentials keeps the session and reset code tables from growing without bound.
func (srv *maintenanceService) PurgeExpiredCredentials(ctx context.Context) (int, error) {
	now := srv.clock.Now()

	sessions, sessionErr := srv.sessionRepo.PurgeExpired(ctx, now)
	codes, codeErr := srv.resetCodeRepo.PurgeExpired(ctx, now)
	if err := apperrors.Combine("purge expired credentials", sessionErr, codeErr); err != nil {
		return int(sessions + codes), err
	}
	srv.log(ctx).Debug("Expired credentials purged", slog.Int64("sessions", sessions), slog.Int64("reset_codes", codes))

	return int(sessions + codes), nil
}
