package usecase

import "context"

// MaintenanceUsecase holds the periodic jobs run by the scheduler. Each returns the number of rows handled.
type MaintenanceUsecase interface {
	// ExpireListings deactivates active listings past their expiration and notifies owners.
	ExpireListings(ctx context.Context) (int, error)
	// WarnExpiringListings notifies owners once per listing before it expires.
	WarnExpiringListings(ctx context.Context) (int, error)
	// DowngradeLapsedSubscriptions returns accounts with an elapsed paid window to the free plan.
	DowngradeLapsedSubscriptions(ctx context.Context) (int, error)
	// PurgeExpiredCredentials deletes expired sessions and spent password reset codes.
	PurgeExpiredCredentials(ctx context.Context) (int, error)
}
