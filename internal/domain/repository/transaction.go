package repository

import "context"

// TransactionManager runs a unit of work atomically. fn's error rolls everything back;
// repositories obtained from the factory share the transaction.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out transaction-bound repositories.
type RepositoryFactory interface {
	ProfileRepo() ProfileRepository
	AuthRepo() AuthRepository
	RefreshTokenRepo() RefreshTokenRepository
	CatalogRepo() CatalogRepository
	ListingRepo() ListingRepository
	NotificationRepo() NotificationRepository
	ResetCodeRepo() ResetCodeRepository
}
