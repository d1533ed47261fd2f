package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"enginex/config"
	"enginex/internal/domain/repository"
	mockRepo "enginex/internal/mocks/repository"
	mockSvc "enginex/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
		},
		Listing: &config.ListingConfig{
			FeaturedLimit:       8,
			DefaultPageSize:     20,
			MaxPageSize:         50,
			ExpiryWarningWindow: 72 * time.Hour,
			SweepBatchSize:      100,
		},
		Verification: &config.VerificationConfig{
			CodeTTL:    10 * time.Minute,
			CodeLength: 6,
		},
	}
}

// fixedClock returns a clock mock frozen at now.
func fixedClock(t *testing.T, now time.Time) *mockSvc.MockClock {
	clock := mockSvc.NewMockClock(t)
	clock.EXPECT().Now().Return(now).Maybe()

	return clock
}

// expectTx makes every Execute call run fn against factory and return fn's error.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
