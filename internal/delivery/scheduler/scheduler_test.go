package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"enginex/config"
	deliverycontext "enginex/internal/delivery/context"
	mockUc "enginex/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScheduler_DefaultSpecs(t *testing.T) {
	maintenance := mockUc.NewMockMaintenanceUsecase(t)

	s := newScheduler(&config.SchedulerConfig{Enabled: true, WarnSpec: "0 30 * * * *"}, newDiscardLogger(), maintenance)

	specs := map[string]string{}
	for _, j := range s.jobs {
		specs[j.name] = j.spec
	}
	assert.Equal(t, map[string]string{
		"expire_listings":                DefaultExpireSpec,
		"warn_expiring_listings":         "0 30 * * * *",
		"downgrade_lapsed_subscriptions": DefaultSubscriptionSpec,
		"purge_expired_credentials":      DefaultPurgeSpec,
	}, specs)
}

func TestScheduler_ServeRegistersJobs(t *testing.T) {
	maintenance := mockUc.NewMockMaintenanceUsecase(t)
	s := newScheduler(&config.SchedulerConfig{Enabled: true}, newDiscardLogger(), maintenance)

	require.NoError(t, s.Serve(context.Background()))
	t.Cleanup(func() { _ = s.stop(context.Background()) })

	assert.Len(t, s.cron.Entries(), 4)
}

func TestScheduler_Disabled(t *testing.T) {
	maintenance := mockUc.NewMockMaintenanceUsecase(t)
	s := newScheduler(nil, newDiscardLogger(), maintenance)

	require.NoError(t, s.Serve(context.Background()))

	assert.Empty(t, s.cron.Entries())
}

func TestScheduler_InvalidSpec(t *testing.T) {
	maintenance := mockUc.NewMockMaintenanceUsecase(t)
	s := newScheduler(&config.SchedulerConfig{Enabled: true, ExpireSpec: "every minute"}, newDiscardLogger(), maintenance)

	err := s.Serve(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "expire_listings")
}

func TestScheduler_RunnerScopesContext(t *testing.T) {
	maintenance := mockUc.NewMockMaintenanceUsecase(t)
	maintenance.EXPECT().ExpireListings(mock.Anything).
		RunAndReturn(func(ctx context.Context) (int, error) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			assert.NotEmpty(t, deliverycontext.GetRequestIDFromContext(ctx))
			assert.NotNil(t, deliverycontext.GetLogger(ctx))

			return 2, nil
		})
	maintenance.EXPECT().WarnExpiringListings(mock.Anything).Return(0, errors.New("db down"))

	s := newScheduler(&config.SchedulerConfig{Enabled: true}, newDiscardLogger(), maintenance)

	// Failures are logged, never propagated to cron.
	assert.NotPanics(t, s.runner(s.jobs[0]))
	assert.NotPanics(t, s.runner(s.jobs[1]))
}
