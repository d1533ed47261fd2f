// Package scheduler runs the periodic maintenance jobs of the API process.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"enginex/config"
	"enginex/internal/delivery"
	deliverycontext "enginex/internal/delivery/context"
	"enginex/internal/domain/lifecycle"
	"enginex/internal/errors"
	"enginex/internal/usecase"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// Default specs, with a leading seconds field.
const (
	DefaultExpireSpec       = "0 */10 * * * *"
	DefaultWarnSpec         = "0 0 * * * *"
	DefaultSubscriptionSpec = "0 5 0 * * *"
	DefaultPurgeSpec        = "0 45 3 * * *"

	// jobTimeout bounds a single run so a stuck query cannot pile up runs.
	jobTimeout = 5 * time.Minute
)

// Params holds dependencies for the scheduler, injected by Fx.
type Params struct {
	fx.In

	Lc          fx.Lifecycle
	Config      *config.Config
	Logger      *slog.Logger
	Maintenance usecase.MaintenanceUsecase
}

type job struct {
	name string
	spec string
	run  func(ctx context.Context) (int, error)
}

type scheduler struct {
	enabled bool
	cron    *cron.Cron
	jobs    []job
	logger  *slog.Logger
}

// NewScheduler builds the cron runner. Jobs are registered when Serve is called.
func NewScheduler(params Params) (delivery.Delivery, error) {
	s := newScheduler(params.Config.Scheduler, params.Logger, params.Maintenance)

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func newScheduler(cfg *config.SchedulerConfig, logger *slog.Logger, maintenance usecase.MaintenanceUsecase) *scheduler {
	if cfg == nil {
		cfg = &config.SchedulerConfig{}
	}
	logger = logger.With(slog.String("component", "scheduler"))
	cronLog := &cronLogger{logger: logger}

	return &scheduler{
		enabled: cfg.Enabled,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		jobs: []job{
			{name: "expire_listings", spec: specOrDefault(cfg.ExpireSpec, DefaultExpireSpec), run: maintenance.ExpireListings},
			{name: "warn_expiring_listings", spec: specOrDefault(cfg.WarnSpec, DefaultWarnSpec), run: maintenance.WarnExpiringListings},
			{name: "downgrade_lapsed_subscriptions", spec: specOrDefault(cfg.SubscriptionSpec, DefaultSubscriptionSpec), run: maintenance.DowngradeLapsedSubscriptions},
			{name: "purge_expired_credentials", spec: specOrDefault(cfg.PurgeSpec, DefaultPurgeSpec), run: maintenance.PurgeExpiredCredentials},
		},
		logger: logger,
	}
}

func specOrDefault(spec, fallback string) string {
	if spec == "" {
		return fallback
	}

	return spec
}

// Serve registers the jobs and starts the cron loop in the background.
func (s *scheduler) Serve(ctx context.Context) error {
	if !s.enabled {
		s.logger.Info("Scheduler disabled")

		return nil
	}

	for _, j := range s.jobs {
		if _, err := s.cron.AddFunc(j.spec, s.runner(j)); err != nil {
			return errors.Wrapf(err, "schedule %s with spec %q", j.name, j.spec)
		}
		s.logger.Info("Scheduled job", slog.String("job", j.name), slog.String("spec", j.spec))
	}

	s.cron.Start()

	return nil
}

// runner wraps a job with a timeout and a job-scoped logger.
func (s *scheduler) runner(j job) func() {
	return func() {
		runID := uuid.New().String()
		logger := s.logger.With(slog.String("job", j.name), slog.String("request_id", runID))

		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		ctx = deliverycontext.WithRequestID(ctx, runID)
		ctx = deliverycontext.WithLogger(ctx, logger)

		start := time.Now()
		handled, err := j.run(ctx)
		if err != nil {
			logger.Error("Job failed",
				slog.Int("handled", handled),
				slog.Duration("duration", time.Since(start)),
				slog.Any("error", err),
			)

			return
		}
		if handled > 0 {
			logger.Info("Job finished", slog.Int("handled", handled), slog.Duration("duration", time.Since(start)))
		}
	}
}

func (s *scheduler) stop(ctx context.Context) error {
	stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Stopping scheduler")

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-stopCtx.Done():
		return errors.Wrap(stopCtx.Err(), "scheduler jobs still running")
	}
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l *cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, slog.Any("error", err))...)
}
