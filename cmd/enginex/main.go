package main

import (
	"context"
	"log/slog"
	"os"

	"enginex/config"
	"enginex/internal/delivery"
	"enginex/internal/delivery/api"
	"enginex/internal/delivery/api/middleware"
	"enginex/internal/delivery/api/router/handler"
	"enginex/internal/delivery/scheduler"
	"enginex/internal/domain/service"
	"enginex/internal/infra/auth"
	"enginex/internal/infra/cache"
	logs "enginex/internal/infra/log"
	"enginex/internal/infra/persistence/postgres"
	"enginex/internal/infra/pubsub"
	"enginex/internal/infra/qrcode"
	"enginex/internal/infra/storage"
	"enginex/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.NewRedisClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProfileRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewResetCodeRepository,
			postgres.NewCatalogRepository,
			postgres.NewListingRepository,
			postgres.NewNotificationRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			service.NewSystemClock,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewCodeGenerator,
			cache.NewViewTracker,
			pubsub.NewEventPublisher,
			qrcode.New,
			storage.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewPasswordResetService,
			impl.NewProfileService,
			impl.NewCatalogService,
			impl.NewListingService,
			impl.NewImageService,
			impl.NewAdminService,
			impl.NewDeviceService,
			impl.NewNotificationService,
			impl.NewMaintenanceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewListingHandler,
			handler.NewCatalogHandler,
			handler.NewImageHandler,
			handler.NewProfileHandler,
			handler.NewNotificationHandler,
			handler.NewDeviceHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
