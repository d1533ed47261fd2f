// Package worker is the HTTP endpoint that receives Pub/Sub push deliveries.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"enginex/config"
	"enginex/internal/delivery"
	"enginex/internal/delivery/middleware"
	"enginex/internal/delivery/worker/handler"
	"enginex/internal/domain/lifecycle"
	"enginex/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

const (
	// PushPath is where push subscriptions and the local publisher deliver events.
	PushPath = "/worker/push"

	pushBodyLimit     = "256KB"
	defaultWorkerPort = 8081
)

type workerServer struct {
	addr   string
	logger *slog.Logger
	echo   *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer builds the worker server; it starts listening in Serve.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &workerServer{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(workerPort(params.Cfg))),
		logger: params.Logger,
		echo:   newRouter(params.Cfg, params.Logger, params.PushHandler),
	}
	params.Lc.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

func workerPort(cfg *config.Config) int {
	if cfg.Worker != nil && cfg.Worker.Port > 0 {
		return cfg.Worker.Port
	}

	return defaultWorkerPort
}

func newRouter(cfg *config.Config, logger *slog.Logger, push *handler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	// Pub/Sub retries show up as repeated message ids in these lines.
	e.Use(slogecho.NewWithConfig(logger, slogecho.Config{
		DefaultLevel:     slog.LevelDebug,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		Filters:          []slogecho.Filter{slogecho.IgnorePath("/health")},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST(PushPath, push.HandlePush, echomiddleware.BodyLimit(pushBodyLimit))

	return e
}

func (s *workerServer) Serve(context.Context) error {
	s.logger.Info("Starting worker HTTP server", slog.String("addr", s.addr), slog.String("push_path", PushPath))
	if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "worker server")
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down worker HTTP server")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
