package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"enginex/config"
	logs "enginex/internal/infra/log"
	"enginex/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Usage:
//
//	migrate [-seed=false] [-timeout=2m]
//
// Creates or updates the schema, then loads the reference catalog.
func main() {
	seed := flag.Bool("seed", true, "Load the reference categories and equipment types")
	timeout := flag.Duration("timeout", 2*time.Minute, "Overall time limit")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, seed bool) error {
	var (
		db     *gorm.DB
		logger *slog.Logger
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Populate(&db, &logger),
	)
	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to connect")
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			logger.Warn("Failed to close database", slog.Any("error", err))
		}
	}()

	logger.Info("Migrating schema")
	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}

	if !seed {
		return nil
	}

	logger.Info("Seeding catalog", slog.Int("categories", len(postgres.DefaultCatalog)))

	return postgres.Seed(ctx, db, postgres.DefaultCatalog)
}
