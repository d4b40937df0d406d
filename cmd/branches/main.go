// Package main is the entry point of the branches back-office service,
// which exposes CRUD over bank branches at /api/v1/branches.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/banquito/backoffice/internal/api"
	"github.com/banquito/backoffice/internal/config"
	"github.com/banquito/backoffice/internal/platform/logger"
	"github.com/banquito/backoffice/internal/platform/postgres"
	"github.com/banquito/backoffice/internal/server"
	"github.com/banquito/backoffice/internal/service"
)

const serviceName = "branches"

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("branches service failed: %v", err)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(config.BranchesEnvPrefix)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	appLogger = appLogger.With(slog.String("service", serviceName))
	appLogger.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))

	db, err := postgres.Open(ctx, cfg.Database, appLogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("failed to close database", slog.String("error", err.Error()))
		}
	}()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(db, postgres.BranchesMigrations, appLogger); err != nil {
			return err
		}
	}

	branchStore := postgres.NewPostgresBranchStore(db, appLogger)
	branchService, err := service.NewBranchService(branchStore, appLogger)
	if err != nil {
		return fmt.Errorf("failed to create branch service: %w", err)
	}

	router := server.NewRouter(server.RouterConfig{
		ServiceName: serviceName,
		Logger:      appLogger,
		Handlers:    []server.RouteRegistrar{api.NewBranchHandler(branchService, appLogger)},
		HealthCheck: db.PingContext,
	})

	return server.New(cfg.Server, router, appLogger).Run(ctx)
}
