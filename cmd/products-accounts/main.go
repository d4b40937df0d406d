// Package main is the entry point of the products-accounts back-office
// service, which manages interest rates and account products.
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

const serviceName = "products-accounts"

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("products-accounts service failed: %v", err)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(config.ProductsAccountsEnvPrefix)
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
		if err := postgres.Migrate(db, postgres.ProductsAccountsMigrations, appLogger); err != nil {
			return err
		}
	}

	rateService, err := service.NewInterestRateService(postgres.NewPostgresInterestRateStore(db, appLogger), appLogger)
	if err != nil {
		return fmt.Errorf("failed to create interest rate service: %w", err)
	}
	accountService, err := service.NewProductAccountService(
		postgres.NewPostgresProductAccountStore(db, appLogger),
		appLogger,
	)
	if err != nil {
		return fmt.Errorf("failed to create product account service: %w", err)
	}

	router := server.NewRouter(server.RouterConfig{
		ServiceName: serviceName,
		Logger:      appLogger,
		Handlers: []server.RouteRegistrar{
			api.NewInterestRateHandler(rateService, appLogger),
			api.NewProductAccountHandler(accountService, appLogger),
		},
		HealthCheck: db.PingContext,
	})

	return server.New(cfg.Server, router, appLogger).Run(ctx)
}
