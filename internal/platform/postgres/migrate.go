package postgres

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*/*.sql
var migrationsFS embed.FS

// MigrationSet identifies the embedded migrations owned by one service.
type MigrationSet struct {
	// Dir is the directory inside the embedded filesystem.
	Dir string
	// Table is the goose version table, kept apart per service so both
	// services can share a database.
	Table string
}

// Migration sets of the two services.
var (
	BranchesMigrations = MigrationSet{
		Dir:   "migrations/branches",
		Table: "branches_goose_db_version",
	}
	ProductsAccountsMigrations = MigrationSet{
		Dir:   "migrations/productsaccounts",
		Table: "products_accounts_goose_db_version",
	}
)

// slogGooseLogger adapts the goose logger interface to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf forwards goose progress messages at info level.
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

// Fatalf forwards goose failures at error level. It does not exit; the
// failure is returned from Migrate.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

// Migrate applies every pending migration of set to db.
func Migrate(db *sql.DB, set MigrationSet, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	migrationLogger := logger.With(
		slog.String("component", "migrations"),
		slog.String("table", set.Table),
	)

	goose.SetLogger(&slogGooseLogger{logger: migrationLogger})
	goose.SetBaseFS(migrationsFS)
	goose.SetTableName(set.Table)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	start := time.Now()
	if err := goose.Up(db, set.Dir); err != nil {
		migrationLogger.Error("migration failed",
			slog.String("error", err.Error()),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		return fmt.Errorf("failed to apply migrations from %s: %w", set.Dir, err)
	}

	migrationLogger.Info("migrations applied",
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))
	return nil
}
