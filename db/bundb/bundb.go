package bundb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	matchmigrations "github.com/AhmedMHR/PadelPal/app/modules/match/infrastructure/repositories/migrations"
	notificationmigrations "github.com/AhmedMHR/PadelPal/app/modules/notification/infrastructure/repositories/migrations"
	usermigrations "github.com/AhmedMHR/PadelPal/app/modules/user/infrastructure/repositories/migrations"
	venuemigrations "github.com/AhmedMHR/PadelPal/app/modules/venue/infrastructure/repositories/migrations"
	"github.com/AhmedMHR/PadelPal/config"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
)

// NewBunDB opens a pgdriver connection pool for cfg.DSN, wraps it in bun and
// checks connectivity.
func NewBunDB(ctx context.Context, cfg config.PostgresConfig, logger *slog.Logger) (*bun.DB, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.DSN)))
	sqldb.SetMaxOpenConns(25)
	sqldb.SetMaxIdleConns(25)
	sqldb.SetConnMaxIdleTime(5 * time.Minute)

	db := bun.NewDB(sqldb, pgdialect.New())

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.InfoContext(ctx, "Connected to PostgreSQL")
	return db, nil
}

// ModuleMigrator pairs a module name with its migrator.
type ModuleMigrator struct {
	Module   string
	Migrator *migrate.Migrator
}

// Migrators returns one migrator per module in dependency order.
func Migrators(db *bun.DB) []ModuleMigrator {
	return []ModuleMigrator{
		{Module: "user", Migrator: migrate.NewMigrator(db, usermigrations.Migrations)},
		{Module: "venue", Migrator: migrate.NewMigrator(db, venuemigrations.Migrations)},
		{Module: "match", Migrator: migrate.NewMigrator(db, matchmigrations.Migrations)},
		{Module: "notification", Migrator: migrate.NewMigrator(db, notificationmigrations.Migrations)},
	}
}

// MigrateAll creates the migration tables and applies every pending
// migration.
func MigrateAll(ctx context.Context, db *bun.DB) error {
	for _, m := range Migrators(db) {
		if err := m.Migrator.Init(ctx); err != nil {
			return fmt.Errorf("failed to init migrations for %s: %w", m.Module, err)
		}
		if _, err := m.Migrator.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to migrate %s: %w", m.Module, err)
		}
	}
	return nil
}
