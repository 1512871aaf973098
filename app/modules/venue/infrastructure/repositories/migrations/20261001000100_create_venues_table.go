package venuemigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating venues table...")

		if _, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS venues (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				location TEXT NOT NULL DEFAULT '',
				price_per_hour DOUBLE PRECISION NOT NULL CHECK (price_per_hour >= 0),
				image TEXT NOT NULL DEFAULT '',
				amenities JSONB NOT NULL DEFAULT '[]'::jsonb,
				courts INTEGER NOT NULL DEFAULT 4 CHECK (courts > 0),
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
		`); err != nil {
			return fmt.Errorf("failed to create venues table: %w", err)
		}

		fmt.Println("Venues table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping venues table...")

		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS venues;`); err != nil {
			return fmt.Errorf("failed to drop venues table: %w", err)
		}

		fmt.Println("Venues table dropped successfully!")
		return nil
	})
}
