package matchmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating matches table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS matches (
					id UUID PRIMARY KEY,
					venue_id TEXT NOT NULL,
					court_name TEXT NOT NULL,
					date TEXT NOT NULL,
					start_time TEXT NOT NULL,
					type TEXT NOT NULL CHECK (type IN ('private', 'open')),
					host_id TEXT NOT NULL,
					players JSONB NOT NULL DEFAULT '[]'::jsonb
						CHECK (jsonb_array_length(players) <= 4),
					level DOUBLE PRECISION NOT NULL DEFAULT 1.0,
					price_per_player DOUBLE PRECISION NOT NULL DEFAULT 0
						CHECK (price_per_player >= 0),
					status TEXT NOT NULL DEFAULT 'open'
						CHECK (status IN ('open', 'full', 'finished')),
					score TEXT,
					winners JSONB,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`); err != nil {
				return fmt.Errorf("failed to create matches table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE INDEX IF NOT EXISTS idx_matches_open_directory ON matches (type, status, date);
				CREATE UNIQUE INDEX IF NOT EXISTS idx_matches_venue_slot ON matches (venue_id, date, start_time);
				CREATE INDEX IF NOT EXISTS idx_matches_players ON matches USING GIN (players jsonb_path_ops);
			`); err != nil {
				return fmt.Errorf("failed to create matches indexes: %w", err)
			}

			fmt.Println("Matches table created successfully!")
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping matches table...")

		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS matches;`); err != nil {
			return fmt.Errorf("failed to drop matches table: %w", err)
		}

		fmt.Println("Matches table dropped successfully!")
		return nil
	})
}
