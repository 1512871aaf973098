package matchmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating match_messages table...")

		if _, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS match_messages (
				id UUID PRIMARY KEY,
				match_id UUID NOT NULL REFERENCES matches (id) ON DELETE CASCADE,
				sender_id TEXT NOT NULL,
				sender_name TEXT NOT NULL,
				text TEXT NOT NULL CHECK (length(text) > 0),
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
			CREATE INDEX IF NOT EXISTS idx_match_messages_match_created
				ON match_messages (match_id, created_at, id);
		`); err != nil {
			return fmt.Errorf("failed to create match_messages table: %w", err)
		}

		fmt.Println("Match messages table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping match_messages table...")

		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS match_messages;`); err != nil {
			return fmt.Errorf("failed to drop match_messages table: %w", err)
		}

		fmt.Println("Match messages table dropped successfully!")
		return nil
	})
}
