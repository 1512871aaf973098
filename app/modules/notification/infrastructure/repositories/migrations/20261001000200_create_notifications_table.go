package notificationmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating notifications table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS notifications (
					id UUID PRIMARY KEY,
					type TEXT NOT NULL,
					from_user_id TEXT NOT NULL,
					from_name TEXT NOT NULL,
					to_user_id TEXT NOT NULL,
					match_id UUID,
					message TEXT NOT NULL,
					status TEXT NOT NULL DEFAULT 'pending'
						CHECK (status IN ('pending', 'accepted', 'declined', 'read')),
					venue_id TEXT,
					date TEXT,
					start_time TEXT,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`); err != nil {
				return fmt.Errorf("failed to create notifications table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE INDEX IF NOT EXISTS idx_notifications_inbox ON notifications (to_user_id, status, created_at DESC);
				CREATE INDEX IF NOT EXISTS idx_notifications_expiry ON notifications (type, status, created_at);
			`); err != nil {
				return fmt.Errorf("failed to create notifications indexes: %w", err)
			}

			fmt.Println("Notifications table created successfully!")
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping notifications table...")

		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS notifications;`); err != nil {
			return fmt.Errorf("failed to drop notifications table: %w", err)
		}

		fmt.Println("Notifications table dropped successfully!")
		return nil
	})
}
