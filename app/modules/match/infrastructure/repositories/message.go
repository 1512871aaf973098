package matchdb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// CreateMessage inserts a chat message, assigning an id and timestamp when
// they are missing.
func (r *Impl) CreateMessage(ctx context.Context, db bun.IDB, msg *Message) error {
	db = r.resolveDB(db)
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	if _, err := db.NewInsert().Model(msg).Exec(ctx); err != nil {
		return fmt.Errorf("matchdb.CreateMessage: %w", err)
	}
	return nil
}

// ListMessages returns up to limit messages of a match, oldest first. The id
// breaks ties between messages posted in the same instant.
func (r *Impl) ListMessages(ctx context.Context, db bun.IDB, matchID uuid.UUID, limit int) ([]Message, error) {
	db = r.resolveDB(db)
	var messages []Message
	q := db.NewSelect().
		Model(&messages).
		Where("mm.match_id = ?", matchID).
		OrderExpr("mm.created_at ASC, mm.id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("matchdb.ListMessages: %w", err)
	}
	return messages, nil
}
