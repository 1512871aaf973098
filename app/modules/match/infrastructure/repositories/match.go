package matchdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	matchdomain "github.com/AhmedMHR/PadelPal/app/modules/match/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new match repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// Create inserts a new match.
func (r *Impl) Create(ctx context.Context, db bun.IDB, match *Match) error {
	db = r.resolveDB(db)
	if match.ID == uuid.Nil {
		match.ID = uuid.New()
	}
	if _, err := db.NewInsert().Model(match).Exec(ctx); err != nil {
		return fmt.Errorf("matchdb.Create: %w", err)
	}
	return nil
}

// GetByID retrieves a match by id.
func (r *Impl) GetByID(ctx context.Context, db bun.IDB, matchID uuid.UUID) (*Match, error) {
	db = r.resolveDB(db)
	match := new(Match)
	err := db.NewSelect().
		Model(match).
		Where("m.id = ?", matchID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("matchdb.GetByID: %w", err)
	}
	return match, nil
}

// GetForUpdate retrieves a match with a row lock held until the surrounding
// transaction ends. Outside a transaction the lock is released immediately.
func (r *Impl) GetForUpdate(ctx context.Context, db bun.IDB, matchID uuid.UUID) (*Match, error) {
	db = r.resolveDB(db)
	match := new(Match)
	err := db.NewSelect().
		Model(match).
		Where("m.id = ?", matchID).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("matchdb.GetForUpdate: %w", err)
	}
	return match, nil
}

// UpdateRoster replaces the player list and status.
func (r *Impl) UpdateRoster(ctx context.Context, db bun.IDB, matchID uuid.UUID, players []string, status matchdomain.Status) error {
	db = r.resolveDB(db)
	res, err := db.NewUpdate().
		Model((*Match)(nil)).
		Set("players = ?", jsonArray(players)).
		Set("status = ?", status).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", matchID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("matchdb.UpdateRoster: %w", err)
	}
	return requireRows(res, "matchdb.UpdateRoster")
}

// UpdateResult writes the result of a finished match.
func (r *Impl) UpdateResult(ctx context.Context, db bun.IDB, matchID uuid.UUID, status matchdomain.Status, score string, winners []string) error {
	db = r.resolveDB(db)
	res, err := db.NewUpdate().
		Model((*Match)(nil)).
		Set("status = ?", status).
		Set("score = ?", score).
		Set("winners = ?", jsonArray(winners)).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", matchID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("matchdb.UpdateResult: %w", err)
	}
	return requireRows(res, "matchdb.UpdateResult")
}

// Delete removes a match. Deleting an absent match returns ErrNotFound.
func (r *Impl) Delete(ctx context.Context, db bun.IDB, matchID uuid.UUID) error {
	db = r.resolveDB(db)
	res, err := db.NewDelete().
		Model((*Match)(nil)).
		Where("id = ?", matchID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("matchdb.Delete: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("matchdb.Delete: rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// ListOpen returns open matches dated on or after fromDate, earliest first.
func (r *Impl) ListOpen(ctx context.Context, db bun.IDB, fromDate string, limit int) ([]Match, error) {
	db = r.resolveDB(db)
	var matches []Match
	err := db.NewSelect().
		Model(&matches).
		Where("m.type = ?", matchdomain.TypeOpen).
		Where("m.status = ?", matchdomain.StatusOpen).
		Where("m.date >= ?", fromDate).
		OrderExpr("m.date ASC, m.start_time ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("matchdb.ListOpen: %w", err)
	}
	return matches, nil
}

// ListByPlayer returns every match whose roster contains userID, latest first.
func (r *Impl) ListByPlayer(ctx context.Context, db bun.IDB, userID string) ([]Match, error) {
	db = r.resolveDB(db)
	var matches []Match
	err := db.NewSelect().
		Model(&matches).
		Where("m.players @> ?::jsonb", jsonArray([]string{userID})).
		OrderExpr("m.date DESC, m.start_time DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("matchdb.ListByPlayer: %w", err)
	}
	return matches, nil
}

// BookedSlots returns the start times already taken at a venue on a date.
func (r *Impl) BookedSlots(ctx context.Context, db bun.IDB, venueID, date string) ([]string, error) {
	db = r.resolveDB(db)
	var slots []string
	err := db.NewSelect().
		Model((*Match)(nil)).
		Column("start_time").
		Where("venue_id = ?", venueID).
		Where("date = ?", date).
		Order("start_time").
		Scan(ctx, &slots)
	if err != nil {
		return nil, fmt.Errorf("matchdb.BookedSlots: %w", err)
	}
	return slots, nil
}

// jsonArray renders ids as a JSON array literal; nil becomes [].
func jsonArray(ids []string) string {
	if ids == nil {
		ids = []string{}
	}
	b, _ := json.Marshal(ids)
	return string(b)
}

func requireRows(res sql.Result, op string) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if rows == 0 {
		return ErrNoRowsAffected
	}
	return nil
}
