package notificationdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	notificationdomain "github.com/AhmedMHR/PadelPal/app/modules/notification/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new notification repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// CreateMany inserts notifications in one statement. Rows whose id already
// exists are skipped.
func (r *Impl) CreateMany(ctx context.Context, db bun.IDB, notifications []Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(&notifications).On("CONFLICT (id) DO NOTHING").Exec(ctx); err != nil {
		return fmt.Errorf("notificationdb.CreateMany: %w", err)
	}
	return nil
}

// GetByID retrieves a notification.
func (r *Impl) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Notification, error) {
	db = r.resolveDB(db)
	n := new(Notification)
	err := db.NewSelect().
		Model(n).
		Where("n.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("notificationdb.GetByID: %w", err)
	}
	return n, nil
}

// ListPending returns the pending notifications addressed to userID, newest first.
func (r *Impl) ListPending(ctx context.Context, db bun.IDB, userID string) ([]Notification, error) {
	db = r.resolveDB(db)
	var out []Notification
	err := db.NewSelect().
		Model(&out).
		Where("n.to_user_id = ?", userID).
		Where("n.status = ?", notificationdomain.StatusPending).
		Order("n.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("notificationdb.ListPending: %w", err)
	}
	return out, nil
}

// UpdateStatus sets the status of a notification.
func (r *Impl) UpdateStatus(ctx context.Context, db bun.IDB, id uuid.UUID, status notificationdomain.Status) error {
	db = r.resolveDB(db)
	res, err := db.NewUpdate().
		Model((*Notification)(nil)).
		Set("status = ?", status).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("notificationdb.UpdateStatus: %w", err)
	}
	return requireRows(res)
}

// Delete removes a notification.
func (r *Impl) Delete(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	db = r.resolveDB(db)
	res, err := db.NewDelete().
		Model((*Notification)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("notificationdb.Delete: %w", err)
	}
	return requireRows(res)
}

// DeletePendingOfTypeBefore removes stale pending notifications of one type.
func (r *Impl) DeletePendingOfTypeBefore(ctx context.Context, db bun.IDB, t notificationdomain.Type, cutoff time.Time) (int, error) {
	db = r.resolveDB(db)
	res, err := db.NewDelete().
		Model((*Notification)(nil)).
		Where("type = ?", t).
		Where("status = ?", notificationdomain.StatusPending).
		Where("created_at < ?", cutoff).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("notificationdb.DeletePendingOfTypeBefore: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("notificationdb.DeletePendingOfTypeBefore: %w", err)
	}
	return int(n), nil
}

func requireRows(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return ErrNoRowsAffected
	}
	return nil
}
