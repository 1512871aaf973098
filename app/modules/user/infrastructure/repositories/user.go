package userdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new user repository.
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

// GetByUID retrieves a profile by uid.
func (r *Impl) GetByUID(ctx context.Context, db bun.IDB, uid string) (*User, error) {
	db = r.resolveDB(db)
	user := new(User)
	err := db.NewSelect().
		Model(user).
		Where("u.uid = ?", uid).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("userdb.GetByUID: %w", err)
	}
	return user, nil
}

// GetManyForUpdate locks the profiles in uid order so concurrent ledger
// transactions acquire row locks in the same sequence.
func (r *Impl) GetManyForUpdate(ctx context.Context, db bun.IDB, uids []string) ([]User, error) {
	if len(uids) == 0 {
		return nil, nil
	}
	db = r.resolveDB(db)
	var users []User
	err := db.NewSelect().
		Model(&users).
		Where("u.uid IN (?)", bun.In(uids)).
		Order("u.uid ASC").
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("userdb.GetManyForUpdate: %w", err)
	}
	return users, nil
}

// CreateIfAbsent inserts user unless a row with the same uid exists.
func (r *Impl) CreateIfAbsent(ctx context.Context, db bun.IDB, user *User) (bool, error) {
	db = r.resolveDB(db)
	res, err := db.NewInsert().
		Model(user).
		On("CONFLICT (uid) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("userdb.CreateIfAbsent: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("userdb.CreateIfAbsent: rows affected: %w", err)
	}
	return rows > 0, nil
}

// UpdateStanding writes the rating columns of a profile.
func (r *Impl) UpdateStanding(ctx context.Context, db bun.IDB, uid string, standing StandingUpdate) error {
	db = r.resolveDB(db)
	res, err := db.NewUpdate().
		Model((*User)(nil)).
		Set("level = ?", standing.Level).
		Set("wins = ?", standing.Wins).
		Set("matches_played = ?", standing.MatchesPlayed).
		Set("updated_at = ?", time.Now().UTC()).
		Where("uid = ?", uid).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("userdb.UpdateStanding: %w", err)
	}
	return requireRows(res, "userdb.UpdateStanding")
}

// UpdateProfile writes the non-nil editable fields.
func (r *Impl) UpdateProfile(ctx context.Context, db bun.IDB, uid string, update ProfileUpdate) error {
	db = r.resolveDB(db)
	q := db.NewUpdate().
		Model((*User)(nil)).
		Set("updated_at = ?", time.Now().UTC()).
		Where("uid = ?", uid)
	if update.DisplayName != nil {
		q = q.Set("display_name = ?", *update.DisplayName)
	}
	if update.PhotoURL != nil {
		q = q.Set("photo_url = ?", *update.PhotoURL)
	}
	res, err := q.Exec(ctx)
	if err != nil {
		return fmt.Errorf("userdb.UpdateProfile: %w", err)
	}
	return requireRows(res, "userdb.UpdateProfile")
}

// IncrementBalance adds amount in a single statement and returns the new balance.
func (r *Impl) IncrementBalance(ctx context.Context, db bun.IDB, uid string, amount int64) (int64, error) {
	db = r.resolveDB(db)
	var balance int64
	err := db.NewUpdate().
		Model((*User)(nil)).
		Set("balance = balance + ?", amount).
		Set("updated_at = ?", time.Now().UTC()).
		Where("uid = ?", uid).
		Returning("balance").
		Scan(ctx, &balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("userdb.IncrementBalance: %w", err)
	}
	return balance, nil
}

// TopByLevel returns the highest rated profiles, ties broken by wins.
func (r *Impl) TopByLevel(ctx context.Context, db bun.IDB, limit int) ([]User, error) {
	db = r.resolveDB(db)
	var users []User
	err := db.NewSelect().
		Model(&users).
		OrderExpr("u.level DESC, u.wins DESC, u.uid ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("userdb.TopByLevel: %w", err)
	}
	return users, nil
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
