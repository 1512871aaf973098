package userservice

import (
	"context"

	userdb "github.com/AhmedMHR/PadelPal/app/modules/user/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// FakeUserRepository provides a programmable stub for userdb.Repository.
type FakeUserRepository struct {
	trace []string

	GetByUIDFunc         func(ctx context.Context, db bun.IDB, uid string) (*userdb.User, error)
	GetManyForUpdateFunc func(ctx context.Context, db bun.IDB, uids []string) ([]userdb.User, error)
	CreateIfAbsentFunc   func(ctx context.Context, db bun.IDB, user *userdb.User) (bool, error)
	UpdateStandingFunc   func(ctx context.Context, db bun.IDB, uid string, standing userdb.StandingUpdate) error
	UpdateProfileFunc    func(ctx context.Context, db bun.IDB, uid string, update userdb.ProfileUpdate) error
	IncrementBalanceFunc func(ctx context.Context, db bun.IDB, uid string, amount int64) (int64, error)
	TopByLevelFunc       func(ctx context.Context, db bun.IDB, limit int) ([]userdb.User, error)
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{trace: []string{}}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeUserRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeUserRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeUserRepository) GetByUID(ctx context.Context, db bun.IDB, uid string) (*userdb.User, error) {
	f.record("GetByUID")
	if f.GetByUIDFunc != nil {
		return f.GetByUIDFunc(ctx, db, uid)
	}
	return nil, userdb.ErrNotFound
}

func (f *FakeUserRepository) GetManyForUpdate(ctx context.Context, db bun.IDB, uids []string) ([]userdb.User, error) {
	f.record("GetManyForUpdate")
	if f.GetManyForUpdateFunc != nil {
		return f.GetManyForUpdateFunc(ctx, db, uids)
	}
	return nil, nil
}

func (f *FakeUserRepository) CreateIfAbsent(ctx context.Context, db bun.IDB, user *userdb.User) (bool, error) {
	f.record("CreateIfAbsent")
	if f.CreateIfAbsentFunc != nil {
		return f.CreateIfAbsentFunc(ctx, db, user)
	}
	return true, nil
}

func (f *FakeUserRepository) UpdateStanding(ctx context.Context, db bun.IDB, uid string, standing userdb.StandingUpdate) error {
	f.record("UpdateStanding")
	if f.UpdateStandingFunc != nil {
		return f.UpdateStandingFunc(ctx, db, uid, standing)
	}
	return nil
}

func (f *FakeUserRepository) UpdateProfile(ctx context.Context, db bun.IDB, uid string, update userdb.ProfileUpdate) error {
	f.record("UpdateProfile")
	if f.UpdateProfileFunc != nil {
		return f.UpdateProfileFunc(ctx, db, uid, update)
	}
	return nil
}

func (f *FakeUserRepository) IncrementBalance(ctx context.Context, db bun.IDB, uid string, amount int64) (int64, error) {
	f.record("IncrementBalance")
	if f.IncrementBalanceFunc != nil {
		return f.IncrementBalanceFunc(ctx, db, uid, amount)
	}
	return amount, nil
}

func (f *FakeUserRepository) TopByLevel(ctx context.Context, db bun.IDB, limit int) ([]userdb.User, error) {
	f.record("TopByLevel")
	if f.TopByLevelFunc != nil {
		return f.TopByLevelFunc(ctx, db, limit)
	}
	return nil, nil
}

var _ userdb.Repository = (*FakeUserRepository)(nil)
