package venueservice

import (
	"context"

	matchdb "github.com/AhmedMHR/PadelPal/app/modules/match/infrastructure/repositories"
	venuedb "github.com/AhmedMHR/PadelPal/app/modules/venue/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Venue Repo
// ------------------------

// FakeVenueRepository provides a programmable stub for venuedb.Repository.
type FakeVenueRepository struct {
	trace []string

	CreateFunc  func(ctx context.Context, db bun.IDB, venue *venuedb.Venue) error
	GetByIDFunc func(ctx context.Context, db bun.IDB, venueID string) (*venuedb.Venue, error)
	ListFunc    func(ctx context.Context, db bun.IDB) ([]venuedb.Venue, error)
}

func NewFakeVenueRepository() *FakeVenueRepository {
	return &FakeVenueRepository{trace: []string{}}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeVenueRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeVenueRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeVenueRepository) Create(ctx context.Context, db bun.IDB, venue *venuedb.Venue) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, venue)
	}
	return nil
}

func (f *FakeVenueRepository) GetByID(ctx context.Context, db bun.IDB, venueID string) (*venuedb.Venue, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, venueID)
	}
	return nil, venuedb.ErrNotFound
}

func (f *FakeVenueRepository) List(ctx context.Context, db bun.IDB) ([]venuedb.Venue, error) {
	f.record("List")
	if f.ListFunc != nil {
		return f.ListFunc(ctx, db)
	}
	return nil, nil
}

// ------------------------
// Fake Match Repo
// ------------------------

// FakeMatchRepository only answers BookedSlots. Any other method panics on
// the nil embedded interface.
type FakeMatchRepository struct {
	matchdb.Repository
	trace []string

	BookedSlotsFunc func(ctx context.Context, db bun.IDB, venueID, date string) ([]string, error)
}

func (f *FakeMatchRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeMatchRepository) BookedSlots(ctx context.Context, db bun.IDB, venueID, date string) ([]string, error) {
	f.trace = append(f.trace, "BookedSlots")
	if f.BookedSlotsFunc != nil {
		return f.BookedSlotsFunc(ctx, db, venueID, date)
	}
	return nil, nil
}

var (
	_ venuedb.Repository = (*FakeVenueRepository)(nil)
	_ matchdb.Repository = (*FakeMatchRepository)(nil)
)
