package notificationservice

import (
	"context"
	"sort"
	"sync"
	"time"

	matchservice "github.com/AhmedMHR/PadelPal/app/modules/match/application"
	matchdb "github.com/AhmedMHR/PadelPal/app/modules/match/infrastructure/repositories"
	notificationdomain "github.com/AhmedMHR/PadelPal/app/modules/notification/domain"
	notificationdb "github.com/AhmedMHR/PadelPal/app/modules/notification/infrastructure/repositories"
	userdb "github.com/AhmedMHR/PadelPal/app/modules/user/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Notification Repo
// ------------------------

// FakeNotificationRepo is an in-memory notificationdb.Repository.
type FakeNotificationRepo struct {
	mu    sync.Mutex
	trace []string
	rows  map[uuid.UUID]notificationdb.Notification

	CreateManyFunc func(ctx context.Context, db bun.IDB, notifications []notificationdb.Notification) error
}

func NewFakeNotificationRepo(seed ...notificationdb.Notification) *FakeNotificationRepo {
	f := &FakeNotificationRepo{trace: []string{}, rows: map[uuid.UUID]notificationdb.Notification{}}
	for _, n := range seed {
		f.rows[n.ID] = n
	}
	return f
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeNotificationRepo) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

// Stored returns the persisted notification.
func (f *FakeNotificationRepo) Stored(id uuid.UUID) (notificationdb.Notification, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.rows[id]
	return n, ok
}

// All returns every stored notification.
func (f *FakeNotificationRepo) All() []notificationdb.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]notificationdb.Notification, 0, len(f.rows))
	for _, n := range f.rows {
		out = append(out, n)
	}
	return out
}

func (f *FakeNotificationRepo) record(step string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trace = append(f.trace, step)
}

func (f *FakeNotificationRepo) CreateMany(ctx context.Context, db bun.IDB, notifications []notificationdb.Notification) error {
	f.record("CreateMany")
	if f.CreateManyFunc != nil {
		return f.CreateManyFunc(ctx, db, notifications)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, n := range notifications {
		if _, exists := f.rows[n.ID]; !exists {
			f.rows[n.ID] = n
		}
	}
	return nil
}

func (f *FakeNotificationRepo) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*notificationdb.Notification, error) {
	f.record("GetByID")
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.rows[id]
	if !ok {
		return nil, notificationdb.ErrNotFound
	}
	return &n, nil
}

func (f *FakeNotificationRepo) ListPending(ctx context.Context, db bun.IDB, userID string) ([]notificationdb.Notification, error) {
	f.record("ListPending")
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []notificationdb.Notification
	for _, n := range f.rows {
		if n.ToUserID == userID && n.Status == notificationdomain.StatusPending {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *FakeNotificationRepo) UpdateStatus(ctx context.Context, db bun.IDB, id uuid.UUID, status notificationdomain.Status) error {
	f.record("UpdateStatus")
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.rows[id]
	if !ok {
		return notificationdb.ErrNoRowsAffected
	}
	n.Status = status
	f.rows[id] = n
	return nil
}

func (f *FakeNotificationRepo) Delete(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	f.record("Delete")
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return notificationdb.ErrNoRowsAffected
	}
	delete(f.rows, id)
	return nil
}

func (f *FakeNotificationRepo) DeletePendingOfTypeBefore(ctx context.Context, db bun.IDB, t notificationdomain.Type, cutoff time.Time) (int, error) {
	f.record("DeletePendingOfTypeBefore")
	f.mu.Lock()
	defer f.mu.Unlock()
	removed := 0
	for id, n := range f.rows {
		if n.Type == t && n.Status == notificationdomain.StatusPending && n.CreatedAt.Before(cutoff) {
			delete(f.rows, id)
			removed++
		}
	}
	return removed, nil
}

// ------------------------
// Fake User Repo
// ------------------------

// FakeUserRepo answers GetByUID from a fixed set of known uids.
type FakeUserRepo struct {
	userdb.Repository
	known map[string]bool

	GetByUIDFunc func(ctx context.Context, db bun.IDB, uid string) (*userdb.User, error)
}

func NewFakeUserRepo(uids ...string) *FakeUserRepo {
	f := &FakeUserRepo{known: map[string]bool{}}
	for _, uid := range uids {
		f.known[uid] = true
	}
	return f
}

func (f *FakeUserRepo) GetByUID(ctx context.Context, db bun.IDB, uid string) (*userdb.User, error) {
	if f.GetByUIDFunc != nil {
		return f.GetByUIDFunc(ctx, db, uid)
	}
	if !f.known[uid] {
		return nil, userdb.ErrNotFound
	}
	return &userdb.User{UID: uid}, nil
}

// ------------------------
// Fake Match Booker
// ------------------------

type bookCall struct {
	From, To string
	Input    matchservice.ChallengeMatchInput
}

// FakeMatchBooker records challenge bookings.
type FakeMatchBooker struct {
	calls []bookCall

	CreateChallengeMatchFunc func(ctx context.Context, fromUserID, toUserID string, input matchservice.ChallengeMatchInput) (*matchdb.Match, error)
}

func (f *FakeMatchBooker) CreateChallengeMatch(ctx context.Context, fromUserID, toUserID string, input matchservice.ChallengeMatchInput) (*matchdb.Match, error) {
	f.calls = append(f.calls, bookCall{From: fromUserID, To: toUserID, Input: input})
	if f.CreateChallengeMatchFunc != nil {
		return f.CreateChallengeMatchFunc(ctx, fromUserID, toUserID, input)
	}
	return &matchdb.Match{ID: uuid.New(), Players: []string{fromUserID, toUserID}}, nil
}

var (
	_ notificationdb.Repository = (*FakeNotificationRepo)(nil)
	_ userdb.Repository         = (*FakeUserRepo)(nil)
	_ MatchBooker               = (*FakeMatchBooker)(nil)
)
