package matchservice

import (
	"context"
	"slices"
	"sort"
	"sync"

	matchdomain "github.com/AhmedMHR/PadelPal/app/modules/match/domain"
	matchdb "github.com/AhmedMHR/PadelPal/app/modules/match/infrastructure/repositories"
	userdb "github.com/AhmedMHR/PadelPal/app/modules/user/infrastructure/repositories"
	venuedb "github.com/AhmedMHR/PadelPal/app/modules/venue/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Match Repo
// ------------------------

// FakeMatchRepo is an in-memory matchdb.Repository. Any Func field that is set
// replaces the in-memory behaviour for that method.
type FakeMatchRepo struct {
	mu       sync.Mutex
	trace    []string
	matches  map[uuid.UUID]matchdb.Match
	messages []matchdb.Message

	CreateFunc        func(ctx context.Context, db bun.IDB, match *matchdb.Match) error
	GetForUpdateFunc  func(ctx context.Context, db bun.IDB, matchID uuid.UUID) (*matchdb.Match, error)
	UpdateRosterFunc  func(ctx context.Context, db bun.IDB, matchID uuid.UUID, players []string, status matchdomain.Status) error
	UpdateResultFunc  func(ctx context.Context, db bun.IDB, matchID uuid.UUID, status matchdomain.Status, score string, winners []string) error
	ListOpenFunc      func(ctx context.Context, db bun.IDB, fromDate string, limit int) ([]matchdb.Match, error)
	BookedSlotsFunc   func(ctx context.Context, db bun.IDB, venueID, date string) ([]string, error)
	CreateMessageFunc func(ctx context.Context, db bun.IDB, msg *matchdb.Message) error
}

func NewFakeMatchRepo(seed ...matchdb.Match) *FakeMatchRepo {
	f := &FakeMatchRepo{trace: []string{}, matches: map[uuid.UUID]matchdb.Match{}}
	for _, m := range seed {
		f.matches[m.ID] = cloneMatch(m)
	}
	return f
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeMatchRepo) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

// Stored returns a copy of the persisted match.
func (f *FakeMatchRepo) Stored(id uuid.UUID) (matchdb.Match, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.matches[id]
	return cloneMatch(m), ok
}

func (f *FakeMatchRepo) record(step string) {
	f.mu.Lock()
	f.trace = append(f.trace, step)
	f.mu.Unlock()
}

func (f *FakeMatchRepo) Create(ctx context.Context, db bun.IDB, match *matchdb.Match) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, match)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.matches[match.ID] = cloneMatch(*match)
	return nil
}

func (f *FakeMatchRepo) GetByID(ctx context.Context, db bun.IDB, matchID uuid.UUID) (*matchdb.Match, error) {
	f.record("GetByID")
	return f.get(matchID)
}

func (f *FakeMatchRepo) GetForUpdate(ctx context.Context, db bun.IDB, matchID uuid.UUID) (*matchdb.Match, error) {
	f.record("GetForUpdate")
	if f.GetForUpdateFunc != nil {
		return f.GetForUpdateFunc(ctx, db, matchID)
	}
	return f.get(matchID)
}

func (f *FakeMatchRepo) get(matchID uuid.UUID) (*matchdb.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.matches[matchID]
	if !ok {
		return nil, matchdb.ErrNotFound
	}
	c := cloneMatch(m)
	return &c, nil
}

func (f *FakeMatchRepo) UpdateRoster(ctx context.Context, db bun.IDB, matchID uuid.UUID, players []string, status matchdomain.Status) error {
	f.record("UpdateRoster")
	if f.UpdateRosterFunc != nil {
		return f.UpdateRosterFunc(ctx, db, matchID, players, status)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.matches[matchID]
	if !ok {
		return matchdb.ErrNoRowsAffected
	}
	m.Players = slices.Clone(players)
	m.Status = status
	f.matches[matchID] = m
	return nil
}

func (f *FakeMatchRepo) UpdateResult(ctx context.Context, db bun.IDB, matchID uuid.UUID, status matchdomain.Status, score string, winners []string) error {
	f.record("UpdateResult")
	if f.UpdateResultFunc != nil {
		return f.UpdateResultFunc(ctx, db, matchID, status, score, winners)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.matches[matchID]
	if !ok {
		return matchdb.ErrNoRowsAffected
	}
	m.Status = status
	m.Score = &score
	m.Winners = slices.Clone(winners)
	f.matches[matchID] = m
	return nil
}

func (f *FakeMatchRepo) Delete(ctx context.Context, db bun.IDB, matchID uuid.UUID) error {
	f.record("Delete")
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.matches[matchID]; !ok {
		return matchdb.ErrNotFound
	}
	delete(f.matches, matchID)
	return nil
}

func (f *FakeMatchRepo) ListOpen(ctx context.Context, db bun.IDB, fromDate string, limit int) ([]matchdb.Match, error) {
	f.record("ListOpen")
	if f.ListOpenFunc != nil {
		return f.ListOpenFunc(ctx, db, fromDate, limit)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []matchdb.Match
	for _, m := range f.matches {
		if m.Type == matchdomain.TypeOpen && m.Status == matchdomain.StatusOpen && m.Date >= fromDate {
			out = append(out, cloneMatch(m))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *FakeMatchRepo) ListByPlayer(ctx context.Context, db bun.IDB, userID string) ([]matchdb.Match, error) {
	f.record("ListByPlayer")
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []matchdb.Match
	for _, m := range f.matches {
		if slices.Contains(m.Players, userID) {
			out = append(out, cloneMatch(m))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (f *FakeMatchRepo) CreateMessage(ctx context.Context, db bun.IDB, msg *matchdb.Message) error {
	f.record("CreateMessage")
	if f.CreateMessageFunc != nil {
		return f.CreateMessageFunc(ctx, db, msg)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	f.messages = append(f.messages, *msg)
	return nil
}

// ListMessages keeps insertion order, which matches created_at order here.
func (f *FakeMatchRepo) ListMessages(ctx context.Context, db bun.IDB, matchID uuid.UUID, limit int) ([]matchdb.Message, error) {
	f.record("ListMessages")
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []matchdb.Message
	for _, m := range f.messages {
		if m.MatchID == matchID {
			out = append(out, m)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *FakeMatchRepo) BookedSlots(ctx context.Context, db bun.IDB, venueID, date string) ([]string, error) {
	f.record("BookedSlots")
	if f.BookedSlotsFunc != nil {
		return f.BookedSlotsFunc(ctx, db, venueID, date)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, m := range f.matches {
		if m.VenueID == venueID && m.Date == date {
			out = append(out, m.StartTime)
		}
	}
	sort.Strings(out)
	return out, nil
}

func cloneMatch(m matchdb.Match) matchdb.Match {
	m.Players = slices.Clone(m.Players)
	m.Winners = slices.Clone(m.Winners)
	if m.Score != nil {
		s := *m.Score
		m.Score = &s
	}
	return m
}

var _ matchdb.Repository = (*FakeMatchRepo)(nil)

// ------------------------
// Fake User Repo
// ------------------------

// FakeUserRepo is an in-memory userdb.Repository holding player profiles.
type FakeUserRepo struct {
	mu       sync.Mutex
	trace    []string
	profiles map[string]userdb.User

	GetManyForUpdateFunc func(ctx context.Context, db bun.IDB, uids []string) ([]userdb.User, error)
	UpdateStandingFunc   func(ctx context.Context, db bun.IDB, uid string, standing userdb.StandingUpdate) error
}

func NewFakeUserRepo(seed ...userdb.User) *FakeUserRepo {
	f := &FakeUserRepo{trace: []string{}, profiles: map[string]userdb.User{}}
	for _, u := range seed {
		f.profiles[u.UID] = u
	}
	return f
}

func (f *FakeUserRepo) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

// Profile returns the stored profile for uid.
func (f *FakeUserRepo) Profile(uid string) (userdb.User, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.profiles[uid]
	return u, ok
}

func (f *FakeUserRepo) record(step string) {
	f.mu.Lock()
	f.trace = append(f.trace, step)
	f.mu.Unlock()
}

func (f *FakeUserRepo) GetByUID(ctx context.Context, db bun.IDB, uid string) (*userdb.User, error) {
	f.record("GetByUID")
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.profiles[uid]
	if !ok {
		return nil, userdb.ErrNotFound
	}
	return &u, nil
}

func (f *FakeUserRepo) GetManyForUpdate(ctx context.Context, db bun.IDB, uids []string) ([]userdb.User, error) {
	f.record("GetManyForUpdate")
	if f.GetManyForUpdateFunc != nil {
		return f.GetManyForUpdateFunc(ctx, db, uids)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	sorted := slices.Clone(uids)
	slices.Sort(sorted)
	var out []userdb.User
	for _, uid := range slices.Compact(sorted) {
		if u, ok := f.profiles[uid]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *FakeUserRepo) CreateIfAbsent(ctx context.Context, db bun.IDB, user *userdb.User) (bool, error) {
	f.record("CreateIfAbsent")
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.profiles[user.UID]; ok {
		return false, nil
	}
	f.profiles[user.UID] = *user
	return true, nil
}

func (f *FakeUserRepo) UpdateStanding(ctx context.Context, db bun.IDB, uid string, standing userdb.StandingUpdate) error {
	f.record("UpdateStanding")
	if f.UpdateStandingFunc != nil {
		return f.UpdateStandingFunc(ctx, db, uid, standing)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.profiles[uid]
	if !ok {
		return userdb.ErrNoRowsAffected
	}
	u.Level = standing.Level
	u.Wins = standing.Wins
	u.MatchesPlayed = standing.MatchesPlayed
	f.profiles[uid] = u
	return nil
}

func (f *FakeUserRepo) UpdateProfile(ctx context.Context, db bun.IDB, uid string, update userdb.ProfileUpdate) error {
	f.record("UpdateProfile")
	return nil
}

func (f *FakeUserRepo) IncrementBalance(ctx context.Context, db bun.IDB, uid string, amount int64) (int64, error) {
	f.record("IncrementBalance")
	return 0, nil
}

func (f *FakeUserRepo) TopByLevel(ctx context.Context, db bun.IDB, limit int) ([]userdb.User, error) {
	f.record("TopByLevel")
	return nil, nil
}

var _ userdb.Repository = (*FakeUserRepo)(nil)

// ------------------------
// Fake Venue Repo
// ------------------------

type FakeVenueRepo struct {
	trace  []string
	venues map[string]venuedb.Venue

	GetByIDFunc func(ctx context.Context, db bun.IDB, venueID string) (*venuedb.Venue, error)
}

func NewFakeVenueRepo(seed ...venuedb.Venue) *FakeVenueRepo {
	f := &FakeVenueRepo{trace: []string{}, venues: map[string]venuedb.Venue{}}
	for _, v := range seed {
		f.venues[v.ID] = v
	}
	return f
}

func (f *FakeVenueRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeVenueRepo) Create(ctx context.Context, db bun.IDB, venue *venuedb.Venue) error {
	f.trace = append(f.trace, "Create")
	f.venues[venue.ID] = *venue
	return nil
}

func (f *FakeVenueRepo) GetByID(ctx context.Context, db bun.IDB, venueID string) (*venuedb.Venue, error) {
	f.trace = append(f.trace, "GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, venueID)
	}
	v, ok := f.venues[venueID]
	if !ok {
		return nil, venuedb.ErrNotFound
	}
	return &v, nil
}

func (f *FakeVenueRepo) List(ctx context.Context, db bun.IDB) ([]venuedb.Venue, error) {
	f.trace = append(f.trace, "List")
	var out []venuedb.Venue
	for _, v := range f.venues {
		out = append(out, v)
	}
	return out, nil
}

var _ venuedb.Repository = (*FakeVenueRepo)(nil)
