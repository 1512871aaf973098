package matchservice

import (
	"context"
	"fmt"
	"testing"

	matchdomain "github.com/AhmedMHR/PadelPal/app/modules/match/domain"
	matchdb "github.com/AhmedMHR/PadelPal/app/modules/match/infrastructure/repositories"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

func TestMatchService_ListOpenMatches(t *testing.T) {
	ctx := context.Background()

	past := newMatch("a")
	past.Date = "2026-10-16"
	private := newMatch("b")
	private.Type = matchdomain.TypePrivate
	full := newMatch("c", "d", "e", "f")
	later := newMatch("g")
	later.Date = "2026-10-25"
	sooner := newMatch("h")
	sooner.Date = "2026-10-17"
	sooner.StartTime = "21:30"

	svc := newTestService(t, NewFakeMatchRepo(past, private, full, later, sooner), nil, nil)

	got, err := svc.ListOpenMatches(ctx)
	require.NoError(t, err)

	var hosts []string
	for _, m := range got {
		hosts = append(hosts, m.HostID)
	}
	if diff := cmp.Diff([]string{"h", "g"}, hosts); diff != "" {
		t.Errorf("open directory mismatch (-want +got):\n%s", diff)
	}
}

func TestMatchService_ListOpenMatchesUsesTodayAndPageSize(t *testing.T) {
	matches := NewFakeMatchRepo()
	var gotFrom string
	var gotLimit int
	matches.ListOpenFunc = func(_ context.Context, _ bun.IDB, fromDate string, limit int) ([]matchdb.Match, error) {
		gotFrom, gotLimit = fromDate, limit
		return nil, nil
	}
	svc := newTestService(t, matches, nil, nil)

	got, err := svc.ListOpenMatches(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, "2026-10-17", gotFrom)
	assert.Equal(t, OpenMatchesPageSize, gotLimit)
}

func TestMatchService_ListOpenMatchesCapsResults(t *testing.T) {
	var seed []matchdb.Match
	for i := 0; i < 25; i++ {
		m := newMatch(fmt.Sprintf("host-%02d", i))
		m.Date = fmt.Sprintf("2026-11-%02d", i+1)
		seed = append(seed, m)
	}
	svc := newTestService(t, NewFakeMatchRepo(seed...), nil, nil)

	got, err := svc.ListOpenMatches(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, OpenMatchesPageSize)
	assert.Equal(t, "2026-11-01", got[0].Date)
}

func TestMatchService_ListUserMatches(t *testing.T) {
	older := newMatch("a", "me")
	older.Date = "2026-09-01"
	newer := newMatch("me")
	newer.Date = "2026-10-30"
	other := newMatch("x", "y")

	svc := newTestService(t, NewFakeMatchRepo(older, newer, other), nil, nil)

	got, err := svc.ListUserMatches(context.Background(), "me")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, newer.ID, got[0].ID)
	assert.Equal(t, older.ID, got[1].ID)
}
