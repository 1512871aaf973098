package matchintegrationtests

import (
	"errors"
	"sync"
	"testing"

	matchservice "github.com/AhmedMHR/PadelPal/app/modules/match/application"
	matchdomain "github.com/AhmedMHR/PadelPal/app/modules/match/domain"
	"github.com/AhmedMHR/PadelPal/app/shared/results"
	"github.com/AhmedMHR/PadelPal/integration_tests/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrentJoinsNeverOverfill(t *testing.T) {
	deps := setup(t, 10, 2.0)
	host := deps.Users[0]

	match, err := deps.Service.CreateMatch(deps.Ctx, host.UID, matchservice.CreateMatchInput{
		VenueID:   deps.Venue.ID,
		Date:      testutils.FutureDate(3),
		StartTime: "18:30",
		Type:      matchdomain.TypeOpen,
		Level:     2.0,
	})
	require.NoError(t, err)

	joiners := deps.Users[1:]
	errs := make([]error, len(joiners))
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i, u := range joiners {
		wg.Add(1)
		go func(i int, uid string) {
			defer wg.Done()
			<-start
			_, errs[i] = deps.Service.JoinMatch(deps.Ctx, match.ID, uid)
		}(i, u.UID)
	}
	close(start)
	wg.Wait()

	joined := 0
	for _, err := range errs {
		switch {
		case err == nil:
			joined++
		case errors.Is(err, results.ErrFull), errors.Is(err, results.ErrTransactionConflict):
		default:
			t.Errorf("unexpected join error: %v", err)
		}
	}
	assert.Equal(t, matchdomain.MaxPlayers-1, joined)

	stored, err := deps.Matches.GetByID(deps.Ctx, nil, match.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Players, matchdomain.MaxPlayers)
	assert.Equal(t, matchdomain.StatusFull, stored.Status)
	assert.Equal(t, host.UID, stored.Players[0])
}

func TestSlotCannotBeDoubleBooked(t *testing.T) {
	deps := setup(t, 2, 1.0)
	input := matchservice.CreateMatchInput{
		VenueID:   deps.Venue.ID,
		Date:      testutils.FutureDate(4),
		StartTime: "20:00",
		Type:      matchdomain.TypePrivate,
	}

	_, err := deps.Service.CreateMatch(deps.Ctx, deps.Users[0].UID, input)
	require.NoError(t, err)

	_, err = deps.Service.CreateMatch(deps.Ctx, deps.Users[1].UID, input)
	require.Error(t, err)
	assert.Equal(t, results.KindConflict, results.KindOf(err))
}

func TestLeaveReopensFullMatch(t *testing.T) {
	deps := setup(t, 4, 1.0)
	players := uids(deps.Users)

	match, err := deps.Service.CreateMatch(deps.Ctx, players[0], matchservice.CreateMatchInput{
		VenueID:   deps.Venue.ID,
		Date:      testutils.FutureDate(5),
		StartTime: "11:00",
		Type:      matchdomain.TypeOpen,
	})
	require.NoError(t, err)
	for _, uid := range players[1:] {
		_, err := deps.Service.JoinMatch(deps.Ctx, match.ID, uid)
		require.NoError(t, err)
	}

	left, err := deps.Service.LeaveMatch(deps.Ctx, match.ID, players[3])
	require.NoError(t, err)
	assert.Equal(t, matchdomain.StatusOpen, left.Status)
	assert.Equal(t, players[:3], left.Players)

	open, err := deps.Service.ListOpenMatches(deps.Ctx)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, match.ID, open[0].ID)
}
