package matchservice

import (
	"io"
	"log/slog"
	"testing"
	"time"

	matchdomain "github.com/AhmedMHR/PadelPal/app/modules/match/domain"
	matchdb "github.com/AhmedMHR/PadelPal/app/modules/match/infrastructure/repositories"
	userdb "github.com/AhmedMHR/PadelPal/app/modules/user/infrastructure/repositories"
	venuedb "github.com/AhmedMHR/PadelPal/app/modules/venue/infrastructure/repositories"
	"github.com/AhmedMHR/PadelPal/app/observability/metrics"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace/noop"
)

var fixedNow = time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, matches *FakeMatchRepo, users *FakeUserRepo, venues *FakeVenueRepo) *MatchService {
	t.Helper()
	if matches == nil {
		matches = NewFakeMatchRepo()
	}
	if users == nil {
		users = NewFakeUserRepo()
	}
	if venues == nil {
		venues = NewFakeVenueRepo()
	}
	s := NewMatchService(
		matches,
		users,
		venues,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics.NewNoop(),
		noop.NewTracerProvider().Tracer("test"),
		nil,
	)
	s.now = func() time.Time { return fixedNow }
	return s
}

func newMatch(host string, players ...string) matchdb.Match {
	return matchdb.Match{
		ID:             uuid.New(),
		VenueID:        "smash-club",
		CourtName:      DefaultCourtName,
		Date:           "2026-10-20",
		StartTime:      "18:00",
		Type:           matchdomain.TypeOpen,
		HostID:         host,
		Players:        append([]string{host}, players...),
		Level:          1.0,
		PricePerPlayer: 150,
		Status:         matchdomain.StatusForRoster(append([]string{host}, players...)),
	}
}

func newProfile(uid string, level float64, wins, played int) userdb.User {
	return userdb.User{UID: uid, Level: level, Wins: wins, MatchesPlayed: played, Balance: 2000}
}

func testVenue() venuedb.Venue {
	return venuedb.Venue{ID: "smash-club", Name: "Smash Club", PricePerHour: 600, Courts: 4}
}
