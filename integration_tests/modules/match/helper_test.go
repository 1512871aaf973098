package matchintegrationtests

import (
	"context"
	"testing"

	matchservice "github.com/AhmedMHR/PadelPal/app/modules/match/application"
	matchdb "github.com/AhmedMHR/PadelPal/app/modules/match/infrastructure/repositories"
	userdb "github.com/AhmedMHR/PadelPal/app/modules/user/infrastructure/repositories"
	venuedb "github.com/AhmedMHR/PadelPal/app/modules/venue/infrastructure/repositories"
	"github.com/AhmedMHR/PadelPal/app/observability/metrics"
	"github.com/AhmedMHR/PadelPal/integration_tests/testutils"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

// TestDeps holds what a single test needs.
type TestDeps struct {
	Ctx      context.Context
	Service  matchservice.Service
	Profiles userdb.Repository
	Matches  matchdb.Repository
	Venue    venuedb.Venue
	Users    []userdb.User
}

// setup resets the database and seeds one venue and players profiles at level.
func setup(t *testing.T, players int, level float64) TestDeps {
	t.Helper()
	ctx := testEnv.Ctx
	require.NoError(t, testEnv.ResetDatabase(ctx))

	gen := testutils.NewTestDataGenerator()
	venue := gen.GenerateVenue()
	require.NoError(t, testutils.InsertVenue(ctx, testEnv.DB, &venue))

	users := gen.GenerateUsers(players, level)
	require.NoError(t, testutils.InsertUsers(ctx, testEnv.DB, users))

	profiles := userdb.NewRepository(testEnv.DB)
	matches := matchdb.NewRepository(testEnv.DB)
	service := matchservice.NewMatchService(
		matches,
		profiles,
		venuedb.NewRepository(testEnv.DB),
		testEnv.Logger,
		metrics.NewNoop(),
		noop.NewTracerProvider().Tracer("test"),
		testEnv.DB,
	)

	return TestDeps{
		Ctx:      ctx,
		Service:  service,
		Profiles: profiles,
		Matches:  matches,
		Venue:    venue,
		Users:    users,
	}
}

func uids(users []userdb.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.UID
	}
	return out
}
