package matchservice

import (
	"context"
	"fmt"

	matchdomain "github.com/AhmedMHR/PadelPal/app/modules/match/domain"
	matchdb "github.com/AhmedMHR/PadelPal/app/modules/match/infrastructure/repositories"
	"github.com/AhmedMHR/PadelPal/app/shared/operations"
	"github.com/uptrace/bun"
)

// ListOpenMatches returns open matches from today onwards, earliest first.
// Reads are not transactional.
func (s *MatchService) ListOpenMatches(ctx context.Context) ([]matchdb.Match, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry(), ctx, "ListOpenMatches", "directory", func(ctx context.Context) (operations.Result[[]matchdb.Match], error) {
		matches, err := s.repo.ListOpen(ctx, s.readDB(), matchdomain.Today(s.now()), OpenMatchesPageSize)
		if err != nil {
			return operations.Result[[]matchdb.Match]{}, fmt.Errorf("failed to list open matches: %w", err)
		}
		return success(nonNil(matches)), nil
	}))
}

// ListUserMatches returns the matches userID played in, latest first.
func (s *MatchService) ListUserMatches(ctx context.Context, userID string) ([]matchdb.Match, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry(), ctx, "ListUserMatches", userID, func(ctx context.Context) (operations.Result[[]matchdb.Match], error) {
		matches, err := s.repo.ListByPlayer(ctx, s.readDB(), userID)
		if err != nil {
			return operations.Result[[]matchdb.Match]{}, fmt.Errorf("failed to list user matches: %w", err)
		}
		return success(nonNil(matches)), nil
	}))
}

// readDB returns the connection for snapshot reads, or nil so repositories
// fall back to their own handle.
func (s *MatchService) readDB() bun.IDB {
	if s.db == nil {
		return nil
	}
	return s.db
}

func nonNil(matches []matchdb.Match) []matchdb.Match {
	if matches == nil {
		return []matchdb.Match{}
	}
	return matches
}
