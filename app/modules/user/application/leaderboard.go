package userservice

import (
	"context"
	"fmt"

	userdomain "github.com/AhmedMHR/PadelPal/app/modules/user/domain"
	"github.com/AhmedMHR/PadelPal/app/shared/operations"
	"github.com/uptrace/bun"
)

// Leaderboard returns the top players by level.
func (s *UserService) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry(), ctx, "Leaderboard", "global", func(ctx context.Context) (operations.Result[[]LeaderboardEntry], error) {
		users, err := s.repo.TopByLevel(ctx, s.readDB(), userdomain.LeaderboardSize)
		if err != nil {
			return operations.Result[[]LeaderboardEntry]{}, fmt.Errorf("failed to load leaderboard: %w", err)
		}

		entries := make([]LeaderboardEntry, 0, len(users))
		for i, u := range users {
			entries = append(entries, LeaderboardEntry{
				Rank:          i + 1,
				UserID:        u.UID,
				DisplayName:   userdomain.DisplayName(u.DisplayName, u.Email),
				PhotoURL:      u.PhotoURL,
				Level:         u.Level,
				Wins:          u.Wins,
				MatchesPlayed: u.MatchesPlayed,
				WinRate:       userdomain.WinRate(u.Wins, u.MatchesPlayed),
			})
		}
		return success(entries), nil
	}))
}

func (s *UserService) readDB() bun.IDB {
	if s.db == nil {
		return nil
	}
	return s.db
}
