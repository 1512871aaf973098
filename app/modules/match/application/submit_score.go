package matchservice

import (
	"context"
	"fmt"
	"slices"
	"strings"

	matchdomain "github.com/AhmedMHR/PadelPal/app/modules/match/domain"
	matchdb "github.com/AhmedMHR/PadelPal/app/modules/match/infrastructure/repositories"
	userdb "github.com/AhmedMHR/PadelPal/app/modules/user/infrastructure/repositories"
	"github.com/AhmedMHR/PadelPal/app/shared/attr"
	"github.com/AhmedMHR/PadelPal/app/shared/operations"
	"github.com/AhmedMHR/PadelPal/app/shared/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// SubmitScore records the result of a match and applies the rating model to
// every player. Only a player of the match may submit. The match and all
// player profiles are locked before the first write, and everything commits
// together.
func (s *MatchService) SubmitScore(ctx context.Context, matchID uuid.UUID, userID, score string, winnerIDs []string) (*LedgerResult, error) {
	return run(s, ctx, "SubmitScore", matchID.String(), func(ctx context.Context, db bun.IDB) (operations.Result[*LedgerResult], error) {
		match, fail, err := s.lockMatch(ctx, db, matchID)
		if err != nil {
			return operations.Result[*LedgerResult]{}, err
		}
		if fail != nil {
			return failure[*LedgerResult](fail), nil
		}
		if !match.HasPlayer(userID) {
			return failure[*LedgerResult](errNotPlayer("submit the score")), nil
		}
		if match.Status.IsFinished() {
			return failure[*LedgerResult](results.NewError(results.KindInvalidState,
				"This match already has a result, correct the score instead")), nil
		}

		score, winners, fail := validateResult(match, score, winnerIDs)
		if fail != nil {
			return failure[*LedgerResult](fail), nil
		}

		ledger, err := s.applyLedger(ctx, db, match, winners, func(uid string) matchdomain.Delta {
			return matchdomain.ComputeDelta(slices.Contains(winners, uid))
		}, 1)
		if err != nil {
			return operations.Result[*LedgerResult]{}, err
		}

		if !matchdomain.CanTransition(match.Status, matchdomain.StatusFinished) {
			return operations.Result[*LedgerResult]{}, fmt.Errorf("illegal status transition %s -> %s", match.Status, matchdomain.StatusFinished)
		}
		if err := s.repo.UpdateResult(ctx, db, matchID, matchdomain.StatusFinished, score, winners); err != nil {
			return operations.Result[*LedgerResult]{}, fmt.Errorf("failed to write match result: %w", err)
		}
		match.Status = matchdomain.StatusFinished
		match.Score = &score
		match.Winners = winners
		ledger.Match = match

		return success(ledger), nil
	})
}

// validateResult trims the score and deduplicates the winners. Winners must be
// players of the match.
func validateResult(match *matchdb.Match, score string, winnerIDs []string) (string, []string, *results.DomainError) {
	score = strings.TrimSpace(score)
	if score == "" {
		return "", nil, errValidation("A score is required")
	}
	winners := matchdomain.NormalizeWinners(winnerIDs)
	if missing := matchdomain.MissingFromRoster(match.Players, winners); len(missing) > 0 {
		return "", nil, errValidation("Winners must be players of this match: %s", strings.Join(missing, ", "))
	}
	return score, winners, nil
}

// applyLedger locks every player profile, applies deltaFor to each one found
// and writes the new standings. Profiles that do not exist are skipped.
// playedIncrement is added to matches played.
func (s *MatchService) applyLedger(
	ctx context.Context,
	db bun.IDB,
	match *matchdb.Match,
	winners []string,
	deltaFor func(uid string) matchdomain.Delta,
	playedIncrement int,
) (*LedgerResult, error) {
	profiles, err := s.profiles.GetManyForUpdate(ctx, db, match.Players)
	if err != nil {
		return nil, fmt.Errorf("failed to load player profiles: %w", err)
	}

	byUID := make(map[string]userdb.User, len(profiles))
	for _, p := range profiles {
		byUID[p.UID] = p
	}

	ledger := &LedgerResult{Changes: make([]PlayerChange, 0, len(match.Players))}
	for _, uid := range match.Players {
		profile, ok := byUID[uid]
		if !ok {
			s.logger.WarnContext(ctx, "Skipping player without profile",
				attr.ExtractCorrelationID(ctx),
				attr.String("match_id", match.ID.String()),
				attr.String("user_id", uid),
			)
			ledger.Skipped = append(ledger.Skipped, uid)
			continue
		}

		delta := deltaFor(uid)
		next := matchdomain.Apply(matchdomain.Standing{Level: profile.Level, Wins: profile.Wins}, delta)

		if err := s.profiles.UpdateStanding(ctx, db, uid, userdb.StandingUpdate{
			Level:         next.Level,
			Wins:          next.Wins,
			MatchesPlayed: profile.MatchesPlayed + playedIncrement,
		}); err != nil {
			return nil, fmt.Errorf("failed to update standing for %s: %w", uid, err)
		}

		ledger.Changes = append(ledger.Changes, PlayerChange{
			UserID:      uid,
			Winner:      slices.Contains(winners, uid),
			LevelBefore: profile.Level,
			LevelAfter:  next.Level,
			WinsBefore:  profile.Wins,
			WinsAfter:   next.Wins,
		})
	}
	return ledger, nil
}
