package matchservice

import (
	"context"
	"fmt"
	"slices"

	matchdomain "github.com/AhmedMHR/PadelPal/app/modules/match/domain"
	"github.com/AhmedMHR/PadelPal/app/shared/operations"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// CorrectScore replaces the result of a finished match. Each player's old
// contribution is reversed and the new one applied as a single delta, so
// reapplying the same result changes nothing. Matches played is untouched.
// Only a player of the match may correct it.
func (s *MatchService) CorrectScore(ctx context.Context, matchID uuid.UUID, userID, score string, winnerIDs []string) (*LedgerResult, error) {
	return run(s, ctx, "CorrectScore", matchID.String(), func(ctx context.Context, db bun.IDB) (operations.Result[*LedgerResult], error) {
		match, fail, err := s.lockMatch(ctx, db, matchID)
		if err != nil {
			return operations.Result[*LedgerResult]{}, err
		}
		if fail != nil {
			return failure[*LedgerResult](fail), nil
		}
		if !match.HasPlayer(userID) {
			return failure[*LedgerResult](errNotPlayer("correct the score")), nil
		}
		if !match.Status.IsFinished() {
			return failure[*LedgerResult](errMatchNotFinished()), nil
		}

		score, winners, fail := validateResult(match, score, winnerIDs)
		if fail != nil {
			return failure[*LedgerResult](fail), nil
		}

		oldWinners := match.Winners
		ledger, err := s.applyLedger(ctx, db, match, winners, func(uid string) matchdomain.Delta {
			return matchdomain.CorrectionDelta(slices.Contains(oldWinners, uid), slices.Contains(winners, uid))
		}, 0)
		if err != nil {
			return operations.Result[*LedgerResult]{}, err
		}

		if err := s.repo.UpdateResult(ctx, db, matchID, matchdomain.StatusFinished, score, winners); err != nil {
			return operations.Result[*LedgerResult]{}, fmt.Errorf("failed to write corrected result: %w", err)
		}
		match.Score = &score
		match.Winners = winners
		ledger.Match = match

		return success(ledger), nil
	})
}
