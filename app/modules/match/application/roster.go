package matchservice

import (
	"context"
	"errors"
	"fmt"

	matchdomain "github.com/AhmedMHR/PadelPal/app/modules/match/domain"
	matchdb "github.com/AhmedMHR/PadelPal/app/modules/match/infrastructure/repositories"
	"github.com/AhmedMHR/PadelPal/app/shared/attr"
	"github.com/AhmedMHR/PadelPal/app/shared/operations"
	"github.com/AhmedMHR/PadelPal/app/shared/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// JoinMatch adds userID to the roster. The match row stays locked until the
// transaction commits so concurrent joins cannot overfill it.
func (s *MatchService) JoinMatch(ctx context.Context, matchID uuid.UUID, userID string) (*matchdb.Match, error) {
	return run(s, ctx, "JoinMatch", matchID.String(), func(ctx context.Context, db bun.IDB) (operations.Result[*matchdb.Match], error) {
		match, fail, err := s.lockMatch(ctx, db, matchID)
		if err != nil {
			return operations.Result[*matchdb.Match]{}, err
		}
		if fail != nil {
			return failure[*matchdb.Match](fail), nil
		}
		if match.Status.IsFinished() {
			return failure[*matchdb.Match](errMatchFinished("join it")), nil
		}

		players, status, err := matchdomain.Join(match.Players, userID)
		switch {
		case errors.Is(err, matchdomain.ErrRosterFull):
			return failure[*matchdb.Match](errMatchFull()), nil
		case errors.Is(err, matchdomain.ErrAlreadyMember):
			return failure[*matchdb.Match](errAlreadyMember()), nil
		case err != nil:
			return operations.Result[*matchdb.Match]{}, err
		}

		if err := s.writeRoster(ctx, db, match, players, status); err != nil {
			return operations.Result[*matchdb.Match]{}, err
		}

		s.logger.InfoContext(ctx, "Player joined match",
			attr.ExtractCorrelationID(ctx),
			attr.String("match_id", matchID.String()),
			attr.String("user_id", userID),
			attr.Int("players", len(players)),
			attr.String("status", string(status)),
		)
		return success(match), nil
	})
}

// LeaveMatch removes userID from the roster and reopens the match. Leaving a
// match the user is not part of changes nothing but the status. The host
// stays on the roster until the match is cancelled.
func (s *MatchService) LeaveMatch(ctx context.Context, matchID uuid.UUID, userID string) (*matchdb.Match, error) {
	return run(s, ctx, "LeaveMatch", matchID.String(), func(ctx context.Context, db bun.IDB) (operations.Result[*matchdb.Match], error) {
		match, fail, err := s.lockMatch(ctx, db, matchID)
		if err != nil {
			return operations.Result[*matchdb.Match]{}, err
		}
		if fail != nil {
			return failure[*matchdb.Match](fail), nil
		}
		if match.Status.IsFinished() {
			return failure[*matchdb.Match](errMatchFinished("leave it")), nil
		}
		if match.IsHost(userID) {
			return failure[*matchdb.Match](errHostCannotLeave()), nil
		}

		players, status := matchdomain.Leave(match.Players, userID)
		if err := s.writeRoster(ctx, db, match, players, status); err != nil {
			return operations.Result[*matchdb.Match]{}, err
		}
		return success(match), nil
	})
}

// CancelMatch deletes the match. Only the host may cancel, and a finished
// match keeps its result. The deleted match is returned.
func (s *MatchService) CancelMatch(ctx context.Context, matchID uuid.UUID, userID string) (*matchdb.Match, error) {
	return run(s, ctx, "CancelMatch", matchID.String(), func(ctx context.Context, db bun.IDB) (operations.Result[*matchdb.Match], error) {
		match, fail, err := s.lockMatch(ctx, db, matchID)
		if err != nil {
			return operations.Result[*matchdb.Match]{}, err
		}
		if fail != nil {
			return failure[*matchdb.Match](fail), nil
		}
		if !match.IsHost(userID) {
			return failure[*matchdb.Match](errNotHost()), nil
		}
		if !matchdomain.CanTransition(match.Status, matchdomain.StatusCancelled) {
			return failure[*matchdb.Match](errMatchFinished("cancel it")), nil
		}

		if err := s.repo.Delete(ctx, db, matchID); err != nil {
			if errors.Is(err, matchdb.ErrNotFound) {
				return failure[*matchdb.Match](errMatchNotFound(matchID)), nil
			}
			return operations.Result[*matchdb.Match]{}, fmt.Errorf("failed to delete match: %w", err)
		}
		match.Status = matchdomain.StatusCancelled
		return success(match), nil
	})
}

// lockMatch loads the match with a row lock. A missing match is returned as a
// NotFound failure.
func (s *MatchService) lockMatch(ctx context.Context, db bun.IDB, matchID uuid.UUID) (*matchdb.Match, *results.DomainError, error) {
	match, err := s.repo.GetForUpdate(ctx, db, matchID)
	if err != nil {
		if errors.Is(err, matchdb.ErrNotFound) {
			return nil, errMatchNotFound(matchID), nil
		}
		return nil, nil, fmt.Errorf("failed to load match: %w", err)
	}
	return match, nil, nil
}

func (s *MatchService) writeRoster(ctx context.Context, db bun.IDB, match *matchdb.Match, players []string, status matchdomain.Status) error {
	if !matchdomain.CanTransition(match.Status, status) {
		return fmt.Errorf("illegal status transition %s -> %s", match.Status, status)
	}
	if err := s.repo.UpdateRoster(ctx, db, match.ID, players, status); err != nil {
		return fmt.Errorf("failed to update roster: %w", err)
	}
	match.Players = players
	match.Status = status
	return nil
}
