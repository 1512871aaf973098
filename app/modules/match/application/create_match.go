package matchservice

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	matchdomain "github.com/AhmedMHR/PadelPal/app/modules/match/domain"
	matchdb "github.com/AhmedMHR/PadelPal/app/modules/match/infrastructure/repositories"
	venuedb "github.com/AhmedMHR/PadelPal/app/modules/venue/infrastructure/repositories"
	"github.com/AhmedMHR/PadelPal/app/shared/operations"
	"github.com/AhmedMHR/PadelPal/app/shared/pgerr"
	"github.com/AhmedMHR/PadelPal/app/shared/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

const (
	minMatchLevel = 1.0
	maxMatchLevel = 7.0
)

// CreateMatch books a free slot at a venue and opens a match with the host as
// its only player.
func (s *MatchService) CreateMatch(ctx context.Context, hostID string, input CreateMatchInput) (*matchdb.Match, error) {
	return run(s, ctx, "CreateMatch", hostID, func(ctx context.Context, db bun.IDB) (operations.Result[*matchdb.Match], error) {
		if hostID == "" {
			return failure[*matchdb.Match](errValidation("A host is required to create a match")), nil
		}
		if !input.Type.Valid() {
			return failure[*matchdb.Match](errValidation("Match type must be %q or %q", matchdomain.TypePrivate, matchdomain.TypeOpen)), nil
		}
		if input.Level == 0 {
			input.Level = minMatchLevel
		}
		if input.Level < minMatchLevel || input.Level > maxMatchLevel {
			return failure[*matchdb.Match](errValidation("Level must be between %.1f and %.1f", minMatchLevel, maxMatchLevel)), nil
		}

		match := &matchdb.Match{
			ID:        uuid.New(),
			CourtName: strings.TrimSpace(input.CourtName),
			Type:      input.Type,
			HostID:    hostID,
			Players:   []string{hostID},
			Level:     matchdomain.RoundLevel(input.Level),
			Status:    matchdomain.StatusOpen,
		}

		fail, err := s.bookSlot(ctx, db, match, input.VenueID, input.Date, input.StartTime)
		if err != nil {
			return operations.Result[*matchdb.Match]{}, err
		}
		if fail != nil {
			return failure[*matchdb.Match](fail), nil
		}
		return success(match), nil
	})
}

// CreateChallengeMatch creates the private match agreed through a challenge.
// Both players are on the roster from the start.
func (s *MatchService) CreateChallengeMatch(ctx context.Context, fromUserID, toUserID string, input ChallengeMatchInput) (*matchdb.Match, error) {
	return run(s, ctx, "CreateChallengeMatch", fromUserID, func(ctx context.Context, db bun.IDB) (operations.Result[*matchdb.Match], error) {
		if fromUserID == "" || toUserID == "" || fromUserID == toUserID {
			return failure[*matchdb.Match](errValidation("A challenge needs two different players")), nil
		}

		match := &matchdb.Match{
			ID:      uuid.New(),
			Type:    matchdomain.TypePrivate,
			HostID:  fromUserID,
			Players: []string{fromUserID, toUserID},
			Level:   matchdomain.LevelFloor,
			Status:  matchdomain.StatusOpen,
		}

		fail, err := s.bookSlot(ctx, db, match, input.VenueID, input.Date, input.StartTime)
		if err != nil {
			return operations.Result[*matchdb.Match]{}, err
		}
		if fail != nil {
			return failure[*matchdb.Match](fail), nil
		}
		return success(match), nil
	})
}

// bookSlot validates the requested slot, prices the match from the venue and
// inserts it. A rejected slot is returned as a DomainError.
func (s *MatchService) bookSlot(ctx context.Context, db bun.IDB, match *matchdb.Match, venueID, date, startTime string) (*results.DomainError, error) {
	if venueID == "" {
		return errValidation("A venue is required"), nil
	}
	day, err := matchdomain.ParseDate(date)
	if err != nil {
		return errValidation("Date must use the YYYY-MM-DD format"), nil
	}
	if day.Format(matchdomain.DateLayout) < matchdomain.Today(s.now()) {
		return errValidation("You cannot book a date in the past"), nil
	}
	if !matchdomain.IsValidSlot(startTime) {
		return errValidation("%s is not a bookable start time", startTime), nil
	}

	venue, err := s.venues.GetByID(ctx, db, venueID)
	if err != nil {
		if errors.Is(err, venuedb.ErrNotFound) {
			return results.NewError(results.KindNotFound, "Venue %s was not found", venueID), nil
		}
		return nil, fmt.Errorf("failed to load venue: %w", err)
	}

	booked, err := s.repo.BookedSlots(ctx, db, venueID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load booked slots: %w", err)
	}
	if slices.Contains(booked, startTime) {
		return errSlotTaken(startTime), nil
	}

	match.VenueID = venue.ID
	match.Date = date
	match.StartTime = startTime
	match.PricePerPlayer = venue.PricePerHour / matchdomain.MaxPlayers
	if match.CourtName == "" {
		match.CourtName = DefaultCourtName
	}

	if err := s.repo.Create(ctx, db, match); err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errSlotTaken(startTime), nil
		}
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	return nil, nil
}

// GetMatch returns a single match.
func (s *MatchService) GetMatch(ctx context.Context, matchID uuid.UUID) (*matchdb.Match, error) {
	return run(s, ctx, "GetMatch", matchID.String(), func(ctx context.Context, db bun.IDB) (operations.Result[*matchdb.Match], error) {
		match, err := s.repo.GetByID(ctx, db, matchID)
		if err != nil {
			if errors.Is(err, matchdb.ErrNotFound) {
				return failure[*matchdb.Match](errMatchNotFound(matchID)), nil
			}
			return operations.Result[*matchdb.Match]{}, fmt.Errorf("failed to get match: %w", err)
		}
		return success(match), nil
	})
}

func success[S any](s S) operations.Result[S] {
	return results.SuccessResult[S, *results.DomainError](s)
}

func failure[S any](f *results.DomainError) operations.Result[S] {
	return results.FailureResult[S](f)
}
