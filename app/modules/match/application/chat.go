package matchservice

import (
	"context"
	"errors"
	"fmt"

	matchdomain "github.com/AhmedMHR/PadelPal/app/modules/match/domain"
	matchdb "github.com/AhmedMHR/PadelPal/app/modules/match/infrastructure/repositories"
	userdomain "github.com/AhmedMHR/PadelPal/app/modules/user/domain"
	"github.com/AhmedMHR/PadelPal/app/shared/attr"
	"github.com/AhmedMHR/PadelPal/app/shared/operations"
	"github.com/AhmedMHR/PadelPal/app/shared/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// PostMessage adds a chat line to a match. Only players of the match may post.
func (s *MatchService) PostMessage(ctx context.Context, matchID uuid.UUID, sender Sender, text string) (*matchdb.Message, error) {
	return run(s, ctx, "PostMessage", matchID.String(), func(ctx context.Context, db bun.IDB) (operations.Result[*matchdb.Message], error) {
		match, fail, err := s.getMatch(ctx, db, matchID)
		if err != nil {
			return operations.Result[*matchdb.Message]{}, err
		}
		if fail != nil {
			return failure[*matchdb.Message](fail), nil
		}
		if !match.HasPlayer(sender.UserID) {
			return failure[*matchdb.Message](errNotPlayer("chat here")), nil
		}

		body, err := matchdomain.NormalizeMessage(text)
		switch {
		case errors.Is(err, matchdomain.ErrEmptyMessage):
			return failure[*matchdb.Message](errValidation("Please type a message")), nil
		case errors.Is(err, matchdomain.ErrMessageTooLong):
			return failure[*matchdb.Message](errValidation("Messages are limited to %d characters", matchdomain.MaxMessageLength)), nil
		case err != nil:
			return operations.Result[*matchdb.Message]{}, err
		}

		msg := &matchdb.Message{
			MatchID:    matchID,
			SenderID:   sender.UserID,
			SenderName: userdomain.DisplayName(&sender.DisplayName, &sender.Email),
			Text:       body,
			CreatedAt:  s.now().UTC(),
		}
		if err := s.repo.CreateMessage(ctx, db, msg); err != nil {
			return operations.Result[*matchdb.Message]{}, fmt.Errorf("failed to store message: %w", err)
		}

		s.logger.InfoContext(ctx, "Chat message posted",
			attr.ExtractCorrelationID(ctx),
			attr.String("match_id", matchID.String()),
			attr.String("user_id", sender.UserID),
		)
		return success(msg), nil
	})
}

// ListMessages returns the chat of a match, oldest first. Only players of the
// match may read it.
func (s *MatchService) ListMessages(ctx context.Context, matchID uuid.UUID, userID string) ([]matchdb.Message, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry(), ctx, "ListMessages", matchID.String(), func(ctx context.Context) (operations.Result[[]matchdb.Message], error) {
		match, fail, err := s.getMatch(ctx, s.readDB(), matchID)
		if err != nil {
			return operations.Result[[]matchdb.Message]{}, err
		}
		if fail != nil {
			return failure[[]matchdb.Message](fail), nil
		}
		if !match.HasPlayer(userID) {
			return failure[[]matchdb.Message](errNotPlayer("read this chat")), nil
		}

		messages, err := s.repo.ListMessages(ctx, s.readDB(), matchID, MessagesPageSize)
		if err != nil {
			return operations.Result[[]matchdb.Message]{}, fmt.Errorf("failed to list messages: %w", err)
		}
		if messages == nil {
			messages = []matchdb.Message{}
		}
		return success(messages), nil
	}))
}

// getMatch loads the match without locking it. A missing match is returned
// as a NotFound failure.
func (s *MatchService) getMatch(ctx context.Context, db bun.IDB, matchID uuid.UUID) (*matchdb.Match, *results.DomainError, error) {
	match, err := s.repo.GetByID(ctx, db, matchID)
	if err != nil {
		if errors.Is(err, matchdb.ErrNotFound) {
			return nil, errMatchNotFound(matchID), nil
		}
		return nil, nil, fmt.Errorf("failed to load match: %w", err)
	}
	return match, nil, nil
}
