package notificationservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	notificationdomain "github.com/AhmedMHR/PadelPal/app/modules/notification/domain"
	notificationdb "github.com/AhmedMHR/PadelPal/app/modules/notification/infrastructure/repositories"
	userdomain "github.com/AhmedMHR/PadelPal/app/modules/user/domain"
	userdb "github.com/AhmedMHR/PadelPal/app/modules/user/infrastructure/repositories"
	"github.com/AhmedMHR/PadelPal/app/shared/attr"
	"github.com/AhmedMHR/PadelPal/app/shared/operations"
	"github.com/AhmedMHR/PadelPal/app/shared/results"
	"github.com/google/uuid"
)

// SendChallenge invites another player to the proposed slot.
func (s *NotificationService) SendChallenge(ctx context.Context, from userdomain.Identity, input ChallengeInput) (*notificationdb.Notification, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry(), ctx, "SendChallenge", from.UID, func(ctx context.Context) (operations.Result[*notificationdb.Notification], error) {
		switch {
		case input.ToUserID == "":
			return failure[*notificationdb.Notification](results.NewError(results.KindValidation, "Pick a player to challenge")), nil
		case input.ToUserID == from.UID:
			return failure[*notificationdb.Notification](results.NewError(results.KindValidation, "You cannot challenge yourself")), nil
		case strings.TrimSpace(input.VenueID) == "" || input.Date == "" || input.StartTime == "":
			return failure[*notificationdb.Notification](results.NewError(results.KindValidation, "A challenge needs a venue, a date and a start time")), nil
		}

		if _, err := s.profiles.GetByUID(ctx, s.readDB(), input.ToUserID); err != nil {
			if errors.Is(err, userdb.ErrNotFound) {
				return failure[*notificationdb.Notification](results.NewError(results.KindNotFound, "Player %s was not found", input.ToUserID)), nil
			}
			return operations.Result[*notificationdb.Notification]{}, fmt.Errorf("failed to load challenged player: %w", err)
		}

		fromName := userdomain.DisplayName(&from.DisplayName, &from.Email)
		n := notificationdb.Notification{
			ID:         uuid.New(),
			Type:       notificationdomain.TypeChallenge,
			FromUserID: from.UID,
			FromName:   fromName,
			ToUserID:   input.ToUserID,
			Message:    notificationdomain.ChallengeMessage(fromName, input.VenueID, input.Date, input.StartTime),
			Status:     notificationdomain.StatusPending,
			VenueID:    &input.VenueID,
			Date:       &input.Date,
			StartTime:  &input.StartTime,
			CreatedAt:  s.now().UTC(),
		}
		if err := s.repo.CreateMany(ctx, s.readDB(), []notificationdb.Notification{n}); err != nil {
			return operations.Result[*notificationdb.Notification]{}, fmt.Errorf("failed to store challenge: %w", err)
		}

		s.logger.InfoContext(ctx, "Challenge sent",
			attr.ExtractCorrelationID(ctx),
			attr.String("from_user_id", from.UID),
			attr.String("to_user_id", input.ToUserID),
			attr.String("notification_id", n.ID.String()),
		)
		return success(&n), nil
	}))
}

// Respond answers a challenge. Accepting books the proposed slot for both
// players. The notification is removed once answered.
func (s *NotificationService) Respond(ctx context.Context, userID string, notificationID uuid.UUID, accept bool) (*RespondResult, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry(), ctx, "Respond", notificationID.String(), func(ctx context.Context) (operations.Result[*RespondResult], error) {
		n, fail, err := s.loadOwned(ctx, userID, notificationID)
		if err != nil {
			return operations.Result[*RespondResult]{}, err
		}
		if fail != nil {
			return failure[*RespondResult](fail), nil
		}
		if !n.Type.IsActionable() || n.Status != notificationdomain.StatusPending {
			return failure[*RespondResult](results.NewError(results.KindInvalidState, "This notification does not need an answer")), nil
		}

		result := &RespondResult{Accepted: accept}
		if accept {
			match, err := s.matches.CreateChallengeMatch(ctx, n.FromUserID, n.ToUserID, challengeSlot(n))
			if err != nil {
				var de *results.DomainError
				if errors.As(err, &de) {
					return failure[*RespondResult](de), nil
				}
				return operations.Result[*RespondResult]{}, fmt.Errorf("failed to create challenge match: %w", err)
			}
			result.MatchID = &match.ID
		}

		if err := s.repo.Delete(ctx, s.readDB(), n.ID); err != nil && !errors.Is(err, notificationdb.ErrNoRowsAffected) {
			return operations.Result[*RespondResult]{}, fmt.Errorf("failed to remove answered challenge: %w", err)
		}

		s.logger.InfoContext(ctx, "Challenge answered",
			attr.ExtractCorrelationID(ctx),
			attr.String("notification_id", n.ID.String()),
			attr.Any("accepted", accept),
		)
		return success(result), nil
	}))
}

// loadOwned returns the notification when userID is its addressee.
func (s *NotificationService) loadOwned(ctx context.Context, userID string, id uuid.UUID) (*notificationdb.Notification, *results.DomainError, error) {
	n, err := s.repo.GetByID(ctx, s.readDB(), id)
	if err != nil {
		if errors.Is(err, notificationdb.ErrNotFound) {
			return nil, results.NewError(results.KindNotFound, "Notification %s was not found", id), nil
		}
		return nil, nil, fmt.Errorf("failed to load notification: %w", err)
	}
	if n.ToUserID != userID {
		return nil, results.NewError(results.KindForbidden, "This notification is not addressed to you"), nil
	}
	return n, nil, nil
}
