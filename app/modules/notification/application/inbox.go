package notificationservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	matchservice "github.com/AhmedMHR/PadelPal/app/modules/match/application"
	notificationdomain "github.com/AhmedMHR/PadelPal/app/modules/notification/domain"
	notificationdb "github.com/AhmedMHR/PadelPal/app/modules/notification/infrastructure/repositories"
	"github.com/AhmedMHR/PadelPal/app/shared/attr"
	"github.com/AhmedMHR/PadelPal/app/shared/operations"
	"github.com/AhmedMHR/PadelPal/app/shared/results"
	"github.com/google/uuid"
)

// ListPending returns the caller's unanswered notifications, newest first.
func (s *NotificationService) ListPending(ctx context.Context, userID string) ([]notificationdb.Notification, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry(), ctx, "ListPending", userID, func(ctx context.Context) (operations.Result[[]notificationdb.Notification], error) {
		out, err := s.repo.ListPending(ctx, s.readDB(), userID)
		if err != nil {
			return operations.Result[[]notificationdb.Notification]{}, fmt.Errorf("failed to list notifications: %w", err)
		}
		if out == nil {
			out = []notificationdb.Notification{}
		}
		return success(out), nil
	}))
}

// MarkRead dismisses an informational notification. Challenges must be
// answered through Respond.
func (s *NotificationService) MarkRead(ctx context.Context, userID string, notificationID uuid.UUID) (*notificationdb.Notification, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry(), ctx, "MarkRead", notificationID.String(), func(ctx context.Context) (operations.Result[*notificationdb.Notification], error) {
		n, fail, err := s.loadOwned(ctx, userID, notificationID)
		if err != nil {
			return operations.Result[*notificationdb.Notification]{}, err
		}
		if fail != nil {
			return failure[*notificationdb.Notification](fail), nil
		}
		if n.Type.IsActionable() && n.Status == notificationdomain.StatusPending {
			return failure[*notificationdb.Notification](results.NewError(results.KindInvalidState, "Accept or decline the challenge instead")), nil
		}
		if n.Status == notificationdomain.StatusRead {
			return success(n), nil
		}

		if err := s.repo.UpdateStatus(ctx, s.readDB(), n.ID, notificationdomain.StatusRead); err != nil {
			if errors.Is(err, notificationdb.ErrNoRowsAffected) {
				return failure[*notificationdb.Notification](results.NewError(results.KindNotFound, "Notification %s was not found", n.ID)), nil
			}
			return operations.Result[*notificationdb.Notification]{}, fmt.Errorf("failed to mark notification read: %w", err)
		}
		n.Status = notificationdomain.StatusRead
		return success(n), nil
	}))
}

// Notify stores one system notification per message of batch and returns
// how many were written.
func (s *NotificationService) Notify(ctx context.Context, batch Batch) (int, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry(), ctx, "Notify", string(batch.Type), func(ctx context.Context) (operations.Result[int], error) {
		now := s.now().UTC()
		rows := make([]notificationdb.Notification, 0, len(batch.Messages))
		for _, m := range batch.Messages {
			if m.ToUserID == "" {
				continue
			}
			rows = append(rows, notificationdb.Notification{
				ID:         notificationID(batch.DedupKey, m.ToUserID),
				Type:       batch.Type,
				FromUserID: notificationdomain.SystemSender,
				FromName:   notificationdomain.SystemSender,
				ToUserID:   m.ToUserID,
				MatchID:    batch.MatchID,
				Message:    m.Text,
				Status:     notificationdomain.StatusPending,
				CreatedAt:  now,
			})
		}

		if err := s.repo.CreateMany(ctx, s.readDB(), rows); err != nil {
			return operations.Result[int]{}, fmt.Errorf("failed to store notifications: %w", err)
		}
		return success(len(rows)), nil
	}))
}

// ExpireStaleChallenges deletes challenges left unanswered for longer than ttl.
func (s *NotificationService) ExpireStaleChallenges(ctx context.Context, ttl time.Duration) (int, error) {
	if ttl <= 0 {
		ttl = notificationdomain.DefaultChallengeTTL
	}
	return operations.Unwrap(operations.WithTelemetry(s.telemetry(), ctx, "ExpireStaleChallenges", ttl.String(), func(ctx context.Context) (operations.Result[int], error) {
		cutoff := s.now().UTC().Add(-ttl)
		n, err := s.repo.DeletePendingOfTypeBefore(ctx, s.readDB(), notificationdomain.TypeChallenge, cutoff)
		if err != nil {
			return operations.Result[int]{}, fmt.Errorf("failed to expire challenges: %w", err)
		}
		if n > 0 {
			s.logger.InfoContext(ctx, "Expired stale challenges",
				attr.Int("count", n),
				attr.String("cutoff", cutoff.Format(time.RFC3339)),
			)
		}
		return success(n), nil
	}))
}

func notificationID(dedupKey, toUserID string) uuid.UUID {
	if dedupKey == "" {
		return uuid.New()
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(dedupKey+"/"+toUserID))
}

func challengeSlot(n *notificationdb.Notification) matchservice.ChallengeMatchInput {
	var in matchservice.ChallengeMatchInput
	if n.VenueID != nil {
		in.VenueID = *n.VenueID
	}
	if n.Date != nil {
		in.Date = *n.Date
	}
	if n.StartTime != nil {
		in.StartTime = *n.StartTime
	}
	return in
}
