package notificationhandlers

import (
	"context"
	"time"

	notificationservice "github.com/AhmedMHR/PadelPal/app/modules/notification/application"
	notificationdb "github.com/AhmedMHR/PadelPal/app/modules/notification/infrastructure/repositories"
	userdomain "github.com/AhmedMHR/PadelPal/app/modules/user/domain"
	"github.com/google/uuid"
)

// FakeService is a programmable notificationservice.Service that records
// every Notify batch.
type FakeService struct {
	batches []notificationservice.Batch

	SendChallengeFunc func(ctx context.Context, from userdomain.Identity, input notificationservice.ChallengeInput) (*notificationdb.Notification, error)
	ListPendingFunc   func(ctx context.Context, userID string) ([]notificationdb.Notification, error)
	RespondFunc       func(ctx context.Context, userID string, id uuid.UUID, accept bool) (*notificationservice.RespondResult, error)
	MarkReadFunc      func(ctx context.Context, userID string, id uuid.UUID) (*notificationdb.Notification, error)
	NotifyFunc        func(ctx context.Context, batch notificationservice.Batch) (int, error)
}

func (f *FakeService) SendChallenge(ctx context.Context, from userdomain.Identity, input notificationservice.ChallengeInput) (*notificationdb.Notification, error) {
	if f.SendChallengeFunc != nil {
		return f.SendChallengeFunc(ctx, from, input)
	}
	return &notificationdb.Notification{ID: uuid.New(), FromUserID: from.UID, ToUserID: input.ToUserID}, nil
}

func (f *FakeService) ListPending(ctx context.Context, userID string) ([]notificationdb.Notification, error) {
	if f.ListPendingFunc != nil {
		return f.ListPendingFunc(ctx, userID)
	}
	return []notificationdb.Notification{}, nil
}

func (f *FakeService) Respond(ctx context.Context, userID string, id uuid.UUID, accept bool) (*notificationservice.RespondResult, error) {
	if f.RespondFunc != nil {
		return f.RespondFunc(ctx, userID, id, accept)
	}
	return &notificationservice.RespondResult{Accepted: accept}, nil
}

func (f *FakeService) MarkRead(ctx context.Context, userID string, id uuid.UUID) (*notificationdb.Notification, error) {
	if f.MarkReadFunc != nil {
		return f.MarkReadFunc(ctx, userID, id)
	}
	return &notificationdb.Notification{ID: id, ToUserID: userID}, nil
}

func (f *FakeService) Notify(ctx context.Context, batch notificationservice.Batch) (int, error) {
	f.batches = append(f.batches, batch)
	if f.NotifyFunc != nil {
		return f.NotifyFunc(ctx, batch)
	}
	return len(batch.Messages), nil
}

func (f *FakeService) ExpireStaleChallenges(context.Context, time.Duration) (int, error) {
	return 0, nil
}

var _ notificationservice.Service = (*FakeService)(nil)
