package matchhandlers

import (
	"context"
	"errors"
	"sync"

	matchservice "github.com/AhmedMHR/PadelPal/app/modules/match/application"
	matchdb "github.com/AhmedMHR/PadelPal/app/modules/match/infrastructure/repositories"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// FakeService is a programmable matchservice.Service.
type FakeService struct {
	trace []string

	CreateMatchFunc          func(ctx context.Context, hostID string, input matchservice.CreateMatchInput) (*matchdb.Match, error)
	CreateChallengeMatchFunc func(ctx context.Context, fromUserID, toUserID string, input matchservice.ChallengeMatchInput) (*matchdb.Match, error)
	GetMatchFunc             func(ctx context.Context, matchID uuid.UUID) (*matchdb.Match, error)
	JoinMatchFunc            func(ctx context.Context, matchID uuid.UUID, userID string) (*matchdb.Match, error)
	LeaveMatchFunc           func(ctx context.Context, matchID uuid.UUID, userID string) (*matchdb.Match, error)
	CancelMatchFunc          func(ctx context.Context, matchID uuid.UUID, userID string) (*matchdb.Match, error)
	SubmitScoreFunc          func(ctx context.Context, matchID uuid.UUID, userID, score string, winnerIDs []string) (*matchservice.LedgerResult, error)
	CorrectScoreFunc         func(ctx context.Context, matchID uuid.UUID, userID, score string, winnerIDs []string) (*matchservice.LedgerResult, error)
	ListOpenMatchesFunc      func(ctx context.Context) ([]matchdb.Match, error)
	ListUserMatchesFunc      func(ctx context.Context, userID string) ([]matchdb.Match, error)
	PostMessageFunc          func(ctx context.Context, matchID uuid.UUID, sender matchservice.Sender, text string) (*matchdb.Message, error)
	ListMessagesFunc         func(ctx context.Context, matchID uuid.UUID, userID string) ([]matchdb.Message, error)
}

func (f *FakeService) record(step string) { f.trace = append(f.trace, step) }

// Trace returns the methods called, in order.
func (f *FakeService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var errNotProgrammed = errors.New("fake: not programmed")

func (f *FakeService) CreateMatch(ctx context.Context, hostID string, input matchservice.CreateMatchInput) (*matchdb.Match, error) {
	f.record("CreateMatch")
	if f.CreateMatchFunc != nil {
		return f.CreateMatchFunc(ctx, hostID, input)
	}
	return nil, errNotProgrammed
}

func (f *FakeService) CreateChallengeMatch(ctx context.Context, fromUserID, toUserID string, input matchservice.ChallengeMatchInput) (*matchdb.Match, error) {
	f.record("CreateChallengeMatch")
	if f.CreateChallengeMatchFunc != nil {
		return f.CreateChallengeMatchFunc(ctx, fromUserID, toUserID, input)
	}
	return nil, errNotProgrammed
}

func (f *FakeService) GetMatch(ctx context.Context, matchID uuid.UUID) (*matchdb.Match, error) {
	f.record("GetMatch")
	if f.GetMatchFunc != nil {
		return f.GetMatchFunc(ctx, matchID)
	}
	return nil, errNotProgrammed
}

func (f *FakeService) JoinMatch(ctx context.Context, matchID uuid.UUID, userID string) (*matchdb.Match, error) {
	f.record("JoinMatch")
	if f.JoinMatchFunc != nil {
		return f.JoinMatchFunc(ctx, matchID, userID)
	}
	return nil, errNotProgrammed
}

func (f *FakeService) LeaveMatch(ctx context.Context, matchID uuid.UUID, userID string) (*matchdb.Match, error) {
	f.record("LeaveMatch")
	if f.LeaveMatchFunc != nil {
		return f.LeaveMatchFunc(ctx, matchID, userID)
	}
	return nil, errNotProgrammed
}

func (f *FakeService) CancelMatch(ctx context.Context, matchID uuid.UUID, userID string) (*matchdb.Match, error) {
	f.record("CancelMatch")
	if f.CancelMatchFunc != nil {
		return f.CancelMatchFunc(ctx, matchID, userID)
	}
	return nil, errNotProgrammed
}

func (f *FakeService) SubmitScore(ctx context.Context, matchID uuid.UUID, userID, score string, winnerIDs []string) (*matchservice.LedgerResult, error) {
	f.record("SubmitScore")
	if f.SubmitScoreFunc != nil {
		return f.SubmitScoreFunc(ctx, matchID, userID, score, winnerIDs)
	}
	return nil, errNotProgrammed
}

func (f *FakeService) CorrectScore(ctx context.Context, matchID uuid.UUID, userID, score string, winnerIDs []string) (*matchservice.LedgerResult, error) {
	f.record("CorrectScore")
	if f.CorrectScoreFunc != nil {
		return f.CorrectScoreFunc(ctx, matchID, userID, score, winnerIDs)
	}
	return nil, errNotProgrammed
}

func (f *FakeService) ListOpenMatches(ctx context.Context) ([]matchdb.Match, error) {
	f.record("ListOpenMatches")
	if f.ListOpenMatchesFunc != nil {
		return f.ListOpenMatchesFunc(ctx)
	}
	return []matchdb.Match{}, nil
}

func (f *FakeService) ListUserMatches(ctx context.Context, userID string) ([]matchdb.Match, error) {
	f.record("ListUserMatches")
	if f.ListUserMatchesFunc != nil {
		return f.ListUserMatchesFunc(ctx, userID)
	}
	return []matchdb.Match{}, nil
}

func (f *FakeService) PostMessage(ctx context.Context, matchID uuid.UUID, sender matchservice.Sender, text string) (*matchdb.Message, error) {
	f.record("PostMessage")
	if f.PostMessageFunc != nil {
		return f.PostMessageFunc(ctx, matchID, sender, text)
	}
	return nil, errNotProgrammed
}

func (f *FakeService) ListMessages(ctx context.Context, matchID uuid.UUID, userID string) ([]matchdb.Message, error) {
	f.record("ListMessages")
	if f.ListMessagesFunc != nil {
		return f.ListMessagesFunc(ctx, matchID, userID)
	}
	return []matchdb.Message{}, nil
}

var _ matchservice.Service = (*FakeService)(nil)

// recordingPublisher keeps every published message by topic.
type recordingPublisher struct {
	mu      sync.Mutex
	topics  []string
	byTopic map[string][]*message.Message
	err     error
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{byTopic: map[string][]*message.Message{}}
}

func (p *recordingPublisher) Publish(topic string, messages ...*message.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.topics = append(p.topics, topic)
	p.byTopic[topic] = append(p.byTopic[topic], messages...)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) Topics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.topics...)
}
