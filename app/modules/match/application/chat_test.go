package matchservice

import (
	"context"
	"errors"
	"strings"
	"testing"

	matchdb "github.com/AhmedMHR/PadelPal/app/modules/match/infrastructure/repositories"
	"github.com/AhmedMHR/PadelPal/app/shared/results"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

func TestMatchService_PostMessage(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		sender   Sender
		text     string
		unknown  bool
		wantKind results.Kind
		wantName string
		wantText string
	}{
		{
			name:     "player posts with display name",
			sender:   Sender{UserID: "a", DisplayName: "Nour", Email: "nour@padelpal.test"},
			text:     "  Bring balls? ",
			wantName: "Nour",
			wantText: "Bring balls?",
		},
		{
			name:     "name falls back to email local part",
			sender:   Sender{UserID: "b", Email: "omar.k@padelpal.test"},
			text:     "On my way",
			wantName: "omar.k",
			wantText: "On my way",
		},
		{
			name:     "outsider cannot post",
			sender:   Sender{UserID: "zz", Email: "zz@padelpal.test"},
			text:     "hello",
			wantKind: results.KindForbidden,
		},
		{
			name:     "blank message",
			sender:   Sender{UserID: "a"},
			text:     "   ",
			wantKind: results.KindValidation,
		},
		{
			name:     "too long",
			sender:   Sender{UserID: "a"},
			text:     strings.Repeat("x", 1001),
			wantKind: results.KindValidation,
		},
		{
			name:     "unknown match",
			sender:   Sender{UserID: "a"},
			text:     "hello",
			unknown:  true,
			wantKind: results.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMatch("a", "b")
			repo := NewFakeMatchRepo(m)
			svc := newTestService(t, repo, nil, nil)

			id := m.ID
			if tt.unknown {
				id = uuid.New()
			}
			msg, err := svc.PostMessage(ctx, id, tt.sender, tt.text)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, results.KindOf(err))
				assert.NotContains(t, repo.Trace(), "CreateMessage")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, m.ID, msg.MatchID)
			assert.Equal(t, tt.sender.UserID, msg.SenderID)
			assert.Equal(t, tt.wantName, msg.SenderName)
			assert.Equal(t, tt.wantText, msg.Text)
			assert.Equal(t, fixedNow, msg.CreatedAt)
		})
	}
}

func TestMatchService_PostMessageRepositoryError(t *testing.T) {
	m := newMatch("a", "b")
	repo := NewFakeMatchRepo(m)
	repo.CreateMessageFunc = func(context.Context, bun.IDB, *matchdb.Message) error {
		return errors.New("insert failed")
	}
	svc := newTestService(t, repo, nil, nil)

	_, err := svc.PostMessage(context.Background(), m.ID, Sender{UserID: "a"}, "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert failed")
	assert.Equal(t, results.Kind(""), results.KindOf(err))
}

func TestMatchService_ListMessages(t *testing.T) {
	ctx := context.Background()
	m := newMatch("a", "b")
	other := newMatch("c")
	repo := NewFakeMatchRepo(m, other)
	svc := newTestService(t, repo, nil, nil)

	empty, err := svc.ListMessages(ctx, m.ID, "a")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for _, post := range []struct{ uid, text string }{{"a", "first"}, {"b", "second"}, {"a", "third"}} {
		_, err := svc.PostMessage(ctx, m.ID, Sender{UserID: post.uid}, post.text)
		require.NoError(t, err)
	}
	_, err = svc.PostMessage(ctx, other.ID, Sender{UserID: "c"}, "elsewhere")
	require.NoError(t, err)

	got, err := svc.ListMessages(ctx, m.ID, "b")
	require.NoError(t, err)
	texts := make([]string, len(got))
	for i, msg := range got {
		texts[i] = msg.Text
	}
	assert.Equal(t, []string{"first", "second", "third"}, texts)

	_, err = svc.ListMessages(ctx, m.ID, "c")
	assert.Equal(t, results.KindForbidden, results.KindOf(err))

	_, err = svc.ListMessages(ctx, uuid.New(), "a")
	assert.Equal(t, results.KindNotFound, results.KindOf(err))
}
