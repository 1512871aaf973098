package matchintegrationtests

import (
	"testing"

	matchservice "github.com/AhmedMHR/PadelPal/app/modules/match/application"
	"github.com/AhmedMHR/PadelPal/app/shared/results"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchChatIsLimitedToRoster(t *testing.T) {
	deps := setup(t, 3, 1.5)
	p := uids(deps.Users)
	matchID := fullMatch(t, deps, p[:2])

	first, err := deps.Service.PostMessage(deps.Ctx, matchID, matchservice.Sender{UserID: p[0], Email: "host.player@padelpal.test"}, "Court 1 tonight")
	require.NoError(t, err)
	assert.Equal(t, "host.player", first.SenderName)

	_, err = deps.Service.PostMessage(deps.Ctx, matchID, matchservice.Sender{UserID: p[1], DisplayName: "Lina"}, "  Great, see you  ")
	require.NoError(t, err)

	_, err = deps.Service.PostMessage(deps.Ctx, matchID, matchservice.Sender{UserID: p[2]}, "can I join the chat?")
	assert.Equal(t, results.KindForbidden, results.KindOf(err))

	messages, err := deps.Service.ListMessages(deps.Ctx, matchID, p[1])
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "Court 1 tonight", messages[0].Text)
	assert.Equal(t, "Great, see you", messages[1].Text)
	assert.Equal(t, "Lina", messages[1].SenderName)

	_, err = deps.Service.ListMessages(deps.Ctx, matchID, p[2])
	assert.Equal(t, results.KindForbidden, results.KindOf(err))

	_, err = deps.Service.CancelMatch(deps.Ctx, matchID, p[0])
	require.NoError(t, err)
	orphans, err := deps.Matches.ListMessages(deps.Ctx, nil, matchID, 0)
	require.NoError(t, err)
	assert.Empty(t, orphans)
}
