package notificationdomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessages(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{
			name: "challenge",
			got:  ChallengeMessage("ahmed", "smash-club", "2026-10-20", "18:30"),
			want: "ahmed challenged you to a match at smash-club on 2026-10-20 18:30",
		},
		{
			name: "finished win",
			got:  MatchFinishedMessage("6-4 6-3", true, 1, 1.1),
			want: "You won 6-4 6-3, level 1.00 to 1.10",
		},
		{
			name: "finished loss",
			got:  MatchFinishedMessage("6-4 6-3", false, 1.05, 1),
			want: "You lost 6-4 6-3, level 1.05 to 1.00",
		},
		{
			name: "wallet",
			got:  WalletToppedUpMessage(500, 2500),
			want: "500 EGP added to your wallet, balance 2500 EGP",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestIsActionable(t *testing.T) {
	assert.True(t, TypeChallenge.IsActionable())
	assert.False(t, TypeMatchFull.IsActionable())
	assert.False(t, TypeWalletToppedUp.IsActionable())
}
