// Package userevents defines the topics published by the user module.
package userevents

const (
	WalletToppedUpV1 = "padelpal.user.wallet.topped_up.v1"
)

// WalletToppedUpPayloadV1 is published after a successful top-up.
type WalletToppedUpPayloadV1 struct {
	UserID  string `json:"user_id"`
	Amount  int64  `json:"amount"`
	Balance int64  `json:"balance"`
}
