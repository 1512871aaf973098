package userservice

import (
	"context"

	userdomain "github.com/AhmedMHR/PadelPal/app/modules/user/domain"
	userdb "github.com/AhmedMHR/PadelPal/app/modules/user/infrastructure/repositories"
)

// Service manages player profiles, the simulated wallet and the leaderboard.
type Service interface {
	GetOrCreateProfile(ctx context.Context, identity userdomain.Identity) (*ProfileView, error)
	GetProfile(ctx context.Context, userID string) (*ProfileView, error)
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*ProfileView, error)
	TopUp(ctx context.Context, userID string, amount int64) (*TopUpResult, error)
	Leaderboard(ctx context.Context) ([]LeaderboardEntry, error)
}

// ProfileView is a profile as returned to the caller.
type ProfileView struct {
	userdb.User
	Name    string `json:"name"`
	WinRate int    `json:"win_rate"`
	// Created is true when the profile was created by this call.
	Created bool `json:"created,omitempty"`
}

// UpdateProfileInput holds the editable fields. Nil fields are left unchanged.
type UpdateProfileInput struct {
	DisplayName *string `json:"display_name,omitempty"`
	PhotoURL    *string `json:"photo_url,omitempty"`
}

// TopUpResult is the wallet after a top-up.
type TopUpResult struct {
	UserID  string `json:"user_id"`
	Amount  int64  `json:"amount"`
	Balance int64  `json:"balance"`
}

// LeaderboardEntry is one ranked player.
type LeaderboardEntry struct {
	Rank          int     `json:"rank"`
	UserID        string  `json:"user_id"`
	DisplayName   string  `json:"display_name"`
	PhotoURL      *string `json:"photo_url,omitempty"`
	Level         float64 `json:"level"`
	Wins          int     `json:"wins"`
	MatchesPlayed int     `json:"matches_played"`
	WinRate       int     `json:"win_rate"`
}
