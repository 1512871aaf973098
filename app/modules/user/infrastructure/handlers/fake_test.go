package userhandlers

import (
	"context"
	"errors"

	userservice "github.com/AhmedMHR/PadelPal/app/modules/user/application"
	userdomain "github.com/AhmedMHR/PadelPal/app/modules/user/domain"
)

// FakeService is a programmable userservice.Service.
type FakeService struct {
	trace []string

	GetOrCreateProfileFunc func(ctx context.Context, identity userdomain.Identity) (*userservice.ProfileView, error)
	GetProfileFunc         func(ctx context.Context, userID string) (*userservice.ProfileView, error)
	UpdateProfileFunc      func(ctx context.Context, userID string, input userservice.UpdateProfileInput) (*userservice.ProfileView, error)
	TopUpFunc              func(ctx context.Context, userID string, amount int64) (*userservice.TopUpResult, error)
	LeaderboardFunc        func(ctx context.Context) ([]userservice.LeaderboardEntry, error)
}

func (f *FakeService) record(step string) { f.trace = append(f.trace, step) }

// Trace returns the methods called, in order.
func (f *FakeService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var errNotProgrammed = errors.New("fake: not programmed")

func (f *FakeService) GetOrCreateProfile(ctx context.Context, identity userdomain.Identity) (*userservice.ProfileView, error) {
	f.record("GetOrCreateProfile")
	if f.GetOrCreateProfileFunc != nil {
		return f.GetOrCreateProfileFunc(ctx, identity)
	}
	return nil, errNotProgrammed
}

func (f *FakeService) GetProfile(ctx context.Context, userID string) (*userservice.ProfileView, error) {
	f.record("GetProfile")
	if f.GetProfileFunc != nil {
		return f.GetProfileFunc(ctx, userID)
	}
	return nil, errNotProgrammed
}

func (f *FakeService) UpdateProfile(ctx context.Context, userID string, input userservice.UpdateProfileInput) (*userservice.ProfileView, error) {
	f.record("UpdateProfile")
	if f.UpdateProfileFunc != nil {
		return f.UpdateProfileFunc(ctx, userID, input)
	}
	return nil, errNotProgrammed
}

func (f *FakeService) TopUp(ctx context.Context, userID string, amount int64) (*userservice.TopUpResult, error) {
	f.record("TopUp")
	if f.TopUpFunc != nil {
		return f.TopUpFunc(ctx, userID, amount)
	}
	return nil, errNotProgrammed
}

func (f *FakeService) Leaderboard(ctx context.Context) ([]userservice.LeaderboardEntry, error) {
	f.record("Leaderboard")
	if f.LeaderboardFunc != nil {
		return f.LeaderboardFunc(ctx)
	}
	return []userservice.LeaderboardEntry{}, nil
}

var _ userservice.Service = (*FakeService)(nil)
