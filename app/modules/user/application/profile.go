package userservice

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	userdomain "github.com/AhmedMHR/PadelPal/app/modules/user/domain"
	userdb "github.com/AhmedMHR/PadelPal/app/modules/user/infrastructure/repositories"
	"github.com/AhmedMHR/PadelPal/app/shared/attr"
	"github.com/AhmedMHR/PadelPal/app/shared/operations"
	"github.com/AhmedMHR/PadelPal/app/shared/results"
	"github.com/uptrace/bun"
)

const maxDisplayNameLength = 40

// GetOrCreateProfile returns the caller's profile, creating it with the
// starting values on first access.
func (s *UserService) GetOrCreateProfile(ctx context.Context, identity userdomain.Identity) (*ProfileView, error) {
	return s.withTelemetry(ctx, "GetOrCreateProfile", identity.UID, func(ctx context.Context, db bun.IDB) (operations.Result[*ProfileView], error) {
		if strings.TrimSpace(identity.UID) == "" {
			return failure[*ProfileView](results.NewError(results.KindValidation, "A user id is required")), nil
		}

		p := userdomain.NewProfile(identity)
		created, err := s.repo.CreateIfAbsent(ctx, db, &userdb.User{
			UID:           p.UID,
			Email:         p.Email,
			DisplayName:   p.DisplayName,
			Level:         p.Level,
			Wins:          p.Wins,
			MatchesPlayed: p.MatchesPlayed,
			Balance:       p.Balance,
		})
		if err != nil {
			return operations.Result[*ProfileView]{}, fmt.Errorf("failed to create profile: %w", err)
		}
		if created {
			s.logger.InfoContext(ctx, "Created player profile",
				attr.ExtractCorrelationID(ctx),
				attr.String("user_id", identity.UID),
			)
		}

		user, err := s.repo.GetByUID(ctx, db, identity.UID)
		if err != nil {
			return operations.Result[*ProfileView]{}, fmt.Errorf("failed to load profile: %w", err)
		}
		view := newProfileView(user)
		view.Created = created
		return success(view), nil
	})
}

// GetProfile returns an existing profile.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*ProfileView, error) {
	return s.withTelemetry(ctx, "GetProfile", userID, func(ctx context.Context, db bun.IDB) (operations.Result[*ProfileView], error) {
		return s.loadProfile(ctx, db, userID)
	})
}

// UpdateProfile changes the display name and photo. Rating and wallet columns
// cannot be edited here.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*ProfileView, error) {
	return s.withTelemetry(ctx, "UpdateProfile", userID, func(ctx context.Context, db bun.IDB) (operations.Result[*ProfileView], error) {
		update, fail := validateProfileUpdate(input)
		if fail != nil {
			return failure[*ProfileView](fail), nil
		}

		if err := s.repo.UpdateProfile(ctx, db, userID, update); err != nil {
			if errors.Is(err, userdb.ErrNoRowsAffected) {
				return failure[*ProfileView](errProfileNotFound(userID)), nil
			}
			return operations.Result[*ProfileView]{}, fmt.Errorf("failed to update profile: %w", err)
		}
		return s.loadProfile(ctx, db, userID)
	})
}

func (s *UserService) loadProfile(ctx context.Context, db bun.IDB, userID string) (operations.Result[*ProfileView], error) {
	user, err := s.repo.GetByUID(ctx, db, userID)
	if err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			return failure[*ProfileView](errProfileNotFound(userID)), nil
		}
		return operations.Result[*ProfileView]{}, fmt.Errorf("failed to load profile: %w", err)
	}
	return success(newProfileView(user)), nil
}

func validateProfileUpdate(input UpdateProfileInput) (userdb.ProfileUpdate, *results.DomainError) {
	var update userdb.ProfileUpdate
	if input.DisplayName == nil && input.PhotoURL == nil {
		return update, results.NewError(results.KindValidation, "Nothing to update")
	}
	if input.DisplayName != nil {
		name := strings.TrimSpace(*input.DisplayName)
		if name == "" {
			return update, results.NewError(results.KindValidation, "Display name cannot be empty")
		}
		if utf8.RuneCountInString(name) > maxDisplayNameLength {
			return update, results.NewError(results.KindValidation, "Display name must be at most %d characters", maxDisplayNameLength)
		}
		update.DisplayName = &name
	}
	if input.PhotoURL != nil {
		photo := strings.TrimSpace(*input.PhotoURL)
		if photo != "" {
			u, err := url.Parse(photo)
			if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
				return update, results.NewError(results.KindValidation, "Photo must be an http or https URL")
			}
		}
		update.PhotoURL = &photo
	}
	return update, nil
}

func newProfileView(user *userdb.User) *ProfileView {
	return &ProfileView{
		User:    *user,
		Name:    userdomain.DisplayName(user.DisplayName, user.Email),
		WinRate: userdomain.WinRate(user.Wins, user.MatchesPlayed),
	}
}

func errProfileNotFound(userID string) *results.DomainError {
	return results.NewError(results.KindNotFound, "Profile %s was not found", userID)
}
