// Package identity resolves request credentials to user profiles.
// Session management itself lives with the external identity provider;
// this package only validates what the client presents.
package identity

import (
	"context"

	apperrors "sprint-board-system.com/sprint-board-system/internal/errors"
	model "sprint-board-system.com/sprint-board-system/internal/models"
	repository "sprint-board-system.com/sprint-board-system/internal/repositories"
)

type Provider interface {
	// CurrentUser resolves a bearer token to an active profile.
	CurrentUser(ctx context.Context, token string) (*model.Profile, error)
}

// TokenProvider authenticates against API tokens stored on profiles.
type TokenProvider struct {
	profiles *repository.ProfileRepository
}

func NewTokenProvider(profiles *repository.ProfileRepository) *TokenProvider {
	return &TokenProvider{profiles: profiles}
}

func (p *TokenProvider) CurrentUser(ctx context.Context, token string) (*model.Profile, error) {
	if token == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	profile, err := p.profiles.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if !profile.IsActive {
		return nil, apperrors.ErrUnauthenticated
	}
	return profile, nil
}
