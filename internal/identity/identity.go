// Package identity provides the current-user capability interface.
//
// There is no real authentication backend; the core only needs a way to ask
// "who is acting" and consume the email as a filter key. Injecting this as an
// interface keeps the store and metrics code free of identity concerns, so a
// real backend can be substituted later.
package identity

import (
	"time"

	"degen-prop/internal/errors"
	"degen-prop/internal/models"
)

// Provider resolves the currently acting user.
type Provider interface {
	// CurrentUser returns the acting user, or ErrNotAuthenticated when there
	// is no current user.
	CurrentUser() (models.User, error)
}

// StaticProvider is a Provider backed by a fixed demo profile.
type StaticProvider struct {
	user models.User
}

// NewStaticProvider returns a provider for the given demo profile. An empty
// email models the logged-out state.
func NewStaticProvider(email, name, walletAddress string) *StaticProvider {
	now := time.Now().UTC()
	return &StaticProvider{
		user: models.User{
			ID:            "1",
			Email:         email,
			Name:          name,
			WalletAddress: walletAddress,
			CreatedDate:   now,
			LastLogin:     now,
		},
	}
}

// CurrentUser implements Provider.
func (p *StaticProvider) CurrentUser() (models.User, error) {
	if p.user.Email == "" {
		return models.User{}, errors.ErrNotAuthenticated
	}
	return p.user, nil
}
