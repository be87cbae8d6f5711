package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"degen-prop/internal/errors"
)

func TestStaticProviderCurrentUser(t *testing.T) {
	p := NewStaticProvider("demo@degenprop.com", "Demo Degen", "7xKX...gAsU")

	user, err := p.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, "demo@degenprop.com", user.Email)
	assert.Equal(t, "Demo Degen", user.Name)
	assert.Equal(t, "7xKX...gAsU", user.WalletAddress)
}

func TestStaticProviderLoggedOut(t *testing.T) {
	p := NewStaticProvider("", "", "")

	_, err := p.CurrentUser()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotAuthenticated))
}
