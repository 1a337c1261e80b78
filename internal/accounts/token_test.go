package accounts_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaulLeite2/AbyssConect/internal/accounts"
)

func TestTokenRoundTrip(t *testing.T) {
	m := accounts.NewTokenManager("test-secret", time.Hour, "abyssconect")

	token, err := m.Generate("acc-1", "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", claims.AccountID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "abyssconect", claims.Issuer)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := accounts.NewTokenManager("secret-a", time.Hour, "abyssconect")
	verifier := accounts.NewTokenManager("secret-b", time.Hour, "abyssconect")

	token, err := issuer.Generate("acc-1", "alice@example.com")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, accounts.ErrInvalidToken)
}

func TestTokenExpired(t *testing.T) {
	m := accounts.NewTokenManager("test-secret", -time.Minute, "abyssconect")

	token, err := m.Generate("acc-1", "alice@example.com")
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.ErrorIs(t, err, accounts.ErrExpiredToken)
}

func TestTokenGarbage(t *testing.T) {
	m := accounts.NewTokenManager("test-secret", time.Hour, "abyssconect")
	_, err := m.Validate("not.a.token")
	assert.ErrorIs(t, err, accounts.ErrInvalidToken)
}
