package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 60, 7*24*60)

	t.Run("Access token", func(t *testing.T) {
		token, err := tm.GenerateAccessToken(42, "pilot@example.com")
		require.NoError(t, err)

		claims, err := tm.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, int32(42), claims.UserID)
		assert.Equal(t, "pilot@example.com", claims.Email)
		assert.Equal(t, TokenTypeAccess, claims.Type)
	})

	t.Run("Refresh token", func(t *testing.T) {
		token, err := tm.GenerateRefreshToken(42, "pilot@example.com")
		require.NoError(t, err)

		claims, err := tm.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, TokenTypeRefresh, claims.Type)
	})
}

func TestTokenManager_RejectsBadTokens(t *testing.T) {
	tm := NewTokenManager("test-secret", 60, 7*24*60)

	t.Run("Garbage", func(t *testing.T) {
		_, err := tm.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		other := NewTokenManager("other-secret", 60, 60)
		token, err := other.GenerateAccessToken(1, "a@b.c")
		require.NoError(t, err)

		_, err = tm.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		expired := NewTokenManager("test-secret", -1, -1)
		token, err := expired.GenerateAccessToken(1, "a@b.c")
		require.NoError(t, err)

		_, err = tm.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}
