// pkg/auth/jwt_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenManager() *TokenManager {
	return NewTokenManager("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
}

func TestTokenManager_GenerateAndValidate(t *testing.T) {
	tm := newTestTokenManager()

	access, refresh, expiresIn, err := tm.GenerateTokenPair("user-id", "a@example.com", "alice", "user")
	require.NoError(t, err)
	assert.Equal(t, int64((15 * time.Minute).Seconds()), expiresIn)

	claims, err := tm.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, "user-id", claims.UserID)
	assert.Equal(t, "alice", claims.Username)

	refreshClaims, err := tm.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-id", refreshClaims.UserID)
}

func TestTokenManager_RejectsWrongTokenType(t *testing.T) {
	tm := newTestTokenManager()

	access, refresh, _, err := tm.GenerateTokenPair("user-id", "a@example.com", "alice", "user")
	require.NoError(t, err)

	// Each validator only accepts its own token type.
	_, err = tm.ValidateAccessToken(refresh)
	assert.Error(t, err)
	_, err = tm.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := ExtractTokenFromHeader("Bearer abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	_, err = ExtractTokenFromHeader("abc123")
	assert.Error(t, err)

	_, err = ExtractTokenFromHeader("")
	assert.Error(t, err)
}

func TestPasswordManager(t *testing.T) {
	pm := NewPasswordManager()

	hash, err := pm.HashPassword("SecurePass123")
	require.NoError(t, err)
	assert.NoError(t, pm.ComparePassword(hash, "SecurePass123"))
	assert.Error(t, pm.ComparePassword(hash, "WrongPass123"))

	weak := []string{"short1A", "alllowercase1", "ALLUPPERCASE1", "NoNumbersHere"}
	for _, password := range weak {
		_, err := pm.HashPassword(password)
		assert.ErrorIs(t, err, ErrWeakPassword, password)
	}
}
