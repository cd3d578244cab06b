package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndValidateTokenPair(t *testing.T) {
	pair, err := GenerateTokenPair("uid-1", "rider@example.com", "admin", "critic_star", testSecret, time.Hour, 24*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)

	claims, err := ValidateToken(pair.AccessToken, testSecret)
	require.NoError(t, err)

	assert.Equal(t, "uid-1", claims.UID)
	assert.Equal(t, "rider@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "critic_star", claims.SubRole)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	pair, err := GenerateTokenPair("uid-1", "rider@example.com", "admin", "", testSecret, time.Hour, time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken(pair.AccessToken, "other-secret")
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	pair, err := GenerateTokenPair("uid-1", "rider@example.com", "admin", "", testSecret, -time.Minute, time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken(pair.AccessToken, testSecret)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", testSecret)
	assert.Error(t, err)
}
