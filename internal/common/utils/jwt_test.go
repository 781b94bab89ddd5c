package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClaims(tokenType string) *JWTClaims {
	now := time.Now()
	return &JWTClaims{
		UserID:    42,
		Email:     "alice@example.com",
		Username:  "alice",
		Type:      tokenType,
		ExpiresAt: now.Add(time.Hour).Unix(),
		IssuedAt:  now.Unix(),
		NotBefore: now.Unix(),
		Issuer:    "circleup",
		Subject:   "42",
	}
}

func TestGenerateAndValidateJWT(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateJWT(testClaims(TokenTypeAccess), secret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, TokenTypeAccess, claims.Type)
	assert.Equal(t, "circleup", claims.Issuer)
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(testClaims(TokenTypeAccess), "right-secret")
	require.NoError(t, err)

	_, err = ValidateJWT(token, "wrong-secret")

	assert.Error(t, err)
}

func TestValidateJWT_Expired(t *testing.T) {
	claims := testClaims(TokenTypeAccess)
	claims.ExpiresAt = time.Now().Add(-time.Hour).Unix()

	token, err := GenerateJWT(claims, "test-secret")
	require.NoError(t, err)

	_, err = ValidateJWT(token, "test-secret")

	assert.Error(t, err)
}

func TestValidateJWT_Garbage(t *testing.T) {
	_, err := ValidateJWT("not.a.token", "test-secret")

	assert.Error(t, err)
}

func TestGenerateJWT_PreservesTokenType(t *testing.T) {
	token, err := GenerateJWT(testClaims(TokenTypeRefresh), "test-secret")
	require.NoError(t, err)

	claims, err := ValidateJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.Type)
}
