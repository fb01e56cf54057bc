package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-that-is-long-enough"

func TestGenerateAndParseJWT(t *testing.T) {
	signed, err := GenerateJWT("user-1", testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(signed, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, TokenIssuer, claims.Issuer)
}

func TestParseAndValidateJWT_Rejects(t *testing.T) {
	expired, err := GenerateJWT("user-1", testSecret, -time.Minute)
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(expired, testSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	valid, err := GenerateJWT("user-1", testSecret, time.Hour)
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(valid, "another-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))})
	signed, err := noSubject.SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(signed, testSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidClaims)

	_, err = GenerateJWT("", testSecret, time.Hour)
	assert.Error(t, err)
}
