package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter22!")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22!", hash)
	assert.True(t, CheckPasswordHash("hunter22!", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestGenerateRandomToken(t *testing.T) {
	a := GenerateRandomToken(6)
	b := GenerateRandomToken(6)
	assert.Len(t, a, 6)
	assert.Len(t, b, 6)
	assert.NotEqual(t, a, b)
}

func TestGenerateJWTCarriesClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	signed, err := GenerateJWT(42, "jane@example.com")
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(tk *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.EqualValues(t, 42, claims["userId"])
	assert.Equal(t, "jane@example.com", claims["email"])
	assert.NotNil(t, claims["exp"])
}
