package models

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredential_Trims(t *testing.T) {
	c := NewCredential("  abc \n")
	assert.Equal(t, "abc", c.Token)
	assert.False(t, c.Empty())
	assert.Equal(t, "Bearer abc", c.BearerHeader())

	assert.True(t, NewCredential("   ").Empty())
}

func TestCredential_ExpiresAt_JWT(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("any-key"))
	require.NoError(t, err)

	got, ok := NewCredential(token).ExpiresAt()
	require.True(t, ok)
	assert.True(t, exp.Equal(got))
}

func TestCredential_ExpiresAt_Opaque(t *testing.T) {
	_, ok := NewCredential("opaque-session-token").ExpiresAt()
	assert.False(t, ok)

	_, ok = Credential{}.ExpiresAt()
	assert.False(t, ok)
}

func TestCredential_ExpiresAt_NoExpClaim(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "42",
	}).SignedString([]byte("any-key"))
	require.NoError(t, err)

	_, ok := NewCredential(token).ExpiresAt()
	assert.False(t, ok)
}
