package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	encoded, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "argon2id$"))

	ok, err := VerifyPassword("s3cret-pass", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong-pass", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	first, err := HashPassword("same-input")
	require.NoError(t, err)
	second, err := HashPassword("same-input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		errMsg  string
	}{
		{"wrong part count", "argon2id$1$65536$4$saltonly", "invalid hash format"},
		{"unknown algorithm", "bcrypt$1$65536$4$c2FsdA$aGFzaA", "unsupported hash algorithm"},
		{"bad time", "argon2id$x$65536$4$c2FsdA$aGFzaA", "invalid time parameter"},
		{"zero threads", "argon2id$1$65536$0$c2FsdA$aGFzaA", "invalid thread count"},
		{"bad salt encoding", "argon2id$1$65536$4$!!$aGFzaA", "decode salt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := VerifyPassword("anything", tt.encoded)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestTokenManagerRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, expiresAt, err := m.Generate(42, "analyst", "user")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "analyst", claims.Username)
	assert.Equal(t, "user", claims.Role)
	assert.WithinDuration(t, expiresAt, claims.ExpiresAt, time.Second)
}

func TestTokenManagerRejectsWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret-a", time.Hour).Generate(1, "admin", "admin")
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", time.Hour).Parse(token)
	require.Error(t, err)
}

func TestTokenManagerRejectsExpiredToken(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	claims := jwt.MapClaims{
		"sub":      "7",
		"username": "analyst",
		"role":     "user",
		"exp":      time.Now().Add(-time.Minute).Unix(),
		"iss":      "deepsoc",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = m.Parse(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenManagerRejectsUnsignedToken(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Parse(token)
	require.Error(t, err)
}
