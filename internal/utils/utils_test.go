package utils

import (
	"testing"
	"time"

	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	salt, err := NewPasswordSalt()
	require.NoError(t, err)
	assert.Len(t, salt, passwordSaltLength)

	hash := HashPassword("s3cret-pass", salt)
	assert.Len(t, hash, passwordKeyLength)

	assert.True(t, CheckPasswordHash("s3cret-pass", salt, hash))
	assert.False(t, CheckPasswordHash("wrong", salt, hash))

	otherSalt, err := NewPasswordSalt()
	require.NoError(t, err)
	assert.NotEqual(t, hash, HashPassword("s3cret-pass", otherSalt))
	assert.False(t, CheckPasswordHash("s3cret-pass", nil, hash))
}

func TestGenerateSecureRandomString(t *testing.T) {
	s, err := GenerateSecureRandomString(16)
	require.NoError(t, err)
	assert.Len(t, s, 32)

	_, err = GenerateSecureRandomString(0)
	assert.Error(t, err)
}

func TestSessionJWTRoundTrip(t *testing.T) {
	secret := "test-secret-key-that-is-long-enough"
	token, expiresAt, err := GenerateJWT(domain.Session{UserID: 7, ARID: 3}, secret, time.Hour, "ar-tracker-test")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := ParseAndValidateJWT(token, secret)
	require.NoError(t, err)
	session, err := claims.Session()
	require.NoError(t, err)
	assert.Equal(t, domain.Session{UserID: 7, ARID: 3}, session)

	_, err = ParseAndValidateJWT(token, "another-secret")
	assert.Error(t, err)
}

func TestExpiredJWTIsRejected(t *testing.T) {
	secret := "test-secret-key-that-is-long-enough"
	token, _, err := GenerateJWT(domain.Session{UserID: 7}, secret, -time.Minute, "ar-tracker-test")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, secret)
	assert.Error(t, err)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "12.35", FormatMoney(decimal.RequireFromString("12.3456")))
	assert.Equal(t, "300.00", FormatMoney(decimal.NewFromInt(300)))
	assert.Equal(t, "", FormatOptionalMoney(nil))
}
