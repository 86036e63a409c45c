package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"olms-backend/internal/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	user := &domain.User{ID: "u1", Username: "admin", Role: domain.UserRoleAdmin}

	token, err := tm.GenerateAccessToken(user)
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, domain.UserRoleAdmin, claims.Role)
}

func TestTokenManager_Expired(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Minute).(*tokenManager)
	tm.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := tm.GenerateAccessToken(&domain.User{ID: "u1"})
	require.NoError(t, err)

	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	token, err := NewTokenManager(testSecret, time.Hour).GenerateAccessToken(&domain.User{ID: "u1"})
	require.NoError(t, err)

	_, err = NewTokenManager("another-secret-another-secret-123", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_WrongType(t *testing.T) {
	claims := UserClaims{
		UserID: "u1",
		Type:   "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{audience},
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = NewTokenManager(testSecret, time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestTokenManager_Garbage(t *testing.T) {
	_, err := NewTokenManager(testSecret, time.Hour).ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
