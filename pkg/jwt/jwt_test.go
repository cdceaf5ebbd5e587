package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(userID, "user@example.com", "individual")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	require.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, userID, claims.UserID)
	require.Equal(t, "user@example.com", claims.Email)
	require.Equal(t, "individual", claims.UserType)

	claims, err = svc.ValidateToken(pair.RefreshToken)
	require.NoError(t, err)
	require.Equal(t, userID, claims.UserID)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute, 24*time.Hour)

	pair, err := svc.GenerateTokenPair(uuid.New(), "user@example.com", "individual")
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.AccessToken)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
	other := NewJWTService("other-secret", 15*time.Minute, 24*time.Hour)

	pair, err := svc.GenerateTokenPair(uuid.New(), "user@example.com", "individual")
	require.NoError(t, err)

	_, err = other.ValidateToken(pair.AccessToken)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_Garbage(t *testing.T) {
	svc := NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)

	_, err := svc.ValidateToken("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateToken("")
	require.ErrorIs(t, err, ErrInvalidToken)
}
