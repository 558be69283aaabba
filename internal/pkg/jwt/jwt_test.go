//go:build unit

package jwt

import (
	"testing"
	"time"

	"brainbox-retailplus/internal/domain/staff"
	"brainbox-retailplus/tests/common/errtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := NewService("secret", 15*time.Minute, time.Hour)
	staffID := uuid.New()

	t.Run("access token", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(staffID, staff.RoleManager)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, staffID, claims.StaffID)
		assert.Equal(t, "manager", claims.Role)
		assert.Equal(t, TokenTypeAccess, claims.TokenType)
	})

	t.Run("refresh token", func(t *testing.T) {
		token, err := svc.GenerateRefreshToken(staffID, staff.RoleCashier)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, TokenTypeRefresh, claims.TokenType)
		assert.Equal(t, "cashier", claims.Role)
	})
}

func TestService_ValidateToken_Failures(t *testing.T) {
	issuedAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	svc := NewService("secret", time.Minute, time.Hour)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.GenerateAccessToken(uuid.New(), staff.RoleManager)
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		later := NewService("secret", time.Minute, time.Hour)
		later.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }

		_, err := later.ValidateToken(token)
		errtest.AssertIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewService("other-secret", time.Minute, time.Hour)
		other.now = svc.now

		_, err := other.ValidateToken(token)
		errtest.AssertIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-jwt")
		errtest.AssertIs(t, err, ErrInvalidToken)
	})
}
