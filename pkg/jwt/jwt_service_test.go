package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Blood-Donation-Admin/domain"
)

func TestGenerateAndReadToken(t *testing.T) {
	svc := NewJWTServiceWithSecret("test-secret")

	token, err := svc.GenerateTokenUser("staff-1", domain.RoleStaff)
	require.NoError(t, err)

	userID, role, err := svc.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "staff-1", userID)
	assert.Equal(t, domain.RoleStaff, role)
}

func TestGetUserIDByTokenWrongSecret(t *testing.T) {
	token, err := NewJWTServiceWithSecret("one").GenerateTokenUser("staff-1", domain.RoleStaff)
	require.NoError(t, err)

	_, _, err = NewJWTServiceWithSecret("two").GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGetUserIDByTokenExpired(t *testing.T) {
	svc := &jwtService{
		secretKey: "test-secret",
		issuer:    "test",
		now:       func() time.Time { return time.Now().Add(-2 * tokenLifetime) },
	}
	token, err := svc.GenerateTokenUser("staff-1", domain.RoleStaff)
	require.NoError(t, err)

	_, _, err = svc.GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}
