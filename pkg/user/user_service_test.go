package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"Blood-Donation-Admin/domain"
	"Blood-Donation-Admin/entities"
	"Blood-Donation-Admin/pkg/jwt"
)

type fakeUserRepository struct {
	users map[string]*entities.User
}

func (r *fakeUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	for _, u := range r.users {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func newUser(t *testing.T, email, role string) *entities.User {
	t.Helper()
	hashed, err := HashPassword("secret123")
	require.NoError(t, err)
	return &entities.User{ID: uuid.New(), Email: email, Password: hashed, Role: role}
}

func TestLogin(t *testing.T) {
	staff := newUser(t, "staff@example.com", domain.RoleStaff)
	member := newUser(t, "member@example.com", domain.RoleMember)
	repo := &fakeUserRepository{users: map[string]*entities.User{
		staff.Email:  staff,
		member.Email: member,
	}}
	jwtService := jwt.NewJWTServiceWithSecret("test-secret")
	svc := NewUserService(repo, jwtService)

	t.Run("staff signs in", func(t *testing.T) {
		res, err := svc.Login(context.Background(), domain.LoginRequest{Email: " Staff@Example.com ", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, staff.ID.String(), res.UserID)
		assert.Equal(t, domain.RoleStaff, res.Role)

		id, role, err := jwtService.GetUserIDByToken(res.Token)
		require.NoError(t, err)
		assert.Equal(t, staff.ID.String(), id)
		assert.Equal(t, domain.RoleStaff, role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), domain.LoginRequest{Email: staff.Email, Password: "secret124"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), domain.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("members are refused", func(t *testing.T) {
		_, err := svc.Login(context.Background(), domain.LoginRequest{Email: member.Email, Password: "secret123"})
		assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
	})
}
