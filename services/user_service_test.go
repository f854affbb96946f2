package services

import (
	"context"
	"testing"

	"siddeshlogistics/apperror"
	"siddeshlogistics/models"
	"siddeshlogistics/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestUserService() (*UserService, *repository.MemoryStore) {
	store := repository.NewMemoryStore()
	svc := NewUserService(store)
	svc.cost = bcrypt.MinCost
	return svc, store
}

func TestSignupAndLogin(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestUserService()

	user, err := svc.Signup(ctx, models.AppUser{Name: "Siddesh", Email: " Owner@Example.com ", Password: "s3cret"})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "owner@example.com", user.Email)
	assert.Equal(t, DefaultRole, user.Role)
	assert.Empty(t, user.Password)

	stored, err := store.GetUserByEmail(ctx, "owner@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret")))

	logged, err := svc.Login(ctx, "owner@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
	assert.Empty(t, logged.Password)
}

func TestSignup_Rejects(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestUserService()

	_, err := svc.Signup(ctx, models.AppUser{Email: "a@b.com", Password: "x"})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = svc.Signup(ctx, models.AppUser{Name: "A", Email: "not-an-email", Password: "x"})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = svc.Signup(ctx, models.AppUser{Name: "A", Email: "a@b.com", Password: "x"})
	require.NoError(t, err)
	_, err = svc.Signup(ctx, models.AppUser{Name: "B", Email: "A@B.com", Password: "y"})
	assert.Equal(t, 409, apperror.StatusCode(err))
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestUserService()
	_, err := svc.Signup(ctx, models.AppUser{Name: "A", Email: "a@b.com", Password: "right"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "a@b.com", "wrong")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@b.com", "right")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}
