package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/pkg/apperrors"
	"github.com/psanashik/academy/internal/pkg/auth"
)

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.seedAdmin(t, "admin@psa-nashik.com", "admin123")

	tokens, user, err := env.AuthService.Login(env.ctx, "admin@psa-nashik.com", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, "Bearer", tokens.TokenType)
	assert.Equal(t, "admin@psa-nashik.com", user.Email)
	assert.NotNil(t, user.LastLoginAt)
}

func TestLoginBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.seedAdmin(t, "admin@psa-nashik.com", "admin123")

	// Wrong password and unknown account must be indistinguishable so that
	// login responses cannot be used to enumerate accounts.
	_, _, err := env.AuthService.Login(env.ctx, "admin@psa-nashik.com", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, _, err = env.AuthService.Login(env.ctx, "nobody@psa-nashik.com", "admin123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

// The unknown-email path burns a bcrypt comparison against a fixed hash so
// login latency does not reveal whether an account exists. That only works
// while the constant stays a parseable hash at the production cost.
func TestDummyPasswordHashWellFormed(t *testing.T) {
	cost, err := bcrypt.Cost([]byte(dummyPasswordHash))
	require.NoError(t, err)
	assert.Equal(t, auth.BcryptCost, cost)
}

func TestLoginDisabledAccount(t *testing.T) {
	env := newTestEnv(t)
	admin := env.seedAdmin(t, "admin@psa-nashik.com", "admin123")
	require.NoError(t, env.UserService.DeactivateUser(env.ctx, admin.ID))

	_, _, err := env.AuthService.Login(env.ctx, "admin@psa-nashik.com", "admin123")
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}

func TestRefreshTokenRotation(t *testing.T) {
	env := newTestEnv(t)
	env.seedAdmin(t, "admin@psa-nashik.com", "admin123")

	tokens, _, err := env.AuthService.Login(env.ctx, "admin@psa-nashik.com", "admin123")
	require.NoError(t, err)

	rotated, err := env.AuthService.RefreshToken(env.ctx, tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, tokens.RefreshToken, rotated.RefreshToken)

	// The old token was revoked by the rotation.
	_, err = env.AuthService.RefreshToken(env.ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}

func TestLogoutRevokesToken(t *testing.T) {
	env := newTestEnv(t)
	env.seedAdmin(t, "admin@psa-nashik.com", "admin123")

	tokens, _, err := env.AuthService.Login(env.ctx, "admin@psa-nashik.com", "admin123")
	require.NoError(t, err)

	require.NoError(t, env.AuthService.Logout(env.ctx, tokens.RefreshToken))

	_, err = env.AuthService.RefreshToken(env.ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	admin := env.seedAdmin(t, "admin@psa-nashik.com", "admin123")

	tokens, _, err := env.AuthService.Login(env.ctx, "admin@psa-nashik.com", "admin123")
	require.NoError(t, err)

	err = env.AuthService.ChangePassword(env.ctx, admin.ID, "wrong", "newpassword1")
	assert.ErrorIs(t, err, apperrors.ErrPasswordMismatch)

	require.NoError(t, env.AuthService.ChangePassword(env.ctx, admin.ID, "admin123", "newpassword1"))

	// Old sessions are revoked and the old password no longer works.
	_, err = env.AuthService.RefreshToken(env.ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)

	_, _, err = env.AuthService.Login(env.ctx, "admin@psa-nashik.com", "admin123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, _, err = env.AuthService.Login(env.ctx, "admin@psa-nashik.com", "newpassword1")
	assert.NoError(t, err)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.seedAdmin(t, "admin@psa-nashik.com", "admin123")

	_, err := env.UserService.CreateUser(env.ctx, &dto.CreateUserRequest{
		Name:     "Second Admin",
		Email:    "admin@psa-nashik.com",
		Phone:    "+919812345999",
		Password: "password1",
		Role:     "admin",
	}, nil)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}
