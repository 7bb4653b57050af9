package services

import (
	"context"
	"testing"
	"time"

	"rosea_server/lib"
	"rosea_server/storage"
	"rosea_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService() *AuthService {
	cfg := &structs.Config{
		Auth: &structs.AuthConfig{
			AccessTokenSecret:  "test-access-secret",
			AccessTokenExpiry:  15 * time.Minute,
			RefreshTokenSecret: "test-refresh-secret",
			RefreshTokenExpiry: 7 * 24 * time.Hour,
		},
		Admin: &structs.AdminConfig{
			Username: "admin",
			Password: "123456",
		},
	}
	return NewAuthService(cfg, gecho.NewDefaultLogger(), storage.NewMemoryStore())
}

func TestRegisterAndLogin(t *testing.T) {
	as := newTestAuthService()
	ctx := context.Background()

	registered, err := as.Register(ctx, "زهراء", "zahraa@example.com", "password123")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, registered.Id)

	user, err := as.Login(ctx, "zahraa@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, registered.Id, user.Id)

	// Email matching is case-insensitive.
	user, err = as.Login(ctx, "ZAHRAA@EXAMPLE.COM", "password123")
	require.NoError(t, err)
	assert.Equal(t, registered.Id, user.Id)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	as := newTestAuthService()
	ctx := context.Background()

	_, err := as.Register(ctx, "زهراء", "zahraa@example.com", "password123")
	require.NoError(t, err)

	_, unknownErr := as.Login(ctx, "nobody@example.com", "password123")
	_, wrongErr := as.Login(ctx, "zahraa@example.com", "wrong-password")

	// Unknown email and wrong password must be the same error, so the
	// endpoint cannot enumerate accounts.
	assert.ErrorIs(t, unknownErr, lib.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, lib.ErrInvalidCredentials)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	as := newTestAuthService()
	ctx := context.Background()

	_, err := as.Register(ctx, "زهراء", "zahraa@example.com", "password123")
	require.NoError(t, err)

	_, err = as.Register(ctx, "أخرى", "ZAHRAA@example.com", "otherpassword")
	assert.ErrorIs(t, err, lib.ErrDuplicateEmail)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	as := newTestAuthService()

	hash, err := as.HashPassword("s3cret-password", DefaultParams)
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$")

	ok, err := as.VerifyPassword("s3cret-password", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = as.VerifyPassword("not-the-password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionViewOmitsPasswordHash(t *testing.T) {
	as := newTestAuthService()
	ctx := context.Background()

	user, err := as.Register(ctx, "زهراء", "zahraa@example.com", "password123")
	require.NoError(t, err)

	fetched, err := as.UserByID(ctx, user.Id)
	require.NoError(t, err)
	assert.Equal(t, user.Email, fetched.Email)

	_, err = as.UserByID(ctx, uuid.New())
	assert.ErrorIs(t, err, lib.ErrNotFound)
}

func TestLoginAdmin(t *testing.T) {
	as := newTestAuthService()

	assert.True(t, as.LoginAdmin("admin", "123456"))
	assert.False(t, as.LoginAdmin("admin", "wrong"))
	assert.False(t, as.LoginAdmin("root", "123456"))
}

func TestTokenGenerationAndParsing(t *testing.T) {
	as := newTestAuthService()
	sub := uuid.New()

	token, err := as.GenerateAccessToken(sub, "zahraa@example.com", RoleUser)
	require.NoError(t, err)

	claims, err := lib.ParseToken(token, as.GetAccessTokenSecret())
	require.NoError(t, err)
	assert.Equal(t, sub, claims.Sub)
	assert.Equal(t, "zahraa@example.com", claims.Email)
	assert.Equal(t, RoleUser, claims.Role)

	// A token signed with the wrong secret never parses.
	_, err = lib.ParseToken(token, "some-other-secret")
	assert.Error(t, err)
}
