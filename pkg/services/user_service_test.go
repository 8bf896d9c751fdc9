package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepsoc/deepsoc/ent/user"
	"github.com/deepsoc/deepsoc/pkg/config"
	testdb "github.com/deepsoc/deepsoc/test/database"
)

func TestUserService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUserService(client.Client)
	ctx := context.Background()

	t.Run("creates a user with a hashed password", func(t *testing.T) {
		created, err := service.Create(ctx, CreateUserInput{
			Username: "analyst1",
			Email:    "analyst1@example.com",
			Password: "s3cret-pass",
		})
		require.NoError(t, err)

		assert.Equal(t, "analyst1", created.Username)
		assert.Equal(t, user.RoleUser, created.Role)
		assert.True(t, created.IsActive)

		stored, err := client.User.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)
		assert.Contains(t, stored.PasswordHash, "argon2id$")
	})

	t.Run("rejects duplicate usernames", func(t *testing.T) {
		_, err := service.Create(ctx, CreateUserInput{
			Username: "analyst1",
			Email:    "other@example.com",
			Password: "s3cret-pass",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		_, err := service.Create(ctx, CreateUserInput{
			Username: "analyst2",
			Email:    "analyst2@example.com",
			Password: "abc",
		})
		require.Error(t, err)

		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "password", validErr.Field)
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		_, err := service.Create(ctx, CreateUserInput{
			Username: "analyst3",
			Email:    "analyst3@example.com",
			Password: "s3cret-pass",
			Role:     "superuser",
		})
		require.Error(t, err)

		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "role", validErr.Field)
	})
}

func TestUserService_Authenticate(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUserService(client.Client)
	ctx := context.Background()

	created, err := service.Create(ctx, CreateUserInput{
		Username: "oncall",
		Email:    "oncall@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	require.Nil(t, created.LastLoginAt)

	t.Run("accepts the right password and stamps login time", func(t *testing.T) {
		account, err := service.Authenticate(ctx, "oncall", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, created.ID, account.ID)
		require.NotNil(t, account.LastLoginAt)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		_, err := service.Authenticate(ctx, "oncall", "battery-staple")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rejects an unknown user with the same error", func(t *testing.T) {
		_, err := service.Authenticate(ctx, "ghost", "correct-horse")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rejects a deactivated account", func(t *testing.T) {
		inactive := false
		_, err := service.Update(ctx, created.ID, UpdateUserInput{IsActive: &inactive})
		require.NoError(t, err)

		_, err = service.Authenticate(ctx, "oncall", "correct-horse")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUserService_UpdateAndDelete(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUserService(client.Client)
	ctx := context.Background()

	created, err := service.Create(ctx, CreateUserInput{
		Username: "temp",
		Email:    "temp@example.com",
		Password: "temporary1",
	})
	require.NoError(t, err)

	t.Run("updates selected fields", func(t *testing.T) {
		email := "renamed@example.com"
		role := "admin"
		updated, err := service.Update(ctx, created.ID, UpdateUserInput{Email: &email, Role: &role})
		require.NoError(t, err)
		assert.Equal(t, "renamed@example.com", updated.Email)
		assert.Equal(t, user.RoleAdmin, updated.Role)
		assert.Equal(t, "temp", updated.Username)
	})

	t.Run("deletes the account", func(t *testing.T) {
		require.NoError(t, service.Delete(ctx, created.ID))

		_, err := service.Get(ctx, created.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		err = service.Delete(ctx, created.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUserService(client.Client)
	ctx := context.Background()

	created, err := service.Create(ctx, CreateUserInput{
		Username: "rotator",
		Email:    "rotator@example.com",
		Password: "old-password",
	})
	require.NoError(t, err)

	t.Run("requires the current password", func(t *testing.T) {
		err := service.ChangePassword(ctx, created.ID, "wrong-password", "new-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("swaps the hash", func(t *testing.T) {
		require.NoError(t, service.ChangePassword(ctx, created.ID, "old-password", "new-password"))

		_, err := service.Authenticate(ctx, "rotator", "old-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = service.Authenticate(ctx, "rotator", "new-password")
		assert.NoError(t, err)
	})
}

func TestUserService_EnsureAdmin(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUserService(client.Client)
	ctx := context.Background()

	cfg := config.DefaultAuthConfig()

	created, err := service.EnsureAdmin(ctx, cfg)
	require.NoError(t, err)
	assert.True(t, created)

	admin, err := service.GetByUsername(ctx, cfg.AdminUsername)
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, admin.Role)

	// Second run is a no-op.
	created, err = service.EnsureAdmin(ctx, cfg)
	require.NoError(t, err)
	assert.False(t, created)

	_, err = service.Authenticate(ctx, cfg.AdminUsername, cfg.AdminPassword)
	assert.NoError(t, err)
}
