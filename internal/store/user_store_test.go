package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStoreCreate(t *testing.T) {
	users := NewUserStore(openTestDB(t))
	ctx := context.Background()

	user, err := users.Create(ctx, "alice@example.com", "Alice", "$2a$10$hash")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "$2a$10$hash", user.PasswordHash)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUserStoreCreate_DuplicateEmail(t *testing.T) {
	users := NewUserStore(openTestDB(t))
	ctx := context.Background()

	_, err := users.Create(ctx, "alice@example.com", "Alice", "hash1")
	require.NoError(t, err)

	_, err = users.Create(ctx, "alice@example.com", "Other Alice", "hash2")
	assert.Error(t, err)
}

func TestUserStoreGetByEmail(t *testing.T) {
	users := NewUserStore(openTestDB(t))
	ctx := context.Background()

	created := createTestUser(t, users, "bob@example.com")

	found, err := users.GetByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
}

func TestUserStoreGetByEmail_NotFound(t *testing.T) {
	users := NewUserStore(openTestDB(t))

	found, err := users.GetByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserStoreGetByID_NotFound(t *testing.T) {
	users := NewUserStore(openTestDB(t))

	found, err := users.GetByID(context.Background(), "missing-id")
	require.NoError(t, err)
	assert.Nil(t, found)
}
