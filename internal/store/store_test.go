package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"shelfwise/internal/db"
	"shelfwise/internal/domain"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	d, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func createTestUser(t *testing.T, users *UserStore, email string) *domain.User {
	t.Helper()
	user, err := users.Create(context.Background(), email, "Test User", "$2a$10$hash")
	require.NoError(t, err)
	return user
}
