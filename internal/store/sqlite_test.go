package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestSQLite(t *testing.T) *SQLiteStore {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	s, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	err = s.RunMigrations("./migrations")
	require.NoError(t, err)

	return s
}

func TestSQLiteStore_SetGetDelete(t *testing.T) {
	s := setupTestSQLite(t)
	ctx := context.Background()

	_, err := s.Get(ctx, "cart")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "cart", []byte(`{"v":1,"data":[]}`)))
	got, err := s.Get(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"v":1,"data":[]}`), got)

	require.NoError(t, s.Delete(ctx, "cart"))
	_, err = s.Get(ctx, "cart")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	s := setupTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "user", []byte("first")))
	require.NoError(t, s.Set(ctx, "user", []byte("second")))

	got, err := s.Get(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	s, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, s.RunMigrations("./migrations"))
	require.NoError(t, s.Set(ctx, "orders", []byte("persisted")))
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "orders")
	require.NoError(t, err)
	assert.Equal(t, []byte("persisted"), got)
}
