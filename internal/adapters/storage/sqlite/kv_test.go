package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petcare-registry/internal/ports/kv"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "petcare.db")
	require.NoError(t, Migrate(path))

	d, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func TestKVStore_RoundTrip(t *testing.T) {
	s := NewKVStore(openTestDB(t))
	ctx := context.Background()

	_, err := s.Get(ctx, "dev-1", "petcare_pets")
	require.ErrorIs(t, err, kv.ErrNotFound)

	require.NoError(t, s.Set(ctx, "dev-1", "petcare_pets", []byte(`[{"id":"a"}]`)))
	got, err := s.Get(ctx, "dev-1", "petcare_pets")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, string(got))
}

func TestKVStore_SetReplacesWholeValue(t *testing.T) {
	s := NewKVStore(openTestDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "dev-1", "petcare_pets", []byte(`[{"id":"a"},{"id":"b"}]`)))
	require.NoError(t, s.Set(ctx, "dev-1", "petcare_pets", []byte(`[]`)))

	got, err := s.Get(ctx, "dev-1", "petcare_pets")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestKVStore_NamespacesAreIsolated(t *testing.T) {
	s := NewKVStore(openTestDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "dev-1", "petcare_user", []byte(`{"name":"ana"}`)))

	_, err := s.Get(ctx, "dev-2", "petcare_user")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestKVStore_Delete(t *testing.T) {
	s := NewKVStore(openTestDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "dev-1", "petcare_profile", []byte(`{}`)))
	require.NoError(t, s.Delete(ctx, "dev-1", "petcare_profile"))

	_, err := s.Get(ctx, "dev-1", "petcare_profile")
	assert.ErrorIs(t, err, kv.ErrNotFound)

	assert.NoError(t, s.Delete(ctx, "dev-1", "petcare_profile"))
}

func TestMigrate_IsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "petcare.db")
	require.NoError(t, Migrate(path))
	require.NoError(t, Migrate(path))
}
