package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sandevgo/replkit/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *KVRepo {
	t.Helper()
	ctx := context.Background()

	db, err := NewDB(ctx, filepath.Join(t.TempDir(), "replkit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewKVRepo(db)
}

func TestKVRepo_SetGet(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.Set(ctx, "name", "gopher"))

	value, err := repo.Get(ctx, "name")
	require.NoError(t, err)
	assert.Equal(t, "gopher", value)
}

func TestKVRepo_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.Set(ctx, "name", "first"))
	require.NoError(t, repo.Set(ctx, "name", "second"))

	value, err := repo.Get(ctx, "name")
	require.NoError(t, err)
	assert.Equal(t, "second", value)
}

func TestKVRepo_GetMissing(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	_, err := repo.Get(ctx, "absent")
	assert.ErrorIs(t, err, core.ErrKeyNotFound)
}

func TestKVRepo_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.Set(ctx, "name", "gopher"))

	deleted, err := repo.Delete(ctx, "name")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, "name")
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.Get(ctx, "name")
	assert.ErrorIs(t, err, core.ErrKeyNotFound)
}

func TestKVRepo_KeysSorted(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	for _, key := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, repo.Set(ctx, key, "v"))
	}

	keys, err := repo.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, keys)
}
