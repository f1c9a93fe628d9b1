package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLite {
	t.Helper()
	store, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteGetSet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "app:subjects")
	require.NoError(t, err)
	assert.False(t, ok, "missing key reports not found, not an error")

	require.NoError(t, store.Set(ctx, "app:subjects", `[{"id":"s1"}]`))

	value, ok, err := store.Get(ctx, "app:subjects")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"s1"}]`, value)
}

func TestSQLiteSetOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "first"))
	require.NoError(t, store.Set(ctx, "k", "second"))

	value, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", value)
}

func TestSQLiteSetAll(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.SetAll(ctx, []Entry{
		{Key: "app:subjects", Value: "[]"},
		{Key: "app:flashcards", Value: "{}"},
	})
	require.NoError(t, err)

	for key, want := range map[string]string{"app:subjects": "[]", "app:flashcards": "{}"} {
		value, ok, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, want, value)
	}
}

func TestSetAllFallsBackWithoutBatchWriter(t *testing.T) {
	// Memory implements BatchWriter too, so wrap it to hide the method.
	type plainStore struct{ Store }
	store := plainStore{NewMemory()}
	ctx := context.Background()

	err := SetAll(ctx, store, []Entry{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}})
	require.NoError(t, err)

	value, ok, err := store.Get(ctx, "b")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2", value)
}
