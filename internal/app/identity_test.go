package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewIdentityStore(dir)

	id, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, id, "missing slot means no session yet")

	require.NoError(t, store.Save("sess-123"))

	// A second instance sees what the first wrote.
	again := NewIdentityStore(dir)
	id, err = again.Load()
	require.NoError(t, err)
	assert.Equal(t, "sess-123", id)
}

func TestIdentityStore_Clear(t *testing.T) {
	store := NewIdentityStore(t.TempDir())
	require.NoError(t, store.Save("sess-123"))
	require.NoError(t, store.Clear())

	id, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, id)

	// Clearing an already-empty slot is fine.
	require.NoError(t, store.Clear())
}

func TestIdentityStore_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store := NewIdentityStore(dir)
	require.NoError(t, store.Save("sess-123"))

	id, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "sess-123", id)
}
