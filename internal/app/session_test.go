package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionManager_ResumeWithoutStoredID(t *testing.T) {
	m := NewSessionManager(NewIdentityStore(t.TempDir()))
	assert.False(t, m.Resume())
	assert.Nil(t, m.Active())
	assert.Empty(t, m.ActiveID())
}

func TestSessionManager_AdoptPersistsAndResumes(t *testing.T) {
	store := NewIdentityStore(t.TempDir())

	m := NewSessionManager(store)
	require.NoError(t, m.Adopt(&Session{ID: "sess-7", Nickname: "sam"}))
	assert.Equal(t, "sess-7", m.ActiveID())

	// A new process resumes the same id, trusted without validation.
	next := NewSessionManager(store)
	assert.True(t, next.Resume())
	assert.Equal(t, "sess-7", next.ActiveID())
}

func TestSessionManager_Clear(t *testing.T) {
	store := NewIdentityStore(t.TempDir())
	m := NewSessionManager(store)
	require.NoError(t, m.Adopt(&Session{ID: "sess-7"}))

	require.NoError(t, m.Clear())
	assert.Nil(t, m.Active())

	next := NewSessionManager(store)
	assert.False(t, next.Resume())
}
