package app

import (
	"testing"

	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	store := NewIdentityStore(t.TempDir())
	return New(DefaultConfig(), NewClient("http://127.0.0.1:0/api", 0), store, zap.NewNop())
}

func activate(t *testing.T, a *App, id string) {
	t.Helper()
	if err := a.Sessions.Adopt(&Session{ID: id}); err != nil {
		t.Fatalf("adopt session: %v", err)
	}
}
