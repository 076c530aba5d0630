package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// identityKey is the one durable slot this client keeps. Absent means
// "no session yet".
const identityKey = "mental_health_session_id"

// IdentityStore persists the active session id across process restarts.
// It is written only by the session manager and the data-lifecycle
// controller, one writer at a time.
type IdentityStore struct {
	path string
}

// DefaultDataDir prefers the XDG data dir and falls back to
// ~/.local/share, then the temp dir.
func DefaultDataDir() string {
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, "solace")
	}
	if base, err := os.UserHomeDir(); err == nil && base != "" {
		return filepath.Join(base, ".local", "share", "solace")
	}
	return filepath.Join(os.TempDir(), "solace")
}

func NewIdentityStore(dir string) *IdentityStore {
	if strings.TrimSpace(dir) == "" {
		dir = DefaultDataDir()
	}
	return &IdentityStore{path: filepath.Join(dir, identityKey)}
}

// Load returns the stored session id, or "" when none has been saved.
func (s *IdentityStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *IdentityStore) Save(id string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(id+"\n"), 0o644)
}

func (s *IdentityStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
