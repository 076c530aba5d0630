package app

// SessionManager is the one place a session identity is minted, adopted
// or cleared. Network creation happens elsewhere; results are funneled
// through Adopt so the durable id and the in-memory session can never
// disagree for long.
type SessionManager struct {
	store  *IdentityStore
	active *Session
}

func NewSessionManager(store *IdentityStore) *SessionManager {
	return &SessionManager{store: store}
}

// Active returns the current session, or nil while sessionless.
func (m *SessionManager) Active() *Session {
	return m.active
}

// ActiveID returns the current session id, or "" while sessionless.
func (m *SessionManager) ActiveID() string {
	if m.active == nil {
		return ""
	}
	return m.active.ID
}

// Resume restores the session persisted by a previous run. The id is
// trusted as-is; the backend repairs an unknown id on first use.
func (m *SessionManager) Resume() bool {
	id, err := m.store.Load()
	if err != nil || id == "" {
		return false
	}
	m.active = &Session{ID: id}
	return true
}

// Adopt replaces the active session and persists its id. Used for both
// explicitly created sessions and ids the backend minted mid-chat.
func (m *SessionManager) Adopt(s *Session) error {
	m.active = s
	return m.store.Save(s.ID)
}

// Clear drops the active session and its durable id.
func (m *SessionManager) Clear() error {
	m.active = nil
	return m.store.Clear()
}
