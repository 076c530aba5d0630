package app

import (
	"go.uber.org/zap"
)

// Full-session erasure. Remote deletion is irreversible, so the client
// side is all-or-nothing: no local state is touched until the backend
// confirms, and after it does, every trace of the old session id is
// gone before a replacement session is minted.

// DeleteTicket tags one in-flight remote deletion.
type DeleteTicket struct {
	SessionID string
}

// BeginDelete claims a deletion for the active session. The two-step
// user confirmation happens in the UI before this is called.
func (a *App) BeginDelete() (DeleteTicket, error) {
	id := a.Sessions.ActiveID()
	if id == "" {
		return DeleteTicket{}, ErrNoSession
	}
	return DeleteTicket{SessionID: id}, nil
}

// CompleteDelete applies the outcome of the remote deletion. On failure
// every piece of local state is left exactly as it was. On success the
// timelines, the durable id, the active session and the safety state
// are all reset; the caller then mints a replacement session.
func (a *App) CompleteDelete(t DeleteTicket, deleteErr error) error {
	if deleteErr != nil {
		a.Log.Warn("data deletion failed", zap.Error(deleteErr))
		return deleteErr
	}

	a.Sync.Reset()
	if err := a.Sessions.Clear(); err != nil {
		a.Log.Warn("identity slot not cleared", zap.Error(err))
	}
	a.Safety.Reset()
	a.CrisisInline = nil
	a.Log.Info("session data deleted", zap.String("old_session_id", t.SessionID))
	return nil
}
