package app

import (
	"strings"
	"time"

	"go.uber.org/zap"
)

// Conversation enforces single-flight sends and owns the composing
// indicator. The message timeline itself lives in the synchronizer;
// completed exchanges are appended there in fixed user-then-assistant
// order.
type Conversation struct {
	inFlight bool
	typing   bool
}

func NewConversation() *Conversation {
	return &Conversation{}
}

// InFlight reports whether a send is outstanding.
func (c *Conversation) InFlight() bool { return c.inFlight }

// Typing reports whether the composing indicator should show.
func (c *Conversation) Typing() bool { return c.typing }

// SendTicket tags one outbound message with the session it was issued
// under. SessionID may be empty on the very first message; the backend
// mints a session and we adopt the returned id.
type SendTicket struct {
	Text      string
	SessionID string
	IssuedAt  time.Time
}

// BeginSend validates and claims the single send slot. The caller clears
// the input immediately regardless of eventual outcome.
func (a *App) BeginSend(text string) (SendTicket, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return SendTicket{}, ErrEmptyMessage
	}
	if a.Chat.inFlight {
		return SendTicket{}, ErrSendInFlight
	}
	a.Chat.inFlight = true
	a.Chat.typing = true
	return SendTicket{Text: trimmed, SessionID: a.Sessions.ActiveID(), IssuedAt: time.Now()}, nil
}

// CompleteSend applies a finished round trip. On failure nothing reaches
// the timeline; the cleared input is deliberately not restored. On
// success the user message and the reply are appended as a pair, both
// stamped client-side at receipt, and the crisis signal is extracted
// exactly once. The returned bool reports a Normal -> CrisisFlagged
// transition. A reply for a session that was reset or replaced while
// the send was in flight is dropped without touching any state beyond
// freeing the send slot.
func (a *App) CompleteSend(t SendTicket, resp *ChatResponse, sendErr error) (bool, error) {
	a.Chat.inFlight = false
	a.Chat.typing = false

	if sendErr != nil {
		a.Log.Warn("send failed", zap.Error(sendErr))
		return false, sendErr
	}

	// A reply issued under a session that is no longer active belongs to
	// a dead session; merging it would resurrect the old id and its
	// messages. Sessionless tickets are the first-send case and pass.
	if t.SessionID != "" && t.SessionID != a.Sessions.ActiveID() {
		a.Log.Info("stale chat reply discarded", zap.String("session_id", t.SessionID))
		return false, nil
	}

	// Adopt a backend-minted session id before any other state changes.
	if resp.SessionID != "" && resp.SessionID != a.Sessions.ActiveID() {
		if err := a.Sessions.Adopt(&Session{ID: resp.SessionID}); err != nil {
			a.Log.Warn("session id not persisted", zap.Error(err))
		}
	}

	now := time.Now().UTC()
	user := Message{
		ID:        newMessageID(),
		SessionID: a.Sessions.ActiveID(),
		Content:   t.Text,
		IsUser:    true,
		Timestamp: now,
	}
	reply := Message{
		ID:        newMessageID(),
		SessionID: a.Sessions.ActiveID(),
		Content:   resp.Message,
		IsUser:    false,
		Timestamp: now,
	}
	a.Sync.AppendExchange(user, reply)

	if resp.CrisisDetected {
		if len(resp.Resources) > 0 {
			a.CrisisInline = resp.Resources
		}
		return a.Safety.Flag(), nil
	}
	return false, nil
}
