package app

import (
	"go.uber.org/zap"
)

// MoodTicket tags one outbound mood entry with the session it was
// issued under.
type MoodTicket struct {
	Score     int
	Note      string
	SessionID string
}

// BeginMood validates a mood submission. Unlike chat, mood logging is
// not optimistic: the timeline is reloaded from the server after a
// confirmed write, so the aggregate view only ever shows confirmed
// state.
func (a *App) BeginMood(score int, note string) (MoodTicket, error) {
	if score < 1 || score > 5 {
		return MoodTicket{}, ErrMoodRange
	}
	id := a.Sessions.ActiveID()
	if id == "" {
		return MoodTicket{}, ErrNoSession
	}
	return MoodTicket{Score: score, Note: note, SessionID: id}, nil
}

// CompleteMood finishes a mood submission. On success it issues the
// server-confirmed reload of the mood timeline; the caller runs it. On
// failure the draft note stays with the caller for a retry.
func (a *App) CompleteMood(t MoodTicket, submitErr error) (LoadTicket, bool, error) {
	if submitErr != nil {
		a.Log.Warn("mood log failed", zap.Error(submitErr))
		return LoadTicket{}, false, submitErr
	}
	if a.Sessions.ActiveID() != t.SessionID {
		// Session changed while the write was in flight; the entry
		// belongs to the old session and must not trigger a reload.
		return LoadTicket{}, false, nil
	}
	reload, ok := a.BeginLoad(TimelineMoods)
	return reload, ok, nil
}
