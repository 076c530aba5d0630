package app

import (
	"go.uber.org/zap"

	"github.com/google/uuid"
)

// App wires the client-side core together: session identity, the three
// history timelines, the conversation engine and the safety escalation
// state. All mutation happens through begin/apply pairs driven by the
// single UI update loop; the only work done off that loop is network
// I/O, whose results come back through the Apply/Complete methods with
// the ticket they were issued under.
type App struct {
	Config Config
	Client *Client
	Log    *zap.Logger

	Sessions *SessionManager
	Sync     *Synchronizer
	Chat     *Conversation
	Safety   *SafetyState

	// Directory is loaded once per run and immutable afterwards.
	Directory *ResourceDirectory

	// CrisisInline holds the resource list the backend attached to the
	// most recent crisis response, shown inside the crisis modal.
	CrisisInline []Resource
}

func New(cfg Config, client *Client, store *IdentityStore, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		Config:   cfg,
		Client:   client,
		Log:      log,
		Sessions: NewSessionManager(store),
		Sync:     NewSynchronizer(),
		Chat:     NewConversation(),
		Safety:   NewSafetyState(),
	}
}

// ApplySession installs a freshly created session. A failure leaves the
// client sessionless; chat and mood actions stay no-ops until a retry
// succeeds.
func (a *App) ApplySession(s *Session, err error) error {
	if err != nil {
		a.Log.Warn("session create failed", zap.Error(err))
		return err
	}
	if err := a.Sessions.Adopt(s); err != nil {
		a.Log.Warn("session id not persisted", zap.Error(err))
	}
	a.Log.Info("session active", zap.String("session_id", s.ID))
	return nil
}

// BeginLoad issues a reload ticket for one timeline. Returns false when
// there is no active session to load for.
func (a *App) BeginLoad(kind TimelineKind) (LoadTicket, bool) {
	id := a.Sessions.ActiveID()
	if id == "" {
		return LoadTicket{}, false
	}
	return a.Sync.Begin(kind, id), true
}

// ApplyMessages merges a finished message-history load. Failures degrade
// to the last known timeline and are only logged.
func (a *App) ApplyMessages(t LoadTicket, msgs []Message, err error) {
	if err != nil {
		a.Log.Warn("history load degraded", zap.Error(&PartialSyncError{Timeline: t.Kind.String(), Err: err}))
		return
	}
	if !a.Sync.ApplyMessages(t, a.Sessions.ActiveID(), msgs) {
		a.Log.Info("stale history load discarded", zap.String("timeline", t.Kind.String()), zap.String("session_id", t.SessionID))
	}
}

func (a *App) ApplyMoods(t LoadTicket, moods []MoodEntry, err error) {
	if err != nil {
		a.Log.Warn("history load degraded", zap.Error(&PartialSyncError{Timeline: t.Kind.String(), Err: err}))
		return
	}
	if !a.Sync.ApplyMoods(t, a.Sessions.ActiveID(), moods) {
		a.Log.Info("stale history load discarded", zap.String("timeline", t.Kind.String()), zap.String("session_id", t.SessionID))
	}
}

func (a *App) ApplyTrends(t LoadTicket, trends *SentimentTrends, err error) {
	if err != nil {
		a.Log.Warn("history load degraded", zap.Error(&PartialSyncError{Timeline: t.Kind.String(), Err: err}))
		return
	}
	if trends == nil {
		trends = &SentimentTrends{}
	}
	if !a.Sync.ApplyTrends(t, a.Sessions.ActiveID(), *trends) {
		a.Log.Info("stale history load discarded", zap.String("timeline", t.Kind.String()), zap.String("session_id", t.SessionID))
	}
}

// ApplyResources installs the resource directory on first successful
// load; it never changes afterwards.
func (a *App) ApplyResources(dir *ResourceDirectory, err error) {
	if err != nil {
		a.Log.Warn("resources load failed", zap.Error(err))
		return
	}
	if a.Directory == nil {
		a.Directory = dir
	}
}

func newMessageID() string {
	return uuid.NewString()
}
