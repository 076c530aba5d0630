package app

// TimelineKind names one of the three independent history feeds.
type TimelineKind int

const (
	TimelineMessages TimelineKind = iota
	TimelineMoods
	TimelineTrends
)

func (k TimelineKind) String() string {
	switch k {
	case TimelineMessages:
		return "messages"
	case TimelineMoods:
		return "moods"
	case TimelineTrends:
		return "trends"
	}
	return "unknown"
}

// LoadTicket tags an in-flight history request with the sequence number
// and session id it was issued for. A result is applied only while its
// ticket is still the most recently issued one for that timeline and
// the session has not changed underneath it.
type LoadTicket struct {
	Kind      TimelineKind
	Seq       uint64
	SessionID string
}

// Synchronizer holds the three ordered timelines scoped to the active
// session. Loads are last-issued-wins, not last-completed-wins: a slow
// stale response must never clobber a fresher one.
type Synchronizer struct {
	messages []Message
	moods    []MoodEntry
	trends   SentimentTrends

	issued [3]uint64
}

func NewSynchronizer() *Synchronizer {
	return &Synchronizer{}
}

// Begin registers a new load for one timeline and returns its ticket.
func (s *Synchronizer) Begin(kind TimelineKind, sessionID string) LoadTicket {
	s.issued[kind]++
	return LoadTicket{Kind: kind, Seq: s.issued[kind], SessionID: sessionID}
}

func (s *Synchronizer) current(t LoadTicket, activeID string) bool {
	return t.Seq == s.issued[t.Kind] && t.SessionID == activeID
}

// ApplyMessages installs a loaded message timeline. Returns false when
// the result was stale and discarded.
func (s *Synchronizer) ApplyMessages(t LoadTicket, activeID string, msgs []Message) bool {
	if t.Kind != TimelineMessages || !s.current(t, activeID) {
		return false
	}
	s.messages = msgs
	return true
}

func (s *Synchronizer) ApplyMoods(t LoadTicket, activeID string, moods []MoodEntry) bool {
	if t.Kind != TimelineMoods || !s.current(t, activeID) {
		return false
	}
	s.moods = moods
	return true
}

func (s *Synchronizer) ApplyTrends(t LoadTicket, activeID string, trends SentimentTrends) bool {
	if t.Kind != TimelineTrends || !s.current(t, activeID) {
		return false
	}
	s.trends = trends
	return true
}

// AppendExchange appends a completed user/assistant pair. The message
// timeline is append-only between loads; ordering is fixed at insertion.
func (s *Synchronizer) AppendExchange(user, reply Message) {
	s.messages = append(s.messages, user, reply)
}

func (s *Synchronizer) Messages() []Message { return s.messages }

func (s *Synchronizer) Moods() []MoodEntry { return s.moods }

func (s *Synchronizer) Trends() SentimentTrends { return s.trends }

// Reset clears all three timelines. Issue counters keep counting so a
// ticket from before the reset can never match again.
func (s *Synchronizer) Reset() {
	s.messages = nil
	s.moods = nil
	s.trends = SentimentTrends{}
}
