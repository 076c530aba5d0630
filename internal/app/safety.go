package app

// SafetyPhase is the sticky half of the escalation state machine. The
// only transition is Normal -> CrisisFlagged; nothing short of a full
// session reset goes the other way.
type SafetyPhase int

const (
	PhaseNormal SafetyPhase = iota
	PhaseCrisisFlagged
)

// SafetyState combines the sticky crisis phase with two independent,
// user-toggleable visibility flags. They survive tab switches and reset
// only with the session.
type SafetyState struct {
	phase     SafetyPhase
	modalOpen bool
	panelOpen bool
}

func NewSafetyState() *SafetyState {
	return &SafetyState{}
}

func (s *SafetyState) Phase() SafetyPhase { return s.phase }

func (s *SafetyState) Flagged() bool { return s.phase == PhaseCrisisFlagged }

func (s *SafetyState) ModalOpen() bool { return s.modalOpen }

func (s *SafetyState) PanelOpen() bool { return s.panelOpen }

// Flag records a crisis signal. On the first signal of a session the
// modal is forced open; repeats keep the phase and leave the modal
// alone. Returns true only for the Normal -> CrisisFlagged transition.
func (s *SafetyState) Flag() bool {
	if s.phase == PhaseCrisisFlagged {
		return false
	}
	s.phase = PhaseCrisisFlagged
	s.modalOpen = true
	return true
}

// OpenModal reopens the crisis modal. Only meaningful once flagged;
// there is nothing to show before that.
func (s *SafetyState) OpenModal() {
	if s.phase == PhaseCrisisFlagged {
		s.modalOpen = true
	}
}

// CloseModal acknowledges the modal. The sticky flag is untouched.
func (s *SafetyState) CloseModal() {
	s.modalOpen = false
}

// TogglePanel flips the panic panel, available regardless of crisis
// state and independent of the modal.
func (s *SafetyState) TogglePanel() {
	s.panelOpen = !s.panelOpen
}

func (s *SafetyState) ClosePanel() {
	s.panelOpen = false
}

// Reset returns everything to initial values. Called only by the
// data-lifecycle controller when a fresh session replaces the old one.
func (s *SafetyState) Reset() {
	s.phase = PhaseNormal
	s.modalOpen = false
	s.panelOpen = false
}
