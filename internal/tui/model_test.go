package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"solace/internal/app"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	store := app.NewIdentityStore(t.TempDir())
	cfg := app.DefaultConfig()
	cfg.NoColor = true
	a := app.New(cfg, app.NewClient("http://127.0.0.1:0/api", 0), store, zap.NewNop())
	m := New(a)
	m.width = 80
	m.height = 30
	m.ready = true
	m.resize()
	return m
}

func TestView_CrisisBannerOnlyWhenFlagged(t *testing.T) {
	m := newTestModel(t)

	if strings.Contains(m.View(), "crisis resources") {
		t.Fatalf("banner must not show before a crisis is flagged")
	}

	m.app.Safety.Flag()
	m.app.Safety.CloseModal()
	out := m.View()
	if !strings.Contains(out, "crisis resources") {
		t.Fatalf("expected banner after crisis flag, got:\n%s", out)
	}
}

func TestView_ModalForcedOpenAtTransition(t *testing.T) {
	m := newTestModel(t)
	m.app.Safety.Flag()

	out := m.View()
	if !strings.Contains(out, "You're not alone") {
		t.Fatalf("expected crisis modal content, got:\n%s", out)
	}
}

func TestUpdate_DeleteConfirmIsTwoStep(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	if !m.confirmDelete {
		t.Fatalf("ctrl+d should open the confirmation prompt")
	}
	if !strings.Contains(m.View(), "cannot be undone") {
		t.Fatalf("confirmation prompt should warn about irreversibility")
	}

	// Anything but y cancels.
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	if m.confirmDelete || m.deleteBusy {
		t.Fatalf("non-confirming key should cancel without deleting")
	}
}

func TestUpdate_TabSwitchKeepsCrisisState(t *testing.T) {
	m := newTestModel(t)
	m.app.Safety.Flag()
	m.app.Safety.CloseModal()
	m.app.Safety.TogglePanel()
	m.app.Safety.ClosePanel()

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.tab != tabInsights {
		t.Fatalf("expected insights tab after two tab presses, got %d", m.tab)
	}
	if !m.app.Safety.Flagged() {
		t.Fatalf("tab switches must never clear the sticky crisis flag")
	}
}

func TestUpdate_PanicPanelToggles(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	if !m.app.Safety.PanelOpen() {
		t.Fatalf("ctrl+p should open the panic panel")
	}
	if !strings.Contains(m.View(), "Quick help") {
		t.Fatalf("expected panic panel content")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	if m.app.Safety.PanelOpen() {
		t.Fatalf("ctrl+p should close the panel again")
	}
}

func TestSubmit_EmptyChatInputIsSilentNoOp(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("   ")

	_, cmd := m.submit()
	if cmd != nil {
		t.Fatalf("whitespace-only input must not produce a network command")
	}
	if len(m.app.Sync.Messages()) != 0 {
		t.Fatalf("timeline must stay empty")
	}
}
