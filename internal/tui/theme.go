package tui

import (
	"github.com/charmbracelet/lipgloss"
)

type ThemeName string

const (
	ThemeDawn ThemeName = "dawn"
	ThemeDusk ThemeName = "dusk"
)

type Theme struct {
	Name ThemeName

	TextPrimary lipgloss.AdaptiveColor
	TextMuted   lipgloss.AdaptiveColor
	TextFaint   lipgloss.AdaptiveColor

	Accent   lipgloss.AdaptiveColor
	Calm     lipgloss.AdaptiveColor
	Warn     lipgloss.AdaptiveColor
	Error    lipgloss.AdaptiveColor
	Border   lipgloss.AdaptiveColor
	BorderHi lipgloss.AdaptiveColor

	TopBar      lipgloss.Style
	TopBarTitle lipgloss.Style
	TopBarMeta  lipgloss.Style

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	Pane     lipgloss.Style
	InputBox lipgloss.Style
	Footer   lipgloss.Style
	Spinner  lipgloss.Style
	Notice   lipgloss.Style

	RoleYou lipgloss.Style
	RoleAI  lipgloss.Style

	Banner  lipgloss.Style
	Dialog  lipgloss.Style
	DialogT lipgloss.Style
	Danger  lipgloss.Style
	Good    lipgloss.Style
	Neutral lipgloss.Style
}

func NewTheme(name string, noColor bool) Theme {
	if noColor {
		return newNoColorTheme()
	}
	switch ThemeName(name) {
	case ThemeDusk:
		return newDuskTheme()
	default:
		return newDawnTheme()
	}
}

func finishTheme(t Theme) Theme {
	t.TopBar = lipgloss.NewStyle().Foreground(t.TextMuted)
	t.TopBarTitle = lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary)
	t.TopBarMeta = lipgloss.NewStyle().Foreground(t.TextFaint)

	t.TabActive = lipgloss.NewStyle().Bold(true).Foreground(t.Accent).Underline(true).Padding(0, 1)
	t.TabInactive = lipgloss.NewStyle().Foreground(t.TextMuted).Padding(0, 1)

	t.Pane = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(t.Border).Padding(0, 1)
	t.InputBox = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(t.BorderHi).Padding(0, 1)
	t.Footer = lipgloss.NewStyle().Foreground(t.TextFaint)
	t.Spinner = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	t.Notice = lipgloss.NewStyle().Foreground(t.Warn)

	t.RoleYou = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	t.RoleAI = lipgloss.NewStyle().Bold(true).Foreground(t.Calm)

	t.Banner = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#1a1a1a"}).
		Background(t.Error).
		Padding(0, 1)
	t.Dialog = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.BorderHi).Padding(1, 2)
	t.DialogT = lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary)
	t.Danger = lipgloss.NewStyle().Bold(true).Foreground(t.Error)
	t.Good = lipgloss.NewStyle().Foreground(t.Calm)
	t.Neutral = lipgloss.NewStyle().Foreground(t.TextMuted)
	return t
}

func newDawnTheme() Theme {
	return finishTheme(Theme{
		Name:        ThemeDawn,
		TextPrimary: lipgloss.AdaptiveColor{Light: "#1d2433", Dark: "#f2f2f2"},
		TextMuted:   lipgloss.AdaptiveColor{Light: "#4a5568", Dark: "#c7c7c7"},
		TextFaint:   lipgloss.AdaptiveColor{Light: "#718096", Dark: "#9aa0a6"},

		Accent:   lipgloss.AdaptiveColor{Light: "#1f6feb", Dark: "#7aa2ff"},
		Calm:     lipgloss.AdaptiveColor{Light: "#0f766e", Dark: "#46d1b7"},
		Warn:     lipgloss.AdaptiveColor{Light: "#b45309", Dark: "#f4b27d"},
		Error:    lipgloss.AdaptiveColor{Light: "#b42318", Dark: "#ff7a7a"},
		Border:   lipgloss.AdaptiveColor{Light: "#cbd5e0", Dark: "#3a3a3a"},
		BorderHi: lipgloss.AdaptiveColor{Light: "#1f6feb", Dark: "#7aa2ff"},
	})
}

func newDuskTheme() Theme {
	return finishTheme(Theme{
		Name:        ThemeDusk,
		TextPrimary: lipgloss.AdaptiveColor{Light: "#111827", Dark: "#eaeaea"},
		TextMuted:   lipgloss.AdaptiveColor{Light: "#374151", Dark: "#b7b7b7"},
		TextFaint:   lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#8d8d8d"},

		Accent:   lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#b794f6"},
		Calm:     lipgloss.AdaptiveColor{Light: "#059669", Dark: "#46d1b7"},
		Warn:     lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#f4b27d"},
		Error:    lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#ff7a7a"},
		Border:   lipgloss.AdaptiveColor{Light: "#9ca3af", Dark: "#2a2a2a"},
		BorderHi: lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#b794f6"},
	})
}

func newNoColorTheme() Theme {
	plain := lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"}
	muted := lipgloss.AdaptiveColor{Light: "#333333", Dark: "#dddddd"}
	return finishTheme(Theme{
		Name:        "no-color",
		TextPrimary: plain,
		TextMuted:   muted,
		TextFaint:   muted,
		Accent:      plain,
		Calm:        plain,
		Warn:        plain,
		Error:       plain,
		Border:      muted,
		BorderHi:    plain,
	})
}
