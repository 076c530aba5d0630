package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"solace/internal/app"
)

type tabID int

const (
	tabChat tabID = iota
	tabMood
	tabInsights
	tabResources
)

var tabNames = []string{"Chat", "Mood", "Insights", "Resources"}

// Model is the single bubbletea model. All core state lives in app.App;
// the model holds presentation state only and funnels every network
// result through the core's apply methods inside Update, which keeps
// the whole state machine on one goroutine.
type Model struct {
	app *app.App

	theme Theme
	keys  keyMap
	help  help.Model

	width  int
	height int
	ready  bool

	tab tabID

	input  textarea.Model
	chatVP viewport.Model
	spin   spinner.Model

	moodScore int
	moodNote  textinput.Model
	moodBusy  bool

	confirmDelete bool
	deleteBusy    bool

	notice    string
	noticeSeq int
}

func New(application *app.App) *Model {
	ta := textarea.New()
	ta.Placeholder = "What's on your mind?"
	ta.Focus()
	ta.CharLimit = 2000
	ta.SetHeight(1)
	ta.Prompt = " "
	ta.ShowLineNumbers = false
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.BlurredStyle.CursorLine = lipgloss.NewStyle()

	note := textinput.New()
	note.Placeholder = "Add a note (optional)"
	note.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	t := NewTheme(application.Config.Theme, application.Config.NoColor)
	sp.Style = t.Spinner

	return &Model{
		app:       application,
		theme:     t,
		keys:      newKeyMap(),
		help:      help.New(),
		tab:       tabChat,
		input:     ta,
		chatVP:    viewport.New(80, 16),
		spin:      sp,
		moodScore: 3,
		moodNote:  note,
	}
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink, m.loadResourcesCmd()}
	if m.app.Sessions.Resume() {
		cmds = append(cmds, m.loadTimelineCmds()...)
	} else {
		cmds = append(cmds, m.createSessionCmd())
	}
	return tea.Batch(cmds...)
}

func (m *Model) busy() bool {
	return m.app.Chat.Typing() || m.moodBusy || m.deleteBusy
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil

	case sessionMsg:
		if err := m.app.ApplySession(msg.session, msg.err); err != nil {
			return m, m.notify("Couldn't reach the support service. Chat is paused; it will retry when you send a message.")
		}
		return m, tea.Batch(m.loadTimelineCmds()...)

	case chatReplyMsg:
		// A crisis transition forces the modal open inside the core; the
		// view reads safety state directly, so nothing extra happens here.
		if _, err := m.app.CompleteSend(msg.ticket, msg.resp, msg.err); err != nil {
			return m, m.notify("Your message couldn't be sent. Please try again.")
		}
		m.refreshChat()
		return m, nil

	case messagesMsg:
		m.app.ApplyMessages(msg.ticket, msg.msgs, msg.err)
		m.refreshChat()
		return m, nil

	case moodsMsg:
		m.app.ApplyMoods(msg.ticket, msg.moods, msg.err)
		return m, nil

	case trendsMsg:
		m.app.ApplyTrends(msg.ticket, msg.trends, msg.err)
		return m, nil

	case resourcesMsg:
		m.app.ApplyResources(msg.dir, msg.err)
		return m, nil

	case moodSavedMsg:
		m.moodBusy = false
		reload, ok, err := m.app.CompleteMood(msg.ticket, msg.err)
		if err != nil {
			// Draft note is preserved for a retry.
			return m, m.notify("Your mood couldn't be saved. Please try again.")
		}
		m.moodNote.SetValue("")
		var cmds []tea.Cmd
		cmds = append(cmds, m.notify("Mood logged."))
		if ok {
			cmds = append(cmds, m.loadMoodsCmd(reload))
		}
		return m, tea.Batch(cmds...)

	case deleteDoneMsg:
		m.deleteBusy = false
		if err := m.app.CompleteDelete(msg.ticket, msg.err); err != nil {
			return m, m.notify("Deletion failed. Nothing was changed.")
		}
		m.refreshChat()
		return m, tea.Batch(m.notify("All data deleted. Starting fresh."), m.createSessionCmd())
	}

	return m, m.routeToWidgets(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// The delete confirmation swallows everything until answered.
	if m.confirmDelete {
		if msg.String() == "y" {
			m.confirmDelete = false
			ticket, err := m.app.BeginDelete()
			if err != nil {
				return m, m.notify("No session to delete.")
			}
			m.deleteBusy = true
			return m, tea.Batch(m.deleteCmd(ticket), m.spin.Tick)
		}
		m.confirmDelete = false
		return m, nil
	}

	if m.app.Safety.ModalOpen() {
		if key.Matches(msg, m.keys.Close) || key.Matches(msg, m.keys.Send) {
			m.app.Safety.CloseModal()
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Panic) {
		m.app.Safety.TogglePanel()
		return m, nil
	}
	if m.app.Safety.PanelOpen() {
		if key.Matches(msg, m.keys.Close) {
			m.app.Safety.ClosePanel()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Crisis):
		m.app.Safety.OpenModal()
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		m.confirmDelete = true
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		return m.switchTab((m.tab + 1) % tabID(len(tabNames)))

	case key.Matches(msg, m.keys.PrevTab):
		return m.switchTab((m.tab + tabID(len(tabNames)) - 1) % tabID(len(tabNames)))

	case key.Matches(msg, m.keys.Send):
		return m.submit()
	}

	if m.tab == tabMood {
		switch {
		case key.Matches(msg, m.keys.ScoreUp):
			if m.moodScore < 5 {
				m.moodScore++
			}
			return m, nil
		case key.Matches(msg, m.keys.ScoreDn):
			if m.moodScore > 1 {
				m.moodScore--
			}
			return m, nil
		}
	}

	return m, m.routeToWidgets(msg)
}

// switchTab changes the visible tab. Core state is never touched here;
// crisis flags and timelines persist across tabs. Entering Insights
// refreshes its inputs so the aggregates reflect recent activity.
func (m *Model) switchTab(next tabID) (tea.Model, tea.Cmd) {
	m.tab = next
	m.input.Blur()
	m.moodNote.Blur()

	var cmds []tea.Cmd
	switch next {
	case tabChat:
		cmds = append(cmds, m.input.Focus())
	case tabMood:
		cmds = append(cmds, m.moodNote.Focus())
	case tabInsights:
		if t, ok := m.app.BeginLoad(app.TimelineMoods); ok {
			cmds = append(cmds, m.loadMoodsCmd(t))
		}
		if t, ok := m.app.BeginLoad(app.TimelineTrends); ok {
			cmds = append(cmds, m.loadTrendsCmd(t))
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) submit() (tea.Model, tea.Cmd) {
	switch m.tab {
	case tabChat:
		ticket, err := m.app.BeginSend(m.input.Value())
		if err != nil {
			if errors.Is(err, app.ErrSendInFlight) {
				return m, m.notify("Still sending your last message.")
			}
			// Empty input is a silent no-op.
			return m, nil
		}
		m.input.Reset()
		m.refreshChat()
		return m, tea.Batch(m.sendCmd(ticket), m.spin.Tick)

	case tabMood:
		ticket, err := m.app.BeginMood(m.moodScore, m.moodNote.Value())
		if err != nil {
			return m, m.notify("Mood logging needs an active session.")
		}
		m.moodBusy = true
		return m, tea.Batch(m.logMoodCmd(ticket), m.spin.Tick)
	}
	return m, nil
}

func (m *Model) routeToWidgets(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch m.tab {
	case tabChat:
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
		m.chatVP, cmd = m.chatVP.Update(msg)
		cmds = append(cmds, cmd)
	case tabMood:
		m.moodNote, cmd = m.moodNote.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *Model) resize() {
	m.help.Width = m.width
	m.input.SetWidth(m.width - 6)
	m.chatVP.Width = m.width - 4
	m.chatVP.Height = m.contentHeight()
	m.refreshChat()
}

func (m *Model) contentHeight() int {
	// Top bar, tab row, input box, notice and footer rows.
	h := m.height - 10
	if m.app.Safety.Flagged() {
		h--
	}
	if h < 3 {
		h = 3
	}
	return h
}

func (m *Model) refreshChat() {
	m.chatVP.SetContent(m.renderMessages())
	m.chatVP.GotoBottom()
}
