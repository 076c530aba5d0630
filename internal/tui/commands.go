package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"solace/internal/app"
)

// Messages carried back into the update loop. Every network result keeps
// the ticket it was issued under so the core can reject stale ones.

type sessionMsg struct {
	session *app.Session
	err     error
}

type chatReplyMsg struct {
	ticket app.SendTicket
	resp   *app.ChatResponse
	err    error
}

type messagesMsg struct {
	ticket app.LoadTicket
	msgs   []app.Message
	err    error
}

type moodsMsg struct {
	ticket app.LoadTicket
	moods  []app.MoodEntry
	err    error
}

type trendsMsg struct {
	ticket app.LoadTicket
	trends *app.SentimentTrends
	err    error
}

type resourcesMsg struct {
	dir *app.ResourceDirectory
	err error
}

type moodSavedMsg struct {
	ticket app.MoodTicket
	err    error
}

type deleteDoneMsg struct {
	ticket app.DeleteTicket
	err    error
}

type clearNoticeMsg struct {
	seq int
}

func (m *Model) requestCtx() (context.Context, context.CancelFunc) {
	timeout := time.Duration(m.app.Config.TimeoutSeconds) * time.Second
	return context.WithTimeout(context.Background(), timeout)
}

func (m *Model) createSessionCmd() tea.Cmd {
	nickname := m.app.Config.Nickname
	return func() tea.Msg {
		ctx, cancel := m.requestCtx()
		defer cancel()
		s, err := m.app.Client.CreateSession(ctx, nickname)
		return sessionMsg{session: s, err: err}
	}
}

func (m *Model) sendCmd(ticket app.SendTicket) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestCtx()
		defer cancel()
		resp, err := m.app.Client.SendMessage(ctx, ticket.SessionID, ticket.Text)
		return chatReplyMsg{ticket: ticket, resp: resp, err: err}
	}
}

func (m *Model) loadMessagesCmd(ticket app.LoadTicket) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestCtx()
		defer cancel()
		msgs, err := m.app.Client.ChatHistory(ctx, ticket.SessionID)
		return messagesMsg{ticket: ticket, msgs: msgs, err: err}
	}
}

func (m *Model) loadMoodsCmd(ticket app.LoadTicket) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestCtx()
		defer cancel()
		moods, err := m.app.Client.MoodHistory(ctx, ticket.SessionID)
		return moodsMsg{ticket: ticket, moods: moods, err: err}
	}
}

func (m *Model) loadTrendsCmd(ticket app.LoadTicket) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestCtx()
		defer cancel()
		trends, err := m.app.Client.SentimentTrends(ctx, ticket.SessionID)
		return trendsMsg{ticket: ticket, trends: trends, err: err}
	}
}

func (m *Model) loadResourcesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestCtx()
		defer cancel()
		dir, err := m.app.Client.Resources(ctx)
		return resourcesMsg{dir: dir, err: err}
	}
}

func (m *Model) logMoodCmd(ticket app.MoodTicket) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestCtx()
		defer cancel()
		err := m.app.Client.LogMood(ctx, ticket.SessionID, ticket.Score, ticket.Note)
		return moodSavedMsg{ticket: ticket, err: err}
	}
}

func (m *Model) deleteCmd(ticket app.DeleteTicket) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestCtx()
		defer cancel()
		err := m.app.Client.DeleteSessionData(ctx, ticket.SessionID)
		return deleteDoneMsg{ticket: ticket, err: err}
	}
}

// loadTimelineCmds issues fresh tickets for the three history feeds.
// Each feed is independent; one failing never blocks the others.
func (m *Model) loadTimelineCmds() []tea.Cmd {
	var cmds []tea.Cmd
	if t, ok := m.app.BeginLoad(app.TimelineMessages); ok {
		cmds = append(cmds, m.loadMessagesCmd(t))
	}
	if t, ok := m.app.BeginLoad(app.TimelineMoods); ok {
		cmds = append(cmds, m.loadMoodsCmd(t))
	}
	if t, ok := m.app.BeginLoad(app.TimelineTrends); ok {
		cmds = append(cmds, m.loadTrendsCmd(t))
	}
	return cmds
}

func (m *Model) notify(text string) tea.Cmd {
	m.notice = text
	m.noticeSeq++
	seq := m.noticeSeq
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}
