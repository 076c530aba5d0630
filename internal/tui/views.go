package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"solace/internal/app"
)

func (m *Model) View() string {
	if !m.ready {
		return "\n  starting solace..."
	}

	var b strings.Builder
	b.WriteString(m.renderTopBar())
	b.WriteString("\n")
	if m.app.Safety.Flagged() {
		b.WriteString(m.renderBanner())
		b.WriteString("\n")
	}
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch {
	case m.app.Safety.ModalOpen():
		b.WriteString(m.renderCrisisModal())
	case m.confirmDelete:
		b.WriteString(m.renderDeleteConfirm())
	case m.app.Safety.PanelOpen():
		b.WriteString(m.renderPanicPanel())
	default:
		b.WriteString(m.renderTab())
	}
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(m.theme.Notice.Render(m.notice))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Footer.Render(m.help.View(m.keys)))
	return b.String()
}

func (m *Model) renderTopBar() string {
	title := m.theme.TopBarTitle.Render("solace")
	meta := ""
	if s := m.app.Sessions.Active(); s != nil {
		id := s.ID
		if len(id) > 8 {
			id = id[:8]
		}
		meta = m.theme.TopBarMeta.Render("session " + id)
	} else {
		meta = m.theme.TopBarMeta.Render("no session")
	}
	if m.app.Config.Nickname != "" {
		meta += m.theme.TopBarMeta.Render(" · " + m.app.Config.Nickname)
	}
	return m.theme.TopBar.Render(title + "  " + meta)
}

func (m *Model) renderBanner() string {
	text := "Support is available right now · press ctrl+r for crisis resources"
	return m.theme.Banner.Width(max(m.width-2, 20)).Render(text)
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if tabID(i) == m.tab {
			parts = append(parts, m.theme.TabActive.Render(name))
		} else {
			parts = append(parts, m.theme.TabInactive.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderTab() string {
	switch m.tab {
	case tabChat:
		return m.renderChat()
	case tabMood:
		return m.renderMood()
	case tabInsights:
		return m.renderInsights()
	case tabResources:
		return m.renderResources()
	}
	return ""
}

func (m *Model) renderChat() string {
	var b strings.Builder
	b.WriteString(m.chatVP.View())
	b.WriteString("\n")
	if m.app.Chat.Typing() {
		b.WriteString(m.theme.Spinner.Render(m.spin.View()) + m.theme.Neutral.Render(" listening..."))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.InputBox.Width(max(m.width-4, 20)).Render(m.input.View()))
	return b.String()
}

func (m *Model) renderMessages() string {
	msgs := m.app.Sync.Messages()
	if len(msgs) == 0 {
		return m.theme.Neutral.Render("This is a private space to talk. Say hi whenever you're ready.")
	}
	var b strings.Builder
	for _, msg := range msgs {
		role := m.theme.RoleAI.Render("solace")
		if msg.IsUser {
			role = m.theme.RoleYou.Render("you")
		}
		stamp := m.theme.TopBarMeta.Render(msg.Timestamp.Local().Format("15:04"))
		b.WriteString(role + " " + stamp + "\n")
		b.WriteString(msg.Content + "\n\n")
	}
	return b.String()
}

var moodLabels = [...]string{"Very low", "Low", "Okay", "Good", "Great"}

func (m *Model) renderMood() string {
	var b strings.Builder
	b.WriteString(m.theme.DialogT.Render("How are you feeling right now?"))
	b.WriteString("\n\n")

	cells := make([]string, 5)
	for i := range cells {
		label := fmt.Sprintf(" %d ", i+1)
		if i+1 == m.moodScore {
			cells[i] = m.theme.TabActive.Render("[" + label + "]")
		} else {
			cells[i] = m.theme.TabInactive.Render(label)
		}
	}
	b.WriteString(strings.Join(cells, " "))
	b.WriteString("  " + m.theme.Good.Render(moodLabels[m.moodScore-1]))
	b.WriteString("\n\n")
	b.WriteString(m.theme.InputBox.Width(max(m.width-4, 20)).Render(m.moodNote.View()))
	b.WriteString("\n")
	if m.moodBusy {
		b.WriteString(m.theme.Spinner.Render(m.spin.View()) + m.theme.Neutral.Render(" saving..."))
	} else {
		b.WriteString(m.theme.Neutral.Render("←/→ pick a score · enter to log it"))
	}
	return b.String()
}

func (m *Model) renderInsights() string {
	moods := m.app.Sync.Moods()
	trends := m.app.Sync.Trends()

	var b strings.Builder
	b.WriteString(m.theme.DialogT.Render("Your week at a glance"))
	b.WriteString("\n\n")

	if len(moods) == 0 {
		b.WriteString(m.theme.Neutral.Render("No mood entries yet. Log one from the Mood tab."))
	} else {
		b.WriteString(fmt.Sprintf("Average mood: %s over %d entries\n",
			m.theme.Good.Render(fmt.Sprintf("%.1f / 5", app.AverageMood(moods))), len(moods)))
	}
	b.WriteString("\n")

	if len(trends.Trends) == 0 {
		b.WriteString(m.theme.Neutral.Render("Sentiment trends appear after a few conversations."))
		return b.String()
	}

	counts := app.CountSentiment(trends.Trends)
	b.WriteString(fmt.Sprintf("Days: %s positive · %s neutral · %s challenging\n",
		m.theme.Good.Render(fmt.Sprintf("%d", counts.Positive)),
		m.theme.Neutral.Render(fmt.Sprintf("%d", counts.Neutral)),
		m.theme.Danger.Render(fmt.Sprintf("%d", counts.Challenging))))
	b.WriteString("\n")

	for _, bucket := range trends.Trends {
		class := app.ClassifySentiment(bucket.AvgSentiment)
		style := m.theme.Neutral
		switch class {
		case app.ClassPositive:
			style = m.theme.Good
		case app.ClassChallenging:
			style = m.theme.Danger
		}
		b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			bucket.Date,
			style.Render(fmt.Sprintf("%+.2f", bucket.AvgSentiment)),
			m.theme.TopBarMeta.Render(class.String())))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.TopBarMeta.Render(fmt.Sprintf(
		"Overall sentiment %+.2f across %d messages",
		trends.Summary.AvgSentiment, trends.Summary.TotalMessages)))
	return b.String()
}

func (m *Model) renderResourceList(items []app.Resource) string {
	var b strings.Builder
	for _, r := range items {
		b.WriteString("  " + m.theme.DialogT.Render(r.Name))
		if r.Phone != "" {
			b.WriteString("  " + m.theme.Danger.Render(r.Phone))
		}
		b.WriteString("\n")
		desc := r.Description
		if r.Website != "" {
			desc += " · " + r.Website
		}
		if r.Category != "" {
			desc += " (" + r.Category + ")"
		}
		b.WriteString("    " + m.theme.Neutral.Render(desc) + "\n")
	}
	return b.String()
}

func (m *Model) renderResources() string {
	dir := m.app.Directory
	if dir == nil {
		return m.theme.Neutral.Render("Loading resources...")
	}
	var b strings.Builder
	b.WriteString(m.theme.Danger.Render("In crisis") + "\n")
	b.WriteString(m.renderResourceList(dir.Crisis))
	b.WriteString("\n" + m.theme.DialogT.Render("Finding support") + "\n")
	b.WriteString(m.renderResourceList(dir.General))
	if len(dir.CopingStrategies) > 0 {
		b.WriteString("\n" + m.theme.DialogT.Render("Coping strategies") + "\n")
		b.WriteString(m.renderResourceList(dir.CopingStrategies))
	}
	return b.String()
}

func (m *Model) dialog(title, body, hint string) string {
	content := m.theme.DialogT.Render(title) + "\n\n" + body + "\n\n" + m.theme.TopBarMeta.Render(hint)
	box := m.theme.Dialog.Width(min(m.width-8, 70)).Render(content)
	return lipgloss.Place(max(m.width-2, 20), m.contentHeight(), lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) crisisResources() []app.Resource {
	if len(m.app.CrisisInline) > 0 {
		return m.app.CrisisInline
	}
	if m.app.Directory != nil && len(m.app.Directory.Crisis) > 0 {
		return m.app.Directory.Crisis
	}
	// Shown even when the directory never loaded.
	return []app.Resource{
		{Name: "Suicide & Crisis Lifeline", Phone: "988", Description: "24/7 crisis support"},
		{Name: "Crisis Text Line", Phone: "Text HOME to 741741", Description: "24/7 crisis support via text"},
	}
}

func (m *Model) renderCrisisModal() string {
	body := "It sounds like you might be going through something really difficult.\n" +
		"You deserve support from someone who can help right now.\n\n" +
		m.renderResourceList(m.crisisResources())
	return m.dialog("You're not alone", body, "esc to close · this banner stays available")
}

func (m *Model) renderPanicPanel() string {
	body := "Take a slow breath. Help is one call away.\n\n" + m.renderResourceList(m.crisisResources())
	return m.dialog("Quick help", body, "ctrl+p or esc to close")
}

func (m *Model) renderDeleteConfirm() string {
	body := m.theme.Danger.Render("This permanently deletes your conversation, mood log and sentiment history.") +
		"\nA fresh session starts afterwards. This cannot be undone."
	return m.dialog("Delete all your data?", body, "y to confirm · any other key to cancel")
}
