package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/taskboard/internal/ui"
)

func (m Model) View() string {
	th := m.r.Theme

	header := fmt.Sprintf("%s  %s",
		th.Title.Render("Tasks"),
		th.Muted.Render(fmt.Sprintf("%d total", m.app.Len())),
	)
	form := m.formView()

	var helpLine string
	if m.focus == focusList {
		helpLine = m.help.ShortHelpView(m.keys.listHelp())
	} else {
		helpLine = m.help.ShortHelpView(m.keys.formHelp(m.focus == focusDeadline))
	}
	footer := helpLine
	if m.status != "" {
		footer = th.Error.Render(m.status) + "\n" + helpLine
	}

	used := lipgloss.Height(header) + lipgloss.Height(form) + lipgloss.Height(footer) + 4
	list := m.listView(m.height - used)

	return ui.PanelString(lipgloss.JoinVertical(lipgloss.Left, header, form, list, footer))
}

func (m Model) formView() string {
	th := m.r.Theme
	label := func(f focus, s string) string {
		s = fmt.Sprintf("%-12s", s)
		if m.focus == f {
			return th.Accent.Render("> " + s)
		}
		return th.Muted.Render("  " + s)
	}
	rows := []string{
		label(focusName, "Name") + m.name.View(),
		lipgloss.JoinHorizontal(lipgloss.Top, label(focusDescription, "Description"), m.desc.View()),
		label(focusDeadline, "Deadline") + m.deadline.View(),
	}
	title := "Add task"
	if m.formErr != "" {
		title += " " + th.Error.Render(m.formErr)
	}
	box := th.Card
	if m.focus != focusList {
		box = th.SelectedCard
	}
	if m.r.Width > 0 {
		box = box.Width(m.r.Width - box.GetHorizontalBorderSize())
	}
	return box.Render(title + "\n" + strings.Join(rows, "\n"))
}

// listView renders as many cards as fit in height, scrolled so the cursor
// card is visible. With no nodes it renders the empty-state placeholder.
func (m Model) listView(height int) string {
	nodes := m.app.Nodes()
	if len(nodes) == 0 || m.app.PlaceholderVisible() {
		return m.r.Empty()
	}

	cards := make([]string, len(nodes))
	for i, n := range nodes {
		cards[i] = m.r.Card(n.Task, ui.CardState{
			Selected: m.focus == focusList && i == m.cursor,
			Fading:   n.Fading,
		})
	}

	start := 0
	for start < m.cursor && stackHeight(cards[start:m.cursor+1]) > height {
		start++
	}

	var out []string
	used := 0
	for _, c := range cards[start:] {
		h := lipgloss.Height(c)
		if used+h > height && len(out) > 0 {
			break
		}
		out = append(out, c)
		used += h
	}
	if rest := len(cards) - start - len(out); rest > 0 {
		out = append(out, m.r.Theme.Muted.Render(fmt.Sprintf("… %d more", rest)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

func stackHeight(cards []string) int {
	h := 0
	for _, c := range cards {
		h += lipgloss.Height(c)
	}
	return h
}
