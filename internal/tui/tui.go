// Package tui is the interactive task board: an add-task form above a list
// of task cards, newest first.
package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/taskboard/internal/app"
	"github.com/idilsaglam/taskboard/internal/ui"
)

const isoDate = "2006-01-02"

type focus int

const (
	focusList focus = iota
	focusName
	focusDescription
	focusDeadline
)

// commitRemoveMsg fires once the fade of a deleted card is over.
type commitRemoveMsg struct{ id app.NodeID }

// Model is the Bubble Tea model for the board.
type Model struct {
	app  *app.App
	r    *ui.Renderer
	keys keyMap
	help help.Model

	name     textinput.Model
	desc     textarea.Model
	deadline textinput.Model
	focus    focus

	cursor int // index into app.Nodes()

	formErr string
	status  string

	width, height int
	now           func() time.Time
}

// New builds the board over a booted app.
func New(a *app.App, r *ui.Renderer) Model {
	m := Model{
		app:    a,
		r:      r,
		keys:   defaultKeyMap(),
		help:   help.New(),
		width:  80,
		height: 24,
		now:    time.Now,
	}

	m.name = textinput.New()
	m.name.Prompt = ""
	m.name.Placeholder = "Task name"
	m.name.CharLimit = 200

	m.desc = textarea.New()
	m.desc.Placeholder = "Description"
	m.desc.ShowLineNumbers = false
	m.desc.CharLimit = 2000
	m.desc.SetHeight(3)

	m.deadline = textinput.New()
	m.deadline.Prompt = ""
	m.deadline.Placeholder = "YYYY-MM-DD (↑/↓ to pick)"
	m.deadline.CharLimit = len(isoDate)

	m.resize()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case commitRemoveMsg:
		if _, err := m.app.CommitRemove(msg.id); err != nil {
			m.status = "could not delete task: " + err.Error()
		}
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.focus == focusList {
			return m.updateList(msg)
		}
		return m.updateForm(msg)
	}

	return m.updateField(msg)
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	nodes := m.app.Nodes()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(nodes)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Delete):
		if m.cursor < 0 || m.cursor >= len(nodes) {
			return m, nil
		}
		id := nodes[m.cursor].ID
		if !m.app.BeginRemove(id) {
			return m, nil
		}
		m.status = ""
		return m, tea.Tick(m.app.DeleteDelay(), func(time.Time) tea.Msg {
			return commitRemoveMsg{id: id}
		})
	case key.Matches(msg, m.keys.Add):
		cmd := m.setFocus(focusName)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.formErr = ""
		cmd := m.setFocus(focusList)
		return m, cmd
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case msg.Type == tea.KeyEnter && m.focus != focusDescription:
		return m.submit()
	case key.Matches(msg, m.keys.Next):
		next := m.focus + 1
		if next > focusDeadline {
			next = focusName
		}
		cmd := m.setFocus(next)
		return m, cmd
	case key.Matches(msg, m.keys.Prev):
		prev := m.focus - 1
		if prev < focusName {
			prev = focusDeadline
		}
		cmd := m.setFocus(prev)
		return m, cmd
	case m.focus == focusDeadline && key.Matches(msg, m.keys.DayUp):
		m.stepDeadline(1)
		return m, nil
	case m.focus == focusDeadline && key.Matches(msg, m.keys.DayDown):
		m.stepDeadline(-1)
		return m, nil
	}
	return m.updateField(msg)
}

func (m Model) updateField(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusName:
		m.name, cmd = m.name.Update(msg)
	case focusDescription:
		m.desc, cmd = m.desc.Update(msg)
	case focusDeadline:
		m.deadline, cmd = m.deadline.Update(msg)
	}
	return m, cmd
}

// submit hands the form to the app. Incomplete forms only show a hint.
func (m Model) submit() (tea.Model, tea.Cmd) {
	_, err := m.app.Submit(app.Form{
		Name:        m.name.Value(),
		Description: m.desc.Value(),
		Deadline:    m.deadline.Value(),
	})
	switch {
	case errors.Is(err, app.ErrIncomplete):
		m.formErr = "All fields are required"
		return m, nil
	case err != nil:
		m.status = "could not save task: " + err.Error()
		return m, nil
	}
	m.formErr, m.status = "", ""
	m.name.Reset()
	m.desc.Reset()
	m.deadline.Reset()
	m.cursor = 0
	cmd := m.setFocus(focusName)
	return m, cmd
}

// stepDeadline moves the picked date by days, starting from today.
func (m *Model) stepDeadline(days int) {
	d, err := time.Parse(isoDate, m.deadline.Value())
	if err != nil {
		d = m.now()
		days = 0
	}
	m.deadline.SetValue(d.AddDate(0, 0, days).Format(isoDate))
	m.deadline.CursorEnd()
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.name.Blur()
	m.desc.Blur()
	m.deadline.Blur()
	switch f {
	case focusName:
		return m.name.Focus()
	case focusDescription:
		return m.desc.Focus()
	case focusDeadline:
		return m.deadline.Focus()
	}
	return nil
}

func (m *Model) clampCursor() {
	n := m.app.Len()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) resize() {
	inner := m.width - 4 // outer panel border and padding
	if inner < 20 {
		inner = 20
	}
	m.name.Width = inner - 16
	m.deadline.Width = inner - 16
	m.desc.SetWidth(inner - 14)
	m.r.Width = inner
	m.help.Width = inner
}

// Run starts the board on the alternate screen and blocks until it quits.
func Run(a *app.App, r *ui.Renderer, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(New(a, r), opts...).Run()
	return err
}
