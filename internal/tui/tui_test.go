package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/taskboard/internal/app"
	"github.com/idilsaglam/taskboard/internal/model"
	"github.com/idilsaglam/taskboard/internal/store/jsonstore"
	"github.com/idilsaglam/taskboard/internal/store/slot"
	"github.com/idilsaglam/taskboard/internal/ui"
)

type harness struct {
	t     *testing.T
	m     Model
	store *jsonstore.Store
	app   *app.App
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	st := jsonstore.New(slot.NewFile(t.TempDir()), "", nil)
	a := app.New(st, app.Options{DeleteDelay: time.Millisecond})
	a.Boot()
	m := New(a, ui.NewRenderer(ui.ThemeByName("mono"), ui.ParseLocale("en-US")))
	m.now = func() time.Time { return time.Date(2025, 1, 5, 12, 0, 0, 0, time.UTC) }
	return &harness{t: t, m: m, store: st, app: a}
}

// send feeds msg to the model and returns the resulting command.
func (h *harness) send(msg tea.Msg) tea.Cmd {
	h.t.Helper()
	next, cmd := h.m.Update(msg)
	m, ok := next.(Model)
	require.True(h.t, ok)
	h.m = m
	return cmd
}

func (h *harness) key(t tea.KeyType) tea.Cmd { return h.send(tea.KeyMsg{Type: t}) }

func (h *harness) typeText(s string) {
	for _, r := range s {
		h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (h *harness) press(s string) tea.Cmd {
	return h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

// addTask fills the form from the list and submits it with enter.
func (h *harness) addTask(name, desc, deadline string) {
	h.t.Helper()
	h.press("a")
	require.Equal(h.t, focusName, h.m.focus)
	h.typeText(name)
	h.key(tea.KeyTab)
	h.typeText(desc)
	h.key(tea.KeyTab)
	h.typeText(deadline)
	h.key(tea.KeyEnter)
	h.key(tea.KeyEsc)
}

func TestBoard_SubmitFirstTask(t *testing.T) {
	h := newHarness(t)
	assert.Contains(t, h.m.View(), ui.EmptyMessage)

	h.addTask("Buy milk", "2%", "2025-01-05")

	assert.Equal(t, []model.Task{{Name: "Buy milk", Description: "2%", Deadline: "2025-01-05"}}, h.store.LoadAll())
	assert.Len(t, h.app.Nodes(), 1)
	view := h.m.View()
	assert.NotContains(t, view, ui.EmptyMessage)
	assert.Contains(t, view, "Deadline: Jan 5, 2025")
}

func TestBoard_SubmitResetsForm(t *testing.T) {
	h := newHarness(t)
	h.press("a")
	h.typeText("Buy milk")
	h.key(tea.KeyTab)
	h.typeText("2%")
	h.key(tea.KeyTab)
	h.typeText("2025-01-05")
	h.send(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Empty(t, h.m.name.Value())
	assert.Empty(t, h.m.desc.Value())
	assert.Empty(t, h.m.deadline.Value())
	assert.Equal(t, focusName, h.m.focus)
	assert.Empty(t, h.m.formErr)
}

func TestBoard_SecondTaskOnTop(t *testing.T) {
	h := newHarness(t)
	h.addTask("Buy milk", "2%", "2025-01-05")
	h.addTask("Buy bread", "rye", "2025-01-06")

	nodes := h.app.Nodes()
	require.Len(t, nodes, 2)
	assert.Equal(t, "Buy bread", nodes[0].Task.Name)

	persisted := h.store.LoadAll()
	require.Len(t, persisted, 2)
	assert.Equal(t, "Buy milk", persisted[0].Name)
	assert.Equal(t, "Buy bread", persisted[1].Name)
}

func TestBoard_DeleteOnlyTask(t *testing.T) {
	h := newHarness(t)
	h.addTask("Buy milk", "2%", "2025-01-05")
	require.Equal(t, focusList, h.m.focus)

	cmd := h.press("d")
	require.NotNil(t, cmd, "delete should schedule the commit")
	assert.True(t, h.app.Nodes()[0].Fading)
	assert.Len(t, h.store.LoadAll(), 1)

	assert.Nil(t, h.press("d"), "a fading card cannot be deleted twice")

	msg := cmd()
	require.IsType(t, commitRemoveMsg{}, msg)
	h.send(msg)
	h.send(msg) // a late duplicate commit is harmless

	assert.Empty(t, h.app.Nodes())
	assert.Equal(t, []model.Task{}, h.store.LoadAll())
	assert.Contains(t, h.m.View(), ui.EmptyMessage)
}

func TestBoard_BlankDescriptionAborts(t *testing.T) {
	h := newHarness(t)
	h.addTask("Buy milk", "2%", "2025-01-05")
	before := h.store.LoadAll()

	h.press("a")
	h.typeText("Call mom")
	h.key(tea.KeyTab)
	h.key(tea.KeyTab)
	h.typeText("2025-01-07")
	h.key(tea.KeyEnter)

	assert.Equal(t, "All fields are required", h.m.formErr)
	assert.Contains(t, h.m.View(), "All fields are required")
	assert.Len(t, h.app.Nodes(), 1)
	assert.Equal(t, before, h.store.LoadAll())
	assert.Equal(t, "Call mom", h.m.name.Value(), "aborted form keeps its input")
}

func TestBoard_EnterInDescriptionAddsNewline(t *testing.T) {
	h := newHarness(t)
	h.press("a")
	h.typeText("Shopping")
	h.key(tea.KeyTab)
	h.typeText("milk")
	h.key(tea.KeyEnter)
	h.typeText("eggs")

	assert.Equal(t, "milk\neggs", h.m.desc.Value())
	assert.Empty(t, h.store.LoadAll())
}

func TestBoard_DeadlinePicker(t *testing.T) {
	h := newHarness(t)
	h.press("a")
	h.key(tea.KeyShiftTab)
	require.Equal(t, focusDeadline, h.m.focus)

	h.key(tea.KeyUp)
	assert.Equal(t, "2025-01-05", h.m.deadline.Value(), "first step picks today")
	h.key(tea.KeyUp)
	h.key(tea.KeyUp)
	assert.Equal(t, "2025-01-07", h.m.deadline.Value())
	h.key(tea.KeyDown)
	assert.Equal(t, "2025-01-06", h.m.deadline.Value())
}

func TestBoard_CursorNavigation(t *testing.T) {
	h := newHarness(t)
	h.addTask("one", "1", "2025-01-01")
	h.addTask("two", "2", "2025-01-02")
	h.addTask("three", "3", "2025-01-03")

	h.press("j")
	h.press("j")
	h.press("j")
	assert.Equal(t, 2, h.m.cursor, "cursor stops at the last card")

	cmd := h.press("d")
	require.NotNil(t, cmd)
	h.send(cmd())
	assert.Equal(t, 1, h.m.cursor, "cursor clamps after removal")
	assert.Equal(t, []model.Task{
		{Name: "two", Description: "2", Deadline: "2025-01-02"},
		{Name: "three", Description: "3", Deadline: "2025-01-03"},
	}, h.store.LoadAll())

	h.press("k")
	h.press("k")
	assert.Equal(t, 0, h.m.cursor)
}

func TestBoard_Quit(t *testing.T) {
	h := newHarness(t)
	cmd := h.press("q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	h.press("a")
	h.typeText("q")
	assert.Equal(t, "q", h.m.name.Value(), "q types inside the form")

	cmd = h.key(tea.KeyCtrlC)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestBoard_WindowResize(t *testing.T) {
	h := newHarness(t)
	h.send(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 116, h.m.r.Width)
}
