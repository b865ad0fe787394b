package ui

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/taskboard/internal/model"
)

// EmptyMessage is the placeholder shown when no task is visible.
const EmptyMessage = "No tasks yet. Add one above!"

var (
	ansiRegexp    = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)
	controlRegexp = regexp.MustCompile(`[\x00-\x08\x0b-\x1f\x7f]`)
)

// sanitize keeps user text from injecting terminal escape sequences.
func sanitize(s string) string {
	return controlRegexp.ReplaceAllString(ansiRegexp.ReplaceAllString(s, ""), "")
}

// CardState carries the transient visual state of one card.
type CardState struct {
	Selected bool
	Fading   bool
}

// Renderer turns tasks into cards.
type Renderer struct {
	Theme  Theme
	Locale Locale
	Width  int // outer card width; 0 sizes to content
}

func NewRenderer(theme Theme, loc Locale) *Renderer {
	return &Renderer{Theme: theme, Locale: loc}
}

// Card renders t as a framed block: title, description, deadline badge and
// delete control. A fading card collapses to its title line.
func (r *Renderer) Card(t model.Task, st CardState) string {
	th := r.Theme
	title := th.Title.Render(th.SymCheck + " " + sanitize(t.Name))

	box := th.Card
	if st.Selected {
		box = th.SelectedCard
	}
	if r.Width > 0 {
		box = box.Width(r.Width - box.GetHorizontalBorderSize())
	}

	if st.Fading {
		return box.Inherit(th.Fading).Render(th.Fading.Render(sanitize(t.Name)))
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		title,
		th.Body.Render(sanitize(t.Description)),
		th.Badge.Render("Deadline: "+FormatDeadline(t.Deadline, r.Locale)),
	)
	control := th.Muted.Render("[d] " + th.SymDelete)
	if st.Selected {
		control = th.Accent.Render("[d] " + th.SymDelete)
	}

	gap := 2
	if r.Width > 0 {
		inner := r.Width - box.GetHorizontalFrameSize()
		if g := inner - lipgloss.Width(left) - lipgloss.Width(control); g > gap {
			gap = g
		}
	}
	return box.Render(lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), control))
}

// Empty renders the empty-state placeholder.
func (r *Renderer) Empty() string {
	return r.Theme.Muted.Render(EmptyMessage)
}
