package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Output writes CLI messages, styled only when w is a terminal.
type Output struct {
	w      io.Writer
	styled bool
	theme  Theme
}

// NewOutput wraps w. Styling is on when w is a terminal file, unless force
// or disable says otherwise.
func NewOutput(w io.Writer, theme Theme, force, disable bool) *Output {
	styled := force
	if f, ok := w.(*os.File); ok && !force {
		styled = term.IsTerminal(int(f.Fd()))
	}
	if disable {
		styled = false
	}
	return &Output{w: w, styled: styled, theme: theme}
}

func (o *Output) render(st lipgloss.Style, s string) string {
	if !o.styled {
		return s
	}
	return st.Render(s)
}

func (o *Output) OK(msg string) {
	fmt.Fprintln(o.w, o.render(o.theme.Accent, "✔ "+msg))
}

func (o *Output) Fail(msg string) {
	fmt.Fprintln(o.w, o.render(o.theme.Error, "✖ "+msg))
}

func (o *Output) Println(s string) {
	if !o.styled {
		s = stripANSI(s)
	}
	fmt.Fprintln(o.w, s)
}

// Panel draws a framed box around lines.
func (o *Output) Panel(lines []string) {
	o.Println(PanelString(strings.Join(lines, "\n")))
}

// PanelString frames inner with the outer border used by both CLI and TUI.
func PanelString(inner string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(inner)
}

func stripANSI(s string) string { return ansiRegexp.ReplaceAllString(s, "") }
