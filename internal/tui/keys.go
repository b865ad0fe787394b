package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down, Delete, Add, Quit key.Binding

	Next, Prev, Submit, Back key.Binding
	DayUp, DayDown           key.Binding

	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Delete: key.NewBinding(key.WithKeys("d", "delete", "x"), key.WithHelp("d", "delete")),
		Add:    key.NewBinding(key.WithKeys("a", "tab", "n"), key.WithHelp("a", "add")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),

		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Submit:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s/enter", "add task")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to list")),
		DayUp:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "change day")),
		DayDown: key.NewBinding(key.WithKeys("down")),

		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Delete, k.Add, k.Quit}
}

func (k keyMap) formHelp(onDeadline bool) []key.Binding {
	b := []key.Binding{k.Submit, k.Next, k.Prev, k.Back}
	if onDeadline {
		b = append(b, k.DayUp)
	}
	return b
}
