package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + card borders.
type Theme struct {
	Name string

	Title, Body, Badge, Muted, Accent, Error lipgloss.Style
	Fading                                   lipgloss.Style

	Card, SelectedCard lipgloss.Style

	SymCheck, SymDelete string
}

// ThemeNames lists the accepted theme names, default first.
var ThemeNames = []string{"classic", "neon", "mono"}

// ThemeByName returns the named theme; unknown names get classic.
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		card := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("13")).
			Padding(0, 1)
		return Theme{
			Name:         "neon",
			Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Body:         lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			Badge:        lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("14")).Padding(0, 1),
			Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Fading:       lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Card:         card,
			SelectedCard: card.BorderForeground(lipgloss.Color("11")),
			SymCheck:     "◼",
			SymDelete:    "✖",
		}
	case "mono":
		card := lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)
		return Theme{
			Name:         "mono",
			Title:        lipgloss.NewStyle().Bold(true),
			Body:         lipgloss.NewStyle(),
			Badge:        lipgloss.NewStyle(),
			Muted:        lipgloss.NewStyle(),
			Accent:       lipgloss.NewStyle(),
			Error:        lipgloss.NewStyle(),
			Fading:       lipgloss.NewStyle(),
			Card:         card,
			SelectedCard: card.Border(lipgloss.DoubleBorder()),
			SymCheck:     "[x]",
			SymDelete:    "x",
		}
	default: // classic
		card := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
		return Theme{
			Name:         "classic",
			Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
			Body:         lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
			Badge:        lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Background(lipgloss.Color("189")).Padding(0, 1),
			Muted:        lipgloss.NewStyle().Faint(true),
			Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Fading:       lipgloss.NewStyle().Faint(true),
			Card:         card,
			SelectedCard: card.BorderForeground(lipgloss.Color("12")),
			SymCheck:     "✔",
			SymDelete:    "🗑",
		}
	}
}
