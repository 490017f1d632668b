package ui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	TabOn    lipgloss.Style
	TabOff   lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Selected lipgloss.Style
	Pinned   lipgloss.Style
	Border   lipgloss.Style
	Hint     lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
}

var DefaultTheme = Theme{
	Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	TabOn:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89B4FA")).Underline(true),
	TabOff:   lipgloss.NewStyle().Faint(true),
	Label:    lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#89B4FA")),
	Value:    lipgloss.NewStyle().Foreground(lipgloss.Color("#F2CDCD")),
	Selected: lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("#313244")),
	Pinned:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9E2AF")),
	Border:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	Hint:     lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#CBA6F7")),
	Error:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
	Success:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
}
