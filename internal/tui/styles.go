package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/napolitain/pitch-pine-trail/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A6E3A1")).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(1, 2)

	narrationStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#F9E2AF"))

	keyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#89B4FA"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086"))

	lossStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F38BA8"))

	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A6E3A1"))
)

// riskStyle colours a risk level: High red, Moderate yellow, Low green
func riskStyle(level models.RiskLevel) lipgloss.Style {
	switch level {
	case models.RiskHigh:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8"))
	case models.RiskModerate:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
	}
}
