package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/docketry-labs/docketry-cli/internal/core/domain"
)

// Severity and verdict styling for terminal output.
var (
	styleHigh   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")).Bold(true)
	styleMedium = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))
	styleLow    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	styleClean      = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")).Bold(true)
	styleFlagged    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")).Bold(true)
	styleIncomplete = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")).Bold(true)

	styleHeading = lipgloss.NewStyle().Bold(true)
	styleMuted   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

// renderSeverity returns the coloured severity tag.
func renderSeverity(s domain.Severity) string {
	switch s {
	case domain.SeverityHigh:
		return styleHigh.Render(string(s))
	case domain.SeverityMedium:
		return styleMedium.Render(string(s))
	default:
		return styleLow.Render(string(s))
	}
}

// renderVerdict returns the coloured verdict line.
func renderVerdict(v domain.Verdict) string {
	switch v {
	case domain.VerdictClean:
		return styleClean.Render(string(v))
	case domain.VerdictIncomplete:
		return styleIncomplete.Render(string(v))
	default:
		return styleFlagged.Render(string(v))
	}
}
