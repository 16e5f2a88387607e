package controller

import (
	"github.com/charmbracelet/lipgloss"

	m "hocwrap.dev/pkg/hocwrap/internal/model"
)

// Colour palette used for outcome labels.
var (
	colorGreen  = lipgloss.Color("82")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("204")
	colorCyan   = lipgloss.Color("14")
)

var (
	styleNoun    = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Faint(true)
	styleSummary = lipgloss.NewStyle().Bold(true)
)

// outcomeStyle maps an outcome to its label style.
func outcomeStyle(outcome m.Outcome) lipgloss.Style {
	switch outcome {
	case m.Modified:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case m.SkippedAlreadyDone:
		return lipgloss.NewStyle().Faint(true)
	case m.SkippedUnsupported:
		return lipgloss.NewStyle().Foreground(colorYellow)
	case m.MissingAnchor, m.Failed:
		return lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	default:
		return lipgloss.NewStyle()
	}
}
