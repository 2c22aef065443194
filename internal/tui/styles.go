package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/image-fetcher/internal/download"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#E95420")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#E95420")).
			Padding(1, 2)
)

// RenderEvent formats a progress event as a single styled status line.
// Styles collapse to plain text when the output is not a terminal.
func RenderEvent(event download.ProgressEvent) string {
	var style lipgloss.Style
	prefix := "•"
	switch event.Level {
	case download.LevelError:
		style = errorStyle
		prefix = "✗"
	case download.LevelWarning:
		style = warningStyle
		prefix = "✗"
	case download.LevelSuccess:
		style = successStyle
		prefix = "✓"
	case download.LevelInfo:
		style = infoStyle
		prefix = "›"
	default:
		style = dimStyle
	}
	return style.Render(prefix + " " + event.Message)
}

// RenderTitle formats a banner line.
func RenderTitle(s string) string {
	return titleStyle.Render(s)
}

// RenderDim formats secondary text.
func RenderDim(s string) string {
	return dimStyle.Render(s)
}
