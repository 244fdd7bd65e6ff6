// Package view provides view composition helpers for the TUI.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ViewState contains pre-rendered sections of the screen, top to bottom.
type ViewState struct {
	Width            int
	Height           int
	MarginX          int
	Header           string
	Bar              string
	Summary          string
	Prompt           string
	Status           string
	Help             string
	Bg               lipgloss.Color
	EmptyPlaceholder string
}

// Render composes the final view output.
// Rows are stacked from the top so that the bar stays at a fixed line for mouse hit testing.
func Render(state ViewState) string {
	if state.Width == 0 || state.Height == 0 {
		if state.EmptyPlaceholder != "" {
			return state.EmptyPlaceholder
		}
		return "Loading..."
	}

	sections := []string{state.Header, "", state.Bar, "", state.Summary}
	if state.Prompt != "" {
		sections = append(sections, "", state.Prompt)
	}
	sections = append(sections, "", state.Status, state.Help)

	pad := strings.Repeat(" ", state.MarginX)
	var lines []string
	for _, section := range sections {
		for _, line := range strings.Split(section, "\n") {
			lines = append(lines, ansi.Truncate(pad+line, state.Width, ""))
		}
	}
	if len(lines) > state.Height {
		lines = lines[:state.Height]
	}

	return lipgloss.NewStyle().
		Width(state.Width).
		Height(state.Height).
		Background(state.Bg).
		Render(strings.Join(lines, "\n"))
}
