// Package tui provides the terminal user interface for nightshift.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/nightshift/internal/tui/theme"
	"github.com/javiermolinar/nightshift/internal/tui/view"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	TitleStyle   lipgloss.Style
	SummaryStyle lipgloss.Style
	MutedStyle   lipgloss.Style
	DirtyStyle   lipgloss.Style
	StatusStyle  lipgloss.Style
	ErrorStyle   lipgloss.Style
	PromptStyle  lipgloss.Style

	Bar view.BarStyles
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)

	return &Styles{
		palette: p,

		TitleStyle: lipgloss.NewStyle().
			Foreground(p.TextOnAccent).
			Background(p.Accent).
			Bold(true).
			Padding(0, 1),
		SummaryStyle: lipgloss.NewStyle().Foreground(p.Fg),
		MutedStyle:   lipgloss.NewStyle().Foreground(p.FgMuted),
		DirtyStyle:   lipgloss.NewStyle().Foreground(p.Warning).Bold(true),
		StatusStyle:  lipgloss.NewStyle().Foreground(p.Accent),
		ErrorStyle:   lipgloss.NewStyle().Foreground(p.Warning),
		PromptStyle:  lipgloss.NewStyle().Foreground(p.Fg),

		Bar: view.BarStyles{
			Track:      lipgloss.NewStyle().Foreground(p.Track),
			Range:      lipgloss.NewStyle().Foreground(p.Range),
			RangeDim:   lipgloss.NewStyle().Foreground(p.RangeDim),
			Knob:       lipgloss.NewStyle().Foreground(p.Knob),
			KnobActive: lipgloss.NewStyle().Foreground(p.KnobActive).Bold(true),
			Label:      lipgloss.NewStyle().Foreground(p.FgMuted),
			LabelOn:    lipgloss.NewStyle().Foreground(p.TextOnAccent).Background(p.KnobActive),
			Tick:       lipgloss.NewStyle().Foreground(p.FgMuted),
		},
	}
}

// Help returns help styles matching the palette.
func (s *Styles) Help() help.Styles {
	styles := help.New().Styles
	styles.ShortKey = lipgloss.NewStyle().Foreground(s.palette.Fg)
	styles.ShortDesc = lipgloss.NewStyle().Foreground(s.palette.FgMuted)
	styles.ShortSeparator = lipgloss.NewStyle().Foreground(s.palette.FgMuted)
	styles.FullKey = styles.ShortKey
	styles.FullDesc = styles.ShortDesc
	styles.FullSeparator = styles.ShortSeparator
	return styles
}
