package tui

import (
	"fmt"
	"strings"

	"github.com/javiermolinar/nightshift/internal/slider"
	"github.com/javiermolinar/nightshift/internal/tui/view"
)

// View renders the model.
func (m Model) View() string {
	return view.Render(view.ViewState{
		Width:   m.width,
		Height:  m.height,
		MarginX: marginX,
		Header:  m.renderHeader(),
		Bar:     view.RenderBar(m.barState()),
		Summary: m.renderSummary(),
		Prompt:  m.renderPrompt(),
		Status:  m.renderStatus(),
		Help:    m.help.View(m.keys),
		Bg:      m.styles.palette.Bg,
	})
}

func (m Model) barState() view.BarState {
	active := m.activeKnob()
	_, focused := m.slider.Active()

	var knobs [2]view.KnobMark
	for _, k := range []slider.Knob{slider.Start, slider.End} {
		knobs[k] = view.KnobMark{
			// Records the drawn position for the 18:00 edge.
			Ratio:  m.slider.KnobRatio(k),
			Label:  m.slider.Value(k).Format(m.use24h),
			Active: focused && k == active,
		}
	}

	ticks := 3
	if m.barWidth() < 48 {
		ticks = 6
	}

	return view.BarState{
		Width:    m.barWidth(),
		RTL:      m.rtl,
		Dim:      m.loading,
		Segments: m.slider.Segments(),
		Knobs:    knobs,
		Ticks:    view.HourTicks(ticks, m.use24h),
		Styles:   m.styles.Bar,
	}
}

func (m Model) renderHeader() string {
	title := m.styles.TitleStyle.Render("nightshift")
	if m.rtl {
		title += " " + m.styles.MutedStyle.Render("rtl")
	}
	return title
}

func (m Model) renderSummary() string {
	d := m.slider.Duration()
	s := m.styles.SummaryStyle.Render(fmt.Sprintf("%s → %s  %dh %02dm",
		m.slider.Start().Format(m.use24h),
		m.slider.End().Format(m.use24h),
		d/60, d%60,
	))
	if m.Dirty() {
		s += "  " + m.styles.DirtyStyle.Render("● unsaved")
	}
	return s
}

func (m Model) renderPrompt() string {
	if !m.prompting {
		return ""
	}
	return m.prompt.View()
}

func (m Model) renderStatus() string {
	if m.statusMsg == "" {
		return ""
	}
	if strings.HasPrefix(m.statusMsg, "Error:") || m.quitArmed {
		return m.styles.ErrorStyle.Render(m.statusMsg)
	}
	return m.styles.StatusStyle.Render(m.statusMsg)
}
