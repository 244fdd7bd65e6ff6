package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/javiermolinar/nightshift/internal/slider"
	"github.com/javiermolinar/nightshift/internal/tui/view"
)

const (
	marginX      = 2
	barTop       = 2 // header and a blank line sit above the bar
	minBarWidth  = 24
	knobHitCells = 2
)

// barWidth is the width of the track in cells.
func (m Model) barWidth() int {
	return max(minBarWidth, m.width-2*marginX)
}

// knobAt returns the knob under screen cell (x, y), if any.
// When both knobs are in reach the closer one wins, ties go to the focused knob.
func (m Model) knobAt(x, y int) (slider.Knob, bool) {
	if y < barTop+view.LabelRow || y > barTop+view.TrackRow {
		return 0, false
	}
	col := x - marginX
	width := m.barWidth()

	best, bestDist := slider.Start, -1
	for _, k := range []slider.Knob{m.activeKnob(), m.activeKnob().Other()} {
		kc := view.Column(m.slider.PeekRatio(k), width, m.rtl)
		d := abs(col - kc)
		if d > knobHitCells {
			continue
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = k, d
		}
	}
	return best, bestDist >= 0
}

// handleMouseMsg turns press, motion and release into a drag session.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		k, ok := m.knobAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		ds := m.slider.BeginDrag(k)
		m.dragID = uuid.NewString()
		m.dragFromX = msg.X
		m.quitArmed = false
		m.logger.Debug("drag start",
			zap.String("drag_id", m.dragID),
			zap.Stringer("knob", k),
			zap.Stringer("value", ds.StartValue),
		)
		return m, nil

	case tea.MouseActionMotion:
		ds, ok := m.slider.Dragging()
		if !ok {
			return m, nil
		}
		v, moved := m.slider.ContinueDrag(ds, float64(msg.X-m.dragFromX), float64(m.barWidth()), m.rtl)
		if moved {
			m.logger.Debug("drag move",
				zap.String("drag_id", m.dragID),
				zap.Int("dx", msg.X-m.dragFromX),
				zap.Stringer("value", v),
			)
		}
		return m, nil

	case tea.MouseActionRelease:
		ds, ok := m.slider.Dragging()
		if !ok {
			return m, nil
		}
		m.slider.EndDrag(ds)
		m.logger.Debug("drag end",
			zap.String("drag_id", m.dragID),
			zap.Stringer("knob", ds.Knob),
			zap.Stringer("value", m.slider.Value(ds.Knob)),
		)
		m.dragID = ""
		return m, nil
	}
	return m, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
