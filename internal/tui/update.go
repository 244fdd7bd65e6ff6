package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/nightshift/internal/slider"
	"github.com/javiermolinar/nightshift/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = max(0, msg.Width-2*marginX)
		return m, nil

	case tea.BlurMsg:
		// The release event is lost when focus leaves mid-drag.
		if ds, ok := m.slider.Dragging(); ok {
			k := ds.Knob
			m.slider.EndDrag(ds)
			m.slider.Focus(k)
			m.logger.Debug("drag end on blur", zap.String("drag_id", m.dragID))
			m.dragID = ""
		}
		return m, nil

	case commands.ScheduleLoadedMsg:
		m.slider = msg.Schedule.Slider()
		m.slider.Focus(slider.Start)
		m.saved = msg.Schedule
		m.loading = false
		m.logger.Info("schedule loaded", zap.Stringer("schedule", msg.Schedule), zap.Bool("stored", msg.Stored))
		if !msg.Stored {
			return m, commands.Status("No saved schedule yet, showing the default")
		}
		return m, nil

	case commands.ScheduleSavedMsg:
		m.saved = msg.Schedule
		m.logger.Info("schedule saved", zap.Stringer("schedule", msg.Schedule))
		return m, commands.Status("Saved " + msg.Schedule.String())

	case commands.ErrMsg:
		m.err = msg.Err
		m.loading = false
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusTime = time.Now().Add(5 * time.Second)
		m.logger.Error("command failed", zap.Error(msg.Err))
		return m, nil

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, commands.ClearStatusAfter(3 * time.Second)

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	if m.prompting {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}
