package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/nightshift/internal/schedule"
	"github.com/javiermolinar/nightshift/internal/slider"
	"github.com/javiermolinar/nightshift/internal/tui/commands"
	"github.com/javiermolinar/nightshift/internal/tui/input"
)

type keyMap struct {
	Switch      key.Binding
	Left        key.Binding
	Right       key.Binding
	LargeLeft   key.Binding
	LargeRight  key.Binding
	Goto        key.Binding
	ToggleRTL   key.Binding
	ToggleClock key.Binding
	Save        key.Binding
	Copy        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Switch: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch knob"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "step left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "step right"),
		),
		LargeLeft: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("shift+←", "hour left"),
		),
		LargeRight: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("shift+→", "hour right"),
		),
		Goto: key.NewBinding(
			key.WithKeys(":", "g"),
			key.WithHelp(":", "type time"),
		),
		ToggleRTL: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "flip direction"),
		),
		ToggleClock: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "12h/24h"),
		),
		Save: key.NewBinding(
			key.WithKeys("s", "ctrl+s"),
			key.WithHelp("s", "save"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Switch, k.Left, k.Right, k.Save, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Switch, k.Left, k.Right, k.LargeLeft, k.LargeRight},
		{k.Goto, k.ToggleRTL, k.ToggleClock},
		{k.Save, k.Copy, k.Help, k.Quit},
	}
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.logger.Debug("key", zap.String("key", msg.String()))

	if m.prompting {
		return m.handlePromptKeys(msg)
	}

	armed := m.quitArmed
	m.quitArmed = false

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.Dirty() && !armed {
			m.quitArmed = true
			m.statusMsg = "Unsaved changes, press q or ctrl+c again to quit"
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Switch):
		m.slider.Focus(m.activeKnob().Other())
		return m, nil

	case key.Matches(msg, m.keys.Left):
		return m.step(slider.Left, m.config.Slider.StepMinutes)
	case key.Matches(msg, m.keys.Right):
		return m.step(slider.Right, m.config.Slider.StepMinutes)
	case key.Matches(msg, m.keys.LargeLeft):
		return m.step(slider.Left, m.config.Slider.LargeStepMinutes)
	case key.Matches(msg, m.keys.LargeRight):
		return m.step(slider.Right, m.config.Slider.LargeStepMinutes)

	case key.Matches(msg, m.keys.Goto):
		m.prompting = true
		m.prompt.SetValue("")
		m.prompt.Placeholder = fmt.Sprintf("HH:MM or +30 / -1h for %s", m.activeKnob())
		return m, m.prompt.Focus()

	case key.Matches(msg, m.keys.ToggleRTL):
		m.rtl = !m.rtl
		return m, nil
	case key.Matches(msg, m.keys.ToggleClock):
		m.use24h = !m.use24h
		return m, nil

	case key.Matches(msg, m.keys.Save):
		return m.save()

	case key.Matches(msg, m.keys.Copy):
		text := m.currentSchedule().String()
		if err := m.copyToClipboard(text); err != nil {
			m.statusMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		return m, commands.Status("Copied " + text)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// step moves the focused knob one keyboard step.
func (m Model) step(dir slider.Direction, minutes int) (tea.Model, tea.Cmd) {
	k := m.activeKnob()
	delta := slider.KeyDelta(dir, minutes, m.rtl)
	v := m.slider.StepByKeyboard(k, delta)
	m.logger.Debug("keyboard step",
		zap.Stringer("knob", k),
		zap.Int("delta", delta),
		zap.Stringer("value", v),
	)
	return m, nil
}

// handlePromptKeys handles keys while the time prompt is open.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.prompting = false
		m.prompt.Blur()
		return m, nil
	case "enter":
		entry, err := input.ParseEntry(m.prompt.Value())
		m.prompting = false
		m.prompt.Blur()
		if errors.Is(err, input.ErrEmpty) {
			return m, nil
		}
		if err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", err)
			return m, nil
		}
		k := m.activeKnob()
		m.slider.Focus(k)
		v := m.slider.UpdateTime(k, entry.Proposed(m.slider.Value(k)), false)
		m.logger.Debug("typed time", zap.Stringer("knob", k), zap.Stringer("value", v))
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// save stores the current schedule if it changed.
func (m Model) save() (tea.Model, tea.Cmd) {
	if m.repo == nil {
		m.statusMsg = "Error: no database"
		return m, nil
	}
	if !m.Dirty() {
		return m, commands.Status("Nothing to save")
	}
	s := schedule.FromSlider(m.slider, m.now())
	return m, commands.SaveSchedule(m.repo, s, schedule.SourceTUI)
}
