// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/nightshift/internal/schedule"
)

// ScheduleLoadedMsg is sent when the stored schedule is loaded.
// Stored is false when nothing was saved yet and the fallback is shown instead.
type ScheduleLoadedMsg struct {
	Schedule *schedule.Schedule
	Stored   bool
}

// ScheduleSavedMsg is sent when the schedule is saved successfully.
type ScheduleSavedMsg struct {
	Schedule *schedule.Schedule
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadSchedule loads the current schedule, falling back when none is stored.
func LoadSchedule(repo schedule.Repository, fallback *schedule.Schedule) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		s, err := repo.Get(ctx)
		if errors.Is(err, schedule.ErrNotFound) {
			return ScheduleLoadedMsg{Schedule: fallback, Stored: false}
		}
		if err != nil {
			return ErrMsg{Err: err}
		}
		return ScheduleLoadedMsg{Schedule: s, Stored: true}
	}
}

// SaveSchedule stores s and records the change as coming from source.
func SaveSchedule(repo schedule.Repository, s *schedule.Schedule, source schedule.Source) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if err := repo.Save(ctx, s, source); err != nil {
			return ErrMsg{Err: fmt.Errorf("saving schedule: %w", err)}
		}
		return ScheduleSavedMsg{Schedule: s}
	}
}

// Status returns a command that shows msg in the status line.
func Status(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}

// ClearStatusAfter clears the status line after d.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
