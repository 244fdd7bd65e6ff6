// Package schedule defines the stored night schedule and its repository.
package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/javiermolinar/nightshift/internal/clock"
	"github.com/javiermolinar/nightshift/internal/slider"
)

// Domain errors.
var (
	ErrNotFound      = errors.New("no schedule saved yet")
	ErrTooClose      = fmt.Errorf("start and end must be at least %d minutes apart", slider.MinKnobsDistance)
	ErrInvalidSource = errors.New("source must be one of tui, cli, suggest, config")
)

// Source records what produced a schedule change.
type Source string

const (
	SourceTUI     Source = "tui"
	SourceCLI     Source = "cli"
	SourceSuggest Source = "suggest"
	SourceConfig  Source = "config"
)

// Valid returns true if the source is a known value.
func (s Source) Valid() bool {
	switch s {
	case SourceTUI, SourceCLI, SourceSuggest, SourceConfig:
		return true
	default:
		return false
	}
}

// Schedule is the recurring window between Start and End, wrapping past midnight when End < Start.
type Schedule struct {
	Start     clock.TimeOfDay
	End       clock.TimeOfDay
	UpdatedAt time.Time
}

// Change is one entry in the schedule history.
type Change struct {
	ID        int64
	Start     clock.TimeOfDay
	End       clock.TimeOfDay
	Source    Source
	ChangedAt time.Time
}

// Parse builds a schedule from two HH:MM strings.
func Parse(start, end string) (*Schedule, error) {
	s, err := clock.Parse(start)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	e, err := clock.Parse(end)
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}
	sch := &Schedule{Start: s, End: e}
	if err := sch.Validate(); err != nil {
		return nil, err
	}
	return sch, nil
}

// Validate checks the range and minimum separation.
func (s *Schedule) Validate() error {
	if s.Start < 0 || s.Start >= clock.MinutesPerDay || s.End < 0 || s.End >= clock.MinutesPerDay {
		return clock.ErrInvalidTime
	}
	if clock.Distance(s.Start, s.End) < slider.MinKnobsDistance {
		return ErrTooClose
	}
	return nil
}

// Duration returns the length of the window in minutes.
func (s *Schedule) Duration() int {
	return clock.Forward(s.Start, s.End)
}

// Contains reports whether t falls inside the window. Start is inclusive, end exclusive.
func (s *Schedule) Contains(t clock.TimeOfDay) bool {
	return clock.Forward(s.Start, t) < s.Duration()
}

// Slider returns a slider positioned at this schedule.
func (s *Schedule) Slider() *slider.Slider {
	return slider.New(s.Start, s.End)
}

// FromSlider captures the slider's current values.
func FromSlider(sl *slider.Slider, now time.Time) *Schedule {
	return &Schedule{Start: sl.Start(), End: sl.End(), UpdatedAt: now}
}

func (s *Schedule) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}
