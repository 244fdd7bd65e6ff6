package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/javiermolinar/nightshift/internal/clock"
	"github.com/javiermolinar/nightshift/internal/schedule"
	"github.com/javiermolinar/nightshift/internal/slider"
	"github.com/javiermolinar/nightshift/internal/tui/view"
)

// minBarWidth keeps the hour labels readable on narrow terminals.
const minBarWidth = 24

// ScheduleBar draws the day from 18:00 to 18:00 with the window filled in.
func ScheduleBar(s *schedule.Schedule, width int, rtl bool) string {
	width = max(minBarWidth, width)
	segments := s.Slider().Segments()

	var b strings.Builder
	for col := 0; col < width; col++ {
		if view.CellInRange(col, width, rtl, segments) {
			b.WriteString(formatRange("█"))
		} else {
			b.WriteString(formatTrack("░"))
		}
	}
	return b.String()
}

// HourScale returns the 18, 00, 06, 12, 18 labels aligned under a bar of the given width.
func HourScale(width int, rtl, use24h bool) string {
	width = max(minBarWidth, width)
	row := []rune(strings.Repeat(" ", width))
	for _, t := range view.HourTicks(6, use24h) {
		label := []rune(t.Label)
		col := view.Column(t.Ratio, width, rtl) - len(label)/2
		col = max(0, min(width-len(label), col))
		copy(row[col:], label)
	}
	return strings.TrimRight(string(row), " ")
}

// FormatDuration formats minutes as a human-readable duration.
func FormatDuration(minutes int) string {
	if minutes == 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}

// PrintSchedule writes the one-line summary of s.
func PrintSchedule(w io.Writer, s *schedule.Schedule, use24h bool) {
	fmt.Fprintf(w, "%s → %s  %s\n",
		formatHeader(s.Start.Format(use24h)),
		formatHeader(s.End.Format(use24h)),
		formatMuted("("+FormatDuration(s.Duration())+")"),
	)
}

// PrintChange writes one history row.
func PrintChange(w io.Writer, c *schedule.Change, use24h bool) {
	fmt.Fprintf(w, "%s  %s  %s → %s  %s\n",
		formatMuted(fmt.Sprintf("#%-4d", c.ID)),
		c.ChangedAt.Local().Format("2006-01-02 15:04"),
		c.Start.Format(use24h),
		c.End.Format(use24h),
		formatMuted(string(c.Source)),
	)
}

// printAdjusted notes when the slider moved a requested time to keep the knobs apart.
func printAdjusted(w io.Writer, k slider.Knob, requested, got clock.TimeOfDay, use24h bool) {
	if requested == got {
		return
	}
	fmt.Fprintln(w, formatWarn(fmt.Sprintf("%s %s is too close to the other end, moved to %s",
		k, requested.Format(use24h), got.Format(use24h))))
}
