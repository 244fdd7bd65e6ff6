package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/nightshift/internal/clock"
	"github.com/javiermolinar/nightshift/internal/schedule"
)

func (a *App) showCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current window",
		Long: `Display the saved window as text and as a bar running from 18:00
to 18:00 the next day. Falls back to the configured default when nothing
has been saved yet.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			s, stored, err := a.current(context.Background())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			use24h := a.config.Slider.Use24Hour
			rtl := a.config.Slider.RTL
			width := termWidth() - 2

			PrintSchedule(out, s, use24h)
			fmt.Fprintln(out)
			fmt.Fprintln(out, ScheduleBar(s, width, rtl))
			fmt.Fprintln(out, formatMuted(HourScale(width, rtl, use24h)))
			fmt.Fprintln(out)

			now := clock.Normalize(time.Now().Hour()*60 + time.Now().Minute())
			if s.Contains(now) {
				fmt.Fprintln(out, formatOK("Active now"))
			} else {
				fmt.Fprintf(out, "Starts in %s\n", FormatDuration(clock.Forward(now, s.Start)))
			}

			if !stored {
				fmt.Fprintln(out, formatMuted("(default from config, nothing saved yet)"))
			} else if !s.UpdatedAt.IsZero() {
				fmt.Fprintln(out, formatMuted("Last changed "+s.UpdatedAt.Local().Format("2006-01-02 15:04")))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

// current returns the saved schedule, or the configured default if none was saved.
func (a *App) current(ctx context.Context) (*schedule.Schedule, bool, error) {
	s, err := a.repo.Get(ctx)
	if errors.Is(err, schedule.ErrNotFound) {
		def, err := a.config.DefaultSchedule()
		if err != nil {
			return nil, false, fmt.Errorf("default schedule: %w", err)
		}
		return def, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("loading schedule: %w", err)
	}
	return s, true, nil
}
