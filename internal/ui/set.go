package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/nightshift/internal/clock"
	"github.com/javiermolinar/nightshift/internal/schedule"
	"github.com/javiermolinar/nightshift/internal/slider"
)

func (a *App) setCmd() *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the start and/or end time",
		Long: `Set the window directly.

With both --start and --end, the pair must be at least an hour apart.
With only one of them, the other end stays put; a time that lands within
an hour of it is moved to the far side, the same way arrow keys behave.

Examples:
  nightshift set --start 22:00 --end 06:30
  nightshift set --end 07:00`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if start == "" && end == "" {
				return errors.New("at least one of --start or --end is required")
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := context.Background()
			out := cmd.OutOrStdout()
			use24h := a.config.Slider.Use24Hour

			var s *schedule.Schedule
			if start != "" && end != "" {
				parsed, err := schedule.Parse(start, end)
				if err != nil {
					return err
				}
				s = parsed
			} else {
				current, _, err := a.current(ctx)
				if err != nil {
					return err
				}
				k, value := slider.Start, start
				if start == "" {
					k, value = slider.End, end
				}
				t, err := clock.Parse(value)
				if err != nil {
					return fmt.Errorf("%s: %w", k, err)
				}
				sl := current.Slider()
				got := sl.UpdateTime(k, int(t), false)
				printAdjusted(out, k, t, got, use24h)
				s = schedule.FromSlider(sl, time.Now())
			}

			s.UpdatedAt = time.Now()
			if err := a.repo.Save(ctx, s, schedule.SourceCLI); err != nil {
				return fmt.Errorf("saving schedule: %w", err)
			}
			PrintSchedule(out, s, use24h)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	return cmd
}
