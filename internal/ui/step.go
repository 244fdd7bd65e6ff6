package ui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/nightshift/internal/schedule"
	"github.com/javiermolinar/nightshift/internal/slider"
)

func (a *App) stepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "step <start|end> <minutes>",
		Short: "Nudge one end by a number of minutes",
		Long: `Move one end of the window forward (positive) or backward (negative).
A step that would bring the ends within an hour of each other jumps over
the other end.

Examples:
  nightshift step start 15
  nightshift step end -- -30`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseKnob(args[0])
			if err != nil {
				return err
			}
			minutes, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid minutes %q: %w", args[1], err)
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := context.Background()
			current, _, err := a.current(ctx)
			if err != nil {
				return err
			}

			sl := current.Slider()
			sl.StepByKeyboard(k, minutes)
			s := schedule.FromSlider(sl, time.Now())
			if err := a.repo.Save(ctx, s, schedule.SourceCLI); err != nil {
				return fmt.Errorf("saving schedule: %w", err)
			}

			PrintSchedule(cmd.OutOrStdout(), s, a.config.Slider.Use24Hour)
			return nil
		},
	}
}

func parseKnob(s string) (slider.Knob, error) {
	switch s {
	case "start":
		return slider.Start, nil
	case "end":
		return slider.End, nil
	default:
		return 0, fmt.Errorf("invalid knob %q: must be start or end", s)
	}
}
