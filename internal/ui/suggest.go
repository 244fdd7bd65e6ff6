package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/nightshift/internal/llm"
	"github.com/javiermolinar/nightshift/internal/schedule"
	"github.com/javiermolinar/nightshift/internal/slider"
)

const suggestTimeout = 2 * time.Minute

func (a *App) suggestCmd() *cobra.Command {
	var (
		modelFlag string
		apply     bool
	)

	cmd := &cobra.Command{
		Use:   "suggest [request]",
		Short: "Ask an LLM to propose a window",
		Long: `Describe the window you want in plain words and let the configured
LLM propose start and end times. The proposal goes through the same rules
as the slider, so the ends always stay at least an hour apart.

Examples:
  nightshift suggest "quiet hours from after dinner until I wake at 7"
  nightshift suggest "make it an hour shorter" --apply`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			request := strings.Join(args, " ")

			// Use config default for model if not overridden
			model := modelFlag
			if model == "" {
				model = a.config.LLM.Model
			}

			client, err := a.newClient(a.config.LLM.Provider, model, a.config.LLM.BaseURL)
			if err != nil {
				return fmt.Errorf("creating LLM client: %w", err)
			}

			ctx, cancel := context.WithTimeout(context.Background(), suggestTimeout)
			defer cancel()

			current, _, err := a.current(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			use24h := a.config.Slider.Use24Hour
			fmt.Fprintln(out, formatMuted("Asking "+a.config.LLM.Provider+"..."))

			suggestion, err := llm.Suggest(ctx, client, request, current)
			if err != nil {
				return err
			}
			a.logger.Info("suggestion",
				zap.String("request", request),
				zap.Stringer("start", suggestion.Start),
				zap.Stringer("end", suggestion.End),
			)

			sl := suggestion.Slider()
			printAdjusted(out, slider.End, suggestion.End, sl.End(), use24h)
			proposed := schedule.FromSlider(sl, time.Now())

			PrintSchedule(out, proposed, use24h)
			if suggestion.Reason != "" {
				fmt.Fprintln(out, formatMuted(suggestion.Reason))
			}

			if !apply {
				fmt.Fprintln(out, formatMuted("\n(not saved, rerun with --apply to keep it)"))
				return nil
			}
			if err := a.repo.Save(ctx, proposed, schedule.SourceSuggest); err != nil {
				return fmt.Errorf("saving schedule: %w", err)
			}
			fmt.Fprintln(out, formatOK("Saved."))
			return nil
		},
	}

	cmd.Flags().StringVar(&modelFlag, "model", "", "LLM model to use (from config if not set)")
	cmd.Flags().BoolVar(&apply, "apply", false, "Save the proposed window")

	return cmd
}
