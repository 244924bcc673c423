package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/castaway-league/internal/app"
	"github.com/riskibarqy/castaway-league/internal/config"
	"github.com/riskibarqy/castaway-league/internal/usecase"
)

type recalculateOptions struct {
	seasonID string
	periodID string
}

// NewRecalculateCommand rebuilds period scores from the stored outcome log
// using the same configuration as the API.
func NewRecalculateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &recalculateOptions{}

	cmd := &cobra.Command{
		Use:   "recalculate",
		Short: "Recompute scores for a season or a single period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if strings.TrimSpace(rootOpts.DBURL) != "" {
				cfg.DBURL = rootOpts.DBURL
			}

			c, err := app.Build(cmd.Context(), cfg, rootOpts.logger())
			if err != nil {
				return err
			}
			defer c.Close()

			return runRecalculate(cmd.Context(), cmd.OutOrStdout(), c.Scoring, opts)
		},
	}

	cmd.Flags().StringVar(&opts.seasonID, "season", "", "season id")
	cmd.Flags().StringVar(&opts.periodID, "period", "", "period id; all periods when empty")
	_ = cmd.MarkFlagRequired("season")

	return cmd
}

func runRecalculate(ctx context.Context, w io.Writer, svc *usecase.ScoringService, opts *recalculateOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if strings.TrimSpace(opts.periodID) != "" {
		scores, err := svc.Recalculate(ctx, opts.seasonID, opts.periodID)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "period %s: %d participant score(s)\n", opts.periodID, len(scores))
		for _, s := range scores {
			fmt.Fprintf(w, "  %-16s %5d\n", s.ParticipantID, s.Score)
		}
		return nil
	}

	result, err := svc.RecalculateSeason(ctx, opts.seasonID)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "season %s: %d succeeded, %d failed, %d worker(s)\n",
		result.SeasonID, result.SuccessCount, result.FailedCount, result.WorkerCount)
	for _, p := range result.Periods {
		line := fmt.Sprintf("  period %d (%s): %s, %d participant(s)", p.PeriodNumber, p.PeriodID, p.Status, p.Participants)
		if p.Message != "" {
			line += ": " + p.Message
		}
		fmt.Fprintln(w, line)
	}
	if result.FailedCount > 0 {
		return fmt.Errorf("%d period(s) failed to recalculate", result.FailedCount)
	}
	return nil
}
