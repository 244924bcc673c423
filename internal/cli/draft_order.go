package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/castaway-league/internal/domain/draft"
)

type draftOrderOptions struct {
	participants []string
	rosterSize   int
	style        string
}

// NewDraftOrderCommand previews the pick order for a participant list.
func NewDraftOrderCommand() *cobra.Command {
	opts := &draftOrderOptions{}

	cmd := &cobra.Command{
		Use:   "draft-order",
		Short: "Print the pick order for participants in join order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDraftOrder(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.participants, "participants", "p", nil, "participant ids in join order")
	cmd.Flags().IntVar(&opts.rosterSize, "roster-size", 3, "castaways per participant")
	cmd.Flags().StringVar(&opts.style, "style", string(draft.StyleSnake), "draft style (snake|linear)")
	_ = cmd.MarkFlagRequired("participants")

	return cmd
}

func runDraftOrder(w io.Writer, opts *draftOrderOptions) error {
	style, err := draft.ParseStyle(opts.style)
	if err != nil {
		return err
	}
	if opts.rosterSize < 1 {
		return fmt.Errorf("roster size must be >= 1")
	}

	participants := make([]string, 0, len(opts.participants))
	for _, p := range opts.participants {
		if p = strings.TrimSpace(p); p != "" {
			participants = append(participants, p)
		}
	}
	if len(participants) == 0 {
		return fmt.Errorf("at least one participant is required")
	}

	setup := draft.Setup{ParticipantIDs: participants, RosterSize: opts.rosterSize, Style: style}
	order := draft.Order(participants, setup.TotalPicks(), style)

	fmt.Fprintf(w, "style: %s  participants: %d  picks: %d\n", style, len(participants), len(order))
	fmt.Fprintf(w, "%4s  %5s  %s\n", "pick", "round", "participant")
	for i, participantID := range order {
		fmt.Fprintf(w, "%4d  %5d  %s\n", i+1, i/len(participants)+1, participantID)
	}
	return nil
}
