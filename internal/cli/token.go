package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/castaway-league/internal/infrastructure/account/jwtauth"
	"github.com/riskibarqy/castaway-league/internal/platform/logging"
)

type tokenOptions struct {
	participantID string
	name          string
	ttl           time.Duration
	secret        string
	issuer        string
	audience      string
}

// NewTokenCommand mints bearer tokens for local testing.
func NewTokenCommand() *cobra.Command {
	opts := &tokenOptions{}

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue access tokens",
	}

	issue := &cobra.Command{
		Use:   "issue",
		Short: "Print a signed access token for a participant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(opts.secret) == "" {
				return fmt.Errorf("signing secret is required: set --secret or JWT_SECRET")
			}

			verifier, err := jwtauth.NewVerifier(jwtauth.Config{
				Secret:   opts.secret,
				Issuer:   opts.issuer,
				Audience: opts.audience,
			}, nil, logging.NewNop())
			if err != nil {
				return err
			}

			token, err := verifier.Issue(opts.participantID, opts.name, opts.ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	issue.Flags().StringVar(&opts.participantID, "participant", "", "participant id written to the subject claim")
	issue.Flags().StringVar(&opts.name, "name", "", "display name")
	issue.Flags().DurationVar(&opts.ttl, "ttl", 24*time.Hour, "token lifetime")
	issue.Flags().StringVar(&opts.secret, "secret", os.Getenv("JWT_SECRET"), "HMAC signing secret")
	issue.Flags().StringVar(&opts.issuer, "issuer", os.Getenv("JWT_ISSUER"), "issuer claim")
	issue.Flags().StringVar(&opts.audience, "audience", os.Getenv("JWT_AUDIENCE"), "audience claim")
	_ = issue.MarkFlagRequired("participant")
	cmd.AddCommand(issue)

	return cmd
}
