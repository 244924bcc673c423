package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/castaway-league/internal/platform/logging"
)

// RootOptions holds flags shared by every command.
type RootOptions struct {
	Verbose bool
	DBURL   string
}

func (o *RootOptions) logger() *logging.Logger {
	level := logging.LevelWarn
	if o.Verbose {
		level = logging.LevelDebug
	}
	return logging.NewJSONWriter(level, os.Stderr)
}

func (o *RootOptions) requireDBURL() (string, error) {
	dbURL := strings.TrimSpace(o.DBURL)
	if dbURL == "" {
		return "", fmt.Errorf("database url is required: set --db-url or DB_URL")
	}
	return dbURL, nil
}

// NewRootCommand builds the castawayctl command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "castawayctl",
		Short:         "Operate a castaway league deployment",
		Long:          "Admin tooling for schema migrations, draft order previews, scoring rules and score recalculation.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose logging to stderr")
	cmd.PersistentFlags().StringVar(&opts.DBURL, "db-url", os.Getenv("DB_URL"), "postgres connection url")

	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewDraftOrderCommand())
	cmd.AddCommand(NewScoringCommand())
	cmd.AddCommand(NewRecalculateCommand(opts))
	cmd.AddCommand(NewTokenCommand())

	return cmd
}
