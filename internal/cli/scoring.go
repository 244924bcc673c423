package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/riskibarqy/castaway-league/internal/domain/scoring"
)

// NewScoringCommand inspects scoring rules offline.
func NewScoringCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scoring",
		Short: "Inspect scoring rules",
	}

	var overridePath string
	resolve := &cobra.Command{
		Use:   "resolve",
		Short: "Print the effective points after applying an override file",
		Long: `Resolve merges a YAML override onto the default points table.

The file is a flat map of outcome kind to points, e.g.

  immunity_win: 4
  voted_out: -3

Unknown kinds are reported and ignored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			override, ignored, err := loadOverrideFile(overridePath)
			if err != nil {
				return err
			}
			writeRules(cmd.OutOrStdout(), override, ignored)
			return nil
		},
	}
	resolve.Flags().StringVarP(&overridePath, "override", "o", "", "path to a YAML override file")
	cmd.AddCommand(resolve)

	return cmd
}

func loadOverrideFile(path string) (scoring.Override, []string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read override file: %w", err)
	}
	return parseOverrideYAML(raw)
}

func parseOverrideYAML(raw []byte) (scoring.Override, []string, error) {
	var values map[string]int
	if err := yaml.Unmarshal(raw, &values); err != nil {
		return nil, nil, fmt.Errorf("decode override yaml: %w", err)
	}

	override, ignored := scoring.ParseOverride(values)
	return override, ignored, nil
}

func writeRules(w io.Writer, override scoring.Override, ignored []string) {
	rules := scoring.Resolve(override)
	for _, kind := range scoring.Kinds() {
		source := "default"
		if _, ok := override[kind]; ok {
			source = "override"
		}
		fmt.Fprintf(w, "%-12s %4d  %s\n", kind, scoring.ScoreFor(kind, rules), source)
	}
	if len(ignored) > 0 {
		fmt.Fprintf(w, "ignored: %s\n", strings.Join(ignored, ", "))
	}
}
