package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/megjohnson1999/contig-coverage-viewer/internal/config"
	"github.com/megjohnson1999/contig-coverage-viewer/internal/report"
)

const defaultContributionsCSV = "sample_contributions_detailed.csv"

// NewContributionsCommand creates the contributions subcommand: per-contig
// sample contribution summary with a detailed CSV report.
func NewContributionsCommand() *cobra.Command {
	var (
		configPath string
		overrides  configOverrides
		csvPath    string
	)

	cmd := &cobra.Command{
		Use:   "contributions",
		Short: "Per-contig sample contribution report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath, overrides)
			if err != nil {
				return err
			}

			return runContributions(cmd, cfg, csvPath)
		},
	}

	addConfigFlags(cmd, &configPath, &overrides)
	cmd.Flags().StringVar(&csvPath, "csv", defaultContributionsCSV,
		"path for the detailed CSV report")

	return cmd
}

func runContributions(cmd *cobra.Command, cfg *config.Config, csvPath string) error {
	store, err := loadStore(cmd, cfg)
	if err != nil {
		return err
	}

	results := report.Contributions(store)

	report.WriteContributionsSummary(os.Stdout, results)

	csvErr := writeFile(csvPath, func(f *os.File) error {
		return report.WriteContributionsCSV(f, results)
	})
	if csvErr != nil {
		return csvErr
	}

	fmt.Fprintf(os.Stdout, "Detailed results saved to %s\n", csvPath)

	return nil
}
