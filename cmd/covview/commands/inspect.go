package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/megjohnson1999/contig-coverage-viewer/internal/chimera"
	"github.com/megjohnson1999/contig-coverage-viewer/internal/config"
	"github.com/megjohnson1999/contig-coverage-viewer/internal/report"
)

const flagMinCoverage = "min-coverage"

// NewInspectCommand creates the inspect subcommand: detailed coverage
// distribution analysis of a single contig with per-segment leaderboards.
func NewInspectCommand() *cobra.Command {
	var (
		configPath  string
		overrides   configOverrides
		minCoverage float64
	)

	cmd := &cobra.Command{
		Use:   "inspect <contig>",
		Short: "Detailed coverage analysis of one contig",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, overrides)
			if err != nil {
				return err
			}

			return runInspect(cmd, cfg, args[0], minCoverage)
		},
	}

	addConfigFlags(cmd, &configPath, &overrides)
	cmd.Flags().Float64Var(&minCoverage, flagMinCoverage, chimera.DefaultDetailMinCoverage,
		"minimum mean coverage for a sample to count within a segment")

	return cmd
}

func runInspect(cmd *cobra.Command, cfg *config.Config, contig string, minCoverage float64) error {
	store, err := loadStore(cmd, cfg)
	if err != nil {
		return err
	}

	result, err := chimera.AnalyzeContig(store, contig, minCoverage)
	if err != nil {
		return err
	}

	report.WriteDetailReport(os.Stdout, result)

	return nil
}
