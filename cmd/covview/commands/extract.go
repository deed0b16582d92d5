package commands

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/megjohnson1999/contig-coverage-viewer/internal/chimera"
	"github.com/megjohnson1999/contig-coverage-viewer/internal/config"
	"github.com/megjohnson1999/contig-coverage-viewer/internal/coverage"
	"github.com/megjohnson1999/contig-coverage-viewer/internal/report"
	"github.com/megjohnson1999/contig-coverage-viewer/internal/viz"
)

const (
	flagMinScore = "min-score"
	flagSuffix   = "suffix"

	defaultExtractSuffix = "analysis"
)

// NewExtractCommand creates the extract subcommand: it screens all contigs,
// keeps those at or above the score threshold, and writes a dedicated
// viewer plus a plain-text summary for the flagged subset.
func NewExtractCommand() *cobra.Command {
	var (
		configPath string
		overrides  configOverrides
		minScore   float64
		suffix     string
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract and visualize chimeric contigs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath, overrides)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed(flagMinScore) {
				minScore = cfg.Screen.MinScore
			}

			return runExtract(cmd, cfg, minScore, suffix)
		},
	}

	addConfigFlags(cmd, &configPath, &overrides)
	cmd.Flags().Float64Var(&minScore, flagMinScore, chimera.DefaultExtractMinScore,
		"minimum chimera score for a contig to be extracted")
	cmd.Flags().StringVar(&suffix, flagSuffix, defaultExtractSuffix,
		"suffix for the output file names")

	return cmd
}

func runExtract(cmd *cobra.Command, cfg *config.Config, minScore float64, suffix string) error {
	store, err := loadStore(cmd, cfg)
	if err != nil {
		return err
	}

	flagged := chimera.Extract(store, minScore, cfg.Screen.MinLength)
	if len(flagged) == 0 {
		fmt.Fprintf(os.Stdout, "No contigs found with chimera score >= %g\n", minScore)

		return nil
	}

	names := lo.Map(flagged, func(r chimera.ScoreResult, _ int) string {
		return r.Contig
	})

	fmt.Fprintf(os.Stdout, "Found %d potentially chimeric contigs:\n", len(names))

	for _, r := range flagged {
		fmt.Fprintf(os.Stdout, "  %s: score=%.2f (%d different segment leaders)\n",
			r.Contig, r.Score, r.UniqueLeaders)
	}

	subset := coverage.Subset(store, names)
	sampleCount := len(subset.Samples())

	htmlName := fmt.Sprintf("chimeric_contigs_%s.html", suffix)
	summaryName := fmt.Sprintf("chimeric_contigs_summary_%s.txt", suffix)

	viewer := &viz.Viewer{
		Title:       fmt.Sprintf("Potentially Chimeric Contigs (Score >= %g)", minScore),
		DatasetName: fmt.Sprintf("Chimeric Contigs Analysis - %d contigs, %d samples", len(names), sampleCount),
		Contigs:     names,
		Store:       subset,
	}

	htmlErr := writeFile(htmlName, func(f *os.File) error {
		return viewer.Render(f)
	})
	if htmlErr != nil {
		return htmlErr
	}

	fmt.Fprintf(os.Stdout, "Chimeric contig visualization created: %s\n", htmlName)

	summaryErr := writeFile(summaryName, func(f *os.File) error {
		report.WriteChimericSummary(f, flagged, report.SummaryParams{
			MinScore:     minScore,
			SampleCount:  sampleCount,
			HTMLFileName: htmlName,
		})

		return nil
	})
	if summaryErr != nil {
		return summaryErr
	}

	fmt.Fprintf(os.Stdout, "Summary report created: %s\n", summaryName)

	return nil
}
