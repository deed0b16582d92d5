package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/megjohnson1999/contig-coverage-viewer/internal/chimera"
	"github.com/megjohnson1999/contig-coverage-viewer/internal/config"
	"github.com/megjohnson1999/contig-coverage-viewer/internal/coverage"
	"github.com/megjohnson1999/contig-coverage-viewer/internal/report"
	"github.com/megjohnson1999/contig-coverage-viewer/internal/viz"
)

const flagScreenHTML = "html"

// NewScreenCommand creates the screen subcommand: batch chimera screening
// over every contig with a ranked terminal table and an optional HTML
// chart report.
func NewScreenCommand() *cobra.Command {
	var (
		configPath string
		overrides  configOverrides
		htmlPath   string
	)

	cmd := &cobra.Command{
		Use:   "screen",
		Short: "Screen all contigs for chimerism",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath, overrides)
			if err != nil {
				return err
			}

			return runScreen(cmd, cfg, htmlPath)
		},
	}

	addConfigFlags(cmd, &configPath, &overrides)
	cmd.Flags().StringVar(&htmlPath, flagScreenHTML, "", "also write an HTML chart report to this path")

	return cmd
}

func runScreen(cmd *cobra.Command, cfg *config.Config, htmlPath string) error {
	store, err := loadStore(cmd, cfg)
	if err != nil {
		return err
	}

	results := chimera.Screen(store, cfg.Screen.MinLength)
	if len(results) == 0 {
		fmt.Fprintln(os.Stdout, "No contigs long enough to screen.")

		return nil
	}

	report.WriteScreenTable(os.Stdout, results)

	if htmlPath == "" {
		return nil
	}

	chartReport := &viz.ScreenReport{
		Title:   cfg.Title,
		Results: results,
		Leaders: screenLeaders(store, results),
	}

	writeErr := writeFile(htmlPath, func(f *os.File) error {
		return chartReport.Render(f)
	})
	if writeErr != nil {
		return writeErr
	}

	fmt.Fprintf(os.Stdout, "Chart report written: %s\n", htmlPath)

	return nil
}

// screenLeaders recomputes the leader sequence behind each screened score
// for the heatmap. Screening parameters must match chimera.Screen.
func screenLeaders(store *coverage.Store, results []chimera.ScoreResult) map[string][]string {
	leaders := make(map[string][]string, len(results))

	for _, r := range results {
		cc := store.Contig(r.Contig)
		if cc == nil {
			continue
		}

		leaders[r.Contig] = chimera.SegmentLeaders(cc, chimera.ScreenSegments, chimera.ScreenMinCoverage)
	}

	return leaders
}
