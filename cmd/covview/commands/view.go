package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/megjohnson1999/contig-coverage-viewer/internal/config"
	"github.com/megjohnson1999/contig-coverage-viewer/internal/coverage"
	"github.com/megjohnson1999/contig-coverage-viewer/internal/viz"
)

const (
	flagMinMeanCoverage = "min-mean-coverage"
	flagMaxSamples      = "max-samples"
)

// NewViewCommand creates the view subcommand: it builds the self-contained
// interactive coverage viewer HTML, optionally filtering each contig to its
// top contributing samples.
func NewViewCommand() *cobra.Command {
	var (
		configPath string
		overrides  configOverrides
		filter     coverage.FilterOptions
	)

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Build the interactive coverage viewer HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath, overrides)
			if err != nil {
				return err
			}

			return runView(cmd, cfg, filter)
		},
	}

	addConfigFlags(cmd, &configPath, &overrides)
	cmd.Flags().Float64Var(&filter.MinMeanCoverage, flagMinMeanCoverage, 0,
		"drop samples below this mean coverage per contig (0 = keep all)")
	cmd.Flags().IntVar(&filter.MaxSamples, flagMaxSamples, 0,
		"keep at most this many samples per contig, highest mean first (0 = unlimited)")

	return cmd
}

func runView(cmd *cobra.Command, cfg *config.Config, filter coverage.FilterOptions) error {
	fastaErr := requireFile(cfg.FastaPath)
	if fastaErr != nil {
		return fastaErr
	}

	contigs, err := coverage.ContigNames(cfg.FastaPath)
	if err != nil {
		return err
	}

	store, err := loadStore(cmd, cfg)
	if err != nil {
		return err
	}

	if filter.MinMeanCoverage > 0 || filter.MaxSamples > 0 {
		before := store.Len()
		store = coverage.FilterSamples(store, filter)

		fmt.Fprintf(os.Stdout, "Filtering kept %d of %d contigs\n", store.Len(), before)
	}

	viewer := &viz.Viewer{
		Title:       cfg.Title,
		DatasetName: cfg.DatasetName,
		Contigs:     contigs,
		Store:       store,
	}

	writeErr := writeFile(cfg.OutputPath, func(f *os.File) error {
		return viewer.Render(f)
	})
	if writeErr != nil {
		return writeErr
	}

	fmt.Fprintf(os.Stdout, "Interactive HTML generated: %s\n", cfg.OutputPath)

	return nil
}
