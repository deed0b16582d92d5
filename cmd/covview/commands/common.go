// Package commands implements the covview subcommands.
package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/megjohnson1999/contig-coverage-viewer/internal/config"
	"github.com/megjohnson1999/contig-coverage-viewer/internal/coverage"
)

// Flag names shared across subcommands.
const (
	flagConfig      = "config"
	flagFasta       = "fasta"
	flagCoverageDir = "coverage-dir"
	flagOutput      = "output"
	flagTitle       = "title"
	flagDatasetName = "dataset-name"
)

// ErrFastaNotFound indicates the assembly FASTA file does not exist.
var ErrFastaNotFound = errors.New("FASTA file not found")

// ErrCoverageDirNotFound indicates the coverage directory does not exist.
var ErrCoverageDirNotFound = errors.New("coverage directory not found")

// configOverrides carries the CLI flag values that can override individual
// config keys. Empty strings mean "not set on the command line".
type configOverrides struct {
	fastaPath   string
	coverageDir string
	outputPath  string
	title       string
	datasetName string
}

// addConfigFlags registers the shared config flags on a subcommand.
func addConfigFlags(cmd *cobra.Command, configPath *string, o *configOverrides) {
	cmd.Flags().StringVarP(configPath, flagConfig, "c", "", "path to configuration file")
	cmd.Flags().StringVar(&o.fastaPath, flagFasta, "", "path to assembly FASTA file (overrides config)")
	cmd.Flags().StringVar(&o.coverageDir, flagCoverageDir, "", "directory with coverage BED files (overrides config)")
	cmd.Flags().StringVarP(&o.outputPath, flagOutput, "o", "", "output file path (overrides config)")
	cmd.Flags().StringVar(&o.title, flagTitle, "", "title for the visualization (overrides config)")
	cmd.Flags().StringVar(&o.datasetName, flagDatasetName, "", "dataset name for display (overrides config)")
}

// loadConfig loads configuration and applies command-line overrides.
func loadConfig(configPath string, o configOverrides) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if o.fastaPath != "" {
		cfg.FastaPath = o.fastaPath
	}

	if o.coverageDir != "" {
		cfg.CoverageDir = o.coverageDir
	}

	if o.outputPath != "" {
		cfg.OutputPath = o.outputPath
	}

	if o.title != "" {
		cfg.Title = o.title
	}

	if o.datasetName != "" {
		cfg.DatasetName = o.datasetName
	}

	return cfg, nil
}

// loadStore loads all coverage data configured in cfg.
func loadStore(cmd *cobra.Command, cfg *config.Config) (*coverage.Store, error) {
	statErr := requireDir(cfg.CoverageDir)
	if statErr != nil {
		return nil, statErr
	}

	store, err := coverage.LoadDir(cmd.Context(), cfg.CoverageDir)
	if err != nil {
		return nil, err
	}

	slog.Info("coverage data loaded", "contigs", store.Len(), "samples", len(store.Samples()))

	return store, nil
}

func requireFile(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return fmt.Errorf("%w: %s", ErrFastaNotFound, path)
	}

	return nil
}

func requireDir(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrCoverageDirNotFound, path)
	}

	return nil
}

// writeFile writes a report generated by render to path.
func writeFile(path string, render func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	renderErr := render(f)

	closeErr := f.Close()

	if renderErr != nil {
		return renderErr
	}

	if closeErr != nil {
		return fmt.Errorf("close %s: %w", path, closeErr)
	}

	return nil
}
