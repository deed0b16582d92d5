// Package main provides the entry point for the covview CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/megjohnson1999/contig-coverage-viewer/cmd/covview/commands"
	"github.com/megjohnson1999/contig-coverage-viewer/internal/logutil"
	"github.com/megjohnson1999/contig-coverage-viewer/pkg/version"
)

var (
	verbose bool
	quiet   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "covview",
		Short: "Contig coverage viewer - per-sample coverage visualization and chimera screening",
		Long: `Covview loads per-base genome coverage tracks across sequencing samples
and an assembly contig list, then builds interactive coverage viewers and
flags contigs whose coverage support shifts between samples along their
length (chimera candidates).

Commands:
  view           Build the interactive coverage viewer HTML
  screen         Screen all contigs for chimerism
  inspect        Detailed coverage analysis of one contig
  extract        Extract and visualize chimeric contigs
  contributions  Per-contig sample contribution report`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logutil.Setup(verbose, quiet)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output")

	// Add commands.
	rootCmd.AddCommand(commands.NewViewCommand())
	rootCmd.AddCommand(commands.NewScreenCommand())
	rootCmd.AddCommand(commands.NewInspectCommand())
	rootCmd.AddCommand(commands.NewExtractCommand())
	rootCmd.AddCommand(commands.NewContributionsCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "covview %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
