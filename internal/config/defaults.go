package config

// Default configuration values. These match the behavior of running the
// tool with no config file present.
const (
	DefaultFastaPath   = "assembly.fasta"
	DefaultCoverageDir = "coverage"
	DefaultOutputPath  = "interactive_coverage_viewer.html"
	DefaultTitle       = "Interactive Contig Coverage Viewer"
	DefaultDatasetName = "Contig Coverage Analysis"

	DefaultScreenMinScore  = 0.6
	DefaultScreenMinLength = 1000
)
