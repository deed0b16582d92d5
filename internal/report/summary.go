package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/megjohnson1999/contig-coverage-viewer/internal/chimera"
)

const summaryRuleWidth = 50

// SummaryParams describes one chimeric-subset extraction run.
type SummaryParams struct {
	MinScore     float64
	SampleCount  int
	HTMLFileName string
}

// WriteChimericSummary writes the plain-text report accompanying a chimeric
// contig visualization: the run parameters and one line per flagged contig.
func WriteChimericSummary(w io.Writer, flagged []chimera.ScoreResult, params SummaryParams) {
	rule := strings.Repeat("=", summaryRuleWidth)

	fmt.Fprintln(w, "CHIMERIC CONTIGS ANALYSIS SUMMARY")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Analysis parameters:")
	fmt.Fprintf(w, "  Minimum chimera score: %g\n", params.MinScore)
	fmt.Fprintf(w, "  Total contigs flagged: %d\n", len(flagged))
	fmt.Fprintf(w, "  Total samples involved: %d\n\n", params.SampleCount)

	fmt.Fprintln(w, "Flagged contigs:")
	fmt.Fprintln(w, strings.Repeat("-", summaryRuleWidth))

	for _, r := range flagged {
		fmt.Fprintf(w, "%-15s Score: %.2f  Leaders: %d\n", r.Contig, r.Score, r.UniqueLeaders)
	}

	if params.HTMLFileName != "" {
		fmt.Fprintf(w, "\nVisualization file: %s\n", params.HTMLFileName)
		fmt.Fprintln(w, "Open this HTML file in a web browser to explore the coverage patterns.")
	}
}
