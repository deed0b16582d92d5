// Package report renders analysis results for people: terminal tables,
// the contributions CSV, and the plain-text chimera summary.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/megjohnson1999/contig-coverage-viewer/internal/chimera"
)

// sampleShortParts is how many trailing underscore-separated parts of a
// sample name are kept for compact display.
const sampleShortParts = 3

// WriteScreenTable renders batch screening results as a ranked table with
// colored assessment labels.
func WriteScreenTable(w io.Writer, results []chimera.ScoreResult) {
	fmt.Fprintln(w, "CHIMERA SCREENING RESULTS:")

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false

	tbl.AppendHeader(table.Row{"Contig", "Score", "Leaders/Segments", "Assessment"})

	for _, r := range results {
		assessment := chimera.RatioAssessment(r.Score)

		tbl.AppendRow(table.Row{
			r.Contig,
			fmt.Sprintf("%.2f", r.Score),
			fmt.Sprintf("%d/%d", r.UniqueLeaders, r.Segments),
			colorizeAssessment(assessment),
		})
	}

	tbl.Render()
}

// WriteDetailReport renders a detailed single-contig analysis: contig
// summary, per-segment leaderboards, and the leader-count assessment.
func WriteDetailReport(w io.Writer, result *chimera.DetailResult) {
	fmt.Fprintf(w, "Contig length: %s bp\n", humanize.Comma(int64(result.Length)))
	fmt.Fprintf(w, "Total coverage positions: %s\n", humanize.Comma(int64(result.PositionCount)))
	fmt.Fprintf(w, "\nAnalyzing %d segments:\n\n", len(result.Segments))

	for _, seg := range result.Segments {
		fmt.Fprintf(w, "Segment %d: %s-%s bp\n",
			seg.Segment.Index+1,
			humanize.Comma(int64(seg.Segment.Start)),
			humanize.Comma(int64(seg.Segment.End)))

		if len(seg.Board) == 0 {
			fmt.Fprintln(w, "  (No samples with significant coverage)")
			fmt.Fprintln(w)

			continue
		}

		tbl := table.NewWriter()
		tbl.SetOutputMirror(w)
		tbl.SetStyle(table.StyleLight)
		tbl.Style().Options.SeparateRows = false

		tbl.AppendHeader(table.Row{"Sample", "Mean Coverage"})

		for _, cand := range seg.Board {
			tbl.AppendRow(table.Row{ShortSampleName(cand.Sample), fmt.Sprintf("%.1f", cand.Mean)})
		}

		tbl.Render()
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "CHIMERISM ASSESSMENT:")
	fmt.Fprintf(w, "Number of different 'dominant' samples across segments: %d\n", result.UniqueLeaders)
	fmt.Fprintln(w, colorizeAssessment(result.Assessment))
	fmt.Fprintf(w, "Segment leaders: %s\n", formatLeaders(result.Leaders))
}

// ShortSampleName keeps the last few underscore-separated parts of a long
// sample name for compact display.
func ShortSampleName(sample string) string {
	parts := strings.Split(sample, "_")
	if len(parts) <= sampleShortParts {
		return sample
	}

	return strings.Join(parts[len(parts)-sampleShortParts:], "_")
}

func formatLeaders(leaders []string) string {
	shown := make([]string, len(leaders))

	for i, leader := range leaders {
		if leader == chimera.NoLeader {
			shown[i] = "none"

			continue
		}

		shown[i] = ShortSampleName(leader)
	}

	return strings.Join(shown, ", ")
}

func colorizeAssessment(assessment string) string {
	switch assessment {
	case chimera.AssessLikelyChimeric:
		return color.New(color.FgRed).Sprint(assessment)
	case chimera.AssessPossiblyChimeric:
		return color.New(color.FgYellow).Sprint(assessment)
	default:
		return color.New(color.FgGreen).Sprint(assessment)
	}
}
