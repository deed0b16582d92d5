package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/megjohnson1999/contig-coverage-viewer/internal/coverage"
)

// contributingMeanFloor filters out samples with negligible mean coverage.
const contributingMeanFloor = 0.1

// contributionsShown caps the per-contig sample list in the console summary.
const contributionsShown = 5

// SampleContribution is one contributing sample on one contig.
type SampleContribution struct {
	Sample string
	Mean   float64
	Max    float64
}

// ContigContributions lists a contig's contributing samples, highest mean
// first.
type ContigContributions struct {
	Contig  string
	Samples []SampleContribution
}

// Contributions computes, per contig, the samples with mean coverage above
// the floor, sorted by mean descending. Contigs are ordered by contributing
// sample count descending so the most broadly supported come first.
func Contributions(store *coverage.Store) []ContigContributions {
	results := make([]ContigContributions, 0, store.Len())

	for _, contig := range store.Contigs() {
		cc := store.Contig(contig)

		var samples []SampleContribution

		for sample, track := range cc {
			if len(track) == 0 {
				continue
			}

			stats := track.Stats()
			if stats.Mean <= contributingMeanFloor {
				continue
			}

			samples = append(samples, SampleContribution{
				Sample: sample,
				Mean:   stats.Mean,
				Max:    stats.Max,
			})
		}

		sort.Slice(samples, func(i, j int) bool {
			if samples[i].Mean != samples[j].Mean {
				return samples[i].Mean > samples[j].Mean
			}

			return samples[i].Sample < samples[j].Sample
		})

		results = append(results, ContigContributions{Contig: contig, Samples: samples})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return len(results[i].Samples) > len(results[j].Samples)
	})

	return results
}

// WriteContributionsCSV writes the detailed contributions report:
// one row per (contig, sample) with mean, max, and the sample's 1-based
// rank within its contig.
func WriteContributionsCSV(w io.Writer, results []ContigContributions) error {
	cw := csv.NewWriter(w)

	writeErr := cw.Write([]string{"Contig", "Sample", "Mean_Coverage", "Max_Coverage", "Rank"})
	if writeErr != nil {
		return fmt.Errorf("write csv header: %w", writeErr)
	}

	for _, result := range results {
		for rank, sample := range result.Samples {
			row := []string{
				result.Contig,
				sample.Sample,
				fmt.Sprintf("%.2f", sample.Mean),
				fmt.Sprintf("%.2f", sample.Max),
				fmt.Sprintf("%d", rank+1),
			}

			rowErr := cw.Write(row)
			if rowErr != nil {
				return fmt.Errorf("write csv row: %w", rowErr)
			}
		}
	}

	cw.Flush()

	flushErr := cw.Error()
	if flushErr != nil {
		return fmt.Errorf("flush csv: %w", flushErr)
	}

	return nil
}

// WriteContributionsSummary prints the per-contig contribution summary with
// the top samples of each contig.
func WriteContributionsSummary(w io.Writer, results []ContigContributions) {
	fmt.Fprintln(w, "SAMPLE CONTRIBUTION SUMMARY")
	fmt.Fprintf(w, "Total contigs analyzed: %d\n\n", len(results))

	for _, result := range results {
		fmt.Fprintf(w, "%s: %d samples contribute\n", result.Contig, len(result.Samples))

		shown := result.Samples
		if len(shown) > contributionsShown {
			shown = shown[:contributionsShown]
		}

		for _, sample := range shown {
			fmt.Fprintf(w, "  - %s: mean=%.1f, max=%.1f\n", sample.Sample, sample.Mean, sample.Max)
		}

		if remaining := len(result.Samples) - contributionsShown; remaining > 0 {
			fmt.Fprintf(w, "  ... and %d more samples\n", remaining)
		}

		fmt.Fprintln(w)
	}
}
