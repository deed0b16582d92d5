package report

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/megjohnson1999/contig-coverage-viewer/internal/coverage"
)

func contributionsFixture() *coverage.Store {
	store := coverage.NewStore()

	add := func(contig, sample string, depths ...float64) {
		for i, d := range depths {
			store.Add(contig, sample, coverage.Point{Position: i * 10, Depth: d})
		}
	}

	// contig_1: two contributing samples plus one below the floor.
	add("contig_1", "deep", 40, 60)
	add("contig_1", "medium", 5, 15)
	add("contig_1", "trace", 0.05, 0.05)

	// contig_2: one contributing sample.
	add("contig_2", "deep", 4, 6)

	store.Finalize()

	return store
}

func TestContributions_OrderAndFiltering(t *testing.T) {
	t.Parallel()

	results := Contributions(contributionsFixture())

	require.Len(t, results, 2)

	// Most broadly supported contig first.
	assert.Equal(t, "contig_1", results[0].Contig)
	require.Len(t, results[0].Samples, 2)
	assert.Equal(t, "deep", results[0].Samples[0].Sample)
	assert.InDelta(t, 50, results[0].Samples[0].Mean, 1e-9)
	assert.InDelta(t, 60, results[0].Samples[0].Max, 1e-9)
	assert.Equal(t, "medium", results[0].Samples[1].Sample)

	assert.Equal(t, "contig_2", results[1].Contig)
	require.Len(t, results[1].Samples, 1)
}

func TestWriteContributionsCSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := WriteContributionsCSV(&buf, Contributions(contributionsFixture()))
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Contig", "Sample", "Mean_Coverage", "Max_Coverage", "Rank"}, rows[0])
	assert.Equal(t, []string{"contig_1", "deep", "50.00", "60.00", "1"}, rows[1])
	assert.Equal(t, []string{"contig_1", "medium", "10.00", "15.00", "2"}, rows[2])
	assert.Equal(t, []string{"contig_2", "deep", "5.00", "6.00", "1"}, rows[3])
}

func TestWriteContributionsSummary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	WriteContributionsSummary(&buf, Contributions(contributionsFixture()))

	out := buf.String()
	assert.Contains(t, out, "SAMPLE CONTRIBUTION SUMMARY")
	assert.Contains(t, out, "contig_1: 2 samples contribute")
	assert.Contains(t, out, "- deep: mean=50.0, max=60.0")
	assert.NotContains(t, out, "trace")
}
