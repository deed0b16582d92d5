package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constantTrack(n int, depth float64) Track {
	track := make(Track, n)

	for i := 0; i < n; i++ {
		track[i] = Point{Position: i * 10, Depth: depth}
	}

	return track
}

func filterFixture() *Store {
	store := NewStore()

	for sample, depth := range map[string]float64{
		"deep":    50,
		"medium":  10,
		"shallow": 0.5,
	} {
		for _, p := range constantTrack(5, depth) {
			store.Add("contig_1", sample, p)
		}
	}

	store.Finalize()

	return store
}

func TestFilterSamples_MinMeanCoverage(t *testing.T) {
	t.Parallel()

	filtered := FilterSamples(filterFixture(), FilterOptions{MinMeanCoverage: 1.0})

	cc := filtered.Contig("contig_1")
	require.NotNil(t, cc)
	assert.Equal(t, []string{"deep", "medium"}, cc.SampleNames())
}

func TestFilterSamples_MaxSamples(t *testing.T) {
	t.Parallel()

	filtered := FilterSamples(filterFixture(), FilterOptions{MaxSamples: 1})

	cc := filtered.Contig("contig_1")
	require.NotNil(t, cc)
	assert.Equal(t, []string{"deep"}, cc.SampleNames())
}

func TestFilterSamples_DropsEmptyContigs(t *testing.T) {
	t.Parallel()

	filtered := FilterSamples(filterFixture(), FilterOptions{MinMeanCoverage: 1000})

	assert.Zero(t, filtered.Len())
}

func TestFilterSamples_ZeroOptionsKeepEverything(t *testing.T) {
	t.Parallel()

	filtered := FilterSamples(filterFixture(), FilterOptions{})

	cc := filtered.Contig("contig_1")
	require.NotNil(t, cc)
	assert.Len(t, cc, 3)
}

func TestSubset(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Add("contig_1", "s1", Point{Position: 0, Depth: 1})
	store.Add("contig_2", "s1", Point{Position: 0, Depth: 1})
	store.Add("contig_3", "s1", Point{Position: 0, Depth: 1})
	store.Finalize()

	subset := Subset(store, []string{"contig_3", "contig_1", "contig_unknown"})

	assert.Equal(t, []string{"contig_3", "contig_1"}, subset.Contigs())
	assert.False(t, subset.Has("contig_2"))
}
