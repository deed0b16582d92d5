package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AddAndFinalize(t *testing.T) {
	t.Parallel()

	store := NewStore()

	// Out of order on purpose; Finalize must sort.
	store.Add("contig_1", "sampleA", Point{Position: 300, Depth: 3})
	store.Add("contig_1", "sampleA", Point{Position: 100, Depth: 1})
	store.Add("contig_1", "sampleA", Point{Position: 200, Depth: 2})
	store.Add("contig_2", "sampleB", Point{Position: 50, Depth: 9})

	store.Finalize()

	require.Equal(t, 2, store.Len())
	assert.Equal(t, []string{"contig_1", "contig_2"}, store.Contigs())

	track := store.Contig("contig_1")["sampleA"]
	require.Len(t, track, 3)
	assert.Equal(t, 100, track[0].Position)
	assert.Equal(t, 200, track[1].Position)
	assert.Equal(t, 300, track[2].Position)
}

func TestStore_HasAndMissing(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Add("contig_1", "sampleA", Point{Position: 10, Depth: 5})

	assert.True(t, store.Has("contig_1"))
	assert.False(t, store.Has("contig_2"))
	assert.Nil(t, store.Contig("contig_2"))
}

func TestStore_Samples(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Add("contig_1", "zeta", Point{Position: 1, Depth: 1})
	store.Add("contig_1", "alpha", Point{Position: 1, Depth: 1})
	store.Add("contig_2", "alpha", Point{Position: 1, Depth: 1})
	store.Add("contig_2", "mid", Point{Position: 1, Depth: 1})

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, store.Samples())
}

func TestContigCoverage_Positions(t *testing.T) {
	t.Parallel()

	cc := ContigCoverage{
		"sampleA": Track{{Position: 10, Depth: 1}, {Position: 30, Depth: 1}},
		"sampleB": Track{{Position: 10, Depth: 1}, {Position: 20, Depth: 1}},
	}

	assert.Equal(t, []int{10, 20, 30}, cc.Positions())
}

func TestContigCoverage_Length(t *testing.T) {
	t.Parallel()

	cc := ContigCoverage{
		"sampleA": Track{{Position: 10, Depth: 1}, {Position: 9000, Depth: 1}},
		"sampleB": Track{{Position: 500, Depth: 1}},
	}

	assert.Equal(t, 9000, cc.Length())
	assert.Zero(t, ContigCoverage{}.Length())
}

func TestContigCoverage_SampleNames(t *testing.T) {
	t.Parallel()

	cc := ContigCoverage{
		"zeta":  Track{},
		"alpha": Track{},
	}

	assert.Equal(t, []string{"alpha", "zeta"}, cc.SampleNames())
}
