package chimera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/megjohnson1999/contig-coverage-viewer/internal/coverage"
)

// storeWith builds a finalized store from contig fixtures.
func storeWith(t *testing.T, contigs map[string]coverage.ContigCoverage) *coverage.Store {
	t.Helper()

	store := coverage.NewStore()

	for contig, cc := range contigs {
		for sample, track := range cc {
			for _, p := range track {
				store.Add(contig, sample, p)
			}
		}
	}

	store.Finalize()

	return store
}

func chimericContig() coverage.ContigCoverage {
	// A different sample leads every one of the five screening segments.
	return coverage.ContigCoverage{
		"s1": uniformTrack(0, 1999, 50, 20),
		"s2": uniformTrack(2000, 3999, 50, 20),
		"s3": uniformTrack(4000, 5999, 50, 20),
		"s4": uniformTrack(6000, 7999, 50, 20),
		"s5": uniformTrack(8000, 10000, 50, 20),
	}
}

func genuineContig() coverage.ContigCoverage {
	return coverage.ContigCoverage{
		"s1": uniformTrack(0, 10000, 50, 30),
		"s2": uniformTrack(0, 10000, 50, 8),
	}
}

func TestScreen_RanksByScoreDescending(t *testing.T) {
	t.Parallel()

	store := storeWith(t, map[string]coverage.ContigCoverage{
		"contig_genuine":  genuineContig(),
		"contig_chimeric": chimericContig(),
	})

	results := Screen(store, ScreenMinLength)

	require.Len(t, results, 2)
	assert.Equal(t, "contig_chimeric", results[0].Contig)
	assert.InDelta(t, 1.0, results[0].Score, 1e-9)
	assert.Equal(t, "contig_genuine", results[1].Contig)
	assert.InDelta(t, 0.2, results[1].Score, 1e-9)
}

func TestScreen_SkipsShortContigs(t *testing.T) {
	t.Parallel()

	store := storeWith(t, map[string]coverage.ContigCoverage{
		"contig_short": {
			"s1": uniformTrack(0, 500, 10, 50),
		},
		"contig_long": genuineContig(),
	})

	results := Screen(store, ScreenMinLength)

	require.Len(t, results, 1)
	assert.Equal(t, "contig_long", results[0].Contig)
}

func TestScreen_CustomMinLength(t *testing.T) {
	t.Parallel()

	store := storeWith(t, map[string]coverage.ContigCoverage{
		"contig_short": {
			"s1": uniformTrack(0, 500, 10, 50),
		},
	})

	assert.Empty(t, Screen(store, ScreenMinLength))
	assert.Len(t, Screen(store, 400), 1)
}

func TestScreen_LeaderlessContigScoresZero(t *testing.T) {
	t.Parallel()

	store := storeWith(t, map[string]coverage.ContigCoverage{
		"contig_faint": {
			"s1": uniformTrack(0, 5000, 50, 1),
		},
	})

	results := Screen(store, ScreenMinLength)

	require.Len(t, results, 1)
	assert.Zero(t, results[0].Score)
	assert.Zero(t, results[0].UniqueLeaders)
	assert.Equal(t, ScreenSegments, results[0].Segments)
}

func TestExtract_FiltersByMinScore(t *testing.T) {
	t.Parallel()

	store := storeWith(t, map[string]coverage.ContigCoverage{
		"contig_genuine":  genuineContig(),
		"contig_chimeric": chimericContig(),
	})

	flagged := Extract(store, 0.6, ScreenMinLength)

	require.Len(t, flagged, 1)
	assert.Equal(t, "contig_chimeric", flagged[0].Contig)

	all := Extract(store, 0, ScreenMinLength)
	assert.Len(t, all, 2)
}

func TestAnalyzeContig_UnknownContig(t *testing.T) {
	t.Parallel()

	store := storeWith(t, map[string]coverage.ContigCoverage{
		"contig_1": genuineContig(),
	})

	_, err := AnalyzeContig(store, "contig_missing", DefaultDetailMinCoverage)

	require.Error(t, err)
	require.ErrorIs(t, err, ErrContigNotFound)
	assert.Contains(t, err.Error(), "contig_1")
}

func TestAnalyzeContig_Detail(t *testing.T) {
	t.Parallel()

	store := storeWith(t, map[string]coverage.ContigCoverage{
		"contig_x": chimericContig(),
	})

	result, err := AnalyzeContig(store, "contig_x", 10)
	require.NoError(t, err)

	assert.Equal(t, "contig_x", result.Contig)
	assert.Equal(t, 10000, result.Length)
	assert.GreaterOrEqual(t, len(result.Segments), MinSegments)
	assert.LessOrEqual(t, len(result.Segments), MaxSegments)
	assert.Len(t, result.Leaders, len(result.Segments))
	assert.Equal(t, LeaderCountAssessment(result.UniqueLeaders), result.Assessment)
}

func TestAnalyzeContig_TinyContigStillGetsThreeSegments(t *testing.T) {
	t.Parallel()

	store := storeWith(t, map[string]coverage.ContigCoverage{
		"contig_tiny": {
			"s1": uniformTrack(0, 50, 10, 20),
		},
	})

	result, err := AnalyzeContig(store, "contig_tiny", 10)
	require.NoError(t, err)

	assert.Len(t, result.Segments, MinSegments)
}

func TestAnalyzeContig_BoardCappedAtFive(t *testing.T) {
	t.Parallel()

	cc := coverage.ContigCoverage{}
	for _, sample := range []string{"s1", "s2", "s3", "s4", "s5", "s6", "s7"} {
		cc[sample] = uniformTrack(0, 10000, 50, 30)
	}

	store := storeWith(t, map[string]coverage.ContigCoverage{"contig_many": cc})

	result, err := AnalyzeContig(store, "contig_many", 10)
	require.NoError(t, err)

	for _, seg := range result.Segments {
		assert.LessOrEqual(t, len(seg.Board), 5)
	}
}
