package chimera

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_RatioOfDistinctLeaders(t *testing.T) {
	t.Parallel()

	result := Score([]string{"sampleA", "sampleA", "sampleA", "sampleB", "sampleB"})

	assert.InDelta(t, 0.4, result.Score, 1e-9)
	assert.Equal(t, 2, result.UniqueLeaders)
	assert.Equal(t, 5, result.Segments)
}

func TestScore_AllDistinctLeaders(t *testing.T) {
	t.Parallel()

	result := Score([]string{"s1", "s2", "s3", "s4", "s5"})

	assert.InDelta(t, 1.0, result.Score, 1e-9)
	assert.Equal(t, 5, result.UniqueLeaders)
}

func TestScore_NoLeaderNeverCounts(t *testing.T) {
	t.Parallel()

	// NoLeader segments stay in the denominator but never in the numerator.
	result := Score([]string{"sampleA", NoLeader, NoLeader, "sampleA", NoLeader})

	assert.InDelta(t, 0.2, result.Score, 1e-9)
	assert.Equal(t, 1, result.UniqueLeaders)
	assert.Equal(t, 5, result.Segments)
}

func TestScore_AllNoLeader(t *testing.T) {
	t.Parallel()

	result := Score([]string{NoLeader, NoLeader, NoLeader, NoLeader, NoLeader})

	assert.Zero(t, result.Score)
	assert.Zero(t, result.UniqueLeaders)
	assert.Equal(t, 5, result.Segments)
}

func TestScore_ZeroSegmentsGuard(t *testing.T) {
	t.Parallel()

	result := Score(nil)

	assert.Zero(t, result.Score)
	assert.Zero(t, result.Segments)
}

func TestScore_AlwaysInUnitInterval(t *testing.T) {
	t.Parallel()

	cases := [][]string{
		{"a"},
		{"a", "b", "c"},
		{NoLeader},
		{"a", NoLeader, "a", "b", NoLeader, "c", "d", "e", "f", "g"},
	}

	for _, leaders := range cases {
		result := Score(leaders)

		assert.GreaterOrEqual(t, result.Score, 0.0)
		assert.LessOrEqual(t, result.Score, 1.0)
		assert.InDelta(t, float64(result.UniqueLeaders)/float64(result.Segments), result.Score, 1e-9)
	}
}

func TestRatioAssessment(t *testing.T) {
	t.Parallel()

	assert.Equal(t, AssessLikelyChimeric, RatioAssessment(1.0))
	assert.Equal(t, AssessLikelyChimeric, RatioAssessment(0.8))
	assert.Equal(t, AssessPossiblyChimeric, RatioAssessment(0.79))
	assert.Equal(t, AssessPossiblyChimeric, RatioAssessment(0.6))
	assert.Equal(t, AssessLikelyGenuineRatio, RatioAssessment(0.59))
	assert.Equal(t, AssessLikelyGenuineRatio, RatioAssessment(0.4))
	assert.Equal(t, AssessLikelyGenuineRatio, RatioAssessment(0))
}

func TestLeaderCountAssessment(t *testing.T) {
	t.Parallel()

	assert.Equal(t, AssessLikelyGenuineCount, LeaderCountAssessment(0))
	assert.Equal(t, AssessLikelyGenuineCount, LeaderCountAssessment(2))
	assert.Equal(t, AssessPossiblyChimeric, LeaderCountAssessment(3))
	assert.Equal(t, AssessPossiblyChimeric, LeaderCountAssessment(4))
	assert.Equal(t, AssessLikelyChimeric, LeaderCountAssessment(5))
	assert.Equal(t, AssessLikelyChimeric, LeaderCountAssessment(9))
}

func TestAssessmentPoliciesStayDistinct(t *testing.T) {
	t.Parallel()

	// 2 leaders over 2 segments: the ratio policy flags it, the count
	// policy clears it. The two strategies must not be unified.
	result := Score([]string{"sampleA", "sampleB"})

	assert.Equal(t, AssessLikelyChimeric, RatioAssessment(result.Score))
	assert.Equal(t, AssessLikelyGenuineCount, LeaderCountAssessment(result.UniqueLeaders))
}
