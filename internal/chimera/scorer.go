package chimera

import (
	"github.com/samber/lo"
)

// Ratio assessment thresholds (screening mode).
const (
	RatioLikelyChimeric   = 0.8
	RatioPossiblyChimeric = 0.6
)

// Leader-count assessment thresholds (detailed mode).
const (
	leadersLikelyGenuine  = 2
	leadersPossiblyCutoff = 4
)

// Assessment labels. The two policies intentionally disagree on casing for
// the genuine verdict; downstream text output depends on both spellings.
const (
	AssessLikelyChimeric     = "LIKELY CHIMERIC"
	AssessPossiblyChimeric   = "POSSIBLY CHIMERIC"
	AssessLikelyGenuineRatio = "Likely genuine"
	AssessLikelyGenuineCount = "LIKELY GENUINE"
)

// ScoreResult is the chimerism score of one contig: the ratio of distinct
// segment leaders to total segments.
type ScoreResult struct {
	Contig        string
	Score         float64
	UniqueLeaders int
	Segments      int
}

// Score converts a sequence of segment leaders into a chimerism score.
// The denominator counts every segment, including leaderless ones; NoLeader
// never counts toward the numerator. Zero segments yield the zero value,
// callers must skip such contigs rather than rank them.
func Score(leaders []string) ScoreResult {
	if len(leaders) == 0 {
		return ScoreResult{}
	}

	unique := lo.Uniq(lo.Filter(leaders, func(l string, _ int) bool {
		return l != NoLeader
	}))

	return ScoreResult{
		Score:         float64(len(unique)) / float64(len(leaders)),
		UniqueLeaders: len(unique),
		Segments:      len(leaders),
	}
}

// RatioAssessment labels a ratio score. Used by batch screening.
func RatioAssessment(score float64) string {
	switch {
	case score >= RatioLikelyChimeric:
		return AssessLikelyChimeric
	case score >= RatioPossiblyChimeric:
		return AssessPossiblyChimeric
	default:
		return AssessLikelyGenuineRatio
	}
}

// LeaderCountAssessment labels a raw unique-leader count. Used by detailed
// single-contig analysis. This is a coarser policy than RatioAssessment and
// is kept as a separate strategy on purpose: it ignores segment count
// entirely, so the two can disagree on the same contig.
func LeaderCountAssessment(uniqueLeaders int) string {
	switch {
	case uniqueLeaders <= leadersLikelyGenuine:
		return AssessLikelyGenuineCount
	case uniqueLeaders <= leadersPossiblyCutoff:
		return AssessPossiblyChimeric
	default:
		return AssessLikelyChimeric
	}
}
