package chimera

import (
	"errors"
	"fmt"
	"sort"

	"github.com/megjohnson1999/contig-coverage-viewer/internal/coverage"
)

// Screening parameters (batch mode).
const (
	// ScreenSegments is the fixed segment count for batch screening.
	ScreenSegments = 5

	// ScreenMinCoverage is the relaxed per-segment coverage floor used when
	// scanning every contig.
	ScreenMinCoverage = 5.0

	// ScreenMinLength is the default length floor for screening; shorter
	// contigs have segments too small for leadership to mean anything.
	ScreenMinLength = 1000
)

// DefaultDetailMinCoverage is the per-segment coverage floor for detailed
// single-contig analysis.
const DefaultDetailMinCoverage = 10.0

// DefaultExtractMinScore is the score threshold for chimeric-subset
// extraction.
const DefaultExtractMinScore = 0.6

// detailTopCandidates caps the leaderboard shown per segment.
const detailTopCandidates = 5

// availableContigsShown caps the hint list on a missing-contig error.
const availableContigsShown = 10

// ErrContigNotFound indicates the requested contig has no coverage data.
var ErrContigNotFound = errors.New("contig not found")

// SegmentDetail is one segment of a detailed contig analysis.
type SegmentDetail struct {
	Segment Segment
	Board   []Candidate
	Leader  string
}

// DetailResult is the full detailed analysis of a single contig.
type DetailResult struct {
	Contig        string
	Length        int
	PositionCount int
	MinCoverage   float64
	Segments      []SegmentDetail
	Leaders       []string
	UniqueLeaders int
	Assessment    string
}

// AnalyzeContig runs detailed single-contig analysis: position-density-bound
// segmentation, per-segment candidate boards capped at the top five, and the
// leader-count assessment. The ratio score is deliberately not used here.
func AnalyzeContig(store *coverage.Store, contig string, minCoverage float64) (*DetailResult, error) {
	cc := store.Contig(contig)
	if cc == nil {
		return nil, fmt.Errorf("%w: %q (available: %v)",
			ErrContigNotFound, contig, availableContigs(store))
	}

	positions := cc.Positions()
	count := DetailedSegmentCount(len(positions))
	segments := Partition(cc.Length(), count)

	details := make([]SegmentDetail, len(segments))
	leaders := make([]string, len(segments))

	for i, seg := range segments {
		board := SegmentCandidates(cc, seg, minCoverage)

		leader := NoLeader
		if len(board) > 0 {
			leader = board[0].Sample
		}

		if len(board) > detailTopCandidates {
			board = board[:detailTopCandidates]
		}

		details[i] = SegmentDetail{Segment: seg, Board: board, Leader: leader}
		leaders[i] = leader
	}

	unique := Score(leaders).UniqueLeaders

	return &DetailResult{
		Contig:        contig,
		Length:        cc.Length(),
		PositionCount: len(positions),
		MinCoverage:   minCoverage,
		Segments:      details,
		Leaders:       leaders,
		UniqueLeaders: unique,
		Assessment:    LeaderCountAssessment(unique),
	}, nil
}

// Screen runs batch screening over every contig in the store: fixed five
// segments, relaxed coverage floor, contigs shorter than minLength skipped.
// Results are sorted by score descending, then contig name so the ranking
// is stable.
func Screen(store *coverage.Store, minLength int) []ScoreResult {
	var results []ScoreResult

	for _, contig := range store.Contigs() {
		cc := store.Contig(contig)

		if cc.Length() < minLength {
			continue
		}

		leaders := SegmentLeaders(cc, ScreenSegments, ScreenMinCoverage)
		if len(leaders) == 0 {
			continue
		}

		result := Score(leaders)
		result.Contig = contig
		results = append(results, result)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}

		return results[i].Contig < results[j].Contig
	})

	return results
}

// Extract reuses batch screening and keeps only contigs scoring at least
// minScore, sorted by score descending.
func Extract(store *coverage.Store, minScore float64, minLength int) []ScoreResult {
	all := Screen(store, minLength)

	kept := make([]ScoreResult, 0, len(all))

	for _, r := range all {
		if r.Score >= minScore {
			kept = append(kept, r)
		}
	}

	return kept
}

func availableContigs(store *coverage.Store) []string {
	contigs := store.Contigs()

	if len(contigs) > availableContigsShown {
		contigs = contigs[:availableContigsShown]
	}

	return contigs
}
