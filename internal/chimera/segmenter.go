// Package chimera implements the segmented coverage-support scoring used to
// flag assembled contigs whose dominant sample shifts along their length.
// A contig whose coverage support is led by many different samples in
// different segments is a chimera candidate.
package chimera

import (
	"sort"

	"github.com/megjohnson1999/contig-coverage-viewer/internal/coverage"
)

// NoLeader marks a segment where no sample cleared the coverage floor.
const NoLeader = ""

// Segment count bounds for detailed analysis.
const (
	MinSegments = 3
	MaxSegments = 10

	// positionsPerSegment is the position density required to grow the
	// segment count past the minimum: one segment per 100 distinct positions.
	positionsPerSegment = 100
)

// Segment is a half-open position range [Start, End) on a contig. The final
// segment of a partition is closed at End to absorb the integer-division
// remainder.
type Segment struct {
	Index int
	Start int
	End   int
	Last  bool
}

// Candidate is a sample whose mean depth inside one segment cleared the
// coverage floor.
type Candidate struct {
	Sample string
	Mean   float64
}

// DetailedSegmentCount returns the segment count for detailed single-contig
// analysis: one segment per 100 distinct positions, clamped to [3, 10].
// Tiny contigs still get the forced minimum of 3, even when that yields
// empty segments.
func DetailedSegmentCount(positionCount int) int {
	n := positionCount / positionsPerSegment

	if n > MaxSegments {
		n = MaxSegments
	}

	if n < MinSegments {
		n = MinSegments
	}

	return n
}

// Partition splits [0, contigLength] into count contiguous segments.
// Every segment but the last spans [i*size, (i+1)*size); the last spans
// [(count-1)*size, contigLength] inclusive. With contigLength 0 all
// segments are degenerate empty ranges.
func Partition(contigLength, count int) []Segment {
	if count <= 0 {
		return nil
	}

	size := contigLength / count
	segments := make([]Segment, count)

	for i := 0; i < count; i++ {
		last := i == count-1

		end := (i + 1) * size
		if last {
			end = contigLength
		}

		segments[i] = Segment{
			Index: i,
			Start: i * size,
			End:   end,
			Last:  last,
		}
	}

	return segments
}

// SegmentCandidates computes, for one segment, every sample whose mean depth
// in the segment's range is at least minCoverage, sorted by mean descending.
// Equal means order by sample name so results do not depend on map iteration.
// Samples with no points in the segment are excluded entirely.
func SegmentCandidates(cc coverage.ContigCoverage, seg Segment, minCoverage float64) []Candidate {
	var candidates []Candidate

	for sample, track := range cc {
		var (
			mean float64
			ok   bool
		)

		if seg.Last {
			mean, ok = track.MeanInClosed(seg.Start, seg.End)
		} else {
			mean, ok = track.MeanIn(seg.Start, seg.End)
		}

		if !ok || mean < minCoverage {
			continue
		}

		candidates = append(candidates, Candidate{Sample: sample, Mean: mean})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Mean != candidates[j].Mean {
			return candidates[i].Mean > candidates[j].Mean
		}

		return candidates[i].Sample < candidates[j].Sample
	})

	return candidates
}

// SegmentLeaders partitions the contig into count segments and returns each
// segment's leader: the qualifying sample with the highest mean depth, or
// NoLeader when no sample qualifies. Ties go to the lexicographically
// smallest sample name so output never depends on map iteration order.
func SegmentLeaders(cc coverage.ContigCoverage, count int, minCoverage float64) []string {
	segments := Partition(cc.Length(), count)
	leaders := make([]string, len(segments))

	for i, seg := range segments {
		candidates := SegmentCandidates(cc, seg, minCoverage)

		if len(candidates) == 0 {
			leaders[i] = NoLeader

			continue
		}

		leaders[i] = candidates[0].Sample
	}

	return leaders
}

// SegmentBoards returns, per segment, the full qualifying-candidate board
// sorted by mean descending. Used by detailed analysis to print the top
// contributors of each segment.
func SegmentBoards(cc coverage.ContigCoverage, count int, minCoverage float64) [][]Candidate {
	segments := Partition(cc.Length(), count)
	boards := make([][]Candidate, len(segments))

	for i, seg := range segments {
		boards[i] = SegmentCandidates(cc, seg, minCoverage)
	}

	return boards
}
