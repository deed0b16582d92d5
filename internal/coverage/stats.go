package coverage

// TrackStats summarizes one sample's coverage on one contig.
type TrackStats struct {
	Mean float64
	Max  float64
}

// Stats computes mean and max depth over the track. The zero value is
// returned for an empty track.
func (t Track) Stats() TrackStats {
	if len(t) == 0 {
		return TrackStats{}
	}

	var sum, maxDepth float64

	for _, p := range t {
		sum += p.Depth

		if p.Depth > maxDepth {
			maxDepth = p.Depth
		}
	}

	return TrackStats{
		Mean: sum / float64(len(t)),
		Max:  maxDepth,
	}
}

// MeanIn computes the mean depth over points with start <= position < end.
// The ok result is false when the track has no points in range; such a
// sample must be excluded from consideration, not treated as zero.
func (t Track) MeanIn(start, end int) (mean float64, ok bool) {
	var sum float64

	count := 0

	for _, p := range t {
		if p.Position >= start && p.Position < end {
			sum += p.Depth
			count++
		}
	}

	if count == 0 {
		return 0, false
	}

	return sum / float64(count), true
}

// MeanInClosed is MeanIn with an inclusive upper bound, used for the final
// segment of a contig which absorbs the division remainder.
func (t Track) MeanInClosed(start, end int) (mean float64, ok bool) {
	var sum float64

	count := 0

	for _, p := range t {
		if p.Position >= start && p.Position <= end {
			sum += p.Depth
			count++
		}
	}

	if count == 0 {
		return 0, false
	}

	return sum / float64(count), true
}
