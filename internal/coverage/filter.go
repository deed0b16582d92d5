package coverage

import (
	"sort"
)

// FilterOptions controls per-contig sample filtering for visualization.
type FilterOptions struct {
	// MinMeanCoverage drops samples whose mean depth on the contig is below
	// this value. Zero keeps everything.
	MinMeanCoverage float64

	// MaxSamples caps the number of samples kept per contig, highest mean
	// first. Zero means unlimited.
	MaxSamples int
}

// FilterSamples returns a new store containing, for each contig, only the
// samples passing the mean-coverage floor, capped at the top MaxSamples by
// mean depth. The input store is not modified.
func FilterSamples(store *Store, opts FilterOptions) *Store {
	out := NewStore()

	for _, contig := range store.Contigs() {
		cc := store.Contig(contig)

		kept := rankSamples(cc, opts)
		if len(kept) == 0 {
			continue
		}

		filtered := make(ContigCoverage, len(kept))
		for _, sample := range kept {
			filtered[sample] = cc[sample]
		}

		out.contigs[contig] = filtered
		out.order = append(out.order, contig)
	}

	return out
}

// Subset returns a new store restricted to the named contigs, in the given
// order. Names without coverage are skipped.
func Subset(store *Store, names []string) *Store {
	out := NewStore()

	for _, name := range names {
		cc := store.Contig(name)
		if cc == nil {
			continue
		}

		out.contigs[name] = cc
		out.order = append(out.order, name)
	}

	return out
}

type rankedSample struct {
	name string
	mean float64
}

func rankSamples(cc ContigCoverage, opts FilterOptions) []string {
	ranked := make([]rankedSample, 0, len(cc))

	for sample, track := range cc {
		if len(track) == 0 {
			continue
		}

		stats := track.Stats()
		if opts.MinMeanCoverage > 0 && stats.Mean < opts.MinMeanCoverage {
			continue
		}

		ranked = append(ranked, rankedSample{name: sample, mean: stats.Mean})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].mean != ranked[j].mean {
			return ranked[i].mean > ranked[j].mean
		}

		return ranked[i].name < ranked[j].name
	})

	if opts.MaxSamples > 0 && len(ranked) > opts.MaxSamples {
		ranked = ranked[:opts.MaxSamples]
	}

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.name
	}

	return out
}
