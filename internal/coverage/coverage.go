// Package coverage holds the in-memory per-base coverage store shared by
// every analysis and visualization path. Data is loaded once from per-sample
// BED tracks and consumed read-only afterwards.
package coverage

import (
	"sort"
)

// Point is a single per-base coverage observation on a contig.
type Point struct {
	Position int     `json:"position"`
	Depth    float64 `json:"coverage"`
}

// Track is the ordered coverage profile of one (contig, sample) pair,
// sorted by position ascending. Positions may be sparse; gaps mean
// unmeasured coverage, not zero.
type Track []Point

// ContigCoverage maps sample name to that sample's track on one contig.
// Samples present on one contig may differ from those on another.
type ContigCoverage map[string]Track

// Store maps contig name to its per-sample coverage. Contig iteration
// order follows load order, kept explicitly so reports are deterministic.
type Store struct {
	contigs map[string]ContigCoverage
	order   []string
}

// NewStore creates an empty coverage store.
func NewStore() *Store {
	return &Store{
		contigs: make(map[string]ContigCoverage),
	}
}

// Add appends a coverage point for (contig, sample). Tracks are not kept
// sorted during loading; call Finalize once loading is complete.
func (s *Store) Add(contig, sample string, p Point) {
	cc, ok := s.contigs[contig]
	if !ok {
		cc = make(ContigCoverage)
		s.contigs[contig] = cc
		s.order = append(s.order, contig)
	}

	cc[sample] = append(cc[sample], p)
}

// Finalize sorts every track by position. Must be called after loading
// and before any analysis.
func (s *Store) Finalize() {
	for _, cc := range s.contigs {
		for _, track := range cc {
			sort.Slice(track, func(i, j int) bool {
				return track[i].Position < track[j].Position
			})
		}
	}
}

// Contigs returns contig names in load order.
func (s *Store) Contigs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)

	return out
}

// Contig returns the per-sample coverage for one contig, or nil when the
// contig was never observed in any coverage file.
func (s *Store) Contig(name string) ContigCoverage {
	return s.contigs[name]
}

// Has reports whether any coverage was loaded for the contig.
func (s *Store) Has(name string) bool {
	_, ok := s.contigs[name]

	return ok
}

// Len returns the number of contigs with coverage.
func (s *Store) Len() int {
	return len(s.order)
}

// Samples returns the distinct sample names across all contigs, sorted.
func (s *Store) Samples() []string {
	seen := make(map[string]struct{})

	for _, cc := range s.contigs {
		for sample := range cc {
			seen[sample] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for sample := range seen {
		out = append(out, sample)
	}

	sort.Strings(out)

	return out
}

// Positions returns the sorted distinct positions observed across all
// samples of a contig.
func (cc ContigCoverage) Positions() []int {
	seen := make(map[int]struct{})

	for _, track := range cc {
		for _, p := range track {
			seen[p.Position] = struct{}{}
		}
	}

	out := make([]int, 0, len(seen))
	for pos := range seen {
		out = append(out, pos)
	}

	sort.Ints(out)

	return out
}

// Length is the contig length as defined by the coverage data: the maximum
// observed position across all samples, 0 when no positions were recorded.
// The FASTA sequence length is deliberately not consulted.
func (cc ContigCoverage) Length() int {
	maxPos := 0

	for _, track := range cc {
		for _, p := range track {
			if p.Position > maxPos {
				maxPos = p.Position
			}
		}
	}

	return maxPos
}

// SampleNames returns the contig's sample names, sorted.
func (cc ContigCoverage) SampleNames() []string {
	out := make([]string, 0, len(cc))
	for sample := range cc {
		out = append(out, sample)
	}

	sort.Strings(out)

	return out
}
