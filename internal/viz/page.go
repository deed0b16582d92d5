// Package viz renders the interactive coverage viewer and the screening
// report charts. The viewer is a single self-contained HTML file with the
// contig list and all coverage data embedded inline, so it works from a
// file:// URL with no server behind it.
package viz

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/megjohnson1999/contig-coverage-viewer/internal/coverage"
)

const viewerTemplate = "viewer.html"

// Viewer describes one interactive coverage viewer page.
type Viewer struct {
	// Title is the page heading.
	Title string

	// DatasetName is shown in the dataset info line.
	DatasetName string

	// Contigs populates the selector, in assembly order. Contigs without
	// coverage data are still listed; selecting one shows an empty chart.
	Contigs []string

	// Store supplies the embedded coverage data.
	Store *coverage.Store
}

type viewerData struct {
	Title        string
	DatasetName  string
	ContigCount  int
	SampleCount  int
	ContigsJSON  template.JS
	CoverageJSON template.JS
}

// Render writes the complete viewer HTML.
func (v *Viewer) Render(w io.Writer) error {
	contigsJSON, err := json.Marshal(v.Contigs)
	if err != nil {
		return fmt.Errorf("marshal contig list: %w", err)
	}

	coverageJSON, err := json.Marshal(coverageMap(v.Store))
	if err != nil {
		return fmt.Errorf("marshal coverage data: %w", err)
	}

	page, err := renderTemplate(viewerTemplate, viewerData{
		Title:        v.Title,
		DatasetName:  v.DatasetName,
		ContigCount:  len(v.Contigs),
		SampleCount:  len(v.Store.Samples()),
		ContigsJSON:  template.JS(contigsJSON),
		CoverageJSON: template.JS(coverageJSON),
	})
	if err != nil {
		return err
	}

	_, err = w.Write(page)
	if err != nil {
		return fmt.Errorf("write viewer page: %w", err)
	}

	return nil
}

// coverageMap flattens the store into the embedded JSON shape:
// contig -> sample -> ordered coverage points.
func coverageMap(store *coverage.Store) map[string]coverage.ContigCoverage {
	out := make(map[string]coverage.ContigCoverage, store.Len())

	for _, contig := range store.Contigs() {
		out[contig] = store.Contig(contig)
	}

	return out
}
