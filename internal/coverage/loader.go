package coverage

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
)

// CoverageFilePattern matches mosdepth-style per-base BED output.
const CoverageFilePattern = "*.per-base.bed.gz"

// coverageFileSuffix is stripped from the file name to recover the sample name.
const coverageFileSuffix = ".per-base.bed.gz"

// minBedColumns is the number of TSV columns a usable record carries:
// contig, start, end, depth.
const minBedColumns = 4

// scannerBufferSize accommodates long BED lines.
const scannerBufferSize = 1 << 20

// LoadDir loads every per-sample coverage file in dir into a new Store.
// Sample identity is the file base name without the .per-base.bed.gz suffix.
// Malformed lines are skipped, not fatal.
func LoadDir(ctx context.Context, dir string) (*Store, error) {
	files, err := filepath.Glob(filepath.Join(dir, CoverageFilePattern))
	if err != nil {
		return nil, fmt.Errorf("list coverage files in %s: %w", dir, err)
	}

	slog.Info("loading coverage files", "dir", dir, "files", len(files))

	store := NewStore()

	for i, path := range files {
		ctxErr := ctx.Err()
		if ctxErr != nil {
			return nil, fmt.Errorf("load coverage: %w", ctxErr)
		}

		sample := SampleName(path)

		slog.Debug("loading sample", "sample", sample, "file", i+1, "total", len(files))

		loadErr := loadFile(store, path, sample)
		if loadErr != nil {
			return nil, loadErr
		}
	}

	store.Finalize()

	return store, nil
}

// SampleName derives the sample identifier from a coverage file path.
func SampleName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), coverageFileSuffix)
}

func loadFile(store *Store, path, sample string) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}

	defer func() { _ = rc.Close() }()

	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 0, scannerBufferSize), scannerBufferSize)

	for scanner.Scan() {
		contig, point, ok := parseBedLine(scanner.Text())
		if !ok {
			continue
		}

		store.Add(contig, sample, point)
	}

	scanErr := scanner.Err()
	if scanErr != nil {
		return fmt.Errorf("read %s: %w", path, scanErr)
	}

	return nil
}

// parseBedLine parses one per-base BED record. The start column is the
// point position; the end column is present but unused at per-base
// resolution.
func parseBedLine(line string) (contig string, p Point, ok bool) {
	fields := strings.Split(strings.TrimSpace(line), "\t")
	if len(fields) < minBedColumns {
		return "", Point{}, false
	}

	start, startErr := strconv.Atoi(fields[1])
	if startErr != nil || start < 0 {
		return "", Point{}, false
	}

	depth, depthErr := strconv.ParseFloat(fields[3], 64)
	if depthErr != nil || depth < 0 {
		return "", Point{}, false
	}

	return fields[0], Point{Position: start, Depth: depth}, true
}
