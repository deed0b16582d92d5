package coverage

import (
	"bufio"
	"fmt"
	"strings"
)

const fastaHeaderPrefix = ">"

// ContigNames extracts contig names from a FASTA file's header lines, in
// file order. Only the first whitespace-separated token of each header is
// kept. The sequences themselves are never read into memory.
func ContigNames(path string) ([]string, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}

	defer func() { _ = rc.Close() }()

	var names []string

	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 0, scannerBufferSize), scannerBufferSize)

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, fastaHeaderPrefix) {
			continue
		}

		name := strings.Fields(line[len(fastaHeaderPrefix):])
		if len(name) > 0 {
			names = append(names, name[0])
		}
	}

	scanErr := scanner.Err()
	if scanErr != nil {
		return nil, fmt.Errorf("read %s: %w", path, scanErr)
	}

	return names, nil
}
