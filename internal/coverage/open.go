package coverage

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

const gzipSuffix = ".gz"

// gzip magic number.
const (
	gzipMagic0 = 0x1f
	gzipMagic1 = 0x8b
)

// multiReadCloser closes every wrapped closer when Close is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error

	for _, c := range m.closers {
		closeErr := c.Close()
		if closeErr != nil && err == nil {
			err = closeErr
		}
	}

	return err
}

// openReader opens a file for reading, transparently decompressing gzip.
// Compression is detected by magic number with the .gz suffix as fallback.
func openReader(path string) (io.ReadCloser, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	var sig [2]byte

	n, _ := fh.Read(sig[:])

	_, seekErr := fh.Seek(0, io.SeekStart)
	if seekErr != nil {
		_ = fh.Close()

		return nil, fmt.Errorf("rewind %s: %w", path, seekErr)
	}

	gzipped := (n == 2 && sig[0] == gzipMagic0 && sig[1] == gzipMagic1) ||
		strings.HasSuffix(path, gzipSuffix)
	if !gzipped {
		return fh, nil
	}

	gr, err := gzip.NewReader(fh)
	if err != nil {
		_ = fh.Close()

		return nil, fmt.Errorf("gzip %s: %w", path, err)
	}

	return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
}
