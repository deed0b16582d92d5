package coverage

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fastaFixture = `>contig_1 length=5000 coverage=12.5
ACGTACGTACGT
ACGTACGT
>contig_2
TTTTGGGG
>contig_3 some description
ACGT
`

func TestContigNames(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "assembly.fasta")
	require.NoError(t, os.WriteFile(path, []byte(fastaFixture), 0o600))

	names, err := ContigNames(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"contig_1", "contig_2", "contig_3"}, names)
}

func TestContigNames_Gzipped(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "assembly.fasta.gz")

	f, err := os.Create(path)
	require.NoError(t, err)

	gw := gzip.NewWriter(f)
	_, err = gw.Write([]byte(fastaFixture))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, f.Close())

	names, err := ContigNames(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"contig_1", "contig_2", "contig_3"}, names)
}

func TestContigNames_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := ContigNames(filepath.Join(t.TempDir(), "no_such.fasta"))
	require.Error(t, err)
}

func TestContigNames_EmptyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.fasta")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	names, err := ContigNames(path)
	require.NoError(t, err)

	assert.Empty(t, names)
}
