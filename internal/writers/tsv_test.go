package writers

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kmertally/internal/kmer"
)

func TestWriteTSV_Format(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteTSV(&b, kmer.Count("GATTACA", 3)))
	assert.Equal(t, "GAT\t1\nATT\t1\nTTA\t1\nTAC\t1\nACA\t1\n", b.String())
}

func TestWriteTSV_Empty(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteTSV(&b, kmer.NewTable()))
	assert.Zero(t, b.Len())
}

func TestTSV_RoundTrip(t *testing.T) {
	in := kmer.Count("ACGTACGTACGGGTTTACAGATTACAACGT", 4)
	var b bytes.Buffer
	require.NoError(t, WriteTSV(&b, in))

	out, err := ReadTSV(&b)
	require.NoError(t, err)
	require.Equal(t, in.Len(), out.Len())
	require.Equal(t, in.Total(), out.Total())
	_ = in.Each(func(k string, n int) error {
		assert.Equal(t, n, out.Get(k), k)
		return nil
	})
}

func TestReadTSV_Rejects(t *testing.T) {
	for _, bad := range []string{
		"ACG\n",
		"ACG\tx\n",
		"ACG\t-1\n",
		"\t3\n",
		"ACG\t1\nACG\t2\n",
	} {
		_, err := ReadTSV(strings.NewReader(bad))
		assert.Error(t, err, "%q", bad)
	}
}

func TestWriteTSVFile_Truncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x_output.tsv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("junk\n", 100)), 0o644))

	require.NoError(t, WriteTSVFile(path, kmer.Count("ACGT", 4)))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ACGT\t1\n", string(got))
}

func TestWriteTSVFile_BadDir(t *testing.T) {
	err := WriteTSVFile(filepath.Join(t.TempDir(), "missing", "x.tsv"), kmer.NewTable())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
