// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	gzip "github.com/klauspost/pgzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kmertally/internal/app"
)

func write(t *testing.T, dir, name, data string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
	return fn
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func TestEndToEnd(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "output")
	write(t, in, "seq1.fasta", ">seq1\nACGTA\nCGTAC\n")
	write(t, in, "amb.fasta", ">amb\nACGTNACGT\n")
	write(t, in, "notes.txt", "ACGT\n")

	var stdout, stderr bytes.Buffer
	code := app.Run([]string{"--kmer-length", "5", "--assembly-folder", in, "--output-path", out}, &stdout, &stderr)
	require.Equal(t, 0, code, "stderr: %s", stderr.String())

	assert.Equal(t, []string{"seq1_output.tsv"}, listDir(t, out))
	assert.Contains(t, stderr.String(), "skipping file amb.fasta")
	assert.Contains(t, stderr.String(), "not a valid DNA sequence")
	assert.Contains(t, stderr.String(), "2 file(s) read, 1 table(s) written")

	got, err := os.ReadFile(filepath.Join(out, "seq1_output.tsv"))
	require.NoError(t, err)
	assert.Equal(t, "ACGTA\t2\nCGTAC\t2\nGTACG\t1\nTACGT\t1\n", string(got))
}

func TestNoMatchingFiles(t *testing.T) {
	in := t.TempDir()
	write(t, in, "reads.fa", ">r\nACGTACGT\n")
	out := filepath.Join(t.TempDir(), "fresh")

	var stdout, stderr bytes.Buffer
	code := app.Run([]string{"-i", in, "-o", out, "-q"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.DirExists(t, out)
	assert.Empty(t, listDir(t, out))
	assert.Empty(t, stderr.String())
}

func TestRerunIsByteIdentical(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	write(t, in, "a.fasta", ">a\n"+strings.Repeat("GATTACACCGT", 30)+"\n")
	write(t, in, "b.fasta", ">b\nTTTTGGGGCCCCAAAA\nACGT\n")

	run := func() map[string][]byte {
		var stdout, stderr bytes.Buffer
		code := app.Run([]string{"-k", "4", "-i", in, "-o", out}, &stdout, &stderr)
		require.Equal(t, 0, code, stderr.String())
		files := map[string][]byte{}
		for _, n := range listDir(t, out) {
			b, err := os.ReadFile(filepath.Join(out, n))
			require.NoError(t, err)
			files[n] = b
		}
		return files
	}
	first := run()
	second := run()
	require.Len(t, first, 2)
	assert.Equal(t, first, second)
}

func TestPositionalGzipInputs(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	fn := filepath.Join(in, "reads.fasta.gz")
	fh, err := os.Create(fn)
	require.NoError(t, err)
	gw := gzip.NewWriter(fh)
	_, err = gw.Write([]byte(">r1\nAAAA\n>r2\nCCCC\n"))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, fh.Close())

	var stdout, stderr bytes.Buffer
	code := app.Run([]string{"-k", "3", "-o", out, "--ext", ".fasta.gz", "--records", "record", filepath.Join(in, "*.gz")}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, []string{"reads_1_output.tsv", "reads_2_output.tsv"}, listDir(t, out))

	b, err := os.ReadFile(filepath.Join(out, "reads_2_output.tsv"))
	require.NoError(t, err)
	assert.Equal(t, "CCC\t2\n", string(b))
}

func TestConfigFileRun(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	write(t, in, "x.fa", ">x\nACGTAC\n>y\nACG\n")
	cfg := write(t, t.TempDir(), "kmertally.toml", `
kmer-length = 3
assembly-folder = "`+filepath.ToSlash(in)+`"
output-path = "`+filepath.ToSlash(out)+`"
ext = [".fa"]
records = "merge"
`)

	var stdout, stderr bytes.Buffer
	code := app.Run([]string{"--config", cfg}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	b, err := os.ReadFile(filepath.Join(out, "x_output.tsv"))
	require.NoError(t, err)
	assert.Equal(t, "ACG\t2\nCGT\t1\nGTA\t1\nTAC\t1\n", string(b))
}
