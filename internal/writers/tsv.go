// internal/writers/tsv.go
package writers

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"kmertally/internal/kmer"
)

// WriteTSV writes one "<kmer>\t<count>\n" line per table entry.
func WriteTSV(w io.Writer, t *kmer.Table) error {
	bw := bufio.NewWriter(w)
	line := make([]byte, 0, 64)
	err := t.Each(func(k string, n int) error {
		line = append(line[:0], k...)
		line = append(line, '\t')
		line = strconv.AppendInt(line, int64(n), 10)
		line = append(line, '\n')
		_, err := bw.Write(line)
		return err
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

// WriteTSVFile creates or truncates path and writes t to it.
func WriteTSVFile(path string, t *kmer.Table) (err error) {
	fh, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()
	if err := WriteTSV(fh, t); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

// ReadTSV parses the WriteTSV format back into a table.
func ReadTSV(r io.Reader) (*kmer.Table, error) {
	t := kmer.NewTable()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	ln := 0
	for sc.Scan() {
		ln++
		line := sc.Text()
		if line == "" {
			continue
		}
		k, v, ok := strings.Cut(line, "\t")
		if !ok || k == "" {
			return nil, errors.Errorf("line %d: want <kmer>\\t<count>, got %q", ln, line)
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: bad count", ln)
		}
		if n < 0 {
			return nil, errors.Errorf("line %d: negative count %d", ln, n)
		}
		if t.Get(k) != 0 {
			return nil, errors.Errorf("line %d: duplicate k-mer %q", ln, k)
		}
		t.Add(k, n)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "tsv scan")
	}
	return t, nil
}
