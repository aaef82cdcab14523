// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// Record is one header plus its concatenated sequence lines.
type Record struct {
	Index  int    // 1-based position within the file
	ID     string // first whitespace-delimited token of Header
	Header string // header line without a leading '>'
	Seq    []byte
}

// Scan parses FASTA-like text from r and calls emit once per record.
//
// The first line is always the header of the first record and is never read
// as sequence, whatever it contains. After that, a line starting with '>'
// opens a new record. Every other line is stripped of surrounding whitespace
// and appended to the current record's sequence; blank lines add nothing.
// Input with no lines yields no records. Lines may be of any length.
func Scan(r io.Reader, emit func(Record) error) error {
	return scan(bufio.NewReaderSize(r, readBufSize), emit)
}

const readBufSize = 64 * 1024

func scan(br *bufio.Reader, emit func(Record) error) error {
	var (
		cur  Record
		open bool
		seq  = make([]byte, 0, 1<<16)
		line []byte
	)
	flush := func() error {
		if !open {
			return nil
		}
		cur.Seq = append([]byte(nil), seq...)
		seq = seq[:0]
		return emit(cur)
	}
	start := func(hdr []byte) {
		hdr = bytes.TrimSpace(bytes.TrimPrefix(bytes.TrimSpace(hdr), []byte(">")))
		cur = Record{Index: cur.Index + 1, ID: parseHeaderID(hdr), Header: string(hdr)}
		open = true
	}

	for {
		line = line[:0]
		var err error
		for {
			var frag []byte
			frag, err = br.ReadSlice('\n')
			line = append(line, frag...)
			if err != bufio.ErrBufferFull {
				break
			}
		}
		if err != nil && err != io.EOF {
			return errors.Wrap(err, "fasta scan")
		}
		if len(line) == 0 {
			break
		}
		line = bytes.TrimSuffix(bytes.TrimSuffix(line, []byte("\n")), []byte("\r"))

		switch {
		case !open:
			start(line)
		case len(line) > 0 && line[0] == '>':
			if err := flush(); err != nil {
				return err
			}
			start(line)
		default:
			seq = append(seq, bytes.TrimSpace(line)...)
		}
		if err == io.EOF {
			break
		}
	}
	return flush()
}

// ReadFile reads every record of path into memory. The file handle is
// released before ReadFile returns.
func ReadFile(path string) ([]Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var recs []Record
	err = Scan(rc, func(r Record) error {
		recs = append(recs, r)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return recs, nil
}

func parseHeaderID(hdr []byte) string {
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
