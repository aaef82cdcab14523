// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"kmertally/internal/cliutil"
	"kmertally/internal/cmdutil"
	"kmertally/internal/dna"
	"kmertally/internal/fasta"
	"kmertally/internal/kmer"
	"kmertally/internal/writers"
)

// Summary counts what a run did.
type Summary struct {
	Files   int      // input files read
	Written int      // tables written
	Skipped int      // files (or records) dropped for invalid content
	Empty   int      // tables below MinEntries, not written
	Clashes int      // tables dropped because their output name was already written
	Outputs []string // paths written, in processing order
}

// unit is one table bound for one output file.
type unit struct {
	name  string // output file name
	label string // used in diagnostics
	table *kmer.Table
}

// Run creates cfg.OutDir if needed and processes inputs in order.
// Diagnostics go to diag. The returned error is non-nil only for I/O
// failures or cancellation; invalid files are counted in Summary.Skipped.
// A table whose output name was already written earlier in the same run is
// not written and is counted in Summary.Clashes.
func Run(ctx context.Context, cfg Config, inputs []string, diag io.Writer) (Summary, error) {
	var sum Summary
	if err := cfg.Validate(); err != nil {
		return sum, err
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return sum, errors.Wrap(err, "create output path")
	}

	showBar := cfg.Progress && !cfg.Quiet && diag != nil
	if showBar {
		diag = &lockedWriter{w: diag}
	}
	bar := newProgress(showBar, diag, len(inputs))
	defer bar.Finish()

	// output path -> label of the table written there during this run
	written := make(map[string]string)

	for _, path := range inputs {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		recs, err := fasta.ReadFile(path)
		if err != nil {
			return sum, err
		}
		sum.Files++

		units, skipped := tally(cfg, path, recs, diag)
		sum.Skipped += skipped
		for _, u := range units {
			if u.table.Len() < cfg.MinEntries {
				sum.Empty++
				cmdutil.Warnf(diag, cfg.Quiet, "no output for %s: %d distinct %d-mers (need at least %d)",
					u.label, u.table.Len(), cfg.K, cfg.MinEntries)
				continue
			}
			out := filepath.Join(cfg.OutDir, u.name)
			if prev, ok := written[out]; ok {
				sum.Clashes++
				cmdutil.Warnf(diag, cfg.Quiet, "skipping output for %s: %s was already written for %s",
					u.label, u.name, prev)
				continue
			}
			if err := writers.WriteTSVFile(out, u.table); err != nil {
				return sum, err
			}
			written[out] = u.label
			sum.Written++
			sum.Outputs = append(sum.Outputs, out)
		}
		bar.Increment()
	}
	return sum, nil
}

// tally turns one file's records into output units per cfg.Records.
// It returns how many files or records were skipped as invalid.
func tally(cfg Config, path string, recs []fasta.Record, diag io.Writer) ([]unit, int) {
	file := filepath.Base(path)
	base := cliutil.BaseName(path, cfg.InputExts)
	name := func(tag string) string { return base + tag + cfg.Suffix + cfg.OutExt }

	switch cfg.Records {
	case PerRecord:
		var units []unit
		skipped := 0
		for _, r := range recs {
			if err := validate(r.ID, string(r.Seq)); err != nil {
				skipped++
				cmdutil.Warnf(diag, cfg.Quiet, "skipping record %d of file %s: %v", r.Index, file, err)
				continue
			}
			units = append(units, unit{
				name:  name(fmt.Sprintf("_%d", r.Index)),
				label: fmt.Sprintf("%s record %d", file, r.Index),
				table: kmer.Count(string(r.Seq), cfg.K),
			})
		}
		return units, skipped

	case Merge:
		t := kmer.NewTable()
		for _, r := range recs {
			if err := validate(r.ID, string(r.Seq)); err != nil {
				cmdutil.Warnf(diag, cfg.Quiet, "skipping file %s: %v", file, err)
				return nil, 1
			}
			t.Merge(kmer.Count(string(r.Seq), cfg.K))
		}
		return []unit{{name: name(""), label: file, table: t}}, 0

	default:
		for _, r := range recs {
			if err := validate(r.ID, string(r.Seq)); err != nil {
				cmdutil.Warnf(diag, cfg.Quiet, "skipping file %s: %v", file, err)
				return nil, 1
			}
		}
		return []unit{{name: name(""), label: file, table: kmer.Count(concat(recs), cfg.K)}}, 0
	}
}

// concat joins every record's sequence, dropping the headers.
func concat(recs []fasta.Record) string {
	n := 0
	for _, r := range recs {
		n += len(r.Seq)
	}
	buf := make([]byte, 0, n)
	for _, r := range recs {
		buf = append(buf, r.Seq...)
	}
	return string(buf)
}

func validate(id, seq string) error {
	if dna.IsDNA(seq) {
		return nil
	}
	if pos, b, found := dna.FirstInvalid(seq); found {
		return &InvalidSequenceError{Record: id, Pos: pos, Base: b}
	}
	return nil
}
