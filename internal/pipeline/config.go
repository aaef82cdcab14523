// internal/pipeline/config.go
package pipeline

import "github.com/pkg/errors"

// RecordPolicy selects how files holding several records are tallied.
type RecordPolicy string

const (
	// PerFile concatenates every record's sequence into one table per file.
	PerFile RecordPolicy = "file"
	// Merge counts each record separately and sums the tables per file.
	Merge RecordPolicy = "merge"
	// PerRecord writes one table per record.
	PerRecord RecordPolicy = "record"
)

// Output naming defaults: <base><Suffix><Ext>.
const (
	DefaultSuffix = "_output"
	DefaultOutExt = ".tsv"
)

type Config struct {
	K          int
	OutDir     string
	InputExts  []string // recognized extensions, stripped when naming outputs
	Suffix     string
	OutExt     string
	Records    RecordPolicy
	MinEntries int // write a table only when it has at least this many k-mers

	Quiet    bool
	Progress bool
}

// Validate checks c and fills naming defaults.
func (c *Config) Validate() error {
	if c.K < 1 {
		return errors.Errorf("k-mer length must be ≥ 1 (got %d)", c.K)
	}
	if c.OutDir == "" {
		return errors.New("output path is empty")
	}
	if c.MinEntries < 0 {
		return errors.Errorf("min-kmers must be ≥ 0 (got %d)", c.MinEntries)
	}
	switch c.Records {
	case "":
		c.Records = PerFile
	case PerFile, Merge, PerRecord:
	default:
		return errors.Errorf("invalid record policy %q (want file | merge | record)", c.Records)
	}
	if c.Suffix == "" {
		c.Suffix = DefaultSuffix
	}
	if c.OutExt == "" {
		c.OutExt = DefaultOutExt
	}
	return nil
}
