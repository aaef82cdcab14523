// internal/cli/config.go
package cli

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// FileConfig mirrors the flags that may be set from a TOML file.
// Absent keys leave the corresponding option untouched.
type FileConfig struct {
	KmerLength     *int     `toml:"kmer-length"`
	AssemblyFolder *string  `toml:"assembly-folder"`
	OutputPath     *string  `toml:"output-path"`
	Ext            []string `toml:"ext"`
	Records        *string  `toml:"records"`
	MinKmers       *int     `toml:"min-kmers"`
	Progress       *bool    `toml:"progress"`
	Quiet          *bool    `toml:"quiet"`
}

// LoadConfig decodes path strictly: unknown keys are an error.
func LoadConfig(path string) (FileConfig, error) {
	var fc FileConfig
	fh, err := os.Open(path)
	if err != nil {
		return fc, errors.Wrap(err, "config")
	}
	defer fh.Close()

	dec := toml.NewDecoder(fh)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fc, errors.Errorf("config %s:%d:%d: %v", path, row, col, derr)
		}
		return fc, errors.Wrapf(err, "config %s", path)
	}
	return fc, nil
}

// Apply copies every key present in fc onto o, except for flags the caller
// set explicitly (changed reports those by flag name).
func (fc FileConfig) Apply(o *Options, changed func(name string) bool) {
	if fc.KmerLength != nil && !changed("kmer-length") {
		o.KmerLength = *fc.KmerLength
	}
	if fc.AssemblyFolder != nil && !changed("assembly-folder") {
		o.AssemblyFolder = *fc.AssemblyFolder
	}
	if fc.OutputPath != nil && !changed("output-path") {
		o.OutputPath = *fc.OutputPath
	}
	if fc.Ext != nil && !changed("ext") {
		o.Exts = fc.Ext
	}
	if fc.Records != nil && !changed("records") {
		o.Records = *fc.Records
	}
	if fc.MinKmers != nil && !changed("min-kmers") {
		o.MinKmers = *fc.MinKmers
	}
	if fc.Progress != nil && !changed("progress") {
		o.Progress = *fc.Progress
	}
	if fc.Quiet != nil && !changed("quiet") {
		o.Quiet = *fc.Quiet
	}
}
