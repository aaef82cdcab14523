// internal/cli/options.go
package cli

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"kmertally/internal/cliutil"
	"kmertally/internal/kmer"
	"kmertally/internal/pipeline"
)

// Defaults for the three core options.
const (
	DefaultAssemblyFolder = "assembly/"
	DefaultOutputPath     = "/project/output/"
	DefaultExt            = ".fasta"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Core
	KmerLength     int
	AssemblyFolder string
	OutputPath     string

	// Input selection
	Exts   []string
	Inputs []string // positional files/globs; replace the folder listing when set

	// Tallying
	Records  string
	MinKmers int

	// Misc
	ConfigFile string
	Progress   bool
	Quiet      bool
}

// Defaults returns Options with every default applied.
func Defaults() Options {
	return Options{
		KmerLength:     kmer.DefaultK,
		AssemblyFolder: DefaultAssemblyFolder,
		OutputPath:     DefaultOutputPath,
		Exts:           []string{DefaultExt},
		Records:        string(pipeline.PerFile),
		MinKmers:       1,
	}
}

// Register wires every flag onto fs. Underscored spellings such as
// --kmer_length are accepted as aliases of the dashed names.
func Register(fs *pflag.FlagSet, o *Options) {
	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.IntVarP(&o.KmerLength, "kmer-length", "k", o.KmerLength, "length of k-mer")
	fs.StringVarP(&o.AssemblyFolder, "assembly-folder", "i", o.AssemblyFolder, "folder containing assembly files")
	fs.StringVarP(&o.OutputPath, "output-path", "o", o.OutputPath, "folder for output files (created if missing)")

	fs.StringSliceVar(&o.Exts, "ext", o.Exts, "recognized input extension (repeatable)")
	fs.StringVar(&o.Records, "records", o.Records, "multi-record policy: file | merge | record")
	fs.IntVar(&o.MinKmers, "min-kmers", o.MinKmers, "write a table only with at least N distinct k-mers")

	fs.StringVar(&o.ConfigFile, "config", "", "TOML config file (flags override it)")
	fs.BoolVar(&o.Progress, "progress", false, "show a progress bar on stderr")
	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "suppress diagnostics")
	// cobra handles --version itself once a bool flag of that name exists
	fs.BoolP("version", "v", false, "print version and exit")
}

// Finalize loads the config file (if any) beneath explicitly set flags,
// records positionals and validates the result.
func Finalize(fs *pflag.FlagSet, o *Options, posArgs []string) error {
	if o.ConfigFile != "" {
		fc, err := LoadConfig(o.ConfigFile)
		if err != nil {
			return err
		}
		fc.Apply(o, fs.Changed)
	}
	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return err
		}
		o.Inputs = exp
	}
	return Validate(o)
}

// Validate applies CLI invariants.
func Validate(o *Options) error {
	if o.KmerLength < 1 {
		return errors.Errorf("--kmer-length must be ≥ 1 (got %d)", o.KmerLength)
	}
	if o.MinKmers < 0 {
		return errors.New("--min-kmers must be ≥ 0")
	}
	if o.OutputPath == "" {
		return errors.New("--output-path must not be empty")
	}
	if len(o.Inputs) == 0 && o.AssemblyFolder == "" {
		return errors.New("--assembly-folder must not be empty")
	}
	if len(o.Exts) == 0 {
		return errors.New("at least one --ext is required")
	}
	for _, x := range o.Exts {
		if x == "" {
			return errors.New("--ext must not be empty")
		}
	}
	switch pipeline.RecordPolicy(o.Records) {
	case pipeline.PerFile, pipeline.Merge, pipeline.PerRecord:
	default:
		return errors.Errorf("invalid --records %q (want file | merge | record)", o.Records)
	}
	return nil
}

// PipelineConfig maps Options onto the batch configuration.
func (o Options) PipelineConfig() pipeline.Config {
	return pipeline.Config{
		K:          o.KmerLength,
		OutDir:     o.OutputPath,
		InputExts:  o.Exts,
		Suffix:     pipeline.DefaultSuffix,
		OutExt:     pipeline.DefaultOutExt,
		Records:    pipeline.RecordPolicy(o.Records),
		MinEntries: o.MinKmers,
		Quiet:      o.Quiet,
		Progress:   o.Progress,
	}
}
