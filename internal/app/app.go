// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"kmertally/internal/cli"
	"kmertally/internal/cliutil"
	"kmertally/internal/cmdutil"
	"kmertally/internal/pipeline"
	"kmertally/internal/version"
	"kmertally/internal/writers"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitUsage       = 2
	ExitIO          = 3
	ExitInterrupted = 130
)

// usageError marks failures caused by bad flags, arguments or config.
type usageError struct{ error }

func (e usageError) Unwrap() error { return e.error }

func newCommand(opts *cli.Options, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kmertally [flags] [file ...]",
		Short: "Count k-mers in DNA sequence files",
		Long: `kmertally counts every k-mer of the DNA sequence in each input file and
writes one <kmer>\t<count> table per file to the output folder.

Input files are the files in --assembly-folder ending in --ext, or the
files/globs given as arguments. The first line of each file is its header.
Files containing anything other than A, C, G, T are skipped.`,
		Example: `  kmertally --kmer-length 5 --assembly-folder Section_1/assembly --output-path Section_1/output
  kmertally -k 7 -o out/ --records record reads/*.fasta.gz`,
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.Finalize(cmd.Flags(), opts, args); err != nil {
				return usageError{err}
			}
			return run(cmd.Context(), *opts, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("kmertally version {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })
	cli.Register(cmd.Flags(), opts)
	return cmd
}

func run(ctx context.Context, opts cli.Options, stderr io.Writer) error {
	inputs := opts.Inputs
	if len(inputs) == 0 {
		var err error
		inputs, err = cliutil.ListInputs(opts.AssemblyFolder, opts.Exts)
		if err != nil {
			return err
		}
	}

	sum, err := pipeline.Run(ctx, opts.PipelineConfig(), inputs, stderr)
	if err != nil {
		return err
	}
	cmdutil.Infof(stderr, opts.Quiet,
		"kmertally: %d file(s) read, %d table(s) written to %s, %d skipped (invalid), %d below --min-kmers, %d name clash(es)",
		sum.Files, sum.Written, opts.OutputPath, sum.Skipped, sum.Empty, sum.Clashes)
	return nil
}

// RunContext parses argv, runs the batch and returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	opts := cli.Defaults()
	cmd := newCommand(&opts, outw, stderr)
	if argv == nil {
		argv = []string{} // cobra falls back to os.Args on nil
	}
	cmd.SetArgs(argv)

	err := cmd.ExecuteContext(parent)
	if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) {
		_, _ = fmt.Fprintln(stderr, e)
		return ExitIO
	}

	var uerr usageError
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case errors.As(err, &uerr):
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		_, _ = fmt.Fprint(stderr, cmd.UsageString())
		return ExitUsage
	default:
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitIO
	}
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
