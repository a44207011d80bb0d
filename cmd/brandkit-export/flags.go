package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks command-line errors; the CLI exits with ExitUsage.
var ErrUsage = errors.New("invalid usage")

// exportFlags holds the command-line flags. None of them change what is
// generated, only how much is printed.
type exportFlags struct {
	quiet   bool
	verbose bool
	version bool
}

// parseFlags parses args, excluding the program name.
// Returns flag.ErrHelp unwrapped when -h/--help was given.
func parseFlags(args []string, stderr io.Writer) (*exportFlags, error) {
	fs := flag.NewFlagSet("brandkit-export", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &exportFlags{}

	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only print warnings and errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "print dimensions and timings")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(stderr, fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q (run from the brand kit directory)", ErrUsage, fs.Arg(0))
	}

	if f.quiet && f.verbose {
		return nil, fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrUsage)
	}

	return f, nil
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: brandkit-export [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Renders svg/*.svg in the current directory into png/, wordmark/,")
	fmt.Fprintln(w, "favicon/ and social/.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}
