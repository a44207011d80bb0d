package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/blockrun/brandkit"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	ctx, stop := exportContext(context.Background())
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// exportContext is canceled by parent or by the first shutdown signal.
func exportContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}

// runMain parses args, runs the export and returns the process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	flags, err := parseFlags(args[1:], env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		printError(env.Stderr, err)
		return exitCodeFor(err)
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "brandkit-export %s\n", Version)
		return ExitSuccess
	}

	setMaxProcs(flags.verbose, env.Stderr)

	if err := run(ctx, flags, env); err != nil {
		printError(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// setMaxProcs configures GOMAXPROCS, logging the decision in verbose mode.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply.
func setMaxProcs(verbose bool, stderr io.Writer) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
			fmt.Fprintf(stderr, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...any) {}))
}

func run(ctx context.Context, flags *exportFlags, env *Environment) error {
	if err := env.CheckRasterizer(); err != nil {
		return err
	}

	out := newConsole(env, flags)

	exp, err := brandkit.NewExporter(
		brandkit.WithRoot(env.Root),
		brandkit.WithObserver(out.observe),
	)
	if err != nil {
		return err
	}

	start := env.Now()
	out.banner()

	report, err := exp.Run(ctx)
	if err != nil {
		return err
	}

	out.summary(report, env.Now().Sub(start))
	return nil
}
