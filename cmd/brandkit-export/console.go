package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/blockrun/brandkit"
	"github.com/blockrun/brandkit/internal/hints"
)

const rule = "=================================================="

var (
	bold   = color.New(color.Bold).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

// icoSizes are the favicon sizes worth packing into favicon.ico.
var icoSizes = map[int]bool{16: true, 32: true, 48: true}

// console renders run progress for a terminal.
type console struct {
	env      *Environment
	quiet    bool
	verbose  bool
	icoFiles []string
}

func newConsole(env *Environment, flags *exportFlags) *console {
	return &console{env: env, quiet: flags.quiet, verbose: flags.verbose}
}

func (c *console) printf(format string, args ...any) {
	if !c.quiet {
		fmt.Fprintf(c.env.Stdout, format, args...)
	}
}

func (c *console) banner() {
	c.printf("%s\n%s\n%s\n", rule, bold("BlockRun.ai Brand Kit - PNG Export"), rule)
}

// observe is registered with the exporter and called for every event.
func (c *console) observe(ev brandkit.Event) {
	switch ev.Kind {
	case brandkit.EventPassStarted:
		c.printf("\n=== %s ===\n", ev.Title)

	case brandkit.EventGroupStarted:
		c.printf("\n%s:\n", ev.Title)

	case brandkit.EventSourceMissing:
		fmt.Fprintf(c.env.Stderr, "%s%s\n",
			yellow(fmt.Sprintf("Warning: %s not found, skipping %s", ev.Source, ev.Title)),
			hints.ForMissingSource(filepath.Dir(ev.Source)))

	case brandkit.EventFileCreated:
		c.created(ev.Output)

	case brandkit.EventPassFinished:
		if ev.Pass == brandkit.PassFavicons && len(c.icoFiles) > 0 {
			c.printf("\nFavicon files created.%s\n", hints.ForFaviconICO(c.icoFiles))
		}
	}
}

func (c *console) created(o *brandkit.Output) {
	name := filepath.Base(o.Path)

	if o.Pass == brandkit.PassFavicons && o.Width == o.Height && icoSizes[o.Width] {
		c.icoFiles = append(c.icoFiles, name)
	}

	switch {
	case c.verbose:
		c.printf("  Created: %s (%dx%d, %v)\n", name, o.Width, o.Height, o.Duration.Round(time.Millisecond))
	case o.Pass == brandkit.PassWordmarks:
		c.printf("  Created: %s (%dx%d)\n", name, o.Width, o.Height)
	default:
		c.printf("  Created: %s\n", name)
	}
}

func (c *console) summary(report *brandkit.Report, elapsed time.Duration) {
	c.printf("\n%s\n%s\n%s\n", rule, green("Export complete!"), rule)

	if len(report.Missing) > 0 {
		c.printf("\n%d file(s) created, %d source group(s) skipped\n", len(report.Created), len(report.Missing))
	} else {
		c.printf("\n%d file(s) created\n", len(report.Created))
	}
	if c.verbose {
		c.printf("Elapsed: %v\n", elapsed.Round(time.Millisecond))
	}

	c.printf("\nFiles saved to:\n")
	for _, d := range report.Dirs {
		c.printf("  %-10s %s\n", dirLabel(d)+":", filepath.Join(report.Root, d))
	}
}

var dirLabels = map[string]string{
	"png":      "PNG",
	"wordmark": "Wordmark",
	"favicon":  "Favicon",
	"social":   "Social",
}

func dirLabel(dir string) string {
	if label, ok := dirLabels[dir]; ok {
		return label
	}
	return strings.ToUpper(dir[:1]) + dir[1:]
}

// printError writes err in red with a hint matched to its cause.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s%s\n", red("Error: "+err.Error()), hintFor(err))
}

func hintFor(err error) string {
	switch {
	case errors.Is(err, brandkit.ErrRasterizerUnavailable):
		return hints.ForRasterizer()
	case errors.Is(err, brandkit.ErrRasterize):
		return hints.ForMalformedSVG()
	case errors.Is(err, brandkit.ErrCreateDir), errors.Is(err, brandkit.ErrWritePNG):
		return hints.ForOutputDirectory()
	}
	return ""
}
