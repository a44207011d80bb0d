// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to messages.
package hints

import (
	"os/exec"
	"strings"
)

// LookPath finds an executable on PATH. Replaced in tests.
var LookPath = exec.LookPath

// ForMissingSource returns a hint for an absent SVG source.
func ForMissingSource(dir string) string {
	return format("export the SVG from the design file into " + dir + "/ and re-run")
}

// ForMalformedSVG returns a hint for SVG files the rasterizer rejects.
func ForMalformedSVG() string {
	return format("check the file is well-formed XML with a viewBox attribute, and convert text to paths in the design tool")
}

// ForRasterizer returns a hint when the built-in rasterizer self-check fails.
func ForRasterizer() string {
	return format("reinstall with: go install github.com/blockrun/brandkit/cmd/brandkit-export@latest")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check the brand kit directory exists and is writable")
}

// ForFaviconICO explains how to package the favicon PNGs into favicon.ico.
// Suggests the ImageMagick command that is actually installed, if any.
func ForFaviconICO(pngs []string) string {
	args := strings.Join(pngs, " ")

	if _, err := LookPath("magick"); err == nil {
		return format("to create favicon.ico run: magick " + args + " favicon.ico")
	}
	if _, err := LookPath("convert"); err == nil {
		return format("to create favicon.ico run: convert " + args + " favicon.ico")
	}
	return formatHints([]string{
		"to create favicon.ico, use an online converter",
		"or install ImageMagick and run: convert " + args + " favicon.ico",
	})
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
