package main

import (
	"errors"
)

// Exit codes for brandkit-export.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0 // All passes ran, missing sources included
	ExitGeneral = 1 // Rendering, I/O, or rasterizer failure
	ExitUsage   = 2 // Invalid flags or arguments
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrUsage) {
		return ExitUsage
	}

	return ExitGeneral
}
