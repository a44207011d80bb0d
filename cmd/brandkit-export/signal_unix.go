//go:build !windows

package main

import (
	"os"
	"syscall"
)

// shutdownSignals stop an export between files.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
