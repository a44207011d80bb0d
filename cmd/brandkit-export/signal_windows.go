//go:build windows

package main

import "os"

// shutdownSignals stop an export between files. Windows has no SIGTERM.
var shutdownSignals = []os.Signal{os.Interrupt}
