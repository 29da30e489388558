//go:build !windows

package main

import (
	"os"
	"syscall"
)

// shutdownSignals cancel a running conversion. SIGHUP covers a closed terminal.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGHUP}
