//go:build windows

package main

import "os"

// shutdownSignals cancel a running conversion. Windows only delivers Interrupt.
var shutdownSignals = []os.Signal{os.Interrupt}
