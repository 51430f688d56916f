// Package logger provides leveled, colorized console output for the
// non-interactive path and for engine internals.
package logger

import (
	"github.com/fatih/color"
)

var (
	// Info prints informational messages in green.
	Info = color.New(color.FgGreen).PrintfFunc()

	// Warn prints warnings in yellow.
	Warn = color.New(color.FgYellow).PrintfFunc()

	// Error prints errors in red.
	Error = color.New(color.FgRed).PrintfFunc()

	// Debug prints cyan debug messages when enabled via Init, and is a
	// no-op otherwise.
	Debug = func(format string, a ...any) {}
)

// Init enables or disables debug output.
func Init(debug bool) {
	if debug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
