// Package logger provides progress logging for the Docketry CLI.
//
// Debug and info messages trace the review pipeline (classification
// decisions, rule hits, generator calls) and only appear when verbose
// mode is enabled via the --verbose flag. Warnings report degradation
// the user should know about regardless, such as an unreachable AI
// provider or an unavailable history store, so they always print.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a pipeline trace message if verbose mode is enabled.
func Debug(format string, args ...any) {
	logAt("DEBUG", true, format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	logAt("INFO", true, format, args...)
}

// Warn prints a degradation warning. Warnings are not gated on
// verbose mode.
func Warn(format string, args ...any) {
	logAt("WARN", false, format, args...)
}

// Section prints a stage header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

func logAt(level string, gated bool, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if gated && !verbose {
		return
	}
	fmt.Fprintf(output, "["+level+"] "+format+"\n", args...)
}
