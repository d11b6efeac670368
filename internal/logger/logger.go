// Package logger provides verbose logging for the charta CLI.
// When verbose mode is enabled via the --verbose flag, debug and info
// messages are printed to stderr to trace template selection, term
// merging and document rendering. Warnings are always printed.
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
	quiet   bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetQuiet suppresses warnings. Used by machine-readable output modes
// such as the MCP stdio server, where stderr noise is unwanted.
func SetQuiet(q bool) {
	mu.Lock()
	defer mu.Unlock()
	quiet = q
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	logf(false, "[DEBUG] ", format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	logf(false, "[INFO] ", format, args...)
}

// Warn prints a warning unless quiet mode is enabled.
func Warn(format string, args ...any) {
	logf(true, "[WARN] ", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Logger prefixes every message with a component name.
type Logger struct {
	component string
}

// For returns a logger for a component, e.g. logger.For("merger").
func For(component string) Logger {
	return Logger{component: component}
}

// Debug prints a component message if verbose mode is enabled.
func (l Logger) Debug(format string, args ...any) {
	logf(false, "[DEBUG] "+l.component+": ", format, args...)
}

// Info prints a component message if verbose mode is enabled.
func (l Logger) Info(format string, args ...any) {
	logf(false, "[INFO] "+l.component+": ", format, args...)
}

// Warn prints a component warning unless quiet mode is enabled.
func (l Logger) Warn(format string, args ...any) {
	logf(true, "[WARN] "+l.component+": ", format, args...)
}

func logf(warning bool, prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if warning && quiet {
		return
	}
	if !warning && !verbose {
		return
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}
