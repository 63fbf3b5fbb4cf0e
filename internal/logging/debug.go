package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.Mutex
	output  io.Writer = os.Stderr
	verbose bool
)

// DebugEnabled returns true if debug mode is enabled via WOGGER_DEBUG or the verbose flag
func DebugEnabled() bool {
	mu.Lock()
	v := verbose
	mu.Unlock()
	return v || os.Getenv("WOGGER_DEBUG") != ""
}

// SetVerbose turns debug output on regardless of WOGGER_DEBUG
func SetVerbose(enabled bool) {
	mu.Lock()
	verbose = enabled
	mu.Unlock()
}

// SetOutput redirects debug output and returns the previous writer
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := output
	output = w
	return prev
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		mu.Lock()
		fmt.Fprintf(output, format, args...)
		mu.Unlock()
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		mu.Lock()
		fmt.Fprintln(output, args...)
		mu.Unlock()
	}
}
