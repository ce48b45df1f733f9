// Package cliutil provides output helpers for the commandable CLI.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// Warnf writes a "Warning: " prefixed line to w.
func Warnf(w io.Writer, format string, args ...any) {
	Writef(w, "Warning: "+format+"\n", args...)
}

// Lines writes each line to w followed by a newline.
func Lines(w io.Writer, lines ...string) {
	for _, line := range lines {
		Writef(w, "%s\n", line)
	}
}
