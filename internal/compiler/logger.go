package compiler

import (
	"fmt"
	"io"
	"os"
)

// Logger provides verbose output for pattern rendering and generation.
type Logger struct {
	enabled bool
	out     io.Writer
}

// NewLogger creates a new logger instance writing to stderr.
func NewLogger(enabled bool) *Logger {
	return &Logger{
		enabled: enabled,
		out:     os.Stderr,
	}
}

// SetOutput sets the output writer for the logger.
// A nil writer keeps the current one.
func (l *Logger) SetOutput(w io.Writer) {
	if w != nil {
		l.out = w
	}
}

// Log prints a formatted message if verbose mode is enabled.
func (l *Logger) Log(format string, args ...interface{}) {
	if l.enabled {
		fmt.Fprintf(l.out, "[fluentrx] "+format+"\n", args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func (l *Logger) Section(name string) {
	if l.enabled {
		fmt.Fprintf(l.out, "\n[fluentrx] === %s ===\n", name)
	}
}

// Enabled returns whether the logger is enabled.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// LogAnalysis reports an analysis result.
func (l *Logger) LogAnalysis(a Analysis) {
	l.Log("Pattern: %s", a.Pattern)
	l.Log("Capture groups: %d", a.Captures)
	l.Log("Anchored: start=%v end=%v", a.AnchoredStart, a.AnchoredEnd)
	if a.HasRepeatingCaptures {
		l.Log("Warning: capture group inside a quantifier reports only its last iteration")
	}
}
