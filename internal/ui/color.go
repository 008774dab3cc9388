// Package ui provides colored status messages on stderr.
//
// Standard output belongs to the pipeline data, so every helper here writes
// to Output, which defaults to a colorable stderr.
package ui

import (
	"io"

	"github.com/fatih/color"
)

var (
	// Colors
	Red    = color.New(color.FgRed)
	Green  = color.New(color.FgGreen)
	Yellow = color.New(color.FgYellow)
	Bold   = color.New(color.Bold)
)

// Output receives every message.
var Output io.Writer = color.Error

// Success prints a green success message with checkmark.
func Success(format string, args ...any) {
	Green.Fprintf(Output, "✓ "+format+"\n", args...)
}

// Error prints a red error message with X.
func Error(format string, args ...any) {
	Red.Fprintf(Output, "✗ "+format+"\n", args...)
}

// Warning prints a yellow warning message.
func Warning(format string, args ...any) {
	Yellow.Fprintf(Output, "⚠ "+format+"\n", args...)
}

// Hint prints a dimmed usage hint.
func Hint(format string, args ...any) {
	Bold.Fprintf(Output, format+"\n", args...)
}
