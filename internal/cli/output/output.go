// Package output handles formatted output for the CLI.
//
// This package provides utilities for:
//   - Labeled result lines (label: value format)
//   - User feedback messages (Warning, Error) with TTY-aware coloring
//   - JSON encoding for --output=json
//
// Colors are disabled by fatih/color when stdout is not a TTY or NO_COLOR is set.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mpyw/privcheck/internal/cli/colors"
)

// Format represents the output format.
type Format string

const (
	// FormatText is the default human-readable text format.
	FormatText Format = "text"
	// FormatJSON outputs structured JSON.
	FormatJSON Format = "json"
)

// ParseFormat parses a format string and returns the Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", string(FormatText):
		return FormatText, nil
	case string(FormatJSON):
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported output format %q: use text or json", s)
	}
}

// Writer provides formatted output methods.
type Writer struct {
	w io.Writer
}

// New creates a new output writer.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Field prints a labeled field.
func (o *Writer) Field(label, value string) {
	_, _ = fmt.Fprintf(o.w, "%s %s\n", colors.FieldLabel(label+":"), value)
}

// JSON writes v as indented JSON.
func (o *Writer) JSON(v any) error {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// Warning prints a warning message in yellow.
//
//nolint:goprintffuncname // intentionally named without 'f' suffix for cleaner API
func Warning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(w, colors.Warning("Warning: "+msg))
}

// Error prints an error message in red.
// Used for user-facing error messages that are not Go errors.
//
//nolint:goprintffuncname // intentionally named without 'f' suffix for cleaner API
func Error(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(w, colors.Error("Error: "+msg))
}

// Printf writes formatted output.
func Printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
