// Package terminal provides terminal-related utilities.
package terminal

import (
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Fder is an interface for types that have a file descriptor.
type Fder interface {
	Fd() uintptr
}

// IsTTY checks if the file descriptor is a TTY.
// This is a variable to allow mocking in tests.
//
//nolint:gochecknoglobals // Required for test mocking
var IsTTY = isatty.IsTerminal

// IsTerminalWriter returns true if the given writer is a terminal.
func IsTerminalWriter(w io.Writer) bool {
	f, ok := w.(Fder)
	if !ok {
		return false
	}

	return IsTTY(f.Fd())
}

// ColorEnabled reports whether ANSI colors should be written to w.
// Colors are off for non-terminals and when NO_COLOR is set.
func ColorEnabled(w io.Writer) bool {
	return !color.NoColor && IsTerminalWriter(w)
}
