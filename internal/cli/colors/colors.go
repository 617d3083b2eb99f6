// Package colors provides pre-configured color functions for CLI output.
package colors

import "github.com/fatih/color"

//nolint:gochecknoglobals // Immutable color definitions initialized at package load
var (
	// Warning formats text in yellow for warning messages.
	Warning = color.New(color.FgYellow).SprintFunc()

	// Error formats text in red for error messages.
	Error = color.New(color.FgRed).SprintFunc()

	// FieldLabel formats result labels (e.g., "Developer Tool:") in cyan.
	FieldLabel = color.New(color.FgCyan).SprintFunc()

	// Granted formats a favourable verdict ("authorized", "enabled") in green.
	Granted = color.New(color.FgGreen).SprintFunc()

	// Refused formats an unfavourable verdict ("denied", "disabled") in red.
	Refused = color.New(color.FgRed).SprintFunc()

	// Unknown formats a missing verdict in yellow.
	Unknown = color.New(color.FgYellow).SprintFunc()
)
