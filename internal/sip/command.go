package sip

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// CsrutilPath is the SIP status tool.
//
//nolint:gochecknoglobals // Overridable in tests
var CsrutilPath = "/usr/bin/csrutil"

// csrutil changed its wording between macOS releases.
//
//nolint:gochecknoglobals // Immutable phrase tables
var (
	enabledPhrases = []string{
		"Filesystem Protections: enabled",
		"System Integrity Protection status: enabled",
	}
	disabledPhrases = []string{
		"Filesystem Protections: disabled",
		"System Integrity Protection status: disabled",
	}
)

// FromCommand runs `csrutil status` and parses its output.
// A launch failure, a nonzero exit, or unrecognised output is Indeterminate.
func FromCommand(ctx context.Context) Result {
	cmd := exec.CommandContext(ctx, CsrutilPath, "status")

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			log.Error().
				Int("exit_code", exitErr.ExitCode()).
				Str("stderr", strings.TrimSpace(string(exitErr.Stderr))).
				Msg("`csrutil status` failed")
		} else {
			log.Error().Err(err).Msg("failed invoking `csrutil status`")
		}

		return Indeterminate
	}

	result := ParseStatus(string(out))
	if result == Indeterminate {
		log.Warn().Str("output", string(out)).Msg("could not parse `csrutil status` output")
	}

	return result
}

// ParseStatus interprets `csrutil status` output.
// Enabled phrasings are checked before disabled ones.
func ParseStatus(out string) Result {
	contains := func(phrase string) bool { return strings.Contains(out, phrase) }

	switch {
	case lo.SomeBy(enabledPhrases, contains):
		return Protected
	case lo.SomeBy(disabledPhrases, contains):
		return Unprotected
	default:
		return Indeterminate
	}
}
