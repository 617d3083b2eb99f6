// Package logging configures the process-wide zerolog logger.
//
// Library packages log through github.com/rs/zerolog/log and never configure it;
// the command-line entry point calls Setup once before running any probe.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/mpyw/privcheck/internal/cli/terminal"
)

// DefaultLevel hides the debug diagnostics emitted when a facility is simply absent.
const DefaultLevel = "warn"

// Setup points the global logger at w with the given level name
// (trace, debug, info, warn, error, fatal, panic, disabled). An empty name means DefaultLevel.
func Setup(w io.Writer, level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !terminal.ColorEnabled(w),
		TimeFormat: time.TimeOnly,
	}

	log.Logger = zerolog.New(console).Level(lvl).With().Timestamp().Logger()

	return nil
}

// ParseLevel converts a level name to a zerolog level.
func ParseLevel(level string) (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(lo.CoalesceOrEmpty(level, DefaultLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return lvl, nil
}
