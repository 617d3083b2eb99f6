// Package commands provides the command-line interface for privcheck.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/mpyw/privcheck/internal/cli/commands/devtool"
	cliinternal "github.com/mpyw/privcheck/internal/cli/commands/internal"
	"github.com/mpyw/privcheck/internal/cli/commands/report"
	"github.com/mpyw/privcheck/internal/cli/commands/sip"
	"github.com/mpyw/privcheck/internal/logging"
)

// MakeApp creates a new CLI application instance.
func MakeApp() *cli.Command {
	return &cli.Command{
		Name:    "privcheck",
		Usage:   "Report macOS Developer Tool authorization and SIP filesystem protection",
		Version: "0.1.0",
		Description: `Without a subcommand, report the Developer Tool status of this process and
the result of every SIP probe, one line each. Missing facilities are reported,
not treated as failures.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    cliinternal.FlagLogLevel,
				Value:   logging.DefaultLevel,
				Usage:   "Diagnostic log level: trace, debug, info, warn, error, disabled",
				Sources: cli.EnvVars("PRIVCHECK_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    cliinternal.FlagOutput,
				Usage:   "Output format: text (default) or json",
				Sources: cli.EnvVars("PRIVCHECK_OUTPUT"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			w := lo.CoalesceOrEmpty[io.Writer](cmd.Root().ErrWriter, os.Stderr)

			return ctx, logging.Setup(w, cmd.String(cliinternal.FlagLogLevel))
		},
		Action: report.Action,
		Commands: []*cli.Command{
			devtool.Command(),
			sip.Command(),
		},
		CommandNotFound: func(_ context.Context, cmd *cli.Command, command string) {
			_ = cli.ShowAppHelp(cmd)
			w := lo.CoalesceOrEmpty(cmd.Root().ErrWriter, cmd.Root().Writer)
			_, _ = fmt.Fprintf(w, "\nCommand not found: %s\n", command)
		},
	}
}

// App is the main CLI application.
var App = MakeApp()
