// Package sip provides the SIP filesystem protection command.
package sip

import (
	"context"

	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/privcheck/internal/cli/commands/internal"
	"github.com/mpyw/privcheck/internal/cli/commands/report"
	sipdetect "github.com/mpyw/privcheck/internal/sip"
)

// Command returns the sip command.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "sip",
		Usage: "Report System Integrity Protection filesystem protection status",
		Description: `Run the SIP probes and print one line per probe. The probes are independent
and may disagree; none of them is treated as authoritative.

PROBES:
  system-library  csr_get_active_config from /usr/lib/libSystem.dylib
  csrutil         output of /usr/bin/csrutil status
  filesystem      write access check on /System

EXAMPLES:
  privcheck sip                                  Run every probe
  privcheck sip --probe csrutil                  Run a single probe
  privcheck --output=json sip                    Output as JSON`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "probe",
				Usage: "Probe to run (repeatable): system-library, csrutil, filesystem",
			},
		},
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	format, err := cliinternal.OutputFormat(cmd)
	if err != nil {
		return err
	}

	probes, err := sipdetect.Select(cmd.StringSlice("probe"))
	if err != nil {
		return err
	}

	r := &report.Runner{
		Probes: probes,
		Stdout: cmd.Root().Writer,
		Stderr: cmd.Root().ErrWriter,
	}

	return r.Run(ctx, report.Options{Output: format})
}
