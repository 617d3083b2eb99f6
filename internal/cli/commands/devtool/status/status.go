// Package status provides the Developer Tool status command.
package status

import (
	"context"

	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/privcheck/internal/cli/commands/internal"
	"github.com/mpyw/privcheck/internal/cli/commands/report"
	"github.com/mpyw/privcheck/internal/devtool"
)

// Command returns the status command.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show the Developer Tool authorization status of this process",
		Description: `Load ExecutionPolicy.framework and read +[EPDeveloperTool new].authorizationStatus.

The status is one of: not determined, restricted, denied, authorized.
On macOS releases without ExecutionPolicy (before 10.15) the framework is reported as not available.`,
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	format, err := cliinternal.OutputFormat(cmd)
	if err != nil {
		return err
	}

	r := &report.Runner{
		CheckStatus: devtool.CheckStatus,
		Stdout:      cmd.Root().Writer,
		Stderr:      cmd.Root().ErrWriter,
	}

	return r.Run(ctx, report.Options{Output: format})
}
