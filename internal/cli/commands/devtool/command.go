// Package devtool provides the Developer Tool command group.
package devtool

import (
	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/privcheck/internal/cli/commands/internal"
	"github.com/mpyw/privcheck/internal/cli/commands/devtool/request"
	"github.com/mpyw/privcheck/internal/cli/commands/devtool/status"
)

// Command returns the devtool command with all subcommands.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "devtool",
		Aliases: []string{"dt"},
		Usage:   "Inspect macOS Developer Tool authorization",
		Commands: []*cli.Command{
			status.Command(),
			request.Command(),
		},
		CommandNotFound: cliinternal.CommandNotFound,
	}
}
