// Package internal provides shared utilities for CLI commands.
package internal

import (
	"context"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/mpyw/privcheck/internal/cli/output"
)

// Flag names shared across commands.
const (
	FlagLogLevel = "log-level"
	FlagOutput   = "output"
)

// CommandNotFound is a shared handler for unknown subcommands.
// It displays the command help and an error message.
func CommandNotFound(_ context.Context, cmd *cli.Command, command string) {
	_ = cli.ShowSubcommandHelp(cmd)
	w := lo.CoalesceOrEmpty(cmd.Root().ErrWriter, cmd.Root().Writer)
	output.Printf(w, "\nUnknown command: %s\n", command)
}

// OutputFormat returns the --output format inherited from the root command.
func OutputFormat(cmd *cli.Command) (output.Format, error) {
	return output.ParseFormat(cmd.String(FlagOutput))
}
