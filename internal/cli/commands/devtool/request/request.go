// Package request provides the Developer Tool access request command.
package request

import (
	"context"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/mpyw/privcheck/internal/cli/colors"
	cliinternal "github.com/mpyw/privcheck/internal/cli/commands/internal"
	"github.com/mpyw/privcheck/internal/cli/commands/report"
	"github.com/mpyw/privcheck/internal/cli/output"
	"github.com/mpyw/privcheck/internal/devtool"
)

// Runner executes the request command.
type Runner struct {
	RequestAccess func() (bool, error)
	Stdout        io.Writer
	Stderr        io.Writer
}

// Options holds the options for the request command.
type Options struct {
	Output output.Format
}

// JSONOutput represents the JSON output structure for the request command.
type JSONOutput struct {
	Available bool   `json:"available"`
	Granted   bool   `json:"granted"`
	Error     string `json:"error,omitempty"`
}

// Command returns the request command.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "request",
		Usage: "Ask the system to grant Developer Tool access to this process",
		Description: `Call -[EPDeveloperTool requestDeveloperToolAccessWithCompletionHandler:] and wait for the answer.

The system may list the calling application under System Settings > Privacy & Security >
Developer Tools so the user can enable it. The command waits for the system's answer
without a timeout.`,
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	format, err := cliinternal.OutputFormat(cmd)
	if err != nil {
		return err
	}

	r := &Runner{
		RequestAccess: devtool.RequestAccess,
		Stdout:        cmd.Root().Writer,
		Stderr:        cmd.Root().ErrWriter,
	}

	return r.Run(ctx, Options{Output: format})
}

// Run executes the request command. A refused or failed request is not an error.
func (r *Runner) Run(_ context.Context, opts Options) error {
	granted, err := r.RequestAccess()

	result := JSONOutput{
		Available: !report.IsUnavailable(err),
		Granted:   err == nil && granted,
	}
	if err != nil {
		result.Error = err.Error()
	}

	out := output.New(r.Stdout)

	if opts.Output == output.FormatJSON {
		return out.JSON(result)
	}

	switch {
	case !result.Available:
		out.Field("Developer Tool access", colors.Unknown("ExecutionPolicy framework not available"))
	case err != nil:
		out.Field("Developer Tool access", colors.Unknown("unknown ("+err.Error()+")"))
	case result.Granted:
		out.Field("Developer Tool access", colors.Granted("granted"))
	default:
		out.Field("Developer Tool access", colors.Refused("not granted"))
		output.Warning(r.Stderr, "enable this application under System Settings > Privacy & Security > Developer Tools")
	}

	return nil
}
