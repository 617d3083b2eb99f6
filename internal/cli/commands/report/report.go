// Package report renders Developer Tool and SIP probe results.
//
// Every result is reported on its own line (or JSON entry). A probe that cannot
// reach a verdict is reported as such and never turns into a command failure.
package report

import (
	"context"
	"errors"
	"io"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/mpyw/privcheck/internal/cli/colors"
	cliinternal "github.com/mpyw/privcheck/internal/cli/commands/internal"
	"github.com/mpyw/privcheck/internal/cli/output"
	"github.com/mpyw/privcheck/internal/devtool"
	"github.com/mpyw/privcheck/internal/dylib"
	"github.com/mpyw/privcheck/internal/sip"
)

// Runner executes a report.
// A nil CheckStatus skips the Developer Tool line; empty Probes skips the SIP lines.
type Runner struct {
	CheckStatus func() (devtool.Status, error)
	Probes      []sip.Probe
	Stdout      io.Writer
	Stderr      io.Writer
}

// Options holds the options for a report.
type Options struct {
	Output output.Format
}

// DevToolJSON is the JSON form of the Developer Tool result.
type DevToolJSON struct {
	Available bool   `json:"available"`
	Status    string `json:"status,omitempty"`
	Raw       *int   `json:"raw,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ProbeJSON is the JSON form of one SIP probe result.
// Protected is null when the probe could not decide.
type ProbeJSON struct {
	Probe     string `json:"probe"`
	Protected *bool  `json:"protected"`
}

// JSONOutput represents the JSON output structure of a report.
type JSONOutput struct {
	DeveloperTool *DevToolJSON `json:"developer_tool,omitempty"` //nolint:tagliatelle // snake_case output
	SIP           []ProbeJSON  `json:"sip,omitempty"`
}

// Action is the root command action: report everything.
func Action(ctx context.Context, cmd *cli.Command) error {
	format, err := cliinternal.OutputFormat(cmd)
	if err != nil {
		return err
	}

	r := &Runner{
		CheckStatus: devtool.CheckStatus,
		Probes:      sip.Probes(),
		Stdout:      cmd.Root().Writer,
		Stderr:      cmd.Root().ErrWriter,
	}

	return r.Run(ctx, Options{Output: format})
}

// Run executes the report. Probe outcomes never produce an error.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	var (
		devTool     *DevToolJSON
		devToolLine string
		probes      []ProbeJSON
	)

	if r.CheckStatus != nil {
		status, err := r.CheckStatus()
		devTool = newDevToolJSON(status, err)
		devToolLine = devToolText(status, err)
	}

	for _, p := range r.Probes {
		protected, ok := p.Run(ctx).Bool()
		probes = append(probes, ProbeJSON{
			Probe:     p.Name,
			Protected: lo.Ternary[*bool](ok, lo.ToPtr(protected), nil),
		})
	}

	out := output.New(r.Stdout)

	if opts.Output == output.FormatJSON {
		return out.JSON(JSONOutput{DeveloperTool: devTool, SIP: probes})
	}

	if devTool != nil {
		out.Field("Developer Tool", devToolLine)
	}

	for _, p := range probes {
		out.Field("SIP filesystem protections ("+p.Probe+")", probeText(p))
	}

	if len(probes) > 0 && lo.EveryBy(probes, func(p ProbeJSON) bool { return p.Protected == nil }) {
		output.Warning(r.Stderr, "no SIP probe reached a verdict; rerun with --%s=debug for details", cliinternal.FlagLogLevel)
	}

	return nil
}

func newDevToolJSON(status devtool.Status, err error) *DevToolJSON {
	if err != nil {
		return &DevToolJSON{Available: false, Error: err.Error()}
	}

	return &DevToolJSON{Available: true, Status: status.String(), Raw: lo.ToPtr(int(status))}
}

func devToolText(status devtool.Status, err error) string {
	switch {
	case IsUnavailable(err):
		return colors.Unknown("ExecutionPolicy framework not available")
	case err != nil:
		return colors.Unknown("unknown (" + err.Error() + ")")
	}

	switch status {
	case devtool.Authorized:
		return colors.Granted(status.String())
	case devtool.Restricted, devtool.Denied:
		return colors.Refused(status.String())
	default:
		return colors.Unknown(status.String())
	}
}

func probeText(p ProbeJSON) string {
	switch {
	case p.Protected == nil:
		return colors.Unknown(sip.Indeterminate.String())
	case *p.Protected:
		return colors.Granted(sip.Protected.String())
	default:
		return colors.Refused(sip.Unprotected.String())
	}
}

// IsUnavailable reports whether err means the facility is absent rather than broken.
func IsUnavailable(err error) bool {
	return errors.Is(err, dylib.ErrUnavailable) || errors.Is(err, dylib.ErrClassNotFound)
}
