package commands_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/privcheck/internal/cli/commands"
	"github.com/mpyw/privcheck/internal/cli/commands/report"
	"github.com/mpyw/privcheck/internal/devtool"
	"github.com/mpyw/privcheck/internal/sip"
)

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	orig := log.Logger

	t.Cleanup(func() { log.Logger = orig })

	var stdout, stderr bytes.Buffer

	app := commands.MakeApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr

	err := app.Run(t.Context(), append([]string{"privcheck"}, args...))

	return stdout.String(), stderr.String(), err
}

// isolate points every facility at paths that do not exist, so results are deterministic.
func isolate(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	origFramework, origLib, origCsrutil := devtool.FrameworkPath, sip.LibSystemPath, sip.CsrutilPath

	t.Cleanup(func() {
		devtool.FrameworkPath, sip.LibSystemPath, sip.CsrutilPath = origFramework, origLib, origCsrutil
	})

	devtool.FrameworkPath = filepath.Join(dir, "ExecutionPolicy")
	sip.LibSystemPath = filepath.Join(dir, "libSystem.dylib")
	sip.CsrutilPath = filepath.Join(dir, "csrutil")
}

//nolint:paralleltest // Test modifies package globals (logger, facility paths)
func TestApp_Report(t *testing.T) {
	isolate(t)

	stdout, _, err := runApp(t)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Developer Tool: ExecutionPolicy framework not available")
	assert.Contains(t, stdout, "SIP filesystem protections (system-library): unknown")
	assert.Contains(t, stdout, "SIP filesystem protections (csrutil): unknown")
	assert.Contains(t, stdout, "SIP filesystem protections (filesystem):")
}

//nolint:paralleltest // Test modifies package globals (logger, facility paths)
func TestApp_ReportJSON(t *testing.T) {
	isolate(t)

	stdout, _, err := runApp(t, "--output", "json")
	require.NoError(t, err)

	var got report.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	require.NotNil(t, got.DeveloperTool)
	assert.False(t, got.DeveloperTool.Available)
	require.Len(t, got.SIP, 3)
	assert.Nil(t, got.SIP[0].Protected)
	assert.Nil(t, got.SIP[1].Protected)
}

//nolint:paralleltest // Test modifies package globals (logger, facility paths)
func TestApp_SIPSelectedProbe(t *testing.T) {
	isolate(t)

	stdout, _, err := runApp(t, "sip", "--probe", "csrutil")
	require.NoError(t, err)

	assert.Contains(t, stdout, "SIP filesystem protections (csrutil): unknown")
	assert.NotContains(t, stdout, "system-library")
	assert.NotContains(t, stdout, "Developer Tool")
}

//nolint:paralleltest // Test modifies package globals (logger, facility paths)
func TestApp_DevtoolStatus(t *testing.T) {
	isolate(t)

	stdout, _, err := runApp(t, "devtool", "status")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Developer Tool: ExecutionPolicy framework not available")
	assert.NotContains(t, stdout, "SIP")
}

//nolint:paralleltest // Test modifies package globals (logger, facility paths)
func TestApp_DebugLogging(t *testing.T) {
	isolate(t)

	_, stderr, err := runApp(t, "--log-level", "debug", "sip", "--probe", "system-library")
	require.NoError(t, err)

	assert.Contains(t, stderr, "failed loading library")
}

//nolint:paralleltest // Test modifies package globals (logger)
func TestApp_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "bad output format", args: []string{"--output", "yaml"}, want: `unsupported output format "yaml"`},
		{name: "bad log level", args: []string{"--log-level", "loud", "sip"}, want: `invalid log level "loud"`},
		{name: "unknown probe", args: []string{"sip", "--probe", "nvram"}, want: `unknown probe "nvram"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)

			_, _, err := runApp(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
