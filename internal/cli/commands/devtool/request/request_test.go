package request_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/privcheck/internal/cli/commands/devtool/request"
	"github.com/mpyw/privcheck/internal/cli/output"
	"github.com/mpyw/privcheck/internal/dylib"
)

func TestRunner_Run(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		granted    bool
		err        error
		wantStdout string
		wantStderr string
		wantJSON   string
	}{
		{
			name:       "granted",
			granted:    true,
			wantStdout: "Developer Tool access: granted",
			wantJSON:   `{"available": true, "granted": true}`,
		},
		{
			name:       "not granted",
			granted:    false,
			wantStdout: "Developer Tool access: not granted",
			wantStderr: "Privacy & Security > Developer Tools",
			wantJSON:   `{"available": true, "granted": false}`,
		},
		{
			name:       "framework missing",
			err:        fmt.Errorf("%w: ExecutionPolicy", dylib.ErrUnavailable),
			wantStdout: "Developer Tool access: ExecutionPolicy framework not available",
			wantJSON:   `{"available": false, "granted": false, "error": "library unavailable: ExecutionPolicy"}`,
		},
		{
			name:       "query failed",
			granted:    true,
			err:        errors.New("boom"),
			wantStdout: "Developer Tool access: unknown (boom)",
			wantJSON:   `{"available": true, "granted": false, "error": "boom"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			newRunner := func(stdout, stderr *bytes.Buffer) *request.Runner {
				return &request.Runner{
					RequestAccess: func() (bool, error) { return tt.granted, tt.err },
					Stdout:        stdout,
					Stderr:        stderr,
				}
			}

			var stdout, stderr bytes.Buffer

			require.NoError(t, newRunner(&stdout, &stderr).Run(t.Context(), request.Options{Output: output.FormatText}))
			assert.Contains(t, stdout.String(), tt.wantStdout)

			if tt.wantStderr != "" {
				assert.Contains(t, stderr.String(), tt.wantStderr)
			} else {
				assert.Empty(t, stderr.String())
			}

			stdout.Reset()

			require.NoError(t, newRunner(&stdout, &stderr).Run(t.Context(), request.Options{Output: output.FormatJSON}))
			assert.JSONEq(t, tt.wantJSON, stdout.String())
		})
	}
}
