//go:build !darwin

package devtool

import (
	"fmt"
	"runtime"

	"github.com/mpyw/privcheck/internal/dylib"
)

// Tool is unavailable outside macOS; Query never produces one.
type Tool struct{}

// AuthorizationStatus always reports NotDetermined.
func (*Tool) AuthorizationStatus() Status {
	return NotDetermined
}

// RequestAccess always reports false.
func (*Tool) RequestAccess() bool {
	return false
}

// Close does nothing.
func (*Tool) Close() {}

// Query always fails: ExecutionPolicy only exists on macOS.
func Query(func(t *Tool) error) error {
	return fmt.Errorf("%w: ExecutionPolicy is not available on %s", dylib.ErrUnavailable, runtime.GOOS)
}
