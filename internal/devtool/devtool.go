// Package devtool queries the macOS "Developer Tool" authorization of the running process,
// as configured in System Settings > Privacy & Security > Developer Tools.
//
// The facility lives in ExecutionPolicy.framework, which only exists on macOS 10.15
// and later, so the framework is loaded at runtime instead of being linked.
package devtool

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/mpyw/privcheck/internal/oneshot"
)

// FrameworkPath is the image providing EPDeveloperTool.
//
//nolint:gochecknoglobals // Overridable in tests
var FrameworkPath = "/System/Library/Frameworks/ExecutionPolicy.framework/ExecutionPolicy"

// ClassName is the Objective-C class queried for the authorization status.
const ClassName = "EPDeveloperTool"

// ErrInstantiate is returned when the class resolves but no instance can be created.
var ErrInstantiate = errors.New("failed to instantiate " + ClassName)

// CheckStatus loads the framework, reads the current authorization status, and unloads it.
// The status is read fresh on every call.
func CheckStatus() (Status, error) {
	var status Status

	err := Query(func(t *Tool) error {
		status = t.AuthorizationStatus()

		return nil
	})

	return status, err
}

// RequestAccess loads the framework and asks the system to grant Developer Tool access.
// It blocks until the system reports a result; see (*Tool).RequestAccess.
func RequestAccess() (bool, error) {
	var granted bool

	err := Query(func(t *Tool) error {
		granted = t.RequestAccess()

		return nil
	})

	return granted, err
}

// deliver hands the completion result to the waiting caller.
// It may run on an OS-managed thread; only the first delivery counts.
func deliver(cell *oneshot.Cell[bool], granted bool) {
	if !cell.Put(granted) {
		log.Warn().Bool("granted", granted).Msg("developer tool access completion delivered more than once, ignoring")
	}
}
