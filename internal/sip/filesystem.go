package sip

import (
	"errors"
	"io/fs"
	"syscall"

	"github.com/rs/zerolog/log"
)

// ProtectedDir is a directory SIP keeps read-only.
//
//nolint:gochecknoglobals // Overridable in tests
var ProtectedDir = "/System"

// FromFilesystem checks whether the process could write to ProtectedDir.
func FromFilesystem() Result {
	err := checkWritable(ProtectedDir)

	result := fromAccessError(err)
	if result == Indeterminate {
		log.Warn().Err(err).Str("path", ProtectedDir).Msg("unexpected write access check result")
	}

	return result
}

// fromAccessError maps the outcome of a write access check:
//
//	nil        -> Unprotected
//	EACCES     -> Protected (EPERM too)
//	EROFS      -> Unprotected; a read-only system volume is not SIP's doing
//	otherwise  -> Indeterminate
func fromAccessError(err error) Result {
	switch {
	case err == nil:
		return Unprotected
	case errors.Is(err, syscall.EROFS):
		return Unprotected
	case errors.Is(err, fs.ErrPermission):
		return Protected
	default:
		return Indeterminate
	}
}
