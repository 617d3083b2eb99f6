//go:build !darwin && !freebsd && !linux

package dylib

import (
	"errors"
	"runtime"
)

var errNoLoader = errors.New("dynamic loading is not supported on " + runtime.GOOS)

//nolint:gochecknoglobals // Loader entry points
var (
	dlopen  = func(string) (uintptr, error) { return 0, errNoLoader }
	dlsym   = func(uintptr, string) (uintptr, error) { return 0, errNoLoader }
	dlclose = func(uintptr) error { return nil }
)
