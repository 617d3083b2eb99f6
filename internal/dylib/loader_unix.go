//go:build darwin || freebsd || linux

package dylib

import "github.com/ebitengine/purego"

//nolint:gochecknoglobals // Loader entry points
var (
	dlopen = func(path string) (uintptr, error) {
		return purego.Dlopen(path, purego.RTLD_LAZY|purego.RTLD_LOCAL)
	}
	dlsym   = purego.Dlsym
	dlclose = purego.Dlclose
)
