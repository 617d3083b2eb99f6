//go:build unix

package sip

import "golang.org/x/sys/unix"

// checkWritable is access(2) with W_OK.
//
//nolint:gochecknoglobals // Replaced in tests
var checkWritable = func(path string) error {
	return unix.Access(path, unix.W_OK)
}
