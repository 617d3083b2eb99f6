//go:build !unix

package sip

import "errors"

//nolint:gochecknoglobals // Replaced in tests
var checkWritable = func(string) error {
	return errors.ErrUnsupported
}
