//go:build !darwin && !freebsd && !linux

package sip

// csrGetActiveConfig is unreachable: dylib never opens an image on this platform.
func csrGetActiveConfig(uintptr) (config uint32, status int32) {
	return 0, -1
}
