// Package dylib loads shared-library images at runtime and resolves symbols in them.
//
// A Library is opened from a fixed filesystem path, used, and closed exactly once.
// Anything resolved through it (symbol addresses, Objective-C classes, objects
// created from those classes) is only valid while the Library stays open.
// Objects that outlive a single call take a borrow with Retain and give it back
// with Release; closing a Library that still has borrows is a programmer error.
//
// Name-based lookups bypass static type checking. Every call site that turns a
// resolved address into something callable must document the native signature
// it assumes next to the conversion.
package dylib

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
)

var (
	// ErrUnavailable is returned when an image cannot be loaded.
	// This is expected on older OS versions and is never a hard failure.
	ErrUnavailable = errors.New("library unavailable")

	// ErrSymbolNotFound is returned when a named export is absent from a loaded image.
	ErrSymbolNotFound = errors.New("symbol not found")

	// ErrClassNotFound is returned when a named Objective-C class is not registered.
	ErrClassNotFound = errors.New("class not found")

	// ErrClosed is returned when a Library is used after Close.
	ErrClosed = errors.New("library closed")
)

//nolint:gochecknoglobals // Process-wide count of open handles
var live atomic.Int64

// Live returns the number of handles opened by this package that have not been closed yet.
func Live() int64 {
	return live.Load()
}

// Library is a handle to a loaded shared-library image.
type Library struct {
	path   string
	handle uintptr

	mu      sync.Mutex
	closed  bool
	borrows int
}

// Open loads the image at path.
// A missing or unloadable image yields an error wrapping ErrUnavailable with the loader diagnostic.
func Open(path string) (*Library, error) {
	handle, err := dlopen(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("failed loading library")

		return nil, fmt.Errorf("%w: %s: %w", ErrUnavailable, path, err)
	}

	live.Add(1)

	return &Library{path: path, handle: handle}, nil
}

// With opens the image at path, calls fn with it, and closes it on every exit path,
// including a panic in fn.
func With(path string, fn func(lib *Library) error) (err error) {
	lib, err := Open(path)
	if err != nil {
		return err
	}

	defer func() {
		err = errors.Join(err, lib.Close())
	}()

	return fn(lib)
}

// Path returns the filesystem path the Library was opened from.
func (l *Library) Path() string {
	return l.path
}

// Lookup resolves the address of the exported symbol name.
func (l *Library) Lookup(name string) (uintptr, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return 0, ErrClosed
	}

	sym, err := dlsym(l.handle, name)
	if err != nil {
		return 0, fmt.Errorf("%w: %s in %s: %w", ErrSymbolNotFound, name, l.path, err)
	}

	if sym == 0 {
		return 0, fmt.Errorf("%w: %s in %s", ErrSymbolNotFound, name, l.path)
	}

	return sym, nil
}

// Retain records an object whose code lives in the image.
// Every successful Retain must be paired with exactly one Release before Close.
func (l *Library) Retain() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrClosed
	}

	l.borrows++

	return nil
}

// Release gives back a borrow taken with Retain.
func (l *Library) Release() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.borrows == 0 {
		panic(fmt.Sprintf("dylib: unbalanced Release on %s", l.path))
	}

	l.borrows--
}

// Close unloads the image. It must be called exactly once; later calls return ErrClosed.
// Loader errors during unload are logged and otherwise ignored.
// Closing while borrows are outstanding panics.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrClosed
	}

	if l.borrows > 0 {
		panic(fmt.Sprintf("dylib: closing %s with %d live object(s)", l.path, l.borrows))
	}

	l.closed = true
	live.Add(-1)

	// The handle is invalid after dlclose whatever it returns.
	if err := dlclose(l.handle); err != nil {
		log.Debug().Err(err).Str("path", l.path).Msg("failed closing library")
	}

	return nil
}
