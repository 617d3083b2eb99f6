//go:build darwin

package dylib

import (
	"fmt"
	"sync"

	"github.com/ebitengine/purego"
	"github.com/ebitengine/purego/objc"
)

// <dlfcn.h> RTLD_NOLOAD: return a handle only if the image is already loaded.
const rtldNoLoad = 0x10

//nolint:gochecknoglobals // Resolved once from libobjc
var classImageName = sync.OnceValue(func() func(objc.Class) string {
	objcLib, err := purego.Dlopen("/usr/lib/libobjc.A.dylib", purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return func(objc.Class) string { return "" }
	}

	var fn func(objc.Class) string

	// const char *class_getImageName(Class cls);
	purego.RegisterLibFunc(&fn, objcLib, "class_getImageName")

	return fn
})

// Class resolves the Objective-C class name registered by this image.
// A class of the same name registered by another image is reported as ErrClassNotFound.
func (l *Library) Class(name string) (objc.Class, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return 0, ErrClosed
	}

	cls := objc.GetClass(name)
	if cls == 0 {
		return 0, fmt.Errorf("%w: %s (loaded %s)", ErrClassNotFound, name, l.path)
	}

	image := classImageName()(cls)
	if !l.owns(image) {
		return 0, fmt.Errorf("%w: %s is registered by %q, not %s", ErrClassNotFound, name, image, l.path)
	}

	return cls, nil
}

// owns reports whether image names the same loaded image as l.
// Paths are compared through the loader so install names and symlinked paths agree.
func (l *Library) owns(image string) bool {
	if image == "" {
		return false
	}

	handle, err := purego.Dlopen(image, purego.RTLD_LAZY|purego.RTLD_LOCAL|rtldNoLoad)
	if err != nil {
		return false
	}
	// A successful RTLD_NOLOAD open still takes a reference.
	defer func() { _ = purego.Dlclose(handle) }()

	return handle == l.handle
}
