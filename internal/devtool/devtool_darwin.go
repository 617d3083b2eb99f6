//go:build darwin

package devtool

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/ebitengine/purego/objc"
	"github.com/rs/zerolog/log"

	"github.com/mpyw/privcheck/internal/dylib"
	"github.com/mpyw/privcheck/internal/oneshot"
)

//nolint:gochecknoglobals // Selectors are registered once with the Objective-C runtime
var (
	selNew                 = objc.RegisterName("new")
	selRelease             = objc.RegisterName("release")
	selDrain               = objc.RegisterName("drain")
	selRespondsToSelector  = objc.RegisterName("respondsToSelector:")
	selAuthorizationStatus = objc.RegisterName("authorizationStatus")
	selRequestAccess       = objc.RegisterName("requestDeveloperToolAccessWithCompletionHandler:")
)

// Tool is an EPDeveloperTool instance.
// It borrows the Library it was created from and must be closed before that Library.
type Tool struct {
	lib  *dylib.Library
	obj  objc.ID
	once sync.Once
}

// New creates an EPDeveloperTool through lib, which must be the loaded ExecutionPolicy image.
func New(lib *dylib.Library) (*Tool, error) {
	cls, err := lib.Class(ClassName)
	if err != nil {
		return nil, err
	}

	if err := lib.Retain(); err != nil {
		return nil, err
	}

	// + (instancetype)new; returns a +1 reference or nil.
	obj := objc.ID(cls).Send(selNew)
	if obj == 0 {
		lib.Release()

		return nil, ErrInstantiate
	}

	return &Tool{lib: lib, obj: obj}, nil
}

// AuthorizationStatus reads the current status. The user may change it at any time,
// so callers must not cache the result.
func (t *Tool) AuthorizationStatus() Status {
	// - (EPDeveloperToolStatus)authorizationStatus; EPDeveloperToolStatus is NSInteger.
	return Status(objc.Send[int](t.obj, selAuthorizationStatus))
}

// RequestAccess asks the system to grant Developer Tool access to the process and
// blocks until the completion handler reports the outcome.
//
// The handler runs at most once on a thread chosen by the OS. There is no timeout:
// if the system never calls the handler, RequestAccess never returns.
// Any failure to obtain a result yields false. Panics are only recovered on the
// calling goroutine; the completion handler itself must not panic.
func (t *Tool) RequestAccess() (granted bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("developer tool access request failed")

			granted = false
		}
	}()

	// - (BOOL)respondsToSelector:(SEL)aSelector;
	if !objc.Send[bool](t.obj, selRespondsToSelector, selRequestAccess) {
		log.Error().Str("class", ClassName).Msg("requestDeveloperToolAccessWithCompletionHandler: is not available")

		return false
	}

	cell := oneshot.New[bool]()

	// Block type: void (^)(BOOL granted).
	block := objc.NewBlock(func(_ objc.Block, result bool) {
		deliver(cell, result)
	})
	defer block.Release()

	// - (void)requestDeveloperToolAccessWithCompletionHandler:(void (^)(BOOL))handler;
	// The framework copies the block; ours is released once the result is in.
	t.obj.Send(selRequestAccess, block)

	return cell.Wait()
}

// Close releases the instance and its borrow on the Library. Extra calls are no-ops.
func (t *Tool) Close() {
	t.once.Do(func() {
		t.obj.Send(selRelease)
		t.lib.Release()
	})
}

// Query loads ExecutionPolicy.framework, creates a Tool, and passes it to fn.
// The Tool is closed before the framework, on every exit path.
// A missing framework or class yields an error wrapping dylib.ErrUnavailable
// or dylib.ErrClassNotFound.
func Query(fn func(t *Tool) error) error {
	// Autorelease pools are per-thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	return dylib.With(FrameworkPath, func(lib *dylib.Library) error {
		// NSAutoreleasePool comes from Foundation, which ExecutionPolicy links.
		// Messaging a nil class is a no-op, so a missing pool class is harmless.
		pool := objc.ID(objc.GetClass("NSAutoreleasePool")).Send(selNew)
		defer pool.Send(selDrain)

		tool, err := New(lib)
		if err != nil {
			if errors.Is(err, dylib.ErrClassNotFound) {
				log.Info().Err(err).Msg("ExecutionPolicy loaded without " + ClassName)
			} else {
				log.Error().Err(err).Msg("failed creating " + ClassName)
			}

			return fmt.Errorf("developer tool query: %w", err)
		}
		defer tool.Close()

		return fn(tool)
	})
}
