//go:build darwin

package dylib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/privcheck/internal/dylib"
)

//nolint:paralleltest // Live() is process-wide
func TestLibrary_Class(t *testing.T) {
	before := dylib.Live()

	t.Run("registered by the image", func(t *testing.T) {
		lib, err := dylib.Open("/usr/lib/libobjc.A.dylib")
		require.NoError(t, err)

		cls, err := lib.Class("NSObject")
		require.NoError(t, err)
		assert.NotZero(t, cls)

		require.NoError(t, lib.Close())
	})

	t.Run("registered by another image", func(t *testing.T) {
		lib, err := dylib.Open("/usr/lib/libSystem.B.dylib")
		require.NoError(t, err)

		_, err = lib.Class("NSObject")
		require.ErrorIs(t, err, dylib.ErrClassNotFound)

		require.NoError(t, lib.Close())
	})

	t.Run("not registered", func(t *testing.T) {
		lib, err := dylib.Open("/usr/lib/libobjc.A.dylib")
		require.NoError(t, err)

		_, err = lib.Class("PrivcheckNoSuchClass")
		require.ErrorIs(t, err, dylib.ErrClassNotFound)

		require.NoError(t, lib.Close())
	})

	t.Run("after close", func(t *testing.T) {
		lib, err := dylib.Open("/usr/lib/libobjc.A.dylib")
		require.NoError(t, err)
		require.NoError(t, lib.Close())

		_, err = lib.Class("NSObject")
		require.ErrorIs(t, err, dylib.ErrClosed)
	})

	assert.Equal(t, before, dylib.Live())
}
