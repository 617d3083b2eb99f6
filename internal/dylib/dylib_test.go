package dylib_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/privcheck/internal/dylib"
)

func systemLibrary(t *testing.T) string {
	t.Helper()

	switch runtime.GOOS {
	case "darwin":
		return "/usr/lib/libSystem.B.dylib"
	case "linux":
		return "libc.so.6"
	default:
		t.Skipf("no known system library on %s", runtime.GOOS)

		return ""
	}
}

//nolint:paralleltest // Live() is process-wide
func TestOpen_MissingImage(t *testing.T) {
	before := dylib.Live()

	lib, err := dylib.Open(filepath.Join(t.TempDir(), "missing.dylib"))
	require.ErrorIs(t, err, dylib.ErrUnavailable)
	assert.Nil(t, lib)
	assert.Equal(t, before, dylib.Live())
}

//nolint:paralleltest // Live() is process-wide
func TestOpen_SystemLibrary(t *testing.T) {
	path := systemLibrary(t)
	before := dylib.Live()

	for range 3 {
		lib, err := dylib.Open(path)
		if err != nil {
			t.Skipf("system library not loadable: %v", err)
		}

		sym, err := lib.Lookup("getpid")
		require.NoError(t, err)
		assert.NotZero(t, sym)

		_, err = lib.Lookup("privcheck_no_such_symbol")
		require.ErrorIs(t, err, dylib.ErrSymbolNotFound)

		require.NoError(t, lib.Close())
	}

	assert.Equal(t, before, dylib.Live())
}
