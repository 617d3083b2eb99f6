//go:build darwin

package devtool

import (
	"testing"

	"github.com/ebitengine/purego/objc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/privcheck/internal/dylib"
)

//nolint:paralleltest // Live() is process-wide
func TestTool_RequestAccessWithoutSelector(t *testing.T) {
	before := dylib.Live()

	lib, err := dylib.Open("/usr/lib/libobjc.A.dylib")
	require.NoError(t, err)

	cls, err := lib.Class("NSObject")
	require.NoError(t, err)
	require.NoError(t, lib.Retain())

	// NSObject does not respond to the access request selector.
	tool := &Tool{lib: lib, obj: objc.ID(cls).Send(selNew)}
	require.NotZero(t, tool.obj)

	assert.False(t, tool.RequestAccess())

	tool.Close()
	require.NoError(t, lib.Close())
	assert.Equal(t, before, dylib.Live())
}
