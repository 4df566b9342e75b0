package clipboard

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stub(t *testing.T, native error, tty bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	oldWrite, oldOut, oldSupported := writeAll, osc52Out, osc52Supported
	t.Cleanup(func() {
		writeAll, osc52Out, osc52Supported = oldWrite, oldOut, oldSupported
	})
	writeAll = func(string) error { return native }
	osc52Out = &buf
	osc52Supported = func() bool { return tty }
	return &buf
}

func TestCopy_NativeSucceeds(t *testing.T) {
	buf := stub(t, nil, true)

	require.NoError(t, Copy("hello"))
	assert.Empty(t, buf.String())
}

func TestCopy_FallsBackToOSC52(t *testing.T) {
	buf := stub(t, errors.New("no xclip"), true)

	require.NoError(t, Copy("hello"))
	assert.Equal(t, "\x1b]52;c;aGVsbG8=\x07", buf.String())
}

func TestCopy_NoClipboardAvailable(t *testing.T) {
	buf := stub(t, errors.New("no xclip"), false)

	err := Copy("hello")
	require.Error(t, err)
	assert.ErrorIs(t, err, errOSC52Unsupported)
	assert.Empty(t, buf.String())
}
