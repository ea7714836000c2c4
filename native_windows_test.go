//go:build windows

package errcode

import (
	"path/filepath"
	"runtime"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

func TestNative_MessagesAreBoundedUTF8(t *testing.T) {
	for _, c := range []Category{Posix, System} {
		t.Run(c.Name(), func(t *testing.T) {
			var buf MessageBuf
			for code := Int(0); code < 16000; code++ {
				msg := c.Message(code, &buf)
				if len(msg) == 0 || len(msg) > MessageBufSize || !utf8.Valid(msg) {
					t.Fatalf("code %d: bad message %q", code, msg)
				}
			}
		})
	}
}

func TestNative_SystemWouldBlock(t *testing.T) {
	require.True(t, NewSystem(10035).IsWouldBlock())
	require.True(t, NewSystem(11).IsWouldBlock(), "posix EAGAIN is accepted too")
	require.True(t, NewPosix(11).IsWouldBlock())
	require.False(t, NewPosix(10035).IsWouldBlock())
}

func TestNative_UnknownSystemCode(t *testing.T) {
	require.Equal(t, "SystemError(13000): Unknown error", NewSystem(13000).String())
}

func TestNative_MessagesHaveNoTrailingNewline(t *testing.T) {
	var buf MessageBuf
	msg := NewSystem(int32(windows.ERROR_FILE_NOT_FOUND)).Message(&buf)
	require.NotEmpty(t, msg)
	last := msg[len(msg)-1]
	require.NotContains(t, []byte{0, '\r', '\n'}, last)
}

func TestLastSystem_ReadsLastErrorAfterFailure(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	path, err := windows.UTF16PtrFromString(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)

	_, err = windows.CreateFile(path, windows.GENERIC_READ, 0, nil, windows.OPEN_EXISTING, 0, 0)
	require.ErrorIs(t, err, windows.ERROR_FILE_NOT_FOUND)

	got := LastSystem()
	require.Equal(t, int32(windows.ERROR_FILE_NOT_FOUND), got.RawCode())
	require.True(t, got.Category() == System)
}

func TestNative_FromErrnoIsSystem(t *testing.T) {
	code := FromError(windows.ERROR_FILE_NOT_FOUND)
	require.True(t, code.Category() == System)
}
