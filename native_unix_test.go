//go:build unix

package errcode

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"unicode/utf8"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
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

func TestNative_KnownMessages(t *testing.T) {
	tests := []struct {
		name string
		code Int
		want string
	}{
		{"success", 0, "Success"},
		{"unknown", 13000, UnknownError},
		{"negative", -1, UnknownError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf MessageBuf
			require.Equal(t, tt.want, string(Posix.Message(tt.code, &buf)))
			require.Equal(t, tt.want, string(System.Message(tt.code, &buf)))
		})
	}
}

func TestNative_MessagesStartUppercase(t *testing.T) {
	var buf MessageBuf
	msg := NewPosix(Int(unix.ENOENT)).Message(&buf)
	require.Equal(t, "No such file or directory", string(msg))
}

func TestNative_LinuxEAGAIN(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("errno 11 is EAGAIN on Linux only")
	}

	require.Equal(t, "PosixError(11): Resource temporarily unavailable", NewPosix(11).String())
	require.Equal(t, "SystemError(11): Resource temporarily unavailable", NewSystem(11).String())
}

func TestNative_UnknownSystemCode(t *testing.T) {
	require.Equal(t, "SystemError(13000): Unknown error", NewSystem(13000).String())
}

func TestNative_IsWouldBlock(t *testing.T) {
	for _, c := range []Category{Posix, System} {
		require.True(t, c.IsWouldBlock(Int(unix.EAGAIN)), c.Name())
		require.True(t, c.IsWouldBlock(Int(unix.EWOULDBLOCK)), c.Name())
		require.False(t, c.IsWouldBlock(Int(unix.ENOENT)), c.Name())
		require.False(t, c.IsWouldBlock(0), c.Name())
	}
}

func TestNative_SystemMatchesPosix(t *testing.T) {
	var pbuf, sbuf MessageBuf
	for code := Int(-2); code < 200; code++ {
		require.Equal(t, string(Posix.Message(code, &pbuf)), string(System.Message(code, &sbuf)), "code %d", code)
		require.Equal(t, Posix.IsWouldBlock(code), System.IsWouldBlock(code), "code %d", code)
	}
}

func TestNative_Symbol(t *testing.T) {
	require.Equal(t, "ENOENT", NewPosix(Int(unix.ENOENT)).Symbol())
	require.Equal(t, "EAGAIN", NewSystem(Int(unix.EAGAIN)).Symbol())
	require.Equal(t, "", NewPosix(0).Symbol())
	require.Equal(t, "", NewPosix(13000).Symbol())
}

func TestNative_FromError(t *testing.T) {
	_, err := os.Open(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)

	code := FromError(err)
	require.True(t, code.Equal(NewPosix(Int(unix.ENOENT))), "got %v", code)
	require.False(t, IsWouldBlock(err))
	require.Equal(t, platformerrors.ClassificationPermanent, GetClassification(err))
}

func TestNative_FromErrno(t *testing.T) {
	require.True(t, FromError(unix.EAGAIN).Equal(NewPosix(Int(unix.EAGAIN))))
	require.True(t, IsWouldBlock(unix.EAGAIN))
	require.True(t, IsRetryable(unix.EAGAIN))
}
