//go:build unix

package errcode

import (
	"bytes"
	"errors"
	"syscall"

	"golang.org/x/sys/unix"
)

// posixWouldBlock holds EAGAIN and EWOULDBLOCK, which coincide on most systems.
var posixWouldBlock = []Int{Int(unix.EAGAIN), Int(unix.EWOULDBLOCK)}

// systemWouldBlock is empty: the system category is errno itself here.
var systemWouldBlock []Int

func nativePosixSource() Source  { return errnoSource{} }
func nativeSystemSource() Source { return errnoSource{} }

// errnoSource reads errno and describes it with the C library's strerror in
// the "C" locale, or with the Go errno table when cgo is disabled. Code 0 is
// always "Success".
type errnoSource struct{}

func (errnoSource) LastError() Int { return lastErrno() }

func (errnoSource) FormatMessage(code Int, buf *MessageBuf) (int, error) {
	switch {
	case code == 0:
		return len(WriteMessage(buf, "Success")), nil
	case code < 0:
		return 0, ErrUnknownCode
	}
	n, err := errnoText(code, buf)
	if err != nil {
		return 0, err
	}
	if n <= 0 || unknownText(buf[:min(n, len(buf))]) {
		return 0, ErrUnknownCode
	}
	return n, nil
}

// unknownText matches the placeholders C libraries return for codes they do
// not know: "Unknown error N" (glibc), "Unknown error: N" (BSD, Darwin) and
// "No error information" (musl).
func unknownText(text []byte) bool {
	return bytes.HasPrefix(text, []byte("Unknown error")) ||
		bytes.Equal(text, []byte("No error information"))
}

func (errnoSource) Symbol(code Int) string {
	if code <= 0 {
		return ""
	}
	return unix.ErrnoName(syscall.Errno(code))
}

// osCode converts an errno in err's chain to a Posix code.
func osCode(err error) (ErrorCode, bool) {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return NewPosix(Int(errno)), true
	}
	return ErrorCode{}, false
}
