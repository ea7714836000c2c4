//go:build windows

package errcode

import (
	"encoding/binary"
	"errors"
	"syscall"

	"golang.org/x/sys/windows"
	"golang.org/x/text/encoding/unicode"
)

// MSVC CRT values of EAGAIN and EWOULDBLOCK.
var posixWouldBlock = []Int{11, 140}

// wsaEWouldBlock is WSAEWOULDBLOCK, reported by non-blocking Winsock calls.
const wsaEWouldBlock Int = 10035

var systemWouldBlock = []Int{wsaEWouldBlock}

func nativePosixSource() Source  { return crtSource{} }
func nativeSystemSource() Source { return win32Source{} }

// crtErrors is the C runtime's strerror table.
var crtErrors = [...]struct{ name, text string }{
	0:  {"", "No error"},
	1:  {"EPERM", "Operation not permitted"},
	2:  {"ENOENT", "No such file or directory"},
	3:  {"ESRCH", "No such process"},
	4:  {"EINTR", "Interrupted function call"},
	5:  {"EIO", "Input/output error"},
	6:  {"ENXIO", "No such device or address"},
	7:  {"E2BIG", "Arg list too long"},
	8:  {"ENOEXEC", "Exec format error"},
	9:  {"EBADF", "Bad file descriptor"},
	10: {"ECHILD", "No child processes"},
	11: {"EAGAIN", "Resource temporarily unavailable"},
	12: {"ENOMEM", "Not enough space"},
	13: {"EACCES", "Permission denied"},
	14: {"EFAULT", "Bad address"},
	16: {"EBUSY", "Resource device"},
	17: {"EEXIST", "File exists"},
	18: {"EXDEV", "Improper link"},
	19: {"ENODEV", "No such device"},
	20: {"ENOTDIR", "Not a directory"},
	21: {"EISDIR", "Is a directory"},
	22: {"EINVAL", "Invalid argument"},
	23: {"ENFILE", "Too many open files in system"},
	24: {"EMFILE", "Too many open files"},
	25: {"ENOTTY", "Inappropriate I/O control operation"},
	27: {"EFBIG", "File too large"},
	28: {"ENOSPC", "No space left on device"},
	29: {"ESPIPE", "Invalid seek"},
	30: {"EROFS", "Read-only file system"},
	31: {"EMLINK", "Too many links"},
	32: {"EPIPE", "Broken pipe"},
	33: {"EDOM", "Domain error"},
	34: {"ERANGE", "Result too large"},
	36: {"EDEADLK", "Resource deadlock avoided"},
	38: {"ENAMETOOLONG", "Filename too long"},
	39: {"ENOLCK", "No locks available"},
	40: {"ENOSYS", "Function not implemented"},
	41: {"ENOTEMPTY", "Directory not empty"},
	42: {"EILSEQ", "Illegal byte sequence"},
}

// crtSource reads the C runtime errno and describes it with the CRT table.
type crtSource struct{}

func (crtSource) LastError() Int { return lastErrno() }

func (crtSource) FormatMessage(code Int, buf *MessageBuf) (int, error) {
	if code < 0 || int(code) >= len(crtErrors) || crtErrors[code].text == "" {
		return 0, ErrUnknownCode
	}
	return len(WriteMessage(buf, crtErrors[code].text)), nil
}

func (crtSource) Symbol(code Int) string {
	if code < 0 || int(code) >= len(crtErrors) {
		return ""
	}
	return crtErrors[code].name
}

// win32Source reads GetLastError and describes codes with FormatMessageW.
type win32Source struct{}

func (win32Source) LastError() Int {
	var errno syscall.Errno
	if errors.As(windows.GetLastError(), &errno) {
		return Int(errno)
	}
	return 0
}

func (win32Source) FormatMessage(code Int, buf *MessageBuf) (int, error) {
	const flags = windows.FORMAT_MESSAGE_FROM_SYSTEM |
		windows.FORMAT_MESSAGE_IGNORE_INSERTS |
		windows.FORMAT_MESSAGE_ARGUMENT_ARRAY

	var wide [MessageBufSize]uint16
	n, err := windows.FormatMessage(flags, 0, Uint(code), 0, wide[:], nil)

	var status error
	switch {
	case err == nil:
	case errors.Is(err, windows.ERROR_INSUFFICIENT_BUFFER):
		n = uint32(len(wide))
		for i, c := range wide {
			if c == 0 {
				n = uint32(i)
				break
			}
		}
		status = ErrInsufficientBuffer
	case errors.Is(err, windows.ERROR_MR_MID_NOT_FOUND):
		return 0, ErrUnknownCode
	default:
		return 0, err
	}

	text := wide[:n]
	for len(text) > 0 {
		last := text[len(text)-1]
		if last != 0 && last != '\r' && last != '\n' {
			break
		}
		text = text[:len(text)-1]
	}
	return decodeUTF16(buf, text), status
}

// decodeUTF16 transcodes wide into buf and returns the bytes written. The
// decoder only emits whole code points, so a full buffer ends on a boundary.
func decodeUTF16(buf *MessageBuf, wide []uint16) int {
	var raw [2 * MessageBufSize]byte
	for i, c := range wide {
		binary.LittleEndian.PutUint16(raw[2*i:], c)
	}
	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	n, _, _ := dec.Transform(buf[:], raw[:2*len(wide)], true)
	return n
}

// osCode converts a syscall.Errno in err's chain, which on Windows holds a
// GetLastError value, to a System code.
func osCode(err error) (ErrorCode, bool) {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return NewSystem(Int(errno)), true
	}
	return ErrorCode{}, false
}
