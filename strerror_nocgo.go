//go:build !cgo && unix

package errcode

import (
	"strings"
	"syscall"

	"golang.org/x/sys/unix"
)

// errnoText describes code from the Go errno table, which mirrors the C
// library text with the first letter lowercased.
func errnoText(code Int, buf *MessageBuf) (int, error) {
	if unix.ErrnoName(syscall.Errno(code)) == "" {
		return 0, ErrUnknownCode
	}
	text := syscall.Errno(code).Error()
	if text == "" || strings.HasPrefix(text, "errno ") {
		return 0, ErrUnknownCode
	}
	sb := NewStrBuf(buf[:])
	first := text[0]
	if first >= 'a' && first <= 'z' {
		first -= 'a' - 'A'
	}
	_ = sb.WriteByte(first)
	_, _ = sb.WriteString(text[1:])
	return sb.Len(), nil
}
