package errcode

import (
	platformerrors "github.com/jmgilman/go/errors"
)

// Source is the platform collaborator behind a built-in category. It reads
// the calling thread's last error and looks up native message text.
//
// FormatMessage writes into buf and returns the number of bytes the message
// occupies. A count larger than len(buf) means the native text was longer
// than the buffer; the category keeps the prefix that fits.
type Source interface {
	LastError() Int
	FormatMessage(code Int, buf *MessageBuf) (int, error)
}

// Symbolizer is implemented by sources that know the symbolic name of a code,
// such as "EAGAIN" for 11 on Linux.
type Symbolizer interface {
	Symbol(code Int) string
}

// Sentinel failures a Source reports from FormatMessage.
var (
	// ErrUnknownCode means the code is not in the native message table.
	ErrUnknownCode = platformerrors.New(platformerrors.CodeNotFound, "error code not in native message table")

	// ErrUnavailable means the platform has no message lookup at all.
	ErrUnavailable = platformerrors.New(platformerrors.CodeNotImplemented, "native error lookup unavailable")

	// ErrInsufficientBuffer means the native text did not fit; the bytes
	// reported alongside it are still usable.
	ErrInsufficientBuffer = platformerrors.New(platformerrors.CodeInvalidInput, "message buffer too small")
)

// Sentinel messages substituted when native text cannot be produced.
const (
	UnknownError    = "Unknown error"
	FailErrorFormat = "Failed to format error into utf-8"
)

// sourced is implemented by categories that read the last error through a Source.
type sourced interface {
	source() Source
}

// lastError reads the last error through c's source, or 0 when c has none.
func lastError(c Category) Int {
	if s, ok := c.(sourced); ok && s.source() != nil {
		return s.source().LastError()
	}
	return 0
}
