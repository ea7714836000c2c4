package errcode

import (
	"hash/maphash"
	"strconv"
	"strings"
)

// ErrorCode is a raw error code paired with the category that interprets it.
//
// ErrorCode is a small comparable value. It is never mutated after
// construction. The zero value is Posix code 0.
type ErrorCode struct {
	code     Int
	category Category
}

// New returns code interpreted by category. A nil category means Posix.
func New(code Int, category Category) ErrorCode {
	return ErrorCode{code: code, category: category}
}

// NewPosix returns a Posix error code.
func NewPosix(code Int) ErrorCode {
	return New(code, Posix)
}

// NewSystem returns a System error code.
func NewSystem(code Int) ErrorCode {
	return New(code, System)
}

// LastPosix returns the calling thread's errno as a Posix error code.
//
// Call it right after the failing operation, from a goroutine locked to its OS
// thread with runtime.LockOSThread, before anything else can overwrite errno.
func LastPosix() ErrorCode {
	return Last(Posix)
}

// LastSystem returns the calling thread's last native error as a System error
// code. The same thread rules as LastPosix apply.
func LastSystem() ErrorCode {
	return Last(System)
}

// Last reads the last error through category's platform source. Categories
// without a source report code 0.
func Last(category Category) ErrorCode {
	if category == nil {
		category = Posix
	}
	return New(lastError(category), category)
}

// RawCode returns the raw code.
func (e ErrorCode) RawCode() Int {
	return e.code
}

// Category returns the category interpreting the code.
func (e ErrorCode) Category() Category {
	if e.category == nil {
		return Posix
	}
	return e.category
}

// IsWouldBlock reports whether the code means "try again later" rather than a
// permanent failure.
func (e ErrorCode) IsWouldBlock() bool {
	return e.Category().IsWouldBlock(e.code)
}

// Message writes the description of e into buf and returns it.
// The result aliases buf.
func (e ErrorCode) Message(buf *MessageBuf) []byte {
	return e.Category().Message(e.code, buf)
}

// Equal reports whether e and other denote the same error, as decided by the
// category of e.
func (e ErrorCode) Equal(other ErrorCode) bool {
	return e.Category().Equivalent(e.code, other)
}

// Is lets errors.Is match an ErrorCode target with Equal.
func (e ErrorCode) Is(target error) bool {
	t, ok := target.(ErrorCode)
	return ok && e.Equal(t)
}

// Hash returns a hash of the category name and the raw code. Codes that are
// Equal under identity-based equivalence always hash alike; a category with a
// looser Equivalent rule across categories does not get that guarantee.
func (e ErrorCode) Hash(seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	_, _ = h.WriteString(e.Category().Name())
	var num [4]byte
	u := uint32(e.code)
	num[0], num[1], num[2], num[3] = byte(u), byte(u>>8), byte(u>>16), byte(u>>24)
	_, _ = h.Write(num[:])
	return h.Sum64()
}

// Error returns the display form, so an ErrorCode can be returned as an error.
func (e ErrorCode) Error() string {
	return e.String()
}

// String returns "<Name>(<code>): <message>".
func (e ErrorCode) String() string {
	var sb strings.Builder
	e.writeDisplay(&sb)
	return sb.String()
}

// GoString returns "<Name>(<code>)" without looking up the message.
func (e ErrorCode) GoString() string {
	var sb strings.Builder
	e.writeDebug(&sb)
	return sb.String()
}

type textWriter interface {
	Write(p []byte) (int, error)
	WriteString(s string) (int, error)
}

func (e ErrorCode) writeDebug(w textWriter) {
	var num [12]byte
	_, _ = w.WriteString(e.Category().Name())
	_, _ = w.WriteString("(")
	_, _ = w.Write(strconv.AppendInt(num[:0], int64(e.code), 10))
	_, _ = w.WriteString(")")
}

func (e ErrorCode) writeDisplay(w textWriter) {
	var buf MessageBuf
	e.writeDebug(w)
	_, _ = w.WriteString(": ")
	_, _ = w.Write(e.Message(&buf))
}
