package errcode

import "unicode/utf8"

// Category describes a family of error codes: how they are named, rendered,
// compared and classified.
//
// Categories are long-lived values distinguished by identity. Implement the
// interface on a pointer type (or declare a *Funcs) and keep a single instance
// in a package-level variable. A category whose dynamic type is not comparable
// (a struct holding a slice, map or func, for example) is never equal to any
// category, not even itself, and comparing or hashing codes of that category
// with ==, errors.Is or as map keys panics at run time.
type Category interface {
	// Name returns a short label such as "PosixError".
	Name() string

	// Message writes a description of code into buf and returns the written
	// prefix. It never fails: when no text can be produced it returns one of
	// the sentinel messages. The result is valid UTF-8 and aliases buf.
	Message(code Int, buf *MessageBuf) []byte

	// Equivalent reports whether code, which belongs to this category, is
	// equal to other. The usual rule is same category and same raw code.
	Equivalent(code Int, other ErrorCode) bool

	// IsWouldBlock reports whether code means the operation could not
	// complete immediately and may be retried.
	IsWouldBlock(code Int) bool
}

// Funcs is a Category assembled from functions. Nil functions get defaults:
// UnknownError for every message, identity-and-code equivalence, and no
// would-block codes.
//
//	var HTTPCategory = &errcode.Funcs{
//		Label: "HTTPError",
//		MessageFunc: func(code errcode.Int, buf *errcode.MessageBuf) []byte {
//			return errcode.WriteMessage(buf, http.StatusText(int(code)))
//		},
//	}
type Funcs struct {
	Label          string
	MessageFunc    func(code Int, buf *MessageBuf) []byte
	EquivalentFunc func(code Int, other ErrorCode) bool
	WouldBlockFunc func(code Int) bool
}

// Name returns f.Label.
func (f *Funcs) Name() string { return f.Label }

// Message calls f.MessageFunc and substitutes a sentinel message when the
// result is empty or not valid UTF-8.
func (f *Funcs) Message(code Int, buf *MessageBuf) []byte {
	if f.MessageFunc == nil {
		return WriteMessage(buf, UnknownError)
	}
	msg := f.MessageFunc(code, buf)
	switch {
	case len(msg) == 0:
		return WriteMessage(buf, UnknownError)
	case !utf8.Valid(msg):
		return WriteMessage(buf, FailErrorFormat)
	case len(msg) > len(buf):
		return trimPartial(msg[:len(buf)])
	}
	return msg
}

// Equivalent calls f.EquivalentFunc, defaulting to identity and code equality.
func (f *Funcs) Equivalent(code Int, other ErrorCode) bool {
	if f.EquivalentFunc == nil {
		return sameCode(f, code, other)
	}
	return f.EquivalentFunc(code, other)
}

// IsWouldBlock calls f.WouldBlockFunc, defaulting to false.
func (f *Funcs) IsWouldBlock(code Int) bool {
	if f.WouldBlockFunc == nil {
		return false
	}
	return f.WouldBlockFunc(code)
}

// sameCode reports whether other belongs to c itself and carries code.
func sameCode(c Category, code Int, other ErrorCode) bool {
	return sameCategory(other.Category(), c) && other.RawCode() == code
}

// sameCategory reports whether a and b are the same category. It reports
// false instead of panicking when their dynamic type is not comparable.
func sameCategory(a, b Category) (same bool) {
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}

// validMessage returns the usable prefix of a message a Source wrote into buf
// and claimed to be n bytes long.
func validMessage(buf *MessageBuf, n int) []byte {
	if n <= 0 {
		return WriteMessage(buf, UnknownError)
	}
	msg := buf[:min(n, len(buf))]
	if n > len(buf) {
		msg = trimPartial(msg)
	}
	if !utf8.Valid(msg) {
		return WriteMessage(buf, FailErrorFormat)
	}
	return msg
}

func containsCode(codes []Int, code Int) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
