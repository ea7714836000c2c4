// Package errcode represents platform error codes as small comparable values.
//
// An ErrorCode pairs a raw integer code with the Category that interprets it.
// The category names the code, renders it into a caller-owned buffer, decides
// equality and classifies would-block codes. Two categories are built in:
//
//   - Posix: errno values, described by the platform C library tables
//   - System: the operating system's native codes; errno on Unix-like
//     systems, GetLastError values described by FormatMessage on Windows
//
// # Features
//
//   - Value semantics: ErrorCode is comparable and never mutated
//   - Bounded formatting: messages are written into a fixed 256-byte MessageBuf
//   - Valid UTF-8 always; truncation never splits a code point
//   - Pluggable categories through the Category interface or *Funcs
//   - Injectable platform sources, so categories can be tested with fakes
//   - Standard library integration: error, fmt.Formatter, errors.Is,
//     slog.LogValuer and json.Marshaler
//
// # Quick Start
//
// Creating codes:
//
//	code := errcode.NewPosix(2)
//	fmt.Println(code)        // PosixError(2): No such file or directory
//	fmt.Printf("%#v\n", code) // PosixError(2)
//
// Reading the last error of the current thread:
//
//	runtime.LockOSThread()
//	defer runtime.UnlockOSThread()
//	callIntoC()
//	code := errcode.LastPosix()
//
// Bridging errors returned by the standard library:
//
//	if _, err := os.Open(path); err != nil {
//	    code := errcode.FromError(err)
//	}
//
// Retry decisions:
//
//	if errcode.IsWouldBlock(err) {
//	    // poll and try again
//	}
//
// # Formatting Without Allocation
//
// Category.Message writes into a MessageBuf supplied by the caller and returns
// a slice aliasing it:
//
//	var buf errcode.MessageBuf
//	msg := code.Message(&buf)
//
// When a message cannot be produced the category substitutes UnknownError or
// FailErrorFormat; rendering never fails.
//
// StrBuf is a fixed-capacity accumulator for categories that build messages
// piece by piece. Appends that overflow are cut at a code point boundary and
// seal the buffer.
//
// # Custom Categories
//
//	var HTTPCategory = &errcode.Funcs{
//	    Label: "HTTPError",
//	    MessageFunc: func(code errcode.Int, buf *errcode.MessageBuf) []byte {
//	        return errcode.WriteMessage(buf, http.StatusText(int(code)))
//	    },
//	    WouldBlockFunc: func(code errcode.Int) bool {
//	        return code == http.StatusTooManyRequests
//	    },
//	}
//
//	code := errcode.New(404, HTTPCategory)
//
// Categories are compared by identity, so declare each one once.
//
// # Equality and Hashing
//
// Equal delegates to the category of the left operand. The built-in
// categories require the same category and the same raw code. Hash covers the
// category name and the raw code, so codes from different categories usually
// hash apart even when their raw codes match.
//
// # Thread Rules
//
// The last-error slot belongs to the OS thread. Lock the goroutine to its
// thread around the failing call and the LastPosix or LastSystem read. Without
// cgo there is no C errno to read and LastPosix reports 0.
package errcode
