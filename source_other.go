//go:build !unix && !windows

package errcode

// Targets without an operating system errno (js, wasip1, plan9) have no
// last-error slot, no message table and no would-block codes.
var (
	posixWouldBlock  []Int
	systemWouldBlock []Int
)

func nativePosixSource() Source  { return noSource{} }
func nativeSystemSource() Source { return noSource{} }

type noSource struct{}

func (noSource) LastError() Int { return 0 }

func (noSource) FormatMessage(Int, *MessageBuf) (int, error) {
	return 0, ErrUnavailable
}

func osCode(error) (ErrorCode, bool) {
	return ErrorCode{}, false
}
