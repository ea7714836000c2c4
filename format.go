package errcode

import (
	"fmt"
	"io"
)

// Format implements fmt.Formatter.
//
//	%v, %s  display form: PosixError(2): No such file or directory
//	%#v     debug form without the message: PosixError(2)
//	%d      raw code, honoring width and flags
//	%q      quoted display form
func (e ErrorCode) Format(s fmt.State, verb rune) {
	w := stateWriter{s}
	switch verb {
	case 'v':
		if s.Flag('#') {
			e.writeDebug(w)
			return
		}
		e.writeDisplay(w)
	case 's':
		e.writeDisplay(w)
	case 'd':
		_, _ = fmt.Fprintf(s, fmt.FormatString(s, verb), e.code)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.String())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(errcode.ErrorCode=", verb)
		e.writeDebug(w)
		_, _ = io.WriteString(s, ")")
	}
}

// stateWriter adds WriteString to a fmt.State.
type stateWriter struct {
	fmt.State
}

func (w stateWriter) WriteString(s string) (int, error) {
	return io.WriteString(w.State, s)
}
