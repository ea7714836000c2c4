//go:build cgo && (unix || windows)

package errcode

/*
#include <errno.h>

static int errcode_errno(void) { return errno; }
*/
import "C"

// lastErrno reads the C library errno of the current OS thread.
func lastErrno() Int {
	return Int(C.errcode_errno())
}
