//go:build cgo && unix

package testutil

/*
#include <errno.h>
#include <string.h>
#include <unistd.h>

static int errcode_fail_close(void) {
	errno = 0;
	close(-1);
	return errno;
}
*/
import "C"

// FailClose closes an invalid descriptor through the C library and returns
// the errno it left on the calling thread. Lock the goroutine to its OS thread
// before calling it if errno is read afterwards.
func FailClose() int32 {
	return int32(C.errcode_fail_close())
}

// Strerror returns the C library's own description of code.
func Strerror(code int32) string {
	return C.GoString(C.strerror(C.int(code)))
}
