//go:build cgo && unix

package errcode

/*
#include <errno.h>
#include <locale.h>
#include <string.h>

#if defined(__linux__)
static locale_t errcode_c_locale;

static void errcode_init_locale(void) {
	errcode_c_locale = newlocale(LC_ALL_MASK, "C", (locale_t)0);
}

static int errcode_strerror(int code, char *buf, int len) {
	const char *msg;
	int n;

	if (errcode_c_locale != (locale_t)0) {
		msg = strerror_l(code, errcode_c_locale);
	} else {
		msg = strerror(code);
	}
	if (msg == NULL) {
		return 0;
	}
	n = (int)strlen(msg);
	memcpy(buf, msg, n < len ? n : len);
	return n;
}
#else
static void errcode_init_locale(void) {}

// XSI strerror_r: the "C" locale is the default until the program calls
// setlocale, which Go programs do not.
static int errcode_strerror(int code, char *buf, int len) {
	if (strerror_r(code, buf, (size_t)len) == EINVAL) {
		return 0;
	}
	return (int)strnlen(buf, (size_t)len);
}
#endif
*/
import "C"

import (
	"sync"
	"unsafe"
)

var cLocaleOnce sync.Once

// errnoText copies the C library description of code into buf and returns
// its full length, which exceeds len(buf) when the text was cut.
func errnoText(code Int, buf *MessageBuf) (int, error) {
	cLocaleOnce.Do(func() { C.errcode_init_locale() })
	n := C.errcode_strerror(C.int(code), (*C.char)(unsafe.Pointer(&buf[0])), C.int(len(buf)))
	return int(n), nil
}
