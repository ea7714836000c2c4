//go:build !cgo || !(unix || windows)

package errcode

// lastErrno reports 0: without cgo there is no C library errno to read.
func lastErrno() Int {
	return 0
}
