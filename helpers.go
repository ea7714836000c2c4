package errcode

import (
	"errors"

	platformerrors "github.com/jmgilman/go/errors"
)

// FromError extracts an error code from err.
//
// An ErrorCode anywhere in the chain is returned unchanged. Otherwise an
// operating system errno in the chain (for example inside an *os.PathError)
// is returned under the category that owns such values on this platform:
// Posix on Unix, System on Windows. Errors carrying no code, including nil,
// yield NewPosix(-1).
//
// Example:
//
//	if _, err := os.Open(path); err != nil {
//	    code := errcode.FromError(err)
//	    log.Printf("open failed: %v", code)
//	}
func FromError(err error) ErrorCode {
	var code ErrorCode
	if errors.As(err, &code) {
		return code
	}
	if code, ok := osCode(err); ok {
		return code
	}
	return NewPosix(-1)
}

// IsWouldBlock reports whether err carries a would-block code.
// Returns false if err is nil or carries no code.
func IsWouldBlock(err error) bool {
	if err == nil {
		return false
	}
	return FromError(err).IsWouldBlock()
}

// GetClassification returns the classification of the code carried by err.
// Returns ClassificationPermanent if err is nil or carries no code.
func GetClassification(err error) platformerrors.ErrorClassification {
	if err == nil {
		return platformerrors.ClassificationPermanent
	}
	return FromError(err).Classification()
}

// IsRetryable returns true if err carries a code classified as retryable.
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}
