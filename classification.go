package errcode

import platformerrors "github.com/jmgilman/go/errors"

// Classification derives the retry classification of e from its category's
// would-block predicate: would-block codes are retryable, every other code is
// permanent.
func (e ErrorCode) Classification() platformerrors.ErrorClassification {
	if e.IsWouldBlock() {
		return platformerrors.ClassificationRetryable
	}
	return platformerrors.ClassificationPermanent
}
