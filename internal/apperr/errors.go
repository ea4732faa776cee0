package apperr

import "errors"

var (
	// ErrChecksFailed signals that a run accumulated one or more hard
	// failures. The CLI maps it to exit code 1 without an extra error log.
	ErrChecksFailed = errors.New("checks failed")
)
