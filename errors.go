package promise

import (
	"errors"
	"fmt"
)

// ErrSelfResolution is the rejection reason of a promise whose resolution
// value turned out to be the promise itself.
var ErrSelfResolution = errors.New("promise cannot be resolved with itself")

// PanicError wraps a recovered panic payload that is not itself an error, so
// it can travel a rejection path without losing the original value.
type PanicError struct {
	v any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in promise chain: %v", e.v)
}

// Value returns the original panic payload.
func (e *PanicError) Value() any {
	return e.v
}

// recoveredError converts a recovered panic payload into a rejection reason,
// keeping error payloads intact.
func recoveredError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}

	return &PanicError{v: v}
}
