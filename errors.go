package asynchandler

import (
	"errors"
	"fmt"
)

// ErrUnhandled marks a failure that reached the caller because no error callback was provided.
var ErrUnhandled = errors.New("asynchandler: unhandled failure")

// guidance is appended to the text of a propagated failure.
const guidance = ".\nProvide an error callback to asynchandler.Handle to handle this error."

// UnhandledError is returned by a Wrapped function built without an error callback.
// Only the text of the original failure is kept; its type and chain are not.
type UnhandledError struct {
	msg string
}

func newUnhandledError(err error) *UnhandledError {
	return &UnhandledError{msg: fmt.Sprint(err) + guidance}
}

// Error implements the error interface.
func (e *UnhandledError) Error() string {
	return e.msg
}

// Is reports whether target is ErrUnhandled.
func (e *UnhandledError) Is(target error) bool {
	return target == ErrUnhandled
}

// toError converts a recovered panic value to an error.
func toError(v any) error {
	switch e := v.(type) {
	case error:
		return e
	case string:
		return errors.New(e)
	default:
		return fmt.Errorf("panic: %v", e)
	}
}
