package asynchandler

// Outcome is the terminal state of a single invocation of a Wrapped function.
type Outcome uint8

const (
	// Pending is the state while the wrapped function is running.
	Pending Outcome = iota
	// Succeeded means the wrapped function returned without error.
	Succeeded
	// FailedHandled means the failure was passed to the error callback and absorbed.
	FailedHandled
	// FailedPropagated means the failure was returned to the caller as an UnhandledError.
	FailedPropagated
)

// String returns the snake_case name of the outcome, used as a log and metric label.
func (o Outcome) String() string {
	switch o {
	case Succeeded:
		return "succeeded"
	case FailedHandled:
		return "failed_handled"
	case FailedPropagated:
		return "failed_propagated"
	default:
		return "pending"
	}
}

// Failed reports whether the outcome is one of the failure states.
func (o Outcome) Failed() bool {
	return o == FailedHandled || o == FailedPropagated
}
