package domain

import "errors"

// ErrValidation marks malformed or missing input. Handlers translate it to 400.
var ErrValidation = errors.New("validation error")

// DispatchError reports a failed dispatch after the outcome has been
// persisted. ClientFault distinguishes provider rejections (bad input,
// surfaced as 400) from transport and internal failures (surfaced as 500).
type DispatchError struct {
	ClientFault bool
	Message     string
	Cause       error
}

func (e *DispatchError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func (e *DispatchError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}
