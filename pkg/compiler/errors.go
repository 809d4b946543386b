package compiler

import "fmt"

// InvocationError is returned when the compiler could not be started or
// exited with a non-zero status.
type InvocationError struct {
	Target string
	Dest   string
	// Status is the compiler's exit status or 0 if it never ran.
	Status int
	Err    error
}

var _ error = (*InvocationError)(nil)

func (e *InvocationError) Error() string {
	return fmt.Sprintf("Failed to compile %s => %s: %v", e.Target, e.Dest, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}
