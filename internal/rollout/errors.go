package rollout

import (
	"errors"
	"fmt"
)

// Domain errors for rollout operations.
var (
	// ErrInvalidState indicates a state vector with NaN or Inf entries.
	ErrInvalidState = errors.New("rollout: invalid state (NaN or Inf detected)")

	// ErrDimensionMismatch indicates mismatched state/control dimensions
	// between the system and its collaborators.
	ErrDimensionMismatch = errors.New("rollout: dimension mismatch")
)

// StepError wraps an error with the node it occurred at.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
