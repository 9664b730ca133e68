package harness

import (
	"errors"
	"fmt"
)

// UnitError reports a work unit that failed during a run.
//
// Execution stops at the first failure; Slot identifies the position in the
// running order that was being executed.
type UnitError struct {
	Unit string
	Slot int
	Err  error
}

// Error implements the error interface.
func (e *UnitError) Error() string {
	return fmt.Sprintf("unit %s failed at slot %d: %v", e.Unit, e.Slot, e.Err)
}

// Unwrap returns the unit's own error.
func (e *UnitError) Unwrap() error {
	return e.Err
}

// IsUnitError returns true if err is or wraps a *UnitError.
func IsUnitError(err error) bool {
	var ue *UnitError
	return errors.As(err, &ue)
}

// ErrInvalidUnit is returned by New for an unusable registry.
var ErrInvalidUnit = errors.New("invalid work unit")
