package a1c

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingInput = errors.New("missing input value")
	ErrCalculation  = errors.New("calculation failed")
)

// MissingInputError is returned when no value is available to derive Scale from.
type MissingInputError struct {
	Scale    Scale
	Expected []Scale
}

func (e *MissingInputError) Error() string {
	names := make([]string, len(e.Expected))
	for i, s := range e.Expected {
		names[i] = string(s)
	}
	return fmt.Sprintf("unable to calculate %s, expected input value(s): %s", e.Scale, strings.Join(names, ", "))
}

func (e *MissingInputError) Unwrap() error {
	return ErrMissingInput
}

// CalculationError is returned when a value, or the DCCT value it depends on,
// could not be computed.
type CalculationError struct {
	Scale Scale
	Err   error
}

func (e *CalculationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unable to calculate intermediate value for %s: %v", e.Scale, e.Err)
	}
	return fmt.Sprintf("unable to calculate value for %s", e.Scale)
}

func (e *CalculationError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrCalculation, e.Err}
	}
	return []error{ErrCalculation}
}
