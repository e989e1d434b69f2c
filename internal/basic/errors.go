package basic

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrLineNumberOverflow is returned when the generated program needs a
	// line number above MaxLineNumber.
	ErrLineNumberOverflow = errors.New("line number overflow")
	// ErrInvalidLineNumbering is returned for a negative start line or a
	// step that can not produce increasing line numbers.
	ErrInvalidLineNumbering = errors.New("invalid line numbering")
	// ErrInternalInvariantViolation signals a bug in the program generation,
	// not bad input.
	ErrInternalInvariantViolation = errors.New("internal invariant violation")
)

// LineNumberOverflowError reports the line number the program would need.
// Last is math.MaxInt if that number does not fit an int.
type LineNumberOverflowError struct {
	Last  int
	Lines int
	Max   int
}

func (e *LineNumberOverflowError) Error() string {
	if e.Last == math.MaxInt {
		return fmt.Sprintf("%s: %d lines need a line number too large to represent, maximum is %d",
			ErrLineNumberOverflow, e.Lines, e.Max)
	}
	return fmt.Sprintf("%s: %d lines need line number %d, maximum is %d",
		ErrLineNumberOverflow, e.Lines, e.Last, e.Max)
}

func (e *LineNumberOverflowError) Unwrap() error {
	return ErrLineNumberOverflow
}

// InvalidLineNumberingError reports an unusable start line or step.
type InvalidLineNumberingError struct {
	StartLine int
	LineStep  int
}

func (e *InvalidLineNumberingError) Error() string {
	return fmt.Sprintf("%s: start line %d, step %d", ErrInvalidLineNumbering, e.StartLine, e.LineStep)
}

func (e *InvalidLineNumberingError) Unwrap() error {
	return ErrInvalidLineNumbering
}

// InternalInvariantViolationError describes which invariant did not hold.
type InternalInvariantViolationError struct {
	Detail string
}

func (e *InternalInvariantViolationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInternalInvariantViolation, e.Detail)
}

func (e *InternalInvariantViolationError) Unwrap() error {
	return ErrInternalInvariantViolation
}

func invariantViolation(format string, args ...any) error {
	return &InternalInvariantViolationError{Detail: fmt.Sprintf(format, args...)}
}
