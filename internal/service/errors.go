package service

import (
	"errors"
	"fmt"
	"math"
)

// Error classes returned by the calculators. Handlers map them to statuses
// with errors.Is.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotComputable = errors.New("not computable")
)

// TooManyPointsError rejects a table request above the configured cap.
type TooManyPointsError struct {
	Count int
	Max   int
}

func (e *TooManyPointsError) Error() string {
	return fmt.Sprintf("too many data points (%d); the maximum is %d, increase the step or reduce the total time", e.Count, e.Max)
}

func (e *TooManyPointsError) Unwrap() error { return ErrInvalidInput }

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func notComputable(reason string) error {
	return fmt.Errorf("%w: %s", ErrNotComputable, reason)
}

// field names one request value for validation messages.
type field struct {
	name  string
	value float64
}

// requireFinite rejects NaN and ±Inf, which can only arrive from text input.
// Fields are checked in order, so the first bad one is the one reported.
func requireFinite(fields ...field) error {
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return invalidf("%s must be a finite number", f.name)
		}
	}
	return nil
}

// finiteResult fails when a computed value left the float64 range.
func finiteResult(values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return notComputable("the result overflows the floating-point range; use smaller values")
		}
	}
	return nil
}
