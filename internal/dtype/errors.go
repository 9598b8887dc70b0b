package dtype

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by a conversion wraps one of these.
var (
	ErrLayout       = errors.New("layout error")
	ErrTypeMismatch = errors.New("type mismatch")
)

// LayoutError reports a descriptor or layout inconsistency.
type LayoutError struct {
	Field  string
	Offset int
	Reason string
}

func (e *LayoutError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("layout error: %s", e.Reason)
	}
	return fmt.Sprintf("layout error: field %q at offset %d: %s", e.Field, e.Offset, e.Reason)
}

func (e *LayoutError) Unwrap() error { return ErrLayout }

// TypeMismatchError reports a buffer whose element type or shape disagrees
// with what was declared for it.
type TypeMismatchError struct {
	Encoding string
	Want     string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	if e.Encoding == "" {
		return fmt.Sprintf("type mismatch: want %s, got %s", e.Want, e.Got)
	}
	return fmt.Sprintf("type mismatch: encoding %q requires %s, got %s", e.Encoding, e.Want, e.Got)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

func layoutErrorf(field string, offset int, format string, args ...interface{}) error {
	return &LayoutError{Field: field, Offset: offset, Reason: fmt.Sprintf(format, args...)}
}
