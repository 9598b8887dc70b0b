package rosarray

import (
	"errors"

	"github.com/robert-malhotra/go-rosarray/internal/dtype"
	"github.com/robert-malhotra/go-rosarray/internal/pixel"
)

// Common errors
var (
	ErrLayout              = dtype.ErrLayout
	ErrTypeMismatch        = dtype.ErrTypeMismatch
	ErrUnsupportedEncoding = pixel.ErrUnsupportedEncoding
	ErrNotSupported        = errors.New("conversion not supported")
)

// LayoutError reports overlapping fields, a stride mismatch or another
// inconsistency between descriptors, layouts and buffers.
type LayoutError = dtype.LayoutError

// TypeMismatchError reports a buffer whose element type or shape disagrees
// with the declared encoding or requested Go type.
type TypeMismatchError = dtype.TypeMismatchError
