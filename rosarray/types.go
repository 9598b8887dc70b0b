package rosarray

import (
	"github.com/robert-malhotra/go-rosarray/internal/dtype"
	"github.com/robert-malhotra/go-rosarray/internal/pixel"
)

// Type is a fixed-width numeric element type.
type Type = dtype.Type

// Element types. Their values equal the PointField datatype codes.
const (
	Int8    = dtype.Int8
	Uint8   = dtype.Uint8
	Int16   = dtype.Int16
	Uint16  = dtype.Uint16
	Int32   = dtype.Int32
	Uint32  = dtype.Uint32
	Float32 = dtype.Float32
	Float64 = dtype.Float64
)

// Number is the set of Go types element values can be read into.
type Number = dtype.Number

// Member is one named entry of a Layout.
type Member = dtype.Member

// Layout is an ordered record schema with byte-exact offsets.
type Layout = dtype.Layout

// NewLayout builds a layout from members in record order.
func NewLayout(members ...Member) (*Layout, error) {
	return dtype.NewLayout(members...)
}

// MustLayout is like NewLayout but panics on error.
func MustLayout(members ...Member) *Layout {
	return dtype.MustLayout(members...)
}

// Scalar returns a scalar layout member.
func Scalar(name string, t Type) Member {
	return dtype.Scalar(name, t)
}

// Vector returns a layout member holding n elements of t.
func Vector(name string, t Type, n int) Member {
	return dtype.Vector(name, t, n)
}

// Encodings returns the supported image encodings in sorted order.
func Encodings() []string {
	return pixel.Names()
}
