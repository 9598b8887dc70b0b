package dtype

import (
	"fmt"
	"reflect"

	"github.com/robert-malhotra/go-rosarray/msg"
)

// Type is a fixed-width numeric element type. Its values equal the
// PointField datatype codes.
type Type uint8

const (
	Invalid Type = 0
	Int8    Type = Type(msg.Int8)
	Uint8   Type = Type(msg.Uint8)
	Int16   Type = Type(msg.Int16)
	Uint16  Type = Type(msg.Uint16)
	Int32   Type = Type(msg.Int32)
	Uint32  Type = Type(msg.Uint32)
	Float32 Type = Type(msg.Float32)
	Float64 Type = Type(msg.Float64)
)

var typeInfo = [...]struct {
	name string
	size int
	kind byte
}{
	Invalid: {"invalid", 0, 0},
	Int8:    {"int8", 1, 'i'},
	Uint8:   {"uint8", 1, 'u'},
	Int16:   {"int16", 2, 'i'},
	Uint16:  {"uint16", 2, 'u'},
	Int32:   {"int32", 4, 'i'},
	Uint32:  {"uint32", 4, 'u'},
	Float32: {"float32", 4, 'f'},
	Float64: {"float64", 8, 'f'},
}

// Valid reports whether t is one of the eight element types.
func (t Type) Valid() bool {
	return t >= Int8 && t <= Float64
}

// Size returns the width of one element in bytes, or 0 for an invalid type.
func (t Type) Size() int {
	if !t.Valid() {
		return 0
	}
	return typeInfo[t].size
}

// String returns the numpy-style name of the type ("float32", "uint8", ...).
func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
	return typeInfo[t].name
}

// Descr returns the numpy array-protocol type string, e.g. "<f4" or "|u1".
func (t Type) Descr(bigEndian bool) string {
	if !t.Valid() {
		return ""
	}
	info := typeInfo[t]
	prefix := byte('<')
	switch {
	case info.size == 1:
		prefix = '|'
	case bigEndian:
		prefix = '>'
	}
	return fmt.Sprintf("%c%c%d", prefix, info.kind, info.size)
}

// IsFloat returns true for float32 and float64.
func (t Type) IsFloat() bool {
	return t == Float32 || t == Float64
}

// FromGoType returns the element type for a fixed-width Go numeric type.
// Named types resolve through their underlying kind.
func FromGoType(rt reflect.Type) (Type, error) {
	switch rt.Kind() {
	case reflect.Int8:
		return Int8, nil
	case reflect.Uint8:
		return Uint8, nil
	case reflect.Int16:
		return Int16, nil
	case reflect.Uint16:
		return Uint16, nil
	case reflect.Int32:
		return Int32, nil
	case reflect.Uint32:
		return Uint32, nil
	case reflect.Float32:
		return Float32, nil
	case reflect.Float64:
		return Float64, nil
	default:
		return Invalid, fmt.Errorf("unsupported Go type: %v", rt)
	}
}
