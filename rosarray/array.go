package rosarray

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"

	binpkg "github.com/robert-malhotra/go-rosarray/internal/binary"
	"github.com/robert-malhotra/go-rosarray/internal/dtype"
)

// Array is a dense, row-major, homogeneous n-dimensional array. Images are
// held as (height, width) or (height, width, channels) arrays.
type Array struct {
	dtype Type
	shape []int
	data  []byte
	order binary.ByteOrder
}

// NewArray returns a zero-filled little-endian array.
func NewArray(t Type, shape ...int) (*Array, error) {
	n, err := checkShape(t, shape)
	if err != nil {
		return nil, err
	}
	return &Array{
		dtype: t,
		shape: slices.Clone(shape),
		data:  make([]byte, n*t.Size()),
		order: binary.LittleEndian,
	}, nil
}

// FromSlice builds an array of the element type matching T. Without a
// shape the array is one-dimensional.
func FromSlice[T Number](values []T, shape ...int) (*Array, error) {
	t := dtype.Of[T]()
	if !t.Valid() {
		return nil, &TypeMismatchError{Want: "a fixed-width element type", Got: fmt.Sprintf("%T", *new(T))}
	}
	if len(shape) == 0 {
		shape = []int{len(values)}
	}

	a, err := NewArray(t, shape...)
	if err != nil {
		return nil, err
	}
	if n := a.Size(); n != len(values) {
		return nil, &LayoutError{Reason: fmt.Sprintf("shape %v holds %d elements, got %d values", shape, n, len(values))}
	}
	if err := dtype.Scatter(a.data, a.order, t, len(values), t.Size(), 0, 1, values); err != nil {
		return nil, err
	}
	return a, nil
}

// FromBytes builds an array over a copy of data, which holds elements of t in
// the given byte order.
func FromBytes(t Type, data []byte, order binary.ByteOrder, shape ...int) (*Array, error) {
	n, err := checkShape(t, shape)
	if err != nil {
		return nil, err
	}
	if want := n * t.Size(); len(data) != want {
		return nil, &LayoutError{Reason: fmt.Sprintf("shape %v of %v needs %d bytes, got %d", shape, t, want, len(data))}
	}
	if order == nil {
		order = binary.LittleEndian
	}
	return &Array{dtype: t, shape: slices.Clone(shape), data: bytes.Clone(data), order: order}, nil
}

func checkShape(t Type, shape []int) (int, error) {
	if !t.Valid() {
		return 0, &TypeMismatchError{Want: "a fixed-width element type", Got: t.String()}
	}
	if len(shape) == 0 {
		return 0, &LayoutError{Reason: "array needs at least one dimension"}
	}
	n := 1
	for _, d := range shape {
		if d < 0 {
			return 0, &LayoutError{Reason: fmt.Sprintf("negative dimension in shape %v", shape)}
		}
		n *= d
	}
	return n, nil
}

// Values returns the elements in row-major order. T must be exactly the
// array's element type.
func Values[T Number](a *Array) ([]T, error) {
	if got := dtype.Of[T](); got != a.dtype {
		return nil, &TypeMismatchError{Want: a.dtype.String(), Got: fmt.Sprintf("%T", *new(T))}
	}
	return dtype.Gather[T](a.data, a.order, a.dtype, a.Size(), a.dtype.Size(), 0, 1)
}

// Float64s returns the elements converted to float64 in row-major order.
func (a *Array) Float64s() []float64 {
	// Bounds hold by construction.
	out, _ := dtype.Gather[float64](a.data, a.order, a.dtype, a.Size(), a.dtype.Size(), 0, 1)
	return out
}

// Dtype returns the element type.
func (a *Array) Dtype() Type {
	return a.dtype
}

// Shape returns the dimensions of the array.
func (a *Array) Shape() []int {
	return slices.Clone(a.shape)
}

// Ndim returns the number of dimensions.
func (a *Array) Ndim() int {
	return len(a.shape)
}

// Size returns the total number of elements.
func (a *Array) Size() int {
	n := 1
	for _, d := range a.shape {
		n *= d
	}
	return n
}

// Bytes returns the raw element bytes. The slice aliases the array.
func (a *Array) Bytes() []byte {
	return a.data
}

// ByteOrder returns the byte order of the element bytes.
func (a *Array) ByteOrder() binary.ByteOrder {
	return a.order
}

// Equal reports whether both arrays have the same element type, shape and
// element values. Byte order is not compared.
func (a *Array) Equal(b *Array) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.dtype != b.dtype || !slices.Equal(a.shape, b.shape) {
		return false
	}
	return bytes.Equal(littleEndian(a.data, a.order, a.dtype.Size()), littleEndian(b.data, b.order, b.dtype.Size()))
}

// Dense returns a two-dimensional array as a gonum matrix of float64.
func (a *Array) Dense() (*mat.Dense, error) {
	if a.Ndim() != 2 {
		return nil, &TypeMismatchError{Want: "a 2-D array", Got: fmt.Sprintf("shape %v", a.shape)}
	}
	if a.shape[0] == 0 || a.shape[1] == 0 {
		return &mat.Dense{}, nil
	}
	return mat.NewDense(a.shape[0], a.shape[1], a.Float64s()), nil
}

// String returns a short description such as "Array(uint8, [240 360 3])".
func (a *Array) String() string {
	return fmt.Sprintf("Array(%v, %v)", a.dtype, a.shape)
}

// littleEndian returns data with elements of the given size in
// little-endian order, copying only when a swap is needed.
func littleEndian(data []byte, order binary.ByteOrder, size int) []byte {
	if !binpkg.IsBigEndian(order) || size <= 1 {
		return data
	}
	out := bytes.Clone(data)
	binpkg.Swap(out, size)
	return out
}
