package dtype

// Element Conversion
//
// Gather and Scatter move elements between raw record buffers and Go
// slices. A column of a record array is count consecutive elements at a
// fixed offset inside every stride-byte record; a plain array is the
// degenerate case stride == size, offset == 0, count == 1.
//
// # Fast Path
//
// When the Go type is exactly the element type, the buffer order matches
// the platform and elements are contiguous, the bytes are copied directly
// through unsafe.Slice. Otherwise each element is decoded through a
// binary.Reader and converted to the destination type.

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"unsafe"

	"golang.org/x/exp/constraints"

	binpkg "github.com/robert-malhotra/go-rosarray/internal/binary"
)

// Number is the set of Go types element values can be read into.
type Number interface {
	constraints.Integer | constraints.Float
}

var nativeLittleEndian = func() bool {
	x := uint16(1)
	return *(*byte)(unsafe.Pointer(&x)) == 1
}()

// Of returns the element type stored by T, or Invalid for the
// platform-sized int, uint and uintptr and for 64-bit integers.
func Of[T Number]() Type {
	t, err := FromGoType(reflect.TypeFor[T]())
	if err != nil {
		return Invalid
	}
	return t
}

// Get reads one element of type t and converts it to T.
func Get[T Number](r *binpkg.Reader, t Type) (T, error) {
	switch t {
	case Int8:
		v, err := r.ReadUint8()
		return T(int8(v)), err
	case Uint8:
		v, err := r.ReadUint8()
		return T(v), err
	case Int16:
		v, err := r.ReadUint16()
		return T(int16(v)), err
	case Uint16:
		v, err := r.ReadUint16()
		return T(v), err
	case Int32:
		v, err := r.ReadUint32()
		return T(int32(v)), err
	case Uint32:
		v, err := r.ReadUint32()
		return T(v), err
	case Float32:
		v, err := r.ReadFloat32()
		return T(v), err
	case Float64:
		v, err := r.ReadFloat64()
		return T(v), err
	default:
		return 0, fmt.Errorf("unsupported element type: %v", t)
	}
}

// Put converts v to type t and writes it.
func Put[T Number](w *binpkg.Writer, t Type, v T) error {
	switch t {
	case Int8:
		return w.WriteUint8(uint8(int8(v)))
	case Uint8:
		return w.WriteUint8(uint8(v))
	case Int16:
		return w.WriteUint16(uint16(int16(v)))
	case Uint16:
		return w.WriteUint16(uint16(v))
	case Int32:
		return w.WriteUint32(uint32(int32(v)))
	case Uint32:
		return w.WriteUint32(uint32(v))
	case Float32:
		return w.WriteFloat32(float32(v))
	case Float64:
		return w.WriteFloat64(float64(v))
	default:
		return fmt.Errorf("unsupported element type: %v", t)
	}
}

// Gather reads count elements of type t at offset inside each of n records
// of stride bytes and returns them flattened in record order.
func Gather[T Number](data []byte, order binary.ByteOrder, t Type, n, stride, offset, count int) ([]T, error) {
	size := t.Size()
	if size == 0 {
		return nil, fmt.Errorf("unsupported element type: %v", t)
	}
	if err := checkBounds(len(data), n, stride, offset, count*size); err != nil {
		return nil, err
	}

	out := make([]T, n*count)
	if len(out) == 0 {
		return out, nil
	}

	if canDirectCopy[T](t, order) && stride == count*size && offset == 0 {
		copy(unsafe.Slice((*byte)(unsafe.Pointer(&out[0])), len(out)*size), data)
		return out, nil
	}

	r := binpkg.NewReader(data, binpkg.Config{ByteOrder: order})
	for i := 0; i < n; i++ {
		rr := r.At(i*stride + offset)
		for j := 0; j < count; j++ {
			v, err := Get[T](rr, t)
			if err != nil {
				return nil, err
			}
			out[i*count+j] = v
		}
	}
	return out, nil
}

// Scatter writes values, converted to type t, into count elements at offset
// inside each of n records of stride bytes. len(values) must be n*count.
func Scatter[T Number](data []byte, order binary.ByteOrder, t Type, n, stride, offset, count int, values []T) error {
	size := t.Size()
	if size == 0 {
		return fmt.Errorf("unsupported element type: %v", t)
	}
	if len(values) != n*count {
		return fmt.Errorf("expected %d values, got %d", n*count, len(values))
	}
	if err := checkBounds(len(data), n, stride, offset, count*size); err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}

	if canDirectCopy[T](t, order) && stride == count*size && offset == 0 {
		copy(data, unsafe.Slice((*byte)(unsafe.Pointer(&values[0])), len(values)*size))
		return nil
	}

	w := binpkg.NewWriter(data, binpkg.Config{ByteOrder: order})
	for i := 0; i < n; i++ {
		ww := w.At(i*stride + offset)
		for j := 0; j < count; j++ {
			if err := Put(ww, t, values[i*count+j]); err != nil {
				return err
			}
		}
	}
	return nil
}

// canDirectCopy checks if we can do a direct memory copy.
func canDirectCopy[T Number](t Type, order binary.ByteOrder) bool {
	if Of[T]() != t {
		return false
	}
	if t.Size() == 1 {
		return true
	}
	return binpkg.IsBigEndian(order) != nativeLittleEndian
}

func checkBounds(have, n, stride, offset, width int) error {
	if n == 0 {
		return nil
	}
	if offset < 0 || offset+width > stride {
		return fmt.Errorf("element span %d+%d exceeds record stride %d", offset, width, stride)
	}
	if need := (n-1)*stride + offset + width; need > have {
		return fmt.Errorf("not enough data: need %d bytes, have %d", need, have)
	}
	return nil
}
