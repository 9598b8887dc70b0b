package rosarray

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/robert-malhotra/go-rosarray/internal/dtype"
)

// RecordArray is an array of fixed-size records described by a Layout. Its
// bytes are laid out exactly like a PointCloud2 payload without row padding.
type RecordArray struct {
	layout *Layout
	shape  []int
	data   []byte
	order  binary.ByteOrder
}

// NewRecordArray returns a zero-filled little-endian record array.
func NewRecordArray(l *Layout, shape ...int) (*RecordArray, error) {
	n, err := checkRecordShape(l, shape)
	if err != nil {
		return nil, err
	}
	return &RecordArray{
		layout: l,
		shape:  slices.Clone(shape),
		data:   make([]byte, n*l.ItemSize()),
		order:  binary.LittleEndian,
	}, nil
}

// RecordArrayFromBytes builds a record array over a copy of data.
func RecordArrayFromBytes(l *Layout, data []byte, order binary.ByteOrder, shape ...int) (*RecordArray, error) {
	n, err := checkRecordShape(l, shape)
	if err != nil {
		return nil, err
	}
	if want := n * l.ItemSize(); len(data) != want {
		return nil, &LayoutError{Reason: fmt.Sprintf("%d records of %d bytes need %d bytes, got %d", n, l.ItemSize(), want, len(data))}
	}
	if order == nil {
		order = binary.LittleEndian
	}
	return &RecordArray{layout: l, shape: slices.Clone(shape), data: bytes.Clone(data), order: order}, nil
}

func checkRecordShape(l *Layout, shape []int) (int, error) {
	if l == nil {
		return 0, &LayoutError{Reason: "nil layout"}
	}
	if len(shape) == 0 {
		return 0, &LayoutError{Reason: "record array needs at least one dimension"}
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

// Layout returns the record layout.
func (a *RecordArray) Layout() *Layout {
	return a.layout
}

// Shape returns the dimensions of the record grid.
func (a *RecordArray) Shape() []int {
	return slices.Clone(a.shape)
}

// Ndim returns the number of record grid dimensions.
func (a *RecordArray) Ndim() int {
	return len(a.shape)
}

// Len returns the total number of records.
func (a *RecordArray) Len() int {
	n := 1
	for _, d := range a.shape {
		n *= d
	}
	return n
}

// Bytes returns the raw record bytes. The slice aliases the array.
func (a *RecordArray) Bytes() []byte {
	return a.data
}

// ByteOrder returns the byte order of the record bytes.
func (a *RecordArray) ByteOrder() binary.ByteOrder {
	return a.order
}

// Record returns the bytes of the i-th record in row-major order.
func (a *RecordArray) Record(i int) []byte {
	size := a.layout.ItemSize()
	return a.data[i*size : (i+1)*size]
}

func (a *RecordArray) lookup(name string) (Member, int, error) {
	m, off, ok := a.layout.Lookup(name)
	if !ok {
		return Member{}, 0, &LayoutError{Field: name, Reason: "no such field"}
	}
	return m, off, nil
}

// Column returns the values of a field for every record, flattened: a field
// of shape (k,) yields k consecutive values per record. T must be exactly
// the field's element type.
func Column[T Number](a *RecordArray, name string) ([]T, error) {
	m, off, err := a.lookup(name)
	if err != nil {
		return nil, err
	}
	if dtype.Of[T]() != m.Type {
		return nil, &TypeMismatchError{Want: fmt.Sprintf("field %q of %v", name, m.Type), Got: fmt.Sprintf("%T", *new(T))}
	}
	return dtype.Gather[T](a.data, a.order, m.Type, a.Len(), a.layout.ItemSize(), off, m.Count())
}

// SetColumn overwrites a field for every record. values is laid out as
// Column returns it. T must be exactly the field's element type.
func SetColumn[T Number](a *RecordArray, name string, values []T) error {
	m, off, err := a.lookup(name)
	if err != nil {
		return err
	}
	if dtype.Of[T]() != m.Type {
		return &TypeMismatchError{Want: fmt.Sprintf("field %q of %v", name, m.Type), Got: fmt.Sprintf("%T", *new(T))}
	}
	if want := a.Len() * m.Count(); len(values) != want {
		return &LayoutError{Field: name, Offset: off, Reason: fmt.Sprintf("expected %d values, got %d", want, len(values))}
	}
	return dtype.Scatter(a.data, a.order, m.Type, a.Len(), a.layout.ItemSize(), off, m.Count(), values)
}

// ColumnFloat64 returns a field converted to float64, whatever its type.
func ColumnFloat64(a *RecordArray, name string) ([]float64, error) {
	m, off, err := a.lookup(name)
	if err != nil {
		return nil, err
	}
	return dtype.Gather[float64](a.data, a.order, m.Type, a.Len(), a.layout.ItemSize(), off, m.Count())
}

// Equal reports whether both arrays have equal layouts, the same shape and
// the same field values. Padding and byte order are not compared.
func (a *RecordArray) Equal(b *RecordArray) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !a.layout.Equal(b.layout) || !slices.Equal(a.shape, b.shape) {
		return false
	}
	for _, m := range a.layout.Fields() {
		if !bytes.Equal(a.fieldBytes(m.Name), b.fieldBytes(m.Name)) {
			return false
		}
	}
	return true
}

// fieldBytes returns the named field of every record, packed and in
// little-endian order.
func (a *RecordArray) fieldBytes(name string) []byte {
	m, off, _ := a.layout.Lookup(name)
	size, stride := m.Size(), a.layout.ItemSize()
	out := make([]byte, 0, a.Len()*size)
	for r := 0; r < a.Len(); r++ {
		out = append(out, a.data[r*stride+off:r*stride+off+size]...)
	}
	return littleEndian(out, a.order, m.Type.Size())
}

// project returns a new array with layout l, copying every member of l that
// also exists in a. Other members are zero.
func (a *RecordArray) project(l *Layout) *RecordArray {
	out := &RecordArray{
		layout: l,
		shape:  slices.Clone(a.shape),
		data:   make([]byte, a.Len()*l.ItemSize()),
		order:  a.order,
	}

	src := make(map[string]int, a.layout.NumMembers())
	for i := 0; i < a.layout.NumMembers(); i++ {
		m, off := a.layout.Member(i)
		src[m.Name] = off
	}

	for i := 0; i < l.NumMembers(); i++ {
		m, dstOff := l.Member(i)
		srcOff, ok := src[m.Name]
		if !ok {
			continue
		}
		size := m.Size()
		for r := 0; r < a.Len(); r++ {
			copy(out.data[r*l.ItemSize()+dstOff:][:size], a.data[r*a.layout.ItemSize()+srcOff:][:size])
		}
	}
	return out
}

// String returns a short description such as
// "RecordArray([('x', '<f4'), ('y', '<f4')], [100])".
func (a *RecordArray) String() string {
	return fmt.Sprintf("RecordArray(%v, %v)", a.layout, a.shape)
}
