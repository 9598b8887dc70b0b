package binary

import (
	"encoding/binary"
	"io"
	"math"
)

// Writer writes fixed-width values into a preallocated byte slice.
type Writer struct {
	buf   []byte
	order binary.ByteOrder
	pos   int
}

// NewWriter creates a writer over buf. The writer never grows buf.
func NewWriter(buf []byte, cfg Config) *Writer {
	order := cfg.ByteOrder
	if order == nil {
		order = binary.LittleEndian
	}
	return &Writer{buf: buf, order: order}
}

// At returns a new writer positioned at the given offset.
// The new writer shares the underlying buffer but has independent position.
func (w *Writer) At(offset int) *Writer {
	return &Writer{buf: w.buf, order: w.order, pos: offset}
}

// reserve returns the next n bytes of the buffer and advances past them.
func (w *Writer) reserve(n int) ([]byte, error) {
	if w.pos < 0 || w.pos+n > len(w.buf) {
		return nil, io.ErrShortBuffer
	}
	b := w.buf[w.pos : w.pos+n]
	w.pos += n
	return b, nil
}

// WriteUint8 writes an unsigned 8-bit integer.
func (w *Writer) WriteUint8(v uint8) error {
	b, err := w.reserve(1)
	if err != nil {
		return err
	}
	b[0] = v
	return nil
}

// WriteUint16 writes an unsigned 16-bit integer.
func (w *Writer) WriteUint16(v uint16) error {
	b, err := w.reserve(2)
	if err != nil {
		return err
	}
	w.order.PutUint16(b, v)
	return nil
}

// WriteUint32 writes an unsigned 32-bit integer.
func (w *Writer) WriteUint32(v uint32) error {
	b, err := w.reserve(4)
	if err != nil {
		return err
	}
	w.order.PutUint32(b, v)
	return nil
}

// WriteUint64 writes an unsigned 64-bit integer.
func (w *Writer) WriteUint64(v uint64) error {
	b, err := w.reserve(8)
	if err != nil {
		return err
	}
	w.order.PutUint64(b, v)
	return nil
}

// WriteFloat32 writes an IEEE 754 single precision value.
func (w *Writer) WriteFloat32(v float32) error {
	return w.WriteUint32(math.Float32bits(v))
}

// WriteFloat64 writes an IEEE 754 double precision value.
func (w *Writer) WriteFloat64(v float64) error {
	return w.WriteUint64(math.Float64bits(v))
}

// Swap reverses the byte order of every size-byte element of data in place.
func Swap(data []byte, size int) {
	if size <= 1 {
		return
	}
	for off := 0; off+size <= len(data); off += size {
		elem := data[off : off+size]
		for i, j := 0, size-1; i < j; i, j = i+1, j-1 {
			elem[i], elem[j] = elem[j], elem[i]
		}
	}
}
