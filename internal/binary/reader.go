// Package binary provides byte-order aware access to in-memory element buffers.
package binary

import (
	"encoding/binary"
	"io"
	"math"
)

// Config holds reader and writer configuration.
type Config struct {
	ByteOrder binary.ByteOrder
}

// Order returns the byte order selected by a message's is_bigendian flag.
func Order(bigEndian bool) binary.ByteOrder {
	if bigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// IsBigEndian reports whether order is big-endian. A nil order counts as
// little-endian.
func IsBigEndian(order binary.ByteOrder) bool {
	return order == binary.BigEndian
}

// Reader reads fixed-width values from a byte slice.
type Reader struct {
	buf   []byte
	order binary.ByteOrder
	pos   int
}

// NewReader creates a reader over buf.
func NewReader(buf []byte, cfg Config) *Reader {
	order := cfg.ByteOrder
	if order == nil {
		order = binary.LittleEndian
	}
	return &Reader{buf: buf, order: order}
}

// At returns a new reader positioned at the given offset.
// The new reader shares the underlying buffer but has independent position.
func (r *Reader) At(offset int) *Reader {
	return &Reader{buf: r.buf, order: r.order, pos: offset}
}

// ReadBytes returns the next n bytes without copying.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	if r.pos < 0 || r.pos+n > len(r.buf) {
		return nil, io.ErrUnexpectedEOF
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadUint8 reads an unsigned 8-bit integer.
func (r *Reader) ReadUint8() (uint8, error) {
	buf, err := r.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadUint16 reads an unsigned 16-bit integer.
func (r *Reader) ReadUint16() (uint16, error) {
	buf, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return r.order.Uint16(buf), nil
}

// ReadUint32 reads an unsigned 32-bit integer.
func (r *Reader) ReadUint32() (uint32, error) {
	buf, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(buf), nil
}

// ReadUint64 reads an unsigned 64-bit integer.
func (r *Reader) ReadUint64() (uint64, error) {
	buf, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return r.order.Uint64(buf), nil
}

// ReadFloat32 reads an IEEE 754 single precision value.
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadFloat64 reads an IEEE 754 double precision value.
func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}
