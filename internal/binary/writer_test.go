package binary

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

func TestWriterRoundTrip(t *testing.T) {
	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		t.Run(order.String(), func(t *testing.T) {
			buf := make([]byte, 1+2+4+8+4+8)
			w := NewWriter(buf, Config{ByteOrder: order})

			if err := w.WriteUint8(0xAB); err != nil {
				t.Fatal(err)
			}
			if err := w.WriteUint16(0x1234); err != nil {
				t.Fatal(err)
			}
			if err := w.WriteUint32(0xDEADBEEF); err != nil {
				t.Fatal(err)
			}
			if err := w.WriteUint64(0x0102030405060708); err != nil {
				t.Fatal(err)
			}
			if err := w.WriteFloat32(3.25); err != nil {
				t.Fatal(err)
			}
			if err := w.WriteFloat64(-1e300); err != nil {
				t.Fatal(err)
			}
			if err := w.WriteUint8(0); !errors.Is(err, io.ErrShortBuffer) {
				t.Fatalf("expected a full buffer, got %v", err)
			}

			r := NewReader(buf, Config{ByteOrder: order})
			u8, _ := r.ReadUint8()
			u16, _ := r.ReadUint16()
			u32, _ := r.ReadUint32()
			u64, _ := r.ReadUint64()
			f32, _ := r.ReadFloat32()
			f64, _ := r.ReadFloat64()

			if u8 != 0xAB || u16 != 0x1234 || u32 != 0xDEADBEEF || u64 != 0x0102030405060708 {
				t.Errorf("integer mismatch: %x %x %x %x", u8, u16, u32, u64)
			}
			if f32 != 3.25 || f64 != -1e300 {
				t.Errorf("float mismatch: %v %v", f32, f64)
			}
		})
	}
}

func TestWriterShortBuffer(t *testing.T) {
	w := NewWriter(make([]byte, 3), Config{})
	if err := w.WriteUint32(1); !errors.Is(err, io.ErrShortBuffer) {
		t.Errorf("expected io.ErrShortBuffer, got %v", err)
	}
}

func TestWriterAt(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	w := NewWriter(buf, Config{ByteOrder: binary.BigEndian}).At(1)
	if err := w.WriteUint16(0x0a0b); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf, []byte{1, 0x0a, 0x0b, 4}) {
		t.Errorf("unexpected buffer %v", buf)
	}
}

func TestSwap(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	Swap(data, 4)
	if !bytes.Equal(data, []byte{4, 3, 2, 1, 8, 7, 6, 5}) {
		t.Errorf("unexpected swap result %v", data)
	}
	Swap(data, 1)
	if !bytes.Equal(data, []byte{4, 3, 2, 1, 8, 7, 6, 5}) {
		t.Errorf("size 1 swap must be a no-op, got %v", data)
	}
}
