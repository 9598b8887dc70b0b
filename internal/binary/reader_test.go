package binary

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"
)

func TestReaderReadUint8(t *testing.T) {
	r := NewReader([]byte{0x42, 0xFF}, Config{})

	v, err := r.ReadUint8()
	if err != nil {
		t.Fatalf("ReadUint8 failed: %v", err)
	}
	if v != 0x42 {
		t.Errorf("expected 0x42, got 0x%02x", v)
	}

	v, err = r.ReadUint8()
	if err != nil {
		t.Fatalf("ReadUint8 failed: %v", err)
	}
	if v != 0xFF {
		t.Errorf("expected 0xFF, got 0x%02x", v)
	}
}

func TestReaderReadUint16(t *testing.T) {
	// Little-endian: 0x0102 stored as [0x02, 0x01]
	r := NewReader([]byte{0x02, 0x01}, Config{})
	v, err := r.ReadUint16()
	if err != nil {
		t.Fatalf("ReadUint16 failed: %v", err)
	}
	if v != 0x0102 {
		t.Errorf("expected 0x0102, got 0x%04x", v)
	}

	r = NewReader([]byte{0x01, 0x02}, Config{ByteOrder: binary.BigEndian})
	v, err = r.ReadUint16()
	if err != nil {
		t.Fatalf("ReadUint16 failed: %v", err)
	}
	if v != 0x0102 {
		t.Errorf("expected 0x0102, got 0x%04x", v)
	}
}

func TestReaderReadFloats(t *testing.T) {
	buf := make([]byte, 12)
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(1.5))
	binary.LittleEndian.PutUint64(buf[4:], math.Float64bits(-2.25))

	r := NewReader(buf, Config{})
	f32, err := r.ReadFloat32()
	if err != nil {
		t.Fatalf("ReadFloat32 failed: %v", err)
	}
	if f32 != 1.5 {
		t.Errorf("expected 1.5, got %v", f32)
	}
	f64, err := r.ReadFloat64()
	if err != nil {
		t.Fatalf("ReadFloat64 failed: %v", err)
	}
	if f64 != -2.25 {
		t.Errorf("expected -2.25, got %v", f64)
	}
	if _, err := r.ReadUint8(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected reader exhausted, got %v", err)
	}
}

func TestReaderShortBuffer(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02}, Config{})
	if _, err := r.ReadUint32(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected io.ErrUnexpectedEOF, got %v", err)
	}
	if v, err := r.ReadUint16(); err != nil || v != 0x0201 {
		t.Errorf("failed read must not advance, got 0x%04x, %v", v, err)
	}
}

func TestReaderAt(t *testing.T) {
	r := NewReader([]byte{0x00, 0x00, 0x00, 0x07}, Config{})
	sub := r.At(3)
	v, err := sub.ReadUint8()
	if err != nil {
		t.Fatalf("ReadUint8 failed: %v", err)
	}
	if v != 7 {
		t.Errorf("expected 7, got %d", v)
	}
	if v, err := r.ReadUint8(); err != nil || v != 0 {
		t.Errorf("At must not move the parent reader, got %d, %v", v, err)
	}
}

func TestOrder(t *testing.T) {
	if Order(true) != binary.BigEndian {
		t.Error("expected BigEndian")
	}
	if Order(false) != binary.LittleEndian {
		t.Error("expected LittleEndian")
	}
	if IsBigEndian(nil) {
		t.Error("nil order should count as little-endian")
	}
	if !IsBigEndian(binary.BigEndian) {
		t.Error("expected big-endian")
	}
}
