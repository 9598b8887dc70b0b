package layout

import (
	"fmt"

	"github.com/robert-malhotra/go-rosarray/internal/dtype"
)

// Rows is the geometry of a buffer of Height rows holding RowBytes bytes
// each, with consecutive rows Step bytes apart.
type Rows struct {
	Height   int
	RowBytes int
	Step     int
}

// Size returns the minimum number of bytes a buffer with this geometry needs.
// The last row does not have to carry its padding.
func (r Rows) Size() int {
	if r.Height == 0 {
		return 0
	}
	return (r.Height-1)*r.Step + r.RowBytes
}

// Padded returns true if rows are followed by padding bytes.
func (r Rows) Padded() bool {
	return r.Step > r.RowBytes
}

// Validate checks the geometry against a buffer of have bytes.
func (r Rows) Validate(have int) error {
	if r.Height < 0 || r.RowBytes < 0 {
		return &dtype.LayoutError{Reason: fmt.Sprintf("negative geometry %dx%d", r.Height, r.RowBytes)}
	}
	if r.Step < r.RowBytes {
		return &dtype.LayoutError{Reason: fmt.Sprintf("row step %d is smaller than the %d bytes in a row", r.Step, r.RowBytes)}
	}
	if need := r.Size(); need > have {
		return &dtype.LayoutError{Reason: fmt.Sprintf("data holds %d bytes, %d rows of step %d need %d", have, r.Height, r.Step, need)}
	}
	return nil
}

// Unpad returns a packed copy of the rows in data, dropping row padding.
func (r Rows) Unpad(data []byte) ([]byte, error) {
	if err := r.Validate(len(data)); err != nil {
		return nil, err
	}
	if r.Height == 0 || r.RowBytes == 0 {
		return []byte{}, nil
	}
	out := make([]byte, r.Height*r.RowBytes)
	if !r.Padded() {
		copy(out, data)
		return out, nil
	}
	for i := 0; i < r.Height; i++ {
		copy(out[i*r.RowBytes:(i+1)*r.RowBytes], data[i*r.Step:i*r.Step+r.RowBytes])
	}
	return out, nil
}

// Pad spreads packed rows out to Step bytes apart, zero filling the padding.
func (r Rows) Pad(packed []byte) ([]byte, error) {
	if r.Step < r.RowBytes {
		return nil, &dtype.LayoutError{Reason: fmt.Sprintf("row step %d is smaller than the %d bytes in a row", r.Step, r.RowBytes)}
	}
	if len(packed) != r.Height*r.RowBytes {
		return nil, &dtype.LayoutError{Reason: fmt.Sprintf("packed data holds %d bytes, want %d", len(packed), r.Height*r.RowBytes)}
	}

	out := make([]byte, r.Height*r.Step)
	for i := 0; i < r.Height; i++ {
		copy(out[i*r.Step:i*r.Step+r.RowBytes], packed[i*r.RowBytes:(i+1)*r.RowBytes])
	}
	return out, nil
}
