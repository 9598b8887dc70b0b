package rosarray

import (
	"bytes"
	"fmt"

	binpkg "github.com/robert-malhotra/go-rosarray/internal/binary"
	"github.com/robert-malhotra/go-rosarray/internal/layout"
	"github.com/robert-malhotra/go-rosarray/internal/pixel"
	"github.com/robert-malhotra/go-rosarray/msg"
)

// ImageToArray converts an Image into an array of shape (height, width) for
// single channel encodings and (height, width, channels) otherwise. Bytes
// past width*channels*element size in each step are ignored.
func ImageToArray(im *msg.Image, opts ...Option) (*Array, error) {
	if im == nil {
		return nil, &LayoutError{Reason: "nil image"}
	}
	o := applyOptions(opts)

	enc, err := pixel.Lookup(im.Encoding)
	if err != nil {
		return nil, err
	}

	height, width := int(im.Height), int(im.Width)
	rows := layout.Rows{Height: height, RowBytes: enc.RowBytes(width), Step: int(im.Step)}
	data, err := rows.Unpad(im.Data)
	if err != nil {
		return nil, fmt.Errorf("image %dx%d %s: %w", height, width, enc.Name, err)
	}
	if rows.Padded() {
		o.log.V(1).Info("dropped image row padding", "encoding", enc.Name, "step", rows.Step, "rowBytes", rows.RowBytes)
	}

	return &Array{
		dtype: enc.Type,
		shape: enc.Shape(height, width),
		data:  data,
		order: binpkg.Order(im.IsBigendian),
	}, nil
}

// padRows copies packed rows, spreading them out when o asks for aligned
// rows.
func padRows(packed []byte, height, rowBytes int, o *options) ([]byte, int, error) {
	rows := layout.Rows{Height: height, RowBytes: rowBytes, Step: o.rowStep(rowBytes)}
	if !rows.Padded() {
		return bytes.Clone(packed), rowBytes, nil
	}
	data, err := rows.Pad(packed)
	if err != nil {
		return nil, 0, err
	}
	return data, rows.Step, nil
}

// ArrayToImage converts an array into an Image with the given encoding. The
// array's element type must equal the encoding's, and it must be 2-D for a
// single channel encoding or 3-D with a matching last dimension; anything
// else fails with ErrTypeMismatch.
func ArrayToImage(a *Array, encoding string, opts ...Option) (*msg.Image, error) {
	if a == nil {
		return nil, &LayoutError{Reason: "nil array"}
	}
	o := applyOptions(opts)

	enc, err := pixel.Lookup(encoding)
	if err != nil {
		return nil, err
	}
	if err := enc.Check(a.dtype, a.shape); err != nil {
		return nil, err
	}

	height, width := a.shape[0], a.shape[1]
	data, step, err := padRows(a.data, height, enc.RowBytes(width), o)
	if err != nil {
		return nil, err
	}
	return &msg.Image{
		Header:      o.header,
		Height:      uint32(height),
		Width:       uint32(width),
		Encoding:    enc.Name,
		IsBigendian: binpkg.IsBigEndian(a.order),
		Step:        uint32(step),
		Data:        data,
	}, nil
}
