// Package pixel maps sensor_msgs/Image encodings to array element types and
// channel counts.
package pixel

import (
	"errors"
	"fmt"
	"slices"

	"github.com/robert-malhotra/go-rosarray/internal/dtype"
)

// ErrUnsupportedEncoding is returned for an encoding tag outside the table.
var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// Encoding is the array interpretation of one image encoding.
type Encoding struct {
	Name     string
	Type     dtype.Type
	Channels int
}

var encodings = map[string]Encoding{}

func register(name string, t dtype.Type, channels int) {
	encodings[name] = Encoding{Name: name, Type: t, Channels: channels}
}

func init() {
	register("rgb8", dtype.Uint8, 3)
	register("rgba8", dtype.Uint8, 4)
	register("rgb16", dtype.Uint16, 3)
	register("rgba16", dtype.Uint16, 4)
	register("bgr8", dtype.Uint8, 3)
	register("bgra8", dtype.Uint8, 4)
	register("bgr16", dtype.Uint16, 3)
	register("bgra16", dtype.Uint16, 4)
	register("mono8", dtype.Uint8, 1)
	register("mono16", dtype.Uint16, 1)
	register("yuv422", dtype.Uint8, 2)

	// Bayer mosaics carry one sample per pixel.
	for _, pattern := range []string{"rggb", "bggr", "gbrg", "grbg"} {
		register("bayer_"+pattern+"8", dtype.Uint8, 1)
		register("bayer_"+pattern+"16", dtype.Uint16, 1)
	}

	// OpenCV matrix types, e.g. "32FC3".
	depths := []struct {
		prefix string
		t      dtype.Type
	}{
		{"8U", dtype.Uint8},
		{"8S", dtype.Int8},
		{"16U", dtype.Uint16},
		{"16S", dtype.Int16},
		{"32S", dtype.Int32},
		{"32F", dtype.Float32},
		{"64F", dtype.Float64},
	}
	for _, d := range depths {
		for c := 1; c <= 4; c++ {
			register(fmt.Sprintf("%sC%d", d.prefix, c), d.t, c)
		}
	}
}

// Lookup returns the encoding with the given tag.
func Lookup(name string) (Encoding, error) {
	enc, ok := encodings[name]
	if !ok {
		return Encoding{}, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
	}
	return enc, nil
}

// Names returns every supported tag in sorted order.
func Names() []string {
	names := make([]string, 0, len(encodings))
	for name := range encodings {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// PixelSize returns the number of bytes in one pixel.
func (e Encoding) PixelSize() int {
	return e.Channels * e.Type.Size()
}

// RowBytes returns the unpadded size of one image row.
func (e Encoding) RowBytes(width int) int {
	return width * e.PixelSize()
}

// Shape returns the array shape of a height x width image: two dimensions
// for single channel encodings, three (channel last) otherwise.
func (e Encoding) Shape(height, width int) []int {
	if e.Channels == 1 {
		return []int{height, width}
	}
	return []int{height, width, e.Channels}
}

// Check validates that an array of element type t and the given shape can be
// carried with this encoding.
func (e Encoding) Check(t dtype.Type, shape []int) error {
	if t != e.Type {
		return &dtype.TypeMismatchError{
			Encoding: e.Name,
			Want:     "element type " + e.Type.String(),
			Got:      t.String(),
		}
	}

	switch {
	case len(shape) == 2 && e.Channels == 1:
		return nil
	case len(shape) == 3 && shape[2] == e.Channels:
		return nil
	case len(shape) == 2:
		return &dtype.TypeMismatchError{
			Encoding: e.Name,
			Want:     fmt.Sprintf("%d channels", e.Channels),
			Got:      fmt.Sprintf("2-D array %v with 1 channel", shape),
		}
	case len(shape) == 3:
		return &dtype.TypeMismatchError{
			Encoding: e.Name,
			Want:     fmt.Sprintf("%d channels", e.Channels),
			Got:      fmt.Sprintf("%d channels", shape[2]),
		}
	default:
		return &dtype.TypeMismatchError{
			Encoding: e.Name,
			Want:     "a 2-D or 3-D array",
			Got:      fmt.Sprintf("shape %v", shape),
		}
	}
}
