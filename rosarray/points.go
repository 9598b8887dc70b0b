package rosarray

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// XYZ returns the x, y and z fields of a point array as an N x 3 matrix.
// When removeNaNs is set, points with a non-finite coordinate are dropped.
// An array with no surviving points yields an empty matrix.
func XYZ(a *RecordArray, removeNaNs bool) (*mat.Dense, error) {
	var cols [3][]float64
	for i, name := range []string{"x", "y", "z"} {
		m, _, err := a.lookup(name)
		if err != nil {
			return nil, err
		}
		if !m.IsScalar() {
			return nil, &LayoutError{Field: name, Reason: fmt.Sprintf("coordinate must be scalar, has shape %v", m.Shape)}
		}
		if cols[i], err = ColumnFloat64(a, name); err != nil {
			return nil, err
		}
	}

	data := make([]float64, 0, 3*a.Len())
	for p := 0; p < a.Len(); p++ {
		x, y, z := cols[0][p], cols[1][p], cols[2][p]
		if removeNaNs && !(finite(x) && finite(y) && finite(z)) {
			continue
		}
		data = append(data, x, y, z)
	}
	if len(data) == 0 {
		return &mat.Dense{}, nil
	}
	return mat.NewDense(len(data)/3, 3, data), nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// SplitRGB replaces the packed rgb field of a point array with uint8 r, g
// and b fields appended after the remaining members. The packed field may be
// a float32 holding the color bits or a uint32.
func SplitRGB(a *RecordArray) (*RecordArray, error) {
	m, _, err := a.lookup("rgb")
	if err != nil {
		return nil, err
	}
	if !m.IsScalar() || (m.Type != Float32 && m.Type != Uint32) {
		return nil, &TypeMismatchError{Want: "scalar float32 or uint32 rgb field", Got: fmt.Sprintf("%v %v", m.Type, m.Shape)}
	}

	packed, err := packedColors(a, m.Type)
	if err != nil {
		return nil, err
	}

	members := make([]Member, 0, a.layout.NumMembers()+2)
	for _, mm := range a.layout.Members() {
		if mm.Name != "rgb" {
			members = append(members, mm)
		}
	}
	members = append(members, Scalar("r", Uint8), Scalar("g", Uint8), Scalar("b", Uint8))
	l, err := NewLayout(members...)
	if err != nil {
		return nil, err
	}

	out := a.project(l)
	r := make([]uint8, len(packed))
	g := make([]uint8, len(packed))
	b := make([]uint8, len(packed))
	for i, c := range packed {
		r[i], g[i], b[i] = uint8(c>>16), uint8(c>>8), uint8(c)
	}
	for name, values := range map[string][]uint8{"r": r, "g": g, "b": b} {
		if err := SetColumn(out, name, values); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func packedColors(a *RecordArray, t Type) ([]uint32, error) {
	if t == Uint32 {
		return Column[uint32](a, "rgb")
	}
	f, err := Column[float32](a, "rgb")
	if err != nil {
		return nil, err
	}
	out := make([]uint32, len(f))
	for i, v := range f {
		out[i] = math.Float32bits(v)
	}
	return out, nil
}

// MergeRGB replaces uint8 r, g and b fields with a float32 rgb field holding
// the packed color bits, appended after the remaining members. It undoes
// SplitRGB.
func MergeRGB(a *RecordArray) (*RecordArray, error) {
	var channels [3][]uint8
	for i, name := range []string{"r", "g", "b"} {
		m, _, err := a.lookup(name)
		if err != nil {
			return nil, err
		}
		if !m.IsScalar() || m.Type != Uint8 {
			return nil, &TypeMismatchError{Want: fmt.Sprintf("scalar uint8 %s field", name), Got: fmt.Sprintf("%v %v", m.Type, m.Shape)}
		}
		if channels[i], err = Column[uint8](a, name); err != nil {
			return nil, err
		}
	}

	members := make([]Member, 0, a.layout.NumMembers())
	for _, mm := range a.layout.Members() {
		switch mm.Name {
		case "r", "g", "b":
		default:
			members = append(members, mm)
		}
	}
	members = append(members, Scalar("rgb", Float32))
	l, err := NewLayout(members...)
	if err != nil {
		return nil, err
	}

	out := a.project(l)
	rgb := make([]float32, a.Len())
	for i := range rgb {
		c := uint32(channels[0][i])<<16 | uint32(channels[1][i])<<8 | uint32(channels[2][i])
		rgb[i] = math.Float32frombits(c)
	}
	if err := SetColumn(out, "rgb", rgb); err != nil {
		return nil, err
	}
	return out, nil
}
