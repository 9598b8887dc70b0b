package rosarray

import (
	"github.com/robert-malhotra/go-rosarray/internal/dtype"
	"github.com/robert-malhotra/go-rosarray/msg"
)

// LayoutFromFields converts PointField descriptors into a record layout of
// pointStep bytes. Fields come out in ascending offset order and gaps become
// padding members. Overlapping fields and a pointStep too small for the
// fields fail with ErrLayout.
func LayoutFromFields(fields []msg.PointField, pointStep int, opts ...Option) (*Layout, error) {
	o := applyOptions(opts)
	return layoutFromFields(fields, pointStep, o)
}

func layoutFromFields(fields []msg.PointField, pointStep int, o *options) (*Layout, error) {
	l, err := dtype.FromPointFields(fields, pointStep)
	if err != nil {
		return nil, err
	}
	if n := l.NumPadding(); n > 0 {
		o.log.V(1).Info("inserted padding into point layout", "padding", n, "pointStep", pointStep)
	}
	return l, nil
}

// FieldsFromLayout returns the PointField descriptors of a layout. Offsets
// are recomputed from the member sizes; padding members yield no descriptor.
func FieldsFromLayout(l *Layout) []msg.PointField {
	return dtype.ToPointFields(l)
}
