package rosarray

import (
	"fmt"
	"math"

	binpkg "github.com/robert-malhotra/go-rosarray/internal/binary"
	"github.com/robert-malhotra/go-rosarray/internal/dtype"
	"github.com/robert-malhotra/go-rosarray/internal/layout"
	"github.com/robert-malhotra/go-rosarray/msg"
)

// PointCloudToArray converts a PointCloud2 into a record array of shape
// (height, width), or (width,) for a cloud of height 1 unless
// WithSqueeze(false) is given. Row padding beyond width*point_step is
// dropped; a zero row_step is read as unpadded.
func PointCloudToArray(c *msg.PointCloud2, opts ...Option) (*RecordArray, error) {
	if c == nil {
		return nil, &LayoutError{Reason: "nil point cloud"}
	}
	o := applyOptions(opts)

	l, err := layoutFromFields(c.Fields, int(c.PointStep), o)
	if err != nil {
		return nil, fmt.Errorf("point cloud fields: %w", err)
	}

	height, width := int(c.Height), int(c.Width)
	rows := layout.Rows{Height: height, RowBytes: width * l.ItemSize(), Step: int(c.RowStep)}
	if c.RowStep == 0 {
		rows.Step = rows.RowBytes
	}
	data, err := rows.Unpad(c.Data)
	if err != nil {
		return nil, fmt.Errorf("point cloud %dx%d: %w", height, width, err)
	}
	if rows.Padded() {
		o.log.V(1).Info("dropped point cloud row padding", "rowStep", rows.Step, "rowBytes", rows.RowBytes)
	}

	shape := []int{height, width}
	if o.squeeze && height == 1 {
		shape = []int{width}
	}

	return &RecordArray{
		layout: l,
		shape:  shape,
		data:   data,
		order:  binpkg.Order(c.IsBigendian),
	}, nil
}

// ArrayToPointCloud converts a one-dimensional (unorganized) or
// two-dimensional (organized) record array into a PointCloud2. is_dense is
// set when every floating-point field is finite.
func ArrayToPointCloud(a *RecordArray, opts ...Option) (*msg.PointCloud2, error) {
	if a == nil {
		return nil, &LayoutError{Reason: "nil record array"}
	}
	o := applyOptions(opts)

	var height, width int
	switch a.Ndim() {
	case 1:
		height, width = 1, a.shape[0]
	case 2:
		height, width = a.shape[0], a.shape[1]
	default:
		return nil, &LayoutError{Reason: fmt.Sprintf("point cloud needs a 1-D or 2-D record array, got shape %v", a.shape)}
	}

	pointStep := a.layout.ItemSize()
	dense, err := isDense(a)
	if err != nil {
		return nil, err
	}

	data, rowStep, err := padRows(a.data, height, pointStep*width, o)
	if err != nil {
		return nil, err
	}

	return &msg.PointCloud2{
		Header:      o.header,
		Height:      uint32(height),
		Width:       uint32(width),
		Fields:      FieldsFromLayout(a.layout),
		IsBigendian: binpkg.IsBigEndian(a.order),
		PointStep:   uint32(pointStep),
		RowStep:     uint32(rowStep),
		Data:        data,
		IsDense:     dense,
	}, nil
}

func isDense(a *RecordArray) (bool, error) {
	for _, m := range a.layout.Fields() {
		if !m.Type.IsFloat() {
			continue
		}
		values, err := ColumnFloat64(a, m.Name)
		if err != nil {
			return false, err
		}
		for _, v := range values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false, nil
			}
		}
	}
	return true, nil
}

// fieldsExtent is the point step a bare PointField list implies.
func fieldsExtent(fields []msg.PointField) int {
	return dtype.Extent(fields)
}
