// Package dtype provides element types and record layouts for sensor data.
//
// This package bridges PointCloud2 field descriptors and array record
// schemas, providing functionality to:
//
//   - Map PointField datatype codes to element types and Go types
//   - Convert field descriptors to a record Layout and back
//   - Read and write typed elements of raw record buffers
//
// # Type Mapping
//
//	PointField datatype | Type    | Go type
//	--------------------|---------|---------
//	INT8    (1)         | Int8    | int8
//	UINT8   (2)         | Uint8   | uint8
//	INT16   (3)         | Int16   | int16
//	UINT16  (4)         | Uint16  | uint16
//	INT32   (5)         | Int32   | int32
//	UINT32  (6)         | Uint32  | uint32
//	FLOAT32 (7)         | Float32 | float32
//	FLOAT64 (8)         | Float64 | float64
//
// # Layouts
//
// A [Layout] is an ordered list of [Member] values packed back to back.
// Gaps between descriptors become padding members named "__<offset>",
// which keep the record size bit-exact but are hidden from [Layout.Fields],
// [Layout.Names] and [Layout.Lookup]:
//
//	l, err := dtype.FromPointFields(cloud.Fields, int(cloud.PointStep))
//	fields := dtype.ToPointFields(l)
//
// # Element Access
//
// Use [Gather] and [Scatter] to move a column between a record buffer and a
// Go slice:
//
//	xs, err := dtype.Gather[float32](data, binary.LittleEndian, dtype.Float32, n, stride, 0, 1)
//
// # Key Functions
//
//   - [FromPointFields]: Builds a layout from descriptors and a point step
//   - [ToPointFields]: Recomputes descriptors from a layout
//   - [NewLayout]: Builds a layout from members
//   - [Gather], [Scatter]: Column reads and writes
//   - [Of]: Returns the element type of a Go type parameter
package dtype
