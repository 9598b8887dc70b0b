// Package layout handles row-strided image and point cloud payloads.
//
// Both sensor_msgs/Image and sensor_msgs/PointCloud2 store their rows
// Step (or RowStep) bytes apart, which may exceed the bytes a row actually
// holds. Arrays are always packed, so conversion drops the row padding on
// the way in and writes rows back at the declared step on the way out.
//
// # Row Copying
//
// Dropping row padding copies bytes [0, rowBytes) of every step-byte row.
// The last row may stop right after its data; Validate only asks for
// (height-1)*step + rowBytes bytes.
//
// # Key Types
//
//   - [Rows]: Geometry of a strided buffer with Unpad and Pad
package layout
