// Package rosarray converts sensor_msgs messages to and from numeric arrays.
//
// Two conversions are supported. Point clouds map to a [RecordArray]: one
// record per point, laid out exactly as the PointCloud2 payload, described
// by a [Layout] derived from the message's PointField list. Images map to an
// [Array] of shape (height, width) or (height, width, channels) whose
// element type follows the image encoding.
//
// # Reading Messages
//
//	points, err := rosarray.PointCloudToArray(cloud)
//	xs, err := rosarray.Column[float32](points, "x")
//
//	pixels, err := rosarray.ImageToArray(img)
//	values, err := rosarray.Values[uint8](pixels)
//
// # Writing Messages
//
//	cloud, err := rosarray.ArrayToPointCloud(points, rosarray.WithFrameID("lidar"))
//	img, err := rosarray.ArrayToImage(pixels, "rgb8")
//
// An image is only produced when the array's element type and channel
// dimension match the encoding; nothing is coerced.
//
// # Generic Entry Points
//
// [ToArray] and [FromArray] route on the ROS type name:
//
//	v, err := rosarray.ToArray(msg.PointFields(cloud.Fields), rosarray.WithPointStep(32))
//	m, err := rosarray.FromArray(rosarray.KindImage, pixels, rosarray.WithEncoding("mono8"))
//
// # Errors
//
// Failures wrap [ErrLayout], [ErrTypeMismatch], [ErrUnsupportedEncoding] or
// [ErrNotSupported]; use errors.Is to tell them apart.
package rosarray
