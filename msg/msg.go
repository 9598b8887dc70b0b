// Package msg defines the sensor_msgs records exchanged with the array layer.
//
// The types are plain Go structs mirroring the ROS message definitions. How
// they travel over the wire is the business of the transport; this package
// only carries their fields.
package msg

import "time"

// Message is implemented by every message type in this package.
type Message interface {
	// TypeName returns the ROS type name (e.g. "sensor_msgs/Image").
	TypeName() string
}

// ROS type names of the supported messages.
const (
	TypePointField  = "sensor_msgs/PointField"
	TypePointCloud2 = "sensor_msgs/PointCloud2"
	TypeImage       = "sensor_msgs/Image"
)

// Time is a ROS timestamp.
type Time struct {
	Sec  uint32
	NSec uint32
}

// NewTime converts a time.Time to a ROS timestamp.
func NewTime(t time.Time) Time {
	return Time{Sec: uint32(t.Unix()), NSec: uint32(t.Nanosecond())}
}

// Header is std_msgs/Header.
type Header struct {
	Seq     uint32
	Stamp   Time
	FrameID string
}
