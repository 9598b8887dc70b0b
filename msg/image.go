package msg

// Image is sensor_msgs/Image. Step is the length of a row in bytes and may
// exceed Width times the pixel size.
type Image struct {
	Header      Header
	Height      uint32
	Width       uint32
	Encoding    string
	IsBigendian bool
	Step        uint32
	Data        []byte
}

func (*Image) TypeName() string { return TypeImage }
