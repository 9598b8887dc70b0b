package msg

// PointField datatype codes.
const (
	Int8    uint8 = 1
	Uint8   uint8 = 2
	Int16   uint8 = 3
	Uint16  uint8 = 4
	Int32   uint8 = 5
	Uint32  uint8 = 6
	Float32 uint8 = 7
	Float64 uint8 = 8
)

// PointField describes one named field inside a PointCloud2 point.
type PointField struct {
	Name     string
	Offset   uint32
	Datatype uint8
	Count    uint32
}

// PointFields is an ordered list of field descriptors. It is a Message so the
// descriptor list can be converted on its own.
type PointFields []PointField

func (PointFields) TypeName() string { return TypePointField }

// PointCloud2 is sensor_msgs/PointCloud2.
type PointCloud2 struct {
	Header      Header
	Height      uint32
	Width       uint32
	Fields      []PointField
	IsBigendian bool
	PointStep   uint32
	RowStep     uint32
	Data        []byte
	IsDense     bool
}

func (*PointCloud2) TypeName() string { return TypePointCloud2 }
