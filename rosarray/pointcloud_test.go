package rosarray

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-rosarray/msg"
)

func xyzrgbLayout() *Layout {
	return MustLayout(
		Scalar("x", Float32),
		Scalar("y", Float32),
		Scalar("z", Float32),
		Scalar("r", Uint8),
		Scalar("g", Uint8),
		Scalar("b", Uint8),
	)
}

func newPoints(t *testing.T, n int) *RecordArray {
	t.Helper()

	a, err := NewRecordArray(xyzrgbLayout(), n)
	require.NoError(t, err)

	x := make([]float32, n)
	y := make([]float32, n)
	z := make([]float32, n)
	r := make([]uint8, n)
	g := make([]uint8, n)
	b := make([]uint8, n)
	for i := 0; i < n; i++ {
		x[i] = float32(i) * 0.5
		y[i] = -float32(i)
		z[i] = float32(i*i) / 7
		r[i], g[i], b[i] = uint8(i), uint8(255-i), uint8(i*3)
	}
	require.NoError(t, SetColumn(a, "x", x))
	require.NoError(t, SetColumn(a, "y", y))
	require.NoError(t, SetColumn(a, "z", z))
	require.NoError(t, SetColumn(a, "r", r))
	require.NoError(t, SetColumn(a, "g", g))
	require.NoError(t, SetColumn(a, "b", b))
	return a
}

func TestPointCloudRoundTrip(t *testing.T) {
	points := newPoints(t, 100)

	cloud, err := ArrayToPointCloud(points, WithFrameID("velodyne"), WithStamp(time.Unix(12, 500)))
	require.NoError(t, err)

	assert.Equal(t, uint32(1), cloud.Height)
	assert.Equal(t, uint32(100), cloud.Width)
	assert.Equal(t, uint32(15), cloud.PointStep)
	assert.Equal(t, uint32(1500), cloud.RowStep)
	assert.Len(t, cloud.Data, 1500)
	assert.False(t, cloud.IsBigendian)
	assert.True(t, cloud.IsDense)
	assert.Equal(t, "velodyne", cloud.Header.FrameID)
	assert.Equal(t, msg.Time{Sec: 12, NSec: 500}, cloud.Header.Stamp)

	wantFields := []msg.PointField{
		{Name: "x", Offset: 0, Datatype: msg.Float32, Count: 1},
		{Name: "y", Offset: 4, Datatype: msg.Float32, Count: 1},
		{Name: "z", Offset: 8, Datatype: msg.Float32, Count: 1},
		{Name: "r", Offset: 12, Datatype: msg.Uint8, Count: 1},
		{Name: "g", Offset: 13, Datatype: msg.Uint8, Count: 1},
		{Name: "b", Offset: 14, Datatype: msg.Uint8, Count: 1},
	}
	if diff := cmp.Diff(wantFields, cloud.Fields); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}

	back, err := PointCloudToArray(cloud)
	require.NoError(t, err)
	assert.Equal(t, []int{100}, back.Shape())
	assert.True(t, points.Equal(back), "got %s", back)
}

func TestPointCloudOutputIsCopy(t *testing.T) {
	points := newPoints(t, 3)
	cloud, err := ArrayToPointCloud(points)
	require.NoError(t, err)

	cloud.Data[0] ^= 0xff
	x, err := Column[float32](points, "x")
	require.NoError(t, err)
	assert.Equal(t, float32(0), x[0])
}

func TestPointCloudOrganized(t *testing.T) {
	a, err := NewRecordArray(MustLayout(Scalar("x", Float32), Scalar("y", Float32)), 4, 3)
	require.NoError(t, err)
	require.NoError(t, SetColumn(a, "x", []float32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}))

	cloud, err := ArrayToPointCloud(a)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), cloud.Height)
	assert.Equal(t, uint32(3), cloud.Width)
	assert.Equal(t, uint32(24), cloud.RowStep)

	back, err := PointCloudToArray(cloud)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3}, back.Shape())
	assert.True(t, a.Equal(back))
}

func TestPointCloudSqueeze(t *testing.T) {
	points := newPoints(t, 5)
	cloud, err := ArrayToPointCloud(points)
	require.NoError(t, err)

	squeezed, err := PointCloudToArray(cloud)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, squeezed.Shape())

	full, err := PointCloudToArray(cloud, WithSqueeze(false))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 5}, full.Shape())
}

func TestPointCloudRowPadding(t *testing.T) {
	// Two rows of two uint16 points, each row padded from 4 to 8 bytes.
	cloud := &msg.PointCloud2{
		Height:    2,
		Width:     2,
		Fields:    []msg.PointField{{Name: "v", Offset: 0, Datatype: msg.Uint16, Count: 1}},
		PointStep: 2,
		RowStep:   8,
		Data:      []byte{1, 0, 2, 0, 0xee, 0xee, 0xee, 0xee, 3, 0, 4, 0},
	}

	a, err := PointCloudToArray(cloud)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, a.Shape())

	v, err := Column[uint16](a, "v")
	require.NoError(t, err)
	assert.Equal(t, []uint16{1, 2, 3, 4}, v)

	cloud.RowStep = 0
	cloud.Data = []byte{1, 0, 2, 0, 3, 0, 4, 0}
	a, err = PointCloudToArray(cloud)
	require.NoError(t, err)
	v, err = Column[uint16](a, "v")
	require.NoError(t, err)
	assert.Equal(t, []uint16{1, 2, 3, 4}, v)
}

func TestPointCloudRowAlignment(t *testing.T) {
	a, err := NewRecordArray(MustLayout(Scalar("v", Uint8)), 2, 3)
	require.NoError(t, err)
	require.NoError(t, SetColumn(a, "v", []uint8{1, 2, 3, 4, 5, 6}))

	cloud, err := ArrayToPointCloud(a, WithRowAlignment(4))
	require.NoError(t, err)
	assert.Equal(t, uint32(4), cloud.RowStep)
	assert.Equal(t, []byte{1, 2, 3, 0, 4, 5, 6, 0}, cloud.Data)

	back, err := PointCloudToArray(cloud)
	require.NoError(t, err)
	assert.True(t, a.Equal(back))
}

func TestPointCloudBigEndian(t *testing.T) {
	data := make([]byte, 12)
	binary.BigEndian.PutUint32(data[0:], math.Float32bits(1.5))
	binary.BigEndian.PutUint16(data[4:], 0x0102)
	binary.BigEndian.PutUint32(data[6:], math.Float32bits(-2))
	binary.BigEndian.PutUint16(data[10:], 0x0304)

	cloud := &msg.PointCloud2{
		Height: 1,
		Width:  2,
		Fields: []msg.PointField{
			{Name: "x", Offset: 0, Datatype: msg.Float32, Count: 1},
			{Name: "ring", Offset: 4, Datatype: msg.Uint16, Count: 1},
		},
		IsBigendian: true,
		PointStep:   6,
		RowStep:     12,
		Data:        data,
	}

	a, err := PointCloudToArray(cloud)
	require.NoError(t, err)
	assert.Equal(t, binary.BigEndian, a.ByteOrder())

	x, err := ColumnFloat64(a, "x")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, -2}, x)

	ring, err := Column[uint16](a, "ring")
	require.NoError(t, err)
	assert.Equal(t, []uint16{0x0102, 0x0304}, ring)

	back, err := ArrayToPointCloud(a)
	require.NoError(t, err)
	assert.True(t, back.IsBigendian)
	assert.Equal(t, data, back.Data)
}

func TestPointCloudPaddedFields(t *testing.T) {
	// x y z, 4 pad bytes, intensity, 12 trailing bytes.
	cloud := &msg.PointCloud2{
		Height: 1,
		Width:  2,
		Fields: []msg.PointField{
			{Name: "x", Offset: 0, Datatype: msg.Float32, Count: 1},
			{Name: "y", Offset: 4, Datatype: msg.Float32, Count: 1},
			{Name: "z", Offset: 8, Datatype: msg.Float32, Count: 1},
			{Name: "intensity", Offset: 16, Datatype: msg.Float32, Count: 1},
		},
		PointStep: 32,
		RowStep:   64,
		Data:      make([]byte, 64),
	}
	binary.LittleEndian.PutUint32(cloud.Data[16:], math.Float32bits(7))
	binary.LittleEndian.PutUint32(cloud.Data[48:], math.Float32bits(9))

	a, err := PointCloudToArray(cloud)
	require.NoError(t, err)
	assert.Equal(t, 32, a.Layout().ItemSize())

	intensity, err := Column[float32](a, "intensity")
	require.NoError(t, err)
	assert.Equal(t, []float32{7, 9}, intensity)

	back, err := ArrayToPointCloud(a)
	require.NoError(t, err)
	assert.Equal(t, uint32(32), back.PointStep)
	if diff := cmp.Diff(cloud.Fields, back.Fields); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestPointCloudIsDense(t *testing.T) {
	points := newPoints(t, 4)
	x, err := Column[float32](points, "x")
	require.NoError(t, err)
	x[2] = float32(math.NaN())
	require.NoError(t, SetColumn(points, "x", x))

	cloud, err := ArrayToPointCloud(points)
	require.NoError(t, err)
	assert.False(t, cloud.IsDense)
}

func TestPointCloudErrors(t *testing.T) {
	fields := []msg.PointField{{Name: "x", Offset: 0, Datatype: msg.Float32, Count: 1}}

	tests := []struct {
		name  string
		cloud *msg.PointCloud2
	}{
		{"nil", nil},
		{"short data", &msg.PointCloud2{Height: 1, Width: 4, Fields: fields, PointStep: 4, RowStep: 16, Data: make([]byte, 12)}},
		{"short row step", &msg.PointCloud2{Height: 2, Width: 2, Fields: fields, PointStep: 4, RowStep: 4, Data: make([]byte, 16)}},
		{"short point step", &msg.PointCloud2{Height: 1, Width: 1, Fields: fields, PointStep: 2, RowStep: 2, Data: make([]byte, 4)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PointCloudToArray(tt.cloud)
			assert.True(t, errors.Is(err, ErrLayout), "got %v", err)
		})
	}

	a, err := NewRecordArray(MustLayout(Scalar("x", Float32)), 2, 2, 2)
	require.NoError(t, err)
	_, err = ArrayToPointCloud(a)
	assert.True(t, errors.Is(err, ErrLayout), "got %v", err)
}
