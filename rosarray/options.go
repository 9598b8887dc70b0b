package rosarray

import (
	"time"

	"github.com/go-logr/logr"

	"github.com/robert-malhotra/go-rosarray/msg"
)

// Option configures a conversion.
type Option func(*options)

type options struct {
	pointStep int
	encoding  string
	squeeze   bool
	align     int
	header    msg.Header
	log       logr.Logger
}

func defaultOptions() *options {
	return &options{
		pointStep: -1,
		squeeze:   true,
		log:       logr.Discard(),
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithPointStep sets the record stride used when a PointField list is
// converted on its own. Without it the stride is the end of the last field.
func WithPointStep(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.pointStep = n
		}
	}
}

// WithEncoding sets the image encoding used by FromArray.
func WithEncoding(name string) Option {
	return func(o *options) {
		o.encoding = name
	}
}

// WithSqueeze controls whether a point cloud of height 1 is returned as a
// one-dimensional array (the default) or as shape (1, width).
func WithSqueeze(on bool) Option {
	return func(o *options) {
		o.squeeze = on
	}
}

// WithRowAlignment pads each row of a produced message to a multiple of n
// bytes, zero filling the gap. Values below 2 leave rows packed.
func WithRowAlignment(n int) Option {
	return func(o *options) {
		if n > 1 {
			o.align = n
		}
	}
}

// WithHeader sets the header of produced messages.
func WithHeader(h msg.Header) Option {
	return func(o *options) {
		o.header = h
	}
}

// WithFrameID sets the frame of produced messages.
func WithFrameID(id string) Option {
	return func(o *options) {
		o.header.FrameID = id
	}
}

// WithStamp sets the timestamp of produced messages.
func WithStamp(t time.Time) Option {
	return func(o *options) {
		o.header.Stamp = msg.NewTime(t)
	}
}

// WithLogger sets the logger conversions report to. Defaults to logr.Discard().
func WithLogger(log logr.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// rowStep returns the step of a produced row of rowBytes bytes.
func (o *options) rowStep(rowBytes int) int {
	if o.align < 2 || rowBytes%o.align == 0 {
		return rowBytes
	}
	return (rowBytes/o.align + 1) * o.align
}
