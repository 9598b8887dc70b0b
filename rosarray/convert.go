package rosarray

import (
	"fmt"
	"slices"

	"github.com/robert-malhotra/go-rosarray/msg"
)

// Kind identifies a message type by its ROS type name.
type Kind string

// Supported kinds.
const (
	KindPointField  Kind = msg.TypePointField
	KindPointCloud2 Kind = msg.TypePointCloud2
	KindImage       Kind = msg.TypeImage
)

type toArrayFunc func(m msg.Message, opts []Option) (any, error)

type fromArrayFunc func(v any, opts []Option) (msg.Message, error)

var toArray = map[Kind]toArrayFunc{
	KindPointField: func(m msg.Message, opts []Option) (any, error) {
		fields, ok := m.(msg.PointFields)
		if !ok {
			return nil, notSupported(KindPointField, m)
		}
		o := applyOptions(opts)
		step := o.pointStep
		if step < 0 {
			step = fieldsExtent(fields)
		}
		return layoutFromFields(fields, step, o)
	},
	KindPointCloud2: func(m msg.Message, opts []Option) (any, error) {
		c, ok := m.(*msg.PointCloud2)
		if !ok {
			return nil, notSupported(KindPointCloud2, m)
		}
		return PointCloudToArray(c, opts...)
	},
	KindImage: func(m msg.Message, opts []Option) (any, error) {
		im, ok := m.(*msg.Image)
		if !ok {
			return nil, notSupported(KindImage, m)
		}
		return ImageToArray(im, opts...)
	},
}

var fromArray = map[Kind]fromArrayFunc{
	KindPointField: func(v any, _ []Option) (msg.Message, error) {
		l, ok := v.(*Layout)
		if !ok || l == nil {
			return nil, notSupported(KindPointField, v)
		}
		return msg.PointFields(FieldsFromLayout(l)), nil
	},
	KindPointCloud2: func(v any, opts []Option) (msg.Message, error) {
		a, ok := v.(*RecordArray)
		if !ok {
			return nil, notSupported(KindPointCloud2, v)
		}
		return ArrayToPointCloud(a, opts...)
	},
	KindImage: func(v any, opts []Option) (msg.Message, error) {
		a, ok := v.(*Array)
		if !ok {
			return nil, notSupported(KindImage, v)
		}
		return ArrayToImage(a, applyOptions(opts).encoding, opts...)
	},
}

func notSupported(k Kind, v any) error {
	return fmt.Errorf("%w: %s from %T", ErrNotSupported, k, v)
}

// ToArray converts a message into its array form:
//
//	msg.PointFields   -> *Layout (stride from WithPointStep)
//	*msg.PointCloud2  -> *RecordArray
//	*msg.Image        -> *Array
//
// Any other message fails with ErrNotSupported.
func ToArray(m msg.Message, opts ...Option) (any, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil message", ErrNotSupported)
	}
	conv, ok := toArray[Kind(m.TypeName())]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotSupported, m.TypeName())
	}
	return conv(m, opts)
}

// FromArray converts an array form back into a message of the given kind.
// An image needs WithEncoding. An unknown kind, or a value that is not the
// array form of kind, fails with ErrNotSupported.
func FromArray(kind Kind, v any, opts ...Option) (msg.Message, error) {
	conv, ok := fromArray[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotSupported, kind)
	}
	return conv(v, opts)
}

// SupportedKinds returns the kinds ToArray and FromArray accept, sorted.
func SupportedKinds() []Kind {
	kinds := make([]Kind, 0, len(toArray))
	for k := range toArray {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}
