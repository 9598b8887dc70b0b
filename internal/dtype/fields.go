package dtype

// Point Field Mapping
//
// A PointCloud2 describes its points with a list of PointField descriptors
// (name, byte offset, datatype, count) and a separate point_step. A Layout
// has no explicit offsets: members are packed back to back. Converting
// descriptors to a layout therefore sorts them by offset and fills every
// gap, including the tail up to point_step, with a padding member named
// after the offset it starts at. Going back, padding members only advance
// the running offset and produce no descriptor.

import (
	"cmp"
	"slices"
	"strings"

	"go.uber.org/multierr"

	"github.com/robert-malhotra/go-rosarray/msg"
)

// FromPointFields converts field descriptors into a layout whose item size is
// pointStep.
func FromPointFields(fields []msg.PointField, pointStep int) (*Layout, error) {
	if pointStep < 0 {
		return nil, layoutErrorf("", 0, "negative point step %d", pointStep)
	}
	if err := validatePointFields(fields); err != nil {
		return nil, err
	}

	sorted := slices.Clone(fields)
	slices.SortStableFunc(sorted, func(a, b msg.PointField) int {
		return cmp.Compare(a.Offset, b.Offset)
	})

	members := make([]Member, 0, len(sorted))
	cursor := 0
	var prev msg.PointField
	for _, f := range sorted {
		offset := int(f.Offset)
		if offset < cursor {
			return nil, layoutErrorf(f.Name, offset,
				"overlaps field %q (bytes %d-%d)", prev.Name, prev.Offset, cursor-1)
		}
		if offset > cursor {
			members = append(members, Pad(cursor, offset-cursor))
		}
		m := Vector(f.Name, Type(f.Datatype), int(f.Count))
		members = append(members, m)
		cursor = offset + m.Size()
		prev = f
	}

	if pointStep < cursor {
		return nil, layoutErrorf("", cursor,
			"point step %d is smaller than the %d bytes covered by the fields", pointStep, cursor)
	}
	if pointStep > cursor {
		members = append(members, Pad(cursor, pointStep-cursor))
	}

	return NewLayout(members...)
}

func validatePointFields(fields []msg.PointField) error {
	var errs error
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		offset := int(f.Offset)
		switch {
		case f.Name == "":
			errs = multierr.Append(errs, layoutErrorf("", offset, "field at offset %d has no name", offset))
		case strings.HasPrefix(f.Name, PadPrefix):
			errs = multierr.Append(errs, layoutErrorf(f.Name, offset, "name uses reserved prefix %q", PadPrefix))
		case seen[f.Name]:
			errs = multierr.Append(errs, layoutErrorf(f.Name, offset, "duplicate field name"))
		}
		seen[f.Name] = true

		if !Type(f.Datatype).Valid() {
			errs = multierr.Append(errs, layoutErrorf(f.Name, offset, "unknown datatype %d", f.Datatype))
		}
		if f.Count == 0 {
			errs = multierr.Append(errs, layoutErrorf(f.Name, offset, "count must be positive"))
		}
	}
	return errs
}

// ToPointFields returns one descriptor per addressable member of l, in order.
// Offsets are the cumulative sizes of the preceding members.
func ToPointFields(l *Layout) []msg.PointField {
	fields := make([]msg.PointField, 0, len(l.members))
	for i, m := range l.members {
		if m.IsPadding() {
			continue
		}
		fields = append(fields, msg.PointField{
			Name:     m.Name,
			Offset:   uint32(l.offsets[i]),
			Datatype: uint8(m.Type),
			Count:    uint32(m.Count()),
		})
	}
	return fields
}

// Extent returns the end of the furthest field, the smallest point step the
// descriptors fit in. Descriptors with an unknown datatype count as empty.
func Extent(fields []msg.PointField) int {
	end := 0
	for _, f := range fields {
		e := int(f.Offset) + int(f.Count)*Type(f.Datatype).Size()
		end = max(end, e)
	}
	return end
}
