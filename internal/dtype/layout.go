package dtype

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/multierr"
)

// PadPrefix starts the name of every padding member.
const PadPrefix = "__"

// Member is one named entry of a record layout. Shape is nil for a scalar
// and holds the sub-array dimensions otherwise.
type Member struct {
	Name  string
	Type  Type
	Shape []int

	pad bool
}

// Scalar returns a scalar member.
func Scalar(name string, t Type) Member {
	return Member{Name: name, Type: t}
}

// Vector returns a member holding n elements of t. A count of one yields a
// scalar, matching how PointField counts are read.
func Vector(name string, t Type, n int) Member {
	if n == 1 {
		return Scalar(name, t)
	}
	return Member{Name: name, Type: t, Shape: []int{n}}
}

// Pad returns the padding member that fills n bytes starting at offset.
func Pad(offset, n int) Member {
	m := Vector(fmt.Sprintf("%s%d", PadPrefix, offset), Uint8, n)
	m.pad = true
	return m
}

// Count returns the number of elements in the member.
func (m Member) Count() int {
	n := 1
	for _, d := range m.Shape {
		n *= d
	}
	return n
}

// Size returns the number of bytes the member occupies in a record.
func (m Member) Size() int {
	return m.Count() * m.Type.Size()
}

// IsScalar returns true if the member has no sub-array shape.
func (m Member) IsScalar() bool {
	return len(m.Shape) == 0
}

// IsPadding returns true for padding pseudo-members made by Pad.
func (m Member) IsPadding() bool {
	return m.pad
}

func (m Member) equal(o Member) bool {
	return m.Name == o.Name && m.Type == o.Type && slices.Equal(m.Shape, o.Shape)
}

// Layout is an ordered record schema. Members are packed back to back, so a
// member's offset is the total size of the members before it; gaps are held
// by explicit padding members.
type Layout struct {
	members []Member
	offsets []int
	size    int
	index   map[string]int
}

// NewLayout builds a layout from members in record order.
func NewLayout(members ...Member) (*Layout, error) {
	l := &Layout{
		members: make([]Member, len(members)),
		offsets: make([]int, len(members)),
		index:   make(map[string]int, len(members)),
	}

	var errs error
	offset := 0
	for i, m := range members {
		if err := validateMember(m, offset); err != nil {
			errs = multierr.Append(errs, err)
		} else if _, dup := l.index[m.Name]; dup {
			errs = multierr.Append(errs, layoutErrorf(m.Name, offset, "duplicate member name"))
		}
		l.index[m.Name] = i

		l.members[i] = Member{Name: m.Name, Type: m.Type, Shape: slices.Clone(m.Shape), pad: m.pad}
		l.offsets[i] = offset
		offset += m.Size()
	}
	if errs != nil {
		return nil, errs
	}

	l.size = offset
	return l, nil
}

// MustLayout is like NewLayout but panics on error.
func MustLayout(members ...Member) *Layout {
	l, err := NewLayout(members...)
	if err != nil {
		panic(err)
	}
	return l
}

func validateMember(m Member, offset int) error {
	if m.Name == "" {
		return layoutErrorf("", offset, "member at offset %d has no name", offset)
	}
	if !m.pad && strings.HasPrefix(m.Name, PadPrefix) {
		return layoutErrorf(m.Name, offset, "name uses reserved prefix %q", PadPrefix)
	}
	if !m.Type.Valid() {
		return layoutErrorf(m.Name, offset, "invalid element type %d", uint8(m.Type))
	}
	for _, d := range m.Shape {
		if d <= 0 {
			return layoutErrorf(m.Name, offset, "invalid shape %v", m.Shape)
		}
	}
	return nil
}

// ItemSize returns the size of one record in bytes, padding included.
func (l *Layout) ItemSize() int {
	return l.size
}

// NumMembers returns the number of members, padding included.
func (l *Layout) NumMembers() int {
	return len(l.members)
}

// Member returns the i-th member and its byte offset, padding included.
func (l *Layout) Member(i int) (Member, int) {
	m := l.members[i]
	m.Shape = slices.Clone(m.Shape)
	return m, l.offsets[i]
}

// Members returns every member in record order, padding included.
func (l *Layout) Members() []Member {
	out := make([]Member, len(l.members))
	for i := range l.members {
		out[i], _ = l.Member(i)
	}
	return out
}

// Fields returns the addressable members in record order.
func (l *Layout) Fields() []Member {
	var out []Member
	for i, m := range l.members {
		if !m.IsPadding() {
			f, _ := l.Member(i)
			out = append(out, f)
		}
	}
	return out
}

// Names returns the names of the addressable members in record order.
func (l *Layout) Names() []string {
	var names []string
	for _, m := range l.members {
		if !m.IsPadding() {
			names = append(names, m.Name)
		}
	}
	return names
}

// Lookup returns the addressable member with the given name and its offset.
func (l *Layout) Lookup(name string) (Member, int, bool) {
	i, ok := l.index[name]
	if !ok || l.members[i].IsPadding() {
		return Member{}, 0, false
	}
	m, off := l.Member(i)
	return m, off, true
}

// NumPadding returns the number of padding members.
func (l *Layout) NumPadding() int {
	n := 0
	for _, m := range l.members {
		if m.IsPadding() {
			n++
		}
	}
	return n
}

// Equal reports whether both layouts have the same item size and the same
// fields in the same order at the same offsets. Padding members are not
// compared, so layouts that differ only in how their gaps are split or
// named are equal.
func (l *Layout) Equal(o *Layout) bool {
	if l == nil || o == nil {
		return l == o
	}
	if l.size != o.size {
		return false
	}
	a, b := l.fieldIndexes(), o.fieldIndexes()
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		i, j := a[k], b[k]
		if !l.members[i].equal(o.members[j]) || l.offsets[i] != o.offsets[j] {
			return false
		}
	}
	return true
}

func (l *Layout) fieldIndexes() []int {
	idx := make([]int, 0, len(l.members))
	for i, m := range l.members {
		if !m.pad {
			idx = append(idx, i)
		}
	}
	return idx
}

// String formats the layout like a numpy dtype description.
func (l *Layout) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, m := range l.members {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "('%s', '%s'", m.Name, m.Type.Descr(false))
		if !m.IsScalar() {
			sb.WriteString(", (")
			for j, d := range m.Shape {
				if j > 0 {
					sb.WriteString(", ")
				}
				fmt.Fprintf(&sb, "%d", d)
			}
			if len(m.Shape) == 1 {
				sb.WriteByte(',')
			}
			sb.WriteByte(')')
		}
		sb.WriteByte(')')
	}
	sb.WriteByte(']')
	return sb.String()
}
