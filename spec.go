package fwf

import (
	"fmt"
	"unicode/utf8"
)

// Unordered marks a spec that declares no population order. Unordered
// producers run after all explicitly ordered ones, in registration order.
const Unordered = -1

// A ColumnSpec describes the shape of one column: its name, the exact
// character width it occupies, the fill character used to pad data, the
// alignment of that data, and an optional population order. Widths count
// Unicode code points, not bytes.
//
// Specs are immutable once constructed and may be shared freely across
// Columns, Rows, and Layouts. The zero ColumnSpec is not valid; use
// NewColumnSpec.
type ColumnSpec struct {
	name  string
	width int
	fill  rune
	align Alignment
	order int
}

// A SpecOption sets one of the optional fields of a ColumnSpec under
// construction.
type SpecOption func(*ColumnSpec)

// WithFill sets the fill character. The default is a space.
func WithFill(fill rune) SpecOption {
	return func(s *ColumnSpec) { s.fill = fill }
}

// WithAlign sets the alignment. The default is Left.
func WithAlign(align Alignment) SpecOption {
	return func(s *ColumnSpec) { s.align = align }
}

// WithOrder sets the population order used when a Row sorts its producers.
// The default is Unordered.
func WithOrder(order int) SpecOption {
	return func(s *ColumnSpec) { s.order = order }
}

// NewColumnSpec validates and builds a ColumnSpec. Validation happens here
// and nowhere later: name must be non-empty, width at least 1, fill a single
// valid character, align Left or Right, order at least Unordered. The first
// violated rule is reported as an *InvalidSpecError naming the field.
func NewColumnSpec(name string, width int, opts ...SpecOption) (ColumnSpec, error) {
	s := ColumnSpec{
		name:  name,
		width: width,
		fill:  defaultFill,
		align: Left,
		order: Unordered,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if err := s.validate(); err != nil {
		return ColumnSpec{}, err
	}
	return s, nil
}

func (s ColumnSpec) validate() error {
	switch {
	case s.name == "":
		return &InvalidSpecError{Field: "name", Reason: "must not be empty"}
	case s.width < 1:
		return &InvalidSpecError{Name: s.name, Field: "width", Reason: fmt.Sprintf("must be at least 1, got %d", s.width)}
	case s.fill == 0 || s.fill == utf8.RuneError:
		return &InvalidSpecError{Name: s.name, Field: "fill", Reason: "must be a single valid character"}
	case !s.align.Valid():
		return &InvalidSpecError{Name: s.name, Field: "align", Reason: fmt.Sprintf("must be %q or %q, got %q", Left, Right, s.align)}
	case s.order < Unordered:
		return &InvalidSpecError{Name: s.name, Field: "order", Reason: fmt.Sprintf("must be at least %d, got %d", Unordered, s.order)}
	}
	return nil
}

// Name returns the column's identifier. Uniqueness within a row's column set
// is the caller's concern, not the spec's.
func (s ColumnSpec) Name() string { return s.name }

// Width returns the exact character count the column occupies.
func (s ColumnSpec) Width() int { return s.width }

// Fill returns the character used to pad data to the column width.
func (s ColumnSpec) Fill() rune { return s.fill }

// Align returns which side of the column the data sits on.
func (s ColumnSpec) Align() Alignment { return s.align }

// Order returns the population order, or Unordered.
func (s ColumnSpec) Order() int { return s.order }

func (s ColumnSpec) String() string {
	return fmt.Sprintf("%s[%d %q %s]", s.name, s.width, s.fill, s.align)
}
