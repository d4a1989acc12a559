package fwf

import (
	"cmp"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"
)

// A Producer supplies the data for one column of a Row. Spec declares the
// column's shape; Produce computes its value when the row populates. Produce
// receives the row itself so a producer can call Invalidate when the value
// cannot be computed.
type Producer interface {
	Spec() ColumnSpec
	Produce(r *Row) (any, error)
}

// Field binds a ColumnSpec to a value function. It is the usual way to hand
// a Row its producers without declaring a type per column.
func Field(spec ColumnSpec, fn func(r *Row) (any, error)) Producer {
	return field{spec: spec, fn: fn}
}

// Value binds a ColumnSpec to a fixed value.
func Value(spec ColumnSpec, v any) Producer {
	return Field(spec, func(*Row) (any, error) { return v, nil })
}

type field struct {
	spec ColumnSpec
	fn   func(*Row) (any, error)
}

func (f field) Spec() ColumnSpec            { return f.spec }
func (f field) Produce(r *Row) (any, error) { return f.fn(r) }

// A Row collects registered producers and populates them into Columns in
// spec order. Rows are single-shot: the first Populate runs the producers
// and caches the result, and later calls return the cache. Producers
// registered after that are ignored.
//
// The zero Row is valid and empty. Rows are not safe for concurrent use.
type Row struct {
	producers []Producer
	columns   []Column
	fetched   bool
	invalid   bool
	reason    string
}

// NewRow builds a Row over the given producers. More can be added with
// Register until Populate runs.
func NewRow(producers ...Producer) *Row {
	return &Row{producers: producers}
}

// Register adds a producer to the row.
func (r *Row) Register(p Producer) {
	r.producers = append(r.producers, p)
}

// newPopulatedRow builds a row that is already fetched, bypassing producers.
// Decode uses it to materialize rows read from a file.
func newPopulatedRow(columns []Column) *Row {
	return &Row{columns: columns, fetched: true}
}

// sorted orders the producers by spec order, Unordered last. The sort is
// stable, so producers sharing an order keep their registration order.
func (r *Row) sorted() []Producer {
	slices.SortStableFunc(r.producers, func(a, b Producer) int {
		return cmp.Compare(orderKey(a.Spec().Order()), orderKey(b.Spec().Order()))
	})
	return r.producers
}

func orderKey(order int) int {
	if order == Unordered {
		return math.MaxInt
	}
	return order
}

// Populate runs the producers in spec order and returns the resulting
// Columns. Population stops at the first failure: a producer error or an
// oversized value invalidates the row, and a row invalidated by a producer
// mid-run populates no further columns. The columns built before the stop
// are returned.
func (r *Row) Populate() []Column {
	if r.fetched {
		return slices.Clone(r.columns)
	}
	r.fetched = true

	for _, p := range r.sorted() {
		if r.invalid {
			break
		}
		value, err := p.Produce(r)
		if err != nil {
			r.Invalidate(fmt.Sprintf("column %q: %v", p.Spec().Name(), err))
			break
		}
		if r.invalid {
			break
		}
		col, err := NewColumn(value, p.Spec())
		if err != nil {
			r.Invalidate(err.Error())
			break
		}
		r.columns = append(r.columns, col)
	}
	return slices.Clone(r.columns)
}

// Invalidate marks the row as unfit for export. The first reason wins;
// later calls are no-ops. Invalid rows populate no further columns and
// render an empty Line.
func (r *Row) Invalidate(reason string) {
	if r.invalid {
		return
	}
	r.invalid = true
	r.reason = reason
	logger().Info("row invalidated", slog.String("reason", reason))
}

// Valid reports whether the row may be exported.
func (r *Row) Valid() bool { return !r.invalid }

// Reason returns the first invalidation reason, or "" for a valid row.
func (r *Row) Reason() string { return r.reason }

// Specs returns the column specs in populate order.
func (r *Row) Specs() []ColumnSpec {
	if r.fetched {
		specs := make([]ColumnSpec, len(r.columns))
		for i, c := range r.columns {
			specs[i] = c.Spec()
		}
		return specs
	}
	ps := r.sorted()
	specs := make([]ColumnSpec, len(ps))
	for i, p := range ps {
		specs[i] = p.Spec()
	}
	return specs
}

// Layout returns the row's specs as a Layout, suitable for decoding lines
// of the shape this row produces.
func (r *Row) Layout() Layout {
	return Layout(r.Specs())
}

// Header returns the column names in populate order.
func (r *Row) Header() []string {
	specs := r.Specs()
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.Name()
	}
	return names
}

// Line renders the row as one fixed-width line, without the trailing
// newline. An invalid row renders as "".
func (r *Row) Line() string {
	columns := r.Populate()
	if r.invalid {
		return ""
	}
	var sb strings.Builder
	for _, c := range columns {
		sb.WriteString(c.Shaped())
	}
	return sb.String()
}
