package fwf

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// A Column pairs one piece of data with the ColumnSpec that shapes it. The
// data is formatted and checked against the spec width at construction, so a
// Column that exists always fits its column.
type Column struct {
	spec ColumnSpec
	data string
}

// NewColumn formats value and binds it to spec. Strings and []byte pass
// through as-is, Marshaler implementations are given the column width,
// encoding.TextMarshaler and fmt.Stringer are honored in that order, and
// numeric and bool values format the way strconv renders them. Nil values
// format as the empty string, nil pointers included; other pointers format
// as the value they point to.
//
// Data wider than spec.Width() is rejected with a *ColumnDataError rather
// than silently truncated; widths are counted in Unicode code points. Data
// containing a newline is rejected the same way.
func NewColumn(value any, spec ColumnSpec) (Column, error) {
	data, err := formatValue(value, spec.Width())
	if err != nil {
		return Column{}, &ColumnDataError{Column: spec.Name(), Cause: err}
	}
	if strings.ContainsRune(data, '\n') {
		return Column{}, &ColumnDataError{Column: spec.Name(), Cause: errLineBreak}
	}
	if n := utf8.RuneCountInString(data); n > spec.Width() {
		return Column{}, &ColumnDataError{Column: spec.Name(), Width: spec.Width(), Len: n}
	}
	return Column{spec: spec, data: data}, nil
}

// Spec returns the ColumnSpec the column was built against.
func (c Column) Spec() ColumnSpec { return c.spec }

// Data returns the formatted data before padding.
func (c Column) Data() string { return c.data }

// Shaped returns the data padded with the spec's fill character to exactly
// the spec width, on the side the alignment leaves open.
func (c Column) Shaped() string {
	return shape(c.data, c.spec)
}

func shape(data string, spec ColumnSpec) string {
	pad := spec.Width() - utf8.RuneCountInString(data)
	if pad <= 0 {
		return data
	}
	fill := strings.Repeat(string(spec.Fill()), pad)
	if spec.Align() == Right {
		return fill + data
	}
	return data + fill
}

// truncate cuts s to at most width runes.
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	return string([]rune(s)[:width])
}

func formatValue(value any, width int) (string, error) {
	// case nil matches only an untyped nil. A typed-nil pointer carries a
	// concrete type and would reach the interface cases with a nil receiver.
	if v := reflect.ValueOf(value); v.Kind() == reflect.Pointer && v.IsNil() {
		return "", nil
	}
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case Marshaler:
		return v.MarshalFixedWidth(width)
	case encoding.TextMarshaler:
		b, err := v.MarshalText()
		if err != nil {
			return "", err
		}
		return string(b), nil
	case fmt.Stringer:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", v), nil
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer {
			return formatValue(rv.Elem().Interface(), width)
		}
		return fmt.Sprintf("%v", v), nil
	}
}
