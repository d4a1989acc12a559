package fwf

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	// ErrInvalidRow is returned by FileHandler.AddRow when handed a nil row.
	ErrInvalidRow = errors.New("fwf: nil row")

	// ErrEmptyExport is returned when an export is attempted with no rows
	// queued. Nothing is written in that case.
	ErrEmptyExport = errors.New("fwf: no rows to export")

	// ErrEmptyLayout is returned by decode when the layout has no columns.
	ErrEmptyLayout = errors.New("fwf: layout has no columns")
)

// errLineBreak is the cause recorded in a ColumnDataError when a value's
// string form contains a newline, which would split the record across
// physical lines.
var errLineBreak = errors.New("value contains a line break")

// An InvalidSpecError describes a column specification rejected at
// construction. Field names the offending field.
type InvalidSpecError struct {
	Name   string // column name, when one was given
	Field  string // spec field that failed validation
	Reason string
}

func (e *InvalidSpecError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("fwf: invalid column spec: %s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("fwf: invalid spec for column %q: %s %s", e.Name, e.Field, e.Reason)
}

// A ColumnDataError describes a value that cannot be bound to its column:
// its string form is wider than the column, or converting it failed.
type ColumnDataError struct {
	Column string
	Width  int   // declared column width
	Len    int   // character count of the oversized value
	Cause  error // conversion failure, when the value could not be formatted
}

func (e *ColumnDataError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fwf: invalid data for column %q: %v", e.Column, e.Cause)
	}
	return fmt.Sprintf("fwf: data for column %q is %d characters, width is %d", e.Column, e.Len, e.Width)
}

func (e *ColumnDataError) Unwrap() error { return e.Cause }

// A LineLengthError reports a decoded line whose character count does not
// match the layout's total width. Lines are numbered from 1.
type LineLengthError struct {
	Line int // 1-based line number within the input
	Want int // layout total width
	Got  int // character count of the line
}

func (e *LineLengthError) Error() string {
	return fmt.Sprintf("fwf: line %d is %d characters, layout expects %d", e.Line, e.Got, e.Want)
}
