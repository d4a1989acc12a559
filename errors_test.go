package fwf

import (
	"errors"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	for _, tt := range []struct {
		name string
		err  error
		want string
	}{
		{
			name: "invalid spec",
			err:  &InvalidSpecError{Name: "age", Field: "width", Reason: "must be at least 1, got 0"},
			want: `fwf: invalid spec for column "age": width must be at least 1, got 0`,
		},
		{
			name: "invalid spec without name",
			err:  &InvalidSpecError{Field: "name", Reason: "must not be empty"},
			want: "fwf: invalid column spec: name must not be empty",
		},
		{
			name: "column data oversize",
			err:  &ColumnDataError{Column: "name", Width: 5, Len: 12},
			want: `fwf: data for column "name" is 12 characters, width is 5`,
		},
		{
			name: "column data cause",
			err:  &ColumnDataError{Column: "price", Cause: errors.New("boom")},
			want: `fwf: invalid data for column "price": boom`,
		},
		{
			name: "line length",
			err:  &LineLengthError{Line: 3, Want: 13, Got: 5},
			want: "fwf: line 3 is 5 characters, layout expects 13",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if have := tt.err.Error(); have != tt.want {
				t.Errorf("Error() have %q, want %q", have, tt.want)
			}
		})
	}
}

func TestColumnDataErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &ColumnDataError{Column: "x", Cause: cause}
	if !errors.Is(err, cause) {
		t.Error("errors.Is() did not find the cause")
	}
}
