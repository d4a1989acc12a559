package fwf

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// Marshaler is the interface implemented by values that render their own
// column data. The column width is passed in so the value can size itself.
// The returned string must still fit the width; NewColumn rejects it
// otherwise.
type Marshaler interface {
	MarshalFixedWidth(width int) (string, error)
}

// Float is a float64 that fills its column, spending whatever width the
// integer part leaves over on decimal precision.
type Float float64

// MarshalFixedWidth implements Marshaler.
func (f Float) MarshalFixedWidth(width int) (string, error) {
	v := float64(f)
	if math.IsInf(v, 0) {
		return "", errors.Errorf("float %v does not fit width %d", v, width)
	}

	intLen := 2 // "0."
	switch {
	case f > 0:
		intLen = int(math.Log10(v)) + 2
	case f < 0:
		intLen = int(math.Log10(math.Abs(v))) + 3
	}
	if intLen-1 > width {
		return "", errors.Errorf("float %v does not fit width %d", v, width)
	}

	prec := width - intLen
	if prec < 0 {
		prec = 0
	}
	return strconv.FormatFloat(v, 'f', prec, 64), nil
}
