package fwf

import (
	"math"
	"testing"
)

var _ Marshaler = Float(0)

func TestFloatMarshalFixedWidth(t *testing.T) {
	for _, tt := range []struct {
		name      string
		f         Float
		width     int
		data      string
		shouldErr bool
	}{
		{name: "zero", f: 0, width: 10, data: "0.00000000"},
		{name: "whole number", f: 11, width: 10, data: "11.0000000"},
		{name: "negative whole number", f: -11, width: 10, data: "-11.000000"},
		{name: "rational number", f: 11.234, width: 10, data: "11.2340000"},
		{name: "negative rational number", f: -11.234, width: 10, data: "-11.234000"},
		{name: "zero precision", f: 1234567891.234, width: 10, data: "1234567891"},
		{name: "negative zero precision", f: -123456789.234, width: 10, data: "-123456789"},
		{name: "too long", f: 12345678912.234, width: 10, shouldErr: true},
		{name: "negative too long", f: -1234567891.234, width: 10, shouldErr: true},
		{name: "positive infinity", f: Float(math.Inf(1)), width: 10, shouldErr: true},
		{name: "negative infinity", f: Float(math.Inf(-1)), width: 10, shouldErr: true},
		{name: "not a number", f: Float(math.NaN()), width: 10, data: "NaN"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.f.MarshalFixedWidth(tt.width)
			if (err != nil) != tt.shouldErr {
				t.Errorf("MarshalFixedWidth() err have %v, want %v (%v)", err != nil, tt.shouldErr, err)
			}
			if data != tt.data {
				t.Errorf("MarshalFixedWidth() data have %q, want %q", data, tt.data)
			}
		})
	}
}
