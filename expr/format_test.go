package expr

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		x    float64
		want string
	}{
		{4, "4"},
		{2.5, "2.5"},
		{0, "0"},
		{-3, "-3"},
		{0.1, "0.1"},
		{1.0 / 3.0, "0.333333"},
		{2.0 / 3.0, "0.666667"},
		{1234567.891, "1234567.891"},
		{3.5 + 1.2, "4.7"},
		// values below the display precision round to zero
		{1e-7, "0"},
		{-1e-7, "0"},
		{math.Copysign(0, -1), "0"},
		// non-finite values are Invalid
		{math.Inf(1), Invalid},
		{math.Inf(-1), Invalid},
		{math.NaN(), Invalid},
	}
	for _, c := range cases {
		if got := Format(c.x); got != c.want {
			t.Errorf("Format(%g) = %q, want %q", c.x, got, c.want)
		}
	}
}
