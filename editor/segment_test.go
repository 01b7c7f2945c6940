package editor

import "testing"

func TestLastSegment(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"", ""},
		{"123", "123"},
		{"1.5", "1.5"},
		{"1+2", "2"},
		{"1+", ""},
		{"(1+2)", ""},
		{"sin(30", "30"},
		{"1×0.5", "0.5"},
		{"-(4", "4"},
		{"20%", ""},
	}
	for _, c := range cases {
		if got := lastSegment(c.src); got != c.want {
			t.Errorf("lastSegment(%q) = %q, want %q", c.src, got, c.want)
		}
	}
}

func TestTrailingOperand(t *testing.T) {
	cases := []struct {
		src     string
		start   int
		wrapped bool
		signed  bool
		inner   string
	}{
		{"4", 0, false, false, "4"},
		{"1+4", 2, false, false, "4"},
		{"-5", 0, false, true, "5"},
		{"3+-2.5", 2, false, true, "2.5"},
		{"-(4)", 0, true, false, "4"},
		{"1+-(4)", 2, true, false, "4"},
		{"(1+2)", 0, false, false, "(1+2)"},
		{"sin(30)", 0, false, false, "sin(30)"},
		{"-(sin(30))", 0, true, false, "sin(30)"},
		{"2×-(1+1)", 3, true, false, "1+1"},
		// A binary minus is not a sign.
		{"5-4", 2, false, false, "4"},
	}
	for _, c := range cases {
		op := trailingOperand(c.src)
		if op.start != c.start || op.wrapped != c.wrapped || op.signed != c.signed {
			t.Errorf("trailingOperand(%q) = %+v, want start=%d wrapped=%v signed=%v",
				c.src, op, c.start, c.wrapped, c.signed)
		}
		if got := c.src[op.inner.start:op.inner.end]; got != c.inner {
			t.Errorf("trailingOperand(%q): inner = %q, want %q", c.src, got, c.inner)
		}
	}
}

func TestTrailingOperandAbsent(t *testing.T) {
	for _, src := range []string{"", "1+", "(", "20%"} {
		if op := trailingOperand(src); op.start != len(src) {
			t.Errorf("trailingOperand(%q) = %+v, want no operand", src, op)
		}
	}
}
