package editor

import (
	"strings"
	"testing"
)

func FuzzPress(f *testing.F) {
	f.Add("1+2=")
	f.Add("00.5s%")
	f.Add("((((")
	f.Add("1+2=+4=")
	f.Fuzz(func(t *testing.T, script string) {
		// MemRecall is absent: it appends a stored numeral verbatim, which
		// may legally extend a segment past the editing invariants below.
		tokens := []Token{
			Dot, Percent, Open, Close, Sign, Backspace, ClearEntry,
			ClearAll, Equals, MemClear, MemAdd, MemSub,
			Undo, Redo, Op('+'), Op('-'), Op('×'), Op('÷'),
			Fn("sin"), Fn("sqrt"), Fn("square"), Fn("factorial"),
		}
		e := New()
		for _, b := range []byte(script) {
			if '0' <= b && b <= '9' {
				e.Press(Digit(int(b - '0')))
			} else {
				e.Press(tokens[int(b)%len(tokens)])
			}
			// Editing invariants: the trailing segment never holds two
			// points, and no segment starts 0 followed by another digit.
			seg := lastSegment(e.Expression())
			if strings.Count(seg, ".") > 1 {
				t.Fatalf("segment %q has multiple decimal points", seg)
			}
			if len(seg) > 1 && seg[0] == '0' && seg[1] != '.' {
				t.Fatalf("segment %q has a redundant leading zero", seg)
			}
		}
	})
}
