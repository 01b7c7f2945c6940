package main

import (
	"reflect"
	"testing"

	"github.com/emtaylor1993/Simple-Calculator/editor"
)

func TestPresses(t *testing.T) {
	cases := []struct {
		field string
		want  []editor.Token
	}{
		{"12+", []editor.Token{editor.Digit(1), editor.Digit(2), editor.Op('+')}},
		{"3.5", []editor.Token{editor.Digit(3), editor.Dot, editor.Digit(5)}},
		{"*", []editor.Token{editor.Op('×')}},
		{"/", []editor.Token{editor.Op('÷')}},
		{"(1)%=", []editor.Token{editor.Open, editor.Digit(1), editor.Close, editor.Percent, editor.Equals}},
		{"sqrt", []editor.Token{editor.Fn("sqrt")}},
		{"fact", []editor.Token{editor.Fn("factorial")}},
		{"m+", []editor.Token{editor.MemAdd}},
		{"undo", []editor.Token{editor.Undo}},
	}
	for _, c := range cases {
		got, err := presses(c.field)
		if err != nil {
			t.Errorf("presses(%q): unexpected error %v", c.field, err)
			continue
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("presses(%q) = %v, want %v", c.field, got, c.want)
		}
	}
	if _, err := presses("?"); err == nil {
		t.Error("presses accepted an unknown key")
	}
}

func TestPressesDriveEditor(t *testing.T) {
	ed := editor.New()
	for _, field := range []string{"1+2", "=", "+4", "="} {
		toks, err := presses(field)
		if err != nil {
			t.Fatal(err)
		}
		for _, tok := range toks {
			ed.Press(tok)
		}
	}
	if got := ed.Result(); got != "7" {
		t.Errorf("result = %q, want %q", got, "7")
	}
}
