package expr

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "1", "(1)"},
		{"real", "1.5", "(1.5)"},
		{"add", "2+3", "((2) + (3))"},
		{"sub", "2-3", "((2) - (3))"},
		{"mul", "2×3", "((2) * (3))"},
		{"div", "2÷3", "((2) / (3))"},
		{"ascii-mul", "2*3", "((2) * (3))"},
		{"ascii-div", "2/3", "((2) / (3))"},
		{"precedence", "2+3×4", "((2) + ((3) * (4)))"},
		{"precedence-left", "10-2×3", "((10) - ((2) * (3)))"},
		{"left-assoc", "4-5-6", "(((4) - (5)) - (6))"},
		{"pow-right", "2^3^2", "((2) ^ ((3) ^ (2)))"},
		{"parens", "(2+3)×4", "(((2) + (3)) * (4))"},
		{"neg", "-(4)", "(-(4))"},
		{"neg-binds-above-pow", "-2^2", "((-(2)) ^ (2))"},
		{"plus", "+4", "(+(4))"},
		{"double-neg", "5--(3)", "((5) - (-(3)))"},
		{"call", "sqrt(16)", "(sqrt(16))"},
		{"call-bare", "sqrt 2", "(sqrt(2))"},
		{"call-bare-binds", "sin 2+3", "((sin(2)) + (3))"},
		{"call-nested", "sin(cos(0))", "(sin(cos(0)))"},
		{"square", "(4)^2", "((4) ^ (2))"},
		{"factorial", "(5)!", "((5)!)"},
		{"factorial-tight", "2+3!", "((2) + ((3)!))"},
		{"factorial-double", "3!!", "(((3)!)!)"},
		{"implicit-mul", "2(3)", "((2) * (3))"},
		{"implicit-mul-groups", "(1+1)(3)", "(((1) + (1)) * (3))"},
		{"percent", "20%", "((20) * (0.01))"},
		{"percent-operand", "3+20%×5", "((3) + (((20) * (0.01)) * (5)))"},
		{"leading-point", ".5+2", "((0.5) + (2))"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := Parse(c.src)
			if err != nil {
				t.Fatalf("parsing %q: unexpected error %v", c.src, err)
			}
			if got := e.String(); got != c.want {
				t.Errorf("parsing %q: want %s, got %s", c.src, c.want, got)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"empty", "", &EmptyExpressionError{}},
		{"spaces", "  ", &EmptyExpressionError{}},
		{"empty-parens", "()", &EmptyExpressionError{}},
		{"empty-call", "sin()", &EmptyExpressionError{}},
		{"dangling-op", "1+", &EmptyExpressionError{}},
		{"dangling-op-in-parens", "(1+)", &EmptyExpressionError{}},
		{"unary-misuse", "+×2", &OperatorError{}},
		{"binary-misuse", "×2", &OperatorError{}},
		{"postfix-misuse", "!2", &OperatorError{}},
		{"unclosed", "(1", &BracketError{}},
		{"unclosed-call", "sqrt(1", &BracketError{}},
		{"unopened", "1)", &BracketError{}},
		{"lone-close", ")", &BracketError{}},
		{"unknown-func", "abc(2)", &FuncError{}},
		{"bad-rune", "2$", &LexError{}},
		{"double-point", "3..5+2", &LexError{}},
		{"stray-percent", "%", &LexError{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(c.src)
			if err == nil {
				t.Fatalf("parsing %q: expected error", c.src)
			}
			// Every input error carries a position.
			var ie InputError
			if !errors.As(err, &ie) {
				t.Errorf("parsing %q: error %v does not implement InputError", c.src, err)
			}
			if !sameKind(err, c.want) {
				t.Errorf("parsing %q: want error like %T, got %T (%v)", c.src, c.want, err, err)
			}
		})
	}
}

// sameKind reports whether err is the same concrete error type as want.
func sameKind(err, want error) bool {
	switch want.(type) {
	case *EmptyExpressionError:
		var e *EmptyExpressionError
		return errors.As(err, &e)
	case *OperatorError:
		var e *OperatorError
		return errors.As(err, &e)
	case *BracketError:
		var e *BracketError
		return errors.As(err, &e)
	case *FuncError:
		var e *FuncError
		return errors.As(err, &e)
	case *LexError:
		var e *LexError
		return errors.As(err, &e)
	default:
		return false
	}
}
