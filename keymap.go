package main

import (
	"fmt"

	"github.com/emtaylor1993/Simple-Calculator/editor"
)

// words maps named keys to press tokens.
var words = map[string]editor.Token{
	"sin":    editor.Fn("sin"),
	"cos":    editor.Fn("cos"),
	"tan":    editor.Fn("tan"),
	"log":    editor.Fn("log"),
	"ln":     editor.Fn("ln"),
	"sqrt":   editor.Fn("sqrt"),
	"square": editor.Fn("square"),
	"fact":   editor.Fn("factorial"),
	"sign":   editor.Sign,
	"del":    editor.Backspace,
	"ce":     editor.ClearEntry,
	"ac":     editor.ClearAll,
	"mc":     editor.MemClear,
	"mr":     editor.MemRecall,
	"m+":     editor.MemAdd,
	"m-":     editor.MemSub,
	"undo":   editor.Undo,
	"redo":   editor.Redo,
}

// presses translates one input field into press tokens: either a named key
// or a run of single-rune keys. * and / map to the display operators × and ÷.
func presses(field string) ([]editor.Token, error) {
	if t, ok := words[field]; ok {
		return []editor.Token{t}, nil
	}
	var toks []editor.Token
	for _, r := range field {
		switch {
		case '0' <= r && r <= '9':
			toks = append(toks, editor.Digit(int(r-'0')))
		case r == '.':
			toks = append(toks, editor.Dot)
		case r == '+' || r == '-' || r == '×' || r == '÷':
			toks = append(toks, editor.Op(r))
		case r == '*':
			toks = append(toks, editor.Op('×'))
		case r == '/':
			toks = append(toks, editor.Op('÷'))
		case r == '%':
			toks = append(toks, editor.Percent)
		case r == '(':
			toks = append(toks, editor.Open)
		case r == ')':
			toks = append(toks, editor.Close)
		case r == '=':
			toks = append(toks, editor.Equals)
		default:
			return nil, fmt.Errorf("unknown key %q", r)
		}
	}
	return toks, nil
}
