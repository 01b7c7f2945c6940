package editor

import (
	"strings"
	"unicode/utf8"
)

// A segment is a maximal run of digits and decimal points between operators,
// parentheses, or the ends of the text. It is the unit over which the
// one-decimal-point and no-leading-zero invariants are enforced.

// lastSegment returns the trailing segment of s, which may be empty.
func lastSegment(s string) string {
	i := len(s)
	for i > 0 {
		c := s[i-1]
		if c != '.' && (c < '0' || c > '9') {
			break
		}
		i--
	}
	return s[i:]
}

// endsInSegment reports whether s ends inside a numeric segment.
func endsInSegment(s string) bool {
	if s == "" {
		return false
	}
	c := s[len(s)-1]
	return c == '.' || '0' <= c && c <= '9'
}

// An operand locates the text the sign toggle operates on: the trailing
// segment, a trailing parenthesized group (with any function name), or
// either of those already negated.
type operand struct {
	// start is the index where the operand begins, including any sign
	// decoration. start == len(s) means there is no trailing operand.
	start int
	// wrapped indicates the -(x) form.
	wrapped bool
	// signed indicates a bare - prefix.
	signed bool
	// inner spans the operand text inside any sign decoration.
	inner span
}

type span struct {
	start, end int
}

// trailingOperand locates the operand at the end of s.
func trailingOperand(s string) operand {
	if !strings.HasSuffix(s, ")") {
		seg := lastSegment(s)
		start := len(s) - len(seg)
		if seg == "" {
			return operand{start: len(s)}
		}
		op := operand{start: start, inner: span{start, len(s)}}
		if start > 0 && s[start-1] == '-' && signPosition(s, start-1) {
			op.start--
			op.signed = true
		}
		return op
	}
	open := matchOpen(s)
	if open < 0 {
		return operand{start: len(s)}
	}
	// A function name glued to the group is part of the operand.
	name := open
	for name > 0 {
		r, sz := utf8.DecodeLastRuneInString(s[:name])
		if !isLetter(r) {
			break
		}
		name -= sz
	}
	if name == open && open > 0 && s[open-1] == '-' && signPosition(s, open-1) {
		// The -(x) wrap.
		return operand{start: open - 1, wrapped: true, inner: span{open + 1, len(s) - 1}}
	}
	return operand{start: name, inner: span{name, len(s)}}
}

// matchOpen returns the index of the open parenthesis matching the close at
// the end of s, or -1 if the parentheses are unbalanced.
func matchOpen(s string) int {
	depth := 0
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case ')':
			depth++
		case '(':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// signPosition reports whether a - at index i is a sign rather than a binary
// operator: it must sit at the start of the text, after an open parenthesis,
// or after another operator.
func signPosition(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return r == '(' || strings.ContainsRune("+-*/^×÷", r)
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}
