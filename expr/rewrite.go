package expr

// normalize applies the textual rewrites that run before tokenizing:
//
//	.5       -> 0.5      a numeric run starting with a bare point
//	20%      -> (20*0.01)  a percent suffix on a numeric literal
//
// The percent rewrite applies to the innermost trailing literal only, so
// 50%% leaves the second % in place for the lexer to reject.
func normalize(src string) string {
	out := make([]byte, 0, len(src)+8)
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case c == '.' && !endsNumeric(out):
			out = append(out, '0', '.')
		case c == '%':
			s := litStart(out)
			if s == len(out) {
				// No literal to rewrite. The lexer reports the stray %.
				out = append(out, c)
				break
			}
			lit := string(out[s:])
			out = append(out[:s], '(')
			out = append(out, lit...)
			out = append(out, "*0.01)"...)
		default:
			out = append(out, c)
		}
	}
	return string(out)
}

// endsNumeric reports whether out ends with a digit or a decimal point.
func endsNumeric(out []byte) bool {
	if len(out) == 0 {
		return false
	}
	c := out[len(out)-1]
	return c == '.' || '0' <= c && c <= '9'
}

// litStart returns the index where the trailing numeric literal of out
// begins, or len(out) if out does not end with a literal.
func litStart(out []byte) int {
	s := len(out)
	for s > 0 {
		c := out[s-1]
		if c != '.' && (c < '0' || c > '9') {
			break
		}
		s--
	}
	return s
}
