package expr_test

import (
	"testing"

	"github.com/emtaylor1993/Simple-Calculator/expr"
)

func FuzzEvaluate(f *testing.F) {
	f.Add("2+3×4")
	f.Add("sqrt(16)")
	f.Add("20%")
	f.Add(".5+(1)!")
	f.Add("3..5+2")
	f.Fuzz(func(t *testing.T, s string) {
		// Evaluation must return errors as values, never panic, and the
		// display string must be a numeral exactly when there is no error.
		got, err := expr.Evaluate(s)
		if err != nil && got != expr.Invalid {
			t.Errorf("Evaluate(%q) = %q with error %v", s, got, err)
		}
		if err == nil && got == expr.Invalid {
			t.Errorf("Evaluate(%q) = %q with no error", s, got)
		}
	})
}
