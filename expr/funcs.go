package expr

import (
	"math"
	"strconv"
)

// Func is a function from reals to reals. The named functions on the keypad
// are all monadic, so a Func takes exactly one operand.
type Func func(x float64) (float64, error)

// funcs is the set of function names the parser understands. Trigonometric
// functions operate in radians. log is base 10 and ln is natural.
var funcs = map[string]Func{
	"sin": func(x float64) (float64, error) { return math.Sin(x), nil },
	"cos": func(x float64) (float64, error) { return math.Cos(x), nil },
	"tan": func(x float64) (float64, error) { return math.Tan(x), nil },
	"log": func(x float64) (float64, error) {
		if x <= 0 {
			return 0, &DomainError{X: x, Func: "log"}
		}
		return math.Log10(x), nil
	},
	"ln": func(x float64) (float64, error) {
		if x <= 0 {
			return 0, &DomainError{X: x, Func: "ln"}
		}
		return math.Log(x), nil
	},
	"sqrt": func(x float64) (float64, error) {
		if x < 0 {
			return 0, &DomainError{X: x, Func: "sqrt"}
		}
		return math.Sqrt(x), nil
	},
}

// maxFactorial is the largest operand whose factorial is finite in float64.
const maxFactorial = 170

// factorial computes x! iteratively. The operand must be a non-negative
// integer no larger than maxFactorial.
func factorial(x float64) (float64, error) {
	if x < 0 || x != math.Trunc(x) || x > maxFactorial {
		return 0, &DomainError{X: x, Func: "!"}
	}
	r := 1.0
	for i := 2.0; i <= x; i++ {
		r *= i
	}
	return r, nil
}

// DomainError is an error returned when a function or operator is applied to
// an operand outside its domain, or when a result is not finite.
type DomainError struct {
	// X is the out-of-domain operand.
	X float64
	// Func is a name identifying the function or operator. It is empty when
	// the error describes a non-finite result.
	Func string
}

func (err *DomainError) Error() string {
	if err.Func == "" {
		return "non-finite result " + strconv.FormatFloat(err.X, 'g', -1, 64)
	}
	return strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain of " + err.Func
}
