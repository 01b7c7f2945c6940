package expr

import (
	"math"
	"strconv"
	"strings"
)

// Invalid is the single outward result for any expression that cannot be
// evaluated.
const Invalid = "Invalid"

// Format renders a value in the calculator's canonical display form: fixed
// six digits after the decimal point, then trailing zeros and a trailing
// point stripped. Non-finite values render as Invalid.
func Format(x float64) string {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return Invalid
	}
	s := strconv.FormatFloat(x, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		// Rounding can leave a bare negative zero.
		s = "0"
	}
	return s
}
