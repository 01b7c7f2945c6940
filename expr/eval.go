package expr

import (
	"errors"
	"math"
	"strconv"
)

// Eval evaluates the expression. A non-finite result is a DomainError, so a
// successful evaluation always produces a finite value.
func (e *Expr) Eval() (float64, error) {
	v, err := e.n.eval()
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, &DomainError{X: v}
	}
	return v, nil
}

// eval computes the value of the subtree rooted at n.
func (n *node) eval() (float64, error) {
	switch n.kind {
	case nodeNum:
		v, err := strconv.ParseFloat(n.name, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			// The lexer only produces literals ParseFloat accepts; a literal
			// too large for float64 overflows to infinity, which Eval
			// rejects at the end.
			panic("expr: invalid number: " + n.name + " (" + err.Error() + ")")
		}
		return v, nil
	case nodeCall:
		x, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		return n.fn(x)
	case nodeNeg:
		x, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		return -x, nil
	case nodeFact:
		x, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		return factorial(x)
	case nodeAdd:
		l, r, err := n.eval2()
		if err != nil {
			return 0, err
		}
		return l + r, nil
	case nodeSub:
		l, r, err := n.eval2()
		if err != nil {
			return 0, err
		}
		return l - r, nil
	case nodeMul:
		l, r, err := n.eval2()
		if err != nil {
			return 0, err
		}
		return l * r, nil
	case nodeDiv:
		l, r, err := n.eval2()
		if err != nil {
			return 0, err
		}
		if r == 0 {
			return 0, &DomainError{X: l, Func: "÷"}
		}
		return l / r, nil
	case nodePow:
		l, r, err := n.eval2()
		if err != nil {
			return 0, err
		}
		return math.Pow(l, r), nil
	case nodeNop:
		return n.left.eval()
	default:
		panic("expr: invalid AST node " + n.kind.String())
	}
}

// eval2 evaluates both operands of a binary node.
func (n *node) eval2() (l, r float64, err error) {
	l, err = n.left.eval()
	if err != nil {
		return 0, 0, err
	}
	r, err = n.right.eval()
	if err != nil {
		return 0, 0, err
	}
	return l, r, nil
}

// Evaluate is a shortcut to parse an expression, evaluate it, and render the
// result in canonical display form. On any error the string result is
// Invalid.
func Evaluate(src string) (string, error) {
	e, err := Parse(src)
	if err != nil {
		return Invalid, err
	}
	v, err := e.Eval()
	if err != nil {
		return Invalid, err
	}
	return Format(v), nil
}
