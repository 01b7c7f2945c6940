// Package editor implements the calculator's keypad state machine.
//
// An Editor owns the expression text under construction and mutates it one
// key press at a time, keeping it well formed: at most one decimal point per
// numeric segment, no redundant leading zeros, reversible sign negation.
// Presses that would violate an editing invariant are silent no-ops. The
// editor has no dependency on any rendering layer; callers read Expression,
// Result, and Preview after each press.
package editor

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/emtaylor1993/Simple-Calculator/expr"
	"github.com/emtaylor1993/Simple-Calculator/store"
)

const (
	maxHistory = 20
	maxUndo    = 100
)

// Store keys.
const (
	historyKey = "history"
	memoryKey  = "memory"
)

// Editor is the per-session calculator state. It is not safe to use an
// Editor concurrently.
type Editor struct {
	exprText      string
	lastResult    string
	justEvaluated bool

	memory    float64
	hasMemory bool

	history []Entry

	undoStack []string
	redoStack []string

	store store.Store
}

// Option is an option used when creating an editor.
type Option interface {
	option(*Editor)
}

type storeopt struct {
	s store.Store
}

func (o storeopt) option(e *Editor) {
	e.store = o.s
}

// WithStore sets the persistence store. Memory and history are rehydrated
// from it at construction, and every change to either is written back.
// Writes are best effort: a failed write never rolls back editor state.
func WithStore(s store.Store) Option {
	return storeopt{s}
}

// New creates an editor, applying the given options in order.
func New(opts ...Option) *Editor {
	e := &Editor{}
	for _, opt := range opts {
		opt.option(e)
	}
	if e.store != nil {
		if m, ok, err := e.store.LoadFloat(memoryKey); err == nil && ok {
			e.memory, e.hasMemory = m, true
		}
		if lines, err := e.store.LoadStringList(historyKey); err == nil {
			e.history = parseHistory(lines)
		}
	}
	return e
}

// Press applies a single key press. It is the sole mutation entry point.
func (e *Editor) Press(t Token) {
	switch t.Key {
	case KeyUndo:
		e.undo()
		return
	case KeyRedo:
		e.redo()
		return
	}
	before := e.exprText
	switch t.Key {
	case KeyDigit:
		e.digit(t.Digit)
	case KeyDot:
		e.dot()
	case KeyOperator:
		e.operator(string(t.Op))
	case KeyPercent:
		e.percent()
	case KeyOpen:
		e.paren("(")
	case KeyClose:
		e.paren(")")
	case KeySign:
		e.toggleSign()
	case KeyBackspace:
		e.backspace()
	case KeyClearEntry, KeyClearAll:
		e.clear()
	case KeyFunction:
		e.function(t.Func)
	case KeyEquals:
		e.equals()
	case KeyMemClear:
		e.memory, e.hasMemory = 0, true
		e.saveMemory()
	case KeyMemRecall:
		e.memRecall()
	case KeyMemAdd:
		e.memAdjust(1)
	case KeyMemSub:
		e.memAdjust(-1)
	default:
		panic("editor: unknown key " + t.Key.String())
	}
	if e.exprText != before {
		e.pushUndo(before)
	}
}

// Expression returns the expression text under construction.
func (e *Editor) Expression() string {
	return e.exprText
}

// Result returns the result of the last evaluation: a canonical numeral,
// expr.Invalid, or the empty string if nothing has been evaluated.
func (e *Editor) Result() string {
	return e.lastResult
}

// Preview evaluates the in-progress expression for live display. A failed
// preview is the empty string, never an error state.
func (e *Editor) Preview() string {
	if e.exprText == "" || e.justEvaluated {
		return ""
	}
	r, err := expr.Evaluate(e.exprText)
	if err != nil {
		return ""
	}
	return r
}

// Memory returns the memory value and whether it has been set.
func (e *Editor) Memory() (float64, bool) {
	return e.memory, e.hasMemory
}

func (e *Editor) digit(d byte) {
	if e.justEvaluated {
		e.exprText = string(d)
		e.lastResult = ""
		e.justEvaluated = false
		return
	}
	if seg := lastSegment(e.exprText); seg == "0" {
		if d == '0' {
			// No duplicate leading zero.
			return
		}
		// A non-zero digit replaces a lone 0 so 03 cannot arise.
		e.exprText = e.exprText[:len(e.exprText)-1] + string(d)
		return
	}
	e.exprText += string(d)
}

func (e *Editor) dot() {
	if e.justEvaluated {
		e.exprText = "0."
		e.lastResult = ""
		e.justEvaluated = false
		return
	}
	if strings.Contains(lastSegment(e.exprText), ".") {
		return
	}
	e.exprText += "."
}

func (e *Editor) operator(op string) {
	if e.justEvaluated {
		// Continuation mode: the operator applies to the last result.
		e.exprText = e.lastResult + op
		e.justEvaluated = false
		return
	}
	e.exprText += op
}

func (e *Editor) paren(p string) {
	if e.justEvaluated {
		e.exprText = e.lastResult + p
		e.justEvaluated = false
		return
	}
	e.exprText += p
}

func (e *Editor) percent() {
	if e.justEvaluated {
		e.exprText = e.lastResult + "%"
		e.justEvaluated = false
		return
	}
	if !endsInSegment(e.exprText) {
		// Percent is a suffix on a numeric segment only.
		return
	}
	e.exprText += "%"
}

func (e *Editor) toggleSign() {
	op := trailingOperand(e.exprText)
	if op.start == len(e.exprText) {
		return
	}
	if isZero(e.exprText[op.inner.start:op.inner.end]) {
		// Negating a zero value is a no-op.
		return
	}
	head := e.exprText[:op.start]
	if op.wrapped {
		// -(x) -> x
		e.exprText = head + e.exprText[op.inner.start:op.inner.end]
		return
	}
	if op.signed {
		// -x -> x
		e.exprText = head + e.exprText[op.start+1:]
		return
	}
	// x -> -(x)
	e.exprText = head + "-(" + e.exprText[op.start:] + ")"
}

func (e *Editor) backspace() {
	if e.exprText == "" && e.lastResult == "" {
		e.reset()
		return
	}
	e.justEvaluated = false
	if e.exprText == "" {
		return
	}
	_, sz := utf8.DecodeLastRuneInString(e.exprText)
	e.exprText = e.exprText[:len(e.exprText)-sz]
}

// reset is the full-reset role of the backspace key: everything clears,
// including memory and history, and the cleared values persist.
func (e *Editor) reset() {
	e.clear()
	e.memory, e.hasMemory = 0, false
	e.history = nil
	e.undoStack, e.redoStack = nil, nil
	if e.store != nil {
		e.store.SaveFloat(memoryKey, 0)
		e.store.SaveStringList(historyKey, nil)
	}
}

func (e *Editor) clear() {
	e.exprText = ""
	e.lastResult = ""
	e.justEvaluated = false
}

func (e *Editor) function(name string) {
	target := e.exprText
	if e.justEvaluated {
		target = e.lastResult
		e.justEvaluated = false
	}
	if target == "" {
		target = "0"
	}
	switch name {
	case "square":
		e.exprText = "(" + target + ")^2"
	case "factorial":
		e.exprText = "(" + target + ")!"
	default:
		e.exprText = name + "(" + target + ")"
	}
}

func (e *Editor) equals() {
	r, err := expr.Evaluate(e.exprText)
	if err != nil {
		e.lastResult = expr.Invalid
		return
	}
	e.lastResult = r
	e.justEvaluated = true
	e.history = append([]Entry{{Expression: e.exprText, Result: r}}, e.history...)
	if len(e.history) > maxHistory {
		e.history = e.history[:maxHistory]
	}
	e.saveHistory()
}

func (e *Editor) memRecall() {
	if !e.hasMemory {
		return
	}
	v := strconv.FormatFloat(e.memory, 'f', -1, 64)
	if e.justEvaluated {
		e.exprText = v
		e.lastResult = ""
		e.justEvaluated = false
		return
	}
	e.exprText += v
}

// memAdjust adds sign times the last result into memory. The last result
// must be a valid prior number.
func (e *Editor) memAdjust(sign float64) {
	v, err := strconv.ParseFloat(e.lastResult, 64)
	if err != nil {
		return
	}
	e.memory += sign * v
	e.hasMemory = true
	e.saveMemory()
}

func (e *Editor) saveMemory() {
	if e.store != nil {
		e.store.SaveFloat(memoryKey, e.memory)
	}
}

func (e *Editor) saveHistory() {
	if e.store != nil {
		e.store.SaveStringList(historyKey, formatHistory(e.history))
	}
}

// pushUndo records the pre-edit expression text. A push that would duplicate
// the current top is skipped. Any recorded edit clears the redo stack.
func (e *Editor) pushUndo(text string) {
	if n := len(e.undoStack); n == 0 || e.undoStack[n-1] != text {
		e.undoStack = append(e.undoStack, text)
		if len(e.undoStack) > maxUndo {
			e.undoStack = e.undoStack[1:]
		}
	}
	e.redoStack = nil
}

func (e *Editor) undo() {
	n := len(e.undoStack)
	if n == 0 {
		return
	}
	e.redoStack = append(e.redoStack, e.exprText)
	e.exprText = e.undoStack[n-1]
	e.undoStack = e.undoStack[:n-1]
	e.lastResult = ""
	e.justEvaluated = false
}

func (e *Editor) redo() {
	n := len(e.redoStack)
	if n == 0 {
		return
	}
	e.undoStack = append(e.undoStack, e.exprText)
	e.exprText = e.redoStack[n-1]
	e.redoStack = e.redoStack[:n-1]
	e.lastResult = ""
	e.justEvaluated = false
}

// isZero reports whether an operand's text normalizes to the value zero.
// Text that does not evaluate is not zero; toggling it is still textual.
func isZero(operand string) bool {
	if v, err := strconv.ParseFloat(operand, 64); err == nil {
		return v == 0
	}
	r, err := expr.Evaluate(operand)
	return err == nil && r == "0"
}
