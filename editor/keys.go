package editor

// Key identifies a calculator key.
type Key int

const (
	// KeyDigit is a digit key; Token.Digit holds '0' through '9'.
	KeyDigit Key = iota
	// KeyDot is the decimal point key.
	KeyDot
	// KeyOperator is a binary operator key; Token.Op holds one of + - × ÷.
	KeyOperator
	// KeyPercent appends a percent suffix to the current segment.
	KeyPercent
	// KeyOpen and KeyClose are the parenthesis keys.
	KeyOpen
	KeyClose
	// KeySign toggles the sign of the trailing operand.
	KeySign
	// KeyBackspace deletes the last character, or fully resets the
	// calculator when there is nothing to delete.
	KeyBackspace
	// KeyClearEntry and KeyClearAll clear the expression and result.
	KeyClearEntry
	KeyClearAll
	// KeyFunction wraps the expression in a function; Token.Func holds the
	// name.
	KeyFunction
	// KeyEquals evaluates the expression and commits the result.
	KeyEquals
	// KeyMemClear, KeyMemRecall, KeyMemAdd, and KeyMemSub operate on the
	// memory register.
	KeyMemClear
	KeyMemRecall
	KeyMemAdd
	KeyMemSub
	// KeyUndo and KeyRedo restore expression snapshots.
	KeyUndo
	KeyRedo
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Key -trimprefix=Key

// Token is a single key press.
type Token struct {
	Key   Key
	Digit byte   // '0'..'9' for KeyDigit
	Op    rune   // '+', '-', '×', '÷' for KeyOperator
	Func  string // function name for KeyFunction
}

// Digit returns the press token for a digit key.
func Digit(n int) Token {
	if n < 0 || n > 9 {
		panic("editor: digit out of range")
	}
	return Token{Key: KeyDigit, Digit: byte('0' + n)}
}

// Op returns the press token for a binary operator key.
func Op(r rune) Token {
	return Token{Key: KeyOperator, Op: r}
}

// Fn returns the press token for a function key. The names sin, cos, tan,
// log, ln, and sqrt wrap the expression as name(x); square renders (x)^2 and
// factorial renders (x)!.
func Fn(name string) Token {
	return Token{Key: KeyFunction, Func: name}
}

// Press tokens for the keys that carry no payload.
var (
	Dot        = Token{Key: KeyDot}
	Percent    = Token{Key: KeyPercent}
	Open       = Token{Key: KeyOpen}
	Close      = Token{Key: KeyClose}
	Sign       = Token{Key: KeySign}
	Backspace  = Token{Key: KeyBackspace}
	ClearEntry = Token{Key: KeyClearEntry}
	ClearAll   = Token{Key: KeyClearAll}
	Equals     = Token{Key: KeyEquals}
	MemClear   = Token{Key: KeyMemClear}
	MemRecall  = Token{Key: KeyMemRecall}
	MemAdd     = Token{Key: KeyMemAdd}
	MemSub     = Token{Key: KeyMemSub}
	Undo       = Token{Key: KeyUndo}
	Redo       = Token{Key: KeyRedo}
)
