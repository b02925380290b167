// errors.go — user-facing error values and source-snippet rendering.
//
// Three error families cross the engine boundary:
//
//	*LexError     "[line N] Error: message"
//	*ParseError   "[line N] Error at 'token': message"
//	*RuntimeError "Runtime error: message"
//
// Lex and parse errors abort the current expression; runtime errors abort
// evaluation and return control to the driver. WrapWithSource augments lex
// and parse errors with a numbered snippet of the offending line for
// terminal display; other errors pass through unchanged.
package dim

import (
	"fmt"
	"strings"
)

// LexError is an unexpected character or malformed number.
type LexError struct {
	Line int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Msg)
}

// ParseError is an unexpected or missing token. Tok is the offending lexeme,
// or empty when the error is at end of input.
type ParseError struct {
	Line int
	Tok  string
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Tok == "" {
		return fmt.Sprintf("[line %d] Error at end: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("[line %d] Error at '%s': %s", e.Line, e.Tok, e.Msg)
}

// ErrKind classifies runtime failures.
type ErrKind int

const (
	ErrUndefinedVariable ErrKind = iota
	ErrInvalidOperand
	ErrInvalidOperands
	ErrDivisionByZero
	ErrUnsupportedOperator
	ErrNonIntegerDim
)

func (k ErrKind) String() string {
	switch k {
	case ErrUndefinedVariable:
		return "UndefinedVariable"
	case ErrInvalidOperand:
		return "InvalidOperand"
	case ErrInvalidOperands:
		return "InvalidOperands"
	case ErrDivisionByZero:
		return "DivisionByZero"
	case ErrUnsupportedOperator:
		return "UnsupportedOperator"
	case ErrNonIntegerDim:
		return "NonIntegerDim"
	}
	return "Unknown"
}

// RuntimeError aborts evaluation of the current expression.
type RuntimeError struct {
	Kind ErrKind
	Msg  string
}

func (e *RuntimeError) Error() string {
	return "Runtime error: " + e.Msg
}

// WrapWithSource returns an error whose message includes a numbered snippet
// of the source line a lex or parse error points at, with one line of
// context on each side. Other errors are returned unchanged.
func WrapWithSource(err error, src string) error {
	var line int
	switch e := err.(type) {
	case *LexError:
		line = e.Line
	case *ParseError:
		line = e.Line
	default:
		return err
	}
	return fmt.Errorf("%s", snippet(src, line, err.Error()))
}

func snippet(src string, line int, header string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return strings.TrimRight(b.String(), "\n")
}
