package errors

import (
	"fmt"

	"mica/internal/ast"
)

// Kind classifies an interpreter error. Every error is fatal to the
// run that produced it; the kind only drives reporting.
type Kind int

const (
	LEXICAL Kind = iota
	SYNTAX
	RUNTIME
)

func (k Kind) String() string {
	switch k {
	case LEXICAL:
		return "lexical error"
	case SYNTAX:
		return "syntax error"
	case RUNTIME:
		return "runtime error"
	default:
		return "error"
	}
}

// Error is the single error type crossing package boundaries in the
// interpreter. Position and Length locate the offending region for
// the reporter and for LSP diagnostics.
type Error struct {
	Kind     Kind
	Message  string
	Position ast.Position
	Length   int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func Lexicalf(pos ast.Position, length int, format string, args ...any) *Error {
	return &Error{Kind: LEXICAL, Message: fmt.Sprintf(format, args...), Position: pos, Length: length}
}

func Syntaxf(pos ast.Position, format string, args ...any) *Error {
	return &Error{Kind: SYNTAX, Message: fmt.Sprintf(format, args...), Position: pos, Length: 1}
}

func Runtimef(pos ast.Position, format string, args ...any) *Error {
	return &Error{Kind: RUNTIME, Message: fmt.Sprintf(format, args...), Position: pos, Length: 1}
}
