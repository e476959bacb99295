package interp

import (
	"strings"

	"mica/internal/errors"
	"mica/internal/parser"
	"mica/internal/value"
)

// Run executes a full program: every non-blank line is lexed, parsed
// and evaluated in order against one shared scope, stopping at the
// first error. The result is the value of the most recent expression
// statement; ok is false when no expression statement ever ran.
func Run(source string) (result value.Value, ok bool, err *errors.Error) {
	scope := NewScope()
	return RunWithScope(source, scope)
}

// RunWithScope is Run against a caller-supplied scope. The REPL uses
// it to keep bindings alive across inputs; the scope must not be
// shared with another concurrent run.
func RunWithScope(source string, scope *Scope) (result value.Value, ok bool, err *errors.Error) {
	for i, raw := range strings.Split(source, "\n") {
		stmt, err := parser.ParseProgramLine(raw, i+1)
		if err != nil {
			return value.Value{}, false, err
		}
		if stmt == nil {
			continue
		}

		v, produced, err := EvalStatement(stmt, scope)
		if err != nil {
			return value.Value{}, false, err
		}
		if produced {
			result, ok = v, true
		}
	}

	return result, ok, nil
}
