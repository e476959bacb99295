package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mica/internal/ast"
)

func TestReporterFormat(t *testing.T) {
	source := "let x = 3 * 2\n21 + y\n"

	reporter := NewReporter("example.mica", source)
	err := Runtimef(ast.Position{Line: 2, Column: 6}, "variable '%s' not found", "y")

	formatted := reporter.Format(err)

	assert.Contains(t, formatted, "runtime error")
	assert.Contains(t, formatted, "variable 'y' not found")
	assert.Contains(t, formatted, "example.mica:2:6")
	assert.Contains(t, formatted, "21 + y")
	assert.Contains(t, formatted, "^")
}

func TestErrorKinds(t *testing.T) {
	lex := Lexicalf(ast.Position{Line: 1, Column: 1}, 1, "unsupported character: %q", ';')
	assert.Equal(t, LEXICAL, lex.Kind)
	assert.Contains(t, lex.Error(), "lexical error")

	syn := Syntaxf(ast.Position{Line: 1, Column: 1}, "expected term, got end of input")
	assert.Equal(t, SYNTAX, syn.Kind)
	assert.Contains(t, syn.Error(), "syntax error: expected term")

	run := Runtimef(ast.Position{Line: 1, Column: 1}, "variable 'x' not found")
	assert.Contains(t, run.Error(), "runtime error: variable 'x' not found")
}

func TestReporterMarkerLength(t *testing.T) {
	reporter := NewReporter("test.mica", "1 @@ 2")
	err := Lexicalf(ast.Position{Line: 1, Column: 3}, 2, "unsupported character: '@'")

	formatted := reporter.Format(err)
	assert.Contains(t, formatted, "^^")
}
