package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mica/internal/value"
)

func TestDebugForms(t *testing.T) {
	three := &ValueLiteral{Value: value.Number(3)}
	hello := &ValueLiteral{Value: value.String("hello")}
	x := &Variable{Name: "x"}

	assert.Equal(t, "Number(3)", three.String())
	assert.Equal(t, `String("hello")`, hello.String())
	assert.Equal(t, "Variable(x)", x.String())

	binary := &BinaryExpr{Left: three, Op: MULTIPLICATION, Right: x}
	assert.Equal(t, "Binary(Number(3) * Variable(x))", binary.String())

	let := &LetStmt{Name: "y", Value: binary}
	assert.Equal(t, "Let(y = Binary(Number(3) * Variable(x)))", let.String())

	stmt := &ExprStmt{Expr: &TermExpr{Term: hello}}
	assert.Equal(t, `String("hello")`, stmt.String())
}

func TestOperationString(t *testing.T) {
	assert.Equal(t, "+", ADDITION.String())
	assert.Equal(t, "*", MULTIPLICATION.String())
}
