package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mica/internal/ast"
	"mica/internal/errors"
	"mica/internal/value"
)

func TestParseBareTerm(t *testing.T) {
	stmt, err := ParseLine("42", 1)
	require.Nil(t, err)

	exprStmt, ok := stmt.(*ast.ExprStmt)
	require.True(t, ok, "should be an expression statement")

	termExpr, ok := exprStmt.Expr.(*ast.TermExpr)
	require.True(t, ok, "should be a bare term")

	lit, ok := termExpr.Term.(*ast.ValueLiteral)
	require.True(t, ok)
	assert.Equal(t, value.Number(42), lit.Value)
}

func TestParseBinaryExpression(t *testing.T) {
	stmt, err := ParseLine("3 * 2", 1)
	require.Nil(t, err)

	exprStmt := stmt.(*ast.ExprStmt)
	binary, ok := exprStmt.Expr.(*ast.BinaryExpr)
	require.True(t, ok, "should be a binary expression")

	assert.Equal(t, ast.MULTIPLICATION, binary.Op)
	assert.Equal(t, value.Number(3), binary.Left.(*ast.ValueLiteral).Value)
	assert.Equal(t, value.Number(2), binary.Right.(*ast.ValueLiteral).Value)
}

func TestParseVariableTerm(t *testing.T) {
	stmt, err := ParseLine("x + 5", 1)
	require.Nil(t, err)

	binary := stmt.(*ast.ExprStmt).Expr.(*ast.BinaryExpr)
	variable, ok := binary.Left.(*ast.Variable)
	require.True(t, ok, "left operand should be an unresolved variable")
	assert.Equal(t, "x", variable.Name)
}

func TestParseAssignment(t *testing.T) {
	stmt, err := ParseLine(`let greeting = "hi" * 3`, 1)
	require.Nil(t, err)

	let, ok := stmt.(*ast.LetStmt)
	require.True(t, ok, "should be a let statement")
	assert.Equal(t, "greeting", let.Name)

	binary := let.Value.(*ast.BinaryExpr)
	assert.Equal(t, ast.MULTIPLICATION, binary.Op)
	assert.Equal(t, value.String("hi"), binary.Left.(*ast.ValueLiteral).Value)
}

func TestParseAssignmentMissingIdentifier(t *testing.T) {
	_, err := ParseLine("let = 5", 1)
	require.NotNil(t, err)
	assert.Equal(t, errors.SYNTAX, err.Kind)
	assert.Contains(t, err.Message, "expected identifier")
}

func TestParseAssignmentMissingEquals(t *testing.T) {
	_, err := ParseLine("let x 5", 1)
	require.NotNil(t, err)
	assert.Equal(t, errors.SYNTAX, err.Kind)
	assert.Contains(t, err.Message, "expected '='")
}

func TestParseMissingOperation(t *testing.T) {
	_, err := ParseLine("1 2", 1)
	require.NotNil(t, err)
	assert.Equal(t, errors.SYNTAX, err.Kind)
	assert.Contains(t, err.Message, "expected operation")
}

func TestParseMissingTerm(t *testing.T) {
	_, err := ParseLine("1 +", 1)
	require.NotNil(t, err)
	assert.Equal(t, errors.SYNTAX, err.Kind)
	assert.Contains(t, err.Message, "expected term")
}

func TestParseEmptyLineIsTermError(t *testing.T) {
	_, err := ParseLine("", 1)
	require.NotNil(t, err)
	assert.Equal(t, errors.SYNTAX, err.Kind)
}

func TestTrailingTokensAreIgnored(t *testing.T) {
	// The grammar supports exactly one operator; everything after the
	// second term is dropped without error.
	stmt, err := ParseLine("1 + 2 + 3", 1)
	require.Nil(t, err)

	binary := stmt.(*ast.ExprStmt).Expr.(*ast.BinaryExpr)
	assert.Equal(t, ast.ADDITION, binary.Op)
	assert.Equal(t, value.Number(1), binary.Left.(*ast.ValueLiteral).Value)
	assert.Equal(t, value.Number(2), binary.Right.(*ast.ValueLiteral).Value)
}

func TestParseProgramLineBlank(t *testing.T) {
	stmt, err := ParseProgramLine("   ", 3)
	assert.Nil(t, err)
	assert.Nil(t, stmt)
}

func TestParseProgramLinePositionsAreRawRelative(t *testing.T) {
	_, err := ParseProgramLine("   1 ; 2", 4)
	require.NotNil(t, err)
	assert.Equal(t, 4, err.Position.Line)
	assert.Equal(t, 6, err.Position.Column)
}

func TestCheckSourceCollectsAllErrors(t *testing.T) {
	source := "let = 1\n3 * 2\n1 ; 2\n"

	errs := CheckSource(source)
	require.Len(t, errs, 2)
	assert.Equal(t, errors.SYNTAX, errs[0].Kind)
	assert.Equal(t, 1, errs[0].Position.Line)
	assert.Equal(t, errors.LEXICAL, errs[1].Kind)
	assert.Equal(t, 3, errs[1].Position.Line)
}
