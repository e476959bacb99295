package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mica/internal/errors"
	"mica/internal/value"
)

func TestRunSingleExpression(t *testing.T) {
	result, ok, err := Run("3 * 2")
	require.Nil(t, err)
	require.True(t, ok)
	assert.Equal(t, value.Number(6), result)
}

func TestRunProgramWithAssignments(t *testing.T) {
	source := "let x = 3 * 2\nlet y = x + 5\nx + y"

	result, ok, err := Run(source)
	require.Nil(t, err)
	require.True(t, ok)
	assert.Equal(t, value.Number(17), result)
}

func TestRunUnboundVariable(t *testing.T) {
	_, _, err := Run("21 + x")
	require.NotNil(t, err)
	assert.Equal(t, errors.RUNTIME, err.Kind)
	assert.Contains(t, err.Message, "'x'")
	assert.Contains(t, err.Message, "not found")
}

func TestRunStringRepetition(t *testing.T) {
	result, ok, err := Run(`"ab" * 3`)
	require.Nil(t, err)
	require.True(t, ok)
	assert.Equal(t, value.String("ababab"), result)
}

func TestRunNumberStringCoercion(t *testing.T) {
	result, _, err := Run(`5 + "!"`)
	require.Nil(t, err)
	assert.Equal(t, value.String("5!"), result)

	result, _, err = Run(`"!" + 5`)
	require.Nil(t, err)
	assert.Equal(t, value.String("!5"), result)
}

func TestRunStringConcatenationFails(t *testing.T) {
	_, _, err := Run(`"a" + "b"`)
	require.NotNil(t, err)
	assert.Equal(t, errors.RUNTIME, err.Kind)
}

func TestLoneTermIsUnchangedByCoercion(t *testing.T) {
	result, ok, err := Run(`"hello"`)
	require.Nil(t, err)
	require.True(t, ok)
	assert.Equal(t, value.String("hello"), result)

	result, _, err = Run("1234")
	require.Nil(t, err)
	assert.Equal(t, value.Number(1234), result)
}

func TestAssignmentProducesNoValue(t *testing.T) {
	// A trailing assignment leaves the previous expression result in
	// place as the program's value.
	result, ok, err := Run("1 + 2\nlet x = 9")
	require.Nil(t, err)
	require.True(t, ok)
	assert.Equal(t, value.Number(3), result)
}

func TestRunWithoutExpressionStatement(t *testing.T) {
	_, ok, err := Run("let x = 1\nlet y = 2")
	require.Nil(t, err)
	assert.False(t, ok, "a program of only assignments yields no value")
}

func TestRebindingIsVisibleAcrossLines(t *testing.T) {
	source := "let x = 1\nlet x = x + 1\nlet x = x * 10\nx"

	result, ok, err := Run(source)
	require.Nil(t, err)
	require.True(t, ok)
	assert.Equal(t, value.Number(20), result)
}

func TestBlankAndIndentedLines(t *testing.T) {
	source := "\n   let x = 2\n\n\t x * 3 \n"

	result, ok, err := Run(source)
	require.Nil(t, err)
	require.True(t, ok)
	assert.Equal(t, value.Number(6), result)
}

func TestRunStopsAtFirstError(t *testing.T) {
	_, _, err := Run("let x = ;\nx + 1")
	require.NotNil(t, err)
	assert.Equal(t, errors.LEXICAL, err.Kind)
	assert.Equal(t, 1, err.Position.Line)
}

func TestScopeIsNotSharedBetweenRuns(t *testing.T) {
	_, _, err := Run("let x = 1\nx")
	require.Nil(t, err)

	_, _, err = Run("x")
	require.NotNil(t, err, "bindings must not leak between runs")
	assert.Equal(t, errors.RUNTIME, err.Kind)
}

func TestRunWithScopeKeepsBindings(t *testing.T) {
	scope := NewScope()

	_, _, err := RunWithScope("let x = 40", scope)
	require.Nil(t, err)

	result, ok, err := RunWithScope("x + 2", scope)
	require.Nil(t, err)
	require.True(t, ok)
	assert.Equal(t, value.Number(42), result)
}

func TestScopeLastWriteWins(t *testing.T) {
	scope := NewScope()
	scope.Set("a", value.Number(1))
	scope.Set("a", value.String("two"))

	v, ok := scope.Get("a")
	require.True(t, ok)
	assert.Equal(t, value.String("two"), v)
}
