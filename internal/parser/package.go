package parser

import (
	"strings"

	"mica/internal/ast"
	"mica/internal/errors"
)

// ParseLine scans and parses one source line into a statement. The
// line number only feeds token positions for error reporting.
func ParseLine(line string, lineNumber int) (ast.Stmt, *errors.Error) {
	scanner := NewScanner(line, lineNumber)
	tokens, err := scanner.ScanTokens()
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).ParseStatement()
}

// ParseProgramLine handles one raw line of a multi-line program:
// surrounding whitespace is trimmed, and a blank line yields nil with
// no error. Positions in errors refer to the untrimmed text.
func ParseProgramLine(raw string, lineNumber int) (ast.Stmt, *errors.Error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}

	lead := raw[:strings.Index(raw, trimmed)]
	scanner := NewScanner(trimmed, lineNumber)
	scanner.base = len(lead)
	scanner.column = len([]rune(lead)) + 1

	tokens, err := scanner.ScanTokens()
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).ParseStatement()
}
