package parser

import "mica/internal/ast"

type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Literals + identifiers
	NUMBER
	STRING
	IDENTIFIER

	// Keywords
	LET

	// Operators
	PLUS
	STAR
	EQUAL
)

var tokenNames = [...]string{
	ILLEGAL:    "ILLEGAL",
	EOF:        "EOF",
	NUMBER:     "NUMBER",
	STRING:     "STRING",
	IDENTIFIER: "IDENTIFIER",
	LET:        "LET",
	PLUS:       "PLUS",
	STAR:       "STAR",
	EQUAL:      "EQUAL",
}

func (t TokenType) String() string {
	if int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return "TokenType(?)"
}

// Token is one lexical unit of a single source line. Number tokens
// carry the already-parsed integer; the scanner's buffer flush is the
// only place that decides whether text is numeric.
type Token struct {
	Type     TokenType
	Lexeme   string
	Number   int64
	Position ast.Position
}
