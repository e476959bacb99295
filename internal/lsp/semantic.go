package lsp

import (
	"strings"

	"mica/internal/parser"
)

// Semantic token type indexes into SemanticTokenTypes.
const (
	tokenKeyword = iota
	tokenVariable
	tokenNumber
	tokenString
	tokenOperator
)

// SemanticToken is one entry of the semantic tokens response.
// Line and StartChar are 0-based; TokenType indexes SemanticTokenTypes
// and TokenModifiers is a bitmask over SemanticTokenModifiers.
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

// collectSemanticTokens rescans every line of the document and maps
// the lexical classes onto the LSP legend. Lines that fail to scan
// contribute no tokens; diagnostics cover them separately.
func collectSemanticTokens(source string) []SemanticToken {
	var result []SemanticToken

	for i, raw := range strings.Split(source, "\n") {
		line := strings.TrimRight(raw, " \t")
		scanner := parser.NewScanner(line, i+1)
		tokens, err := scanner.ScanTokens()
		if err != nil {
			continue
		}

		for _, tok := range tokens {
			tokenType, length, ok := classify(tok)
			if !ok {
				continue
			}
			result = append(result, SemanticToken{
				Line:      uint32(tok.Position.Line - 1),
				StartChar: uint32(tok.Position.Column - 1),
				Length:    length,
				TokenType: tokenType,
			})
		}
	}

	return result
}

func classify(tok parser.Token) (tokenType int, length uint32, ok bool) {
	switch tok.Type {
	case parser.LET:
		return tokenKeyword, uint32(len(tok.Lexeme)), true
	case parser.IDENTIFIER:
		return tokenVariable, uint32(len([]rune(tok.Lexeme))), true
	case parser.NUMBER:
		return tokenNumber, uint32(len(tok.Lexeme)), true
	case parser.STRING:
		// Include the surrounding quotes.
		return tokenString, uint32(len([]rune(tok.Lexeme)) + 2), true
	case parser.PLUS, parser.STAR, parser.EQUAL:
		return tokenOperator, 1, true
	default:
		return 0, 0, false
	}
}
