package parser

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"mica/internal/ast"
	"mica/internal/errors"
)

// Scanner tokenizes exactly one line of source. Multi-character
// tokens (numbers, identifiers, the 'let' keyword) accumulate in a
// buffer that is flushed on every space and once at end of input;
// the flush decides which of the three the buffer was.
type Scanner struct {
	source string
	line   int

	tokens []Token
	buffer []rune

	current   int // byte offset into source
	base      int // byte offset of source within the raw line
	column    int // 1-based rune column
	bufferPos ast.Position
}

// NewScanner prepares a scanner for one source line. The line number
// is only used for token positions.
func NewScanner(source string, line int) *Scanner {
	return &Scanner{
		source: source,
		line:   line,
		column: 1,
	}
}

// ScanTokens produces the ordered token sequence for the line,
// terminated by EOF. The first unsupported character aborts the scan;
// no partial token list is returned.
func (s *Scanner) ScanTokens() ([]Token, *errors.Error) {
	for !s.isAtEnd() {
		start := s.position()
		c := s.advance()

		switch {
		case c == ' ':
			s.flushBuffer()
		case c >= '0' && c <= '9':
			s.bufferRune(c, start)
		case c == '+':
			s.addToken(PLUS, "+", start)
		case c == '*':
			s.addToken(STAR, "*", start)
		case c == '=':
			s.addToken(EQUAL, "=", start)
		case c == '"':
			s.scanString(start)
		case unicode.IsLetter(c) || c == '_':
			s.bufferRune(c, start)
		default:
			return nil, errors.Lexicalf(start, utf8.RuneLen(c), "unsupported character: %q", c)
		}
	}

	s.flushBuffer()
	s.tokens = append(s.tokens, Token{Type: EOF, Position: s.position()})
	return s.tokens, nil
}

// scanString consumes characters verbatim until a closing quote.
// There are no escape sequences, and a line ending mid-string simply
// closes it with what accumulated so far.
func (s *Scanner) scanString(start ast.Position) {
	var text []rune
	for !s.isAtEnd() {
		c := s.advance()
		if c == '"' {
			break
		}
		text = append(text, c)
	}
	s.tokens = append(s.tokens, Token{Type: STRING, Lexeme: string(text), Position: start})
}

// flushBuffer classifies and emits the pending buffer: a base-10
// signed 64-bit integer becomes NUMBER, the reserved word 'let'
// becomes LET, anything else is an IDENTIFIER.
func (s *Scanner) flushBuffer() {
	if len(s.buffer) == 0 {
		return
	}
	text := string(s.buffer)
	s.buffer = s.buffer[:0]

	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		s.tokens = append(s.tokens, Token{Type: NUMBER, Lexeme: text, Number: n, Position: s.bufferPos})
		return
	}
	if text == "let" {
		s.tokens = append(s.tokens, Token{Type: LET, Lexeme: text, Position: s.bufferPos})
		return
	}
	s.tokens = append(s.tokens, Token{Type: IDENTIFIER, Lexeme: text, Position: s.bufferPos})
}

func (s *Scanner) bufferRune(c rune, pos ast.Position) {
	if len(s.buffer) == 0 {
		s.bufferPos = pos
	}
	s.buffer = append(s.buffer, c)
}

func (s *Scanner) addToken(t TokenType, lexeme string, pos ast.Position) {
	s.tokens = append(s.tokens, Token{Type: t, Lexeme: lexeme, Position: pos})
}

func (s *Scanner) advance() rune {
	c, size := utf8.DecodeRuneInString(s.source[s.current:])
	s.current += size
	s.column++
	return c
}

func (s *Scanner) position() ast.Position {
	return ast.Position{Line: s.line, Column: s.column, Offset: s.base + s.current}
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}
