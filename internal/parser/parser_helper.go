package parser

import "mica/internal/errors"

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt TokenType) bool {
	return p.peek().Type == tt
}

func (p *Parser) consume(tt TokenType, message string) (Token, *errors.Error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	tok := p.peek()
	return Token{}, errors.Syntaxf(tok.Position, "%s, got %s", message, describe(tok))
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == EOF
}
