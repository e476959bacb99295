package parser

import (
	"mica/internal/ast"
	"mica/internal/errors"
	"mica/internal/value"
)

// Parser turns one line's token stream into exactly one statement
// using single-token lookahead. The grammar permits at most one
// binary operator per expression; once a complete expression has been
// read, any tokens still remaining are deliberately left unconsumed
// rather than reported (the language never errors on trailing input).
type Parser struct {
	tokens  []Token
	current int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseStatement parses either 'let NAME = EXPR' or a bare expression.
func (p *Parser) ParseStatement() (ast.Stmt, *errors.Error) {
	if p.check(LET) {
		return p.parseLet()
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Expr: expr}, nil
}

func (p *Parser) parseLet() (ast.Stmt, *errors.Error) {
	keyword := p.advance()

	name, err := p.consume(IDENTIFIER, "expected identifier")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(EQUAL, "expected '='"); err != nil {
		return nil, err
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &ast.LetStmt{Pos: keyword.Position, Name: name.Lexeme, Value: expr}, nil
}

// parseExpression reads one term and, if any token follows, exactly
// one operator and one more term.
func (p *Parser) parseExpression() (ast.Expr, *errors.Error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	if p.isAtEnd() {
		return &ast.TermExpr{Term: left}, nil
	}

	opToken := p.advance()
	var op ast.Operation
	switch opToken.Type {
	case PLUS:
		op = ast.ADDITION
	case STAR:
		op = ast.MULTIPLICATION
	default:
		return nil, errors.Syntaxf(opToken.Position, "expected operation, got %s", describe(opToken))
	}

	right, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	return &ast.BinaryExpr{Left: left, OpPos: opToken.Position, Op: op, Right: right}, nil
}

func (p *Parser) parseTerm() (ast.Term, *errors.Error) {
	if p.isAtEnd() {
		return nil, errors.Syntaxf(p.peek().Position, "expected term, got end of input")
	}

	token := p.advance()
	switch token.Type {
	case NUMBER:
		return &ast.ValueLiteral{Pos: token.Position, Value: value.Number(token.Number)}, nil
	case STRING:
		return &ast.ValueLiteral{Pos: token.Position, Value: value.String(token.Lexeme)}, nil
	case IDENTIFIER:
		return &ast.Variable{Pos: token.Position, Name: token.Lexeme}, nil
	default:
		return nil, errors.Syntaxf(token.Position, "expected term, got %s", describe(token))
	}
}

func describe(t Token) string {
	if t.Type == EOF {
		return "end of input"
	}
	return "'" + t.Lexeme + "'"
}
