package ast

import (
	"mica/internal/value"
)

// Operation is a binary operator. The language has exactly two.
type Operation int

const (
	ADDITION Operation = iota
	MULTIPLICATION
)

func (op Operation) String() string {
	switch op {
	case ADDITION:
		return "+"
	case MULTIPLICATION:
		return "*"
	default:
		return "?"
	}
}

// Term is a leaf of an expression: a literal value or a variable
// reference. Variables stay unresolved until evaluation.
type Term interface {
	Node
	isTerm()
}

// Expr is a bare term or a single binary operation over two terms.
// The grammar allows no chaining beyond that.
type Expr interface {
	Node
	isExpr()
}

// Stmt is one parsed source line.
type Stmt interface {
	Node
	isStmt()
}

// ValueLiteral wraps a constant produced directly by the lexer.
type ValueLiteral struct {
	Pos   Position
	Value value.Value
}

// Variable is a late-bound reference, looked up fresh on every
// evaluation of the enclosing expression.
type Variable struct {
	Pos  Position
	Name string
}

// TermExpr is an expression consisting of a lone term.
type TermExpr struct {
	Term Term
}

// BinaryExpr applies one operation to exactly two terms.
type BinaryExpr struct {
	Left  Term
	OpPos Position
	Op    Operation
	Right Term
}

// LetStmt binds the evaluated expression under Name in the scope.
type LetStmt struct {
	Pos   Position
	Name  string
	Value Expr
}

// ExprStmt is a bare expression line; its value is the line's result.
type ExprStmt struct {
	Expr Expr
}

func (*ValueLiteral) isTerm() {}
func (*Variable) isTerm()     {}

func (*TermExpr) isExpr()   {}
func (*BinaryExpr) isExpr() {}

func (*LetStmt) isStmt()  {}
func (*ExprStmt) isStmt() {}
