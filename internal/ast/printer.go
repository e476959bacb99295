package ast

import "fmt"

// Debug forms mirror the tagged-variant rendering of runtime values,
// so a printed AST reads like the structures it will evaluate to.

func (l *ValueLiteral) String() string {
	return l.Value.String()
}

func (v *Variable) String() string {
	return fmt.Sprintf("Variable(%s)", v.Name)
}

func (t *TermExpr) String() string {
	return t.Term.String()
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("Binary(%s %s %s)", b.Left, b.Op, b.Right)
}

func (s *LetStmt) String() string {
	return fmt.Sprintf("Let(%s = %s)", s.Name, s.Value)
}

func (s *ExprStmt) String() string {
	return s.Expr.String()
}
