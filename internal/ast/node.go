package ast

// Position locates a token or node in the original source.
type Position struct {
	Line   int // 1-based
	Column int // 1-based, in runes
	Offset int // 0-based byte offset within the line
}

// Node is implemented by every AST node.
type Node interface {
	NodePos() Position
	String() string
}

func (l *ValueLiteral) NodePos() Position { return l.Pos }
func (v *Variable) NodePos() Position     { return v.Pos }

func (t *TermExpr) NodePos() Position   { return t.Term.NodePos() }
func (b *BinaryExpr) NodePos() Position { return b.Left.NodePos() }

func (s *LetStmt) NodePos() Position  { return s.Pos }
func (s *ExprStmt) NodePos() Position { return s.Expr.NodePos() }
