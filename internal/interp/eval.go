package interp

import (
	"mica/internal/ast"
	"mica/internal/errors"
	"mica/internal/value"
)

// EvalStatement executes one statement against the scope. A let
// statement stores its evaluated expression and produces no value;
// a bare expression statement produces its value (second return true).
func EvalStatement(stmt ast.Stmt, scope *Scope) (value.Value, bool, *errors.Error) {
	switch s := stmt.(type) {
	case *ast.LetStmt:
		v, err := EvalExpr(s.Value, scope)
		if err != nil {
			return value.Value{}, false, err
		}
		scope.Set(s.Name, v)
		return value.Value{}, false, nil

	case *ast.ExprStmt:
		v, err := EvalExpr(s.Expr, scope)
		if err != nil {
			return value.Value{}, false, err
		}
		return v, true, nil

	default:
		return value.Value{}, false, errors.Runtimef(stmt.NodePos(), "unknown statement %T", stmt)
	}
}

// EvalExpr reduces an expression to a value. Binary operands are
// evaluated left to right with no short-circuiting.
func EvalExpr(expr ast.Expr, scope *Scope) (value.Value, *errors.Error) {
	switch e := expr.(type) {
	case *ast.TermExpr:
		return evalTerm(e.Term, scope)

	case *ast.BinaryExpr:
		left, err := evalTerm(e.Left, scope)
		if err != nil {
			return value.Value{}, err
		}
		right, err := evalTerm(e.Right, scope)
		if err != nil {
			return value.Value{}, err
		}

		var result value.Value
		var opErr error
		switch e.Op {
		case ast.ADDITION:
			result, opErr = value.Add(left, right)
		case ast.MULTIPLICATION:
			result, opErr = value.Mul(left, right)
		}
		if opErr != nil {
			return value.Value{}, errors.Runtimef(e.OpPos, "%s", opErr)
		}
		return result, nil

	default:
		return value.Value{}, errors.Runtimef(expr.NodePos(), "unknown expression %T", expr)
	}
}

func evalTerm(term ast.Term, scope *Scope) (value.Value, *errors.Error) {
	switch t := term.(type) {
	case *ast.ValueLiteral:
		return t.Value, nil

	case *ast.Variable:
		v, ok := scope.Get(t.Name)
		if !ok {
			return value.Value{}, errors.Runtimef(t.Pos, "variable '%s' not found", t.Name)
		}
		return v, nil

	default:
		return value.Value{}, errors.Runtimef(term.NodePos(), "unknown term %T", term)
	}
}
