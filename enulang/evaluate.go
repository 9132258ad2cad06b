package enulang

import (
	"fmt"

	"github.com/reusee/enu/numerals"
)

// Evaluate runs statements in order and returns the value of the last one.
// It stops at the first error; bindings made before it are kept.
// An empty program evaluates to nil.
func (e *Env) Evaluate(program *Program) (ret numerals.Value, err error) {
	for _, stmt := range program.Stmts {
		ret, err = e.evalStmt(stmt)
		if err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func (e *Env) evalStmt(stmt Stmt) (numerals.Value, error) {
	switch stmt := stmt.(type) {
	case ExprStmt:
		return e.EvalExpr(stmt.Expr)
	case AssignStmt:
		value, err := e.EvalExpr(stmt.Value)
		if err != nil {
			return nil, err
		}
		e.Set(stmt.Name, value)
		return value, nil
	}
	panic(fmt.Errorf("unknown statement type: %T", stmt))
}

func (e *Env) EvalExpr(expr Expr) (numerals.Value, error) {
	switch expr := expr.(type) {

	case NumberExpr:
		value, err := numerals.Parse(expr.Text)
		if err != nil {
			return nil, &TypeError{Err: err}
		}
		return value, nil

	case IdentExpr:
		value, ok := e.Get(expr.Name)
		if !ok {
			return nil, &UndefinedVariableError{Name: expr.Name}
		}
		return value, nil

	case BinaryExpr:
		left, err := e.EvalExpr(expr.Left)
		if err != nil {
			return nil, err
		}
		right, err := e.EvalExpr(expr.Right)
		if err != nil {
			return nil, err
		}
		return Binary(expr.Op, left, right)

	case UnaryExpr:
		operand, err := e.EvalExpr(expr.Operand)
		if err != nil {
			return nil, err
		}
		return Unary(expr.Op, operand)

	case GroupExpr:
		return e.EvalExpr(expr.Inner)

	}
	panic(fmt.Errorf("unknown expression type: %T", expr))
}
