package enulang

import "fmt"

type Program struct {
	Stmts []Stmt
}

// Stmt is ExprStmt or AssignStmt.
type Stmt interface {
	stmt()
}

type ExprStmt struct {
	Expr Expr
}

func (ExprStmt) stmt() {}

type AssignStmt struct {
	Name  string
	Value Expr
}

func (AssignStmt) stmt() {}

// Expr is NumberExpr, IdentExpr, BinaryExpr, UnaryExpr or GroupExpr.
type Expr interface {
	expr()
}

// NumberExpr holds raw numeral text, parsed when evaluated.
type NumberExpr struct {
	Text string
}

func (NumberExpr) expr() {}

type IdentExpr struct {
	Name string
}

func (IdentExpr) expr() {}

type BinaryExpr struct {
	Op    Op
	Left  Expr
	Right Expr
}

func (BinaryExpr) expr() {}

// UnaryExpr is a prefix OpAdd or OpSub.
type UnaryExpr struct {
	Op      Op
	Operand Expr
}

func (UnaryExpr) expr() {}

// GroupExpr marks a parenthesized expression. It evaluates to Inner.
type GroupExpr struct {
	Inner Expr
}

func (GroupExpr) expr() {}

type Op uint8

const (
	OpAdd Op = iota + 1
	OpSub
	OpMul
	OpDiv
)

// Ops lists every operator, in declaration order.
var Ops = []Op{
	OpAdd,
	OpSub,
	OpMul,
	OpDiv,
}

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

var tokenOps = map[TokenKind]Op{
	TokenPlus:  OpAdd,
	TokenMinus: OpSub,
	TokenStar:  OpMul,
	TokenSlash: OpDiv,
}
