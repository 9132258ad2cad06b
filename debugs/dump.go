package debugs

import (
	"fmt"
	"strings"

	"github.com/reusee/enu/enulang"
	"github.com/samber/lo"
)

// FormatTokens renders a token stream on one line.
func FormatTokens(tokens []*enulang.Token) string {
	return "[" + strings.Join(lo.Map(tokens, func(token *enulang.Token, _ int) string {
		return token.String()
	}), ", ") + "]"
}

const indentWidth = 2

// FormatProgram renders the syntax tree, one node per line.
func FormatProgram(program *enulang.Program) string {
	var sb strings.Builder
	for _, stmt := range program.Stmts {
		switch stmt := stmt.(type) {
		case enulang.ExprStmt:
			sb.WriteString("Expr\n")
			formatExpr(&sb, stmt.Expr, 1)
		case enulang.AssignStmt:
			fmt.Fprintf(&sb, "Assign %s\n", stmt.Name)
			formatExpr(&sb, stmt.Value, 1)
		}
	}
	return sb.String()
}

func formatExpr(sb *strings.Builder, expr enulang.Expr, depth int) {
	sb.WriteString(strings.Repeat(" ", (depth-1)*indentWidth))
	sb.WriteString("| ")
	switch expr := expr.(type) {
	case enulang.NumberExpr:
		fmt.Fprintf(sb, "Number %s\n", expr.Text)
	case enulang.IdentExpr:
		fmt.Fprintf(sb, "Ident %s\n", expr.Name)
	case enulang.BinaryExpr:
		fmt.Fprintf(sb, "Binary %s\n", expr.Op)
		formatExpr(sb, expr.Left, depth+1)
		formatExpr(sb, expr.Right, depth+1)
	case enulang.UnaryExpr:
		fmt.Fprintf(sb, "Unary %s\n", expr.Op)
		formatExpr(sb, expr.Operand, depth+1)
	case enulang.GroupExpr:
		sb.WriteString("Group\n")
		formatExpr(sb, expr.Inner, depth+1)
	default:
		fmt.Fprintf(sb, "unknown node %T\n", expr)
	}
}
