package format

import (
	"strings"

	"github.com/dhamidi/cfront/c/ast"
	"github.com/dhamidi/cfront/c/lexer"
	"github.com/dhamidi/cfront/c/parser"
)

func exprString(e ast.Expr) string {
	var sb strings.Builder
	writeExpr(&sb, e)
	return sb.String()
}

// precedenceOf places an expression on the parser's precedence ladder.
// Atoms and parenthesized expressions never need grouping.
func precedenceOf(e ast.Expr) parser.Precedence {
	switch n := e.(type) {
	case *ast.Binary:
		prec, _ := parser.InfixPrecedence(n.Op)
		return prec
	case *ast.Conditional:
		return parser.PrecConditional
	case *ast.Prefix, *ast.SizeOf:
		return parser.PrecPrefix
	case *ast.Postfix, *ast.Call, *ast.Index:
		return parser.PrecPostfix
	}
	return parser.PrecPostfix + 1
}

func writeGrouped(sb *strings.Builder, e ast.Expr, group bool) {
	if group {
		sb.WriteString("(")
		writeExpr(sb, e)
		sb.WriteString(")")
		return
	}
	writeExpr(sb, e)
}

func writeExpr(sb *strings.Builder, e ast.Expr) {
	switch n := e.(type) {
	case *ast.Atom:
		sb.WriteString(n.Source())

	case *ast.Paren:
		sb.WriteString("(")
		writeExpr(sb, n.X)
		sb.WriteString(")")

	case *ast.Prefix:
		op := n.Op.Spelling()
		sb.WriteString(op)
		if inner, ok := n.X.(*ast.Prefix); ok && inner.Op.Spelling()[0] == op[len(op)-1] {
			sb.WriteString(" ")
		}
		writeGrouped(sb, n.X, precedenceOf(n.X) < parser.PrecPrefix)

	case *ast.SizeOf:
		sb.WriteString("sizeof")
		if _, ok := n.X.(*ast.Paren); !ok {
			sb.WriteString(" ")
		}
		writeGrouped(sb, n.X, precedenceOf(n.X) < parser.PrecPrefix)

	case *ast.Postfix:
		writeGrouped(sb, n.X, precedenceOf(n.X) < parser.PrecMember)
		sb.WriteString(n.Op.Spelling())

	case *ast.Call:
		writeGrouped(sb, n.Fn, precedenceOf(n.Fn) < parser.PrecMember)
		sb.WriteString("(")
		for i, arg := range n.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeExpr(sb, arg)
		}
		sb.WriteString(")")

	case *ast.Index:
		writeGrouped(sb, n.X, precedenceOf(n.X) < parser.PrecMember)
		sb.WriteString("[")
		writeExpr(sb, n.Subscript)
		sb.WriteString("]")

	case *ast.Conditional:
		writeGrouped(sb, n.Cond, precedenceOf(n.Cond) <= parser.PrecConditional)
		sb.WriteString(" ? ")
		writeExpr(sb, n.Then)
		sb.WriteString(" : ")
		writeGrouped(sb, n.Else, precedenceOf(n.Else) < parser.PrecConditional)

	case *ast.Binary:
		writeBinary(sb, n)
	}
}

func writeBinary(sb *strings.Builder, n *ast.Binary) {
	prec, _ := parser.InfixPrecedence(n.Op)
	right := prec == parser.PrecAssign

	left := precedenceOf(n.Left)
	writeGrouped(sb, n.Left, left < prec || (left == prec && right))

	if n.Op == lexer.Dot || n.Op == lexer.Arrow {
		sb.WriteString(n.Op.Spelling())
	} else {
		sb.WriteString(" " + n.Op.Spelling() + " ")
	}

	rhs := precedenceOf(n.Right)
	writeGrouped(sb, n.Right, rhs < prec || (rhs == prec && !right))
}
