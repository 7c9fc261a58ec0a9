package ast

import (
	"strings"

	"github.com/dhamidi/cfront/c/lexer"
)

// Prefix is a unary operator applied before its operand: ++ -- ! ~ * & + -.
type Prefix struct {
	Span
	Op lexer.TokenKind
	X  Expr
}

// Postfix is ++ or -- applied after its operand.
type Postfix struct {
	Span
	Op lexer.TokenKind
	X  Expr
}

type SizeOf struct {
	Span
	X Expr
}

// Binary covers arithmetic, comparison, logical, bitwise, assignment and
// member access operators.
type Binary struct {
	Span
	Op    lexer.TokenKind
	Left  Expr
	Right Expr
}

type Paren struct {
	Span
	X Expr
}

type Conditional struct {
	Span
	Cond Expr
	Then Expr
	Else Expr
}

type Call struct {
	Span
	Fn   Expr
	Args []Expr
}

type Index struct {
	Span
	X         Expr
	Subscript Expr
}

func (*Atom) exprNode()        {}
func (*Prefix) exprNode()      {}
func (*Postfix) exprNode()     {}
func (*SizeOf) exprNode()      {}
func (*Binary) exprNode()      {}
func (*Paren) exprNode()       {}
func (*Conditional) exprNode() {}
func (*Call) exprNode()        {}
func (*Index) exprNode()       {}

// Sexp renders an expression as a fully bracketed S-expression, e.g.
// a+b*c becomes (+ a (* b c)). Parentheses from the source are implied by
// the nesting and not rendered.
func Sexp(e Expr) string {
	var sb strings.Builder
	writeSexp(&sb, e)
	return sb.String()
}

func writeSexp(sb *strings.Builder, e Expr) {
	switch n := e.(type) {
	case nil:
		sb.WriteString("<nil>")
	case *Atom:
		sb.WriteString(n.Source())
	case *Paren:
		writeSexp(sb, n.X)
	case *Prefix:
		sb.WriteString("(")
		sb.WriteString(n.Op.Spelling())
		sb.WriteString(" ")
		writeSexp(sb, n.X)
		sb.WriteString(")")
	case *Postfix:
		sb.WriteString("(")
		writeSexp(sb, n.X)
		sb.WriteString(n.Op.Spelling())
		sb.WriteString(")")
	case *SizeOf:
		sb.WriteString("(sizeof ")
		writeSexp(sb, n.X)
		sb.WriteString(")")
	case *Binary:
		sb.WriteString("(")
		sb.WriteString(n.Op.Spelling())
		sb.WriteString(" ")
		writeSexp(sb, n.Left)
		sb.WriteString(" ")
		writeSexp(sb, n.Right)
		sb.WriteString(")")
	case *Conditional:
		sb.WriteString("(? ")
		writeSexp(sb, n.Cond)
		sb.WriteString(" ")
		writeSexp(sb, n.Then)
		sb.WriteString(" ")
		writeSexp(sb, n.Else)
		sb.WriteString(")")
	case *Call:
		sb.WriteString("(call ")
		writeSexp(sb, n.Fn)
		for _, arg := range n.Args {
			sb.WriteString(" ")
			writeSexp(sb, arg)
		}
		sb.WriteString(")")
	case *Index:
		sb.WriteString("([] ")
		writeSexp(sb, n.X)
		sb.WriteString(" ")
		writeSexp(sb, n.Subscript)
		sb.WriteString(")")
	}
}
