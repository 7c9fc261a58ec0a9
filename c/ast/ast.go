// Package ast declares the syntax tree produced by the parser.
//
// Every node embeds a Span holding the byte offsets it covers in the
// source buffer it was parsed from. Statements implement Stmt,
// expressions implement Expr; *Atom implements both since a bare literal
// or identifier may stand as a statement of its own.
package ast

import "strings"

// Span is a half-open byte range [Start, End) into the parsed source.
type Span struct {
	Start int
	End   int
}

func (s Span) Pos() Span {
	return s
}

type Node interface {
	Pos() Span
}

type Stmt interface {
	Node
	stmtNode()
}

type Expr interface {
	Node
	exprNode()
}

// Type is a declared type: the space-joined specifiers and qualifiers
// followed by the pointer depth.
type Type struct {
	Name    string
	Pointer int
}

func (t Type) String() string {
	if t.Pointer == 0 {
		return t.Name
	}
	return t.Name + " " + strings.Repeat("*", t.Pointer)
}

// Empty stands for a buffer without declarations and for the empty
// statement.
type Empty struct {
	Span
}

type Arg struct {
	Type Type
	Name string
}

type FunctionDeclaration struct {
	Span
	Type      Type
	Name      string
	Args      []Arg
	Body      []Stmt
	Prototype bool
}

type VarDeclaration struct {
	Span
	Type Type
	Name string
	Rhs  Expr
}

type ExprStatement struct {
	Span
	X Expr
}

type Return struct {
	Span
	X Expr
}

type If struct {
	Span
	Cond Expr
	Then Stmt
	Else Stmt
}

type While struct {
	Span
	Cond Expr
	Body Stmt
}

type For struct {
	Span
	Init Stmt
	Cond Expr
	Post Expr
	Body Stmt
}

type Break struct {
	Span
}

type Continue struct {
	Span
}

type Block struct {
	Span
	Body []Stmt
}

func (*Empty) stmtNode()               {}
func (*FunctionDeclaration) stmtNode() {}
func (*VarDeclaration) stmtNode()      {}
func (*ExprStatement) stmtNode()       {}
func (*Return) stmtNode()              {}
func (*If) stmtNode()                  {}
func (*While) stmtNode()               {}
func (*For) stmtNode()                 {}
func (*Break) stmtNode()               {}
func (*Continue) stmtNode()            {}
func (*Block) stmtNode()               {}
func (*Atom) stmtNode()                {}
