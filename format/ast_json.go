package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/cfront/c/ast"
	"github.com/dhamidi/cfront/c/lexer"
)

// ASTJSONEncoder writes a syntax tree as indented JSON. When Source is
// set, spans carry line and column as well as byte offsets.
type ASTJSONEncoder struct {
	w      io.Writer
	Source string
	File   string
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(stmts []ast.Stmt) error {
	text, err := e.MarshalText(stmts)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *ASTJSONEncoder) MarshalText(stmts []ast.Stmt) ([]byte, error) {
	nodes := make([]*astJSONNode, len(stmts))
	for i, stmt := range stmts {
		nodes[i] = e.nodeToJSON(stmt, "")
	}
	return json.MarshalIndent(nodes, "", "  ")
}

type astJSONNode struct {
	Kind      string         `json:"kind"`
	Role      string         `json:"role,omitempty"`
	Span      *astJSONSpan   `json:"span,omitempty"`
	Name      string         `json:"name,omitempty"`
	Type      string         `json:"type,omitempty"`
	Op        string         `json:"op,omitempty"`
	Text      string         `json:"text,omitempty"`
	Value     any            `json:"value,omitempty"`
	Prototype bool           `json:"prototype,omitempty"`
	Args      []astJSONArg   `json:"args,omitempty"`
	Children  []*astJSONNode `json:"children,omitempty"`
}

type astJSONArg struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

type astJSONSpan struct {
	Start astJSONPosition `json:"start"`
	End   astJSONPosition `json:"end"`
}

type astJSONPosition struct {
	Offset int `json:"offset"`
	Line   int `json:"line,omitempty"`
	Column int `json:"column,omitempty"`
}

func (e *ASTJSONEncoder) position(offset int) astJSONPosition {
	if e.Source == "" {
		return astJSONPosition{Offset: offset}
	}
	pos := lexer.Locate(e.Source, e.File, offset)
	return astJSONPosition{Offset: offset, Line: pos.Line, Column: pos.Column}
}

func (e *ASTJSONEncoder) child(jn *astJSONNode, n ast.Node, role string) {
	if n == nil {
		return
	}
	jn.Children = append(jn.Children, e.nodeToJSON(n, role))
}

func (e *ASTJSONEncoder) nodeToJSON(n ast.Node, role string) *astJSONNode {
	span := n.Pos()
	jn := &astJSONNode{
		Role: role,
		Span: &astJSONSpan{Start: e.position(span.Start), End: e.position(span.End)},
	}

	switch n := n.(type) {
	case *ast.Empty:
		jn.Kind = "Empty"
	case *ast.FunctionDeclaration:
		jn.Kind = "FunctionDeclaration"
		jn.Name = n.Name
		jn.Type = n.Type.String()
		jn.Prototype = n.Prototype
		for _, arg := range n.Args {
			jn.Args = append(jn.Args, astJSONArg{Type: arg.Type.String(), Name: arg.Name})
		}
		for _, stmt := range n.Body {
			e.child(jn, stmt, "body")
		}
	case *ast.VarDeclaration:
		jn.Kind = "VarDeclaration"
		jn.Name = n.Name
		jn.Type = n.Type.String()
		if n.Rhs != nil {
			e.child(jn, n.Rhs, "rhs")
		}
	case *ast.ExprStatement:
		jn.Kind = "ExprStatement"
		e.child(jn, n.X, "x")
	case *ast.Return:
		jn.Kind = "Return"
		if n.X != nil {
			e.child(jn, n.X, "x")
		}
	case *ast.If:
		jn.Kind = "If"
		e.child(jn, n.Cond, "cond")
		e.child(jn, n.Then, "then")
		if n.Else != nil {
			e.child(jn, n.Else, "else")
		}
	case *ast.While:
		jn.Kind = "While"
		e.child(jn, n.Cond, "cond")
		e.child(jn, n.Body, "body")
	case *ast.For:
		jn.Kind = "For"
		if n.Init != nil {
			e.child(jn, n.Init, "init")
		}
		if n.Cond != nil {
			e.child(jn, n.Cond, "cond")
		}
		if n.Post != nil {
			e.child(jn, n.Post, "post")
		}
		e.child(jn, n.Body, "body")
	case *ast.Break:
		jn.Kind = "Break"
	case *ast.Continue:
		jn.Kind = "Continue"
	case *ast.Block:
		jn.Kind = "Block"
		for _, stmt := range n.Body {
			e.child(jn, stmt, "body")
		}
	case *ast.Atom:
		jn.Kind = n.Kind.String()
		jn.Text = n.Text
		switch n.Kind {
		case ast.AtomInteger:
			jn.Value = json.Number(n.Int.String())
		case ast.AtomFloat:
			jn.Value = n.Float
		}
	case *ast.Prefix:
		jn.Kind = "Prefix"
		jn.Op = n.Op.Spelling()
		e.child(jn, n.X, "x")
	case *ast.Postfix:
		jn.Kind = "Postfix"
		jn.Op = n.Op.Spelling()
		e.child(jn, n.X, "x")
	case *ast.SizeOf:
		jn.Kind = "SizeOf"
		e.child(jn, n.X, "x")
	case *ast.Binary:
		jn.Kind = "Binary"
		jn.Op = n.Op.Spelling()
		e.child(jn, n.Left, "left")
		e.child(jn, n.Right, "right")
	case *ast.Paren:
		jn.Kind = "Paren"
		e.child(jn, n.X, "x")
	case *ast.Conditional:
		jn.Kind = "Conditional"
		e.child(jn, n.Cond, "cond")
		e.child(jn, n.Then, "then")
		e.child(jn, n.Else, "else")
	case *ast.Call:
		jn.Kind = "Call"
		e.child(jn, n.Fn, "fn")
		for _, arg := range n.Args {
			e.child(jn, arg, "arg")
		}
	case *ast.Index:
		jn.Kind = "Index"
		e.child(jn, n.X, "x")
		e.child(jn, n.Subscript, "subscript")
	}

	return jn
}
