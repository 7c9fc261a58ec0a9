package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/cfront/c/ast"
	"github.com/dhamidi/cfront/c/lexer"
)

// LineEncoder writes one tab-separated line per top-level declaration:
//
//	function	main	int	int argc,char **argv	1:1
//	prototype	puts	int	char *s	3:1
//	variable	count	int	-	5:1
type LineEncoder struct {
	w      io.Writer
	Source string
	File   string
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(stmts []ast.Stmt) error {
	text, err := e.MarshalText(stmts)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText(stmts []ast.Stmt) ([]byte, error) {
	var sb strings.Builder
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.FunctionDeclaration:
			kind := "function"
			if s.Prototype {
				kind = "prototype"
			}
			fmt.Fprintf(&sb, "%s\t%s\t%s\t%s\t%s\n", kind, s.Name, s.Type, argumentsStr(s.Args), e.where(s.Start))
		case *ast.VarDeclaration:
			fmt.Fprintf(&sb, "variable\t%s\t%s\t-\t%s\n", s.Name, s.Type, e.where(s.Start))
		}
	}
	return []byte(sb.String()), nil
}

func (e *LineEncoder) where(offset int) string {
	if e.Source == "" {
		return strconv.Itoa(offset)
	}
	pos := lexer.Locate(e.Source, "", offset)
	return pos.String()
}

func argumentsStr(args []ast.Arg) string {
	if len(args) == 0 {
		return "-"
	}
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = declarator(arg.Type, arg.Name)
	}
	return strings.Join(parts, ",")
}

// TokenEncoder writes one line per token: offset, line:column, kind and
// the token text.
type TokenEncoder struct {
	w io.Writer
}

func NewTokenEncoder(w io.Writer) *TokenEncoder {
	return &TokenEncoder{w: w}
}

func (e *TokenEncoder) Encode(source string, tokens []lexer.Token) error {
	_, err := io.WriteString(e.w, e.MarshalText(source, tokens))
	return err
}

// MarshalText walks the source once, so tokens must be in source order.
func (e *TokenEncoder) MarshalText(source string, tokens []lexer.Token) string {
	var sb strings.Builder
	line, col, at := 1, 1, 0
	for _, tok := range tokens {
		for _, r := range source[at:tok.Start] {
			if r == '\n' {
				line++
				col = 1
			} else {
				col++
			}
		}
		at = tok.Start
		fmt.Fprintf(&sb, "%d\t%d:%d\t%s\t%s\n", tok.Start, line, col, tok.Kind, tok.Text)
	}
	return sb.String()
}

// SexpEncoder writes every statement's expressions in prefix notation,
// one per line. Declarations without an initializer are skipped.
type SexpEncoder struct {
	w io.Writer
}

func NewSexpEncoder(w io.Writer) *SexpEncoder {
	return &SexpEncoder{w: w}
}

func (e *SexpEncoder) Encode(stmts []ast.Stmt) error {
	text, err := e.MarshalText(stmts)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *SexpEncoder) MarshalText(stmts []ast.Stmt) ([]byte, error) {
	var sb strings.Builder
	for _, stmt := range stmts {
		writeSexpStmt(&sb, stmt)
	}
	return []byte(sb.String()), nil
}

func writeSexpStmt(sb *strings.Builder, stmt ast.Stmt) {
	line := func(e ast.Expr) {
		if e != nil {
			sb.WriteString(ast.Sexp(e))
			sb.WriteString("\n")
		}
	}
	switch s := stmt.(type) {
	case *ast.FunctionDeclaration:
		for _, body := range s.Body {
			writeSexpStmt(sb, body)
		}
	case *ast.VarDeclaration:
		line(s.Rhs)
	case *ast.ExprStatement:
		line(s.X)
	case *ast.Atom:
		line(s)
	case *ast.Return:
		line(s.X)
	case *ast.If:
		line(s.Cond)
		writeSexpStmt(sb, s.Then)
		if s.Else != nil {
			writeSexpStmt(sb, s.Else)
		}
	case *ast.While:
		line(s.Cond)
		writeSexpStmt(sb, s.Body)
	case *ast.For:
		if s.Init != nil {
			writeSexpStmt(sb, s.Init)
		}
		line(s.Cond)
		line(s.Post)
		writeSexpStmt(sb, s.Body)
	case *ast.Block:
		for _, body := range s.Body {
			writeSexpStmt(sb, body)
		}
	}
}
