package format

import (
	"bytes"
	"io"
	"strings"

	"github.com/dhamidi/cfront/c/ast"
	"github.com/dhamidi/cfront/c/parser"
)

// PrettyPrintC parses source and prints it back in canonical layout.
func PrettyPrintC(source []byte) ([]byte, error) {
	stmts, err := parser.Parse(string(source))
	if err != nil {
		return nil, err
	}
	return NewCPrettyPrinter(nil).MarshalText(stmts)
}

// CPrettyPrinter writes a syntax tree back out as C source with four-space
// indentation and K&R braces.
type CPrettyPrinter struct {
	w           io.Writer
	buf         bytes.Buffer
	indent      int
	indentStr   string
	atLineStart bool
}

func NewCPrettyPrinter(w io.Writer) *CPrettyPrinter {
	return &CPrettyPrinter{
		w:           w,
		indentStr:   "    ",
		atLineStart: true,
	}
}

// Encode prints every top-level declaration, separating function
// definitions from their neighbours with a blank line.
func (p *CPrettyPrinter) Encode(stmts []ast.Stmt) error {
	text, err := p.MarshalText(stmts)
	if err != nil {
		return err
	}
	_, err = p.w.Write(text)
	return err
}

func (p *CPrettyPrinter) MarshalText(stmts []ast.Stmt) ([]byte, error) {
	p.buf.Reset()
	p.indent = 0
	p.atLineStart = true

	printed := 0
	for i, stmt := range stmts {
		if _, ok := stmt.(*ast.Empty); ok && len(stmts) == 1 {
			break
		}
		if printed > 0 && (hasBody(stmt) || hasBody(stmts[i-1])) {
			p.newline()
		}
		p.printStmt(stmt)
		printed++
	}
	return bytes.Clone(p.buf.Bytes()), nil
}

func hasBody(stmt ast.Stmt) bool {
	fn, ok := stmt.(*ast.FunctionDeclaration)
	return ok && !fn.Prototype
}

func (p *CPrettyPrinter) writeIndent() {
	if !p.atLineStart {
		return
	}
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString(p.indentStr)
	}
	p.atLineStart = false
}

func (p *CPrettyPrinter) write(s string) {
	p.writeIndent()
	p.buf.WriteString(s)
}

func (p *CPrettyPrinter) newline() {
	p.buf.WriteString("\n")
	p.atLineStart = true
}

// declarator renders "type name" with the pointer stars attached to the
// name, as in "char **argv".
func declarator(t ast.Type, name string) string {
	return t.Name + " " + strings.Repeat("*", t.Pointer) + name
}

func (p *CPrettyPrinter) printFunction(fn *ast.FunctionDeclaration) {
	p.write(declarator(fn.Type, fn.Name))
	p.write("(")
	for i, arg := range fn.Args {
		if i > 0 {
			p.write(", ")
		}
		p.write(declarator(arg.Type, arg.Name))
	}
	p.write(")")

	if fn.Prototype {
		p.write(";")
		p.newline()
		return
	}
	p.write(" ")
	p.printBlock(fn.Body)
	p.newline()
}

func (p *CPrettyPrinter) printBlock(body []ast.Stmt) {
	p.write("{")
	p.newline()
	p.indent++
	for _, stmt := range body {
		p.printStmt(stmt)
	}
	p.indent--
	p.write("}")
}
