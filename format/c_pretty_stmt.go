package format

import (
	"github.com/dhamidi/cfront/c/ast"
)

func (p *CPrettyPrinter) printStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.FunctionDeclaration:
		p.printFunction(s)
	case *ast.Block:
		p.printBlock(s.Body)
		p.newline()
	case *ast.If:
		p.printIf(s)
	case *ast.While:
		p.write("while (")
		p.write(exprString(s.Cond))
		p.write(")")
		p.printBody(s.Body)
	case *ast.For:
		p.write("for (")
		if s.Init != nil {
			p.write(simpleStmtString(s.Init))
		}
		p.write(";")
		if s.Cond != nil {
			p.write(" " + exprString(s.Cond))
		}
		p.write(";")
		if s.Post != nil {
			p.write(" " + exprString(s.Post))
		}
		p.write(")")
		p.printBody(s.Body)
	default:
		p.write(simpleStmtString(stmt))
		p.write(";")
		p.newline()
	}
}

// printBody prints the statement controlled by if, while or for: a block
// on the same line, anything else indented on the next.
func (p *CPrettyPrinter) printBody(body ast.Stmt) {
	if block, ok := body.(*ast.Block); ok {
		p.write(" ")
		p.printBlock(block.Body)
		p.newline()
		return
	}
	p.newline()
	p.indent++
	p.printStmt(body)
	p.indent--
}

func (p *CPrettyPrinter) printIf(s *ast.If) {
	p.write("if (")
	p.write(exprString(s.Cond))
	p.write(")")

	if s.Else == nil {
		p.printBody(s.Then)
		return
	}

	if block, ok := s.Then.(*ast.Block); ok {
		p.write(" ")
		p.printBlock(block.Body)
		p.write(" ")
	} else {
		p.newline()
		p.indent++
		p.printStmt(s.Then)
		p.indent--
	}

	p.write("else")
	switch els := s.Else.(type) {
	case *ast.If:
		p.write(" ")
		p.printIf(els)
	default:
		p.printBody(els)
	}
}

// simpleStmtString renders a statement that fits on one line, without its
// terminating semicolon.
func simpleStmtString(stmt ast.Stmt) string {
	switch s := stmt.(type) {
	case *ast.VarDeclaration:
		out := declarator(s.Type, s.Name)
		if s.Rhs != nil {
			out += " = " + exprString(s.Rhs)
		}
		return out
	case *ast.ExprStatement:
		return exprString(s.X)
	case *ast.Atom:
		return s.Source()
	case *ast.Return:
		if s.X == nil {
			return "return"
		}
		return "return " + exprString(s.X)
	case *ast.Break:
		return "break"
	case *ast.Continue:
		return "continue"
	}
	return ""
}
