package lsp

import (
	"github.com/dhamidi/cfront/c/ast"
	"github.com/dhamidi/cfront/c/lexer"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (ls *Server) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	f := ls.codebase.GetFile(path)
	if f == nil || f.AST == nil {
		return nil, nil
	}
	return documentSymbols(string(f.Content), f.AST), nil
}

func documentSymbols(source string, stmts []ast.Stmt) []protocol.DocumentSymbol {
	symbols := []protocol.DocumentSymbol{}
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.FunctionDeclaration:
			sym := declSymbol(source, s.Span, s.Name, functionDetail(s), protocol.SymbolKindFunction)
			for _, body := range s.Body {
				ast.Walk(body, func(n ast.Node) bool {
					if v, ok := n.(*ast.VarDeclaration); ok {
						sym.Children = append(sym.Children, declSymbol(source, v.Span, v.Name, v.Type.String(), protocol.SymbolKindVariable))
					}
					return true
				})
			}
			symbols = append(symbols, sym)
		case *ast.VarDeclaration:
			symbols = append(symbols, declSymbol(source, s.Span, s.Name, s.Type.String(), protocol.SymbolKindVariable))
		}
	}
	return symbols
}

func functionDetail(fn *ast.FunctionDeclaration) string {
	detail := fn.Type.String() + " ("
	for i, arg := range fn.Args {
		if i > 0 {
			detail += ", "
		}
		detail += arg.Type.String()
	}
	return detail + ")"
}

func declSymbol(source string, span ast.Span, name, detail string, kind protocol.SymbolKind) protocol.DocumentSymbol {
	start, end := nameSpan(source, span)
	return protocol.DocumentSymbol{
		Name:           name,
		Detail:         &detail,
		Kind:           kind,
		Range:          toRange(source, span.Start, span.End),
		SelectionRange: toRange(source, start, end),
	}
}

// nameSpan finds the declared name inside a declaration: the last
// identifier before the argument list, initializer or terminating ';'.
func nameSpan(source string, span ast.Span) (int, int) {
	lex := lexer.New(source[span.Start:span.End])
	start, end := span.Start, span.Start
	for {
		tok, err := lex.NextToken()
		if err != nil || tok.Kind == lexer.EOF {
			break
		}
		if tok.Kind == lexer.ParenOpen || tok.Kind == lexer.Equal || tok.Kind == lexer.Semicolon {
			break
		}
		if tok.Kind == lexer.Ident {
			start, end = span.Start+tok.Start, span.Start+tok.End
		}
	}
	return start, end
}

// textDocumentDefinition resolves the identifier under the cursor to a
// top-level declaration anywhere in the codebase.
func (ls *Server) textDocumentDefinition(ctx *glsp.Context, params *protocol.DefinitionParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	f := ls.codebase.GetFile(path)
	if f == nil {
		return nil, nil
	}

	source := string(f.Content)
	name, ok := identAt(source, toOffset(source, params.Position))
	if !ok {
		return nil, nil
	}
	sym, ok := ls.codebase.FindSymbol(name)
	if !ok {
		return nil, nil
	}
	target := ls.codebase.GetFile(sym.Path)
	if target == nil {
		return nil, nil
	}
	start, end := nameSpan(string(target.Content), sym.Span)
	return protocol.Location{
		URI:   pathToURI(sym.Path),
		Range: toRange(string(target.Content), start, end),
	}, nil
}

func identAt(source string, offset int) (string, bool) {
	lex := lexer.New(source)
	for {
		tok, err := lex.NextToken()
		if err != nil || tok.Kind == lexer.EOF || tok.Start > offset {
			return "", false
		}
		if tok.Kind == lexer.Ident && offset <= tok.End {
			return tok.Text, true
		}
	}
}
