package parser

import (
	"strings"

	"github.com/dhamidi/cfront/c/ast"
	"github.com/dhamidi/cfront/c/lexer"
)

// parseType reads declaration specifiers and qualifiers, or a single
// typedef name, followed by any number of '*'. Qualifiers after a '*' are
// accepted and dropped.
func (p *Parser) parseType() (ast.Type, error) {
	var words []string
	named := false
	for {
		tok := p.peek()
		if tok.Kind == lexer.Keyword {
			kw := tok.Keyword
			if kw.IsTypeSpecifier() {
				named = true
			} else if !kw.IsQualifier() && !kw.IsStorageClass() {
				break
			}
			words = append(words, tok.Text)
			p.advance()
			continue
		}
		if tok.Kind == lexer.Ident && !named {
			words = append(words, tok.Text)
			named = true
			p.advance()
			continue
		}
		break
	}
	if !named {
		return ast.Type{}, wrap(ErrSymbolNotFound, p.unexpected("type name"))
	}

	typ := ast.Type{Name: strings.Join(words, " ")}
	for p.match(lexer.Star) {
		typ.Pointer++
		for p.checkKeyword(lexer.KwConst) || p.checkKeyword(lexer.KwVolatile) {
			p.advance()
		}
	}
	return typ, nil
}

func (p *Parser) parseSymbol() (lexer.Token, error) {
	tok := p.peek()
	if tok.Kind == lexer.Ident {
		return p.advance(), nil
	}
	return tok, wrap(ErrSymbolNotFound, p.unexpected("identifier"))
}

func (p *Parser) parseFunction() (*ast.FunctionDeclaration, error) {
	start := p.peek().Start

	typ, err := p.parseType()
	if err != nil {
		return nil, wrap(ErrNoReturnType, err)
	}
	name, err := p.parseSymbol()
	if err != nil {
		return nil, wrap(ErrNoFunctionName, err)
	}
	if !p.check(lexer.ParenOpen) {
		return nil, wrap(ErrArguments, wrap(ErrMissingOpenParen, p.unexpected("'('")))
	}
	p.tracef("committed to function %s", name.Text)

	inFunction := func(err error) error {
		return p.commit(&Error{Kind: ErrInFunction, Detail: name.Text, Cause: err})
	}

	args, err := p.parseFunctionArguments()
	if err != nil {
		return nil, inFunction(wrap(ErrArguments, err))
	}

	fn := &ast.FunctionDeclaration{Type: typ, Name: name.Text, Args: args}
	if p.match(lexer.Semicolon) {
		fn.Prototype = true
		fn.Span = ast.Span{Start: start, End: p.prevEnd()}
		return fn, nil
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, inFunction(wrap(ErrFunctionBody, err))
	}
	fn.Body = body.Body
	fn.Span = ast.Span{Start: start, End: body.End}
	return fn, nil
}

// parseFunctionArguments reads a parenthesized list of "type name" pairs.
// "()" and "(void)" both yield an empty list; a trailing comma is an
// error.
func (p *Parser) parseFunctionArguments() ([]ast.Arg, error) {
	if _, err := p.expect(lexer.ParenOpen); err != nil {
		return nil, wrap(ErrMissingOpenParen, err)
	}

	args := []ast.Arg{}
	if p.match(lexer.ParenClose) {
		return args, nil
	}
	if p.checkKeyword(lexer.KwVoid) && p.peekN(1).Kind == lexer.ParenClose {
		p.advance()
		p.advance()
		return args, nil
	}

	for {
		typ, err := p.parseType()
		if err != nil {
			return nil, wrap(ErrArgumentType, err)
		}
		name, err := p.parseSymbol()
		if err != nil {
			return nil, wrap(ErrArgumentName, err)
		}
		args = append(args, ast.Arg{Type: typ, Name: name.Text})

		if p.match(lexer.Comma) {
			continue
		}
		if p.match(lexer.ParenClose) {
			return args, nil
		}
		return nil, wrap(ErrMissingCloseParen, p.unexpected("',' or ')'"))
	}
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	open, err := p.expect(lexer.BraceOpen)
	if err != nil {
		return nil, wrap(ErrMissingOpenBrace, err)
	}

	body := []ast.Stmt{}
	for !p.check(lexer.BraceClose) {
		if p.check(lexer.EOF) {
			return nil, wrap(ErrMissingCloseBrace, p.unexpected("'}'"))
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	closeTok := p.advance()

	return &ast.Block{Span: ast.Span{Start: open.Start, End: closeTok.End}, Body: body}, nil
}

func (p *Parser) parseStatement() (ast.Stmt, error) {
	defer p.leave()
	if err := p.enter(); err != nil {
		return nil, err
	}

	tok := p.peek()

	switch tok.Kind {
	case lexer.BraceOpen:
		return p.parseBlock()
	case lexer.Semicolon:
		p.advance()
		return &ast.Empty{Span: ast.Span{Start: tok.Start, End: tok.End}}, nil
	case lexer.Keyword:
		switch tok.Keyword {
		case lexer.KwReturn:
			return p.parseReturn()
		case lexer.KwIf:
			return p.parseIf()
		case lexer.KwWhile:
			return p.parseWhile()
		case lexer.KwFor:
			return p.parseFor()
		case lexer.KwBreak:
			p.advance()
			if err := p.expectSemicolon(); err != nil {
				return nil, err
			}
			return &ast.Break{Span: ast.Span{Start: tok.Start, End: p.prevEnd()}}, nil
		case lexer.KwContinue:
			p.advance()
			if err := p.expectSemicolon(); err != nil {
				return nil, err
			}
			return &ast.Continue{Span: ast.Span{Start: tok.Start, End: p.prevEnd()}}, nil
		}
	}

	return p.parseSimpleStatement()
}

// parseSimpleStatement handles the statements that cannot be told apart
// by their first token.
func (p *Parser) parseSimpleStatement() (ast.Stmt, error) {
	return alt(p,
		alternative[ast.Stmt]{"variable declaration", func(p *Parser) (ast.Stmt, error) {
			return p.parseVarDeclaration()
		}},
		alternative[ast.Stmt]{"expression statement", (*Parser).parseExprStatement},
	)
}

func (p *Parser) expectSemicolon() error {
	if _, err := p.expect(lexer.Semicolon); err != nil {
		return wrap(ErrMissingSemicolon, err)
	}
	return nil
}

// parseVarDeclaration reads "type name;" or "type name = expr;". It
// commits once the '=' is consumed.
func (p *Parser) parseVarDeclaration() (*ast.VarDeclaration, error) {
	start := p.peek().Start

	typ, err := p.parseType()
	if err != nil {
		return nil, wrap(ErrVariableType, err)
	}
	name, err := p.parseSymbol()
	if err != nil {
		return nil, wrap(ErrVariableName, err)
	}

	decl := &ast.VarDeclaration{Type: typ, Name: name.Text}
	if p.match(lexer.Equal) {
		p.tracef("committed to variable %s", name.Text)
		rhs, err := p.parseExpr(0)
		if err != nil {
			return nil, p.commit(wrap(ErrInitializer, err))
		}
		decl.Rhs = rhs
	}

	if err := p.expectSemicolon(); err != nil {
		if decl.Rhs != nil {
			return nil, p.commit(err)
		}
		return nil, err
	}
	decl.Span = ast.Span{Start: start, End: p.prevEnd()}
	return decl, nil
}

// parseExprStatement reads an expression followed by ';'. A bare atom is
// returned as the statement itself.
func (p *Parser) parseExprStatement() (ast.Stmt, error) {
	x, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if err := p.expectSemicolon(); err != nil {
		return nil, err
	}
	if atom, ok := x.(*ast.Atom); ok {
		return atom, nil
	}
	return &ast.ExprStatement{Span: ast.Span{Start: x.Pos().Start, End: p.prevEnd()}, X: x}, nil
}

func (p *Parser) parseReturn() (ast.Stmt, error) {
	start := p.advance().Start
	ret := &ast.Return{}
	if !p.check(lexer.Semicolon) {
		x, err := p.parseExpr(0)
		if err != nil {
			return nil, wrap(ErrReturn, err)
		}
		ret.X = x
	}
	if err := p.expectSemicolon(); err != nil {
		return nil, err
	}
	ret.Span = ast.Span{Start: start, End: p.prevEnd()}
	return ret, nil
}

// parseCondition reads the parenthesized controlling expression of an if
// or while statement.
func (p *Parser) parseCondition() (ast.Expr, error) {
	if _, err := p.expect(lexer.ParenOpen); err != nil {
		return nil, wrap(ErrCondition, wrap(ErrMissingOpenParen, err))
	}
	cond, err := p.parseExpr(0)
	if err != nil {
		return nil, wrap(ErrCondition, err)
	}
	if _, err := p.expect(lexer.ParenClose); err != nil {
		return nil, wrap(ErrCondition, wrap(ErrMissingCloseParen, err))
	}
	return cond, nil
}

func (p *Parser) parseIf() (ast.Stmt, error) {
	start := p.advance().Start
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	stmt := &ast.If{Cond: cond, Then: then}
	if p.checkKeyword(lexer.KwElse) {
		p.advance()
		els, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmt.Else = els
	}
	stmt.Span = ast.Span{Start: start, End: p.prevEnd()}
	return stmt, nil
}

func (p *Parser) parseWhile() (ast.Stmt, error) {
	start := p.advance().Start
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.While{Span: ast.Span{Start: start, End: p.prevEnd()}, Cond: cond, Body: body}, nil
}

func (p *Parser) parseFor() (ast.Stmt, error) {
	start := p.advance().Start
	if _, err := p.expect(lexer.ParenOpen); err != nil {
		return nil, wrap(ErrForClause, wrap(ErrMissingOpenParen, err))
	}

	stmt := &ast.For{}
	if !p.match(lexer.Semicolon) {
		initStmt, err := p.parseSimpleStatement()
		if err != nil {
			return nil, wrap(ErrForClause, err)
		}
		stmt.Init = initStmt
	}
	if !p.check(lexer.Semicolon) {
		cond, err := p.parseExpr(0)
		if err != nil {
			return nil, wrap(ErrForClause, err)
		}
		stmt.Cond = cond
	}
	if err := p.expectSemicolon(); err != nil {
		return nil, wrap(ErrForClause, err)
	}
	if !p.check(lexer.ParenClose) {
		post, err := p.parseExpr(0)
		if err != nil {
			return nil, wrap(ErrForClause, err)
		}
		stmt.Post = post
	}
	if _, err := p.expect(lexer.ParenClose); err != nil {
		return nil, wrap(ErrForClause, wrap(ErrMissingCloseParen, err))
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	stmt.Body = body
	stmt.Span = ast.Span{Start: start, End: p.prevEnd()}
	return stmt, nil
}
