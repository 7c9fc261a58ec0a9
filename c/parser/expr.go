package parser

import (
	"github.com/dhamidi/cfront/c/ast"
	"github.com/dhamidi/cfront/c/lexer"
)

// parseExpr parses an expression whose operators all bind tighter than
// minBP. It stops in front of the first token that cannot continue the
// expression, such as ';', ')' or ','.
func (p *Parser) parseExpr(minBP int) (ast.Expr, error) {
	defer p.leave()
	if err := p.enter(); err != nil {
		return nil, err
	}

	lhs, err := p.parseOperand()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.peek()

		if bp, ok := postfixBindingPower(tok.Kind); ok {
			if bp <= minBP {
				break
			}
			lhs, err = p.parsePostfix(lhs)
			if err != nil {
				return nil, err
			}
			continue
		}

		lbp, rbp, ok := infixBindingPower(tok.Kind)
		if !ok || lbp <= minBP {
			break
		}
		p.advance()

		switch tok.Kind {
		case lexer.Question:
			lhs, err = p.parseConditional(lhs, rbp)
		case lexer.Dot, lexer.Arrow:
			lhs, err = p.parseMember(lhs, tok.Kind)
		default:
			var rhs ast.Expr
			rhs, err = p.parseExpr(rbp)
			if err == nil {
				lhs = &ast.Binary{
					Span:  ast.Span{Start: lhs.Pos().Start, End: rhs.Pos().End},
					Op:    tok.Kind,
					Left:  lhs,
					Right: rhs,
				}
			}
		}
		if err != nil {
			return nil, err
		}
	}

	return lhs, nil
}

func (p *Parser) parseOperand() (ast.Expr, error) {
	tok := p.peek()

	switch tok.Kind {
	case lexer.ParenOpen:
		p.advance()
		inner, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		closeTok, err := p.expect(lexer.ParenClose)
		if err != nil {
			return nil, wrap(ErrUnmatchedParen, err)
		}
		return &ast.Paren{Span: ast.Span{Start: tok.Start, End: closeTok.End}, X: inner}, nil

	case lexer.String, lexer.Integer, lexer.Float, lexer.Ident:
		return p.parseAtom()

	case lexer.Keyword:
		if tok.Keyword == lexer.KwSizeof {
			p.advance()
			rbp, _ := prefixBindingPower(lexer.Plus)
			x, err := p.parseExpr(rbp)
			if err != nil {
				return nil, err
			}
			return &ast.SizeOf{Span: ast.Span{Start: tok.Start, End: x.Pos().End}, X: x}, nil
		}
		if tok.Keyword.IsTypeSpecifier() {
			return p.parseAtom()
		}
	}

	if rbp, ok := prefixBindingPower(tok.Kind); ok {
		p.advance()
		x, err := p.parseExpr(rbp)
		if err != nil {
			return nil, err
		}
		return &ast.Prefix{Span: ast.Span{Start: tok.Start, End: x.Pos().End}, Op: tok.Kind, X: x}, nil
	}

	return nil, wrap(ErrExpectedExpression, p.unexpected("operand"))
}

func (p *Parser) parseAtom() (ast.Expr, error) {
	atom, err := ast.FromToken(p.peek())
	if err != nil {
		return nil, wrap(ErrInvalidLiteral, err)
	}
	p.advance()
	return atom, nil
}

func (p *Parser) parsePostfix(lhs ast.Expr) (ast.Expr, error) {
	tok := p.advance()
	start := lhs.Pos().Start

	switch tok.Kind {
	case lexer.ParenOpen:
		args := []ast.Expr{}
		if !p.check(lexer.ParenClose) {
			for {
				arg, err := p.parseExpr(0)
				if err != nil {
					return nil, wrap(ErrCallArguments, err)
				}
				args = append(args, arg)
				if !p.match(lexer.Comma) {
					break
				}
			}
		}
		closeTok, err := p.expect(lexer.ParenClose)
		if err != nil {
			return nil, wrap(ErrCallArguments, wrap(ErrMissingCloseParen, err))
		}
		return &ast.Call{Span: ast.Span{Start: start, End: closeTok.End}, Fn: lhs, Args: args}, nil

	case lexer.BracketOpen:
		sub, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		closeTok, err := p.expect(lexer.BracketClose)
		if err != nil {
			return nil, wrap(ErrUnmatchedBracket, err)
		}
		return &ast.Index{Span: ast.Span{Start: start, End: closeTok.End}, X: lhs, Subscript: sub}, nil
	}

	return &ast.Postfix{Span: ast.Span{Start: start, End: tok.End}, Op: tok.Kind, X: lhs}, nil
}

func (p *Parser) parseConditional(cond ast.Expr, rbp int) (ast.Expr, error) {
	then, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.Colon); err != nil {
		return nil, wrap(ErrExpectedColon, err)
	}
	els, err := p.parseExpr(rbp)
	if err != nil {
		return nil, err
	}
	return &ast.Conditional{
		Span: ast.Span{Start: cond.Pos().Start, End: els.Pos().End},
		Cond: cond,
		Then: then,
		Else: els,
	}, nil
}

// parseMember reads the name after '.' or '->'. Only an identifier may
// follow, so the right-hand side is not parsed as a full expression.
func (p *Parser) parseMember(lhs ast.Expr, op lexer.TokenKind) (ast.Expr, error) {
	name, err := p.parseSymbol()
	if err != nil {
		return nil, wrap(ErrMemberName, err)
	}
	member := &ast.Atom{
		Span: ast.Span{Start: name.Start, End: name.End},
		Kind: ast.AtomIdent,
		Text: name.Text,
	}
	return &ast.Binary{
		Span:  ast.Span{Start: lhs.Pos().Start, End: name.End},
		Op:    op,
		Left:  lhs,
		Right: member,
	}, nil
}
