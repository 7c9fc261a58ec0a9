package parser

import (
	"github.com/dhamidi/cfront/c/ast"
	"github.com/dhamidi/cfront/c/lexer"
	"github.com/tliron/commonlog"
)

type Option func(*Parser)

func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// WithTrace logs every alternative tried and every production committed
// to at debug level.
func WithTrace(log commonlog.Logger) Option {
	return func(p *Parser) {
		p.trace = log
	}
}

// Parser pulls tokens from a lexer on demand and keeps them buffered so
// alternatives can rewind.
type Parser struct {
	file   string
	source string
	lexer  *lexer.Lexer
	tokens []lexer.Token
	pos    int
	lexErr error
	trace  commonlog.Logger

	depth    int
	depthErr error
}

// maxNesting bounds the recursion of expressions and statements.
const maxNesting = 1000

func New(source string, opts ...Option) *Parser {
	p := &Parser{source: source}
	for _, opt := range opts {
		opt(p)
	}
	p.lexer = lexer.New(source, lexer.WithFile(p.file))
	return p
}

// Parse parses a whole translation unit. On failure no partial result is
// returned.
func Parse(source string, opts ...Option) ([]ast.Stmt, error) {
	return New(source, opts...).ParseProgram()
}

// ParseExpression parses source as exactly one expression.
func ParseExpression(source string, opts ...Option) (ast.Expr, error) {
	p := New(source, opts...)
	expr, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if !p.check(lexer.EOF) {
		return nil, wrap(ErrTrailingInput, p.unexpected("end of input"))
	}
	return expr, nil
}

func (p *Parser) File() string {
	return p.file
}

func (p *Parser) Source() string {
	return p.source
}

// ParseProgram parses top-level declarations until the end of input. A
// buffer without declarations yields a single *ast.Empty.
func (p *Parser) ParseProgram() ([]ast.Stmt, error) {
	var decls []ast.Stmt
	for !p.check(lexer.EOF) {
		decl, err := alt(p,
			alternative[ast.Stmt]{"function declaration", func(p *Parser) (ast.Stmt, error) {
				return p.parseFunction()
			}},
			alternative[ast.Stmt]{"variable declaration", func(p *Parser) (ast.Stmt, error) {
				return p.parseVarDeclaration()
			}},
		)
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}
	if len(decls) == 0 {
		return []ast.Stmt{&ast.Empty{Span: ast.Span{Start: 0, End: len(p.source)}}}, nil
	}
	return decls, nil
}

func (p *Parser) fill(n int) {
	for len(p.tokens) <= p.pos+n {
		if len(p.tokens) > 0 {
			last := p.tokens[len(p.tokens)-1].Kind
			if last == lexer.EOF || last == lexer.Illegal {
				return
			}
		}
		tok, err := p.lexer.NextToken()
		if err != nil {
			p.lexErr = err
			tok.Kind = lexer.Illegal
		}
		p.tokens = append(p.tokens, tok)
	}
}

func (p *Parser) peekN(n int) lexer.Token {
	p.fill(n)
	idx := p.pos + n
	if idx >= len(p.tokens) {
		idx = len(p.tokens) - 1
	}
	return p.tokens[idx]
}

func (p *Parser) peek() lexer.Token {
	return p.peekN(0)
}

func (p *Parser) advance() lexer.Token {
	tok := p.peek()
	if tok.Kind != lexer.EOF && tok.Kind != lexer.Illegal {
		p.pos++
	}
	return tok
}

// prevEnd returns the end offset of the last consumed token.
func (p *Parser) prevEnd() int {
	if p.pos == 0 {
		return 0
	}
	return p.tokens[p.pos-1].End
}

func (p *Parser) check(kind lexer.TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) checkKeyword(kw lexer.Reserved) bool {
	tok := p.peek()
	return tok.Kind == lexer.Keyword && tok.Keyword == kw
}

func (p *Parser) match(kind lexer.TokenKind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(kind lexer.TokenKind) (lexer.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return p.peek(), p.unexpected("'" + kind.Spelling() + "'")
}

// unexpected reports the current token as a mismatch, or the lexical
// error that stopped the token stream.
func (p *Parser) unexpected(expected string) error {
	tok := p.peek()
	if tok.Kind == lexer.Illegal && p.lexErr != nil {
		return p.lexErr
	}
	return &MismatchError{Expected: expected, Got: tok}
}

// enter records one more level of nesting. It fails once maxNesting is
// exceeded; every later failure carries that same error so alt gives up
// instead of retrying.
func (p *Parser) enter() error {
	p.depth++
	if p.depth <= maxNesting {
		return nil
	}
	if p.depthErr == nil {
		p.depthErr = wrap(ErrTooDeep, &NestingError{Limit: maxNesting, Got: p.peek()})
	}
	return p.depthErr
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) commit(err error) error {
	if p.trace != nil {
		p.trace.Debugf("committed failure at offset %d: %s", p.peek().Start, err)
	}
	return &committedError{err: err}
}

func (p *Parser) tracef(format string, values ...any) {
	if p.trace != nil {
		p.trace.Debugf(format, values...)
	}
}
