package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type Option func(*Lexer)

func WithFile(name string) Option {
	return func(l *Lexer) {
		l.file = name
	}
}

// Lexer produces tokens on demand from a source buffer. Tokens refer to
// the buffer by byte offset and substring; nothing is copied.
type Lexer struct {
	input string
	file  string
	pos   int
	err   error
}

func New(input string, opts ...Option) *Lexer {
	l := &Lexer{input: input}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Source returns the buffer being lexed.
func (l *Lexer) Source() string {
	return l.input
}

func (l *Lexer) File() string {
	return l.file
}

// Offset returns the byte offset of the cursor. It always lies on a rune
// boundary.
func (l *Lexer) Offset() int {
	return l.pos
}

// Position computes the line and column of the cursor by walking the
// buffer from the start.
func (l *Lexer) Position() Position {
	return Locate(l.input, l.file, l.pos)
}

func (l *Lexer) peekByte(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) match(c byte) bool {
	if l.pos < len(l.input) && l.input[l.pos] == c {
		l.pos++
		return true
	}
	return false
}

func (l *Lexer) followedBy(c byte, then, otherwise TokenKind) TokenKind {
	if l.match(c) {
		return then
	}
	return otherwise
}

func (l *Lexer) fail(kind LexErrorKind, offset int, ch rune) error {
	l.err = &LexError{
		Whole:  l.input,
		File:   l.file,
		Offset: offset,
		Char:   ch,
		Kind:   kind,
	}
	return l.err
}

// NextToken returns the next token, or a token of kind EOF once the input
// is exhausted. The first lexical error is returned by this and every
// subsequent call.
func (l *Lexer) NextToken() (Token, error) {
	if l.err != nil {
		return Token{Kind: Illegal, Start: l.pos, End: l.pos}, l.err
	}
	if err := l.skipTrivia(); err != nil {
		return Token{Kind: Illegal, Start: l.pos, End: l.pos}, err
	}

	start := l.pos
	if start >= len(l.input) {
		return Token{Kind: EOF, Start: start, End: start}, nil
	}

	r, size := utf8.DecodeRuneInString(l.input[start:])
	switch {
	case r == utf8.RuneError && size == 1:
		return Token{Kind: Illegal, Start: start, End: start}, l.fail(InvalidUTF8, start, r)
	case isIdentStart(r):
		return l.scanIdentOrKeyword(start), nil
	case isDigit(r) || (r == '.' && isDigit(rune(l.peekByte(1)))):
		return l.scanNumber(start), nil
	case r == '"':
		return l.scanString(start)
	}

	if kind, ok := l.scanPunctuation(); ok {
		return Token{Kind: kind, Text: l.input[start:l.pos], Start: start, End: l.pos}, nil
	}
	return Token{Kind: Illegal, Start: start, End: start}, l.fail(UnexpectedChar, start, r)
}

func (l *Lexer) skipTrivia() error {
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		switch {
		case c == '/' && l.peekByte(1) == '/':
			end := strings.IndexByte(l.input[l.pos:], '\n')
			if end < 0 {
				l.pos = len(l.input)
			} else {
				l.pos += end + 1
			}
		case c == '/' && l.peekByte(1) == '*':
			end := strings.Index(l.input[l.pos+2:], "*/")
			if end < 0 {
				return l.fail(UnterminatedComment, l.pos, '/')
			}
			l.pos += 2 + end + 2
		default:
			r, size := utf8.DecodeRuneInString(l.input[l.pos:])
			if !unicode.IsSpace(r) {
				return nil
			}
			l.pos += size
		}
	}
	return nil
}

func (l *Lexer) scanIdentOrKeyword(start int) Token {
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if !isIdentPart(r) {
			break
		}
		l.pos += size
	}
	text := l.input[start:l.pos]
	if kw, ok := LookupKeyword(text); ok {
		return Token{Kind: Keyword, Keyword: kw, Text: text, Start: start, End: l.pos}
	}
	return Token{Kind: Ident, Text: text, Start: start, End: l.pos}
}

// scanNumber consumes a preprocessing number: digits, letters, underscores,
// dots, and a sign directly after an exponent marker. The spelling is
// classified but not interpreted.
func (l *Lexer) scanNumber(start int) Token {
	rest := l.input[start:]
	hex := strings.HasPrefix(rest, "0x") || strings.HasPrefix(rest, "0X")
	isFloat := false

loop:
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		switch {
		case c == '.':
			isFloat = true
			l.pos++
		case isASCIIAlnum(c) || c == '_':
			l.pos++
			exponent := (!hex && (c == 'e' || c == 'E')) || (hex && (c == 'p' || c == 'P'))
			if exponent {
				isFloat = true
				if next := l.peekByte(0); next == '+' || next == '-' {
					l.pos++
				}
			}
		default:
			break loop
		}
	}

	kind := Integer
	if isFloat {
		kind = Float
	}
	return Token{Kind: kind, Text: l.input[start:l.pos], Start: start, End: l.pos}
}

func (l *Lexer) scanString(start int) (Token, error) {
	l.pos++
	contentStart := l.pos
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		switch c {
		case '"':
			text := l.input[contentStart:l.pos]
			l.pos++
			return Token{Kind: String, Text: text, Start: start, End: l.pos}, nil
		case '\n':
			return Token{Kind: Illegal, Start: start, End: start}, l.fail(UnterminatedString, start, '"')
		case '\\':
			l.pos++
			if l.pos >= len(l.input) {
				break
			}
			_, size := utf8.DecodeRuneInString(l.input[l.pos:])
			l.pos += size
		default:
			r, size := utf8.DecodeRuneInString(l.input[l.pos:])
			if r == utf8.RuneError && size == 1 {
				return Token{Kind: Illegal, Start: start, End: start}, l.fail(InvalidUTF8, l.pos, r)
			}
			l.pos += size
		}
	}
	return Token{Kind: Illegal, Start: start, End: start}, l.fail(UnterminatedString, start, '"')
}

func (l *Lexer) scanPunctuation() (TokenKind, bool) {
	c := l.input[l.pos]
	l.pos++
	switch c {
	case '(':
		return ParenOpen, true
	case ')':
		return ParenClose, true
	case '{':
		return BraceOpen, true
	case '}':
		return BraceClose, true
	case '[':
		return BracketOpen, true
	case ']':
		return BracketClose, true
	case ',':
		return Comma, true
	case ';':
		return Semicolon, true
	case ':':
		return Colon, true
	case '.':
		return Dot, true
	case '?':
		return Question, true
	case '+':
		if l.match('+') {
			return PlusPlus, true
		}
		return l.followedBy('=', PlusEqual, Plus), true
	case '-':
		if l.match('>') {
			return Arrow, true
		}
		if l.match('-') {
			return MinusMinus, true
		}
		return l.followedBy('=', MinusEqual, Minus), true
	case '*':
		return l.followedBy('=', StarEqual, Star), true
	case '/':
		return l.followedBy('=', SlashEqual, Slash), true
	case '%':
		return l.followedBy('=', PercentEqual, Percent), true
	case '~':
		return l.followedBy('=', TildeEqual, Tilde), true
	case '!':
		return l.followedBy('=', BangEqual, Bang), true
	case '=':
		return l.followedBy('=', EqualEqual, Equal), true
	case '^':
		return l.followedBy('=', CaretEqual, Caret), true
	case '&':
		if l.match('&') {
			return DoubleAmpersand, true
		}
		return l.followedBy('=', AmpersandEqual, Ampersand), true
	case '|':
		if l.match('|') {
			return DoublePipe, true
		}
		return l.followedBy('=', PipeEqual, Pipe), true
	case '<':
		if l.match('<') {
			return l.followedBy('=', ShiftLeftEqual, ShiftLeft), true
		}
		return l.followedBy('=', LessEqual, Less), true
	case '>':
		if l.match('>') {
			return l.followedBy('=', ShiftRightEqual, ShiftRight), true
		}
		return l.followedBy('=', GreaterEqual, Greater), true
	}
	l.pos--
	return Illegal, false
}

// Tokenize lexes the whole input. The trailing EOF token is not included.
func Tokenize(input string, opts ...Option) ([]Token, error) {
	l := New(input, opts...)
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == EOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// Locate converts a byte offset into a line and column. Lines and columns
// start at 1 and columns count runes. Offsets past the end are clamped.
func Locate(source, file string, offset int) Position {
	if offset > len(source) {
		offset = len(source)
	}
	if offset < 0 {
		offset = 0
	}
	line, col := 1, 1
	for _, r := range source[:offset] {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return Position{File: file, Offset: offset, Line: line, Column: col}
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isASCIIAlnum(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
