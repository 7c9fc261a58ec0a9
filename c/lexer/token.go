package lexer

import "fmt"

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Span struct {
	Start Position
	End   Position
}

type TokenKind int

const (
	EOF TokenKind = iota
	Illegal

	// Delimiters
	ParenOpen
	ParenClose
	BraceOpen
	BraceClose
	BracketOpen
	BracketClose

	// Separators
	Comma
	Semicolon
	Colon
	Dot
	Question

	// Arithmetic
	Plus
	Minus
	Star
	Slash
	Percent
	Tilde
	PlusEqual
	MinusEqual
	StarEqual
	SlashEqual
	PercentEqual
	TildeEqual
	PlusPlus
	MinusMinus

	// Assignment and comparison
	Equal
	EqualEqual
	Bang
	BangEqual
	Less
	LessEqual
	Greater
	GreaterEqual

	// Logical and bitwise
	Ampersand
	DoubleAmpersand
	AmpersandEqual
	Pipe
	DoublePipe
	PipeEqual
	Caret
	CaretEqual
	ShiftLeft
	ShiftRight
	ShiftLeftEqual
	ShiftRightEqual

	Arrow

	// Literals
	String
	Integer
	Float

	Keyword
	Ident
)

var tokenKindNames = map[TokenKind]string{
	EOF:             "EOF",
	Illegal:         "Illegal",
	ParenOpen:       "ParenOpen",
	ParenClose:      "ParenClose",
	BraceOpen:       "BraceOpen",
	BraceClose:      "BraceClose",
	BracketOpen:     "BracketOpen",
	BracketClose:    "BracketClose",
	Comma:           "Comma",
	Semicolon:       "Semicolon",
	Colon:           "Colon",
	Dot:             "Dot",
	Question:        "Question",
	Plus:            "Plus",
	Minus:           "Minus",
	Star:            "Star",
	Slash:           "Slash",
	Percent:         "Percent",
	Tilde:           "Tilde",
	PlusEqual:       "PlusEqual",
	MinusEqual:      "MinusEqual",
	StarEqual:       "StarEqual",
	SlashEqual:      "SlashEqual",
	PercentEqual:    "PercentEqual",
	TildeEqual:      "TildeEqual",
	PlusPlus:        "PlusPlus",
	MinusMinus:      "MinusMinus",
	Equal:           "Equal",
	EqualEqual:      "EqualEqual",
	Bang:            "Bang",
	BangEqual:       "BangEqual",
	Less:            "Less",
	LessEqual:       "LessEqual",
	Greater:         "Greater",
	GreaterEqual:    "GreaterEqual",
	Ampersand:       "Ampersand",
	DoubleAmpersand: "DoubleAmpersand",
	AmpersandEqual:  "AmpersandEqual",
	Pipe:            "Pipe",
	DoublePipe:      "DoublePipe",
	PipeEqual:       "PipeEqual",
	Caret:           "Caret",
	CaretEqual:      "CaretEqual",
	ShiftLeft:       "ShiftLeft",
	ShiftRight:      "ShiftRight",
	ShiftLeftEqual:  "ShiftLeftEqual",
	ShiftRightEqual: "ShiftRightEqual",
	Arrow:           "Arrow",
	String:          "String",
	Integer:         "Integer",
	Float:           "Float",
	Keyword:         "Keyword",
	Ident:           "Ident",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

var punctuation = map[TokenKind]string{
	ParenOpen:       "(",
	ParenClose:      ")",
	BraceOpen:       "{",
	BraceClose:      "}",
	BracketOpen:     "[",
	BracketClose:    "]",
	Comma:           ",",
	Semicolon:       ";",
	Colon:           ":",
	Dot:             ".",
	Question:        "?",
	Plus:            "+",
	Minus:           "-",
	Star:            "*",
	Slash:           "/",
	Percent:         "%",
	Tilde:           "~",
	PlusEqual:       "+=",
	MinusEqual:      "-=",
	StarEqual:       "*=",
	SlashEqual:      "/=",
	PercentEqual:    "%=",
	TildeEqual:      "~=",
	PlusPlus:        "++",
	MinusMinus:      "--",
	Equal:           "=",
	EqualEqual:      "==",
	Bang:            "!",
	BangEqual:       "!=",
	Less:            "<",
	LessEqual:       "<=",
	Greater:         ">",
	GreaterEqual:    ">=",
	Ampersand:       "&",
	DoubleAmpersand: "&&",
	AmpersandEqual:  "&=",
	Pipe:            "|",
	DoublePipe:      "||",
	PipeEqual:       "|=",
	Caret:           "^",
	CaretEqual:      "^=",
	ShiftLeft:       "<<",
	ShiftRight:      ">>",
	ShiftLeftEqual:  "<<=",
	ShiftRightEqual: ">>=",
	Arrow:           "->",
}

// Spelling returns the source spelling of a punctuation kind, or the empty
// string for kinds that carry their own text.
func (k TokenKind) Spelling() string {
	return punctuation[k]
}

// IsPunctuation reports whether the kind is an operator or delimiter.
func (k TokenKind) IsPunctuation() bool {
	_, ok := punctuation[k]
	return ok
}

// Token is a lexical unit. Text is a substring of the lexed source; for
// String tokens it holds the raw contents between the quotes.
type Token struct {
	Kind    TokenKind
	Keyword Reserved
	Text    string
	Start   int
	End     int
}

// Describe renders the token the way diagnostics refer to it.
func (t Token) Describe() string {
	switch t.Kind {
	case EOF:
		return "end of input"
	case String:
		return fmt.Sprintf("string %q", t.Text)
	case Integer, Float:
		return fmt.Sprintf("number %s", t.Text)
	case Keyword:
		return fmt.Sprintf("keyword '%s'", t.Text)
	case Ident:
		return fmt.Sprintf("identifier '%s'", t.Text)
	}
	return fmt.Sprintf("'%s'", t.Text)
}

func (t Token) String() string {
	switch t.Kind {
	case String, Integer, Float, Keyword, Ident:
		return fmt.Sprintf("%s(%s)@%d", t.Kind, t.Text, t.Start)
	}
	return fmt.Sprintf("%s@%d", t.Kind, t.Start)
}
