package ast

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/dhamidi/cfront/c/lexer"
)

type AtomKind int

const (
	AtomString AtomKind = iota
	AtomInteger
	AtomFloat
	AtomKeyword
	AtomIdent
)

var atomKindNames = map[AtomKind]string{
	AtomString:  "String",
	AtomInteger: "Integer",
	AtomFloat:   "Float",
	AtomKeyword: "Keyword",
	AtomIdent:   "Ident",
}

func (k AtomKind) String() string {
	if name, ok := atomKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Atom is a literal or a name. Text is the source spelling (raw contents
// for strings); Int and Float hold the interpreted value of numeric atoms.
type Atom struct {
	Span
	Kind    AtomKind
	Text    string
	Int     *big.Int
	Float   float64
	Keyword lexer.Reserved
}

// Source returns the atom as it is spelled in C source.
func (a *Atom) Source() string {
	if a.Kind == AtomString {
		return `"` + a.Text + `"`
	}
	return a.Text
}

const maxIntegerBits = 128

type NotAnAtomError struct {
	Token lexer.Token
}

func (e *NotAnAtomError) Error() string {
	return fmt.Sprintf("%s is not an atom", e.Token.Describe())
}

func (e *NotAnAtomError) SourceOffset() int {
	return e.Token.Start
}

type InvalidIntegerError struct {
	Text   string
	Offset int
	Err    error
}

func (e *InvalidIntegerError) Error() string {
	return fmt.Sprintf("invalid integer literal %s: %v", e.Text, e.Err)
}

func (e *InvalidIntegerError) Unwrap() error {
	return e.Err
}

func (e *InvalidIntegerError) SourceOffset() int {
	return e.Offset
}

type InvalidFloatError struct {
	Text   string
	Offset int
	Err    error
}

func (e *InvalidFloatError) Error() string {
	return fmt.Sprintf("invalid floating literal %s: %v", e.Text, e.Err)
}

func (e *InvalidFloatError) Unwrap() error {
	return e.Err
}

func (e *InvalidFloatError) SourceOffset() int {
	return e.Offset
}

// FromToken converts a literal, keyword or identifier token into an Atom,
// interpreting numeric spellings. Punctuation is not an atom.
func FromToken(tok lexer.Token) (*Atom, error) {
	atom := &Atom{
		Span: Span{Start: tok.Start, End: tok.End},
		Text: tok.Text,
	}

	switch tok.Kind {
	case lexer.String:
		atom.Kind = AtomString
	case lexer.Ident:
		atom.Kind = AtomIdent
	case lexer.Keyword:
		atom.Kind = AtomKeyword
		atom.Keyword = tok.Keyword
	case lexer.Integer:
		v, err := parseInteger(tok.Text)
		if err != nil {
			return nil, &InvalidIntegerError{Text: tok.Text, Offset: tok.Start, Err: err}
		}
		atom.Kind = AtomInteger
		atom.Int = v
	case lexer.Float:
		v, err := parseFloat(tok.Text)
		if err != nil {
			return nil, &InvalidFloatError{Text: tok.Text, Offset: tok.Start, Err: err}
		}
		atom.Kind = AtomFloat
		atom.Float = v
	default:
		return nil, &NotAnAtomError{Token: tok}
	}
	return atom, nil
}

// parseInteger accepts decimal, octal (leading 0), hexadecimal (0x) and
// binary (0b) spellings with any u/U/l/L suffix.
func parseInteger(text string) (*big.Int, error) {
	digits := strings.TrimRight(text, "uUlL")
	base := 10
	switch {
	case strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X"):
		base, digits = 16, digits[2:]
	case strings.HasPrefix(digits, "0b") || strings.HasPrefix(digits, "0B"):
		base, digits = 2, digits[2:]
	case len(digits) > 1 && digits[0] == '0':
		base, digits = 8, digits[1:]
	}
	if digits == "" || strings.ContainsAny(digits, "_+-") {
		return nil, strconv.ErrSyntax
	}

	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, strconv.ErrSyntax
	}
	if v.BitLen() > maxIntegerBits {
		return nil, strconv.ErrRange
	}
	return v, nil
}

func parseFloat(text string) (float64, error) {
	trimmed := strings.TrimRight(text, "fFlL")
	if strings.ContainsRune(trimmed, '_') {
		return 0, strconv.ErrSyntax
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok {
			return 0, numErr.Err
		}
		return 0, err
	}
	return v, nil
}
