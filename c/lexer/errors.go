package lexer

import "fmt"

type LexErrorKind int

const (
	UnexpectedChar LexErrorKind = iota
	UnterminatedString
	UnterminatedComment
	InvalidUTF8
)

var lexErrorKindNames = map[LexErrorKind]string{
	UnexpectedChar:      "unexpected character",
	UnterminatedString:  "unterminated string literal",
	UnterminatedComment: "unterminated block comment",
	InvalidUTF8:         "invalid UTF-8 encoding",
}

func (k LexErrorKind) String() string {
	if name, ok := lexErrorKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// LexError reports the first lexical failure in a buffer. Whole is the
// entire source so the position can be recomputed when rendering.
type LexError struct {
	Whole  string
	File   string
	Offset int
	Char   rune
	Kind   LexErrorKind
}

func (e *LexError) Error() string {
	pos := e.Position()
	if e.Kind == UnexpectedChar {
		return fmt.Sprintf("%s: %s %q", pos, e.Kind, e.Char)
	}
	return fmt.Sprintf("%s: %s", pos, e.Kind)
}

// Position computes the line and column of the failure.
func (e *LexError) Position() Position {
	return Locate(e.Whole, e.File, e.Offset)
}

// SourceOffset returns the byte offset of the failure.
func (e *LexError) SourceOffset() int {
	return e.Offset
}
