// Package diag renders parse failures for people: the cause chain as one
// line, and the failing source line with a caret under the offending
// column.
package diag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dhamidi/cfront/c/lexer"
)

// Located is implemented by errors that know the byte offset they refer to.
type Located interface {
	SourceOffset() int
}

type messager interface {
	Message() string
}

// Chain returns err followed by each error it wraps, outermost first.
// An error wrapping several causes ends the chain.
func Chain(err error) []error {
	var chain []error
	for err != nil {
		chain = append(chain, err)
		err = errors.Unwrap(err)
	}
	return chain
}

// Render joins the message of every layer of the chain with ": ", the top
// symptom first and the root cause last.
func Render(err error) string {
	var parts []string
	for err != nil {
		m, ok := err.(messager)
		if !ok {
			parts = append(parts, err.Error())
			break
		}
		parts = append(parts, m.Message())
		err = errors.Unwrap(err)
	}
	return strings.Join(parts, ": ")
}

// Offset finds the byte offset of the deepest located cause. Where an
// error wraps several causes, the one reaching furthest into the source
// wins.
func Offset(err error) (int, bool) {
	if err == nil {
		return 0, false
	}

	if multi, ok := err.(interface{ Unwrap() []error }); ok {
		best, found := -1, false
		for _, cause := range multi.Unwrap() {
			if off, ok := Offset(cause); ok && off > best {
				best, found = off, true
			}
		}
		if found {
			return best, true
		}
	} else if off, ok := Offset(errors.Unwrap(err)); ok {
		return off, true
	}

	if loc, ok := err.(Located); ok {
		return loc.SourceOffset(), true
	}
	return 0, false
}

// Locate converts the offset of err into a line and column of source.
func Locate(source, file string, err error) (lexer.Position, bool) {
	off, ok := Offset(err)
	if !ok {
		return lexer.Position{File: file}, false
	}
	return lexer.Locate(source, file, off), true
}

// Snippet renders err with the source line it points at, one line of
// context either side, and a caret under the column. Errors without a
// location render as a single line.
func Snippet(source, file string, err error) string {
	pos, ok := Locate(source, file, err)
	if !ok {
		if file != "" {
			return fmt.Sprintf("%s: error: %s\n", file, Render(err))
		}
		return fmt.Sprintf("error: %s\n", Render(err))
	}

	lines := strings.Split(source, "\n")
	line := pos.Line
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := lines[line-1]

	var b strings.Builder
	fmt.Fprintf(&b, "%s: error: %s\n", pos, Render(err))
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	fmt.Fprintf(&b, "     | %s^\n", caretPadding(lineTxt, pos.Column))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}

// caretPadding reproduces the tabs of the line before column so the caret
// lines up whatever the tab width.
func caretPadding(line string, column int) string {
	var b strings.Builder
	n := 1
	for _, r := range line {
		if n >= column {
			break
		}
		if r == '\t' {
			b.WriteRune('\t')
		} else {
			b.WriteRune(' ')
		}
		n++
	}
	for ; n < column; n++ {
		b.WriteRune(' ')
	}
	return b.String()
}
