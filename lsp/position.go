package lsp

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// toPosition converts a byte offset into a zero-based line and a
// character count in UTF-16 code units, as LSP clients expect.
func toPosition(source string, offset int) protocol.Position {
	if offset > len(source) {
		offset = len(source)
	}
	if offset < 0 {
		offset = 0
	}
	line := strings.Count(source[:offset], "\n")
	lineStart := strings.LastIndexByte(source[:offset], '\n') + 1

	character := 0
	for _, r := range source[lineStart:offset] {
		if n := utf16.RuneLen(r); n > 0 {
			character += n
		} else {
			character++
		}
	}
	return protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(character)}
}

// toOffset is the inverse of toPosition. Positions past the end of a line
// clamp to the line's end.
func toOffset(source string, pos protocol.Position) int {
	offset := 0
	for line := protocol.UInteger(0); line < pos.Line; line++ {
		i := strings.IndexByte(source[offset:], '\n')
		if i < 0 {
			return len(source)
		}
		offset += i + 1
	}

	units := protocol.UInteger(0)
	for offset < len(source) && units < pos.Character {
		r, size := utf8.DecodeRuneInString(source[offset:])
		if r == '\n' {
			break
		}
		if n := utf16.RuneLen(r); n > 0 {
			units += protocol.UInteger(n)
		} else {
			units++
		}
		offset += size
	}
	return offset
}

func toRange(source string, start, end int) protocol.Range {
	return protocol.Range{Start: toPosition(source, start), End: toPosition(source, end)}
}
