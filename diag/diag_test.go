package diag

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dhamidi/cfront/c/parser"
)

func TestRender(t *testing.T) {
	_, err := parser.Parse("void main(int argc {}")
	if err == nil {
		t.Fatal("Parse() error = nil, want error")
	}

	want := "in function 'main': invalid argument list: missing ')': expected ',' or ')', found '{'"
	if got := Render(err); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
	if got := len(Chain(err)); got != 4 {
		t.Errorf("len(Chain()) = %d, want 4", got)
	}
}

func TestRenderAlternatives(t *testing.T) {
	_, err := parser.Parse("123 x;")
	if err == nil {
		t.Fatal("Parse() error = nil, want error")
	}

	want := "no alternative matched (tried function declaration, variable declaration)"
	if got := Render(err); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
	if got := len(Chain(err)); got != 1 {
		t.Errorf("len(Chain()) = %d, want 1", got)
	}
}

func TestRenderForeignErrors(t *testing.T) {
	base := errors.New("disk on fire")
	wrapped := fmt.Errorf("read file: %w", base)
	if got := Render(wrapped); got != "read file: disk on fire" {
		t.Errorf("Render() = %q, want %q", got, "read file: disk on fire")
	}
	if _, ok := Offset(wrapped); ok {
		t.Error("Offset() ok = true for an error without a location")
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		input  string
		offset int
	}{
		{"void main(int argc {}", 19},
		{"int x = 5 @ 3;", 10},
		{"int x = 0x;", 8},
		{"123 x;", 0},
		{"int f() { x = ; }", 14},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := parser.Parse(tt.input)
			if err == nil {
				t.Fatal("Parse() error = nil, want error")
			}
			off, ok := Offset(err)
			if !ok {
				t.Fatalf("Offset(%v) ok = false", err)
			}
			if off != tt.offset {
				t.Errorf("Offset() = %d, want %d", off, tt.offset)
			}
		})
	}
}

func TestSnippet(t *testing.T) {
	source := "int main() {\n\treturn 1 +;\n}\n"
	_, err := parser.Parse(source)
	if err == nil {
		t.Fatal("Parse() error = nil, want error")
	}

	want := "main.c:2:12: error: in function 'main': invalid function body: invalid return value: expected expression: expected operand, found ';'\n" +
		"   1 | int main() {\n" +
		"   2 | \treturn 1 +;\n" +
		"     | \t          ^\n" +
		"   3 | }\n"
	if got := Snippet(source, "main.c", err); got != want {
		t.Errorf("Snippet() =\n%s\nwant\n%s", got, want)
	}
}

func TestSnippetWithoutLocation(t *testing.T) {
	got := Snippet("", "a.c", errors.New("boom"))
	if got != "a.c: error: boom\n" {
		t.Errorf("Snippet() = %q, want %q", got, "a.c: error: boom\n")
	}
}
