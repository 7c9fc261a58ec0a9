package ast

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"testing"

	"github.com/dhamidi/cfront/c/lexer"
)

func TestFromTokenIntegers(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"0", "0"},
		{"42", "42"},
		{"42u", "42"},
		{"10UL", "10"},
		{"0x1F", "31"},
		{"0XffLL", "255"},
		{"0777", "511"},
		{"0b1010", "10"},
		{"340282366920938463463374607431768211455", "340282366920938463463374607431768211455"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			atom, err := FromToken(lexer.Token{Kind: lexer.Integer, Text: tt.text, Start: 3, End: 3 + len(tt.text)})
			if err != nil {
				t.Fatalf("FromToken() error = %v", err)
			}
			if atom.Kind != AtomInteger {
				t.Errorf("Kind = %v, want Integer", atom.Kind)
			}
			want, _ := new(big.Int).SetString(tt.want, 10)
			if atom.Int.Cmp(want) != 0 {
				t.Errorf("Int = %v, want %v", atom.Int, want)
			}
			if atom.Start != 3 || atom.Text != tt.text {
				t.Errorf("atom = %+v, want Start 3 and Text %q", atom, tt.text)
			}
		})
	}
}

func TestFromTokenInvalidIntegers(t *testing.T) {
	tests := []struct {
		text string
		err  error
	}{
		{"08", strconv.ErrSyntax},
		{"0x", strconv.ErrSyntax},
		{"12abc", strconv.ErrSyntax},
		{"1_000", strconv.ErrSyntax},
		{"340282366920938463463374607431768211456", strconv.ErrRange},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := FromToken(lexer.Token{Kind: lexer.Integer, Text: tt.text, Start: 7})
			var invalid *InvalidIntegerError
			if !errors.As(err, &invalid) {
				t.Fatalf("FromToken() error = %v, want *InvalidIntegerError", err)
			}
			if !errors.Is(err, tt.err) {
				t.Errorf("FromToken() error = %v, want %v", err, tt.err)
			}
			if invalid.SourceOffset() != 7 {
				t.Errorf("SourceOffset() = %d, want 7", invalid.SourceOffset())
			}
		})
	}
}

func TestFromTokenFloats(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"3.5", 3.5},
		{"1e3", 1000},
		{"1.5e-1f", 0.15},
		{".25", 0.25},
		{"2.", 2},
		{"0x1p4", 16},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			atom, err := FromToken(lexer.Token{Kind: lexer.Float, Text: tt.text})
			if err != nil {
				t.Fatalf("FromToken() error = %v", err)
			}
			if atom.Kind != AtomFloat || atom.Float != tt.want {
				t.Errorf("atom = %v %v, want Float %v", atom.Kind, atom.Float, tt.want)
			}
		})
	}
}

func TestFromTokenInvalidFloats(t *testing.T) {
	for _, text := range []string{"1.2.3", "1e", "0xFF.f", "1e999"} {
		t.Run(text, func(t *testing.T) {
			_, err := FromToken(lexer.Token{Kind: lexer.Float, Text: text})
			var invalid *InvalidFloatError
			if !errors.As(err, &invalid) {
				t.Errorf("FromToken(%q) error = %v, want *InvalidFloatError", text, err)
			}
		})
	}
}

func TestFromTokenNames(t *testing.T) {
	ident, err := FromToken(lexer.Token{Kind: lexer.Ident, Text: "argc"})
	if err != nil || ident.Kind != AtomIdent || ident.Text != "argc" {
		t.Errorf("FromToken(Ident) = %+v, %v", ident, err)
	}

	kw, err := FromToken(lexer.Token{Kind: lexer.Keyword, Keyword: lexer.KwInt, Text: "int"})
	if err != nil || kw.Kind != AtomKeyword || kw.Keyword != lexer.KwInt {
		t.Errorf("FromToken(Keyword) = %+v, %v", kw, err)
	}

	str, err := FromToken(lexer.Token{Kind: lexer.String, Text: `a\"b`})
	if err != nil || str.Kind != AtomString {
		t.Fatalf("FromToken(String) = %+v, %v", str, err)
	}
	if got := str.Source(); got != `"a\"b"` {
		t.Errorf("Source() = %q, want %q", got, `"a\"b"`)
	}
}

func TestFromTokenNotAnAtom(t *testing.T) {
	_, err := FromToken(lexer.Token{Kind: lexer.Semicolon, Text: ";", Start: 4})
	var notAtom *NotAnAtomError
	if !errors.As(err, &notAtom) {
		t.Fatalf("FromToken() error = %v, want *NotAnAtomError", err)
	}
	if got := err.Error(); got != "';' is not an atom" {
		t.Errorf("Error() = %q, want %q", got, "';' is not an atom")
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{Type{Name: "int"}, "int"},
		{Type{Name: "char", Pointer: 2}, "char **"},
		{Type{Name: "unsigned long", Pointer: 1}, "unsigned long *"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestWalk(t *testing.T) {
	body := &Return{X: &Binary{Op: lexer.Plus, Left: &Atom{Kind: AtomIdent, Text: "a"}, Right: &Atom{Kind: AtomInteger, Text: "1"}}}
	fn := &FunctionDeclaration{Name: "f", Body: []Stmt{&Empty{}, body}}

	var kinds []string
	Walk(fn, func(n Node) bool {
		kinds = append(kinds, fmt.Sprintf("%T", n))
		return true
	})
	want := []string{"*ast.FunctionDeclaration", "*ast.Empty", "*ast.Return", "*ast.Binary", "*ast.Atom", "*ast.Atom"}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("Walk visited %v, want %v", kinds, want)
	}

	count := 0
	Walk(fn, func(n Node) bool {
		count++
		_, isReturn := n.(*Return)
		return !isReturn
	})
	if count != 3 {
		t.Errorf("Walk with pruning visited %d nodes, want 3", count)
	}
}
