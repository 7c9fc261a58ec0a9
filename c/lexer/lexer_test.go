package lexer

import (
	"errors"
	"sort"
	"strings"
	"testing"
	"unicode"
)

type tok struct {
	kind TokenKind
	text string
}

func lexAll(t *testing.T, input string) []Token {
	t.Helper()
	tokens, err := Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize(%q) error = %v", input, err)
	}
	return tokens
}

func checkTokens(t *testing.T, input string, want []tok) {
	t.Helper()
	got := lexAll(t, input)
	if len(got) != len(want) {
		t.Fatalf("Tokenize(%q) = %v, want %d tokens", input, got, len(want))
	}
	for i, w := range want {
		if got[i].Kind != w.kind {
			t.Errorf("token %d Kind = %v, want %v", i, got[i].Kind, w.kind)
		}
		if w.text != "" && got[i].Text != w.text {
			t.Errorf("token %d Text = %q, want %q", i, got[i].Text, w.text)
		}
	}
}

func TestLexerBasic(t *testing.T) {
	got := lexAll(t, "x && y;")
	want := []Token{
		{Kind: Ident, Text: "x", Start: 0, End: 1},
		{Kind: DoubleAmpersand, Text: "&&", Start: 2, End: 4},
		{Kind: Ident, Text: "y", Start: 5, End: 6},
		{Kind: Semicolon, Text: ";", Start: 6, End: 7},
	}
	if len(got) != len(want) {
		t.Fatalf("Tokenize() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLexerMulticharIdent(t *testing.T) {
	checkTokens(t, "hola && adeu || (si % no)", []tok{
		{Ident, "hola"},
		{DoubleAmpersand, ""},
		{Ident, "adeu"},
		{DoublePipe, ""},
		{ParenOpen, ""},
		{Ident, "si"},
		{Percent, ""},
		{Ident, "no"},
		{ParenClose, ""},
	})
}

func TestLexerFunctionDefinition(t *testing.T) {
	checkTokens(t, "void main() {}", []tok{
		{Keyword, "void"},
		{Ident, "main"},
		{ParenOpen, ""},
		{ParenClose, ""},
		{BraceOpen, ""},
		{BraceClose, ""},
	})
}

func TestLexerFunctionDefinitionWithArgs(t *testing.T) {
	input := "void main(int argc,\n\tchar **argv)\n{\n}\n"
	checkTokens(t, input, []tok{
		{Keyword, "void"},
		{Ident, "main"},
		{ParenOpen, ""},
		{Keyword, "int"},
		{Ident, "argc"},
		{Comma, ""},
		{Keyword, "char"},
		{Star, ""},
		{Star, ""},
		{Ident, "argv"},
		{ParenClose, ""},
		{BraceOpen, ""},
		{BraceClose, ""},
	})
}

func TestLexerOperators(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
	}{
		{"+", Plus},
		{"+=", PlusEqual},
		{"++", PlusPlus},
		{"-", Minus},
		{"-=", MinusEqual},
		{"--", MinusMinus},
		{"->", Arrow},
		{"*", Star},
		{"*=", StarEqual},
		{"/", Slash},
		{"/=", SlashEqual},
		{"%", Percent},
		{"%=", PercentEqual},
		{"~", Tilde},
		{"~=", TildeEqual},
		{"!", Bang},
		{"!=", BangEqual},
		{"=", Equal},
		{"==", EqualEqual},
		{"<", Less},
		{"<=", LessEqual},
		{"<<", ShiftLeft},
		{"<<=", ShiftLeftEqual},
		{">", Greater},
		{">=", GreaterEqual},
		{">>", ShiftRight},
		{">>=", ShiftRightEqual},
		{"&", Ampersand},
		{"&&", DoubleAmpersand},
		{"&=", AmpersandEqual},
		{"|", Pipe},
		{"||", DoublePipe},
		{"|=", PipeEqual},
		{"^", Caret},
		{"^=", CaretEqual},
		{"?", Question},
		{":", Colon},
		{".", Dot},
		{"[", BracketOpen},
		{"]", BracketClose},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := lexAll(t, tt.input)
			if len(got) != 1 {
				t.Fatalf("Tokenize(%q) = %v, want 1 token", tt.input, got)
			}
			if got[0].Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", got[0].Kind, tt.kind)
			}
			if got[0].Text != tt.input {
				t.Errorf("Text = %q, want %q", got[0].Text, tt.input)
			}
			if got[0].Kind.Spelling() != tt.input {
				t.Errorf("Spelling() = %q, want %q", got[0].Kind.Spelling(), tt.input)
			}
		})
	}
}

func TestLexerLookaheadDoesNotOverconsume(t *testing.T) {
	checkTokens(t, "a+++b", []tok{
		{Ident, "a"},
		{PlusPlus, ""},
		{Plus, ""},
		{Ident, "b"},
	})
	checkTokens(t, "x<<=1>=y", []tok{
		{Ident, "x"},
		{ShiftLeftEqual, ""},
		{Integer, "1"},
		{GreaterEqual, ""},
		{Ident, "y"},
	})
}

func TestLexerKeywords(t *testing.T) {
	for _, name := range Keywords() {
		t.Run(name, func(t *testing.T) {
			got := lexAll(t, name)
			if len(got) != 1 || got[0].Kind != Keyword {
				t.Fatalf("Tokenize(%q) = %v, want one Keyword", name, got)
			}
			if got[0].Keyword.String() != name {
				t.Errorf("Keyword = %v, want %s", got[0].Keyword, name)
			}
		})
	}
	if n := len(Keywords()); n != 32 {
		t.Errorf("len(Keywords()) = %d, want 32", n)
	}
	if names := Keywords(); !sort.StringsAreSorted(names) {
		t.Errorf("Keywords() = %v, want alphabetical order", names)
	}

	checkTokens(t, "integer _int int2", []tok{
		{Ident, "integer"},
		{Ident, "_int"},
		{Ident, "int2"},
	})
}

func TestLexerNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  []tok
	}{
		{"42", []tok{{Integer, "42"}}},
		{"10UL", []tok{{Integer, "10UL"}}},
		{"0x1F", []tok{{Integer, "0x1F"}}},
		{"0777", []tok{{Integer, "0777"}}},
		{"3.14", []tok{{Float, "3.14"}}},
		{"1e10", []tok{{Float, "1e10"}}},
		{"1.5e-3f", []tok{{Float, "1.5e-3f"}}},
		{".5", []tok{{Float, ".5"}}},
		{"0x1p4", []tok{{Float, "0x1p4"}}},
		{"0xe+1", []tok{{Integer, "0xe"}, {Plus, ""}, {Integer, "1"}}},
		{"1-2", []tok{{Integer, "1"}, {Minus, ""}, {Integer, "2"}}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			checkTokens(t, tt.input, tt.want)
		})
	}
}

func TestLexerStrings(t *testing.T) {
	input := `printf("he said \"hi\"\n", "");`
	got := lexAll(t, input)
	if len(got) != 7 {
		t.Fatalf("Tokenize() = %v, want 7 tokens", got)
	}
	if got[2].Kind != String || got[2].Text != `he said \"hi\"\n` {
		t.Errorf("token 2 = %v %q, want String %q", got[2].Kind, got[2].Text, `he said \"hi\"\n`)
	}
	if got[2].Start != 7 {
		t.Errorf("token 2 Start = %d, want 7", got[2].Start)
	}
	if got[4].Kind != String || got[4].Text != "" {
		t.Errorf("token 4 = %v %q, want empty String", got[4].Kind, got[4].Text)
	}
}

func TestLexerComments(t *testing.T) {
	input := "a // line comment\n/* block\n comment */ b /**/c"
	checkTokens(t, input, []tok{
		{Ident, "a"},
		{Ident, "b"},
		{Ident, "c"},
	})
	checkTokens(t, "a / b /= c", []tok{
		{Ident, "a"},
		{Slash, ""},
		{Ident, "b"},
		{SlashEqual, ""},
		{Ident, "c"},
	})
}

func TestLexerUnicode(t *testing.T) {
	input := "/* ñandú */ año = \"日本\";"
	got := lexAll(t, input)
	if len(got) != 4 {
		t.Fatalf("Tokenize() = %v, want 4 tokens", got)
	}
	if got[0].Kind != Ident || got[0].Text != "año" {
		t.Errorf("token 0 = %v %q, want Ident año", got[0].Kind, got[0].Text)
	}
	for i, tk := range got {
		if tk.Text != "" && !strings.HasPrefix(input[tk.Start:], tk.Text) && tk.Kind != String {
			t.Errorf("token %d does not start at %d", i, tk.Start)
		}
	}
}

func TestLexerReconstruction(t *testing.T) {
	input := "int main(int argc, char **argv) {\n\tint x = argc * 2 + 1;\n\treturn x >= 3 && argv != 0;\n}\n"
	tokens := lexAll(t, input)

	var sb strings.Builder
	for i, tk := range tokens {
		end := len(input)
		if i+1 < len(tokens) {
			end = tokens[i+1].Start
		}
		sb.WriteString(strings.TrimRightFunc(input[tk.Start:end], unicode.IsSpace))
	}

	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, input)
	if sb.String() != stripped {
		t.Errorf("reconstructed = %q, want %q", sb.String(), stripped)
	}
}

func TestLexerEOF(t *testing.T) {
	l := New("  x  ")
	first, err := l.NextToken()
	if err != nil || first.Kind != Ident {
		t.Fatalf("NextToken() = %v, %v, want Ident", first, err)
	}
	for i := 0; i < 2; i++ {
		eof, err := l.NextToken()
		if err != nil {
			t.Fatalf("NextToken() error = %v", err)
		}
		if eof.Kind != EOF || eof.Start != 5 {
			t.Errorf("NextToken() = %v, want EOF@5", eof)
		}
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		kind   LexErrorKind
		offset int
		line   int
		column int
	}{
		{"unexpected char", "a @ b", UnexpectedChar, 2, 1, 3},
		{"unexpected char second line", "a;\n  #", UnexpectedChar, 5, 2, 3},
		{"unterminated string", "x = \"abc", UnterminatedString, 4, 1, 5},
		{"newline in string", "\"ab\ncd\"", UnterminatedString, 0, 1, 1},
		{"unterminated comment", "a /* x", UnterminatedComment, 2, 1, 3},
		{"invalid utf8", "a \xff", InvalidUTF8, 2, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input, WithFile("test.c"))
			var lexErr *LexError
			if !errors.As(err, &lexErr) {
				t.Fatalf("Tokenize(%q) error = %v, want *LexError", tt.input, err)
			}
			if lexErr.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", lexErr.Kind, tt.kind)
			}
			if lexErr.Offset != tt.offset {
				t.Errorf("Offset = %d, want %d", lexErr.Offset, tt.offset)
			}
			pos := lexErr.Position()
			if pos.Line != tt.line || pos.Column != tt.column {
				t.Errorf("Position() = %d:%d, want %d:%d", pos.Line, pos.Column, tt.line, tt.column)
			}
			if pos.File != "test.c" {
				t.Errorf("Position().File = %q, want %q", pos.File, "test.c")
			}
		})
	}
}

func TestLexerErrorIsSticky(t *testing.T) {
	l := New("a $ b")
	if _, err := l.NextToken(); err != nil {
		t.Fatalf("NextToken() error = %v", err)
	}
	_, first := l.NextToken()
	if first == nil {
		t.Fatal("NextToken() error = nil, want error")
	}
	_, second := l.NextToken()
	if second != first {
		t.Errorf("second error = %v, want %v", second, first)
	}
	if got := first.Error(); got != "1:3: unexpected character '$'" {
		t.Errorf("Error() = %q, want %q", got, "1:3: unexpected character '$'")
	}
}

func TestLocate(t *testing.T) {
	tests := []struct {
		source string
		offset int
		line   int
		column int
	}{
		{"abc", 0, 1, 1},
		{"abc", 2, 1, 3},
		{"ab\ncd", 3, 2, 1},
		{"ab\ncd", 4, 2, 2},
		{"éx", 2, 1, 2},
		{"é\nx", 3, 2, 1},
		{"ab", 10, 1, 3},
	}

	for _, tt := range tests {
		pos := Locate(tt.source, "", tt.offset)
		if pos.Line != tt.line || pos.Column != tt.column {
			t.Errorf("Locate(%q, %d) = %d:%d, want %d:%d", tt.source, tt.offset, pos.Line, pos.Column, tt.line, tt.column)
		}
	}
}
