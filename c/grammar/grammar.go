// Package grammar carries the EBNF description of the language the parser
// accepts.
package grammar

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/exp/ebnf"
)

const (
	Filename = "c.ebnf"
	Start    = "TranslationUnit"
)

//go:embed c.ebnf
var source string

// Source returns the grammar text.
func Source() string {
	return source
}

// Load parses the grammar and verifies that every production is defined
// and reachable from Start.
func Load() (ebnf.Grammar, error) {
	g, err := ebnf.Parse(Filename, strings.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(g, Start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	return g, nil
}

// Tokens returns the literal tokens used by the syntactic productions of
// g, sorted.
func Tokens(g ebnf.Grammar) []string {
	seen := make(map[string]bool)
	for name, prod := range g {
		if !isSyntactic(name) {
			continue
		}
		collectTokens(prod.Expr, seen)
	}

	tokens := make([]string, 0, len(seen))
	for tok := range seen {
		tokens = append(tokens, tok)
	}
	sort.Strings(tokens)
	return tokens
}

// Productions returns the production names of g, syntactic ones first.
func Productions(g ebnf.Grammar) []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		si, sj := isSyntactic(names[i]), isSyntactic(names[j])
		if si != sj {
			return si
		}
		return names[i] < names[j]
	})
	return names
}

func isSyntactic(name string) bool {
	for _, r := range name {
		return unicode.IsUpper(r)
	}
	return false
}

func collectTokens(expr ebnf.Expression, seen map[string]bool) {
	switch e := expr.(type) {
	case ebnf.Alternative:
		for _, x := range e {
			collectTokens(x, seen)
		}
	case ebnf.Sequence:
		for _, x := range e {
			collectTokens(x, seen)
		}
	case *ebnf.Group:
		collectTokens(e.Body, seen)
	case *ebnf.Option:
		collectTokens(e.Body, seen)
	case *ebnf.Repetition:
		collectTokens(e.Body, seen)
	case *ebnf.Token:
		seen[e.String] = true
	}
}
