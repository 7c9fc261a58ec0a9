package parser

import (
	"errors"

	"github.com/dhamidi/cfront/c/lexer"
)

type alternative[T any] struct {
	name  string
	parse func(*Parser) (T, error)
}

// alt tries each alternative from the same position and returns the first
// success, leaving the parser where that alternative stopped. A failed
// alternative is rewound unless it committed, in which case its error is
// returned immediately. Lexical errors are never retried.
func alt[T any](p *Parser, alts ...alternative[T]) (T, error) {
	var zero T
	start := p.pos
	first := p.peek()
	if first.Kind == lexer.Illegal && p.lexErr != nil {
		return zero, p.lexErr
	}

	attempts := make([]Attempt, 0, len(alts))
	for _, a := range alts {
		p.tracef("trying %s at offset %d", a.name, first.Start)
		v, err := a.parse(p)
		if err == nil {
			return v, nil
		}
		if c, ok := err.(*committedError); ok {
			return zero, c.err
		}
		if p.lexErr != nil && errors.Is(err, p.lexErr) {
			return zero, err
		}
		if p.depthErr != nil && errors.Is(err, p.depthErr) {
			return zero, err
		}
		attempts = append(attempts, Attempt{Name: a.name, Err: err})
		p.pos = start
	}
	return zero, &AltError{Offset: first.Start, Attempts: attempts}
}
