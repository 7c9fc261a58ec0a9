package parser

import "github.com/dhamidi/cfront/c/lexer"

// Precedence levels from loosest to tightest binding, following C.
type Precedence int

const (
	PrecLowest Precedence = iota
	PrecAssign
	PrecConditional
	PrecLogicalOr
	PrecLogicalAnd
	PrecBitwiseOr
	PrecBitwiseXor
	PrecBitwiseAnd
	PrecEquality
	PrecRelational
	PrecShift
	PrecAdditive
	PrecMultiplicative
	PrecPrefix
	PrecMember
	PrecPostfix
)

var infixPrecedence = map[lexer.TokenKind]Precedence{
	lexer.Equal:           PrecAssign,
	lexer.PlusEqual:       PrecAssign,
	lexer.MinusEqual:      PrecAssign,
	lexer.StarEqual:       PrecAssign,
	lexer.SlashEqual:      PrecAssign,
	lexer.PercentEqual:    PrecAssign,
	lexer.TildeEqual:      PrecAssign,
	lexer.AmpersandEqual:  PrecAssign,
	lexer.PipeEqual:       PrecAssign,
	lexer.CaretEqual:      PrecAssign,
	lexer.ShiftLeftEqual:  PrecAssign,
	lexer.ShiftRightEqual: PrecAssign,
	lexer.Question:        PrecConditional,
	lexer.DoublePipe:      PrecLogicalOr,
	lexer.DoubleAmpersand: PrecLogicalAnd,
	lexer.Pipe:            PrecBitwiseOr,
	lexer.Caret:           PrecBitwiseXor,
	lexer.Ampersand:       PrecBitwiseAnd,
	lexer.EqualEqual:      PrecEquality,
	lexer.BangEqual:       PrecEquality,
	lexer.Less:            PrecRelational,
	lexer.LessEqual:       PrecRelational,
	lexer.Greater:         PrecRelational,
	lexer.GreaterEqual:    PrecRelational,
	lexer.ShiftLeft:       PrecShift,
	lexer.ShiftRight:      PrecShift,
	lexer.Plus:            PrecAdditive,
	lexer.Minus:           PrecAdditive,
	lexer.Star:            PrecMultiplicative,
	lexer.Slash:           PrecMultiplicative,
	lexer.Percent:         PrecMultiplicative,
	lexer.Dot:             PrecMember,
	lexer.Arrow:           PrecMember,
}

var prefixOperators = map[lexer.TokenKind]bool{
	lexer.PlusPlus:   true,
	lexer.MinusMinus: true,
	lexer.Bang:       true,
	lexer.Tilde:      true,
	lexer.Star:       true,
	lexer.Ampersand:  true,
	lexer.Plus:       true,
	lexer.Minus:      true,
}

var postfixOperators = map[lexer.TokenKind]bool{
	lexer.PlusPlus:    true,
	lexer.MinusMinus:  true,
	lexer.ParenOpen:   true,
	lexer.BracketOpen: true,
}

// InfixPrecedence returns the level of a binary operator.
func InfixPrecedence(kind lexer.TokenKind) (Precedence, bool) {
	prec, ok := infixPrecedence[kind]
	return prec, ok
}

func isRightAssociative(prec Precedence) bool {
	return prec == PrecAssign || prec == PrecConditional
}

// infixBindingPower returns the left and right binding powers of a binary
// operator: (2p, 2p+1) for left-associative levels and (2p+1, 2p) for
// right-associative ones.
func infixBindingPower(kind lexer.TokenKind) (int, int, bool) {
	prec, ok := infixPrecedence[kind]
	if !ok {
		return 0, 0, false
	}
	p := int(prec) * 2
	if isRightAssociative(prec) {
		return p + 1, p, true
	}
	return p, p + 1, true
}

func prefixBindingPower(kind lexer.TokenKind) (int, bool) {
	if !prefixOperators[kind] {
		return 0, false
	}
	return int(PrecPrefix) * 2, true
}

func postfixBindingPower(kind lexer.TokenKind) (int, bool) {
	if !postfixOperators[kind] {
		return 0, false
	}
	return int(PrecPostfix) * 2, true
}
