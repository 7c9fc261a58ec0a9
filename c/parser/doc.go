/*
Package parser builds a syntax tree from C source text.

# Overview

The parser pulls tokens from a [lexer.Lexer] on demand and keeps them
buffered, so a failed attempt can rewind to an earlier token. Top-level
declarations and statements are parsed by recursive descent; expressions
are parsed by a Pratt loop driven by binding-power tables.

	stmts, err := parser.Parse("int main(void) { return 1 + 2 * 3; }")
	expr, err := parser.ParseExpression("a = b ? c : d")

# Alternatives

Productions that cannot be told apart by their first token are tried in
order with alt. The first alternative that succeeds wins. An alternative
that fails before committing is rewound and the next one is tried; once a
production has consumed input that rules out the others (the '(' after a
function name, the '=' of an initializer) its failure is returned as is.
When every alternative fails the result is an [*AltError] listing each
attempt by name.

# Binding powers

Each precedence level p maps to a pair of binding powers: (2p, 2p+1) for
left-associative operators and (2p+1, 2p) for assignment and the
conditional operator, which associate to the right. Prefix operators bind
tighter than every binary operator except member access, and postfix
operators (++, --, calls, subscripts) bind tightest of all.

# Errors

A failure is returned as a chain. The root cause is a [*MismatchError]
naming the token found and what was expected, or the [*lexer.LexError] that
stopped the token stream. Each layer above it is an [*Error] naming what
the parser was doing, for example:

	in function 'main': invalid argument list: missing ')': expected ',' or ')', found '{'

No partial tree is ever returned alongside an error.
*/
package parser
