package parser

import (
	"fmt"
	"strings"

	"github.com/dhamidi/cfront/c/lexer"
)

type ErrorKind int

const (
	ErrSymbolNotFound ErrorKind = iota
	ErrNoReturnType
	ErrNoFunctionName
	ErrInFunction
	ErrArguments
	ErrArgumentType
	ErrArgumentName
	ErrMissingOpenParen
	ErrMissingCloseParen
	ErrFunctionBody
	ErrMissingOpenBrace
	ErrMissingCloseBrace
	ErrVariableType
	ErrVariableName
	ErrInitializer
	ErrMissingSemicolon
	ErrReturn
	ErrCondition
	ErrForClause
	ErrExpectedExpression
	ErrUnmatchedParen
	ErrUnmatchedBracket
	ErrMemberName
	ErrExpectedColon
	ErrCallArguments
	ErrInvalidLiteral
	ErrTrailingInput
	ErrTooDeep
)

var errorKindMessages = map[ErrorKind]string{
	ErrSymbolNotFound:     "symbol not found",
	ErrNoReturnType:       "no return type found",
	ErrNoFunctionName:     "no function name found",
	ErrInFunction:         "in function",
	ErrArguments:          "invalid argument list",
	ErrArgumentType:       "no argument type found",
	ErrArgumentName:       "no argument name found",
	ErrMissingOpenParen:   "missing '('",
	ErrMissingCloseParen:  "missing ')'",
	ErrFunctionBody:       "invalid function body",
	ErrMissingOpenBrace:   "missing '{'",
	ErrMissingCloseBrace:  "missing '}'",
	ErrVariableType:       "no variable type found",
	ErrVariableName:       "no variable name found",
	ErrInitializer:        "invalid initializer",
	ErrMissingSemicolon:   "missing ';'",
	ErrReturn:             "invalid return value",
	ErrCondition:          "invalid condition",
	ErrForClause:          "invalid for clause",
	ErrExpectedExpression: "expected expression",
	ErrUnmatchedParen:     "unmatched '('",
	ErrUnmatchedBracket:   "unmatched '['",
	ErrMemberName:         "no member name found",
	ErrExpectedColon:      "missing ':' in conditional expression",
	ErrCallArguments:      "invalid call arguments",
	ErrInvalidLiteral:     "invalid literal",
	ErrTrailingInput:      "unexpected input after expression",
	ErrTooDeep:            "nested too deeply",
}

func (k ErrorKind) String() string {
	if msg, ok := errorKindMessages[k]; ok {
		return msg
	}
	return "Unknown"
}

// Error names what the parser was trying to do when Cause occurred. It
// carries no position of its own; the root cause does.
type Error struct {
	Kind   ErrorKind
	Detail string
	Cause  error
}

// Message returns this layer's text without its causes.
func (e *Error) Message() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s '%s'", e.Kind, e.Detail)
	}
	return e.Kind.String()
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message()
	}
	return e.Message() + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// MismatchError is the root cause of most parse failures: the token
// found where something else was required.
type MismatchError struct {
	Expected string
	Got      lexer.Token
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("expected %s, found %s", e.Expected, e.Got.Describe())
}

func (e *MismatchError) SourceOffset() int {
	return e.Got.Start
}

// NestingError is the root cause when brackets, operators or statements
// nest deeper than the parser allows.
type NestingError struct {
	Limit int
	Got   lexer.Token
}

func (e *NestingError) Error() string {
	return fmt.Sprintf("more than %d levels of nesting at %s", e.Limit, e.Got.Describe())
}

func (e *NestingError) SourceOffset() int {
	return e.Got.Start
}

type Attempt struct {
	Name string
	Err  error
}

// AltError aggregates the failures of every alternative tried at one
// position.
type AltError struct {
	Offset   int
	Attempts []Attempt
}

// Message names the alternatives tried, leaving out why each failed.
func (e *AltError) Message() string {
	names := make([]string, len(e.Attempts))
	for i, a := range e.Attempts {
		names[i] = a.Name
	}
	return fmt.Sprintf("no alternative matched (tried %s)", strings.Join(names, ", "))
}

func (e *AltError) Error() string {
	causes := make([]string, len(e.Attempts))
	for i, a := range e.Attempts {
		causes[i] = a.Name + ": " + a.Err.Error()
	}
	return e.Message() + ": " + strings.Join(causes, "; ")
}

func (e *AltError) Unwrap() []error {
	errs := make([]error, len(e.Attempts))
	for i, a := range e.Attempts {
		errs[i] = a.Err
	}
	return errs
}

func (e *AltError) SourceOffset() int {
	return e.Offset
}

// committedError marks a failure inside a production that has already
// consumed enough input to rule out the remaining alternatives.
type committedError struct {
	err error
}

func (e *committedError) Error() string {
	return e.err.Error()
}

func (e *committedError) Unwrap() error {
	return e.err
}

func wrap(kind ErrorKind, cause error) error {
	return &Error{Kind: kind, Cause: cause}
}
