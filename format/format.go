// Package format renders parsed C translation units: back to source, as
// JSON, or as one line per declaration.
package format

import (
	"github.com/dhamidi/cfront/c/ast"
)

type Encoder interface {
	Encode(stmts []ast.Stmt) error
	MarshalText(stmts []ast.Stmt) ([]byte, error)
}

var (
	_ Encoder = (*CPrettyPrinter)(nil)
	_ Encoder = (*ASTJSONEncoder)(nil)
	_ Encoder = (*LineEncoder)(nil)
	_ Encoder = (*SexpEncoder)(nil)
)
