package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/cfront/c/ast"
	"github.com/dhamidi/cfront/c/parser"
	"github.com/dhamidi/cfront/diag"
	"github.com/tliron/commonlog"
)

// readSource reads the named file, or stdin when args is empty. The
// returned name is used in diagnostics.
func readSource(in io.Reader, args []string) (string, []byte, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(in)
		if err != nil {
			return "", nil, fmt.Errorf("read stdin: %w", err)
		}
		return "<stdin>", data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("read file: %w", err)
	}
	return args[0], data, nil
}

// parseSource parses source and, on failure, prints the located
// diagnostic to errOut.
func parseSource(errOut io.Writer, name string, source []byte, trace bool) ([]ast.Stmt, error) {
	opts := []parser.Option{parser.WithFile(name)}
	if trace {
		opts = append(opts, parser.WithTrace(commonlog.GetLogger("cfront.parser")))
	}
	stmts, err := parser.Parse(string(source), opts...)
	if err != nil {
		fmt.Fprint(errOut, diag.Snippet(string(source), name, err))
		return nil, errReported
	}
	return stmts, nil
}
