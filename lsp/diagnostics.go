package lsp

import (
	"errors"

	"github.com/dhamidi/cfront/c/lexer"
	"github.com/dhamidi/cfront/c/parser"
	"github.com/dhamidi/cfront/diag"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// toDiagnostic reports err at the token where its root cause was found.
// Each alternative the parser tried becomes related information at the
// place that alternative gave up.
func toDiagnostic(uri, source string, err error) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	diagSource := lsName

	d := protocol.Diagnostic{
		Range:    errorRange(source, err),
		Severity: &severity,
		Source:   &diagSource,
		Message:  diag.Render(err),
	}

	var altErr *parser.AltError
	if errors.As(err, &altErr) {
		for _, attempt := range altErr.Attempts {
			d.RelatedInformation = append(d.RelatedInformation, protocol.DiagnosticRelatedInformation{
				Location: protocol.Location{URI: uri, Range: errorRange(source, attempt.Err)},
				Message:  attempt.Name + ": " + diag.Render(attempt.Err),
			})
		}
	}
	return d
}

// errorRange spans the token at the error's offset, or is empty at end
// of input.
func errorRange(source string, err error) protocol.Range {
	offset, ok := diag.Offset(err)
	if !ok {
		return toRange(source, 0, 0)
	}
	return toRange(source, offset, tokenEnd(source, offset))
}

func tokenEnd(source string, offset int) int {
	if offset >= len(source) {
		return offset
	}
	tok, err := lexer.New(source[offset:]).NextToken()
	if err != nil || tok.Kind == lexer.EOF || tok.Start != 0 {
		return offset
	}
	return offset + tok.End
}
