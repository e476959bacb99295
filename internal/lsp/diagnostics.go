package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"mica/internal/errors"
)

// ConvertErrors transforms interpreter check errors into LSP
// diagnostics. Positions are converted from 1-based lines/columns to
// the protocol's 0-based indexing. An empty (non-nil) slice clears
// previously published diagnostics on the client.
func ConvertErrors(errs []*errors.Error) []protocol.Diagnostic {
	diagnostics := make([]protocol.Diagnostic, 0, len(errs))

	for _, err := range errs {
		length := err.Length
		if length <= 0 {
			length = 1
		}

		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(err.Position.Line - 1),
					Character: uint32(err.Position.Column - 1),
				},
				End: protocol.Position{
					Line:      uint32(err.Position.Line - 1),
					Character: uint32(err.Position.Column - 1 + length),
				},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("mica"),
			Message:  err.Error(),
		})
	}

	return diagnostics
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
