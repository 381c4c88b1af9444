package lsp

import (
	"errors"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"cpptok/internal/tokenizer"
)

// ConvertScanError transforms the tokenizer's fatal scan error into LSP
// diagnostics for IDE display. Tokenization stops at the first invalid
// construct, so at most one diagnostic is produced.
func ConvertScanError(err error) []protocol.Diagnostic {
	if err == nil {
		return nil
	}

	var scanErr *tokenizer.ScanError
	if !errors.As(err, &scanErr) {
		return nil
	}

	return []protocol.Diagnostic{{
		Range: protocol.Range{
			Start: protocol.Position{
				Line:      uint32(scanErr.Position.Line - 1), // convert to 0-based indexing
				Character: uint32(scanErr.Position.Column - 1),
			},
			End: protocol.Position{
				Line:      uint32(scanErr.Position.Line - 1),
				Character: uint32(scanErr.Position.Column),
			},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("cpptok"),
		Message:  scanErr.Message,
	}}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
