package lsp_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"cpptok/internal/lsp"
	"cpptok/internal/tokenizer"
)

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	handler := lsp.NewTokenHandler()

	absPath, err := filepath.Abs(filepath.Join("../../examples", "simple1.hxx"))
	require.NoError(t, err, "Failed to get absolute path")

	uri := "file://" + filepath.ToSlash(absPath)

	ctx := &glsp.Context{}
	params := &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{
			URI: uri,
		},
	}

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, params)
	require.NoError(t, err, "TextDocumentSemanticTokensFull returned error")
	require.NotNil(t, tokens, "Returned tokens should not be nil")
	require.NotEmpty(t, tokens.Data, "Returned token data should not be empty")

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err, "Failed to decode semantic tokens")
	require.Len(t, decoded, 15)

	assertToken(t, &decoded[0], 1, 1, 61, "comment", []string{"documentation"})
	assertToken(t, &decoded[1], 3, 1, 13, "macro", nil)
	assertToken(t, &decoded[2], 4, 4, 41, "macro", nil)
	assertToken(t, &decoded[3], 5, 1, 5, "macro", nil)
	assertToken(t, &decoded[4], 6, 4, 58, "macro", nil)
	assertToken(t, &decoded[5], 7, 1, 6, "macro", nil)
	assertToken(t, &decoded[6], 9, 1, 42, "comment", []string{"documentation"})
	assertToken(t, &decoded[7], 10, 1, 3, "variable", nil)
	assertToken(t, &decoded[8], 10, 5, 11, "variable", nil)
	assertToken(t, &decoded[9], 10, 17, 16, "variable", nil)
	assertToken(t, &decoded[10], 10, 33, 1, "operator", nil)
	assertToken(t, &decoded[11], 10, 34, 3, "variable", nil)
	assertToken(t, &decoded[12], 10, 38, 3, "variable", nil)
	assertToken(t, &decoded[13], 10, 41, 1, "operator", nil)
	assertToken(t, &decoded[14], 10, 42, 1, "operator", nil)
}

func TestConvertScanError(t *testing.T) {
	_, err := tokenizer.Tokens("int x;\nint @;\n")
	require.Error(t, err)

	diagnostics := lsp.ConvertScanError(err)
	require.Len(t, diagnostics, 1)

	diag := diagnostics[0]
	require.Equal(t, uint32(1), diag.Range.Start.Line)
	require.Equal(t, uint32(4), diag.Range.Start.Character)
	require.Equal(t, protocol.DiagnosticSeverityError, *diag.Severity)
	require.Equal(t, "cpptok", *diag.Source)
	require.Contains(t, diag.Message, "invalid character")
}

func TestConvertScanErrorNil(t *testing.T) {
	require.Nil(t, lsp.ConvertScanError(nil))
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]
		length := raw[i+2]
		tokenTypeIdx := raw[i+3]
		tokenModMask := raw[i+4]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if tokenModMask&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line + 1, // LSP uses 0-based indexing
			Char:      char + 1, // LSP uses 0-based indexing
			Length:    length,
			Type:      lsp.SemanticTokenTypes[tokenTypeIdx],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string, expectedModifiers []string) {
	require.Equal(t, expectedLine, token.Line, "line mismatch for token %d", token.Index)
	require.Equal(t, expectedChar, token.Char, "char mismatch for token %d", token.Index)
	require.Equal(t, expectedLength, token.Length, "length mismatch for token %d", token.Index)
	require.Equal(t, expectedType, token.Type, "type mismatch for token %d", token.Index)
	require.Equal(t, expectedModifiers, token.Modifiers, "modifier mismatch for token %d", token.Index)
}
