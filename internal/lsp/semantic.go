package lsp

import (
	"strings"

	"cpptok/internal/tokenizer"
)

// SemanticToken represents a single LSP semantic token entry.
// Line and StartChar are 0-based positions; TokenType is an index into
// SemanticTokenTypes and TokenModifiers a bitmask over SemanticTokenModifiers.
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

// The set of semantic token types the server advertises (as required by the
// LSP spec).
var SemanticTokenTypes = []string{
	"comment",
	"string",
	"number",
	"operator",
	"variable",
	"macro",
}

var SemanticTokenModifiers = []string{
	"documentation",
}

// collectSemanticTokens tokenizes source and maps every lexical token to a
// semantic token entry. Tokenization errors are not fatal here: the tokens
// produced before the error still get highlighted, and the error itself is
// reported through diagnostics.
func collectSemanticTokens(source string) []SemanticToken {
	tokens, _ := tokenizer.Tokens(source)

	var out []SemanticToken
	for _, tok := range tokens {
		name, modifiers := semanticClass(tok.Type)
		if name == "" {
			continue
		}
		out = append(out, splitToken(tok, name, modifiers)...)
	}
	return out
}

func semanticClass(tt tokenizer.TokenType) (string, int) {
	switch tt {
	case tokenizer.COMMENT:
		return "comment", 0
	case tokenizer.DOC_COMMENT:
		return "comment", 1 << indexOf("documentation", SemanticTokenModifiers)
	case tokenizer.STRING_LIT, tokenizer.CHAR_LIT:
		return "string", 0
	case tokenizer.NUMBER:
		return "number", 0
	case tokenizer.IDENTIFIER:
		return "variable", 0
	case tokenizer.PREPROC, tokenizer.PREPROC_DEFINE, tokenizer.PREPROC_FLOW,
		tokenizer.PREPROC_INCLUDE, tokenizer.PREPROC_OTHER:
		return "macro", 0
	case tokenizer.WHITESPACE, tokenizer.BACKSLASH, tokenizer.EOF, tokenizer.ILLEGAL:
		return "", 0
	default:
		// every remaining type is an operator or punctuation token
		return "operator", 0
	}
}

// splitToken breaks a token into one semantic entry per source line, since
// plain semantic tokens may not span line breaks. Block comments are the
// usual multi-line case.
func splitToken(tok tokenizer.Token, name string, modifiers int) []SemanticToken {
	typeIndex := indexOf(name, SemanticTokenTypes)

	var out []SemanticToken
	line := uint32(tok.Position.Line - 1) // LSP positions are 0-based
	column := uint32(tok.Position.Column - 1)
	for _, segment := range strings.Split(tok.Text, "\n") {
		if len(segment) > 0 {
			out = append(out, SemanticToken{
				Line:           line,
				StartChar:      column,
				Length:         uint32(len(segment)),
				TokenType:      typeIndex,
				TokenModifiers: modifiers,
			})
		}
		line++
		column = 0
	}
	return out
}

func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
