package tokenizer

import "testing"

func TestCompoundResolver(t *testing.T) {
	cases := []struct {
		text string
		typ  TokenType
	}{
		{"&=", AMPERSAND_EQUAL},
		{"|=", PIPE_EQUAL},
		{"+=", PLUS_EQUAL},
		{"-=", MINUS_EQUAL},
		{"*=", STAR_EQUAL},
		{"/=", SLASH_EQUAL},
		{"%=", PERCENT_EQUAL},
		{"^=", CARET_EQUAL},
		{"!=", BANG_EQUAL},
		{"==", EQUAL_EQUAL},
		{"<=", LESS_EQUAL},
		{"<<=", SHIFT_LEFT_EQUAL},
		{">=", GREATER_EQUAL},
		{">>=", SHIFT_RIGHT_EQUAL},
	}
	for _, tc := range cases {
		if got := compoundTokenType(tc.text); got != tc.typ {
			t.Errorf("%q: expected %s, got %s", tc.text, tc.typ, got)
		}
	}
}

func TestPunctuationResolver(t *testing.T) {
	cases := map[string]TokenType{
		"(": LEFT_PAREN,
		")": RIGHT_PAREN,
		"[": LEFT_BRACKET,
		"]": RIGHT_BRACKET,
		"{": LEFT_BRACE,
		"}": RIGHT_BRACE,
		",": COMMA,
		";": SEMICOLON,
		"?": QUESTION,
	}
	for text, typ := range cases {
		if got := punctTokenType(text); got != typ {
			t.Errorf("%q: expected %s, got %s", text, typ, got)
		}
	}
}

func TestCommentResolver(t *testing.T) {
	cases := map[string]TokenType{
		"//! d":    DOC_COMMENT,
		"/*! d */": DOC_COMMENT,
		"// d":     COMMENT,
		"/* d */":  COMMENT,
		"//":       COMMENT,
	}
	for text, typ := range cases {
		if got := commentTokenType(text); got != typ {
			t.Errorf("%q: expected %s, got %s", text, typ, got)
		}
	}
}

// The preprocessor resolver only recognizes the directive as such; the
// declared sub-kinds stay unassigned until a later stage claims them.
func TestPreprocessorResolverIsGeneric(t *testing.T) {
	for _, text := range []string{"#define A 1", "#include <a.h>", "#ifdef X", "#pragma once"} {
		if got := preprocTokenType(text); got != PREPROC {
			t.Errorf("%q: expected PREPROC, got %s", text, got)
		}
	}
}

// Every terminal state must either map to a fixed type or name a resolver;
// the ILLEGAL entries are exactly the states that cannot legally end a token.
func TestStateOutputsExhaustive(t *testing.T) {
	unterminated := map[state]bool{
		stBackslashAcc: true,
		stString:       true,
		stCharLit:      true,
		stComment:      true,
		stCommentStar:  true,
		stDot2:         true,
	}
	for st := state(0); st < numStates; st++ {
		out := stateOutputs[st]
		if out.resolver != resolveFixed {
			continue
		}
		if out.fixed == ILLEGAL && !unterminated[st] {
			t.Errorf("state %s finalizes to ILLEGAL but is not an unterminated-construct state", st)
		}
		if out.fixed != ILLEGAL && unterminated[st] {
			t.Errorf("state %s should not be able to end a token", st)
		}
	}
}
