// Package tokenizer turns C/C++-family source text into a stream of
// classified tokens. Whitespace and comments are tokens too, so concatenating
// the text of every token in order reproduces the input exactly.
//
// The engine is a table-driven state machine: each input byte is mapped to a
// character class, the (state, class) pair is looked up in the evolution
// table, and the resulting action drives token assembly. There is no ad hoc
// character dispatch outside the table.
package tokenizer

// TokenType identifies the lexical class of a token.
type TokenType int

const (
	// ILLEGAL is the not-yet-determined default. A finalized token must
	// never carry it; if one does, a resolver failed to classify it.
	ILLEGAL TokenType = iota
	// EOF marks permanent stream exhaustion and has no token text.
	EOF

	// Identifiers + literals
	IDENTIFIER
	NUMBER
	STRING_LIT
	CHAR_LIT

	// Comments
	COMMENT
	DOC_COMMENT

	// Preprocessor lines. The sub-kinds are declared but the resolver does
	// not assign them yet; every directive finalizes as PREPROC.
	PREPROC
	PREPROC_DEFINE
	PREPROC_FLOW
	PREPROC_INCLUDE
	PREPROC_OTHER

	// Layout
	WHITESPACE
	BACKSLASH

	// Operators
	AMPERSAND
	AND
	AMPERSAND_EQUAL
	PIPE
	OR
	PIPE_EQUAL
	PLUS
	INCREMENT
	PLUS_EQUAL
	MINUS
	DECREMENT
	MINUS_EQUAL
	ARROW
	ARROW_STAR
	STAR
	STAR_EQUAL
	SLASH
	SLASH_EQUAL
	PERCENT
	PERCENT_EQUAL
	CARET
	CARET_EQUAL
	BANG
	BANG_EQUAL
	EQUAL
	EQUAL_EQUAL
	LESS
	LESS_EQUAL
	SHIFT_LEFT
	SHIFT_LEFT_EQUAL
	GREATER
	GREATER_EQUAL
	SHIFT_RIGHT
	SHIFT_RIGHT_EQUAL
	TILDE

	// Separators
	COLON
	DOUBLE_COLON
	DOT
	ELLIPSIS
	COMMA
	SEMICOLON
	QUESTION

	// Brackets
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	LEFT_BRACKET
	RIGHT_BRACKET

	numTokenTypes = iota
)

var tokenTypeNames = [numTokenTypes]string{
	ILLEGAL:           "ILLEGAL",
	EOF:               "EOF",
	IDENTIFIER:        "IDENTIFIER",
	NUMBER:            "NUMBER",
	STRING_LIT:        "STRING_LIT",
	CHAR_LIT:          "CHAR_LIT",
	COMMENT:           "COMMENT",
	DOC_COMMENT:       "DOC_COMMENT",
	PREPROC:           "PREPROC",
	PREPROC_DEFINE:    "PREPROC_DEFINE",
	PREPROC_FLOW:      "PREPROC_FLOW",
	PREPROC_INCLUDE:   "PREPROC_INCLUDE",
	PREPROC_OTHER:     "PREPROC_OTHER",
	WHITESPACE:        "WHITESPACE",
	BACKSLASH:         "BACKSLASH",
	AMPERSAND:         "AMPERSAND",
	AND:               "AND",
	AMPERSAND_EQUAL:   "AMPERSAND_EQUAL",
	PIPE:              "PIPE",
	OR:                "OR",
	PIPE_EQUAL:        "PIPE_EQUAL",
	PLUS:              "PLUS",
	INCREMENT:         "INCREMENT",
	PLUS_EQUAL:        "PLUS_EQUAL",
	MINUS:             "MINUS",
	DECREMENT:         "DECREMENT",
	MINUS_EQUAL:       "MINUS_EQUAL",
	ARROW:             "ARROW",
	ARROW_STAR:        "ARROW_STAR",
	STAR:              "STAR",
	STAR_EQUAL:        "STAR_EQUAL",
	SLASH:             "SLASH",
	SLASH_EQUAL:       "SLASH_EQUAL",
	PERCENT:           "PERCENT",
	PERCENT_EQUAL:     "PERCENT_EQUAL",
	CARET:             "CARET",
	CARET_EQUAL:       "CARET_EQUAL",
	BANG:              "BANG",
	BANG_EQUAL:        "BANG_EQUAL",
	EQUAL:             "EQUAL",
	EQUAL_EQUAL:       "EQUAL_EQUAL",
	LESS:              "LESS",
	LESS_EQUAL:        "LESS_EQUAL",
	SHIFT_LEFT:        "SHIFT_LEFT",
	SHIFT_LEFT_EQUAL:  "SHIFT_LEFT_EQUAL",
	GREATER:           "GREATER",
	GREATER_EQUAL:     "GREATER_EQUAL",
	SHIFT_RIGHT:       "SHIFT_RIGHT",
	SHIFT_RIGHT_EQUAL: "SHIFT_RIGHT_EQUAL",
	TILDE:             "TILDE",
	COLON:             "COLON",
	DOUBLE_COLON:      "DOUBLE_COLON",
	DOT:               "DOT",
	ELLIPSIS:          "ELLIPSIS",
	COMMA:             "COMMA",
	SEMICOLON:         "SEMICOLON",
	QUESTION:          "QUESTION",
	LEFT_PAREN:        "LEFT_PAREN",
	RIGHT_PAREN:       "RIGHT_PAREN",
	LEFT_BRACE:        "LEFT_BRACE",
	RIGHT_BRACE:       "RIGHT_BRACE",
	LEFT_BRACKET:      "LEFT_BRACKET",
	RIGHT_BRACKET:     "RIGHT_BRACKET",
}

func (tt TokenType) String() string {
	if tt < 0 || tt >= numTokenTypes {
		return "TokenType(?)"
	}
	return tokenTypeNames[tt]
}

// Position locates a token or error in the source text.
type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}

// Token is one classified span of source text.
type Token struct {
	Type     TokenType
	Text     string
	Position Position
}
