// Package grammar declares the same lexical grammar as the table-driven
// engine, but as a participle stateful lexer. It doubles as a regression
// oracle: both lexers must split splice-free sources into the same lexeme
// sequence.
package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var CxxLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments; a '!' right after the opener marks documentation
		{Name: "DocComment", Pattern: `//![^\n]*|(?s:/\*!.*?\*/)`, Action: nil},
		{Name: "Comment", Pattern: `//[^\n]*|(?s:/\*.*?\*/)`, Action: nil},

		// Preprocessor directive, up to the end of the line. Backslash
		// continuations are not spliced here; that is the engine's job.
		{Name: "Preproc", Pattern: `#[^\n]*`, Action: nil},

		// Literals keep their quotes, escapes and suffix letters
		{Name: "String", Pattern: `"(?:\\.|[^"\\])*"[A-Za-z_]*`, Action: nil},
		{Name: "Char", Pattern: `'(?:\\.|[^'\\])*'[A-Za-z_]*`, Action: nil},

		// Greedy number: optional sign, digits, dots, suffix letters and a
		// signed exponent all belong to one lexeme
		{Name: "Number", Pattern: `[-+]?\.?[0-9](?:[eE][-+]|[0-9a-zA-Z_.])*`, Action: nil},

		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`, Action: nil},

		// Operators, longest match first
		{Name: "Operator", Pattern: `<<=|>>=|\.\.\.|->\*|->|\+\+|--|&&|\|\||::|<<|>>|[-+*/%&|^!=<>]=|[-+*/%&|^!=<>~:.]`, Action: nil},

		// Punctuation
		{Name: "Punct", Pattern: `[()\[\]{},;?]`, Action: nil},

		// Whitespace runs, newlines included
		{Name: "Whitespace", Pattern: `[ \t\r\n\f\v]+`, Action: nil},
	},
})
