package tokenizer

// charClass groups input bytes so the evolution table stays one row per
// class instead of one row per character: every letter evolves like every
// other letter almost everywhere, so letters share a single column.
type charClass int

const (
	ccInvalid charClass = iota // may only appear inside literals and comments
	ccAmp
	ccStar
	ccBackslash
	ccCaret
	ccColon
	ccDigit
	ccDot
	ccEOL
	ccEqual
	ccExcl
	ccSlash
	ccGt
	ccLt
	ccLetter
	ccLetterE // 'e'/'E': may start the exponent of a number
	ccMinus
	ccPercent
	ccPipe
	ccPlus
	ccPound
	ccPunct
	ccDoubleQuote
	ccSingleQuote
	ccTilde
	ccSpace

	numCharClasses = iota
)

var charClassNames = [numCharClasses]string{
	ccInvalid:     "invalid",
	ccAmp:         "ampersand",
	ccStar:        "star",
	ccBackslash:   "backslash",
	ccCaret:       "caret",
	ccColon:       "colon",
	ccDigit:       "digit",
	ccDot:         "dot",
	ccEOL:         "end of line",
	ccEqual:       "equal",
	ccExcl:        "exclamation",
	ccSlash:       "slash",
	ccGt:          "greater-than",
	ccLt:          "less-than",
	ccLetter:      "letter",
	ccLetterE:     "letter e",
	ccMinus:       "minus",
	ccPercent:     "percent",
	ccPipe:        "pipe",
	ccPlus:        "plus",
	ccPound:       "pound",
	ccPunct:       "punctuation",
	ccDoubleQuote: "double quote",
	ccSingleQuote: "single quote",
	ccTilde:       "tilde",
	ccSpace:       "whitespace",
}

func (cc charClass) String() string {
	if cc < 0 || cc >= numCharClasses {
		return "charClass(?)"
	}
	return charClassNames[cc]
}

var classTable = buildClassTable()

func buildClassTable() [128]charClass {
	var t [128]charClass // unassigned entries stay ccInvalid
	for c := '0'; c <= '9'; c++ {
		t[c] = ccDigit
	}
	for c := 'a'; c <= 'z'; c++ {
		t[c] = ccLetter
	}
	for c := 'A'; c <= 'Z'; c++ {
		t[c] = ccLetter
	}
	t['e'], t['E'] = ccLetterE, ccLetterE
	t['_'] = ccLetter
	for _, c := range "\t\v\f\r " {
		t[c] = ccSpace
	}
	t['\n'] = ccEOL
	t['&'] = ccAmp
	t['*'] = ccStar
	t['\\'] = ccBackslash
	t['^'] = ccCaret
	t[':'] = ccColon
	t['.'] = ccDot
	t['='] = ccEqual
	t['!'] = ccExcl
	t['/'] = ccSlash
	t['>'] = ccGt
	t['<'] = ccLt
	t['-'] = ccMinus
	t['%'] = ccPercent
	t['|'] = ccPipe
	t['+'] = ccPlus
	t['#'] = ccPound
	t['~'] = ccTilde
	t['"'] = ccDoubleQuote
	t['\''] = ccSingleQuote
	for _, c := range "(),;?[]{}" {
		t[c] = ccPunct
	}
	return t
}

// classOf maps one code unit to its character class. Code units outside the
// 7-bit range always classify as letters, so identifiers may carry non-ASCII
// continuation bytes.
func classOf(c byte) charClass {
	if c < 128 {
		return classTable[c]
	}
	return ccLetter
}
