package tokenizer

// state records how much of the current token has been seen and in what
// lexical context. stBOL is the initial state. The set is closed: the
// evolution table defines a successor for every (state, class) pair.
type state int

const (
	stBOL          state = iota // start of a non-continued line, no pending token
	stIndent                    // whitespace run at the start of a line
	stSpace                     // whitespace run after a token
	stBackslash                 // backslash outside a literal; only a line splice may follow
	stBackslashAcc              // backslash inside a literal or comment; may become a preserved escape
	stIdent                     // identifier
	stNumber                    // number
	stNumberExp                 // number followed by 'e'/'E': suffix or exponent
	stNumberSuffix              // suffix or exponent tail of a number
	stString                    // double-quoted string literal
	stStringEnd                 // string literal, after the closing double quote
	stCharLit                   // single-quoted character literal
	stCharLitEnd                // character literal, after the closing single quote
	stComment                   // multi-line comment
	stCommentStar               // multi-line comment, after an asterisk
	stCommentEnd                // just past the end of a multi-line comment
	stCommentLine               // single-line comment
	stPreproc                   // preprocessor directive line
	stAmp                       // &
	stAmpAmp                    // &&
	stPipe                      // |
	stPipePipe                  // ||
	stPlus                      // +
	stPlusPlus                  // ++
	stMinus                     // -
	stMinusMinus                // --
	stArrow                     // ->
	stArrowStar                 // ->*
	stStar                      // *
	stSlash                     // /
	stPercent                   // %
	stCaret                     // ^
	stExcl                      // !
	stEqual                     // =
	stLess                      // <
	stLess2                     // <<
	stGreater                   // >
	stGreater2                  // >>
	stTilde                     // ~
	stColon                     // :
	stColonColon                // ::
	stDot                       // .
	stDot2                      // ..
	stDot3                      // ...
	stPunct                     // single punctuation character
	stOpEqual                   // operator followed by '='

	numStates = iota
)

var stateNames = [numStates]string{
	stBOL:          "start of line",
	stIndent:       "line indentation",
	stSpace:        "whitespace",
	stBackslash:    "backslash",
	stBackslashAcc: "backslash escape",
	stIdent:        "identifier",
	stNumber:       "number",
	stNumberExp:    "number exponent",
	stNumberSuffix: "number suffix",
	stString:       "string literal",
	stStringEnd:    "string literal end",
	stCharLit:      "character literal",
	stCharLitEnd:   "character literal end",
	stComment:      "comment",
	stCommentStar:  "comment star",
	stCommentEnd:   "comment end",
	stCommentLine:  "line comment",
	stPreproc:      "preprocessor directive",
	stAmp:          "'&'",
	stAmpAmp:       "'&&'",
	stPipe:         "'|'",
	stPipePipe:     "'||'",
	stPlus:         "'+'",
	stPlusPlus:     "'++'",
	stMinus:        "'-'",
	stMinusMinus:   "'--'",
	stArrow:        "'->'",
	stArrowStar:    "'->*'",
	stStar:         "'*'",
	stSlash:        "'/'",
	stPercent:      "'%'",
	stCaret:        "'^'",
	stExcl:         "'!'",
	stEqual:        "'='",
	stLess:         "'<'",
	stLess2:        "'<<'",
	stGreater:      "'>'",
	stGreater2:     "'>>'",
	stTilde:        "'~'",
	stColon:        "':'",
	stColonColon:   "'::'",
	stDot:          "'.'",
	stDot2:         "'..'",
	stDot3:         "'...'",
	stPunct:        "punctuation",
	stOpEqual:      "compound assignment",
}

func (st state) String() string {
	if st < 0 || st >= numStates {
		return "state(?)"
	}
	return stateNames[st]
}

// action is what one evolution step does with the current character.
type action int

const (
	actAccumulate action = iota // append the character, continue in the next state
	actError                    // no valid lexical continuation; abort the run
	actYieldStart               // close the pending token, start a new one with this character
	actYieldSkip                // close the pending token, discard this character
	actPush                     // remember the current state before a backslash sequence
	actPop                      // line splice: restore the remembered state, both characters elided
	actPopEscape                // not a splice: restore the remembered state, keep "\"+char verbatim

	numActions = iota
)
