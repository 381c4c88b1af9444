package tokenizer

// Most terminal states map to exactly one token type. The rest need a
// resolver that inspects the accumulated text; the resolvers form a small
// closed set so finalize can dispatch over a tag instead of a function
// pointer.
type resolverKind int

const (
	resolveFixed resolverKind = iota
	resolveComment
	resolveCompound
	resolvePunct
	resolvePreproc
)

type stateOutput struct {
	resolver resolverKind
	fixed    TokenType
}

var stateOutputs = [numStates]stateOutput{
	stBOL:          {fixed: WHITESPACE},
	stIndent:       {fixed: WHITESPACE},
	stSpace:        {fixed: WHITESPACE},
	stBackslash:    {fixed: BACKSLASH},
	stBackslashAcc: {fixed: ILLEGAL},
	stIdent:        {fixed: IDENTIFIER},
	stNumber:       {fixed: NUMBER},
	stNumberExp:    {fixed: NUMBER},
	stNumberSuffix: {fixed: NUMBER},
	stString:       {fixed: ILLEGAL}, // unterminated
	stStringEnd:    {fixed: STRING_LIT},
	stCharLit:      {fixed: ILLEGAL}, // unterminated
	stCharLitEnd:   {fixed: CHAR_LIT},
	stComment:      {fixed: ILLEGAL}, // unterminated
	stCommentStar:  {fixed: ILLEGAL}, // unterminated
	stCommentEnd:   {resolver: resolveComment},
	stCommentLine:  {resolver: resolveComment},
	stPreproc:      {resolver: resolvePreproc},
	stAmp:          {fixed: AMPERSAND},
	stAmpAmp:       {fixed: AND},
	stPipe:         {fixed: PIPE},
	stPipePipe:     {fixed: OR},
	stPlus:         {fixed: PLUS},
	stPlusPlus:     {fixed: INCREMENT},
	stMinus:        {fixed: MINUS},
	stMinusMinus:   {fixed: DECREMENT},
	stArrow:        {fixed: ARROW},
	stArrowStar:    {fixed: ARROW_STAR},
	stStar:         {fixed: STAR},
	stSlash:        {fixed: SLASH},
	stPercent:      {fixed: PERCENT},
	stCaret:        {fixed: CARET},
	stExcl:         {fixed: BANG},
	stEqual:        {fixed: EQUAL},
	stLess:         {fixed: LESS},
	stLess2:        {fixed: SHIFT_LEFT},
	stGreater:      {fixed: GREATER},
	stGreater2:     {fixed: SHIFT_RIGHT},
	stTilde:        {fixed: TILDE},
	stColon:        {fixed: COLON},
	stColonColon:   {fixed: DOUBLE_COLON},
	stDot:          {fixed: DOT},
	stDot2:         {fixed: ILLEGAL},
	stDot3:         {fixed: ELLIPSIS},
	stPunct:        {resolver: resolvePunct},
	stOpEqual:      {resolver: resolveCompound},
}

// finalize turns a terminal state plus the accumulated text into a concrete
// token type.
func finalize(st state, text string) TokenType {
	out := stateOutputs[st]
	switch out.resolver {
	case resolveComment:
		return commentTokenType(text)
	case resolveCompound:
		return compoundTokenType(text)
	case resolvePunct:
		return punctTokenType(text)
	case resolvePreproc:
		return preprocTokenType(text)
	}
	return out.fixed
}

// commentTokenType distinguishes documentation comments: "//!" and "/*!"
// carry the marker as their third character.
func commentTokenType(text string) TokenType {
	if len(text) >= 3 && text[2] == '!' {
		return DOC_COMMENT
	}
	return COMMENT
}

// compoundTokenType resolves the shared operator-followed-by-equals state.
// The first accumulated character selects the operator; '<' and '>' need the
// second character to split shift-assignment from the relational forms.
func compoundTokenType(text string) TokenType {
	switch text[0] {
	case '&':
		return AMPERSAND_EQUAL
	case '|':
		return PIPE_EQUAL
	case '+':
		return PLUS_EQUAL
	case '-':
		return MINUS_EQUAL
	case '*':
		return STAR_EQUAL
	case '/':
		return SLASH_EQUAL
	case '%':
		return PERCENT_EQUAL
	case '^':
		return CARET_EQUAL
	case '!':
		return BANG_EQUAL
	case '=':
		return EQUAL_EQUAL
	case '<':
		if text[1] == '<' {
			return SHIFT_LEFT_EQUAL
		}
		return LESS_EQUAL
	case '>':
		if text[1] == '>' {
			return SHIFT_RIGHT_EQUAL
		}
		return GREATER_EQUAL
	}
	return ILLEGAL
}

func punctTokenType(text string) TokenType {
	switch text[0] {
	case '(':
		return LEFT_PAREN
	case ')':
		return RIGHT_PAREN
	case '[':
		return LEFT_BRACKET
	case ']':
		return RIGHT_BRACKET
	case '{':
		return LEFT_BRACE
	case '}':
		return RIGHT_BRACE
	case ',':
		return COMMA
	case ';':
		return SEMICOLON
	case '?':
		return QUESTION
	}
	return ILLEGAL
}

// preprocTokenType only recognizes that the line is a directive. Splitting
// out the define/flow/include sub-kinds is left to a later stage; the
// sub-kind token types exist but are never produced here.
func preprocTokenType(string) TokenType {
	return PREPROC
}
