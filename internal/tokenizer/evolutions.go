package tokenizer

// evolution is one entry of the transition table: where to go and what to do
// for a (state, class) pair.
type evolution struct {
	next state
	act  action
}

type evolutionTable [numStates][numCharClasses]evolution

// evosPreserve keeps every input byte inside some token, so concatenating all
// token texts reproduces the source. evosDiscard drops newlines and
// line-leading whitespace instead, matching the compact output mode.
var (
	evosPreserve = buildEvolutions()
	evosDiscard  = discardSeparators(evosPreserve)
)

// boundaryRow is the row shared by every state that completes a token: the
// next character closes the pending token and opens a fresh one. A pound sign
// is only legal at the start of a line, and an invalid character is only
// legal inside a literal or comment, so both stay errors here.
func boundaryRow(self state) [numCharClasses]evolution {
	var row [numCharClasses]evolution
	row[ccInvalid] = evolution{self, actError}
	row[ccAmp] = evolution{stAmp, actYieldStart}
	row[ccStar] = evolution{stStar, actYieldStart}
	row[ccBackslash] = evolution{stBackslash, actPush}
	row[ccCaret] = evolution{stCaret, actYieldStart}
	row[ccColon] = evolution{stColon, actYieldStart}
	row[ccDigit] = evolution{stNumber, actYieldStart}
	row[ccDot] = evolution{stDot, actYieldStart}
	row[ccEOL] = evolution{stBOL, actYieldStart}
	row[ccEqual] = evolution{stEqual, actYieldStart}
	row[ccExcl] = evolution{stExcl, actYieldStart}
	row[ccSlash] = evolution{stSlash, actYieldStart}
	row[ccGt] = evolution{stGreater, actYieldStart}
	row[ccLt] = evolution{stLess, actYieldStart}
	row[ccLetter] = evolution{stIdent, actYieldStart}
	row[ccLetterE] = evolution{stIdent, actYieldStart}
	row[ccMinus] = evolution{stMinus, actYieldStart}
	row[ccPercent] = evolution{stPercent, actYieldStart}
	row[ccPipe] = evolution{stPipe, actYieldStart}
	row[ccPlus] = evolution{stPlus, actYieldStart}
	row[ccPound] = evolution{self, actError}
	row[ccPunct] = evolution{stPunct, actYieldStart}
	row[ccDoubleQuote] = evolution{stString, actYieldStart}
	row[ccSingleQuote] = evolution{stCharLit, actYieldStart}
	row[ccTilde] = evolution{stTilde, actYieldStart}
	row[ccSpace] = evolution{stSpace, actYieldStart}
	return row
}

// insideRow is the row shared by literal and comment bodies: everything
// accumulates, including characters that are invalid elsewhere, and a
// backslash is held back until the next character decides between a line
// splice and a preserved escape.
func insideRow(self state) [numCharClasses]evolution {
	var row [numCharClasses]evolution
	for cc := charClass(0); cc < numCharClasses; cc++ {
		row[cc] = evolution{self, actAccumulate}
	}
	row[ccBackslash] = evolution{stBackslashAcc, actPush}
	return row
}

func buildEvolutions() evolutionTable {
	var t evolutionTable

	boundaryStates := []state{
		stBOL, stIndent, stSpace, stIdent,
		stNumber, stNumberExp, stNumberSuffix,
		stStringEnd, stCharLitEnd, stCommentEnd,
		stAmp, stAmpAmp, stPipe, stPipePipe,
		stPlus, stPlusPlus, stMinus, stMinusMinus, stArrow, stArrowStar,
		stStar, stSlash, stPercent, stCaret, stExcl, stEqual,
		stLess, stLess2, stGreater, stGreater2, stTilde,
		stColon, stColonColon, stDot, stDot3, stPunct, stOpEqual,
	}
	for _, st := range boundaryStates {
		t[st] = boundaryRow(st)
	}

	// Directives are only recognized at the start of a line, possibly after
	// indentation. Newlines and line-leading whitespace accumulate so that a
	// blank-heavy prologue still round-trips.
	t[stBOL][ccPound] = evolution{stPreproc, actYieldStart}
	t[stBOL][ccEOL] = evolution{stBOL, actAccumulate}
	t[stBOL][ccSpace] = evolution{stIndent, actAccumulate}
	t[stIndent][ccPound] = evolution{stPreproc, actYieldStart}
	t[stIndent][ccEOL] = evolution{stBOL, actAccumulate}
	t[stIndent][ccSpace] = evolution{stIndent, actAccumulate}
	t[stSpace][ccEOL] = evolution{stBOL, actAccumulate}
	t[stSpace][ccSpace] = evolution{stSpace, actAccumulate}

	t[stIdent][ccLetter] = evolution{stIdent, actAccumulate}
	t[stIdent][ccLetterE] = evolution{stIdent, actAccumulate}
	t[stIdent][ccDigit] = evolution{stIdent, actAccumulate}

	// Numbers accumulate greedily: digits, dots, suffix letters and a signed
	// exponent all stay in one token. The grammar of the result is not
	// validated here.
	t[stNumber][ccDigit] = evolution{stNumber, actAccumulate}
	t[stNumber][ccDot] = evolution{stNumber, actAccumulate}
	t[stNumber][ccLetter] = evolution{stNumberSuffix, actAccumulate}
	t[stNumber][ccLetterE] = evolution{stNumberExp, actAccumulate}
	t[stNumberExp][ccDigit] = evolution{stNumberSuffix, actAccumulate}
	t[stNumberExp][ccLetter] = evolution{stNumberSuffix, actAccumulate}
	t[stNumberExp][ccLetterE] = evolution{stNumberSuffix, actAccumulate}
	t[stNumberExp][ccMinus] = evolution{stNumberSuffix, actAccumulate}
	t[stNumberExp][ccPlus] = evolution{stNumberSuffix, actAccumulate}
	t[stNumberSuffix][ccDigit] = evolution{stNumberSuffix, actAccumulate}
	t[stNumberSuffix][ccLetter] = evolution{stNumberSuffix, actAccumulate}
	t[stNumberSuffix][ccLetterE] = evolution{stNumberSuffix, actAccumulate}

	t[stString] = insideRow(stString)
	t[stString][ccDoubleQuote] = evolution{stStringEnd, actAccumulate}
	t[stStringEnd][ccLetter] = evolution{stStringEnd, actAccumulate}
	t[stStringEnd][ccLetterE] = evolution{stStringEnd, actAccumulate}

	t[stCharLit] = insideRow(stCharLit)
	t[stCharLit][ccSingleQuote] = evolution{stCharLitEnd, actAccumulate}
	t[stCharLitEnd][ccLetter] = evolution{stCharLitEnd, actAccumulate}
	t[stCharLitEnd][ccLetterE] = evolution{stCharLitEnd, actAccumulate}

	t[stComment] = insideRow(stComment)
	t[stComment][ccStar] = evolution{stCommentStar, actAccumulate}
	for cc := charClass(0); cc < numCharClasses; cc++ {
		t[stCommentStar][cc] = evolution{stComment, actAccumulate}
	}
	t[stCommentStar][ccStar] = evolution{stCommentStar, actAccumulate}
	t[stCommentStar][ccSlash] = evolution{stCommentEnd, actAccumulate}
	t[stCommentStar][ccBackslash] = evolution{stBackslashAcc, actPush}

	t[stCommentLine] = insideRow(stCommentLine)
	t[stCommentLine][ccEOL] = evolution{stBOL, actYieldStart}

	t[stPreproc] = insideRow(stPreproc)
	t[stPreproc][ccEOL] = evolution{stBOL, actYieldStart}
	t[stPreproc][ccInvalid] = evolution{stPreproc, actError}

	// After a top-level backslash only a line splice is valid.
	for cc := charClass(0); cc < numCharClasses; cc++ {
		t[stBackslash][cc] = evolution{stBackslash, actError}
		t[stBackslashAcc][cc] = evolution{stBackslashAcc, actPopEscape}
	}
	t[stBackslash][ccEOL] = evolution{stBackslash, actPop}
	t[stBackslashAcc][ccEOL] = evolution{stBackslashAcc, actPop}

	// Multi-character operators with shared prefixes.
	t[stAmp][ccAmp] = evolution{stAmpAmp, actAccumulate}
	t[stAmp][ccEqual] = evolution{stOpEqual, actAccumulate}
	t[stPipe][ccPipe] = evolution{stPipePipe, actAccumulate}
	t[stPipe][ccEqual] = evolution{stOpEqual, actAccumulate}
	t[stPlus][ccPlus] = evolution{stPlusPlus, actAccumulate}
	t[stPlus][ccEqual] = evolution{stOpEqual, actAccumulate}
	t[stPlus][ccDigit] = evolution{stNumber, actAccumulate}
	t[stPlus][ccDot] = evolution{stNumber, actAccumulate}
	t[stMinus][ccMinus] = evolution{stMinusMinus, actAccumulate}
	t[stMinus][ccGt] = evolution{stArrow, actAccumulate}
	t[stMinus][ccEqual] = evolution{stOpEqual, actAccumulate}
	t[stMinus][ccDigit] = evolution{stNumber, actAccumulate}
	t[stMinus][ccDot] = evolution{stNumber, actAccumulate}
	t[stArrow][ccStar] = evolution{stArrowStar, actAccumulate}
	t[stStar][ccEqual] = evolution{stOpEqual, actAccumulate}
	t[stSlash][ccEqual] = evolution{stOpEqual, actAccumulate}
	t[stSlash][ccSlash] = evolution{stCommentLine, actAccumulate}
	t[stSlash][ccStar] = evolution{stComment, actAccumulate}
	t[stPercent][ccEqual] = evolution{stOpEqual, actAccumulate}
	t[stCaret][ccEqual] = evolution{stOpEqual, actAccumulate}
	t[stExcl][ccEqual] = evolution{stOpEqual, actAccumulate}
	t[stEqual][ccEqual] = evolution{stOpEqual, actAccumulate}
	t[stLess][ccLt] = evolution{stLess2, actAccumulate}
	t[stLess][ccEqual] = evolution{stOpEqual, actAccumulate}
	t[stLess2][ccEqual] = evolution{stOpEqual, actAccumulate}
	t[stGreater][ccGt] = evolution{stGreater2, actAccumulate}
	t[stGreater][ccEqual] = evolution{stOpEqual, actAccumulate}
	t[stGreater2][ccEqual] = evolution{stOpEqual, actAccumulate}
	t[stColon][ccColon] = evolution{stColonColon, actAccumulate}
	t[stColonColon][ccColon] = evolution{stColonColon, actError}

	// Two dots are only valid as the prefix of an ellipsis.
	t[stDot][ccDigit] = evolution{stNumber, actAccumulate}
	t[stDot][ccDot] = evolution{stDot2, actAccumulate}
	for cc := charClass(0); cc < numCharClasses; cc++ {
		t[stDot2][cc] = evolution{stDot2, actError}
	}
	t[stDot2][ccDot] = evolution{stDot3, actAccumulate}
	t[stDot2][ccBackslash] = evolution{stBackslash, actPush}

	return t
}

// discardSeparators derives the compact table: newlines and line-leading
// whitespace are consumed by yield-and-ignore instead of becoming whitespace
// tokens. Whitespace runs between tokens on a line are still emitted.
func discardSeparators(t evolutionTable) evolutionTable {
	for st := state(0); st < numStates; st++ {
		if t[st][ccEOL] == (evolution{stBOL, actYieldStart}) {
			t[st][ccEOL] = evolution{stBOL, actYieldSkip}
		}
	}
	t[stBOL][ccEOL] = evolution{stBOL, actYieldSkip}
	t[stBOL][ccSpace] = evolution{stBOL, actYieldSkip}
	t[stIndent] = t[stBOL] // unreachable once leading whitespace is skipped
	t[stSpace][ccEOL] = evolution{stBOL, actYieldSkip}
	return t
}
