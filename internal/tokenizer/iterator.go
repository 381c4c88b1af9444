package tokenizer

import "fmt"

// ScanError reports the first lexically invalid construct. The engine has no
// resynchronization strategy: the iterator stops at the error position.
type ScanError struct {
	Message  string
	Position Position
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
}

// Option configures a TokenIterator at construction.
type Option func(*TokenIterator)

// DiscardSeparators drops newlines and beginning-of-line whitespace instead
// of emitting them as whitespace tokens. Whitespace runs between tokens on a
// line and comments are still produced. Without this option every input byte
// lands in some token, so concatenating all token texts reproduces the
// source.
func DiscardSeparators() Option {
	return func(it *TokenIterator) { it.evos = &evosDiscard }
}

// TokenIterator is a lazy, finite, non-restartable token stream over one
// source text. It owns the text and the in-flight token buffer; restarting
// means constructing a new iterator.
type TokenIterator struct {
	source string
	pos    int // cursor into source; doubles as the byte offset
	line   int
	column int

	state     state
	pushed    state // one-slot stack for backslash continuation
	hasPushed bool
	evos      *evolutionTable

	start Position // where the in-flight token began
	buf   []byte   // in-flight token text

	// curr is what the consumer sees; next is the assembly slot it is
	// promoted from. Keeping the two apart is the seam for a future
	// producer/consumer handoff, though today the transfer is synchronous.
	curr Token
	next Token
	err  error
}

var endIterator = &TokenIterator{curr: Token{Type: EOF}}

// End returns a sentinel iterator that is already exhausted, for use with
// Equal in place of a boolean has-more check.
func End() *TokenIterator {
	return endIterator
}

// NewTokenIterator takes ownership of source and positions the iterator on
// the first token, so Token is valid immediately after construction.
func NewTokenIterator(source string, opts ...Option) *TokenIterator {
	it := &TokenIterator{
		source: source,
		line:   1,
		column: 1,
		state:  stBOL,
		evos:   &evosPreserve,
		start:  Position{Line: 1, Column: 1},
	}
	for _, opt := range opts {
		opt(it)
	}
	it.Next()
	return it
}

// Token returns the most recently produced token. Once the stream is
// exhausted it keeps returning the EOF token.
func (it *TokenIterator) Token() Token {
	return it.curr
}

// AtEnd reports whether the stream is exhausted.
func (it *TokenIterator) AtEnd() bool {
	return it.curr.Type == EOF
}

// Equal reports whether both iterators are exhausted. Two live iterators are
// never equal; the relation exists so End can serve as a fixed sentinel.
func (it *TokenIterator) Equal(other *TokenIterator) bool {
	return it.curr.Type == EOF && other.curr.Type == EOF
}

// Err returns the error that stopped tokenization, if any.
func (it *TokenIterator) Err() error {
	return it.err
}

// Next advances to the next token, reporting false once the stream is
// exhausted or stopped at an error. Further calls stay at EOF without error.
func (it *TokenIterator) Next() bool {
	if it.curr.Type == EOF {
		return false
	}
	for it.pos < len(it.source) {
		ch := it.source[it.pos]
		evo := it.evos[it.state][classOf(ch)]

		switch evo.act {
		case actAccumulate:
			it.accumulate(ch)
			it.state = evo.next

		case actError:
			it.fail(ch)
			return false

		case actYieldStart:
			done := it.yield()
			it.accumulate(ch)
			it.state = evo.next
			if done {
				return true
			}

		case actYieldSkip:
			done := it.yield()
			it.advance(ch)
			it.state = evo.next
			if done {
				return true
			}

		case actPush:
			if it.hasPushed {
				panic("tokenizer: pushed-state slot already occupied")
			}
			it.pushed, it.hasPushed = it.state, true
			it.advance(ch)
			it.state = evo.next

		case actPop:
			it.state = it.popState()
			it.advance(ch)

		case actPopEscape:
			it.state = it.popState()
			it.buf = append(it.buf, '\\', ch)
			it.advance(ch)
		}
	}

	// Input exhausted. A dangling backslash never resolved into a splice or
	// an escape, so the pending token cannot be completed.
	if it.hasPushed {
		it.err = &ScanError{
			Message:  "unexpected end of input after backslash",
			Position: it.here(),
		}
		it.buf = it.buf[:0]
		it.finish()
		return false
	}
	if it.yield() {
		if it.curr.Type == ILLEGAL {
			it.err = &ScanError{
				Message:  fmt.Sprintf("unexpected end of input in %s", it.state),
				Position: it.curr.Position,
			}
			it.finish()
			return false
		}
		return true
	}
	it.finish()
	return false
}

// yield finalizes the in-flight token into the next slot and promotes it to
// curr. Reports false when no text was pending.
func (it *TokenIterator) yield() bool {
	if len(it.buf) == 0 {
		return false
	}
	text := string(it.buf)
	it.buf = it.buf[:0]
	it.next = Token{Type: finalize(it.state, text), Text: text, Position: it.start}
	it.curr = it.next
	return true
}

func (it *TokenIterator) accumulate(ch byte) {
	if len(it.buf) == 0 {
		it.start = it.here()
	}
	it.buf = append(it.buf, ch)
	it.advance(ch)
}

func (it *TokenIterator) advance(ch byte) {
	it.pos++
	if ch == '\n' {
		it.line++
		it.column = 1
	} else {
		it.column++
	}
}

func (it *TokenIterator) popState() state {
	if !it.hasPushed {
		panic("tokenizer: pop from an empty pushed-state slot")
	}
	it.hasPushed = false
	return it.pushed
}

func (it *TokenIterator) here() Position {
	return Position{Line: it.line, Column: it.column, Offset: it.pos}
}

func (it *TokenIterator) fail(ch byte) {
	msg := fmt.Sprintf("invalid character %q in %s", ch, it.state)
	if it.state == stBackslash {
		msg = fmt.Sprintf("malformed escape: backslash followed by %q instead of end of line", ch)
	}
	it.err = &ScanError{Message: msg, Position: it.here()}
	it.buf = it.buf[:0]
	it.finish()
}

func (it *TokenIterator) finish() {
	it.curr = Token{Type: EOF, Position: it.here()}
}

// Tokens scans source to completion and returns every token produced, in
// order, without the trailing EOF marker.
func Tokens(source string, opts ...Option) ([]Token, error) {
	it := NewTokenIterator(source, opts...)
	var tokens []Token
	for !it.AtEnd() {
		tokens = append(tokens, it.Token())
		it.Next()
	}
	return tokens, it.Err()
}
