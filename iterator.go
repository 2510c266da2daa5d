package jsontok

import "io"

// Iterator walks one JSON document, emitting one Token per Next call. It
// is single-owner and not safe for concurrent use — exactly the
// single-threaded, cooperative model spec'd for this whole package; the
// only blocking point is a read on an io.Reader-backed source, and the
// Iterator has no cancellation of its own beyond whatever ctx-awareness
// the caller's io.Reader provides.
type Iterator struct {
	src source
	cfg config
	stack *matchStack

	line int
	col  int

	tokenInit        bool
	firstInContainer bool

	pendingOpen     bool
	pendingOpenKind containerKind

	lastKind Kind

	havePeek bool
	peekB    byte
	peekEOF  bool

	keyBuf      []byte
	keyBufTaken bool
	valBuf      []byte
	valBufTaken bool

	err    *Error
	closed bool
}

// Open creates an Iterator over a byte slice already resident in memory.
// The slice is validated as UTF-8 eagerly; a document that is not valid
// UTF-8, or ends mid-codepoint, is rejected here rather than during
// Next.
func Open(src []byte, opts ...Option) (*Iterator, error) {
	if src == nil {
		return nil, newError(ErrInvalidArgs, 0, 0, 0, "source must not be nil")
	}
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	ss, err := newStringSource(src)
	if err != nil {
		return nil, err
	}
	return newIterator(ss, cfg), nil
}

// OpenReader creates an Iterator that pulls bytes from r in chunks as
// needed. Each chunk is UTF-8 validated as it is read; position counters
// and errors are only ever attached to the Iterator, never to r.
func OpenReader(r io.Reader, opts ...Option) (*Iterator, error) {
	if r == nil {
		return nil, newError(ErrInvalidArgs, 0, 0, 0, "reader must not be nil")
	}
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return newIterator(newStreamSource(r, cfg.bufSize, cfg.eagerStreamBuf), cfg), nil
}

func newIterator(src source, cfg config) *Iterator {
	return &Iterator{
		src:   src,
		cfg:   cfg,
		stack: newMatchStack(cfg.matchStackCap),
		line:  1,
		col:   0,
	}
}

// Close releases the Iterator's match stack and scratch buffers. It is
// safe to call more than once, and safe to call after an error. Any
// String previously produced by this Iterator that still borrows from
// input remains valid (it aliases the caller's byte slice, not anything
// Close frees); one that was owned by a scratch buffer and not Extracted
// becomes unspecified once Close runs.
func (it *Iterator) Close() error {
	if it.closed {
		return nil
	}
	it.closed = true
	it.stack = nil
	it.keyBuf = nil
	it.valBuf = nil
	return nil
}

// Err returns the sticky error that made the Iterator unusable, or nil
// if none occurred (including when the Iterator is simply exhausted).
func (it *Iterator) Err() error {
	if it.err == nil {
		return nil
	}
	return it.err
}

// Depth reports the number of Start-Object/Start-Array tokens emitted so
// far minus the number of End-Object/End-Array tokens emitted so far.
func (it *Iterator) Depth() int {
	if it.stack == nil {
		return 0
	}
	d := it.stack.depth()
	if it.pendingOpen {
		// the bracket of the last Start token is consumed by the next call
		d++
	}
	return d
}

// Line returns the 1-based line of the byte the Iterator is currently
// positioned at.
func (it *Iterator) Line() int { return it.line }

// Column returns the number of bytes consumed on the current line: 0 at
// the start of a line, otherwise the 1-based column of the last byte
// consumed.
func (it *Iterator) Column() int { return it.col }

// Next fills and returns the next Token. It returns false exactly when
// the returned Token's Kind is KindError; KindEOF is success. Once Next
// has returned false, every subsequent call on this Iterator is
// undefined — destroy it with Close.
func (it *Iterator) Next() (Token, bool) {
	if it.closed {
		e := newClosedError(it.line, it.col, "Next called on a closed iterator")
		it.err = e
		return Token{Kind: KindError, Err: e}, false
	}
	if it.err != nil {
		return Token{Kind: KindError, Err: it.err}, false
	}

	switch {
	case it.pendingOpen:
		// step 2: the previous emission opened a container; consume the
		// bracket now and land on its first-child position.
		it.advanceByte()
		it.stack.push(it.pendingOpenKind)
		it.pendingOpen = false
		it.skipWhitespace()
		it.firstInContainer = true

	case !it.tokenInit:
		// step 1: bootstrap — the outer value may be any JSON value.
		it.skipWhitespace()
		it.tokenInit = true
		it.firstInContainer = true

	case it.stack.empty():
		// step 9: the previous emission completed the single outer
		// value (a scalar, or the container close that drained the
		// stack); nothing but whitespace then EOF may follow.
		it.skipWhitespace()
		if _, ok := it.peekByte(); !ok {
			if it.err != nil {
				return Token{Kind: KindError, Err: it.err}, false
			}
			it.lastKind = KindEOF
			return Token{Kind: KindEOF, First: true}, true
		}
		return it.fail(ErrInvalidValue, "unexpected trailing data after the top-level value")
	}

	// step 3: optional trailing/leading comma, lenient mode only.
	commaConsumed := false
	if !it.cfg.strict {
		it.skipWhitespace()
		if b, ok := it.peekByte(); ok && b == ',' {
			it.advanceByte()
			commaConsumed = true
		}
	}

	// step 4: closing bracket.
	if !it.stack.empty() {
		it.skipWhitespace()
		if b, ok := it.peekByte(); ok && (b == ']' || b == '}') {
			top := it.stack.top()
			matches := (top == containerArray && b == ']') || (top == containerObject && b == '}')
			if !matches {
				return it.fail(ErrUnmatchedTokens, "closing %q does not match the open container", b)
			}
			it.advanceByte()
			it.stack.pop(top)
			// the next sibling in the enclosing container is not its first
			it.firstInContainer = false
			closeKind := KindEndArray
			if top == containerObject {
				closeKind = KindEndObject
			}
			it.lastKind = closeKind
			return Token{Kind: closeKind, First: true}, true
		}
	}

	// step 5: end of input.
	it.skipWhitespace()
	if _, ok := it.peekByte(); !ok {
		if it.err != nil {
			return Token{Kind: KindError, Err: it.err}, false
		}
		if it.stack.empty() {
			it.lastKind = KindEOF
			return Token{Kind: KindEOF, First: true}, true
		}
		return it.fail(ErrUnmatchedTokens, "unexpected end of input with unclosed containers")
	}

	// step 6: mandatory comma between siblings.
	if !it.firstInContainer && !commaConsumed {
		b, ok := it.peekByte()
		if !ok || b != ',' {
			return it.fail(ErrMissingComma, "expected ',' between elements")
		}
		it.advanceByte()
		it.skipWhitespace()
	}

	// step 7: object key.
	var key String
	hasKey := false
	if !it.stack.empty() && it.stack.top() == containerObject {
		b, _ := it.peekByte()
		var (
			k  String
			ok bool
		)
		switch {
		case b == '"':
			it.advanceByte()
			k, ok = it.scanQuotedString(&it.keyBuf, &it.keyBufTaken)
		case it.cfg.strict:
			return it.fail(ErrMissingQuote, "object keys must be quoted in strict mode")
		default:
			k, ok = it.scanIdentifierKey()
		}
		if !ok {
			return Token{Kind: KindError, Err: it.err}, false
		}
		it.skipWhitespace()
		if b, ok := it.peekByte(); !ok || b != ':' {
			return it.fail(ErrUnknownToken, "expected ':' after object key")
		}
		it.advanceByte()
		it.skipWhitespace()
		key, hasKey = k, true
	}

	// step 8: the value itself.
	first := it.firstInContainer
	it.firstInContainer = false

	tok, ok := it.parseValue()
	if !ok {
		return tok, false
	}
	tok.Key = key
	tok.HasKey = hasKey
	tok.First = first
	it.lastKind = tok.Kind
	return tok, true
}
