package jsontok

import "io"

// defaultBufSize is the default stream read-buffer size, matching the
// original's WHY_JSON_BUF_SIZE default (platform BUFSIZ on most libc
// implementations; 256 documents the same "small, refill-often" intent
// without depending on a platform constant Go doesn't expose).
const defaultBufSize = 256

// source is the uniform byte-level contract the tokenizer is built on:
// peek the current byte without consuming it, or advance past it. Line
// and column bookkeeping is deliberately not a source responsibility
// (the Iterator does it, only on advance) so a source can be swapped
// without touching position tracking.
type source interface {
	// peek returns the current byte, or eof=true at end of input. A
	// non-nil error means the underlying source is unusable (a read
	// failure, or a sticky UTF-8 rejection) and peek will keep
	// returning it.
	peek() (b byte, eof bool, err error)
	// advance consumes the byte last returned by peek.
	advance()
}

// stringSource serves bytes already fully resident in memory. The whole
// slice is validated for UTF-8 up front, as spec'd: a document that ends
// mid-codepoint is rejected at construction rather than discovered
// lazily.
type stringSource struct {
	data []byte
	pos  int
	bad  bool
}

func newStringSource(b []byte) (*stringSource, error) {
	if validateUTF8(b) != utf8Accept {
		return nil, newError(ErrInvalidUTF8, 0, 0, 0, "input is not valid UTF-8")
	}
	return &stringSource{data: b}, nil
}

func (s *stringSource) peek() (byte, bool, error) {
	if s.pos >= len(s.data) {
		return 0, true, nil
	}
	return s.data[s.pos], false, nil
}

func (s *stringSource) advance() {
	s.pos++
}

// streamSource refills a fixed-size buffer from an io.Reader on demand.
// Each freshly read chunk is fed through the UTF-8 DFA before any of its
// bytes are exposed via peek, so the DFA state correctly carries across
// refill boundaries even when a multi-byte codepoint straddles one.
type streamSource struct {
	r        io.Reader
	buf      []byte
	bufSize  int
	fill     int
	pos      int
	eof      bool
	err      error
	utfState uint8
}

// newStreamSource builds a stream source. If eager is false, the read
// buffer is allocated lazily on the first refill instead of here,
// mirroring the original's WHY_JSON_ALLOCATE_BUF switch between
// allocating its read buffer up front and deferring it until the first
// byte is actually needed.
func newStreamSource(r io.Reader, bufSize int, eager bool) *streamSource {
	if bufSize <= 0 {
		bufSize = defaultBufSize
	}
	s := &streamSource{
		r:        r,
		bufSize:  bufSize,
		utfState: utf8Accept,
	}
	if eager {
		s.buf = make([]byte, bufSize)
	}
	return s
}

func (s *streamSource) refill() {
	if s.eof || s.err != nil {
		return
	}
	if s.buf == nil {
		s.buf = make([]byte, s.bufSize)
	}
	n, err := s.r.Read(s.buf)
	if n == 0 && err == nil {
		// A read that reports neither progress nor an error indicator
		// is not representable by io.Reader's contract; surface it the
		// way the spec's CANT_READ/UNDEFINED_NEXT_CHAR distinction
		// expects (see §7).
		s.err = newError(ErrUndefinedNextChar, 0, 0, 0, "read returned no data and no error")
		return
	}
	if n > 0 {
		for i := 0; i < n; i++ {
			s.utfState = utf8Step(s.utfState, s.buf[i])
			if s.utfState == utf8Reject {
				s.err = newError(ErrInvalidUTF8, 0, 0, 0, "invalid UTF-8 byte in stream")
				return
			}
		}
	}
	s.fill = n
	s.pos = 0
	if err == io.EOF {
		s.eof = true
		if s.utfState != utf8Accept {
			// Stream ended mid-codepoint: reject, same rule as the
			// string source's eager whole-input validation. This covers
			// both a trailing zero-byte EOF read and a Read that returns
			// its final bytes and io.EOF together, which io.Reader's
			// contract explicitly permits.
			s.err = newError(ErrInvalidUTF8, 0, 0, 0, "input ends mid-codepoint")
		}
	} else if err != nil {
		s.err = newError(ErrCantRead, 0, 0, 0, "%v", err)
	}
}

func (s *streamSource) peek() (byte, bool, error) {
	if s.pos >= s.fill && !s.eof && s.err == nil {
		s.refill()
	}
	if s.err != nil {
		return 0, false, s.err
	}
	if s.pos < s.fill {
		return s.buf[s.pos], false, nil
	}
	return 0, true, nil
}

func (s *streamSource) advance() {
	s.pos++
}
