package jsontok

// Option configures an Iterator at construction time, the same
// functional-options shape bufio.NewReaderSize's "size" parameter and
// gibsn/gojsonlex's SetBufSize knob both expose for the one tunable a
// byte-buffered scanner genuinely needs to let callers adjust.
type Option func(*config)

type config struct {
	strict         bool
	bufSize        int
	matchStackCap  int
	eagerStreamBuf bool
}

func defaultConfig() config {
	return config{
		strict:        false,
		bufSize:       defaultBufSize,
		matchStackCap: 32,
	}
}

// WithStrict disallows trailing commas, requires quoted object keys, and
// rejects the \UXXXXXXXX escape, so escaped non-ASCII characters must use
// \uXXXX (raw UTF-8 in strings is accepted in both modes). The default is
// lenient mode (see WithLenient).
func WithStrict() Option {
	return func(c *config) { c.strict = true }
}

// WithLenient is the default: trailing commas, unquoted identifier keys,
// and a leading '+' on numbers are all accepted (digit-group underscores
// are accepted regardless of mode). Passing it explicitly documents
// intent at the call site.
func WithLenient() Option {
	return func(c *config) { c.strict = false }
}

// WithBufferSize sets the stream source's read-buffer size. It has no
// effect on Open (string sources read the whole input directly).
func WithBufferSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.bufSize = n
		}
	}
}

// WithMatchStackCapacity sets the match stack's initial capacity.
func WithMatchStackCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.matchStackCap = n
		}
	}
}

// WithEagerStreamBuffer allocates the stream source's read buffer in
// OpenReader, rather than deferring the allocation until the first
// refill. It mirrors the original's compile-time WHY_JSON_ALLOCATE_BUF
// switch between an inline and a heap-allocated buffer; the default
// (off) suits short-lived iterators that may error out or hit EOF
// before reading a single byte (e.g. a nil-checked io.Reader wrapper)
// and so never need the buffer at all.
func WithEagerStreamBuffer() Option {
	return func(c *config) { c.eagerStreamBuf = true }
}
