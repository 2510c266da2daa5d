package jsontok

// Kind tags the structural or scalar meaning of a Token.
type Kind int

// Token kinds, one tag per possible Next emission.
const (
	KindStartObject Kind = iota
	KindStartArray
	KindEndObject
	KindEndArray
	KindString
	KindInteger
	KindFloat
	KindBool
	KindNull
	KindEOF
	KindError
)

var kindNames = [...]string{
	KindStartObject: "start-object",
	KindStartArray:  "start-array",
	KindEndObject:   "end-object",
	KindEndArray:    "end-array",
	KindString:      "string",
	KindInteger:     "integer",
	KindFloat:       "float",
	KindBool:        "bool",
	KindNull:        "null",
	KindEOF:         "eof",
	KindError:       "error",
}

// String returns the kind's name, for diagnostics and tests.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// String is a JSON string value or object key whose bytes are either
// borrowed (aliasing the input slice given to Open) or owned by one of
// the Iterator's scratch buffers, which a later Next/Skip call may reuse.
// Use Bytes for a read confined to the current token; use Extract when
// the bytes must outlive it.
type String struct {
	data  []byte
	owned bool
	// takenFlag points at the Iterator's bookkeeping bit for whichever
	// scratch buffer (key or value) data was decoded into, so Extract can
	// tell the Iterator not to reuse that buffer's backing array on the
	// next decode. Nil for borrowed strings, which never alias a scratch
	// buffer in the first place.
	takenFlag *bool
}

// Bytes returns the string's UTF-8 bytes. The returned slice is only
// guaranteed valid until the next call to Next or Skip on the Iterator
// that produced it; copy it (or call Extract) to keep it longer.
func (s String) Bytes() []byte {
	return s.data
}

// Len returns the length in bytes.
func (s String) Len() int {
	return len(s.data)
}

// String satisfies fmt.Stringer for debugging and test failure output.
func (s String) String() string {
	return string(s.data)
}

// Extract transfers ownership of the string's bytes to the caller. If the
// bytes were borrowed from input the Iterator still owns, a copy is made;
// if they were already owned by the Iterator (a decoded escape buffer),
// the underlying array is handed off directly and the Iterator allocates
// a fresh scratch buffer for its next decode instead of reusing this one.
func (s *String) Extract() []byte {
	if !s.owned {
		out := make([]byte, len(s.data))
		copy(out, s.data)
		return out
	}
	if s.takenFlag != nil {
		*s.takenFlag = true
	}
	out := s.data
	s.data = nil
	s.takenFlag = nil
	return out
}

// Token is populated by one call to Iterator.Next.
type Token struct {
	Kind Kind

	// Key holds the object key iff this token sits directly inside an
	// object. It is the zero String for array elements, outermost
	// values, closing brackets, and End-Of-Input.
	Key String
	// HasKey reports whether Key is meaningful for this emission.
	HasKey bool

	// Str holds the decoded bytes for KindString tokens.
	Str String
	// Int holds the value for KindInteger tokens.
	Int int64
	// Float holds the value for KindFloat tokens.
	Float float64
	// Bool holds the value for KindBool tokens.
	Bool bool

	// First is true iff this is the first element inside its immediate
	// container. Closing tokens and End-Of-Input are always reported
	// with First = true, as a convenience for pretty-printers deciding
	// whether to emit a leading separator.
	First bool

	// Err holds the failure when Kind == KindError.
	Err *Error
}
