package jsontok

// containerKind distinguishes the two bracket families the match stack
// tracks.
type containerKind uint8

const (
	containerArray containerKind = iota
	containerObject
)

// maxRun is the largest run-length a single stack entry can absorb
// before a sibling entry of the same kind has to be pushed instead. The
// original's packed representation used the low 7 bits of a byte
// (0..127) for this counter; this module keeps the same ceiling so the
// "128th same-kind nesting level rolls over to a new entry" boundary
// behavior spec.md calls out stays observable.
const maxRun = 127

// matchEntry is one run of same-kind containers opened back to back
// without an intervening close of that kind, e.g. "[[[": a single
// matchEntry{kind: containerArray, run: 3}.
type matchEntry struct {
	kind containerKind
	run  uint8
}

// matchStack tracks balanced container nesting. It grows by doubling,
// the same amortized-growth rule the original's realloc-based stack
// used, reimplemented here as an ordinary Go slice rather than a
// manually doubled byte buffer with a sentinel end marker — in Go
// len/cap already make/append give us that for free.
type matchStack struct {
	entries []matchEntry
}

func newMatchStack(initialCapacity int) *matchStack {
	if initialCapacity <= 0 {
		initialCapacity = 32
	}
	return &matchStack{entries: make([]matchEntry, 0, initialCapacity)}
}

// depth is the number of currently open containers (every run counts
// its full length, not 1 per entry).
func (m *matchStack) depth() int {
	n := 0
	for _, e := range m.entries {
		n += int(e.run)
	}
	return n
}

// empty reports whether the parser is outside any container.
func (m *matchStack) empty() bool {
	return len(m.entries) == 0
}

// top returns the innermost open container's kind. It must not be called
// on an empty stack.
func (m *matchStack) top() containerKind {
	return m.entries[len(m.entries)-1].kind
}

// push opens one container of the given kind, either incrementing the
// top run (if it already matches and has headroom) or pushing a new
// entry.
func (m *matchStack) push(k containerKind) {
	if n := len(m.entries); n > 0 {
		top := &m.entries[n-1]
		if top.kind == k && top.run < maxRun {
			top.run++
			return
		}
	}
	m.entries = append(m.entries, matchEntry{kind: k, run: 1})
}

// pop closes one container. It reports ok=false if the stack is empty or
// the top entry's kind doesn't match k (UNMATCHED_TOKENS in both cases).
func (m *matchStack) pop(k containerKind) (ok bool) {
	n := len(m.entries)
	if n == 0 {
		return false
	}
	top := &m.entries[n-1]
	if top.kind != k {
		return false
	}
	top.run--
	if top.run == 0 {
		m.entries = m.entries[:n-1]
	}
	return true
}
