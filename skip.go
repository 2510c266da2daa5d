package jsontok

// Skip discards an entire container just opened by the most recent
// Start-Object/Start-Array token, advancing past its matching
// End-Object/End-Array without materializing any of its children. It
// reports false (with the Iterator's sticky error set) if the previous
// token was not a container open, or if scanning the skipped subtree
// itself fails.
func (it *Iterator) Skip() bool {
	if it.err != nil {
		return false
	}
	if it.lastKind != KindStartObject && it.lastKind != KindStartArray {
		it.fail(ErrInvalidArgs, "Skip called without a preceding Start-Object/Start-Array")
		return false
	}
	startDepth := it.stack.depth()
	for {
		tok, ok := it.Next()
		if !ok {
			return false
		}
		if tok.Kind == KindEOF {
			it.fail(ErrUnmatchedTokens, "unexpected end of input while skipping a container")
			return false
		}
		if (tok.Kind == KindEndObject || tok.Kind == KindEndArray) && it.stack.depth() == startDepth {
			return true
		}
	}
}
