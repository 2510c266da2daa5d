package jsontok

import (
	"bytes"
	"fmt"
	"strconv"
	"testing"
)

// render serialises the token stream back to minimal JSON, the
// serialisation half of the round-trip law in spec.md §8.
func render(t *testing.T, it *Iterator) string {
	t.Helper()
	var buf bytes.Buffer
	needComma := map[int]bool{}
	depth := 0
	writeSep := func() {
		if needComma[depth] {
			buf.WriteByte(',')
		}
		needComma[depth] = true
	}
	for {
		tok, ok := it.Next()
		if !ok {
			t.Fatalf("unexpected error while rendering: %v", tok.Err)
		}
		switch tok.Kind {
		case KindEOF:
			return buf.String()
		case KindStartObject, KindStartArray:
			writeSep()
			if tok.HasKey {
				buf.WriteString(strconv.Quote(tok.Key.String()))
				buf.WriteByte(':')
			}
			if tok.Kind == KindStartObject {
				buf.WriteByte('{')
			} else {
				buf.WriteByte('[')
			}
			depth++
			needComma[depth] = false
		case KindEndObject, KindEndArray:
			depth--
			if tok.Kind == KindEndObject {
				buf.WriteByte('}')
			} else {
				buf.WriteByte(']')
			}
		default:
			writeSep()
			if tok.HasKey {
				buf.WriteString(strconv.Quote(tok.Key.String()))
				buf.WriteByte(':')
			}
			switch tok.Kind {
			case KindString:
				buf.WriteString(strconv.Quote(tok.Str.String()))
			case KindInteger:
				buf.WriteString(strconv.FormatInt(tok.Int, 10))
			case KindFloat:
				buf.WriteString(strconv.FormatFloat(tok.Float, 'g', -1, 64))
			case KindBool:
				if tok.Bool {
					buf.WriteString("true")
				} else {
					buf.WriteString("false")
				}
			case KindNull:
				buf.WriteString("null")
			}
		}
	}
}

func tokenSequence(t *testing.T, input string) []tok {
	t.Helper()
	got, err := collect(t, input, WithStrict())
	if err != nil {
		t.Fatalf("unexpected error tokenizing %q: %v", input, err)
	}
	return got
}

func TestRoundTripLaw(t *testing.T) {
	for _, input := range []string{
		`{"a":5,"b":10}`,
		`[1,2,3]`,
		`[1,"hey",null,{"one":[]},[]]`,
		`{"nested":{"a":[1,2,{"b":true}]}}`,
		`"hello world"`,
		`3.14`,
		`true`,
		`null`,
		`[]`,
		`{}`,
	} {
		t.Run(input, func(t *testing.T) {
			first := tokenSequence(t, input)

			it, err := Open([]byte(input), WithStrict())
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			defer it.Close()
			serialized := render(t, it)

			second := tokenSequence(t, serialized)

			if len(first) != len(second) {
				t.Fatalf("token count changed across round trip: %d vs %d\nfirst=%+v\nsecond=%+v", len(first), len(second), first, second)
			}
			for i := range first {
				if fmt.Sprintf("%+v", first[i]) != fmt.Sprintf("%+v", second[i]) {
					t.Errorf("token[%d] differs: %+v vs %+v", i, first[i], second[i])
				}
			}
		})
	}
}
