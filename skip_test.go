package jsontok

import "testing"

func TestSkipContainer(t *testing.T) {
	it, err := Open([]byte(`{"keep":1,"drop":{"a":[1,2,{"b":3}],"c":"x"},"after":true}`))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	defer it.Close()

	tok, ok := it.Next() // StartObject
	if !ok || tok.Kind != KindStartObject {
		t.Fatalf("expected StartObject got %+v", tok)
	}
	tok, ok = it.Next() // "keep": 1
	if !ok || tok.Kind != KindInteger || tok.Key.String() != "keep" {
		t.Fatalf("expected keep=1 got %+v", tok)
	}
	tok, ok = it.Next() // "drop": {
	if !ok || tok.Kind != KindStartObject || tok.Key.String() != "drop" {
		t.Fatalf("expected StartObject keyed drop got %+v", tok)
	}
	if !it.Skip() {
		t.Fatalf("unexpected Skip failure: %v", it.Err())
	}
	tok, ok = it.Next() // "after": true
	if !ok || tok.Kind != KindBool || tok.Key.String() != "after" || !tok.Bool {
		t.Fatalf("expected after=true got %+v", tok)
	}
	tok, ok = it.Next() // EndObject
	if !ok || tok.Kind != KindEndObject {
		t.Fatalf("expected EndObject got %+v", tok)
	}
	tok, ok = it.Next() // EOF
	if !ok || tok.Kind != KindEOF {
		t.Fatalf("expected EOF got %+v", tok)
	}
}

func TestSkipTopLevelArray(t *testing.T) {
	it, err := Open([]byte(`[[1,2],[3,[4,5]]]`))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	defer it.Close()

	tok, ok := it.Next() // outer StartArray
	if !ok || tok.Kind != KindStartArray {
		t.Fatalf("expected StartArray got %+v", tok)
	}
	tok, ok = it.Next() // inner StartArray [1,2]
	if !ok || tok.Kind != KindStartArray {
		t.Fatalf("expected inner StartArray got %+v", tok)
	}
	if !it.Skip() {
		t.Fatalf("unexpected Skip failure: %v", it.Err())
	}
	tok, ok = it.Next() // second inner StartArray [3,[4,5]]
	if !ok || tok.Kind != KindStartArray {
		t.Fatalf("expected second inner StartArray got %+v", tok)
	}
	if !it.Skip() {
		t.Fatalf("unexpected Skip failure: %v", it.Err())
	}
	tok, ok = it.Next() // outer EndArray
	if !ok || tok.Kind != KindEndArray {
		t.Fatalf("expected outer EndArray got %+v", tok)
	}
	tok, ok = it.Next() // EOF
	if !ok || tok.Kind != KindEOF {
		t.Fatalf("expected EOF got %+v", tok)
	}
}

func TestSkipWithoutPrecedingOpenFails(t *testing.T) {
	it, err := Open([]byte(`[1,2]`))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	defer it.Close()
	it.Next() // StartArray
	it.Next() // Integer 1
	if it.Skip() {
		t.Fatalf("expected Skip to fail when the previous token was not a container open")
	}
}
