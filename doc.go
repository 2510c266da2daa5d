// Package jsontok is a pull-style streaming JSON tokenizer.
//
// Unlike github.com/mcvoid/json, which parses a whole document into an
// in-memory Value tree, jsontok never materializes the document: callers
// repeatedly call Next to ask for the next structural event, and decide
// for themselves whether to descend into a container or Skip past it.
//
// A minimal walk looks like:
//
//	it, err := jsontok.Open([]byte(`{"a":[1,2,3]}`))
//	if err != nil {
//		// invalid UTF-8 or nil source
//	}
//	defer it.Close()
//	for {
//		tok, ok := it.Next()
//		if !ok {
//			break
//		}
//		if tok.Kind == jsontok.KindEOF {
//			break
//		}
//	}
//	if it.Err() != nil {
//		// handle the sticky parse error
//	}
package jsontok
