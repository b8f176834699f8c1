// Package ast provides the generic document tree consumed by the OpenAPI 2.0
// typed layer.
//
// A document is a tree of [Node] values of three kinds: objects (ordered
// key/value members), arrays (ordered items) and literals (scalars). Every
// node carries a [Range] locating it in the original source text, so values
// extracted from the tree can always be traced back to where they were
// written.
//
// # Parsing
//
// [Parse] accepts JSON or YAML input. The tokenizer is go.yaml.in/yaml/v4,
// which records the start line and column of every node; end positions are
// recovered from the source text so that a range can be sliced back out of
// the input:
//
//	root, err := ast.Parse(data)
//	if err != nil {
//		return err
//	}
//	title := root.Get("info").Get("title")
//	fmt.Println(title.Range.Slice(data)) // "\"Pet Store\""
//
// Member order is preserved exactly as written. Lookups by key return the
// first member with that key.
//
// # Ranges
//
// Ranges are encoded into the compact "loc" strings used by the IR with
// [Range.Encode] and decoded with [DecodeRange].
package ast
