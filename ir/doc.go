// Package ir defines the language-agnostic intermediate representation
// produced from an OpenAPI 2.0 document.
//
// A [Service] is the root. It groups operations into [Interface] values,
// lists every named [Type] and [Enum], and records where each value came
// from: leaf values are [Literal] pairs whose Loc is an encoded source range
// (see ast.Range.Encode). Values the converter synthesizes, such as inferred
// names or default status codes, carry no Loc.
//
// The JSON encoding of these types is the contract consumed by generators.
// It is stamped with [Version] in the "basketry" field.
package ir
