// Package oas2 provides a typed, read-only view of an OpenAPI 2.0 document
// over the generic tree from package ast.
//
// Wrappers are cheap views: they hold the node they wrap and read fields on
// demand. An absent or mistyped field reads as nil rather than an error; the
// callers that need a field decide whether its absence is fatal.
//
// Schema-like and parameter nodes are classified exactly once, by
// [ClassifySchema], [ClassifyParameter] and [ClassifyParamOrSchema], into an
// [Element] carrying a [NodeType] tag. A [*Ref] must be resolved with
// [ResolveSchema], [ResolveParam] or [ResolveParamOrSchema] before its
// fields are read.
package oas2
