package oas2

import (
	"strings"

	"github.com/erraggy/oas2ir/ast"
)

// NodeType tags the concrete variant behind a wrapper.
type NodeType int

const (
	// NodeUnknown is the zero value and never produced by classification.
	NodeUnknown NodeType = iota

	NodeRef

	NodeStringSchema
	NodeNumberSchema
	NodeBooleanSchema
	NodeNullSchema
	NodeArraySchema
	NodeObjectSchema
	NodeUntypedSchema

	NodeBodyParameter
	NodeStringParameter
	NodeNumberParameter
	NodeBooleanParameter
	NodeArrayParameter
	NodeUntypedParameter

	NodeBasicSecurityScheme
	NodeAPIKeySecurityScheme
	NodeOAuth2SecurityScheme
)

var nodeTypeNames = map[NodeType]string{
	NodeRef:                  "Ref",
	NodeStringSchema:         "StringSchema",
	NodeNumberSchema:         "NumberSchema",
	NodeBooleanSchema:        "BooleanSchema",
	NodeNullSchema:           "NullSchema",
	NodeArraySchema:          "ArraySchema",
	NodeObjectSchema:         "ObjectSchema",
	NodeUntypedSchema:        "UntypedSchema",
	NodeBodyParameter:        "BodyParameter",
	NodeStringParameter:      "StringParameter",
	NodeNumberParameter:      "NumberParameter",
	NodeBooleanParameter:     "BooleanParameter",
	NodeArrayParameter:       "ArrayParameter",
	NodeUntypedParameter:     "UntypedParameter",
	NodeBasicSecurityScheme:  "BasicSecurityScheme",
	NodeAPIKeySecurityScheme: "ApiKeySecurityScheme",
	NodeOAuth2SecurityScheme: "OAuth2SecurityScheme",
}

// String returns the variant name, e.g. "ObjectSchema".
func (t NodeType) String() string {
	if name, ok := nodeTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// IsSchema reports whether t is one of the schema variants.
func (t NodeType) IsSchema() bool {
	return t >= NodeStringSchema && t <= NodeUntypedSchema
}

// IsParameter reports whether t is one of the parameter variants.
func (t NodeType) IsParameter() bool {
	return t >= NodeBodyParameter && t <= NodeUntypedParameter
}

// Element is a schema, a parameter or an unresolved reference.
// Implementations are *Ref, *Schema and *Parameter.
type Element interface {
	NodeType() NodeType
	Node() *ast.Node
}

// Literal is a scalar leaf together with the node it was read from.
type Literal[T any] struct {
	Value T
	Node  *ast.Node
}

// Range returns the span of the literal's node.
func (l *Literal[T]) Range() ast.Range {
	if l == nil || l.Node == nil {
		return ast.Range{}
	}
	return l.Node.Range
}

// base is embedded by every wrapper and provides field access on the
// wrapped object node. Accessors yield nil for absent or mistyped fields.
type base struct {
	node *ast.Node
}

// Node returns the wrapped generic node.
func (b base) Node() *ast.Node { return b.node }

// Range returns the span of the wrapped node.
func (b base) Range() ast.Range {
	if b.node == nil {
		return ast.Range{}
	}
	return b.node.Range
}

// Has reports whether the wrapped object has a member named key.
func (b base) Has(key string) bool { return b.node.Has(key) }

// Keys returns the wrapped object's member names in source order.
func (b base) Keys() []string { return b.node.Keys() }

// KeyRange returns the span of the member key, or the zero range.
func (b base) KeyRange(key string) ast.Range {
	if m := b.node.Member(key); m != nil {
		return m.Key.Range
	}
	return ast.Range{}
}

// PropRange returns the span from the member key to the end of its value.
func (b base) PropRange(key string) ast.Range {
	return b.node.Member(key).Range()
}

// Extensions returns the members whose key starts with "x-", in source order.
func (b base) Extensions() []*ast.Member {
	if !b.node.IsObject() {
		return nil
	}
	var out []*ast.Member
	for _, m := range b.node.Members {
		if strings.HasPrefix(m.Name(), "x-") {
			out = append(out, m)
		}
	}
	return out
}

func (b base) child(key string) *ast.Node { return b.node.Get(key) }

func (b base) object(key string) *ast.Node {
	if n := b.child(key); n.IsObject() {
		return n
	}
	return nil
}

func (b base) str(key string) *Literal[string] {
	return stringLiteral(b.child(key))
}

func (b base) num(key string) *Literal[float64] {
	n := b.child(key)
	if v, ok := n.AsNumber(); ok {
		return &Literal[float64]{Value: v, Node: n}
	}
	return nil
}

func (b base) boolean(key string) *Literal[bool] {
	n := b.child(key)
	if v, ok := n.AsBool(); ok {
		return &Literal[bool]{Value: v, Node: n}
	}
	return nil
}

// strs maps the literal items of an array member. Non-literal items are
// skipped; literal non-strings keep their source text.
func (b base) strs(key string) []Literal[string] {
	n := b.child(key)
	if !n.IsArray() {
		return nil
	}
	out := make([]Literal[string], 0, len(n.Items))
	for _, item := range n.Items {
		if !item.IsLiteral() || item.IsNull() {
			continue
		}
		out = append(out, Literal[string]{Value: item.Raw, Node: item})
	}
	return out
}

func stringLiteral(n *ast.Node) *Literal[string] {
	if v, ok := n.AsString(); ok {
		return &Literal[string]{Value: v, Node: n}
	}
	return nil
}
