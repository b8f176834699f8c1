package oas2

import "github.com/erraggy/oas2ir/ast"

// Ref is an object of the form {"$ref": "..."} standing in for the value it
// points to. It must be resolved before schema or parameter fields are read.
type Ref struct {
	base
}

// NodeType implements Element.
func (*Ref) NodeType() NodeType { return NodeRef }

// Pointer returns the $ref string literal.
func (r *Ref) Pointer() *Literal[string] { return r.str("$ref") }

// Value returns the $ref string, or "" when it is not a string.
func (r *Ref) Value() string {
	if p := r.Pointer(); p != nil {
		return p.Value
	}
	return ""
}

// IsRef reports whether n is an object with a string "$ref" member.
func IsRef(n *ast.Node) bool {
	_, ok := n.Get("$ref").AsString()
	return ok && n.IsObject()
}

// fields are the constraint and typing fields shared by schemas, non-body
// parameters and items objects.
type fields struct {
	base
}

func (f fields) Type() *Literal[string]        { return f.str("type") }
func (f fields) Format() *Literal[string]      { return f.str("format") }
func (f fields) Description() *Literal[string] { return f.str("description") }
func (f fields) Pattern() *Literal[string]     { return f.str("pattern") }
func (f fields) Enum() []Literal[string]       { return f.strs("enum") }
func (f fields) HasEnum() bool                 { return f.child("enum").IsArray() }
func (f fields) Default() *ast.Node            { return f.child("default") }

func (f fields) MinLength() *Literal[float64]  { return f.num("minLength") }
func (f fields) MaxLength() *Literal[float64]  { return f.num("maxLength") }
func (f fields) MultipleOf() *Literal[float64] { return f.num("multipleOf") }
func (f fields) Minimum() *Literal[float64]    { return f.num("minimum") }
func (f fields) Maximum() *Literal[float64]    { return f.num("maximum") }
func (f fields) MinItems() *Literal[float64]   { return f.num("minItems") }
func (f fields) MaxItems() *Literal[float64]   { return f.num("maxItems") }

func (f fields) ExclusiveMinimum() *Literal[bool] { return f.boolean("exclusiveMinimum") }
func (f fields) ExclusiveMaximum() *Literal[bool] { return f.boolean("exclusiveMaximum") }
func (f fields) UniqueItems() *Literal[bool]      { return f.boolean("uniqueItems") }

// Items returns the classified items schema, or nil when absent or not an
// object.
func (f fields) Items() Element {
	return ClassifySchema(f.child("items"))
}

// Schema is a classified JSON schema object.
type Schema struct {
	fields
	kind NodeType
}

// NodeType implements Element.
func (s *Schema) NodeType() NodeType { return s.kind }

// Title returns the schema title.
func (s *Schema) Title() *Literal[string] { return s.str("title") }

// Properties returns the properties map, or nil.
func (s *Schema) Properties() *SchemaMap {
	if n := s.object("properties"); n != nil {
		return &SchemaMap{base{n}}
	}
	return nil
}

// Required returns the names listed in "required".
func (s *Schema) Required() []Literal[string] { return s.strs("required") }

// AllOf returns the classified allOf members. Members that are not objects
// are skipped.
func (s *Schema) AllOf() []Element {
	n := s.child("allOf")
	if !n.IsArray() {
		return nil
	}
	out := make([]Element, 0, len(n.Items))
	for _, item := range n.Items {
		if el := ClassifySchema(item); el != nil {
			out = append(out, el)
		}
	}
	return out
}

// HasAllOf reports whether the schema declares an allOf array.
func (s *Schema) HasAllOf() bool { return s.child("allOf").IsArray() }

// AdditionalProperties returns the raw additionalProperties value, which may
// be a boolean literal or a schema object.
func (s *Schema) AdditionalProperties() *ast.Node { return s.child("additionalProperties") }

func (s *Schema) MinProperties() *Literal[float64] { return s.num("minProperties") }
func (s *Schema) MaxProperties() *Literal[float64] { return s.num("maxProperties") }

// Parameter is a classified parameter object.
type Parameter struct {
	fields
	kind NodeType
}

// NodeType implements Element.
func (p *Parameter) NodeType() NodeType { return p.kind }

func (p *Parameter) Name() *Literal[string]             { return p.str("name") }
func (p *Parameter) In() *Literal[string]               { return p.str("in") }
func (p *Parameter) Required() *Literal[bool]           { return p.boolean("required") }
func (p *Parameter) CollectionFormat() *Literal[string] { return p.str("collectionFormat") }
func (p *Parameter) AllowEmptyValue() *Literal[bool]    { return p.boolean("allowEmptyValue") }

// IsRequired reports whether "required" is literally true.
func (p *Parameter) IsRequired() bool {
	r := p.Required()
	return r != nil && r.Value
}

// Schema returns the classified schema of a body parameter, or nil.
func (p *Parameter) Schema() Element {
	return ClassifySchema(p.child("schema"))
}

// ClassifySchema is the single dispatch point for schema-like nodes. It
// returns a *Ref for {"$ref": ...} objects, otherwise a *Schema tagged from
// "type". A schema without "type" is an object when it declares properties
// or allOf, an array when it declares items, and untyped otherwise. Unknown
// type values are untyped. It returns nil when n is not an object.
func ClassifySchema(n *ast.Node) Element {
	if !n.IsObject() {
		return nil
	}
	if IsRef(n) {
		return &Ref{base{n}}
	}
	return &Schema{fields: fields{base{n}}, kind: schemaKind(n)}
}

func schemaKind(n *ast.Node) NodeType {
	t, ok := n.Get("type").AsString()
	if !ok {
		switch {
		case n.Has("properties"), n.Has("allOf"):
			return NodeObjectSchema
		case n.Has("items"):
			return NodeArraySchema
		default:
			return NodeUntypedSchema
		}
	}
	switch t {
	case "string":
		return NodeStringSchema
	case "integer", "number":
		return NodeNumberSchema
	case "boolean":
		return NodeBooleanSchema
	case "null":
		return NodeNullSchema
	case "array":
		return NodeArraySchema
	case "object":
		return NodeObjectSchema
	default:
		return NodeUntypedSchema
	}
}

// ClassifyParameter is the single dispatch point for parameter nodes. It
// returns a *Ref for {"$ref": ...} objects and a *Parameter tagged from "in"
// and "type" otherwise. A non-body parameter with an unknown "type" (such as
// "file") is untyped. It returns nil when the node is not an object, when
// "in" is missing or not a known location, or when a non-body parameter has
// no "type".
func ClassifyParameter(n *ast.Node) Element {
	if !n.IsObject() {
		return nil
	}
	if IsRef(n) {
		return &Ref{base{n}}
	}
	in, ok := n.Get("in").AsString()
	if !ok {
		return nil
	}
	switch in {
	case "body":
		return &Parameter{fields: fields{base{n}}, kind: NodeBodyParameter}
	case "query", "header", "path", "formData":
	default:
		return nil
	}
	t, ok := n.Get("type").AsString()
	if !ok {
		return nil
	}
	kind := NodeUntypedParameter
	switch t {
	case "string":
		kind = NodeStringParameter
	case "integer", "number":
		kind = NodeNumberParameter
	case "boolean":
		kind = NodeBooleanParameter
	case "array":
		kind = NodeArrayParameter
	}
	return &Parameter{fields: fields{base{n}}, kind: kind}
}

// ClassifyParamOrSchema classifies n as a parameter when it has a literal
// "in" member and as a schema otherwise.
func ClassifyParamOrSchema(n *ast.Node) Element {
	if !n.IsObject() {
		return nil
	}
	if IsRef(n) {
		return &Ref{base{n}}
	}
	if n.Get("in").IsLiteral() {
		return ClassifyParameter(n)
	}
	return ClassifySchema(n)
}

// Constraints exposes the shared typing and constraint fields of a schema or
// non-body parameter.
type Constraints interface {
	Element
	Type() *Literal[string]
	Format() *Literal[string]
	Description() *Literal[string]
	Enum() []Literal[string]
	HasEnum() bool
	Pattern() *Literal[string]
	MinLength() *Literal[float64]
	MaxLength() *Literal[float64]
	MultipleOf() *Literal[float64]
	Minimum() *Literal[float64]
	Maximum() *Literal[float64]
	ExclusiveMinimum() *Literal[bool]
	ExclusiveMaximum() *Literal[bool]
	MinItems() *Literal[float64]
	MaxItems() *Literal[float64]
	UniqueItems() *Literal[bool]
	Items() Element
	PropRange(key string) ast.Range
	Range() ast.Range
	Extensions() []*ast.Member
}

var (
	_ Constraints = (*Schema)(nil)
	_ Constraints = (*Parameter)(nil)
	_ Element     = (*Ref)(nil)
)

// IsString reports whether el is a string schema or string parameter.
func IsString(el Element) bool {
	return el != nil && (el.NodeType() == NodeStringSchema || el.NodeType() == NodeStringParameter)
}

// IsNumber reports whether el is a number schema or number parameter.
func IsNumber(el Element) bool {
	return el != nil && (el.NodeType() == NodeNumberSchema || el.NodeType() == NodeNumberParameter)
}

// IsArray reports whether el is an array schema or array parameter.
func IsArray(el Element) bool {
	return el != nil && (el.NodeType() == NodeArraySchema || el.NodeType() == NodeArrayParameter)
}

// IsObject reports whether el is an object schema.
func IsObject(el Element) bool {
	return el != nil && el.NodeType() == NodeObjectSchema
}
