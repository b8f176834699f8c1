package oas2

import (
	"strings"

	"github.com/erraggy/oas2ir/ast"
	"github.com/erraggy/oas2ir/internal/httputil"
	"github.com/erraggy/oas2ir/oaserrors"
)

// IsVerb reports whether key names an operation on a path item.
func IsVerb(key string) bool { return httputil.IsMethod(key) }

// Document is the root of an OpenAPI 2.0 document.
type Document struct {
	base
}

// NewDocument wraps the root node of a parsed document.
func NewDocument(root *ast.Node) *Document {
	return &Document{base{root}}
}

func (d *Document) Swagger() *Literal[string]  { return d.str("swagger") }
func (d *Document) Host() *Literal[string]     { return d.str("host") }
func (d *Document) BasePath() *Literal[string] { return d.str("basePath") }

// Info returns the info object, or nil.
func (d *Document) Info() *Info {
	if n := d.object("info"); n != nil {
		return &Info{base{n}}
	}
	return nil
}

// Paths returns the paths object, or nil.
func (d *Document) Paths() *Paths {
	if n := d.object("paths"); n != nil {
		return &Paths{base{n}}
	}
	return nil
}

// Definitions returns the definitions map, or nil.
func (d *Document) Definitions() *SchemaMap {
	if n := d.object("definitions"); n != nil {
		return &SchemaMap{base{n}}
	}
	return nil
}

// SecurityDefinitions returns the security scheme table, or nil.
func (d *Document) SecurityDefinitions() *SecurityDefinitions {
	if n := d.object("securityDefinitions"); n != nil {
		return &SecurityDefinitions{base{n}}
	}
	return nil
}

// Security returns the default security requirements and whether the
// member is present.
func (d *Document) Security() ([]*SecurityRequirement, bool) {
	return requirements(d.child("security"))
}

// Info holds document metadata.
type Info struct {
	base
}

func (i *Info) Title() *Literal[string]       { return i.str("title") }
func (i *Info) Description() *Literal[string] { return i.str("description") }

// Version returns info.version. Numeric YAML versions such as 1.0 are
// returned with their source text.
func (i *Info) Version() *Literal[string] {
	n := i.child("version")
	if !n.IsLiteral() || n.IsNull() {
		return nil
	}
	return &Literal[string]{Value: n.Raw, Node: n}
}

// Paths maps path templates to path items.
type Paths struct {
	base
}

// Item returns the raw path item node for path.
func (p *Paths) Item(path string) *ast.Node { return p.child(path) }

// PathItem holds the operations and shared parameters of one path.
type PathItem struct {
	base
}

// NewPathItem wraps a resolved path item node.
func NewPathItem(n *ast.Node) *PathItem { return &PathItem{base{n}} }

// Operation returns the operation for verb, or nil.
func (p *PathItem) Operation(verb string) *Operation {
	if n := p.object(verb); n != nil {
		return &Operation{base{n}}
	}
	return nil
}

// Verbs returns the member keys that hold operations, in source order. The
// shared "parameters" key and "x-" extensions are skipped.
func (p *PathItem) Verbs() []string {
	var out []string
	for _, key := range p.Keys() {
		if key == "parameters" || key == "$ref" || strings.HasPrefix(key, "x-") {
			continue
		}
		if p.object(key) == nil {
			continue
		}
		out = append(out, key)
	}
	return out
}

// Parameters returns the shared parameters of the path item.
func (p *PathItem) Parameters() ([]Element, error) {
	return parameterList(p.child("parameters"))
}

// Operation is a single API operation.
type Operation struct {
	base
}

func (o *Operation) Tags() []Literal[string]       { return o.strs("tags") }
func (o *Operation) Summary() *Literal[string]     { return o.str("summary") }
func (o *Operation) Description() *Literal[string] { return o.str("description") }
func (o *Operation) OperationID() *Literal[string] { return o.str("operationId") }
func (o *Operation) Deprecated() *Literal[bool]    { return o.boolean("deprecated") }

// Parameters returns the operation's own parameters.
func (o *Operation) Parameters() ([]Element, error) {
	return parameterList(o.child("parameters"))
}

// Responses returns the responses object, or nil.
func (o *Operation) Responses() *Responses {
	if n := o.object("responses"); n != nil {
		return &Responses{base{n}}
	}
	return nil
}

// Security returns the operation's security requirements and whether the
// member is present. A present but empty list disables the default.
func (o *Operation) Security() ([]*SecurityRequirement, bool) {
	return requirements(o.child("security"))
}

// parameterList classifies every item of a parameters array. An item that
// cannot be classified is a ShapeError.
func parameterList(n *ast.Node) ([]Element, error) {
	if n == nil {
		return nil, nil
	}
	if !n.IsArray() {
		return nil, shapeError(n, "parameter list", "parameters is not an array")
	}
	out := make([]Element, 0, len(n.Items))
	for _, item := range n.Items {
		el := ClassifyParameter(item)
		if el == nil {
			return nil, shapeError(item, "parameter", "unknown parameter definition")
		}
		out = append(out, el)
	}
	return out, nil
}

// Responses maps status codes (and "default") to responses.
type Responses struct {
	base
}

// Get returns the raw response node for code, which may be a $ref.
func (r *Responses) Get(code string) *ast.Node { return r.child(code) }

// Response describes a single response.
type Response struct {
	base
}

// NewResponse wraps a resolved response node.
func NewResponse(n *ast.Node) *Response { return &Response{base{n}} }

func (r *Response) Description() *Literal[string] { return r.str("description") }

// Schema returns the classified response schema, or nil when absent. A
// schema member that is not an object is a ShapeError.
func (r *Response) Schema() (Element, error) {
	n := r.child("schema")
	if n == nil {
		return nil, nil
	}
	el := ClassifySchema(n)
	if el == nil {
		return nil, shapeError(n, "schema", "unknown schema definition")
	}
	return el, nil
}

// SchemaMap is an object whose members are schemas: the definitions section
// and the properties of an object schema.
type SchemaMap struct {
	base
}

// Get returns the classified schema for key, or nil when absent or not an
// object.
func (m *SchemaMap) Get(key string) Element {
	return ClassifySchema(m.child(key))
}

func shapeError(n *ast.Node, expected, msg string) error {
	e := &oaserrors.ShapeError{Expected: expected, Message: msg}
	if n != nil {
		e.Line = n.Range.Start.Line
		e.Column = n.Range.Start.Column
	}
	return e
}
