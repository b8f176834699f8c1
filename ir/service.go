package ir

import (
	"github.com/erraggy/oas2ir/ast"
	"github.com/erraggy/oas2ir/internal/issues"
	"github.com/erraggy/oas2ir/internal/severity"
)

// Version is the IR contract version stamped on every Service.
const Version = "1"

// Literal is a value paired with the encoded range it was read from.
type Literal[T any] struct {
	Value T      `json:"value"`
	Loc   string `json:"loc,omitempty"`
}

// Lit builds a literal located at r. A zero range yields no Loc.
func Lit[T any](v T, r ast.Range) Literal[T] {
	return Literal[T]{Value: v, Loc: r.Encode()}
}

// LitPtr is Lit returning a pointer, for optional fields.
func LitPtr[T any](v T, r ast.Range) *Literal[T] {
	l := Lit(v, r)
	return &l
}

// Service is the root of the IR.
type Service struct {
	Basketry     string          `json:"basketry"`
	SourcePath   string          `json:"sourcePath"`
	Title        Literal[string] `json:"title"`
	MajorVersion Literal[int]    `json:"majorVersion"`
	Interfaces   []*Interface    `json:"interfaces"`
	Types        []*Type         `json:"types"`
	Enums        []*Enum         `json:"enums"`
	Unions       []*Union        `json:"unions"`
	Loc          string          `json:"loc,omitempty"`
	Meta         Meta            `json:"meta,omitempty"`
}

// Meta holds the vendor extensions of a node, keyed without the "x-" prefix.
type Meta []MetaValue

// MetaValue is a single vendor extension.
type MetaValue struct {
	Key   Literal[string] `json:"key"`
	Value Literal[any]    `json:"value"`
}

// Get returns the extension with the given key (without "x-"), or nil.
func (m Meta) Get(key string) *MetaValue {
	for i := range m {
		if m[i].Key.Value == key {
			return &m[i]
		}
	}
	return nil
}

// Interface groups the methods that share a tag or leading path segment.
type Interface struct {
	Name      string     `json:"name"`
	Methods   []*Method  `json:"methods"`
	Protocols *Protocols `json:"protocols"`
}

// Protocols holds the transport bindings of an interface.
type Protocols struct {
	HTTP []*HTTPPath `json:"http"`
}

// HTTPPath is the HTTP binding of one path template.
type HTTPPath struct {
	Path    Literal[string] `json:"path"`
	Methods []*HTTPMethod   `json:"methods"`
	Loc     string          `json:"loc,omitempty"`
}

// HTTPMethod binds one method to an HTTP verb on its path.
type HTTPMethod struct {
	Name        Literal[string]  `json:"name"`
	Verb        Literal[string]  `json:"verb"`
	Parameters  []*HTTPParameter `json:"parameters"`
	SuccessCode Literal[int]     `json:"successCode"`
	Loc         string           `json:"loc,omitempty"`
}

// HTTPParameter records where a parameter travels. Array carries the
// collection format of header, path and query array parameters.
type HTTPParameter struct {
	Name  Literal[string]  `json:"name"`
	In    Literal[string]  `json:"in"`
	Array *Literal[string] `json:"array,omitempty"`
	Loc   string           `json:"loc,omitempty"`
}

// Method is a single operation.
type Method struct {
	Name        Literal[string]  `json:"name"`
	Security    []SecurityOption `json:"security"`
	Parameters  []*Parameter     `json:"parameters"`
	Description Description      `json:"description,omitempty"`
	ReturnType  *ReturnType      `json:"returnType,omitempty"`
	Loc         string           `json:"loc,omitempty"`
	Meta        Meta             `json:"meta,omitempty"`
}

// TypedValue describes the type of a parameter, property or return value.
type TypedValue struct {
	TypeName    Literal[string]  `json:"typeName"`
	IsPrimitive bool             `json:"isPrimitive"`
	IsArray     bool             `json:"isArray"`
	Rules       []ValidationRule `json:"rules"`
}

// Parameter is a method parameter.
type Parameter struct {
	Name        Literal[string]  `json:"name"`
	Description *Literal[string] `json:"description,omitempty"`
	TypedValue
	Loc  string `json:"loc,omitempty"`
	Meta Meta   `json:"meta,omitempty"`
}

// Property is a field of a Type.
type Property struct {
	Name        Literal[string]  `json:"name"`
	Description *Literal[string] `json:"description,omitempty"`
	TypedValue
	Loc  string `json:"loc,omitempty"`
	Meta Meta   `json:"meta,omitempty"`
}

// ReturnType is the type of a method's success response.
type ReturnType struct {
	TypedValue
	Loc string `json:"loc,omitempty"`
}

// Type is a named object type, either a definition or a synthesized
// anonymous type.
type Type struct {
	Name        Literal[string]        `json:"name"`
	Description *Literal[string]       `json:"description,omitempty"`
	Properties  []*Property            `json:"properties"`
	Rules       []ObjectValidationRule `json:"rules"`
	Loc         string                 `json:"loc,omitempty"`
	Meta        Meta                   `json:"meta,omitempty"`
}

// Enum is a named set of string values in source order.
type Enum struct {
	Name   Literal[string]   `json:"name"`
	Values []Literal[string] `json:"values"`
	Loc    string            `json:"loc,omitempty"`
	Meta   Meta              `json:"meta,omitempty"`
}

// Union is a named choice between types. OpenAPI 2.0 has no construct that
// produces one, so Service.Unions is always empty.
type Union struct {
	Name    Literal[string]   `json:"name"`
	Members []Literal[string] `json:"members"`
	Loc     string            `json:"loc,omitempty"`
}

// Violation is a non-fatal problem reported alongside a Service.
type Violation = issues.Issue

// Severity is the severity of a Violation.
type Severity = severity.Severity

// Violation severities.
const (
	SeverityError   = severity.SeverityError
	SeverityWarning = severity.SeverityWarning
	SeverityInfo    = severity.SeverityInfo
)
