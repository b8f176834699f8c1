package parser

import (
	"github.com/erraggy/oas2ir/ast"
	"github.com/erraggy/oas2ir/internal/pathutil"
	"github.com/erraggy/oas2ir/ir"
	"github.com/erraggy/oas2ir/oas2"
	"github.com/erraggy/oas2ir/oaserrors"
)

// definitions converts the object schemas of the definitions section, in
// source order. Other definitions only matter when referenced.
func (c *runContext) definitions() ([]*ir.Type, error) {
	out := make([]*ir.Type, 0)
	defs := c.doc.Definitions()
	if defs == nil {
		return out, nil
	}
	for _, name := range defs.Keys() {
		schema, ok := defs.Get(name).(*oas2.Schema)
		if !ok || !oas2.IsObject(schema) {
			continue
		}
		props, err := c.properties(schema, name)
		if err != nil {
			return nil, err
		}
		out = append(out, &ir.Type{
			Name:        ir.Lit(name, defs.KeyRange(name)),
			Description: optLit(schema.Description()),
			Properties:  props,
			Rules:       objectRules(schema),
			Loc:         defs.PropRange(name).Encode(),
			Meta:        meta(schema),
		})
	}
	return out, nil
}

// properties flattens the properties of an object schema. allOf members
// come first, each with its own required list plus the inherited one, then
// the schema's own properties.
func (c *runContext) properties(s *oas2.Schema, parentName string) ([]*ir.Property, error) {
	return c.collectProperties(s, nil, parentName, make(map[*ast.Node]bool))
}

func (c *runContext) collectProperties(s *oas2.Schema, inherited []oas2.Literal[string], parentName string, visiting map[*ast.Node]bool) ([]*ir.Property, error) {
	if visiting[s.Node()] {
		return nil, &oaserrors.ReferenceError{
			RefType:    pathutil.RefTypeLocal,
			IsCircular: true,
			Line:       s.Node().Range.Start.Line,
			Column:     s.Node().Range.Start.Column,
			Message:    "allOf includes itself",
		}
	}
	visiting[s.Node()] = true
	defer delete(visiting, s.Node())

	required := append(append([]oas2.Literal[string]{}, s.Required()...), inherited...)
	out := make([]*ir.Property, 0)

	for _, member := range s.AllOf() {
		resolved, err := oas2.ResolveSchema(c.root, member)
		if err != nil {
			return nil, err
		}
		memberSchema, ok := resolved.(*oas2.Schema)
		if !ok {
			return nil, shapeError(member.Node(), "schema", "allOf member is not a schema")
		}
		props, err := c.collectProperties(memberSchema, required, parentName, visiting)
		if err != nil {
			return nil, err
		}
		out = append(out, props...)
	}

	props := s.Properties()
	if props == nil {
		return out, nil
	}
	requiredSet := make(map[string]bool, len(required))
	for _, r := range required {
		requiredSet[r.Value] = true
	}

	for _, name := range props.Keys() {
		prop := props.Get(name)
		if prop == nil {
			continue
		}
		resolved, err := oas2.ResolveSchema(c.root, prop)
		if err != nil {
			return nil, err
		}
		def := resolved.(oas2.Constraints)

		x, err := c.inferType(prop, name, parentName)
		if err != nil {
			return nil, err
		}
		rules, err := c.rules(def, requiredSet[name])
		if err != nil {
			return nil, err
		}

		p := &ir.Property{
			Name:        ir.Lit(name, props.KeyRange(name)),
			Description: optLit(def.Description()),
			TypedValue:  x.TypedValue,
			Loc:         def.Range().Encode(),
			Meta:        meta(def),
		}
		p.Rules = rules
		out = append(out, p)
	}
	return out, nil
}
