package parser

import (
	"github.com/erraggy/oas2ir/internal/naming"
	"github.com/erraggy/oas2ir/internal/pathutil"
	"github.com/erraggy/oas2ir/ir"
	"github.com/erraggy/oas2ir/oas2"
)

const untypedName = "untyped"

// typed is the result of type inference: the IR type reference and the
// encoded range of the schema it was inferred from.
type typed struct {
	ir.TypedValue
	loc string
}

// inferType computes the IR type of a schema, non-body parameter or
// reference. localName and parentName name anything it has to synthesize:
// inline objects become anonymous types and inline string enums become
// enums, both registered on the run context.
func (c *runContext) inferType(el oas2.Element, localName, parentName string) (typed, error) {
	if ref, ok := el.(*oas2.Ref); ok {
		return c.inferRef(ref, localName, parentName)
	}
	if el == nil {
		return typed{}, shapeError(nil, "schema", "missing schema")
	}
	def, ok := el.(oas2.Constraints)
	if !ok || el.NodeType() == oas2.NodeBodyParameter {
		return typed{}, shapeError(el.Node(), "schema or non-body parameter", "unexpected "+el.NodeType().String())
	}

	rules, err := c.rules(def, false)
	if err != nil {
		return typed{}, err
	}
	out := typed{loc: def.Range().Encode()}
	out.Rules = rules

	switch def.NodeType() {
	case oas2.NodeStringSchema, oas2.NodeStringParameter:
		if def.HasEnum() {
			name := naming.ToCamelCase(parentName + "_" + naming.Singular(localName))
			values := litValues(def.Enum())
			m := meta(def)
			c.validateEnumDescriptions(values, def)
			c.registerEnum(&ir.Enum{
				Name:   ir.Literal[string]{Value: name},
				Values: values,
				Loc:    def.PropRange("enum").Encode(),
				Meta:   m,
			})
			out.TypeName = ir.Literal[string]{Value: name}
			return out, nil
		}
		out.TypeName = stringName(def)
		out.IsPrimitive = true

	case oas2.NodeNumberSchema, oas2.NodeNumberParameter:
		out.TypeName = numberName(def)
		out.IsPrimitive = true

	case oas2.NodeBooleanSchema, oas2.NodeBooleanParameter, oas2.NodeNullSchema:
		out.TypeName = lit(def.Type())
		out.IsPrimitive = true

	case oas2.NodeArraySchema, oas2.NodeArrayParameter:
		items := def.Items()
		if items == nil {
			return typed{}, shapeError(def.Node(), "array items", "array has no items schema")
		}
		item, err := c.inferType(items, localName, parentName)
		if err != nil {
			return typed{}, err
		}
		out.TypeName = item.TypeName
		out.IsPrimitive = item.IsPrimitive
		out.IsArray = true

	case oas2.NodeObjectSchema:
		schema := def.(*oas2.Schema)
		name := naming.ToCamelCase(parentName + "_" + localName)
		props, err := c.properties(schema, name)
		if err != nil {
			return typed{}, err
		}
		c.registerType(&ir.Type{
			Name:        ir.Literal[string]{Value: name},
			Description: optLit(schema.Description()),
			Properties:  props,
			Rules:       objectRules(schema),
			Loc:         def.Range().Encode(),
		})
		out.TypeName = ir.Literal[string]{Value: name}

	default:
		out.TypeName = ir.Literal[string]{Value: untypedName}
		out.IsPrimitive = true
	}
	return out, nil
}

// inferRef handles a reference. Definitions that are objects or string enums
// are named after their key; other definitions are inlined. References
// outside definitions keep the raw pointer as an opaque type name.
func (c *runContext) inferRef(ref *oas2.Ref, localName, parentName string) (typed, error) {
	res, err := oas2.ResolveParamOrSchema(c.root, ref)
	if err != nil {
		return typed{}, err
	}
	if res.NodeType() == oas2.NodeBodyParameter {
		return typed{}, shapeError(res.Node(), "schema", "reference resolves to a body parameter")
	}
	def := res.(oas2.Constraints)

	refRange, err := oas2.RefRange(c.root, ref)
	if err != nil {
		return typed{}, err
	}

	pointer := ref.Value()
	if !pathutil.IsDefinitionRef(pointer) {
		rules, err := c.rules(def, false)
		if err != nil {
			return typed{}, err
		}
		out := typed{loc: def.Range().Encode()}
		out.TypeName = ir.Lit(pointer, refRange)
		out.Rules = rules
		return out, nil
	}

	// A definition that is itself a reference is named after the end of the
	// chain. Resolve has already rejected cycles.
	direct, _, err := oas2.ResolvePointer(c.root, pointer)
	if err != nil {
		return typed{}, err
	}
	if oas2.IsRef(direct) {
		return c.inferType(oas2.ClassifySchema(direct), localName, parentName)
	}

	name := ir.Lit(pathutil.UnescapeToken(pathutil.TrimPrefix(pointer, pathutil.RefPrefixDefinitions)), refRange)
	switch {
	case oas2.IsObject(res):
		rules, err := c.rules(def, false)
		if err != nil {
			return typed{}, err
		}
		out := typed{loc: def.Range().Encode()}
		out.TypeName = name
		out.Rules = rules
		return out, nil

	case oas2.IsString(res) && def.HasEnum():
		values := litValues(def.Enum())
		m := meta(def)
		c.validateEnumDescriptions(values, def)
		c.registerEnum(&ir.Enum{
			Name:   name,
			Values: values,
			Loc:    def.PropRange("enum").Encode(),
			Meta:   m,
		})
		rules, err := c.rules(def, false)
		if err != nil {
			return typed{}, err
		}
		out := typed{loc: def.Range().Encode()}
		out.TypeName = name
		out.Rules = rules
		return out, nil

	default:
		return c.inferType(res, localName, parentName)
	}
}

// stringName narrows a string to date or date-time by format.
func stringName(def oas2.Constraints) ir.Literal[string] {
	if f := def.Format(); f != nil {
		switch f.Value {
		case "date", "date-time":
			return ir.Lit(f.Value, def.Range())
		}
	}
	return lit(def.Type())
}

// numberName maps type and format to integer, long, float or double,
// falling back to the raw type.
func numberName(def oas2.Constraints) ir.Literal[string] {
	t := def.Type()
	format := ""
	if f := def.Format(); f != nil {
		format = f.Value
	}
	if t != nil {
		switch {
		case t.Value == "integer" && format == "int32":
			return ir.Lit("integer", def.Range())
		case t.Value == "integer" && format == "int64":
			return ir.Lit("long", def.Range())
		case t.Value == "number" && format == "float":
			return ir.Lit("float", def.Range())
		case t.Value == "number" && format == "double":
			return ir.Lit("double", def.Range())
		}
	}
	return lit(t)
}
