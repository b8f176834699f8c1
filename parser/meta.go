package parser

import (
	"fmt"
	"strings"

	"github.com/erraggy/oas2ir/ast"
	"github.com/erraggy/oas2ir/ir"
)

const (
	enumDescriptionKey       = "x-codegen-enum-description"
	enumValueDescriptionsKey = "x-codegen-enum-value-descriptions"

	codeEnumDescription       = "swagger-2/codegen-enum-description"
	codeEnumValueDescriptions = "swagger-2/codegen-enum-value-descriptions"
	codeTypeNameCollision     = "swagger-2/type-name-collision"
)

type extensible interface {
	Extensions() []*ast.Member
}

// meta converts the x- members of el. It returns nil when there are none so
// the field is omitted from the output.
func meta(el extensible) ir.Meta {
	exts := el.Extensions()
	if len(exts) == 0 {
		return nil
	}
	out := make(ir.Meta, 0, len(exts))
	for _, m := range exts {
		out = append(out, ir.MetaValue{
			Key:   ir.Lit(strings.TrimPrefix(m.Name(), "x-"), m.Key.Range),
			Value: ir.Lit(ast.ToValue(m.Value), m.Value.Range),
		})
	}
	return out
}

// validateEnumDescriptions checks the codegen enum extensions of an enum
// schema or parameter against its values.
func (c *runContext) validateEnumDescriptions(values []ir.Literal[string], el extensible) {
	var description, valueDescriptions *ast.Member
	for _, m := range el.Extensions() {
		switch m.Name() {
		case enumDescriptionKey:
			if description == nil {
				description = m
			}
		case enumValueDescriptionsKey:
			if valueDescriptions == nil {
				valueDescriptions = m
			}
		}
	}

	if description != nil {
		if _, ok := description.Value.AsString(); !ok {
			c.warn(codeEnumDescription,
				"codegen-enum-description must be a string if provided.",
				description.Value.Range)
		}
	}

	if valueDescriptions == nil {
		return
	}
	if !valueDescriptions.Value.IsObject() {
		c.warn(codeEnumValueDescriptions,
			"codegen-enum-value-descriptions must be an object if provided.",
			valueDescriptions.Value.Range)
		return
	}

	allowed := make(map[string]bool, len(values))
	for _, v := range values {
		allowed[v.Value] = true
	}
	for _, key := range valueDescriptions.Value.Keys() {
		if !allowed[key] {
			c.warn(codeEnumValueDescriptions,
				fmt.Sprintf("Each key of codegen-enum-value-descriptions must be defined as an Enum value. '%s' has a description, but is not defined as an Enum value.", key),
				valueDescriptions.Value.Range)
		}
	}
}
