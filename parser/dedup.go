package parser

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/erraggy/oas2ir/ast"
	"github.com/erraggy/oas2ir/ir"
)

// uniqueTypes keeps one type per name. The last registration wins and takes
// the position of the first. When a discarded type differs in shape from the
// one that replaces it, a collision violation is reported.
func (c *runContext) uniqueTypes(types []*ir.Type) []*ir.Type {
	index := make(map[string]int, len(types))
	out := make([]*ir.Type, 0, len(types))
	for _, t := range types {
		i, ok := index[t.Name.Value]
		if !ok {
			index[t.Name.Value] = len(out)
			out = append(out, t)
			continue
		}
		prev := out[i]
		if typeShape(prev) != typeShape(t) {
			c.collision("type", t.Name.Value, prev.Loc)
		}
		out[i] = t
	}
	return out
}

// uniqueEnums is uniqueTypes for enums.
func (c *runContext) uniqueEnums(enums []*ir.Enum) []*ir.Enum {
	index := make(map[string]int, len(enums))
	out := make([]*ir.Enum, 0, len(enums))
	for _, e := range enums {
		i, ok := index[e.Name.Value]
		if !ok {
			index[e.Name.Value] = len(out)
			out = append(out, e)
			continue
		}
		prev := out[i]
		if enumShape(prev) != enumShape(e) {
			c.collision("enum", e.Name.Value, prev.Loc)
		}
		out[i] = e
	}
	return out
}

func (c *runContext) collision(kind, name, discardedLoc string) {
	c.log.Debug("merged same-named definitions", "kind", kind, "name", name)
	if !c.collisionDiagnostics {
		return
	}
	r, _ := ast.DecodeRange(discardedLoc)
	c.warn(codeTypeNameCollision,
		fmt.Sprintf("The %s name '%s' was generated for more than one distinct schema. Only the last one is kept.", kind, name),
		r)
}

// typeShape summarizes a type without source locations, so the same schema
// registered twice compares equal.
func typeShape(t *ir.Type) string {
	var b strings.Builder
	for _, p := range t.Properties {
		fmt.Fprintf(&b, "%s:%s:%t:%t", p.Name.Value, p.TypeName.Value, p.IsPrimitive, p.IsArray)
		for _, r := range p.Rules {
			b.WriteString("," + ruleShape(r))
		}
		b.WriteString(";")
	}
	b.WriteString("|")
	for _, r := range t.Rules {
		b.WriteString(ruleShape(r) + ";")
	}
	return b.String()
}

// ruleShape renders a rule with its payload and without any loc, so rules
// that differ only in a constraint value compare unequal.
func ruleShape(rule any) string {
	raw, err := json.Marshal(rule)
	if err != nil {
		return fmt.Sprintf("%T", rule)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	out, err := json.Marshal(dropLocs(v))
	if err != nil {
		return string(raw)
	}
	return string(out)
}

// dropLocs removes every "loc" member from a decoded JSON value.
func dropLocs(v any) any {
	switch x := v.(type) {
	case map[string]any:
		delete(x, "loc")
		for k, child := range x {
			x[k] = dropLocs(child)
		}
	case []any:
		for i, child := range x {
			x[i] = dropLocs(child)
		}
	}
	return v
}

func enumShape(e *ir.Enum) string {
	values := make([]string, len(e.Values))
	for i, v := range e.Values {
		values[i] = v.Value
	}
	return strings.Join(values, "\x00")
}
