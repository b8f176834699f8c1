package testutil

import (
	"fmt"

	"github.com/erraggy/oas2ir/ir"
)

// TypedRef is a typed value found in a service, labelled with where it was
// found.
type TypedRef struct {
	Where string
	Value ir.TypedValue
}

// TypedValues returns every parameter, property and return type of s.
func TypedValues(s *ir.Service) []TypedRef {
	var out []TypedRef
	for _, iface := range s.Interfaces {
		for _, m := range iface.Methods {
			for _, p := range m.Parameters {
				out = append(out, TypedRef{
					Where: fmt.Sprintf("%s.%s(%s)", iface.Name, m.Name.Value, p.Name.Value),
					Value: p.TypedValue,
				})
			}
			if m.ReturnType != nil {
				out = append(out, TypedRef{
					Where: fmt.Sprintf("%s.%s returns", iface.Name, m.Name.Value),
					Value: m.ReturnType.TypedValue,
				})
			}
		}
	}
	for _, t := range s.Types {
		for _, p := range t.Properties {
			out = append(out, TypedRef{
				Where: fmt.Sprintf("%s.%s", t.Name.Value, p.Name.Value),
				Value: p.TypedValue,
			})
		}
	}
	return out
}

// SpannedString is a string literal whose value is copied from the document
// verbatim, so its span must contain it.
type SpannedString struct {
	Where string
	Value string
	Loc   string
}

// VerbatimLiterals returns the literals of s whose value is source text:
// names, paths, verbs, parameter locations and enum values. Literals without
// a location are skipped.
func VerbatimLiterals(s *ir.Service) []SpannedString {
	var out []SpannedString
	add := func(where string, l ir.Literal[string]) {
		if l.Loc != "" {
			out = append(out, SpannedString{Where: where, Value: l.Value, Loc: l.Loc})
		}
	}

	for _, iface := range s.Interfaces {
		for _, m := range iface.Methods {
			add("method "+m.Name.Value, m.Name)
			for _, p := range m.Parameters {
				add("parameter "+p.Name.Value, p.Name)
			}
		}
		for _, path := range iface.Protocols.HTTP {
			add("path "+path.Path.Value, path.Path)
			for _, hm := range path.Methods {
				add("verb "+hm.Verb.Value, hm.Verb)
				for _, hp := range hm.Parameters {
					add("http parameter "+hp.Name.Value, hp.Name)
					add("http parameter in "+hp.In.Value, hp.In)
				}
			}
		}
	}
	for _, t := range s.Types {
		add("type "+t.Name.Value, t.Name)
		for _, p := range t.Properties {
			add("property "+p.Name.Value, p.Name)
		}
	}
	for _, e := range s.Enums {
		add("enum "+e.Name.Value, e.Name)
		for _, v := range e.Values {
			add("enum value "+v.Value, v)
		}
	}
	return out
}

// TypeNames returns the names of the service's types in order.
func TypeNames(s *ir.Service) []string {
	out := make([]string, len(s.Types))
	for i, t := range s.Types {
		out[i] = t.Name.Value
	}
	return out
}

// EnumNames returns the names of the service's enums in order.
func EnumNames(s *ir.Service) []string {
	out := make([]string, len(s.Enums))
	for i, e := range s.Enums {
		out[i] = e.Name.Value
	}
	return out
}

// RuleIDs returns the ids of rules in order.
func RuleIDs(rules []ir.ValidationRule) []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.RuleID()
	}
	return out
}

// FindType returns the type named name, or nil.
func FindType(s *ir.Service, name string) *ir.Type {
	for _, t := range s.Types {
		if t.Name.Value == name {
			return t
		}
	}
	return nil
}

// FindEnum returns the enum named name, or nil.
func FindEnum(s *ir.Service, name string) *ir.Enum {
	for _, e := range s.Enums {
		if e.Name.Value == name {
			return e
		}
	}
	return nil
}

// FindMethod returns the method named name and its interface, or nil.
func FindMethod(s *ir.Service, name string) (*ir.Interface, *ir.Method) {
	for _, iface := range s.Interfaces {
		for _, m := range iface.Methods {
			if m.Name.Value == name {
				return iface, m
			}
		}
	}
	return nil, nil
}

// FindHTTPMethod returns the HTTP binding named name, or nil.
func FindHTTPMethod(s *ir.Service, name string) *ir.HTTPMethod {
	for _, iface := range s.Interfaces {
		for _, path := range iface.Protocols.HTTP {
			for _, hm := range path.Methods {
				if hm.Name.Value == name {
					return hm
				}
			}
		}
	}
	return nil
}

// FindProperty returns the property of t named name, or nil.
func FindProperty(t *ir.Type, name string) *ir.Property {
	if t == nil {
		return nil
	}
	for _, p := range t.Properties {
		if p.Name.Value == name {
			return p
		}
	}
	return nil
}

// FindParameter returns the parameter of m named name, or nil.
func FindParameter(m *ir.Method, name string) *ir.Parameter {
	if m == nil {
		return nil
	}
	for _, p := range m.Parameters {
		if p.Name.Value == name {
			return p
		}
	}
	return nil
}
