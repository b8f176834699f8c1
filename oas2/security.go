package oas2

import "github.com/erraggy/oas2ir/ast"

// SecurityDefinitions is the document's table of named security schemes.
type SecurityDefinitions struct {
	base
}

// Scheme returns the classified scheme for name. It returns nil when the
// name is absent, the value is not an object, or its "type" is not basic,
// apiKey or oauth2.
func (s *SecurityDefinitions) Scheme(name string) *SecurityScheme {
	n := s.object(name)
	if n == nil {
		return nil
	}
	t, _ := n.Get("type").AsString()
	var kind NodeType
	switch t {
	case "basic":
		kind = NodeBasicSecurityScheme
	case "apiKey":
		kind = NodeAPIKeySecurityScheme
	case "oauth2":
		kind = NodeOAuth2SecurityScheme
	default:
		return nil
	}
	return &SecurityScheme{base: base{n}, kind: kind}
}

// SecurityScheme is a classified security scheme definition.
type SecurityScheme struct {
	base
	kind NodeType
}

// NodeType returns the scheme variant.
func (s *SecurityScheme) NodeType() NodeType { return s.kind }

func (s *SecurityScheme) Type() *Literal[string]             { return s.str("type") }
func (s *SecurityScheme) Description() *Literal[string]      { return s.str("description") }
func (s *SecurityScheme) Name() *Literal[string]             { return s.str("name") }
func (s *SecurityScheme) In() *Literal[string]               { return s.str("in") }
func (s *SecurityScheme) Flow() *Literal[string]             { return s.str("flow") }
func (s *SecurityScheme) AuthorizationURL() *Literal[string] { return s.str("authorizationUrl") }
func (s *SecurityScheme) TokenURL() *Literal[string]         { return s.str("tokenUrl") }

// Scopes returns the declared scope table, or nil.
func (s *SecurityScheme) Scopes() *Scopes {
	if n := s.object("scopes"); n != nil {
		return &Scopes{base{n}}
	}
	return nil
}

// Scopes maps scope names to their descriptions.
type Scopes struct {
	base
}

// Description returns the description declared for scope, or nil.
func (s *Scopes) Description(scope string) *Literal[string] {
	if s == nil {
		return nil
	}
	return s.str(scope)
}

// SecurityRequirement maps scheme names to the scopes an operation needs.
type SecurityRequirement struct {
	base
}

// Scopes returns the requested scopes for scheme and whether the value is an
// array.
func (r *SecurityRequirement) Scopes(scheme string) ([]Literal[string], bool) {
	if !r.child(scheme).IsArray() {
		return nil, false
	}
	return r.strs(scheme), true
}

func requirements(n *ast.Node) ([]*SecurityRequirement, bool) {
	if !n.IsArray() {
		return nil, false
	}
	out := make([]*SecurityRequirement, 0, len(n.Items))
	for _, item := range n.Items {
		if item.IsObject() {
			out = append(out, &SecurityRequirement{base{item}})
		}
	}
	return out, true
}
