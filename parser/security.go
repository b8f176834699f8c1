package parser

import (
	"github.com/erraggy/oas2ir/ir"
	"github.com/erraggy/oas2ir/oas2"
)

// security normalizes the security requirements of op. The operation's own
// list wins when present, even if empty; otherwise the document default
// applies. Each requirement becomes one option holding the schemes it names.
// Names that are missing from securityDefinitions, or whose value is not a
// scope array, are dropped.
func (c *runContext) security(op *oas2.Operation) []ir.SecurityOption {
	reqs, ok := op.Security()
	if !ok {
		reqs, _ = c.doc.Security()
	}
	out := make([]ir.SecurityOption, 0, len(reqs))
	defs := c.doc.SecurityDefinitions()

	for _, req := range reqs {
		option := make(ir.SecurityOption, 0, len(req.Keys()))
		for _, key := range req.Keys() {
			requested, isArray := req.Scopes(key)
			if !isArray || defs == nil {
				continue
			}
			def := defs.Scheme(key)
			if def == nil {
				continue
			}
			if scheme := c.securityScheme(key, defs, def, requested); scheme != nil {
				option = append(option, scheme)
			}
		}
		out = append(out, option)
	}
	return out
}

func (c *runContext) securityScheme(key string, defs *oas2.SecurityDefinitions, def *oas2.SecurityScheme, requested []oas2.Literal[string]) ir.SecurityScheme {
	name := ir.Lit(key, defs.KeyRange(key))
	loc := defs.PropRange(key).Encode()
	typeRange := def.Type().Range()

	switch def.NodeType() {
	case oas2.NodeBasicSecurityScheme:
		return &ir.BasicScheme{Type: ir.Lit(ir.SchemeBasic, typeRange), Name: name, Loc: loc, Meta: meta(def)}

	case oas2.NodeAPIKeySecurityScheme:
		return &ir.APIKeyScheme{
			Type:        ir.Lit(ir.SchemeAPIKey, typeRange),
			Name:        name,
			Description: optLit(def.Description()),
			Parameter:   lit(def.Name()),
			In:          lit(def.In()),
			Loc:         loc,
			Meta:        meta(def),
		}

	case oas2.NodeOAuth2SecurityScheme:
		flow := c.oauth2Flow(def, requested, loc)
		if flow == nil {
			c.log.Debug("dropping oauth2 scheme with unknown flow", "scheme", key)
			return nil
		}
		return &ir.OAuth2Scheme{
			Type:        ir.Lit(ir.SchemeOAuth2, typeRange),
			Name:        name,
			Description: optLit(def.Description()),
			Flows:       []*ir.OAuth2Flow{flow},
			Loc:         loc,
			Meta:        meta(def),
		}
	}
	return nil
}

// oauth2Flow maps the scheme's declared flow onto its normalized name. The
// implicit flow lists only the scopes the operation requested; the other
// flows list every scope the scheme declares.
func (c *runContext) oauth2Flow(def *oas2.SecurityScheme, requested []oas2.Literal[string], loc string) *ir.OAuth2Flow {
	flowLit := def.Flow()
	if flowLit == nil {
		return nil
	}
	flow := &ir.OAuth2Flow{Loc: loc}
	scopes := def.Scopes()

	switch flowLit.Value {
	case "implicit":
		flow.Type = ir.Lit(ir.FlowImplicit, flowLit.Range())
		flow.AuthorizationURL = optLit(def.AuthorizationURL())
		flow.Scopes = requestedScopes(scopes, requested)
	case "password":
		flow.Type = ir.Lit(ir.FlowPassword, flowLit.Range())
		flow.TokenURL = optLit(def.TokenURL())
		flow.Scopes = declaredScopes(scopes)
	case "application":
		flow.Type = ir.Lit(ir.FlowClientCredentials, flowLit.Range())
		flow.TokenURL = optLit(def.TokenURL())
		flow.Scopes = declaredScopes(scopes)
	case "accessCode":
		flow.Type = ir.Lit(ir.FlowAuthorizationCode, flowLit.Range())
		flow.AuthorizationURL = optLit(def.AuthorizationURL())
		flow.TokenURL = optLit(def.TokenURL())
		flow.Scopes = declaredScopes(scopes)
	default:
		return nil
	}
	return flow
}

func requestedScopes(scopes *oas2.Scopes, requested []oas2.Literal[string]) []*ir.OAuth2Scope {
	out := make([]*ir.OAuth2Scope, 0, len(requested))
	for i := range requested {
		s := &ir.OAuth2Scope{
			Name:        lit(&requested[i]),
			Description: optLit(scopes.Description(requested[i].Value)),
		}
		if scopes != nil {
			s.Loc = scopes.PropRange(requested[i].Value).Encode()
		}
		out = append(out, s)
	}
	return out
}

func declaredScopes(scopes *oas2.Scopes) []*ir.OAuth2Scope {
	out := make([]*ir.OAuth2Scope, 0)
	if scopes == nil {
		return out
	}
	for _, k := range scopes.Keys() {
		out = append(out, &ir.OAuth2Scope{
			Name:        ir.Lit(k, scopes.KeyRange(k)),
			Description: optLit(scopes.Description(k)),
			Loc:         scopes.PropRange(k).Encode(),
		})
	}
	return out
}
