package ir

// Security scheme and OAuth2 flow type values.
const (
	SchemeBasic  = "basic"
	SchemeAPIKey = "apiKey"
	SchemeOAuth2 = "oauth2"

	FlowImplicit          = "implicit"
	FlowPassword          = "password"
	FlowClientCredentials = "clientCredentials"
	FlowAuthorizationCode = "authorizationCode"
)

// SecurityOption is a set of schemes that must all be satisfied. A method's
// list of options is satisfied by any one of them.
type SecurityOption []SecurityScheme

// SecurityScheme is one of *BasicScheme, *APIKeyScheme or *OAuth2Scheme.
type SecurityScheme interface {
	SchemeType() string
	SchemeName() string
	securityScheme()
}

// BasicScheme is HTTP basic authentication.
type BasicScheme struct {
	Type Literal[string] `json:"type"`
	Name Literal[string] `json:"name"`
	Loc  string          `json:"loc,omitempty"`
	Meta Meta            `json:"meta,omitempty"`
}

// APIKeyScheme is a key passed in a header or query parameter.
type APIKeyScheme struct {
	Type        Literal[string]  `json:"type"`
	Name        Literal[string]  `json:"name"`
	Description *Literal[string] `json:"description,omitempty"`
	Parameter   Literal[string]  `json:"parameter"`
	In          Literal[string]  `json:"in"`
	Loc         string           `json:"loc,omitempty"`
	Meta        Meta             `json:"meta,omitempty"`
}

// OAuth2Scheme carries exactly one flow.
type OAuth2Scheme struct {
	Type        Literal[string]  `json:"type"`
	Name        Literal[string]  `json:"name"`
	Description *Literal[string] `json:"description,omitempty"`
	Flows       []*OAuth2Flow    `json:"flows"`
	Loc         string           `json:"loc,omitempty"`
	Meta        Meta             `json:"meta,omitempty"`
}

// OAuth2Flow is a normalized OAuth2 flow. Which URLs are set depends on Type.
type OAuth2Flow struct {
	Type             Literal[string]  `json:"type"`
	AuthorizationURL *Literal[string] `json:"authorizationUrl,omitempty"`
	TokenURL         *Literal[string] `json:"tokenUrl,omitempty"`
	Scopes           []*OAuth2Scope   `json:"scopes"`
	Loc              string           `json:"loc,omitempty"`
}

// OAuth2Scope is a named scope with its declared description.
type OAuth2Scope struct {
	Name        Literal[string]  `json:"name"`
	Description *Literal[string] `json:"description,omitempty"`
	Loc         string           `json:"loc,omitempty"`
}

func (s *BasicScheme) SchemeType() string  { return s.Type.Value }
func (s *APIKeyScheme) SchemeType() string { return s.Type.Value }
func (s *OAuth2Scheme) SchemeType() string { return s.Type.Value }

func (s *BasicScheme) SchemeName() string  { return s.Name.Value }
func (s *APIKeyScheme) SchemeName() string { return s.Name.Value }
func (s *OAuth2Scheme) SchemeName() string { return s.Name.Value }

func (*BasicScheme) securityScheme()  {}
func (*APIKeyScheme) securityScheme() {}
func (*OAuth2Scheme) securityScheme() {}

// ScopeNames returns the scope names of the flow in order.
func (f *OAuth2Flow) ScopeNames() []string {
	out := make([]string, len(f.Scopes))
	for i, s := range f.Scopes {
		out[i] = s.Name.Value
	}
	return out
}
