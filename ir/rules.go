package ir

// Rule identifiers as they appear in the "id" field.
const (
	RuleRequired                   = "required"
	RuleStringEnum                 = "string-enum"
	RuleStringFormat               = "string-format"
	RuleStringMaxLength            = "string-max-length"
	RuleStringMinLength            = "string-min-length"
	RuleStringPattern              = "string-pattern"
	RuleNumberMultipleOf           = "number-multiple-of"
	RuleNumberGT                   = "number-gt"
	RuleNumberGTE                  = "number-gte"
	RuleNumberLT                   = "number-lt"
	RuleNumberLTE                  = "number-lte"
	RuleArrayMaxItems              = "array-max-items"
	RuleArrayMinItems              = "array-min-items"
	RuleArrayUniqueItems           = "array-unique-items"
	RuleObjectMaxProperties        = "object-max-properties"
	RuleObjectMinProperties        = "object-min-properties"
	RuleObjectAdditionalProperties = "object-additional-properties"
)

// ValidationRule is a constraint on a parameter, property or return value.
// The set of implementations is closed.
type ValidationRule interface {
	RuleID() string
	validationRule()
}

// ObjectValidationRule is a constraint on a Type as a whole.
type ObjectValidationRule interface {
	RuleID() string
	objectValidationRule()
}

// RequiredRule marks a parameter or property as required. It is always the
// first rule of its list.
type RequiredRule struct {
	ID string `json:"id"`
}

// Required returns a RequiredRule.
func Required() *RequiredRule { return &RequiredRule{ID: RuleRequired} }

type StringEnumRule struct {
	ID     string            `json:"id"`
	Values []Literal[string] `json:"values"`
	Loc    string            `json:"loc,omitempty"`
}

type StringFormatRule struct {
	ID     string          `json:"id"`
	Format Literal[string] `json:"format"`
	Loc    string          `json:"loc,omitempty"`
}

type StringMaxLengthRule struct {
	ID     string           `json:"id"`
	Length Literal[float64] `json:"length"`
	Loc    string           `json:"loc,omitempty"`
}

type StringMinLengthRule struct {
	ID     string           `json:"id"`
	Length Literal[float64] `json:"length"`
	Loc    string           `json:"loc,omitempty"`
}

type StringPatternRule struct {
	ID      string          `json:"id"`
	Pattern Literal[string] `json:"pattern"`
	Loc     string          `json:"loc,omitempty"`
}

type NumberMultipleOfRule struct {
	ID    string           `json:"id"`
	Value Literal[float64] `json:"value"`
	Loc   string           `json:"loc,omitempty"`
}

// NumberGreaterThanRule is a lower bound. ID is RuleNumberGT when the bound
// is exclusive and RuleNumberGTE otherwise.
type NumberGreaterThanRule struct {
	ID    string           `json:"id"`
	Value Literal[float64] `json:"value"`
	Loc   string           `json:"loc,omitempty"`
}

// NumberLessThanRule is an upper bound. ID is RuleNumberLT when the bound is
// exclusive and RuleNumberLTE otherwise.
type NumberLessThanRule struct {
	ID    string           `json:"id"`
	Value Literal[float64] `json:"value"`
	Loc   string           `json:"loc,omitempty"`
}

type ArrayMaxItemsRule struct {
	ID  string           `json:"id"`
	Max Literal[float64] `json:"max"`
	Loc string           `json:"loc,omitempty"`
}

type ArrayMinItemsRule struct {
	ID  string           `json:"id"`
	Min Literal[float64] `json:"min"`
	Loc string           `json:"loc,omitempty"`
}

type ArrayUniqueItemsRule struct {
	ID       string `json:"id"`
	Required bool   `json:"required"`
	Loc      string `json:"loc,omitempty"`
}

type ObjectMaxPropertiesRule struct {
	ID  string           `json:"id"`
	Max Literal[float64] `json:"max"`
	Loc string           `json:"loc,omitempty"`
}

type ObjectMinPropertiesRule struct {
	ID  string           `json:"id"`
	Min Literal[float64] `json:"min"`
	Loc string           `json:"loc,omitempty"`
}

// ObjectAdditionalPropertiesRule is emitted only for
// "additionalProperties: false".
type ObjectAdditionalPropertiesRule struct {
	ID        string `json:"id"`
	Forbidden bool   `json:"forbidden"`
	Loc       string `json:"loc,omitempty"`
}

func (r *RequiredRule) RuleID() string          { return r.ID }
func (r *StringEnumRule) RuleID() string        { return r.ID }
func (r *StringFormatRule) RuleID() string      { return r.ID }
func (r *StringMaxLengthRule) RuleID() string   { return r.ID }
func (r *StringMinLengthRule) RuleID() string   { return r.ID }
func (r *StringPatternRule) RuleID() string     { return r.ID }
func (r *NumberMultipleOfRule) RuleID() string  { return r.ID }
func (r *NumberGreaterThanRule) RuleID() string { return r.ID }
func (r *NumberLessThanRule) RuleID() string    { return r.ID }
func (r *ArrayMaxItemsRule) RuleID() string     { return r.ID }
func (r *ArrayMinItemsRule) RuleID() string     { return r.ID }
func (r *ArrayUniqueItemsRule) RuleID() string  { return r.ID }

func (r *ObjectMaxPropertiesRule) RuleID() string        { return r.ID }
func (r *ObjectMinPropertiesRule) RuleID() string        { return r.ID }
func (r *ObjectAdditionalPropertiesRule) RuleID() string { return r.ID }

func (*RequiredRule) validationRule()          {}
func (*StringEnumRule) validationRule()        {}
func (*StringFormatRule) validationRule()      {}
func (*StringMaxLengthRule) validationRule()   {}
func (*StringMinLengthRule) validationRule()   {}
func (*StringPatternRule) validationRule()     {}
func (*NumberMultipleOfRule) validationRule()  {}
func (*NumberGreaterThanRule) validationRule() {}
func (*NumberLessThanRule) validationRule()    {}
func (*ArrayMaxItemsRule) validationRule()     {}
func (*ArrayMinItemsRule) validationRule()     {}
func (*ArrayUniqueItemsRule) validationRule()  {}

func (*ObjectMaxPropertiesRule) objectValidationRule()        {}
func (*ObjectMinPropertiesRule) objectValidationRule()        {}
func (*ObjectAdditionalPropertiesRule) objectValidationRule() {}

// HasRule reports whether rules contains a rule with the given id.
func HasRule(rules []ValidationRule, id string) bool {
	for _, r := range rules {
		if r.RuleID() == id {
			return true
		}
	}
	return false
}
