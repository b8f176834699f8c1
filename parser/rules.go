package parser

import (
	"github.com/erraggy/oas2ir/ir"
	"github.com/erraggy/oas2ir/oas2"
)

// ruleFactory inspects one constraint field and returns a rule, or nil.
type ruleFactory func(def oas2.Constraints) ir.ValidationRule

// ruleFactories run in this order; the order is visible in the output.
var ruleFactories = []ruleFactory{
	stringEnumRule,
	stringFormatRule,
	stringMaxLengthRule,
	stringMinLengthRule,
	stringPatternRule,
	numberMultipleOfRule,
	numberGreaterThanRule,
	numberLessThanRule,
	arrayMaxItemsRule,
	arrayMinItemsRule,
	arrayUniqueItemsRule,
}

type objectRuleFactory func(def *oas2.Schema) ir.ObjectValidationRule

var objectRuleFactories = []objectRuleFactory{
	objectMaxPropertiesRule,
	objectMinPropertiesRule,
	objectAdditionalPropertiesRule,
}

// rules extracts the validation rules of def. For arrays the rules of the
// resolved items schema follow the array's own. A required value gets a
// leading required rule.
func (c *runContext) rules(def oas2.Constraints, required bool) ([]ir.ValidationRule, error) {
	out := make([]ir.ValidationRule, 0, 2)
	if required {
		out = append(out, ir.Required())
	}
	out = applyRules(out, def)

	if oas2.IsArray(def) {
		if items := def.Items(); items != nil {
			resolved, err := oas2.ResolveSchema(c.root, items)
			if err != nil {
				return nil, err
			}
			if itemDef, ok := resolved.(oas2.Constraints); ok {
				out = applyRules(out, itemDef)
			}
		}
	}
	return out, nil
}

func applyRules(out []ir.ValidationRule, def oas2.Constraints) []ir.ValidationRule {
	for _, f := range ruleFactories {
		if r := f(def); r != nil {
			out = append(out, r)
		}
	}
	return out
}

// objectRules extracts the object-level rules of an object schema.
func objectRules(def *oas2.Schema) []ir.ObjectValidationRule {
	out := make([]ir.ObjectValidationRule, 0)
	if !oas2.IsObject(def) {
		return out
	}
	for _, f := range objectRuleFactories {
		if r := f(def); r != nil {
			out = append(out, r)
		}
	}
	return out
}

func stringEnumRule(def oas2.Constraints) ir.ValidationRule {
	if !oas2.IsString(def) || !def.HasEnum() {
		return nil
	}
	return &ir.StringEnumRule{
		ID:     ir.RuleStringEnum,
		Values: litValues(def.Enum()),
		Loc:    def.PropRange("enum").Encode(),
	}
}

func stringFormatRule(def oas2.Constraints) ir.ValidationRule {
	f := def.Format()
	if !oas2.IsString(def) || f == nil {
		return nil
	}
	return &ir.StringFormatRule{ID: ir.RuleStringFormat, Format: lit(f), Loc: def.PropRange("format").Encode()}
}

func stringMaxLengthRule(def oas2.Constraints) ir.ValidationRule {
	n := def.MaxLength()
	if !oas2.IsString(def) || n == nil {
		return nil
	}
	return &ir.StringMaxLengthRule{ID: ir.RuleStringMaxLength, Length: lit(n), Loc: def.PropRange("maxLength").Encode()}
}

func stringMinLengthRule(def oas2.Constraints) ir.ValidationRule {
	n := def.MinLength()
	if !oas2.IsString(def) || n == nil {
		return nil
	}
	return &ir.StringMinLengthRule{ID: ir.RuleStringMinLength, Length: lit(n), Loc: def.PropRange("minLength").Encode()}
}

func stringPatternRule(def oas2.Constraints) ir.ValidationRule {
	p := def.Pattern()
	if !oas2.IsString(def) || p == nil {
		return nil
	}
	return &ir.StringPatternRule{ID: ir.RuleStringPattern, Pattern: lit(p), Loc: def.PropRange("pattern").Encode()}
}

func numberMultipleOfRule(def oas2.Constraints) ir.ValidationRule {
	n := def.MultipleOf()
	if !oas2.IsNumber(def) || n == nil {
		return nil
	}
	return &ir.NumberMultipleOfRule{ID: ir.RuleNumberMultipleOf, Value: lit(n), Loc: def.PropRange("multipleOf").Encode()}
}

func numberGreaterThanRule(def oas2.Constraints) ir.ValidationRule {
	n := def.Minimum()
	if !oas2.IsNumber(def) || n == nil {
		return nil
	}
	id := ir.RuleNumberGTE
	if exclusive(def) {
		id = ir.RuleNumberGT
	}
	return &ir.NumberGreaterThanRule{ID: id, Value: lit(n), Loc: def.PropRange("minimum").Encode()}
}

// numberLessThanRule takes its exclusivity from exclusiveMinimum, not
// exclusiveMaximum. Existing consumers depend on this.
func numberLessThanRule(def oas2.Constraints) ir.ValidationRule {
	n := def.Maximum()
	if !oas2.IsNumber(def) || n == nil {
		return nil
	}
	id := ir.RuleNumberLTE
	if exclusive(def) {
		id = ir.RuleNumberLT
	}
	return &ir.NumberLessThanRule{ID: id, Value: lit(n), Loc: def.PropRange("maximum").Encode()}
}

func exclusive(def oas2.Constraints) bool {
	b := def.ExclusiveMinimum()
	return b != nil && b.Value
}

func arrayMaxItemsRule(def oas2.Constraints) ir.ValidationRule {
	n := def.MaxItems()
	if !oas2.IsArray(def) || n == nil {
		return nil
	}
	return &ir.ArrayMaxItemsRule{ID: ir.RuleArrayMaxItems, Max: lit(n), Loc: def.PropRange("maxItems").Encode()}
}

func arrayMinItemsRule(def oas2.Constraints) ir.ValidationRule {
	n := def.MinItems()
	if !oas2.IsArray(def) || n == nil {
		return nil
	}
	return &ir.ArrayMinItemsRule{ID: ir.RuleArrayMinItems, Min: lit(n), Loc: def.PropRange("minItems").Encode()}
}

func arrayUniqueItemsRule(def oas2.Constraints) ir.ValidationRule {
	b := def.UniqueItems()
	if !oas2.IsArray(def) || b == nil || !b.Value {
		return nil
	}
	return &ir.ArrayUniqueItemsRule{ID: ir.RuleArrayUniqueItems, Required: true, Loc: def.PropRange("uniqueItems").Encode()}
}

func objectMaxPropertiesRule(def *oas2.Schema) ir.ObjectValidationRule {
	n := def.MaxProperties()
	if n == nil {
		return nil
	}
	return &ir.ObjectMaxPropertiesRule{ID: ir.RuleObjectMaxProperties, Max: lit(n), Loc: def.PropRange("maxProperties").Encode()}
}

func objectMinPropertiesRule(def *oas2.Schema) ir.ObjectValidationRule {
	n := def.MinProperties()
	if n == nil {
		return nil
	}
	return &ir.ObjectMinPropertiesRule{ID: ir.RuleObjectMinProperties, Min: lit(n), Loc: def.PropRange("minProperties").Encode()}
}

func objectAdditionalPropertiesRule(def *oas2.Schema) ir.ObjectValidationRule {
	allowed, ok := def.AdditionalProperties().AsBool()
	if !ok || allowed {
		return nil
	}
	return &ir.ObjectAdditionalPropertiesRule{
		ID:        ir.RuleObjectAdditionalProperties,
		Forbidden: true,
		Loc:       def.PropRange("additionalProperties").Encode(),
	}
}
