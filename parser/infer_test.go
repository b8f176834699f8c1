package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oas2ir/internal/testutil"
	"github.com/erraggy/oas2ir/ir"
	"github.com/erraggy/oas2ir/oaserrors"
)

const inferenceDefinitions = `
  "x-common": {"id": {"type": "string", "format": "uuid"}},
  "definitions": {
    "Shape": {
      "type": "object",
      "properties": {
        "when": {"type": "string", "format": "date-time"},
        "plain": {"type": "string", "format": "email"},
        "i32": {"type": "integer", "format": "int32"},
        "i64": {"type": "integer", "format": "int64"},
        "f": {"type": "number", "format": "float"},
        "d": {"type": "number", "format": "double"},
        "n": {"type": "number"},
        "odd": {"type": "integer", "format": "int8"},
        "b": {"type": "boolean"},
        "nothing": {},
        "tags": {"type": "array", "items": {"type": "string"}},
        "children": {"type": "array", "items": {"type": "object", "properties": {"x": {"type": "string"}}}},
        "kinds": {"type": "array", "items": {"type": "string", "enum": ["a", "b"]}},
        "self": {"$ref": "#/definitions/Shape"},
        "alias": {"$ref": "#/definitions/Alias2"},
        "code": {"$ref": "#/definitions/Code"},
        "color": {"$ref": "#/definitions/Color"},
        "shared": {"$ref": "#/x-common/id"}
      }
    },
    "Alias1": {"$ref": "#/definitions/Target"},
    "Alias2": {"$ref": "#/definitions/Alias1"},
    "Target": {"type": "object", "properties": {"v": {"type": "string"}}},
    "Code": {"type": "string", "maxLength": 4},
    "Color": {"type": "string", "enum": ["red", "green"]}
  }`

func TestTypeInference(t *testing.T) {
	res := mustConvert(t, minimalDoc(inferenceDefinitions))
	shape := testutil.FindType(res.Service, "Shape")
	require.NotNil(t, shape)

	tests := []struct {
		prop        string
		typeName    string
		isPrimitive bool
		isArray     bool
	}{
		{"when", "date-time", true, false},
		{"plain", "string", true, false},
		{"i32", "integer", true, false},
		{"i64", "long", true, false},
		{"f", "float", true, false},
		{"d", "double", true, false},
		{"n", "number", true, false},
		{"odd", "integer", true, false},
		{"b", "boolean", true, false},
		{"nothing", "untyped", true, false},
		{"tags", "string", true, true},
		{"children", "shapeChildren", false, true},
		{"kinds", "shapeKind", false, true},
		{"self", "Shape", false, false},
		{"alias", "Target", false, false},
		{"code", "string", true, false},
		{"color", "Color", false, false},
		{"shared", "#/x-common/id", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.prop, func(t *testing.T) {
			p := testutil.FindProperty(shape, tt.prop)
			require.NotNil(t, p)
			assert.Equal(t, tt.typeName, p.TypeName.Value)
			assert.Equal(t, tt.isPrimitive, p.IsPrimitive)
			assert.Equal(t, tt.isArray, p.IsArray)
		})
	}

	assert.Equal(t, []string{ir.RuleStringMaxLength}, testutil.RuleIDs(testutil.FindProperty(shape, "code").Rules),
		"inlined definitions keep their rules")
	assert.Equal(t, []string{"Shape", "Target", "shapeChildren"}, testutil.TypeNames(res.Service))
	assert.Equal(t, []string{"shapeKind", "Color"}, testutil.EnumNames(res.Service))
	require.NotNil(t, res.Service.Meta.Get("common"))
}

func TestRuleOrder(t *testing.T) {
	res := mustConvert(t, minimalDoc(`"definitions": {
    "Box": {
      "type": "object",
      "required": ["code"],
      "maxProperties": 9,
      "minProperties": 1,
      "additionalProperties": false,
      "properties": {
        "code": {"type": "string", "enum": ["a", "b"], "format": "slug", "maxLength": 5, "minLength": 1, "pattern": "^[ab]$"},
        "count": {"type": "integer", "multipleOf": 2, "minimum": 0, "maximum": 10, "exclusiveMaximum": true},
        "ratio": {"type": "number", "minimum": 0, "maximum": 1, "exclusiveMinimum": true},
        "list": {"type": "array", "maxItems": 3, "minItems": 1, "uniqueItems": true, "items": {"type": "integer", "minimum": 5}},
        "loose": {"type": "array", "uniqueItems": false, "items": {"type": "string"}},
        "flag": {"type": "boolean"},
        "open": {"type": "object", "additionalProperties": true, "properties": {"k": {"type": "string"}}}
      }
    }
  }`))
	box := testutil.FindType(res.Service, "Box")
	require.NotNil(t, box)

	tests := []struct {
		prop  string
		rules []string
	}{
		{"code", []string{ir.RuleRequired, ir.RuleStringEnum, ir.RuleStringFormat, ir.RuleStringMaxLength, ir.RuleStringMinLength, ir.RuleStringPattern}},
		{"count", []string{ir.RuleNumberMultipleOf, ir.RuleNumberGTE, ir.RuleNumberLTE}},
		{"ratio", []string{ir.RuleNumberGT, ir.RuleNumberLT}},
		{"list", []string{ir.RuleArrayMaxItems, ir.RuleArrayMinItems, ir.RuleArrayUniqueItems, ir.RuleNumberGTE}},
		{"loose", []string{}},
		{"flag", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.prop, func(t *testing.T) {
			p := testutil.FindProperty(box, tt.prop)
			require.NotNil(t, p)
			assert.Equal(t, tt.rules, testutil.RuleIDs(p.Rules))
		})
	}

	require.Len(t, box.Rules, 3)
	assert.Equal(t, ir.RuleObjectMaxProperties, box.Rules[0].RuleID())
	assert.Equal(t, ir.RuleObjectMinProperties, box.Rules[1].RuleID())
	assert.Equal(t, ir.RuleObjectAdditionalProperties, box.Rules[2].RuleID())
	assert.Empty(t, testutil.FindType(res.Service, "boxOpen").Rules)

	count := testutil.FindProperty(box, "count")
	lte, ok := count.Rules[2].(*ir.NumberLessThanRule)
	require.True(t, ok)
	assert.Equal(t, 10.0, lte.Value.Value)

	code := testutil.FindProperty(box, "code")
	enumRule, ok := code.Rules[1].(*ir.StringEnumRule)
	require.True(t, ok)
	require.Len(t, enumRule.Values, 2)
	assert.Equal(t, "b", enumRule.Values[1].Value)
	assert.NotEmpty(t, enumRule.Loc)

	list := testutil.FindProperty(box, "list")
	gte, ok := list.Rules[3].(*ir.NumberGreaterThanRule)
	require.True(t, ok)
	assert.Equal(t, 5.0, gte.Value.Value, "item rules come from the items schema")
}

func TestSharedEnumParameter(t *testing.T) {
	res := mustConvert(t, minimalDoc(`
  "parameters": {
    "sortOrder": {"name": "order", "in": "query", "type": "string", "enum": ["asc", "desc"]}
  },
  "paths": {
    "/things": {
      "get": {
        "operationId": "listThings",
        "parameters": [
          {"$ref": "#/parameters/sortOrder"},
          {"name": "dir", "in": "query", "type": "string", "enum": ["up", "down"]}
        ],
        "responses": {"200": {"description": "ok"}}
      }
    },
    "/others": {
      "get": {
        "operationId": "listOthers",
        "parameters": [{"$ref": "#/parameters/sortOrder"}],
        "responses": {"200": {"description": "ok"}}
      }
    }
  }`))

	assert.Equal(t, []string{"sortOrder", "listThingsDir"}, testutil.EnumNames(res.Service))
	assert.Empty(t, res.Violations, "the same shared enum registered twice is not a collision")

	_, others := testutil.FindMethod(res.Service, "listOthers")
	assert.Equal(t, "sortOrder", testutil.FindParameter(others, "order").TypeName.Value)
}

func TestAllOfFlattening(t *testing.T) {
	res := mustConvert(t, minimalDoc(`"definitions": {
    "Base": {"type": "object", "required": ["id"], "properties": {"id": {"type": "string"}}},
    "Mid": {
      "allOf": [
        {"$ref": "#/definitions/Base"},
        {"properties": {"label": {"type": "string"}}}
      ],
      "required": ["label"],
      "properties": {"own": {"type": "integer"}}
    },
    "Top": {"allOf": [{"$ref": "#/definitions/Mid"}], "required": ["own"]}
  }`))

	names := func(typ *ir.Type) ([]string, []bool) {
		var out []string
		var required []bool
		for _, p := range typ.Properties {
			out = append(out, p.Name.Value)
			required = append(required, ir.HasRule(p.Rules, ir.RuleRequired))
		}
		return out, required
	}

	props, required := names(testutil.FindType(res.Service, "Mid"))
	assert.Equal(t, []string{"id", "label", "own"}, props, "members before own properties")
	assert.Equal(t, []bool{true, true, false}, required)

	props, required = names(testutil.FindType(res.Service, "Top"))
	assert.Equal(t, []string{"id", "label", "own"}, props, "nested allOf is flattened")
	assert.Equal(t, []bool{true, true, true}, required, "required lists are inherited")
}

func TestOperationNaming(t *testing.T) {
	res := mustConvert(t, minimalDoc(`"paths": {
    "/": {"get": {"responses": {}}},
    "/v1/things": {"post": {"operationId": "", "responses": {}}}
  }`))
	s := res.Service

	require.Len(t, s.Interfaces, 2)
	assert.Equal(t, "", s.Interfaces[0].Name)
	assert.Equal(t, "v1", s.Interfaces[1].Name)

	for _, iface := range s.Interfaces {
		require.Len(t, iface.Methods, 1)
		assert.Equal(t, "UNNAMED", iface.Methods[0].Name.Value)
		assert.Empty(t, iface.Methods[0].Name.Loc)
		assert.Equal(t, "unknown", iface.Protocols.HTTP[0].Methods[0].Name.Value)
	}
}

func TestSuccessCodes(t *testing.T) {
	const withSchema = `{"description": "x", "schema": {"type": "string"}}`
	const noSchema = `{"description": "x"}`

	tests := []struct {
		name      string
		verb      string
		responses string
		want      int
	}{
		{"explicit 200", "get", `{"200": ` + noSchema + `}`, 200},
		{"first 2xx in source order", "get", `{"201": ` + noSchema + `, "200": ` + noSchema + `}`, 201},
		{"post default", "post", `{"default": ` + withSchema + `}`, 201},
		{"delete default", "delete", `{"default": ` + withSchema + `}`, 202},
		{"options default", "options", `{"default": ` + withSchema + `}`, 204},
		{"put default", "put", `{"default": ` + withSchema + `}`, 200},
		{"default without schema", "get", `{"default": ` + noSchema + `}`, 204},
		{"patch default without schema", "patch", `{"default": ` + noSchema + `}`, 204},
		{"only 204", "get", `{"204": ` + noSchema + `}`, 204},
		{"204 beside error responses", "delete", `{"204": ` + noSchema + `, "404": ` + noSchema + `}`, 204},
		{"only errors", "get", `{"404": ` + noSchema + `}`, 200},
		{"non-numeric 2xx", "get", `{"2XX": ` + withSchema + `, "default": ` + noSchema + `}`, 204},
		{"no responses", "get", `{}`, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := mustConvert(t, minimalDoc(`"paths": {"/things": {"`+tt.verb+`": {"operationId": "op", "responses": `+tt.responses+`}}}`))
			hm := testutil.FindHTTPMethod(res.Service, "op")
			require.NotNil(t, hm)
			assert.Equal(t, tt.want, hm.SuccessCode.Value)
		})
	}
}

func TestEnumExtensionViolations(t *testing.T) {
	doc := minimalDoc(`"definitions": {
    "Box": {
      "type": "object",
      "properties": {
        "color": {
          "type": "string",
          "enum": ["red"],
          "x-codegen-enum-description": ["not", "a", "string"],
          "x-codegen-enum-value-descriptions": {"red": "r", "blue": "b", "pink": "p"}
        },
        "fine": {
          "type": "string",
          "enum": ["on"],
          "x-codegen-enum-description": "Switch",
          "x-codegen-enum-value-descriptions": {"on": "enabled"}
        },
        "empty": {"type": "string", "enum": ["x"], "x-codegen-enum-value-descriptions": null}
      }
    }
  }`)
	res := mustConvert(t, doc)

	require.Len(t, res.Violations, 4)
	assert.Equal(t, codeEnumDescription, res.Violations[0].Code)
	assert.Equal(t, `["not", "a", "string"]`, res.Violations[0].Range.Slice([]byte(doc)))
	assert.Contains(t, res.Violations[1].Message, "'blue'")
	assert.Contains(t, res.Violations[2].Message, "'pink'")
	assert.Equal(t, "codegen-enum-value-descriptions must be an object if provided.", res.Violations[3].Message)

	for _, v := range res.Violations {
		assert.Equal(t, ir.SeverityWarning, v.Severity)
		assert.True(t, v.HasLocation())
	}

	color := testutil.FindEnum(res.Service, "boxColor")
	require.NotNil(t, color)
	require.NotNil(t, color.Meta.Get("codegen-enum-value-descriptions"))
}

func TestSelfReferencingObject(t *testing.T) {
	res := mustConvert(t, minimalDoc(`"definitions": {
    "Node": {"type": "object", "properties": {"next": {"$ref": "#/definitions/Node"}, "kids": {"type": "array", "items": {"$ref": "#/definitions/Node"}}}}
  }`))
	node := testutil.FindType(res.Service, "Node")
	require.NotNil(t, node)
	assert.Equal(t, "Node", testutil.FindProperty(node, "next").TypeName.Value)
	assert.True(t, testutil.FindProperty(node, "kids").IsArray)
}

func TestFatalErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		sentinel error
	}{
		{
			"circular reference",
			`"definitions": {"A": {"$ref": "#/definitions/B"}, "B": {"$ref": "#/definitions/A"},
			 "Holder": {"type": "object", "properties": {"a": {"$ref": "#/definitions/A"}}}}`,
			oaserrors.ErrCircularReference,
		},
		{
			"dangling reference",
			`"definitions": {"Holder": {"type": "object", "properties": {"a": {"$ref": "#/definitions/Missing"}}}}`,
			oaserrors.ErrReference,
		},
		{
			"external reference",
			`"definitions": {"Holder": {"type": "object", "properties": {"a": {"$ref": "other.json#/definitions/A"}}}}`,
			oaserrors.ErrReference,
		},
		{
			"allOf includes itself",
			`"definitions": {"A": {"allOf": [{"$ref": "#/definitions/A"}]}}`,
			oaserrors.ErrCircularReference,
		},
		{
			"array without items",
			`"definitions": {"Holder": {"type": "object", "properties": {"list": {"type": "array"}}}}`,
			oaserrors.ErrShape,
		},
		{
			"unknown parameter location",
			`"paths": {"/x": {"get": {"parameters": [{"name": "c", "in": "cookie", "type": "string"}], "responses": {}}}}`,
			oaserrors.ErrShape,
		},
		{
			"body parameter without schema",
			`"paths": {"/x": {"post": {"parameters": [{"name": "b", "in": "body"}], "responses": {}}}}`,
			oaserrors.ErrShape,
		},
		{
			"dangling parameter reference",
			`"paths": {"/x": {"get": {"parameters": [{"$ref": "#/parameters/nope"}], "responses": {}}}}`,
			oaserrors.ErrReference,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := New().ParseBytes([]byte(minimalDoc(tt.body)))
			require.Error(t, err)
			assert.Nil(t, res)
			assert.True(t, errors.Is(err, tt.sentinel), "got %v", err)
		})
	}
}

func TestCircularReferenceCarriesPosition(t *testing.T) {
	doc := "swagger: \"2.0\"\ninfo:\n  title: x\n  version: 1.0.0\ndefinitions:\n  Holder:\n    type: object\n    properties:\n      a:\n        $ref: \"#/definitions/A\"\n  A:\n    $ref: \"#/definitions/A\"\n"
	_, err := New().ParseBytes([]byte(doc))
	var refErr *oaserrors.ReferenceError
	require.True(t, errors.As(err, &refErr))
	assert.True(t, refErr.IsCircular)
	assert.Equal(t, 10, refErr.Line)
}
