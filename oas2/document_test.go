package oas2

import (
	"errors"
	"testing"

	"github.com/erraggy/oas2ir/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petstore = `{
  "swagger": "2.0",
  "info": {"title": "Pet Store", "version": "1.0.0"},
  "security": [{"api_key": []}],
  "securityDefinitions": {
    "api_key": {"type": "apiKey", "name": "X-API-Key", "in": "header"},
    "basic": {"type": "basic"},
    "oauth": {
      "type": "oauth2",
      "flow": "implicit",
      "authorizationUrl": "https://example.com/auth",
      "scopes": {"read": "read things", "write": "write things"}
    },
    "weird": {"type": "openIdConnect"}
  },
  "paths": {
    "/pets": {
      "parameters": [{"in": "header", "name": "trace", "type": "string"}],
      "x-internal": true,
      "get": {
        "operationId": "listPets",
        "tags": ["pets"],
        "security": [],
        "parameters": [{"in": "query", "name": "limit", "type": "integer"}],
        "responses": {"200": {"description": "ok", "schema": {"type": "array", "items": {"type": "string"}}}}
      },
      "post": {
        "operationId": "createPet",
        "security": [{"oauth": ["read"]}],
        "responses": {"default": {"description": "error"}}
      }
    }
  }
}`

func TestDocumentAccessors(t *testing.T) {
	doc := NewDocument(mustParse(t, petstore))

	assert.Equal(t, "2.0", doc.Swagger().Value)
	require.NotNil(t, doc.Info())
	assert.Equal(t, "Pet Store", doc.Info().Title().Value)
	assert.Equal(t, "1.0.0", doc.Info().Version().Value)
	assert.Nil(t, doc.Definitions())

	reqs, ok := doc.Security()
	require.True(t, ok)
	require.Len(t, reqs, 1)
	assert.Equal(t, []string{"api_key"}, reqs[0].Keys())
}

func TestInfoVersionFromYAMLNumber(t *testing.T) {
	doc := NewDocument(mustParse(t, "info:\n  title: x\n  version: 2.5\n"))
	assert.Equal(t, "2.5", doc.Info().Version().Value)
}

func TestPathItemAndOperation(t *testing.T) {
	doc := NewDocument(mustParse(t, petstore))

	paths := doc.Paths()
	require.NotNil(t, paths)
	assert.Equal(t, []string{"/pets"}, paths.Keys())

	item := NewPathItem(paths.Item("/pets"))
	assert.Equal(t, []string{"get", "post"}, item.Verbs())

	shared, err := item.Parameters()
	require.NoError(t, err)
	require.Len(t, shared, 1)
	assert.Equal(t, NodeStringParameter, shared[0].NodeType())

	get := item.Operation("get")
	require.NotNil(t, get)
	assert.Equal(t, "listPets", get.OperationID().Value)
	require.Len(t, get.Tags(), 1)
	assert.Equal(t, "pets", get.Tags()[0].Value)

	params, err := get.Parameters()
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, "limit", params[0].(*Parameter).Name().Value)

	sec, present := get.Security()
	assert.True(t, present)
	assert.Empty(t, sec)

	responses := get.Responses()
	require.NotNil(t, responses)
	resp := NewResponse(responses.Get("200"))
	schema, err := resp.Schema()
	require.NoError(t, err)
	assert.Equal(t, NodeArraySchema, schema.NodeType())
	assert.Equal(t, NodeStringSchema, schema.(*Schema).Items().NodeType())

	post := item.Operation("post")
	schema, err = NewResponse(post.Responses().Get("default")).Schema()
	require.NoError(t, err)
	assert.Nil(t, schema)

	assert.Nil(t, item.Operation("delete"))
}

func TestParameterListShapeError(t *testing.T) {
	item := NewPathItem(mustParse(t, `{"parameters": [{"in": "query", "name": "q"}]}`))
	_, err := item.Parameters()
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrShape))

	var shapeErr *oaserrors.ShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, "parameter", shapeErr.Expected)
	assert.Equal(t, 1, shapeErr.Line)

	item = NewPathItem(mustParse(t, `{"parameters": {"a": 1}}`))
	_, err = item.Parameters()
	assert.True(t, errors.Is(err, oaserrors.ErrShape))
}

func TestResponseSchemaShapeError(t *testing.T) {
	resp := NewResponse(mustParse(t, `{"schema": "string"}`))
	_, err := resp.Schema()
	assert.True(t, errors.Is(err, oaserrors.ErrShape))
}

func TestSecurityDefinitions(t *testing.T) {
	doc := NewDocument(mustParse(t, petstore))
	defs := doc.SecurityDefinitions()
	require.NotNil(t, defs)

	apiKey := defs.Scheme("api_key")
	require.NotNil(t, apiKey)
	assert.Equal(t, NodeAPIKeySecurityScheme, apiKey.NodeType())
	assert.Equal(t, "X-API-Key", apiKey.Name().Value)
	assert.Equal(t, "header", apiKey.In().Value)

	assert.Equal(t, NodeBasicSecurityScheme, defs.Scheme("basic").NodeType())

	oauth := defs.Scheme("oauth")
	require.NotNil(t, oauth)
	assert.Equal(t, NodeOAuth2SecurityScheme, oauth.NodeType())
	assert.Equal(t, "implicit", oauth.Flow().Value)
	assert.Equal(t, "https://example.com/auth", oauth.AuthorizationURL().Value)
	scopes := oauth.Scopes()
	require.NotNil(t, scopes)
	assert.Equal(t, []string{"read", "write"}, scopes.Keys())
	assert.Equal(t, "read things", scopes.Description("read").Value)
	assert.Nil(t, scopes.Description("admin"))

	assert.Nil(t, defs.Scheme("weird"))
	assert.Nil(t, defs.Scheme("missing"))

	var nilScopes *Scopes
	assert.Nil(t, nilScopes.Description("read"))
}

func TestSecurityRequirementScopes(t *testing.T) {
	doc := NewDocument(mustParse(t, petstore))
	post := NewPathItem(doc.Paths().Item("/pets")).Operation("post")

	reqs, present := post.Security()
	require.True(t, present)
	require.Len(t, reqs, 1)

	scopes, ok := reqs[0].Scopes("oauth")
	require.True(t, ok)
	require.Len(t, scopes, 1)
	assert.Equal(t, "read", scopes[0].Value)

	_, ok = reqs[0].Scopes("missing")
	assert.False(t, ok)
}

func TestIsVerb(t *testing.T) {
	assert.True(t, IsVerb("get"))
	assert.True(t, IsVerb("patch"))
	assert.False(t, IsVerb("parameters"))
	assert.False(t, IsVerb("x-foo"))
}
