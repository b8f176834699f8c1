package oas2

import (
	"errors"
	"testing"

	"github.com/erraggy/oas2ir/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resolveDoc = `{
  "definitions": {
    "Pet": {"type": "object", "properties": {"name": {"type": "string"}}},
    "Alias": {"$ref": "#/definitions/Pet"},
    "LoopA": {"$ref": "#/definitions/LoopB"},
    "LoopB": {"$ref": "#/definitions/LoopA"},
    "a/b": {"type": "string"}
  },
  "parameters": {
    "limit": {"in": "query", "name": "limit", "type": "integer"},
    "body": {"in": "body", "name": "pet", "schema": {"$ref": "#/definitions/Pet"}},
    "broken": {"in": "query", "name": "q"}
  },
  "responses": {
    "NotFound": {"description": "missing"}
  },
  "scalar": 5
}`

func refTo(t *testing.T, ptr string) *Ref {
	t.Helper()
	el := ClassifySchema(mustParse(t, `{"$ref": "`+ptr+`"}`))
	ref, ok := el.(*Ref)
	require.True(t, ok)
	return ref
}

func TestResolvePointer(t *testing.T) {
	root := mustParse(t, resolveDoc)

	n, m, err := ResolvePointer(root, "#/definitions/Pet")
	require.NoError(t, err)
	assert.True(t, n.IsObject())
	assert.Equal(t, "Pet", m.Name())

	n, m, err = ResolvePointer(root, "#")
	require.NoError(t, err)
	assert.Same(t, root, n)
	assert.Nil(t, m)

	n, _, err = ResolvePointer(root, "#/definitions/a~1b")
	require.NoError(t, err)
	assert.True(t, n.IsObject())
}

func TestResolvePointerErrors(t *testing.T) {
	root := mustParse(t, resolveDoc)

	tests := []struct {
		name    string
		ref     string
		refType string
	}{
		{"missing segment", "#/definitions/Nope", "local"},
		{"through scalar", "#/scalar/x", "local"},
		{"file", "other.json#/definitions/Pet", "file"},
		{"http", "https://example.com/api.json#/definitions/Pet", "http"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ResolvePointer(root, tt.ref)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oaserrors.ErrReference))

			var refErr *oaserrors.ReferenceError
			require.True(t, errors.As(err, &refErr))
			assert.Equal(t, tt.ref, refErr.Ref)
			assert.Equal(t, tt.refType, refErr.RefType)
		})
	}
}

func TestResolveFollowsChains(t *testing.T) {
	root := mustParse(t, resolveDoc)

	target, err := Resolve(root, refTo(t, "#/definitions/Alias"))
	require.NoError(t, err)
	assert.True(t, target.Has("properties"))
}

func TestResolveCircular(t *testing.T) {
	root := mustParse(t, resolveDoc)

	_, err := Resolve(root, refTo(t, "#/definitions/LoopA"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrCircularReference))

	var refErr *oaserrors.ReferenceError
	require.True(t, errors.As(err, &refErr))
	assert.Equal(t, 1, refErr.Line, "position of the originating $ref")
}

func TestResolveParam(t *testing.T) {
	root := mustParse(t, resolveDoc)

	el, err := ResolveParam(root, refTo(t, "#/parameters/limit"))
	require.NoError(t, err)
	assert.Equal(t, NodeNumberParameter, el.NodeType())

	el, err = ResolveParam(root, refTo(t, "#/parameters/body"))
	require.NoError(t, err)
	assert.Equal(t, NodeBodyParameter, el.NodeType())

	_, err = ResolveParam(root, refTo(t, "#/parameters/broken"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrShape))

	inline := ClassifyParameter(mustParse(t, `{"in": "query", "type": "string"}`))
	el, err = ResolveParam(root, inline)
	require.NoError(t, err)
	assert.Same(t, inline, el)
}

func TestResolveSchemaAndParamOrSchema(t *testing.T) {
	root := mustParse(t, resolveDoc)

	el, err := ResolveSchema(root, refTo(t, "#/definitions/Pet"))
	require.NoError(t, err)
	assert.Equal(t, NodeObjectSchema, el.NodeType())

	el, err = ResolveParamOrSchema(root, refTo(t, "#/parameters/body"))
	require.NoError(t, err)
	assert.Equal(t, NodeBodyParameter, el.NodeType())

	el, err = ResolveParamOrSchema(root, refTo(t, "#/definitions/a~1b"))
	require.NoError(t, err)
	assert.Equal(t, NodeStringSchema, el.NodeType())

	_, err = ResolveSchema(root, refTo(t, "#/scalar"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrShape))
}

func TestRefRange(t *testing.T) {
	src := []byte(resolveDoc)
	root := mustParse(t, resolveDoc)

	r, err := RefRange(root, refTo(t, "#/definitions/Pet"))
	require.NoError(t, err)
	assert.Equal(t, `"Pet"`, r.Slice(src))

	r, err = RefRange(root, refTo(t, "#"))
	require.NoError(t, err)
	assert.Equal(t, root.Range, r)

	_, err = RefRange(root, refTo(t, "#/definitions/Nope"))
	assert.Error(t, err)
}

func TestResolveNode(t *testing.T) {
	root := mustParse(t, resolveDoc)

	plain := mustParse(t, `{"description": "ok"}`)
	n, err := ResolveNode(root, plain)
	require.NoError(t, err)
	assert.Same(t, plain, n)

	n, err = ResolveNode(root, mustParse(t, `{"$ref": "#/responses/NotFound"}`))
	require.NoError(t, err)
	assert.Equal(t, "missing", NewResponse(n).Description().Value)
}
