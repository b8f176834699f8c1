package mcpserver

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/oas2ir/internal/testutil"
	"github.com/erraggy/oas2ir/ir"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const widgetSpec = `swagger: "2.0"
info:
  title: Widget API
  version: "3.4.0"
paths:
  /widgets:
    get:
      operationId: listWidgets
      responses:
        "200":
          description: OK
          schema:
            type: array
            items:
              $ref: "#/definitions/Widget"
definitions:
  Widget:
    type: object
    properties:
      name:
        type: string
`

func TestConvertTool_Content(t *testing.T) {
	results.clear()
	input := convertInput{Spec: specInput{Content: widgetSpec}}
	result, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result)

	assert.Equal(t, "WidgetAPI", output.Title)
	assert.Equal(t, 3, output.MajorVersion)
	assert.Equal(t, "yaml", output.Format)
	assert.Empty(t, output.SourcePath)
	assert.Equal(t, 1, output.InterfaceCount)
	assert.Equal(t, 1, output.MethodCount)
	assert.Equal(t, 1, output.TypeCount)
	assert.Equal(t, 0, output.EnumCount)
	assert.Equal(t, 0, output.ViolationCount)
	assert.Empty(t, output.Violations)
	assert.Empty(t, output.WrittenTo)

	var svc map[string]any
	require.NoError(t, json.Unmarshal([]byte(output.IR), &svc))
	assert.Equal(t, ir.Version, svc["basketry"])
	types, ok := svc["types"].([]any)
	require.True(t, ok)
	require.Len(t, types, 1)
	assert.Equal(t, "Widget", types[0].(map[string]any)["name"].(map[string]any)["value"])
}

func TestConvertTool_FileWithViolations(t *testing.T) {
	results.clear()
	input := convertInput{Spec: specInput{File: testutil.FixturePath(t, testutil.PetstoreJSON)}}
	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, "SwaggerPetstore", output.Title)
	assert.Equal(t, 1, output.MajorVersion)
	assert.Equal(t, "json", output.Format)
	assert.Contains(t, output.SourcePath, "petstore.oas2.json")
	assert.Equal(t, 2, output.InterfaceCount)
	assert.Equal(t, 6, output.MethodCount)
	assert.Equal(t, 7, output.TypeCount)
	assert.Equal(t, 5, output.EnumCount)
	assert.Equal(t, 2, output.ViolationCount)

	require.Len(t, output.Violations, 2)
	assert.Equal(t, "swagger-2/codegen-enum-description", output.Violations[0].Code)
	assert.Equal(t, "swagger-2/codegen-enum-value-descriptions", output.Violations[1].Code)
	for _, v := range output.Violations {
		assert.Equal(t, "warning", v.Severity)
		assert.Contains(t, v.Location, "petstore.oas2.json:")
		assert.NotEmpty(t, v.Message)
	}
}

func TestConvertTool_ExcludeViolations(t *testing.T) {
	results.clear()
	exclude := false
	input := convertInput{
		Spec:              specInput{File: testutil.FixturePath(t, testutil.PetstoreJSON)},
		IncludeViolations: &exclude,
	}
	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, 2, output.ViolationCount, "count is reported even when the list is omitted")
	assert.Empty(t, output.Violations)
}

func TestConvertTool_Compact(t *testing.T) {
	results.clear()
	input := convertInput{Spec: specInput{Content: widgetSpec}, Compact: true}
	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.NotContains(t, output.IR, "\n")
	assert.True(t, json.Valid([]byte(output.IR)))
}

func TestConvertTool_OutputFile(t *testing.T) {
	results.clear()
	outPath := filepath.Join(t.TempDir(), "widgets.ir.json")

	input := convertInput{Spec: specInput{Content: widgetSpec}, Output: outPath}
	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, outPath, output.WrittenTo)
	assert.Empty(t, output.IR, "IR should not be inline when written to file")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"listWidgets"`)
}

func TestConvertTool_OutputFileError(t *testing.T) {
	results.clear()
	input := convertInput{
		Spec:   specInput{Content: widgetSpec},
		Output: filepath.Join(t.TempDir(), "missing", "dir", "out.json"),
	}
	result, _, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestConvertTool_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input convertInput
		want  string
	}{
		{"no input", convertInput{}, "exactly one of file or content"},
		{"missing info", convertInput{Spec: specInput{Content: `{"swagger": "2.0"}`}}, "info"},
		{"unresolved ref", convertInput{Spec: specInput{Content: `swagger: "2.0"
info: {title: t, version: "1.0"}
paths:
  /a:
    get:
      responses:
        "200":
          description: ok
          schema: {$ref: "#/definitions/Nope"}
`}}, "Nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results.clear()
			result, _, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
			require.Len(t, result.Content, 1)
			text, ok := result.Content[0].(*mcp.TextContent)
			require.True(t, ok)
			assert.Contains(t, text.Text, tt.want)
		})
	}
}
