package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/erraggy/oas2ir/internal/fileutil"
	"github.com/erraggy/oas2ir/internal/pathutil"
	"github.com/erraggy/oas2ir/parser"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertInput struct {
	Spec              specInput `json:"spec"                         jsonschema:"The OpenAPI 2.0 document to convert"`
	IncludeViolations *bool     `json:"include_violations,omitempty" jsonschema:"List the violations found during conversion. Defaults to OAS2IR_MCP_INCLUDE_VIOLATIONS (true)."`
	Compact           bool      `json:"compact,omitempty"            jsonschema:"Emit the IR without indentation"`
	Output            string    `json:"output,omitempty"             jsonschema:"File path to write the IR JSON. If omitted the IR is returned inline."`
}

type convertViolation struct {
	Code     string `json:"code"`
	Severity string `json:"severity"`
	Location string `json:"location,omitempty"`
	Message  string `json:"message"`
}

type convertOutput struct {
	Title          string             `json:"title"`
	MajorVersion   int                `json:"major_version"`
	SourcePath     string             `json:"source_path,omitempty"`
	Format         string             `json:"format"`
	InterfaceCount int                `json:"interface_count"`
	MethodCount    int                `json:"method_count"`
	TypeCount      int                `json:"type_count"`
	EnumCount      int                `json:"enum_count"`
	ViolationCount int                `json:"violation_count"`
	Violations     []convertViolation `json:"violations,omitempty"`
	WrittenTo      string             `json:"written_to,omitempty"`
	IR             string             `json:"ir,omitempty"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	result, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	output := summarize(result)

	includeViolations := cfg.IncludeViolations
	if input.IncludeViolations != nil {
		includeViolations = *input.IncludeViolations
	}
	if includeViolations {
		output.Violations = makeSlice[convertViolation](len(result.Violations))
		for _, v := range result.Violations {
			output.Violations = append(output.Violations, convertViolation{
				Code:     v.Code,
				Severity: v.Severity.String(),
				Location: v.Location(),
				Message:  v.Message,
			})
		}
	}

	var data []byte
	if input.Compact {
		data, err = json.Marshal(result.Service)
	} else {
		data, err = json.MarshalIndent(result.Service, "", "  ")
	}
	if err != nil {
		return errResult(fmt.Errorf("failed to encode IR: %w", err)), convertOutput{}, nil
	}

	if input.Output != "" {
		cleaned, err := pathutil.SanitizeOutputPath(input.Output)
		if err != nil {
			return errResult(err), convertOutput{}, nil
		}
		if err := os.WriteFile(cleaned, data, fileutil.OwnerReadWrite); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), convertOutput{}, nil
		}
		output.WrittenTo = input.Output
	} else {
		output.IR = string(data)
	}

	return nil, output, nil
}

// summarize counts the top-level IR collections of a conversion result.
func summarize(result *parser.Result) convertOutput {
	svc := result.Service
	out := convertOutput{
		Title:          svc.Title.Value,
		MajorVersion:   svc.MajorVersion.Value,
		SourcePath:     result.SourcePath,
		Format:         string(result.SourceFormat),
		InterfaceCount: len(svc.Interfaces),
		TypeCount:      len(svc.Types),
		EnumCount:      len(svc.Enums),
		ViolationCount: len(result.Violations),
	}
	for _, iface := range svc.Interfaces {
		out.MethodCount += len(iface.Methods)
	}
	return out
}
