package issues

import (
	"testing"

	"github.com/erraggy/oas2ir/ast"
	"github.com/erraggy/oas2ir/internal/severity"
	"github.com/stretchr/testify/assert"
)

func sampleRange() ast.Range {
	return ast.Range{
		Start: ast.Position{Line: 12, Column: 7, Offset: 200},
		End:   ast.Position{Line: 12, Column: 20, Offset: 213},
	}
}

func TestIssueString(t *testing.T) {
	tests := []struct {
		name     string
		issue    Issue
		contains []string
	}{
		{
			name: "warning with location",
			issue: Issue{
				Code:       "swagger-2/codegen-enum-description",
				Message:    "codegen-enum-description must be a string if provided.",
				Severity:   severity.SeverityWarning,
				Range:      sampleRange(),
				SourcePath: "petstore.json",
			},
			contains: []string{"⚠", "petstore.json:12:7", "[swagger-2/codegen-enum-description]", "must be a string"},
		},
		{
			name: "error without source path",
			issue: Issue{
				Code:     "x",
				Message:  "broken",
				Severity: severity.SeverityError,
				Range:    sampleRange(),
			},
			contains: []string{"✗", "12:7", "broken"},
		},
		{
			name: "info without location",
			issue: Issue{
				Code:       "x",
				Message:    "note",
				Severity:   severity.SeverityInfo,
				SourcePath: "api.yaml",
			},
			contains: []string{"ℹ", "api.yaml [x]: note"},
		},
		{
			name:     "unknown severity",
			issue:    Issue{Code: "x", Message: "odd", Severity: severity.Severity(999)},
			contains: []string{"?", "odd"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.issue.String()
			for _, substr := range tt.contains {
				assert.Contains(t, result, substr, "String() output should contain %q", substr)
			}
		})
	}
}

func TestIssueLocation(t *testing.T) {
	assert.False(t, Issue{}.HasLocation())
	assert.Equal(t, "", Issue{}.Location())
	assert.True(t, Issue{Range: sampleRange()}.HasLocation())
	assert.Equal(t, "12:7", Issue{Range: sampleRange()}.Location())
}

func TestCollector(t *testing.T) {
	var c Collector
	first := Issue{Code: "a", Message: "one", Severity: severity.SeverityWarning, Range: sampleRange()}
	second := Issue{Code: "b", Message: "two", Severity: severity.SeverityError}

	assert.True(t, c.Add(first))
	assert.True(t, c.Add(second))
	assert.False(t, c.Add(first), "identical issue should be recorded once")

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []Issue{first, second}, c.Items())
	assert.Equal(t, 1, c.Count(severity.SeverityWarning))
	assert.Equal(t, 1, c.Count(severity.SeverityError))
	assert.Equal(t, 0, c.Count(severity.SeverityInfo))

	items := c.Items()
	items[0].Code = "mutated"
	assert.Equal(t, "a", c.Items()[0].Code, "Items must return a copy")
}

func TestCollectorZeroValue(t *testing.T) {
	var c Collector
	assert.Empty(t, c.Items())
	assert.Equal(t, 0, c.Len())
}
