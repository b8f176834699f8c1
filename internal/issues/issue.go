// Package issues provides the located violation record reported alongside a
// converted document, and a collector that accumulates them for one run.
package issues

import (
	"fmt"

	"github.com/erraggy/oas2ir/ast"
	"github.com/erraggy/oas2ir/internal/severity"
)

// Issue represents a single non-fatal problem found during conversion.
type Issue struct {
	// Code identifies the check that produced the issue (e.g., "swagger-2/codegen-enum-description")
	Code string `json:"code"`
	// Message is a human-readable description of the issue
	Message string `json:"message"`
	// Severity indicates the severity level of the issue
	Severity severity.Severity `json:"severity"`
	// Range locates the offending node in the source document
	Range ast.Range `json:"range"`
	// SourcePath is the path of the document the range refers to
	SourcePath string `json:"sourcePath"`
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	return fmt.Sprintf("%s %s [%s]: %s", symbol, i.Location(), i.Code, i.Message)
}

// Location returns the source location in IDE-friendly format.
// Returns "file:line:column" if file is set, "line:column" if only the range
// is set, or the bare source path if location is unknown.
func (i Issue) Location() string {
	if !i.HasLocation() {
		return i.SourcePath
	}
	if i.SourcePath != "" {
		return fmt.Sprintf("%s:%d:%d", i.SourcePath, i.Range.Start.Line, i.Range.Start.Column)
	}
	return fmt.Sprintf("%d:%d", i.Range.Start.Line, i.Range.Start.Column)
}

// HasLocation returns true if this issue has source location information.
func (i Issue) HasLocation() bool {
	return !i.Range.IsZero()
}

// Collector accumulates issues for a single run. Identical issues are
// recorded once; insertion order is preserved. The zero value is ready to use.
type Collector struct {
	items []Issue
	seen  map[Issue]struct{}
}

// Add records an issue unless an identical one was already recorded.
// It reports whether the issue was new.
func (c *Collector) Add(issue Issue) bool {
	if c.seen == nil {
		c.seen = make(map[Issue]struct{})
	}
	if _, ok := c.seen[issue]; ok {
		return false
	}
	c.seen[issue] = struct{}{}
	c.items = append(c.items, issue)
	return true
}

// Items returns the recorded issues in insertion order.
func (c *Collector) Items() []Issue {
	out := make([]Issue, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of recorded issues.
func (c *Collector) Len() int {
	return len(c.items)
}

// Count returns the number of recorded issues with the given severity.
func (c *Collector) Count(s severity.Severity) int {
	n := 0
	for _, item := range c.items {
		if item.Severity == s {
			n++
		}
	}
	return n
}
