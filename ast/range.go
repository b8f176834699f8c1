package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Position is a point in the source text.
// Line and Column are 1-based (matching editor conventions) and Column counts
// runes. Offset is the 0-based byte offset. A zero Line means unknown.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"offset"`
}

// IsKnown returns true if this position has valid line information.
func (p Position) IsKnown() bool {
	return p.Line > 0
}

// String returns "line:column" or "<unknown>".
func (p Position) String() string {
	if !p.IsKnown() {
		return "<unknown>"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Range is the half-open span [Start, End) of a node in the source text.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// IsZero reports whether the range carries no location.
func (r Range) IsZero() bool {
	return !r.Start.IsKnown()
}

// Through returns the range from the start of r to the end of other.
func (r Range) Through(other Range) Range {
	return Range{Start: r.Start, End: other.End}
}

// Slice returns the source text covered by r. It returns "" when r is zero or
// falls outside src.
func (r Range) Slice(src []byte) string {
	if r.IsZero() || r.Start.Offset < 0 || r.End.Offset > len(src) || r.Start.Offset > r.End.Offset {
		return ""
	}
	return string(src[r.Start.Offset:r.End.Offset])
}

// Encode serializes r into a "loc" string of six semicolon-separated integers:
// start line, start column, start offset, end line, end column, end offset.
// A zero range encodes to "".
func (r Range) Encode() string {
	if r.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d;%d;%d;%d;%d;%d",
		r.Start.Line, r.Start.Column, r.Start.Offset,
		r.End.Line, r.End.Column, r.End.Offset)
}

// DecodeRange parses a string produced by Range.Encode. The empty string
// decodes to the zero range.
func DecodeRange(s string) (Range, error) {
	if s == "" {
		return Range{}, nil
	}
	parts := strings.Split(s, ";")
	if len(parts) != 6 {
		return Range{}, fmt.Errorf("invalid range %q: expected 6 fields, got %d", s, len(parts))
	}
	n := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return Range{}, fmt.Errorf("invalid range %q: field %d is not a non-negative integer", s, i+1)
		}
		n[i] = v
	}
	return Range{
		Start: Position{Line: n[0], Column: n[1], Offset: n[2]},
		End:   Position{Line: n[3], Column: n[4], Offset: n[5]},
	}, nil
}
