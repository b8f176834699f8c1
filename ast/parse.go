package ast

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.yaml.in/yaml/v4"
)

// ErrEmptyDocument is returned by Parse when the input holds no document.
var ErrEmptyDocument = errors.New("empty document")

// ErrNodeBudget is returned by Parse when building the tree would create
// more nodes than [NodeBudget] allows for the input size.
var ErrNodeBudget = errors.New("node budget exceeded")

// maxAliasDepth bounds alias expansion so a self-referencing anchor cannot
// recurse forever.
const maxAliasDepth = 64

const (
	minNodeBudget     = 10_000
	nodesPerInputByte = 16
)

// NodeBudget is the most nodes Parse builds for an input of size bytes.
// Without aliases a document cannot come near it; alias chains that expand
// exponentially hit it quickly.
func NodeBudget(size int) int {
	return max(minNodeBudget, size*nodesPerInputByte)
}

// Parse decodes JSON or YAML into a located tree. The first document of a
// multi-document YAML stream is used.
func Parse(data []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("syntax error: %w", err)
	}
	if doc.Kind == 0 {
		return nil, ErrEmptyDocument
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, ErrEmptyDocument
		}
		root = root.Content[0]
	}

	b := newBuilder(data)
	return b.build(root, 0)
}

// builder converts yaml nodes into ast nodes, recovering end positions from
// the source text.
type builder struct {
	src        []byte
	lineStarts []int
	nodes      int
	budget     int
}

func newBuilder(src []byte) *builder {
	starts := []int{0}
	for i, c := range src {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &builder{src: src, lineStarts: starts, budget: NodeBudget(len(src))}
}

// offsetOf converts a 1-based line and rune column into a byte offset.
func (b *builder) offsetOf(line, col int) int {
	if line < 1 {
		return 0
	}
	if line > len(b.lineStarts) {
		return len(b.src)
	}
	off := b.lineStarts[line-1]
	for i := 1; i < col && off < len(b.src); i++ {
		if b.src[off] == '\n' {
			break
		}
		_, size := utf8.DecodeRune(b.src[off:])
		off += size
	}
	return off
}

// posAt converts a byte offset into a full position.
func (b *builder) posAt(off int) Position {
	if off > len(b.src) {
		off = len(b.src)
	}
	line := sort.Search(len(b.lineStarts), func(i int) bool { return b.lineStarts[i] > off }) - 1
	if line < 0 {
		line = 0
	}
	start := b.lineStarts[line]
	return Position{
		Line:   line + 1,
		Column: utf8.RuneCount(b.src[start:off]) + 1,
		Offset: off,
	}
}

func (b *builder) startOf(n *yaml.Node) Position {
	off := b.offsetOf(n.Line, n.Column)
	return Position{Line: n.Line, Column: n.Column, Offset: off}
}

func (b *builder) build(n *yaml.Node, depth int) (*Node, error) {
	b.nodes++
	if b.nodes > b.budget {
		return nil, fmt.Errorf("%w: more than %d nodes at %d:%d", ErrNodeBudget, b.budget, n.Line, n.Column)
	}
	switch n.Kind {
	case yaml.MappingNode:
		return b.buildMapping(n, depth)
	case yaml.SequenceNode:
		return b.buildSequence(n, depth)
	case yaml.ScalarNode:
		return b.buildScalar(n)
	case yaml.AliasNode:
		return b.buildAlias(n, depth)
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, ErrEmptyDocument
		}
		return b.build(n.Content[0], depth)
	default:
		return nil, fmt.Errorf("unsupported node kind %d at %d:%d", n.Kind, n.Line, n.Column)
	}
}

func (b *builder) buildMapping(n *yaml.Node, depth int) (*Node, error) {
	out := &Node{Kind: KindObject, Members: make([]*Member, 0, len(n.Content)/2)}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("unsupported non-scalar mapping key at %d:%d", k.Line, k.Column)
		}
		key := &Node{Kind: KindLiteral, Raw: k.Value, Value: k.Value, Range: b.scalarRange(k)}
		val, err := b.build(v, depth)
		if err != nil {
			return nil, err
		}
		out.Members = append(out.Members, &Member{Key: key, Value: val})
	}

	start := b.startOf(n)
	var last Position
	if len(out.Members) > 0 {
		last = out.Members[len(out.Members)-1].Value.Range.End
	}
	out.Range = b.collectionRange(n, start, last, '}')
	return out, nil
}

func (b *builder) buildSequence(n *yaml.Node, depth int) (*Node, error) {
	out := &Node{Kind: KindArray, Items: make([]*Node, 0, len(n.Content))}
	for _, c := range n.Content {
		item, err := b.build(c, depth)
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, item)
	}

	start := b.startOf(n)
	var last Position
	if len(out.Items) > 0 {
		last = out.Items[len(out.Items)-1].Range.End
	}
	out.Range = b.collectionRange(n, start, last, ']')
	return out, nil
}

// collectionRange computes the span of a mapping or sequence. Flow
// collections end after their closing bracket; block collections end where
// their last child ends.
func (b *builder) collectionRange(n *yaml.Node, start, last Position, closer byte) Range {
	if n.Style&yaml.FlowStyle == 0 {
		if !last.IsKnown() {
			return Range{Start: start, End: start}
		}
		return Range{Start: start, End: last}
	}
	from := start.Offset + 1
	if last.IsKnown() {
		from = last.Offset
	}
	end := b.scanCloser(from, closer)
	return Range{Start: start, End: b.posAt(end)}
}

// scanCloser finds the closing bracket after the last child of a flow
// collection, skipping whitespace, commas and comments. It returns the offset
// just past the bracket.
func (b *builder) scanCloser(from int, closer byte) int {
	for i := from; i < len(b.src); i++ {
		switch b.src[i] {
		case closer:
			return i + 1
		case '#':
			for i < len(b.src) && b.src[i] != '\n' {
				i++
			}
		}
	}
	return len(b.src)
}

func (b *builder) buildScalar(n *yaml.Node) (*Node, error) {
	out := &Node{Kind: KindLiteral, Raw: n.Value, Range: b.scalarRange(n)}
	switch n.ShortTag() {
	case "!!null":
		out.Value = nil
	case "!!bool":
		v, err := parseBool(n.Value)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean %q at %d:%d: %w", n.Value, n.Line, n.Column, err)
		}
		out.Value = v
	case "!!int", "!!float":
		v, err := parseNumber(n.Value)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q at %d:%d: %w", n.Value, n.Line, n.Column, err)
		}
		out.Value = v
	default:
		out.Value = n.Value
	}
	return out, nil
}

func (b *builder) buildAlias(n *yaml.Node, depth int) (*Node, error) {
	if n.Alias == nil {
		return nil, fmt.Errorf("unresolved alias %q at %d:%d", n.Value, n.Line, n.Column)
	}
	if depth >= maxAliasDepth {
		return nil, fmt.Errorf("alias %q at %d:%d exceeds maximum expansion depth %d", n.Value, n.Line, n.Column, maxAliasDepth)
	}
	out, err := b.build(n.Alias, depth+1)
	if err != nil {
		return nil, err
	}
	// The expanded subtree keeps the anchor's locations; the alias itself
	// spans only the "*name" token.
	start := b.startOf(n)
	aliased := *out
	aliased.Range = Range{Start: start, End: b.posAt(start.Offset + 1 + len(n.Value))}
	return &aliased, nil
}

// scalarRange recovers the span of a scalar from its start position and the
// source text.
func (b *builder) scalarRange(n *yaml.Node) Range {
	start := b.startOf(n)
	var end int
	switch {
	case n.Style&yaml.DoubleQuotedStyle != 0:
		end = b.scanQuoted(start.Offset, '"')
	case n.Style&yaml.SingleQuotedStyle != 0:
		end = b.scanQuoted(start.Offset, '\'')
	case n.Style&(yaml.LiteralStyle|yaml.FoldedStyle) != 0:
		end = b.scanBlockScalar(start.Offset)
	default:
		end = b.scanPlain(start.Offset, n.Value)
	}
	return Range{Start: start, End: b.posAt(end)}
}

// scanQuoted returns the offset just past the closing quote of a quoted
// scalar starting at off.
func (b *builder) scanQuoted(off int, quote byte) int {
	if off >= len(b.src) || b.src[off] != quote {
		return off
	}
	for i := off + 1; i < len(b.src); i++ {
		c := b.src[i]
		switch {
		case quote == '"' && c == '\\':
			i++
		case c == quote:
			if quote == '\'' && i+1 < len(b.src) && b.src[i+1] == '\'' {
				i++
				continue
			}
			return i + 1
		}
	}
	return len(b.src)
}

// scanPlain returns the end offset of a plain scalar. Single-line scalars
// match their value exactly; anything else runs to the end of the line,
// minus trailing comments and whitespace.
func (b *builder) scanPlain(off int, value string) int {
	if off > len(b.src) {
		return len(b.src)
	}
	if strings.HasPrefix(string(b.src[off:min(len(b.src), off+len(value))]), value) {
		return off + len(value)
	}
	end := off
	for end < len(b.src) && b.src[end] != '\n' {
		if b.src[end] == '#' && end > off && (b.src[end-1] == ' ' || b.src[end-1] == '\t') {
			break
		}
		end++
	}
	for end > off && (b.src[end-1] == ' ' || b.src[end-1] == '\t' || b.src[end-1] == '\r') {
		end--
	}
	return end
}

// scanBlockScalar approximates the end of a literal or folded block scalar
// as the end of the last non-blank line indented deeper than the line holding
// the indicator.
func (b *builder) scanBlockScalar(off int) int {
	headerLine := b.posAt(off).Line
	baseIndent := b.indentOf(headerLine)
	end := b.lineEnd(headerLine)
	for line := headerLine + 1; line <= len(b.lineStarts); line++ {
		if b.isBlankLine(line) {
			continue
		}
		if b.indentOf(line) <= baseIndent {
			break
		}
		end = b.lineEnd(line)
	}
	return end
}

func (b *builder) indentOf(line int) int {
	i := b.lineStarts[line-1]
	n := 0
	for i < len(b.src) && b.src[i] == ' ' {
		i++
		n++
	}
	return n
}

func (b *builder) isBlankLine(line int) bool {
	for i := b.lineStarts[line-1]; i < len(b.src) && b.src[i] != '\n'; i++ {
		if b.src[i] != ' ' && b.src[i] != '\t' && b.src[i] != '\r' {
			return false
		}
	}
	return true
}

func (b *builder) lineEnd(line int) int {
	i := b.lineStarts[line-1]
	for i < len(b.src) && b.src[i] != '\n' {
		i++
	}
	if i > b.lineStarts[line-1] && b.src[i-1] == '\r' {
		i--
	}
	return i
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, strconv.ErrSyntax
}

// parseNumber accepts the YAML 1.2 core schema forms of integers and floats.
func parseNumber(s string) (float64, error) {
	plain := strings.ReplaceAll(s, "_", "")
	switch strings.ToLower(plain) {
	case ".inf", "+.inf":
		return math.Inf(1), nil
	case "-.inf":
		return math.Inf(-1), nil
	case ".nan":
		return math.NaN(), nil
	}
	if i, err := strconv.ParseInt(plain, 0, 64); err == nil {
		return float64(i), nil
	}
	if u, err := strconv.ParseUint(plain, 0, 64); err == nil {
		return float64(u), nil
	}
	return strconv.ParseFloat(plain, 64)
}
