package parser

import (
	"github.com/erraggy/oas2ir/ast"
	"github.com/erraggy/oas2ir/internal/issues"
	"github.com/erraggy/oas2ir/ir"
	"github.com/erraggy/oas2ir/oas2"
	"github.com/erraggy/oas2ir/oaserrors"
)

// runContext holds all mutable state of one conversion. Nothing in it is
// shared between runs.
type runContext struct {
	root       *ast.Node
	doc        *oas2.Document
	sourcePath string
	log        Logger

	collisionDiagnostics bool

	// anonymous types and enums in registration order, with duplicates
	types  []*ir.Type
	enums  []*ir.Enum
	issues issues.Collector
}

func newRunContext(root *ast.Node, sourcePath string, log Logger, collisionDiagnostics bool) *runContext {
	return &runContext{
		root:                 root,
		doc:                  oas2.NewDocument(root),
		sourcePath:           sourcePath,
		log:                  log,
		collisionDiagnostics: collisionDiagnostics,
	}
}

func (c *runContext) registerType(t *ir.Type) {
	c.log.Debug("registered anonymous type", "name", t.Name.Value, "properties", len(t.Properties))
	c.types = append(c.types, t)
}

func (c *runContext) registerEnum(e *ir.Enum) {
	c.log.Debug("registered enum", "name", e.Name.Value, "values", len(e.Values))
	c.enums = append(c.enums, e)
}

func (c *runContext) warn(code, message string, r ast.Range) {
	c.issues.Add(ir.Violation{
		Code:       code,
		Message:    message,
		Severity:   ir.SeverityWarning,
		Range:      r,
		SourcePath: c.sourcePath,
	})
}

// lit converts a document literal to an IR literal. A nil literal yields the
// zero value.
func lit[T any](l *oas2.Literal[T]) ir.Literal[T] {
	if l == nil {
		return ir.Literal[T]{}
	}
	return ir.Lit(l.Value, l.Range())
}

// optLit is lit for optional fields: nil stays nil.
func optLit[T any](l *oas2.Literal[T]) *ir.Literal[T] {
	if l == nil {
		return nil
	}
	return ir.LitPtr(l.Value, l.Range())
}

func litValues(ls []oas2.Literal[string]) []ir.Literal[string] {
	out := make([]ir.Literal[string], len(ls))
	for i := range ls {
		out[i] = lit(&ls[i])
	}
	return out
}

func shapeError(n *ast.Node, expected, msg string) error {
	e := &oaserrors.ShapeError{Expected: expected, Message: msg}
	if n != nil {
		e.Line = n.Range.Start.Line
		e.Column = n.Range.Start.Column
	}
	return e
}
