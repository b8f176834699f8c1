package oas2

import (
	"fmt"

	"github.com/erraggy/oas2ir/ast"
	"github.com/erraggy/oas2ir/internal/pathutil"
	"github.com/erraggy/oas2ir/oaserrors"
)

// ResolvePointer walks a local "#/a/b/c" pointer from root by member lookup.
// Every intermediate node must be an object and every segment must exist.
// The returned member is the last one visited, or nil for "#".
func ResolvePointer(root *ast.Node, ref string) (*ast.Node, *ast.Member, error) {
	if !pathutil.IsLocal(ref) {
		return nil, nil, &oaserrors.ReferenceError{
			Ref:     ref,
			RefType: pathutil.RefType(ref),
			Message: "only local references are supported",
		}
	}
	node := root
	var member *ast.Member
	for _, token := range pathutil.SplitPointer(ref) {
		if !node.IsObject() {
			return nil, nil, &oaserrors.ReferenceError{
				Ref:     ref,
				RefType: pathutil.RefTypeLocal,
				Message: fmt.Sprintf("cannot look up %q in a non-object", token),
			}
		}
		member = node.Member(token)
		if member == nil {
			return nil, nil, &oaserrors.ReferenceError{
				Ref:     ref,
				RefType: pathutil.RefTypeLocal,
				Message: fmt.Sprintf("segment %q not found", token),
			}
		}
		node = member.Value
	}
	return node, member, nil
}

// Resolve follows ref, and any chain of references its target forms, to the
// first node that is not itself a reference. A chain that revisits a pointer
// is a circular ReferenceError.
func Resolve(root *ast.Node, ref *Ref) (*ast.Node, error) {
	seen := make(map[string]bool)
	cur := ref
	for {
		ptr := cur.Value()
		if seen[ptr] {
			return nil, withPosition(&oaserrors.ReferenceError{
				Ref:        ref.Value(),
				RefType:    pathutil.RefTypeLocal,
				IsCircular: true,
				Message:    "reference chain loops back to " + ptr,
			}, ref)
		}
		seen[ptr] = true

		target, _, err := ResolvePointer(root, ptr)
		if err != nil {
			return nil, withPosition(err, cur)
		}
		if !IsRef(target) {
			return target, nil
		}
		cur = &Ref{base{target}}
	}
}

// RefRange returns the span of the key that the pointer's last segment
// names. A pointer of "#" spans the whole document.
func RefRange(root *ast.Node, ref *Ref) (ast.Range, error) {
	_, member, err := ResolvePointer(root, ref.Value())
	if err != nil {
		return ast.Range{}, withPosition(err, ref)
	}
	if member == nil {
		return root.Range, nil
	}
	return member.Key.Range, nil
}

// ResolveParam returns el unchanged unless it is a *Ref, in which case the
// target is classified as a parameter. A target that is not a recognizable
// parameter is a ShapeError.
func ResolveParam(root *ast.Node, el Element) (Element, error) {
	return resolveAs(root, el, "parameter", ClassifyParameter)
}

// ResolveSchema returns el unchanged unless it is a *Ref, in which case the
// target is classified as a schema.
func ResolveSchema(root *ast.Node, el Element) (Element, error) {
	return resolveAs(root, el, "schema", ClassifySchema)
}

// ResolveParamOrSchema returns el unchanged unless it is a *Ref, in which case
// the target is classified as a parameter when it has an "in" member and as a
// schema otherwise.
func ResolveParamOrSchema(root *ast.Node, el Element) (Element, error) {
	return resolveAs(root, el, "parameter or schema", ClassifyParamOrSchema)
}

// ResolveNode returns n, or the node its reference chain ends at when n is a
// reference. It is used for response and path item references.
func ResolveNode(root *ast.Node, n *ast.Node) (*ast.Node, error) {
	if !IsRef(n) {
		return n, nil
	}
	return Resolve(root, &Ref{base{n}})
}

func resolveAs(root *ast.Node, el Element, expected string, classify func(*ast.Node) Element) (Element, error) {
	ref, ok := el.(*Ref)
	if !ok {
		return el, nil
	}
	target, err := Resolve(root, ref)
	if err != nil {
		return nil, err
	}
	out := classify(target)
	if out == nil {
		return nil, &oaserrors.ShapeError{
			Pointer:  ref.Value(),
			Expected: expected,
			Line:     target.Range.Start.Line,
			Column:   target.Range.Start.Column,
			Message:  "reference target has an unrecognized shape",
		}
	}
	return out, nil
}

// withPosition stamps the position of the $ref value onto a ReferenceError
// that does not carry one yet.
func withPosition(err error, ref *Ref) error {
	refErr, ok := err.(*oaserrors.ReferenceError)
	if !ok || refErr.Line > 0 {
		return err
	}
	if p := ref.Pointer(); p != nil {
		refErr.Line = p.Node.Range.Start.Line
		refErr.Column = p.Node.Range.Start.Column
	}
	return refErr
}
