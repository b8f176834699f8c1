package parser

import (
	"strings"

	"github.com/erraggy/oas2ir/ast"
	"github.com/erraggy/oas2ir/internal/httputil"
	"github.com/erraggy/oas2ir/internal/naming"
	"github.com/erraggy/oas2ir/internal/pathutil"
	"github.com/erraggy/oas2ir/ir"
	"github.com/erraggy/oas2ir/oas2"
)

// operation is one (path, verb) pair of the document.
type operation struct {
	path   string
	verb   string
	item   *oas2.PathItem
	op     *oas2.Operation
	shared []oas2.Element
	iface  string
}

// operations lists every operation in path and verb source order.
func (c *runContext) operations() ([]operation, error) {
	paths := c.doc.Paths()
	if paths == nil {
		return nil, nil
	}
	var out []operation
	for _, path := range paths.Keys() {
		node, err := oas2.ResolveNode(c.root, paths.Item(path))
		if err != nil {
			return nil, err
		}
		if !node.IsObject() {
			continue
		}
		item := oas2.NewPathItem(node)
		shared, err := item.Parameters()
		if err != nil {
			return nil, err
		}
		for _, verb := range item.Verbs() {
			if !oas2.IsVerb(verb) {
				c.log.Debug("treating unknown path item key as an operation", "path", path, "key", verb)
			}
			op := item.Operation(verb)
			out = append(out, operation{
				path:   path,
				verb:   verb,
				item:   item,
				op:     op,
				shared: shared,
				iface:  interfaceName(path, op),
			})
		}
	}
	return out, nil
}

// interfaceName is the first tag of op, or the first segment of path.
func interfaceName(path string, op *oas2.Operation) string {
	if tags := op.Tags(); len(tags) > 0 && tags[0].Value != "" {
		return tags[0].Value
	}
	parts := strings.SplitN(path, "/", 3)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// interfaces groups the operations by interface name in first-seen order.
func (c *runContext) interfaces() ([]*ir.Interface, error) {
	ops, err := c.operations()
	if err != nil {
		return nil, err
	}

	var names []string
	seen := make(map[string]bool)
	for _, o := range ops {
		if !seen[o.iface] {
			seen[o.iface] = true
			names = append(names, o.iface)
		}
	}

	out := make([]*ir.Interface, 0, len(names))
	for _, name := range names {
		iface := &ir.Interface{
			Name:      naming.Singular(name),
			Methods:   make([]*ir.Method, 0),
			Protocols: &ir.Protocols{HTTP: make([]*ir.HTTPPath, 0)},
		}
		var current *ir.HTTPPath
		for _, o := range ops {
			if o.iface != name {
				continue
			}
			method, err := c.method(o)
			if err != nil {
				return nil, err
			}
			iface.Methods = append(iface.Methods, method)

			if current == nil || current.Path.Value != o.path {
				current = c.httpPath(o.path)
				iface.Protocols.HTTP = append(iface.Protocols.HTTP, current)
			}
			httpMethod, err := c.httpMethod(o)
			if err != nil {
				return nil, err
			}
			current.Methods = append(current.Methods, httpMethod)
		}
		c.log.Debug("assembled interface", "name", iface.Name, "methods", len(iface.Methods))
		out = append(out, iface)
	}
	return out, nil
}

func (c *runContext) method(o operation) (*ir.Method, error) {
	opID := o.op.OperationID()
	name := ir.Literal[string]{Value: "UNNAMED"}
	methodName := ""
	if opID != nil && opID.Value != "" {
		name = lit(opID)
		methodName = opID.Value
	}

	own, err := o.op.Parameters()
	if err != nil {
		return nil, err
	}
	params := make([]*ir.Parameter, 0, len(o.shared)+len(own))
	for _, el := range append(append([]oas2.Element{}, o.shared...), own...) {
		p, err := c.parameter(el, methodName)
		if err != nil {
			return nil, err
		}
		params = append(params, p)
	}

	returnType, err := c.returnType(o.op)
	if err != nil {
		return nil, err
	}

	return &ir.Method{
		Name:        name,
		Security:    c.security(o.op),
		Parameters:  params,
		Description: description(o.op.Summary(), o.op.Description()),
		ReturnType:  returnType,
		Loc:         o.item.PropRange(o.verb).Encode(),
		Meta:        meta(o.op),
	}, nil
}

// description combines an operation's summary and description.
func description(summary, desc *oas2.Literal[string]) ir.Description {
	var out ir.Description
	if summary != nil {
		out = append(out, lit(summary))
	}
	if desc != nil {
		out = append(out, lit(desc))
	}
	return out
}

// parameter converts a parameter or parameter reference. A reference to a
// shared string parameter with an enum names the enum after the shared
// parameter's key so that every method using it shares one enum.
func (c *runContext) parameter(el oas2.Element, methodName string) (*ir.Parameter, error) {
	resolvedEl, err := oas2.ResolveParam(c.root, el)
	if err != nil {
		return nil, err
	}
	param, ok := resolvedEl.(*oas2.Parameter)
	if !ok {
		return nil, shapeError(el.Node(), "parameter", "unknown parameter definition")
	}

	var unresolved oas2.Element = param
	if param.NodeType() == oas2.NodeBodyParameter {
		unresolved = param.Schema()
		if unresolved == nil {
			return nil, shapeError(param.Node(), "schema", "body parameter has no schema")
		}
	}
	resolved, err := oas2.ResolveParamOrSchema(c.root, unresolved)
	if err != nil {
		return nil, err
	}
	def, ok := resolved.(oas2.Constraints)
	if !ok || resolved.NodeType() == oas2.NodeBodyParameter {
		return nil, shapeError(resolved.Node(), "schema", "unexpected body parameter")
	}

	localName, parentName := "", methodName
	if n := param.Name(); n != nil {
		localName = n.Value
	}
	if ref, isRef := el.(*oas2.Ref); isRef && param.NodeType() == oas2.NodeStringParameter && param.HasEnum() {
		localName = pathutil.UnescapeToken(pathutil.LastSegment(ref.Value()))
		parentName = ""
	}

	x, err := c.inferType(unresolved, localName, parentName)
	if err != nil {
		return nil, err
	}
	rules, err := c.rules(def, param.IsRequired())
	if err != nil {
		return nil, err
	}

	p := &ir.Parameter{
		Name:        lit(param.Name()),
		Description: optLit(param.Description()),
		TypedValue:  x.TypedValue,
		Loc:         param.Range().Encode(),
		Meta:        meta(param),
	}
	p.Rules = rules
	return p, nil
}

func (c *runContext) httpPath(path string) *ir.HTTPPath {
	paths := c.doc.Paths()
	return &ir.HTTPPath{
		Path:    ir.Lit(path, paths.KeyRange(path)),
		Methods: make([]*ir.HTTPMethod, 0),
		Loc:     paths.PropRange(path).Encode(),
	}
}

// httpMethod builds the HTTP binding of an operation. Its parameters list
// the operation's own parameters before the shared ones.
func (c *runContext) httpMethod(o operation) (*ir.HTTPMethod, error) {
	name := ir.Literal[string]{Value: "unknown"}
	if opID := o.op.OperationID(); opID != nil && opID.Value != "" {
		name = lit(opID)
	}

	own, err := o.op.Parameters()
	if err != nil {
		return nil, err
	}
	params := make([]*ir.HTTPParameter, 0, len(own)+len(o.shared))
	for _, el := range append(append([]oas2.Element{}, own...), o.shared...) {
		resolved, err := oas2.ResolveParam(c.root, el)
		if err != nil {
			return nil, err
		}
		param, ok := resolved.(*oas2.Parameter)
		if !ok {
			return nil, shapeError(el.Node(), "parameter", "unknown parameter definition")
		}
		hp := &ir.HTTPParameter{
			Name: lit(param.Name()),
			In:   lit(param.In()),
			Loc:  param.Range().Encode(),
		}
		if param.NodeType() == oas2.NodeArrayParameter {
			switch hp.In.Value {
			case "header", "path", "query":
				hp.Array = &ir.Literal[string]{Value: "csv"}
				if cf := param.CollectionFormat(); cf != nil {
					hp.Array = optLit(cf)
				}
			}
		}
		params = append(params, hp)
	}

	return &ir.HTTPMethod{
		Name:        name,
		Verb:        ir.Lit(o.verb, o.item.KeyRange(o.verb)),
		Parameters:  params,
		SuccessCode: c.successCode(o.verb, o.op),
		Loc:         o.item.PropRange(o.verb).Encode(),
	}, nil
}

// primaryResponse identifies the response that defines success: the first
// key starting with "2" in source order when it is numeric, else "default".
type primaryResponse struct {
	key       string
	code      int
	isDefault bool
	keyRange  ast.Range
}

func findPrimaryResponse(responses *oas2.Responses) (primaryResponse, bool) {
	if responses == nil {
		return primaryResponse{}, false
	}
	for _, key := range responses.Keys() {
		if !strings.HasPrefix(key, "2") {
			continue
		}
		if code, ok := httputil.ParseStatusCode(key); ok {
			return primaryResponse{key: key, code: code, keyRange: responses.KeyRange(key)}, true
		}
		break
	}
	if responses.Has("default") {
		return primaryResponse{key: "default", isDefault: true, keyRange: responses.KeyRange("default")}, true
	}
	return primaryResponse{}, false
}

// successCode infers the success status of an operation. A default response
// with a schema implies a verb-specific code; without a schema it implies
// 204. An operation with neither a 2xx nor a default response gets 200.
func (c *runContext) successCode(verb string, op *oas2.Operation) ir.Literal[int] {
	primary, ok := findPrimaryResponse(op.Responses())
	if !ok {
		return ir.Literal[int]{Value: httputil.StatusOK}
	}
	if !primary.isDefault {
		return ir.Lit(primary.code, primary.keyRange)
	}

	node, err := oas2.ResolveNode(c.root, op.Responses().Get("default"))
	if err != nil || !oas2.NewResponse(node).Has("schema") {
		return ir.Lit(httputil.StatusNoContent, primary.keyRange)
	}
	return ir.Lit(httputil.DefaultSuccessCode(verb), primary.keyRange)
}

// returnType infers the type of the primary response's schema. Anonymous
// types are named after a referenced response definition, or after the
// operation.
func (c *runContext) returnType(op *oas2.Operation) (*ir.ReturnType, error) {
	primary, ok := findPrimaryResponse(op.Responses())
	if !ok {
		return nil, nil
	}
	raw := op.Responses().Get(primary.key)
	node, err := oas2.ResolveNode(c.root, raw)
	if err != nil {
		return nil, err
	}
	schema, err := oas2.NewResponse(node).Schema()
	if err != nil || schema == nil {
		return nil, err
	}

	parentName := ""
	if opID := op.OperationID(); opID != nil {
		parentName = opID.Value
	}
	if oas2.IsRef(raw) {
		ref, _ := raw.Get("$ref").AsString()
		if pathutil.IsResponseRef(ref) {
			if name := pathutil.UnescapeToken(pathutil.TrimPrefix(ref, pathutil.RefPrefixResponses)); name != "" {
				parentName = name
			}
		}
	}

	x, err := c.inferType(schema, "response", parentName)
	if err != nil {
		return nil, err
	}
	return &ir.ReturnType{TypedValue: x.TypedValue, Loc: x.loc}, nil
}
