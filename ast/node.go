package ast

// Kind identifies the shape of a Node.
type Kind int

const (
	// KindObject is a mapping of ordered key/value members.
	KindObject Kind = iota + 1
	// KindArray is an ordered list of items.
	KindArray
	// KindLiteral is a scalar: string, number, boolean or null.
	KindLiteral
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// Node is a single element of the generic document tree.
// Nodes are immutable once Parse returns.
type Node struct {
	// Kind is the structural shape of the node
	Kind Kind
	// Range locates the node in the source text
	Range Range
	// Members holds the children of an object node, in source order
	Members []*Member
	// Items holds the children of an array node, in source order
	Items []*Node
	// Value is the decoded scalar of a literal node: string, float64, bool or nil
	Value any
	// Raw is the scalar text of a literal node after unquoting
	Raw string
}

// Member is a key/value pair of an object node.
type Member struct {
	Key   *Node
	Value *Node
}

// Name returns the member key as written.
func (m *Member) Name() string {
	if m == nil || m.Key == nil {
		return ""
	}
	return m.Key.Raw
}

// Range spans from the start of the key to the end of the value.
func (m *Member) Range() Range {
	if m == nil || m.Key == nil || m.Value == nil {
		return Range{}
	}
	return m.Key.Range.Through(m.Value.Range)
}

// IsObject reports whether n is an object node. A nil node is not.
func (n *Node) IsObject() bool {
	return n != nil && n.Kind == KindObject
}

// IsArray reports whether n is an array node.
func (n *Node) IsArray() bool {
	return n != nil && n.Kind == KindArray
}

// IsLiteral reports whether n is a literal node.
func (n *Node) IsLiteral() bool {
	return n != nil && n.Kind == KindLiteral
}

// Member returns the first member named key, or nil when n is not an object
// or has no such member.
func (n *Node) Member(key string) *Member {
	if !n.IsObject() {
		return nil
	}
	for _, m := range n.Members {
		if m.Name() == key {
			return m
		}
	}
	return nil
}

// Get returns the value of the first member named key, or nil.
func (n *Node) Get(key string) *Node {
	if m := n.Member(key); m != nil {
		return m.Value
	}
	return nil
}

// Has reports whether n is an object with a member named key.
func (n *Node) Has(key string) bool {
	return n.Member(key) != nil
}

// Keys returns the member names of an object node in source order.
func (n *Node) Keys() []string {
	if !n.IsObject() {
		return nil
	}
	keys := make([]string, 0, len(n.Members))
	for _, m := range n.Members {
		keys = append(keys, m.Name())
	}
	return keys
}

// AsString returns the value of a string literal.
func (n *Node) AsString() (string, bool) {
	if !n.IsLiteral() {
		return "", false
	}
	s, ok := n.Value.(string)
	return s, ok
}

// AsNumber returns the value of a numeric literal.
func (n *Node) AsNumber() (float64, bool) {
	if !n.IsLiteral() {
		return 0, false
	}
	f, ok := n.Value.(float64)
	return f, ok
}

// AsBool returns the value of a boolean literal.
func (n *Node) AsBool() (bool, bool) {
	if !n.IsLiteral() {
		return false, false
	}
	b, ok := n.Value.(bool)
	return b, ok
}

// IsNull reports whether n is the null literal.
func (n *Node) IsNull() bool {
	return n.IsLiteral() && n.Value == nil
}

// ToValue converts a subtree into plain Go values: map[string]any for objects,
// []any for arrays and the decoded scalar for literals. A nil node yields nil.
// When an object repeats a key, the last value wins.
func ToValue(n *Node) any {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case KindObject:
		obj := make(map[string]any, len(n.Members))
		for _, m := range n.Members {
			obj[m.Name()] = ToValue(m.Value)
		}
		return obj
	case KindArray:
		arr := make([]any, 0, len(n.Items))
		for _, item := range n.Items {
			arr = append(arr, ToValue(item))
		}
		return arr
	default:
		return n.Value
	}
}
